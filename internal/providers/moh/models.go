package moh

import "corona-stats/internal/types"

// CityRecord is one entry of the spotlightPublic per-city array.
type CityRecord struct {
	Name             string       `json:"name"`
	ActiveSick       types.Number `json:"activeSick"`
	Color            string       `json:"color"`
	FirstDose        types.Number `json:"firstDose"`
	SecondDose       types.Number `json:"secondDose"`
	ThirdDose        types.Number `json:"thirdDose"`
	Score            types.Number `json:"score"`
	ActiveSickTo1000 types.Number `json:"activeSickTo1000"`
	SickTo10000      types.Number `json:"sickTo10000"`
	GrowthLastWeek   types.Number `json:"growthLastWeek"`
	PositiveTests    types.Number `json:"positiveTests"`
}

// InfectedEntry is one day of the infectedPerDate array, oldest first.
type InfectedEntry struct {
	Date   string       `json:"date"`
	Amount types.Number `json:"amount"`
	Sum    types.Number `json:"sum"`
}

// VaccinatedEntry is one day of the vaccinated array, oldest first. The
// upstream spells the second dose field "seconde".
type VaccinatedEntry struct {
	DayDate                  string       `json:"Day_Date"`
	VaccinatedCum            types.Number `json:"vaccinated_cum"`
	VaccinatedPopulationPerc types.Number `json:"vaccinated_population_perc"`
	VaccinatedSecondDoseCum  types.Number `json:"vaccinated_seconde_dose_cum"`
	VaccinatedThirdDoseCum   types.Number `json:"vaccinated_third_dose_cum"`
}
