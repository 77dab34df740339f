package israel

import (
	"fmt"
	"strings"

	"corona-stats/internal/types"
)

// CityReport holds the figures of a single city.
type CityReport struct {
	City       string       `json:"city" example:"חיפה"`
	ActiveSick types.Number `json:"active_sick" swaggertype:"number" example:"1520"`
	Color      string       `json:"color" example:"צהוב"`
	FirstDose  types.Number `json:"first_dose_percent" swaggertype:"number" example:"85.1"`
	SecondDose types.Number `json:"second_dose_percent" swaggertype:"number" example:"80.2"`
	ThirdDose  types.Number `json:"third_dose_percent" swaggertype:"number" example:"55"`
}

// GeneralReport holds the country-wide figures of the latest reported day.
type GeneralReport struct {
	Date                 string       `json:"date" example:"2021-08-31T00:00:00.000Z"`
	Confirmed            types.Number `json:"confirmed" swaggertype:"number" example:"1054947"`
	NewSick              types.Number `json:"new_sick" swaggertype:"number" example:"10947"`
	NewSickYesterday     types.Number `json:"new_sick_yesterday" swaggertype:"number" example:"9010"`
	TotalVaccinated      types.Number `json:"total_vaccinated" swaggertype:"number" example:"5981000"`
	VaccinatedPopulation types.Number `json:"vaccinated_population_percent" swaggertype:"number" example:"63.7"`
	TotalSecondDose      types.Number `json:"total_second_dose" swaggertype:"number" example:"5452000"`
	TotalThirdDose       types.Number `json:"total_third_dose" swaggertype:"number" example:"2410000"`
}

// TextOptions controls text rendering.
type TextOptions struct {
	// ReverseHebrew reverses free-text fields for terminals and pages that
	// lay Hebrew out left to right.
	ReverseHebrew bool
}

// Text renders the report as the fixed-layout block shown on the Israel page.
func (r *CityReport) Text(opts TextOptions) string {
	name, color := r.City, r.Color
	if opts.ReverseHebrew {
		name, color = reverse(name), reverse(color)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "               City: %s\n", name)
	fmt.Fprintf(&b, "        Active sick: %s\n", r.ActiveSick)
	fmt.Fprintf(&b, "              Color: %s\n", color)
	fmt.Fprintf(&b, "       1st Dose (%%): %s\n", r.FirstDose)
	fmt.Fprintf(&b, "       2nd Dose (%%): %s\n", r.SecondDose)
	fmt.Fprintf(&b, "       3rd Dose (%%): %s\n", r.ThirdDose)
	return b.String()
}

// Text renders the country-wide block.
func (r *GeneralReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "                   Date: %s\n", r.Date)
	fmt.Fprintf(&b, "              Confirmed: %s\n", r.Confirmed)
	fmt.Fprintf(&b, "               New Sick: %s\n", r.NewSick)
	fmt.Fprintf(&b, "   New Sick (yesterday): %s\n", r.NewSickYesterday)
	fmt.Fprintf(&b, "       Total Vaccinated: %s\n", r.TotalVaccinated)
	fmt.Fprintf(&b, "Vaccinated Population %%: %s\n", r.VaccinatedPopulation)
	fmt.Fprintf(&b, "   Total Vaccinated 2nd: %s\n", r.TotalSecondDose)
	fmt.Fprintf(&b, "   Total Vaccinated 3rd: %s\n", r.TotalThirdDose)
	return b.String()
}

// reverse works on runes so multi-byte Hebrew letters stay intact.
func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
