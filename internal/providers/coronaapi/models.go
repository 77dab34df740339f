package coronaapi

import "corona-stats/internal/types"

type CountryAPIResponse struct {
	Data CountryData `json:"data"`
}

type CountryData struct {
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Name       string       `json:"name"`
	Code       string       `json:"code"`
	Population types.Number `json:"population"`
	UpdatedAt  string       `json:"updated_at"`
	Today      struct {
		Deaths    types.Number `json:"deaths"`
		Confirmed types.Number `json:"confirmed"`
	} `json:"today"`
	LatestData struct {
		Deaths    types.Number `json:"deaths"`
		Confirmed types.Number `json:"confirmed"`
		Recovered types.Number `json:"recovered"`
		Critical  types.Number `json:"critical"`
	} `json:"latest_data"`
	// Timeline is ordered newest first
	Timeline []TimelineEntry `json:"timeline"`
}

type TimelineEntry struct {
	UpdatedAt    string       `json:"updated_at"`
	Date         string       `json:"date"`
	Deaths       types.Number `json:"deaths"`
	Confirmed    types.Number `json:"confirmed"`
	Recovered    types.Number `json:"recovered"`
	Active       types.Number `json:"active"`
	NewConfirmed types.Number `json:"new_confirmed"`
	NewRecovered types.Number `json:"new_recovered"`
	NewDeaths    types.Number `json:"new_deaths"`
	IsInProgress bool         `json:"is_in_progress"`
}
