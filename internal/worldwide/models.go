package worldwide

import (
	"fmt"
	"strings"

	"corona-stats/internal/types"
)

// CountryReport is the latest data point for one country.
type CountryReport struct {
	Country      string       `json:"country" example:"Israel"`
	Code         string       `json:"code" example:"IL"`
	Population   types.Number `json:"population" swaggertype:"number" example:"8324000"`
	Updated      string       `json:"updated" example:"2021-09-01"`
	Confirmed    types.Number `json:"confirmed" swaggertype:"number" example:"1055586"`
	NewConfirmed types.Number `json:"new_confirmed" swaggertype:"number" example:"10947"`
	Active       types.Number `json:"active" swaggertype:"number" example:"88656"`
	Deaths       types.Number `json:"deaths" swaggertype:"number" example:"7234"`
	NewDeaths    types.Number `json:"new_deaths" swaggertype:"number" example:"23"`
}

// Text renders the report as the fixed-layout block shown on the worldwide page.
func (r *CountryReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "      Country: %s\n", r.Country)
	fmt.Fprintf(&b, "   Population: %s\n", r.Population)
	fmt.Fprintf(&b, "      Updated: %s\n", r.Updated)
	fmt.Fprintf(&b, "    Confirmed: %s\n", r.Confirmed)
	fmt.Fprintf(&b, "New Confirmed: %s\n", r.NewConfirmed)
	fmt.Fprintf(&b, "  Active sick: %s\n", r.Active)
	fmt.Fprintf(&b, "       Deaths: %s\n", r.Deaths)
	fmt.Fprintf(&b, "   New Deaths: %s\n", r.NewDeaths)
	return b.String()
}
