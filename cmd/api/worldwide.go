package main

import (
	"errors"
	"net/http"

	"corona-stats/internal/messages"
	"corona-stats/internal/worldwide"

	"github.com/gin-gonic/gin"
)

// GetCountryReportInput defines the query parameters for the country endpoint
type GetCountryReportInput struct {
	Country string `form:"country" binding:"required"` // Partial English country name
}

// handleWorldwide godoc
// @Summary Country statistics as text
// @Description Without a country, or with an empty one, renders the search page. Otherwise resolves the country by case-insensitive partial name and returns a fixed-layout text block.
// @Tags worldwide
// @Produce plain
// @Produce html
// @Param country query string false "Partial English country name" example(israel)
// @Success 200 {string} string
// @Failure 502 {string} string
// @Router /worldwide [get]
func (app *App) handleWorldwide(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.HTML(http.StatusOK, "worldwide.tmpl", app.newPageData(c, "Worldwide"))
		return
	}

	report, err := app.worldwideService.Lookup(c.Request.Context(), country)
	if err != nil {
		if errors.Is(err, worldwide.ErrCountryNotFound) {
			c.String(http.StatusOK, app.text(c, messages.NotFound))
			return
		}

		app.logger.Error("failed to get country data",
			"country", country,
			"error", err,
		)
		c.String(http.StatusBadGateway, app.text(c, messages.CountryDataError))
		return
	}

	c.String(http.StatusOK, report.Text())
}

// handleGetCountryReport godoc
// @Summary Get country statistics
// @Description Latest COVID-19 figures for the first country whose English name contains the query
// @Tags worldwide
// @Produce json
// @Param country query string true "Partial English country name" example(israel)
// @Success 200 {object} worldwide.CountryReport
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/worldwide [get]
func (app *App) handleGetCountryReport(c *gin.Context) {
	var input GetCountryReportInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := app.worldwideService.Lookup(c.Request.Context(), input.Country)
	if err != nil {
		if errors.Is(err, worldwide.ErrCountryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": app.text(c, messages.NotFound)})
			return
		}

		app.logger.Error("failed to get country data",
			"country", input.Country,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": app.text(c, messages.CountryDataError)})
		return
	}

	c.JSON(http.StatusOK, report)
}
