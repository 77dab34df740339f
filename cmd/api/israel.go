package main

import (
	"errors"
	"net/http"

	"corona-stats/internal/israel"
	"corona-stats/internal/messages"

	"github.com/gin-gonic/gin"
)

// generalQuery is the city value that selects the national summary
const generalQuery = "general"

// GetCityReportInput defines the query parameters for the city endpoint
type GetCityReportInput struct {
	City string `form:"city" binding:"required"` // Exact city name in Hebrew
}

// handleIsrael godoc
// @Summary Israel statistics as text
// @Description Without a city, or with an empty one, renders the search page. city=general returns the national summary, any other value the exact-match city block.
// @Tags israel
// @Produce plain
// @Produce html
// @Param city query string false "Exact city name in Hebrew, or general"
// @Success 200 {string} string
// @Failure 502 {string} string
// @Router /israel [get]
func (app *App) handleIsrael(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.HTML(http.StatusOK, "israel.tmpl", app.newPageData(c, "Israel"))
		return
	}

	if city == generalQuery {
		report, err := app.israelService.GeneralData(c.Request.Context())
		if err != nil {
			app.logger.Error("failed to get general data", "error", err)
			c.String(http.StatusBadGateway, app.text(c, messages.GeneralDataError))
			return
		}
		c.String(http.StatusOK, report.Text())
		return
	}

	report, err := app.israelService.FindCity(c.Request.Context(), city)
	if err != nil {
		if errors.Is(err, israel.ErrCityNotFound) {
			c.String(http.StatusOK, app.text(c, messages.NotFound))
			return
		}

		app.logger.Error("failed to get city data",
			"city", city,
			"error", err,
		)
		c.String(http.StatusBadGateway, app.text(c, messages.CityDataError))
		return
	}

	c.String(http.StatusOK, report.Text(israel.TextOptions{ReverseHebrew: app.cfg.Israel.ReverseHebrew}))
}

// handleGetGeneralReport godoc
// @Summary Get Israel general statistics
// @Description Latest national infection and vaccination figures
// @Tags israel
// @Produce json
// @Success 200 {object} israel.GeneralReport
// @Failure 502 {object} map[string]string
// @Router /api/v1/israel/general [get]
func (app *App) handleGetGeneralReport(c *gin.Context) {
	report, err := app.israelService.GeneralData(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to get general data", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": app.text(c, messages.GeneralDataError)})
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleGetCityReport godoc
// @Summary Get Israel city statistics
// @Description Latest figures for the city whose name matches exactly
// @Tags israel
// @Produce json
// @Param city query string true "Exact city name in Hebrew"
// @Success 200 {object} israel.CityReport
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/israel/cities [get]
func (app *App) handleGetCityReport(c *gin.Context) {
	var input GetCityReportInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := app.israelService.FindCity(c.Request.Context(), input.City)
	if err != nil {
		if errors.Is(err, israel.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": app.text(c, messages.NotFound)})
			return
		}

		app.logger.Error("failed to get city data",
			"city", input.City,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": app.text(c, messages.CityDataError)})
		return
	}

	c.JSON(http.StatusOK, report)
}
