package main

import (
	"fmt"
	"net/http"

	"corona-stats/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up pages, API endpoints and static assets
func (app *App) registerRoutes() error {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Pages; with a query parameter they answer with a plain-text data block
	app.router.GET("/", app.handleIndex)
	app.router.GET("/worldwide", app.handleWorldwide)
	app.router.GET("/israel", app.handleIsrael)

	// JSON endpoints
	v1 := app.router.Group("/api/v1")
	v1.GET("/worldwide", app.handleGetCountryReport)
	v1.GET("/israel/general", app.handleGetGeneralReport)
	v1.GET("/israel/cities", app.handleGetCityReport)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	assets, err := web.Static()
	if err != nil {
		return fmt.Errorf("failed to load static assets: %w", err)
	}
	app.router.StaticFS("/static", http.FS(assets))

	app.router.NoRoute(app.handleNotFound)

	return nil
}
