package main

import (
	"net/http"

	"corona-stats/internal/messages"

	"github.com/gin-gonic/gin"
)

// pageData feeds the page templates
type pageData struct {
	Lang            string
	Dir             string
	Title           string
	InputRequired   string
	ConnectionError string
	GenericError    string
	Message         string
}

func (app *App) newPageData(c *gin.Context, title string) pageData {
	accept := c.GetHeader("Accept-Language")
	tag := app.messages.Match(accept)

	return pageData{
		Lang:            tag.String(),
		Dir:             messages.Direction(tag),
		Title:           title,
		InputRequired:   app.messages.Get(messages.InputRequired, accept),
		ConnectionError: app.messages.Get(messages.ConnectionError, accept),
		GenericError:    app.messages.Get(messages.GenericError, accept),
	}
}

// text resolves a message for the caller's Accept-Language
func (app *App) text(c *gin.Context, id string) string {
	return app.messages.Get(id, c.GetHeader("Accept-Language"))
}

func (app *App) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", app.newPageData(c, "Corona Stats"))
}

func (app *App) handleNotFound(c *gin.Context) {
	data := app.newPageData(c, "Corona Stats")
	data.Message = app.text(c, messages.PageNotFound)
	c.HTML(http.StatusNotFound, "page_not_found.tmpl", data)
}
