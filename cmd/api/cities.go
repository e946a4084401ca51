package main

import (
	"net/http"

	"weatherdash/internal/cities"

	"github.com/gin-gonic/gin"
)

// GetCitiesInput represents query parameters for city autocomplete
type GetCitiesInput struct {
	Query string `form:"q" example:"san"` // Substring to match, case-insensitive
}

// handleGetCities godoc
// @Summary Autocomplete city names
// @Description List known cities matching a query substring. An empty query returns all cities.
// @Tags cities
// @Produce json
// @Param q query string false "Substring to match, case-insensitive"
// @Success 200 {array} string
// @Router /api/cities [get]
func (app *App) handleGetCities(c *gin.Context) {
	var input GetCitiesInput
	// Binding cannot fail here, the only field is optional
	_ = c.ShouldBindQuery(&input)

	c.JSON(http.StatusOK, cities.Filter(input.Query))
}
