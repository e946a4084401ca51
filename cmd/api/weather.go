package main

import (
	"errors"
	"net/http"

	"weatherdash/internal/types"
	"weatherdash/internal/weather"

	"github.com/gin-gonic/gin"
)

// GetWeatherInput represents query parameters for current conditions by city
type GetWeatherInput struct {
	City string `form:"city" binding:"required" example:"Chicago"` // City name
}

// GetCoordinatesInput represents query parameters for conditions by coordinates.
// Pointer fields so a literal zero (equator, prime meridian) is distinguishable
// from an absent parameter.
type GetCoordinatesInput struct {
	Lat *float64 `form:"lat" binding:"required" example:"41.8781"`  // Latitude in decimal degrees
	Lon *float64 `form:"lon" binding:"required" example:"-87.6298"` // Longitude in decimal degrees
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"failed to fetch weather data"` // Error message
}

// handleGetWeather godoc
// @Summary Get current weather for a city
// @Description Retrieve current conditions for a named city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} weather.WeatherSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "city parameter is required"})
		return
	}

	snapshot, err := app.weatherService.CurrentByCity(input.City)
	if err != nil {
		app.respondWeatherError(c, input.City, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// handleGetForecast godoc
// @Summary Get 5-day forecast for a city
// @Description Retrieve the daily forecast for a named city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {array} weather.ForecastDay
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	var input GetWeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "city parameter is required"})
		return
	}

	days, err := app.weatherService.ForecastByCity(input.City)
	if err != nil {
		app.respondWeatherError(c, input.City, err)
		return
	}

	c.JSON(http.StatusOK, days)
}

// handleGetWeatherByCoordinates godoc
// @Summary Get weather and forecast for coordinates
// @Description Retrieve current conditions and the daily forecast for a point
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude in decimal degrees"
// @Param lon query number true "Longitude in decimal degrees"
// @Success 200 {object} weather.Bundle
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/weather-coordinates [get]
func (app *App) handleGetWeatherByCoordinates(c *gin.Context) {
	var input GetCoordinatesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lon parameters are required"})
		return
	}

	lat, lon := *input.Lat, *input.Lon
	bundle, err := app.weatherService.ByCoordinates(lat, lon)
	if err != nil {
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		app.logger.Error("coordinate lookup failed", "lat", lat, "lon", lon, "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch weather data"})
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// respondWeatherError maps service errors for the city endpoints
func (app *App) respondWeatherError(c *gin.Context, city string, err error) {
	if errors.Is(err, weather.ErrCityNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "city not found"})
		return
	}
	app.logger.Error("weather lookup failed", "city", city, "error", err)
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch weather data"})
}
