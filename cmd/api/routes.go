package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Dashboard endpoints
	api := app.router.Group("/api")
	{
		api.GET("/weather", app.handleGetWeather)
		api.GET("/forecast", app.handleGetForecast)
		api.GET("/weather-coordinates", app.handleGetWeatherByCoordinates)
		api.GET("/cities", app.handleGetCities)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
