package main

import (
	"log/slog"

	"weatherdash/internal/config"
	"weatherdash/internal/middleware"
	"weatherdash/internal/weather"

	"github.com/gin-gonic/gin"

	_ "weatherdash/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return newAppWithService(cfg, logger, weather.NewWeatherService(cfg, logger))
}

// newAppWithService wires the app around a given weather service.
// Used by tests to inject a service with mock providers.
func newAppWithService(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
