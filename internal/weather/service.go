package weather

import (
	"errors"
	"fmt"
	"log/slog"

	"weatherdash/internal/config"
	"weatherdash/internal/providers/openmeteo"
	"weatherdash/internal/providers/openweathermap"
	"weatherdash/internal/types"
)

// ErrCityNotFound is returned when geocoding yields no results for a city name
var ErrCityNotFound = errors.New("city not found")

// CurrentProvider supplies current conditions from an upstream API
type CurrentProvider interface {
	GetCurrent(city string) (*openweathermap.CurrentAPIResponse, error)
	GetCurrentByCoords(latitude, longitude float64) (*openweathermap.CurrentAPIResponse, error)
}

// MeteoProvider supplies daily forecasts and city geocoding
type MeteoProvider interface {
	GetForecast(latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
	GeocodeCity(name string) (*openmeteo.GeocodeAPIResponse, error)
}

type Service interface {
	// CurrentByCity returns a snapshot of current conditions for a city name
	CurrentByCity(city string) (*WeatherSnapshot, error)
	// ForecastByCity returns the daily forecast for a city name
	ForecastByCity(city string) ([]ForecastDay, error)
	// ByCoordinates returns current conditions and forecast in one bundle
	ByCoordinates(latitude, longitude float64) (*Bundle, error)
}

type weatherService struct {
	currentProvider CurrentProvider
	meteoProvider   MeteoProvider
	cfg             *config.Config
	logger          *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	current := NewRateLimitedCurrentProvider(
		openweathermap.NewClient(cfg.Providers.OpenWeatherMapAPIKey),
		cfg.Providers.RateLimitRPS,
		cfg.Providers.RateLimitBurst,
	)
	meteo := NewRateLimitedMeteoProvider(
		openmeteo.NewClient(),
		cfg.Providers.RateLimitRPS,
		cfg.Providers.RateLimitBurst,
	)
	return NewWeatherServiceWithProviders(current, meteo, cfg, logger)
}

// NewWeatherServiceWithProviders creates a weather service with custom providers
// This is useful for testing with mock providers
func NewWeatherServiceWithProviders(
	currentProvider CurrentProvider,
	meteoProvider MeteoProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		currentProvider: currentProvider,
		meteoProvider:   meteoProvider,
		cfg:             cfg,
		logger:          logger.With("component", "weather-service"),
	}
}

func (s *weatherService) CurrentByCity(city string) (*WeatherSnapshot, error) {
	resp, err := s.currentProvider.GetCurrent(city)
	if err != nil {
		s.logger.Error("failed to get current conditions", "city", city, "error", err)
		return nil, fmt.Errorf("failed to get current conditions: %w", err)
	}

	return mapCurrentAPIResponseToSnapshot(resp)
}

func (s *weatherService) ForecastByCity(city string) ([]ForecastDay, error) {
	coords, err := s.geocode(city)
	if err != nil {
		return nil, err
	}

	resp, err := s.meteoProvider.GetForecast(coords.Latitude, coords.Longitude, s.cfg.App.ForecastDays)
	if err != nil {
		s.logger.Error("failed to get forecast", "city", city, "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return mapForecastAPIResponseToDays(resp, s.cfg.App.ForecastDays)
}

func (s *weatherService) ByCoordinates(latitude, longitude float64) (*Bundle, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	// Snapshot first; the forecast call is only issued once it succeeds
	currentResp, err := s.currentProvider.GetCurrentByCoords(latitude, longitude)
	if err != nil {
		s.logger.Error("failed to get current conditions",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get current conditions: %w", err)
	}

	snapshot, err := mapCurrentAPIResponseToSnapshot(currentResp)
	if err != nil {
		return nil, err
	}

	forecastResp, err := s.meteoProvider.GetForecast(latitude, longitude, s.cfg.App.ForecastDays)
	if err != nil {
		s.logger.Error("failed to get forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	days, err := mapForecastAPIResponseToDays(forecastResp, s.cfg.App.ForecastDays)
	if err != nil {
		return nil, err
	}

	return &Bundle{Weather: *snapshot, Forecast: days}, nil
}

func (s *weatherService) geocode(city string) (types.Coords, error) {
	resp, err := s.meteoProvider.GeocodeCity(city)
	if err != nil {
		s.logger.Error("failed to geocode city", "city", city, "error", err)
		return types.Coords{}, fmt.Errorf("failed to geocode city: %w", err)
	}
	if resp == nil || len(resp.Results) == 0 {
		return types.Coords{}, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}

	result := resp.Results[0]
	s.logger.Debug("geocoded city",
		"city", city,
		"latitude", result.Latitude,
		"longitude", result.Longitude,
	)

	return types.NewCoords(result.Latitude, result.Longitude), nil
}
