package weather

import (
	"context"
	"fmt"

	"weatherdash/internal/providers/openmeteo"
	"weatherdash/internal/providers/openweathermap"

	"golang.org/x/time/rate"
)

// RateLimitedCurrentProvider wraps a CurrentProvider with rate limiting
type RateLimitedCurrentProvider struct {
	provider CurrentProvider
	limiter  *rate.Limiter
}

// NewRateLimitedCurrentProvider creates a rate limited current-conditions provider
// rps is the maximum requests per second allowed (can be fractional)
// burst is the maximum burst size allowed
func NewRateLimitedCurrentProvider(provider CurrentProvider, rps float64, burst int) *RateLimitedCurrentProvider {
	return &RateLimitedCurrentProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedCurrentProvider) GetCurrent(city string) (*openweathermap.CurrentAPIResponse, error) {
	if err := r.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetCurrent(city)
}

func (r *RateLimitedCurrentProvider) GetCurrentByCoords(latitude, longitude float64) (*openweathermap.CurrentAPIResponse, error) {
	if err := r.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetCurrentByCoords(latitude, longitude)
}

// RateLimitedMeteoProvider wraps a MeteoProvider with rate limiting
type RateLimitedMeteoProvider struct {
	provider MeteoProvider
	limiter  *rate.Limiter
}

// NewRateLimitedMeteoProvider creates a rate limited forecast/geocoding provider
func NewRateLimitedMeteoProvider(provider MeteoProvider, rps float64, burst int) *RateLimitedMeteoProvider {
	return &RateLimitedMeteoProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedMeteoProvider) GetForecast(latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error) {
	if err := r.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetForecast(latitude, longitude, forecastDays)
}

func (r *RateLimitedMeteoProvider) GeocodeCity(name string) (*openmeteo.GeocodeAPIResponse, error) {
	if err := r.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GeocodeCity(name)
}

// Verify that the rate limited types implement the provider interfaces
var (
	_ CurrentProvider = (*RateLimitedCurrentProvider)(nil)
	_ MeteoProvider   = (*RateLimitedMeteoProvider)(nil)
)
