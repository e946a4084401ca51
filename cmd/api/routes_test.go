package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"weatherdash/internal/config"
	"weatherdash/internal/types"
	"weatherdash/internal/weather"
)

// mockWeatherService implements weather.Service for handler tests
type mockWeatherService struct {
	snapshot *weather.WeatherSnapshot
	forecast []weather.ForecastDay
	bundle   *weather.Bundle
	err      error
}

func (m *mockWeatherService) CurrentByCity(city string) (*weather.WeatherSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

func (m *mockWeatherService) ForecastByCity(city string) ([]weather.ForecastDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.forecast, nil
}

func (m *mockWeatherService) ByCoordinates(latitude, longitude float64) (*weather.Bundle, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.bundle, nil
}

func testSnapshot() *weather.WeatherSnapshot {
	return &weather.WeatherSnapshot{
		Location:    "Chicago, US",
		Temperature: types.NewTemperatureFromFahrenheit(68),
		FeelsLike:   types.NewTemperatureFromFahrenheit(66),
		Condition:   "Clouds",
		Humidity:    55,
		Wind:        types.NewWindFromMph(10, 270),
		Sunrise:     "6:05 AM",
		Sunset:      "7:40 PM",
		Icon:        types.IconCloudy,
	}
}

func testForecast() []weather.ForecastDay {
	days := make([]weather.ForecastDay, 0, 5)
	for i := 0; i < 5; i++ {
		days = append(days, weather.ForecastDay{
			Date:      fmt.Sprintf("Day %d", i+1),
			High:      types.NewTemperatureFromFahrenheit(70),
			Low:       types.NewTemperatureFromFahrenheit(55),
			Condition: "Clear sky",
			Icon:      types.IconClear,
		})
	}
	return days
}

func newTestApp(svc weather.Service) *App {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, GinMode: "test"},
		Log:    config.LogConfig{Level: "error", Format: "text"},
		App:    config.AppConfig{DefaultCity: "New York", ForecastDays: 5},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newAppWithService(cfg, logger, svc)
}

func doRequest(t *testing.T, app *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(&mockWeatherService{})

	w := doRequest(t, app, "/ping")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp PingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Message != "pong" {
		t.Errorf("expected message 'pong', got %q", resp.Message)
	}
	if resp.Service != "weatherdash" {
		t.Errorf("expected service 'weatherdash', got %q", resp.Service)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	app := newTestApp(&mockWeatherService{})

	w := doRequest(t, app, "/ping")

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}

func TestHandleGetWeather(t *testing.T) {
	app := newTestApp(&mockWeatherService{snapshot: testSnapshot()})

	w := doRequest(t, app, "/api/weather?city=Chicago")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var snapshot weather.WeatherSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if snapshot.Location != "Chicago, US" {
		t.Errorf("expected location 'Chicago, US', got %q", snapshot.Location)
	}
	if snapshot.Wind.DirectionCardinal != "W" {
		t.Errorf("expected wind direction 'W', got %q", snapshot.Wind.DirectionCardinal)
	}
}

func TestHandleGetWeatherMissingCity(t *testing.T) {
	app := newTestApp(&mockWeatherService{snapshot: testSnapshot()})

	w := doRequest(t, app, "/api/weather")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleGetWeatherProviderFailure(t *testing.T) {
	app := newTestApp(&mockWeatherService{err: errors.New("fetch returned status 500")})

	w := doRequest(t, app, "/api/weather?city=Chicago")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != "failed to fetch weather data" {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestHandleGetForecast(t *testing.T) {
	app := newTestApp(&mockWeatherService{forecast: testForecast()})

	w := doRequest(t, app, "/api/forecast?city=Chicago")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var days []weather.ForecastDay
	if err := json.Unmarshal(w.Body.Bytes(), &days); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(days) != 5 {
		t.Errorf("expected 5 forecast days, got %d", len(days))
	}
}

func TestHandleGetForecastCityNotFound(t *testing.T) {
	app := newTestApp(&mockWeatherService{
		err: fmt.Errorf("%w: Nowhere", weather.ErrCityNotFound),
	})

	w := doRequest(t, app, "/api/forecast?city=Nowhere")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleGetWeatherByCoordinates(t *testing.T) {
	app := newTestApp(&mockWeatherService{
		bundle: &weather.Bundle{Weather: *testSnapshot(), Forecast: testForecast()},
	})

	w := doRequest(t, app, "/api/weather-coordinates?lat=41.8781&lon=-87.6298")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var bundle weather.Bundle
	if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if bundle.Weather.Location != "Chicago, US" {
		t.Errorf("expected location 'Chicago, US', got %q", bundle.Weather.Location)
	}
	if len(bundle.Forecast) != 5 {
		t.Errorf("expected 5 forecast days, got %d", len(bundle.Forecast))
	}
}

func TestHandleGetWeatherByCoordinatesZeroValues(t *testing.T) {
	// lat=0 (equator) and lon=0 (prime meridian) are valid coordinates and
	// must not be mistaken for absent parameters
	tests := []struct {
		name string
		path string
	}{
		{"zero latitude", "/api/weather-coordinates?lat=0&lon=10"},
		{"zero longitude", "/api/weather-coordinates?lat=51.4769&lon=0"},
		{"both zero", "/api/weather-coordinates?lat=0&lon=0"},
	}

	app := newTestApp(&mockWeatherService{
		bundle: &weather.Bundle{Weather: *testSnapshot(), Forecast: testForecast()},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, app, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}

			var bundle weather.Bundle
			if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if bundle.Weather.Location == "" {
				t.Error("expected a populated weather snapshot")
			}
		})
	}
}

func TestHandleGetWeatherByCoordinatesValidation(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing params", "/api/weather-coordinates"},
		{"latitude out of range", "/api/weather-coordinates?lat=91&lon=0.1"},
		{"longitude out of range", "/api/weather-coordinates?lat=41.8&lon=181"},
	}

	app := newTestApp(&mockWeatherService{
		bundle: &weather.Bundle{Weather: *testSnapshot(), Forecast: testForecast()},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, app, tt.path)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestHandleGetCities(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name:     "matching query",
			path:     "/api/cities?q=san",
			expected: []string{"San Antonio", "San Diego"},
		},
		{
			name:     "no match",
			path:     "/api/cities?q=zzz",
			expected: []string{},
		},
	}

	app := newTestApp(&mockWeatherService{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, app, tt.path)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var got []string
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d cities, got %d: %v", len(tt.expected), len(got), got)
			}
			for i, city := range tt.expected {
				if got[i] != city {
					t.Errorf("expected city %q at index %d, got %q", city, i, got[i])
				}
			}
		})
	}
}

func TestHandleGetCitiesEmptyQueryReturnsAll(t *testing.T) {
	app := newTestApp(&mockWeatherService{})

	w := doRequest(t, app, "/api/cities")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got []string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(got) != 15 {
		t.Errorf("expected all 15 cities, got %d", len(got))
	}
}
