package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"weatherdash/internal/weather"
)

// APIClient is a Fetcher backed by the dashboard API server.
// Any non-200 status is treated uniformly as a fetch failure; the
// controller collapses all failures into its generic error message.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *APIClient) FetchWeather(city string) (*weather.WeatherSnapshot, error) {
	var snapshot weather.WeatherSnapshot
	if err := c.getJSON("/api/weather?city="+url.QueryEscape(city), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *APIClient) FetchForecast(city string) ([]weather.ForecastDay, error) {
	var days []weather.ForecastDay
	if err := c.getJSON("/api/forecast?city="+url.QueryEscape(city), &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *APIClient) FetchByCoordinates(latitude, longitude float64) (*weather.Bundle, error) {
	path := fmt.Sprintf("/api/weather-coordinates?lat=%f&lon=%f", latitude, longitude)
	var bundle weather.Bundle
	if err := c.getJSON(path, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// FetchCities asks the server-side autocomplete for suggestions
func (c *APIClient) FetchCities(query string) ([]string, error) {
	var names []string
	if err := c.getJSON("/api/cities?q="+url.QueryEscape(query), &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *APIClient) getJSON(path string, out any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// compile-time guard: APIClient satisfies the controller's Fetcher
var _ Fetcher = (*APIClient)(nil)
