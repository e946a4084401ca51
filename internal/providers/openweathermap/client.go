package openweathermap

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// API Docs: https://openweathermap.org/current
// Sample request: https://api.openweathermap.org/data/2.5/weather?q=New%20York&units=imperial&appid=KEY
const (
	baseCurrentURL = "https://api.openweathermap.org/data/2.5/weather"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseCurrentURL,
		apiKey:     apiKey,
	}
}

// GetCurrent fetches current conditions for the given city name
func (c *Client) GetCurrent(city string) (*CurrentAPIResponse, error) {
	return c.get(func(q url.Values) {
		q.Set("q", city)
	})
}

// GetCurrentByCoords fetches current conditions for the given coordinates
func (c *Client) GetCurrentByCoords(latitude, longitude float64) (*CurrentAPIResponse, error) {
	return c.get(func(q url.Values) {
		q.Set("lat", fmt.Sprintf("%f", latitude))
		q.Set("lon", fmt.Sprintf("%f", longitude))
	})
}

func (c *Client) get(setLocation func(url.Values)) (*CurrentAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	setLocation(q)
	q.Set("units", "imperial")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp CurrentAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
