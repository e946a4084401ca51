package ipapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json?fields=status,message,city,lat,lon
const (
	baseURL = "http://ip-api.com/json"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// Locate resolves the caller's approximate coordinates from its public IP
func (c *Client) Locate() (*LocateAPIResponse, error) {
	resp, err := c.httpClient.Get(c.baseURL + "?fields=status,message,city,lat,lon")
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

	var apiResp LocateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Status != "success" {
		return nil, fmt.Errorf("lookup failed: %s", apiResp.Message)
	}

	return &apiResp, nil
}
