//go:build integration

package openweathermap

import (
	"encoding/json"
	"os"
	"testing"
)

func TestClient_GetCurrent_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		t.Skip("OPENWEATHER_API_KEY not set, skipping")
	}

	client := NewClient(apiKey)

	t.Logf("Making API call to OpenWeatherMap current weather API...")

	resp, err := client.GetCurrent("London")
	if err != nil {
		t.Fatalf("Failed to get current conditions: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Name != "London" {
		t.Errorf("Expected city name 'London', got %q", resp.Name)
	}
	if len(resp.Weather) == 0 {
		t.Fatal("No weather entries in response")
	}
	t.Logf("Condition: %s (%s)", resp.Weather[0].Main, resp.Weather[0].Description)
	t.Logf("Temperature: %.1f F, humidity %d%%", resp.Main.Temp, resp.Main.Humidity)

	if resp.Main.Humidity < 0 || resp.Main.Humidity > 100 {
		t.Errorf("Humidity out of range: %d", resp.Main.Humidity)
	}
	if resp.Sys.Sunrise == 0 || resp.Sys.Sunset == 0 {
		t.Error("Expected sunrise and sunset timestamps")
	}
}

func TestClient_GetCurrentByCoords_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		t.Skip("OPENWEATHER_API_KEY not set, skipping")
	}

	client := NewClient(apiKey)

	// Sydney, Australia
	resp, err := client.GetCurrentByCoords(-33.8688, 151.2093)
	if err != nil {
		t.Fatalf("Failed to get current conditions by coords: %v", err)
	}

	t.Logf("Resolved location: %s, %s", resp.Name, resp.Sys.Country)
	if resp.Sys.Country != "AU" {
		t.Errorf("Expected country 'AU', got %q", resp.Sys.Country)
	}
}
