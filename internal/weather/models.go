package weather

import "weatherdash/internal/types"

// WeatherSnapshot is a single point-in-time current-conditions reading.
// It is immutable once built and replaced wholesale on the next fetch.
type WeatherSnapshot struct {
	Location    string            `json:"location"`
	Temperature types.Temperature `json:"temperature"`
	FeelsLike   types.Temperature `json:"feels_like"`
	Condition   string            `json:"condition"`
	Humidity    int               `json:"humidity"`
	Wind        types.Wind        `json:"wind"`
	Sunrise     string            `json:"sunrise"`
	Sunset      string            `json:"sunset"`
	Icon        types.IconKey     `json:"icon"`
}

// ForecastDay is one day's summary within the 5-day outlook
type ForecastDay struct {
	Date      string            `json:"date"`
	High      types.Temperature `json:"high"`
	Low       types.Temperature `json:"low"`
	Condition string            `json:"condition"`
	Icon      types.IconKey     `json:"icon"`
}

// Bundle pairs a snapshot with its forecast. The two always originate
// from the same logical fetch and are set or cleared together.
type Bundle struct {
	Weather  WeatherSnapshot `json:"weather"`
	Forecast []ForecastDay   `json:"forecast"`
}
