package weather

import "weatherdash/internal/types"

// FallbackSnapshot returns the built-in snapshot shown when the initial
// default-city fetch fails, so the dashboard is never empty on first paint.
func FallbackSnapshot() WeatherSnapshot {
	return WeatherSnapshot{
		Location:    "New York, NY",
		Temperature: types.NewTemperatureFromFahrenheit(72),
		FeelsLike:   types.NewTemperatureFromFahrenheit(70),
		Condition:   "Partly Cloudy",
		Humidity:    65,
		Wind:        types.NewWindFromMph(8, 315),
		Sunrise:     "6:12 AM",
		Sunset:      "7:45 PM",
		Icon:        types.IconPartlyCloudy,
	}
}

// FallbackForecast returns the built-in 5-day forecast that accompanies
// FallbackSnapshot
func FallbackForecast() []ForecastDay {
	return []ForecastDay{
		{Date: "Mon", High: types.NewTemperatureFromFahrenheit(75), Low: types.NewTemperatureFromFahrenheit(61), Condition: "Clear sky", Icon: types.IconClear},
		{Date: "Tue", High: types.NewTemperatureFromFahrenheit(73), Low: types.NewTemperatureFromFahrenheit(60), Condition: "Partly cloudy", Icon: types.IconPartlyCloudy},
		{Date: "Wed", High: types.NewTemperatureFromFahrenheit(69), Low: types.NewTemperatureFromFahrenheit(58), Condition: "Slight rain", Icon: types.IconRain},
		{Date: "Thu", High: types.NewTemperatureFromFahrenheit(70), Low: types.NewTemperatureFromFahrenheit(57), Condition: "Overcast", Icon: types.IconCloudy},
		{Date: "Fri", High: types.NewTemperatureFromFahrenheit(74), Low: types.NewTemperatureFromFahrenheit(62), Condition: "Mainly clear", Icon: types.IconPartlyCloudy},
	}
}
