package weather

import (
	"fmt"
	"time"

	"weatherdash/internal/providers/openmeteo"
	"weatherdash/internal/providers/openweathermap"
	"weatherdash/internal/types"
)

// iconForOWMID maps an OpenWeatherMap condition ID onto the closed icon set.
// ID groups: https://openweathermap.org/weather-conditions
func iconForOWMID(id int) types.IconKey {
	switch {
	case id >= 200 && id < 300:
		return types.IconStorm
	case id >= 300 && id < 400:
		return types.IconDrizzle
	case id >= 500 && id < 600:
		return types.IconRain
	case id >= 600 && id < 700:
		return types.IconSnow
	case id >= 700 && id < 800:
		return types.IconFog
	case id == 800:
		return types.IconClear
	case id == 801 || id == 802:
		return types.IconPartlyCloudy
	case id == 803 || id == 804:
		return types.IconCloudy
	default:
		return types.IconDefault
	}
}

// mapCurrentAPIResponseToSnapshot converts an OpenWeatherMap current-conditions
// response to a WeatherSnapshot
func mapCurrentAPIResponseToSnapshot(resp *openweathermap.CurrentAPIResponse) (*WeatherSnapshot, error) {
	if resp == nil {
		return nil, fmt.Errorf("current conditions response is nil")
	}

	condition := "Unknown"
	icon := types.IconDefault
	if len(resp.Weather) > 0 {
		condition = resp.Weather[0].Main
		icon = iconForOWMID(resp.Weather[0].ID)
	}

	location := resp.Name
	if resp.Sys.Country != "" {
		location = fmt.Sprintf("%s, %s", resp.Name, resp.Sys.Country)
	}

	// Sunrise and sunset arrive as unix timestamps with a UTC offset
	zone := time.FixedZone("local", resp.Timezone)

	return &WeatherSnapshot{
		Location:    location,
		Temperature: types.NewTemperatureFromFahrenheit(resp.Main.Temp),
		FeelsLike:   types.NewTemperatureFromFahrenheit(resp.Main.FeelsLike),
		Condition:   condition,
		Humidity:    resp.Main.Humidity,
		Wind:        types.NewWindFromMph(resp.Wind.Speed, resp.Wind.Deg),
		Sunrise:     time.Unix(resp.Sys.Sunrise, 0).In(zone).Format("3:04 PM"),
		Sunset:      time.Unix(resp.Sys.Sunset, 0).In(zone).Format("3:04 PM"),
		Icon:        icon,
	}, nil
}

// mapForecastAPIResponseToDays converts Open-Meteo daily arrays to ForecastDay
// entries, truncated to forecastDays
func mapForecastAPIResponseToDays(resp *openmeteo.ForecastAPIResponse, forecastDays int) ([]ForecastDay, error) {
	if resp == nil {
		return nil, fmt.Errorf("forecast response is nil")
	}

	daily := resp.Daily
	n := len(daily.Time)
	if len(daily.WeatherCode) < n || len(daily.Temperature2MMax) < n || len(daily.Temperature2MMin) < n {
		return nil, fmt.Errorf("forecast response arrays have mismatched lengths")
	}
	if n > forecastDays {
		n = forecastDays
	}

	days := make([]ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		label := daily.Time[i]
		if t, err := time.Parse("2006-01-02", daily.Time[i]); err == nil {
			label = t.Format("Mon, Jan 2")
		}

		condition := types.NewCondition(daily.WeatherCode[i])
		days = append(days, ForecastDay{
			Date:      label,
			High:      types.NewTemperatureFromFahrenheit(daily.Temperature2MMax[i]),
			Low:       types.NewTemperatureFromFahrenheit(daily.Temperature2MMin[i]),
			Condition: condition.Label,
			Icon:      condition.Icon,
		})
	}

	return days, nil
}
