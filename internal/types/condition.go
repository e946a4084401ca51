package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Condition describes weather conditions with a label and icon key
type Condition struct {
	Code  int     `json:"code"`
	Label string  `json:"label"`
	Icon  IconKey `json:"icon"`
}

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// conditionLabels maps weather codes to their display labels
var conditionLabels = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// GetConditionLabel returns the label for a given weather code
func GetConditionLabel(code int) string {
	if label, ok := conditionLabels[code]; ok {
		return label
	}
	return "Unknown"
}

// IconForCode maps a WMO weather code onto the closed icon key set
func IconForCode(code int) IconKey {
	switch {
	case code == 0:
		return IconClear
	case code == 1 || code == 2:
		return IconPartlyCloudy
	case code == 3:
		return IconCloudy
	case code == 45 || code == 48:
		return IconFog
	case code >= 51 && code <= 55:
		return IconDrizzle
	case (code >= 61 && code <= 65) || (code >= 80 && code <= 82):
		return IconRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return IconSnow
	case code >= 95 && code <= 99:
		return IconStorm
	default:
		return IconDefault
	}
}

// NewCondition creates a Condition from a weather code
func NewCondition(code int) Condition {
	return Condition{
		Code:  code,
		Label: GetConditionLabel(code),
		Icon:  IconForCode(code),
	}
}
