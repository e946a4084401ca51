package types

// IconKey identifies the pictograph shown for a weather condition.
// The set is closed; anything unrecognized renders as IconDefault.
type IconKey string

const (
	IconClear        IconKey = "clear"
	IconPartlyCloudy IconKey = "partly-cloudy"
	IconCloudy       IconKey = "cloudy"
	IconFog          IconKey = "fog"
	IconDrizzle      IconKey = "drizzle"
	IconRain         IconKey = "rain"
	IconSnow         IconKey = "snow"
	IconStorm        IconKey = "storm"
	IconDefault      IconKey = "default"
)

// iconSymbols maps icon keys to their display symbols
var iconSymbols = map[IconKey]string{
	IconClear:        "☀",
	IconPartlyCloudy: "⛅",
	IconCloudy:       "☁",
	IconFog:          "🌫",
	IconDrizzle:      "🌦",
	IconRain:         "🌧",
	IconSnow:         "❄",
	IconStorm:        "⛈",
	IconDefault:      "🌡",
}

// Symbol returns the display symbol for the icon key, falling back
// to the generic symbol for unrecognized keys.
func (k IconKey) Symbol() string {
	if s, ok := iconSymbols[k]; ok {
		return s
	}
	return iconSymbols[IconDefault]
}
