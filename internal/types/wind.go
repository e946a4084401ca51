package types

const MphToKph = 1.60934

type Wind struct {
	SpeedInMph        float64 `json:"speed_mph"`
	SpeedInKph        float64 `json:"speed_kph"`
	DirectionDegrees  float64 `json:"direction_degrees"`
	DirectionCardinal string  `json:"direction_cardinal"`
}

var cardinalDirections = []string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

func NewWindFromMph(speedInMph, directionDegrees float64) Wind {
	direction := (directionDegrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}

	return Wind{
		SpeedInMph:        speedInMph,
		SpeedInKph:        speedInMph * MphToKph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: cardinalDirections[index],
	}
}
