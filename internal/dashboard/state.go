package dashboard

import "weatherdash/internal/weather"

// RequestState tracks the fetch lifecycle of the dashboard.
// Idle is only the initial transient before the first automatic fetch.
type RequestState int

const (
	StateIdle RequestState = iota
	StateLoading
	StateSuccess
	StateError
)

func (s RequestState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// View is an immutable projection of the controller's state, consumed
// by the render layer
type View struct {
	State               RequestState
	Error               string
	Query               string
	AutocompleteVisible bool
	Suggestions         []string
	Weather             *weather.WeatherSnapshot
	Forecast            []weather.ForecastDay
}
