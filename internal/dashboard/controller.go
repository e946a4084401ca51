package dashboard

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"weatherdash/internal/cities"
	"weatherdash/internal/weather"
)

// User-facing error messages. The fetch message is deliberately generic:
// all network and shape failures collapse into it.
const (
	ErrMsgFetchFailed    = "Failed to fetch weather data"
	ErrMsgGeoUnsupported = "Geolocation is not supported by this browser"
	ErrMsgGeoFailed      = "Unable to retrieve your location"
)

// Fetcher performs the dashboard's network calls
type Fetcher interface {
	FetchWeather(city string) (*weather.WeatherSnapshot, error)
	FetchForecast(city string) ([]weather.ForecastDay, error)
	FetchByCoordinates(latitude, longitude float64) (*weather.Bundle, error)
}

// Locator is the device geolocation capability. A nil Locator means the
// capability is absent.
type Locator interface {
	Locate() (latitude, longitude float64, err error)
}

// Controller owns the dashboard's view state: the search query, the
// autocomplete flag, the fetch lifecycle, and the displayed data.
// All mutations happen under one mutex; fetches run in the calling
// goroutine and commit their result only if no newer request has been
// issued since (last-initiated-wins).
type Controller struct {
	mu sync.Mutex

	fetcher     Fetcher
	locator     Locator
	logger      *slog.Logger
	defaultCity string
	selectDelay time.Duration

	query       string
	visible     bool
	suggestions []string

	state    RequestState
	errMsg   string
	snapshot *weather.WeatherSnapshot
	forecast []weather.ForecastDay

	// seq numbers fetches; a completion whose seq is stale is dropped
	seq uint64

	unbind chan struct{}
}

// Option configures a Controller
type Option func(*Controller)

// WithLocator supplies the geolocation capability
func WithLocator(l Locator) Option {
	return func(c *Controller) { c.locator = l }
}

// WithSelectDelay overrides the delay between selecting a city and
// dispatching its search. Zero makes the dispatch synchronous.
func WithSelectDelay(d time.Duration) Option {
	return func(c *Controller) { c.selectDelay = d }
}

// WithDefaultCity overrides the city fetched on initial load
func WithDefaultCity(city string) Option {
	return func(c *Controller) { c.defaultCity = city }
}

func NewController(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		fetcher:     fetcher,
		logger:      logger.With("component", "dashboard"),
		defaultCity: "New York",
		selectDelay: 50 * time.Millisecond,
		suggestions: cities.Filter(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetQuery updates the search query. Autocomplete is visible exactly
// when the query is non-empty, and the suggestion list is recomputed.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = text
	c.visible = len(text) > 0
	c.suggestions = cities.Filter(text)
}

// Focus re-shows the autocomplete after an outside dismissal, as long
// as there is a query to suggest against
func (c *Controller) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = len(c.query) > 0
}

// Dismiss hides the autocomplete. Driven by outside interactions.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
}

// SelectCity commits the chosen suggestion and dispatches a search for
// it after a short delay, decoupling the state commit from the dispatch
func (c *Controller) SelectCity(name string) {
	c.mu.Lock()
	c.query = name
	c.visible = false
	c.suggestions = cities.Filter(name)
	c.mu.Unlock()

	if c.selectDelay <= 0 {
		c.Search(name)
		return
	}
	time.AfterFunc(c.selectDelay, func() { c.Search(name) })
}

// Bind subscribes the controller to a process-wide outside-interaction
// feed; each event dismisses the autocomplete. The subscription lives
// until Close is called.
func (c *Controller) Bind(outside <-chan struct{}) {
	c.mu.Lock()
	if c.unbind != nil {
		c.mu.Unlock()
		return
	}
	done := make(chan struct{})
	c.unbind = done
	c.mu.Unlock()

	go func() {
		for {
			select {
			case <-done:
				return
			case _, ok := <-outside:
				if !ok {
					return
				}
				// An unsubscribe may race with a pending event; honor it
				select {
				case <-done:
					return
				default:
				}
				c.Dismiss()
			}
		}
	}()
}

// Close tears down the outside-interaction subscription. Safe to call
// more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unbind != nil {
		close(c.unbind)
		c.unbind = nil
	}
}

// Search fetches current conditions and the forecast for the query.
// Empty or whitespace-only queries are silently ignored. On failure the
// previously displayed data is retained behind the error banner.
func (c *Controller) Search(query string) {
	city := strings.TrimSpace(query)
	if city == "" {
		return
	}

	seq := c.begin()

	snapshot, err := c.fetcher.FetchWeather(city)
	if err != nil {
		c.logger.Warn("weather fetch failed", "city", city, "error", err)
		c.fail(seq, ErrMsgFetchFailed)
		return
	}

	// Forecast is only requested once the snapshot call has succeeded
	forecast, err := c.fetcher.FetchForecast(city)
	if err != nil {
		c.logger.Warn("forecast fetch failed", "city", city, "error", err)
		c.fail(seq, ErrMsgFetchFailed)
		return
	}

	c.succeed(seq, snapshot, forecast)
}

// SearchByLocation resolves the device location and performs one
// combined fetch for it
func (c *Controller) SearchByLocation() {
	if c.locator == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.state = StateError
		c.errMsg = ErrMsgGeoUnsupported
		return
	}

	seq := c.begin()

	lat, lon, err := c.locator.Locate()
	if err != nil {
		c.logger.Warn("geolocation failed", "error", err)
		c.fail(seq, ErrMsgGeoFailed)
		return
	}

	bundle, err := c.fetcher.FetchByCoordinates(lat, lon)
	if err != nil {
		c.logger.Warn("coordinate fetch failed", "latitude", lat, "longitude", lon, "error", err)
		c.fail(seq, ErrMsgGeoFailed)
		return
	}

	c.succeed(seq, &bundle.Weather, bundle.Forecast)
}

// InitialLoad fetches the default city; if anything fails it installs
// the built-in fallback data so the first paint is never empty
func (c *Controller) InitialLoad() {
	seq := c.begin()

	snapshot, err := c.fetcher.FetchWeather(c.defaultCity)
	if err == nil {
		var forecast []weather.ForecastDay
		forecast, err = c.fetcher.FetchForecast(c.defaultCity)
		if err == nil {
			c.succeed(seq, snapshot, forecast)
			return
		}
	}

	c.logger.Warn("initial load failed, using fallback data", "city", c.defaultCity, "error", err)
	fallback := weather.FallbackSnapshot()
	c.succeed(seq, &fallback, weather.FallbackForecast())
}

// View returns a copy of the current state for rendering
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	suggestions := make([]string, len(c.suggestions))
	copy(suggestions, c.suggestions)

	forecast := make([]weather.ForecastDay, len(c.forecast))
	copy(forecast, c.forecast)

	var snapshot *weather.WeatherSnapshot
	if c.snapshot != nil {
		s := *c.snapshot
		snapshot = &s
	}

	return View{
		State:               c.state,
		Error:               c.errMsg,
		Query:               c.query,
		AutocompleteVisible: c.visible,
		Suggestions:         suggestions,
		Weather:             snapshot,
		Forecast:            forecast,
	}
}

// begin marks a new fetch: loading is shown, the previous error is
// cleared, and a fresh sequence number is issued
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = StateLoading
	c.errMsg = ""
	return c.seq
}

func (c *Controller) succeed(seq uint64, snapshot *weather.WeatherSnapshot, forecast []weather.ForecastDay) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// A newer request superseded this one
		return
	}
	c.snapshot = snapshot
	c.forecast = forecast
	c.state = StateSuccess
	c.errMsg = ""
}

func (c *Controller) fail(seq uint64, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	// Previously displayed data is kept; the error banner takes priority
	c.state = StateError
	c.errMsg = msg
}
