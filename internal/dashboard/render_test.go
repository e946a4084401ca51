package dashboard

import (
	"strings"
	"testing"

	"weatherdash/internal/types"
	"weatherdash/internal/weather"
)

func dataView() View {
	snapshot := weather.FallbackSnapshot()
	return View{
		State:    StateSuccess,
		Weather:  &snapshot,
		Forecast: weather.FallbackForecast(),
	}
}

func TestRender_LoadingShowsSkeleton(t *testing.T) {
	v := dataView()
	v.State = StateLoading

	out := Render(v)
	if !strings.Contains(out, skeletonLine) {
		t.Error("loading render should contain skeleton placeholders")
	}
	if strings.Contains(out, "New York, NY") {
		t.Error("loading render should suppress the data panels")
	}
}

func TestRender_ErrorShowsBanner(t *testing.T) {
	v := dataView()
	v.State = StateError
	v.Error = ErrMsgFetchFailed

	out := Render(v)
	if !strings.Contains(out, ErrMsgFetchFailed) {
		t.Errorf("error render missing banner, got:\n%s", out)
	}
}

func TestRender_DataShowsTwoPanels(t *testing.T) {
	out := Render(dataView())

	if !strings.Contains(out, "New York, NY") {
		t.Error("current conditions panel missing location")
	}
	if !strings.Contains(out, "Partly Cloudy") {
		t.Error("current conditions panel missing condition label")
	}
	if !strings.Contains(out, "5-Day Forecast") {
		t.Error("forecast panel missing")
	}
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri"} {
		if !strings.Contains(out, day) {
			t.Errorf("forecast panel missing day %q", day)
		}
	}
}

func TestRender_AutocompleteSuggestions(t *testing.T) {
	v := View{
		Query:               "san",
		AutocompleteVisible: true,
		Suggestions:         []string{"San Antonio", "San Diego"},
	}

	out := Render(v)
	if !strings.Contains(out, "San Antonio") || !strings.Contains(out, "San Diego") {
		t.Errorf("suggestions not rendered, got:\n%s", out)
	}

	v.AutocompleteVisible = false
	out = Render(v)
	if strings.Contains(out, "San Antonio") {
		t.Error("suggestions rendered while autocomplete is hidden")
	}
}

func TestRender_UnknownIconFallsBack(t *testing.T) {
	v := dataView()
	v.Weather.Icon = types.IconKey("definitely-not-an-icon")

	out := Render(v)
	if !strings.Contains(out, types.IconDefault.Symbol()) {
		t.Error("unknown icon key should render the generic symbol")
	}
}
