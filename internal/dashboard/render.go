package dashboard

import (
	"fmt"
	"strings"
)

const skeletonLine = "░░░░░░░░░░░░░░░░░░░░░░░░░░░░"

// Render projects a View to its text output. It is a pure function of
// the view: loading shows skeleton placeholders, an error shows the
// banner, otherwise the two-panel layout is drawn.
func Render(v View) string {
	var b strings.Builder

	b.WriteString("Search: " + v.Query + "\n")
	if v.AutocompleteVisible {
		for _, s := range v.Suggestions {
			b.WriteString("  > " + s + "\n")
		}
	}
	b.WriteString("\n")

	switch {
	case v.State == StateLoading:
		renderSkeleton(&b)
	case v.Error != "":
		b.WriteString("⚠ " + v.Error + "\n")
	case v.Weather != nil:
		renderPanels(&b, v)
	}

	return b.String()
}

func renderSkeleton(b *strings.Builder) {
	for i := 0; i < 4; i++ {
		b.WriteString(skeletonLine + "\n")
	}
}

func renderPanels(b *strings.Builder, v View) {
	w := v.Weather

	b.WriteString(fmt.Sprintf("%s\n", w.Location))
	b.WriteString(fmt.Sprintf("%s  %s  %.0f°F (feels like %.0f°F)\n",
		w.Icon.Symbol(), w.Condition, w.Temperature.Fahrenheit, w.FeelsLike.Fahrenheit))
	b.WriteString(fmt.Sprintf("Humidity %d%%  Wind %.0f mph %s\n",
		w.Humidity, w.Wind.SpeedInMph, w.Wind.DirectionCardinal))
	b.WriteString(fmt.Sprintf("Sunrise %s  Sunset %s\n", w.Sunrise, w.Sunset))

	if len(v.Forecast) == 0 {
		return
	}

	b.WriteString("\n5-Day Forecast\n")
	for _, day := range v.Forecast {
		b.WriteString(fmt.Sprintf("  %-12s %s  %.0f°/%.0f°  %s\n",
			day.Date, day.Icon.Symbol(), day.High.Fahrenheit, day.Low.Fahrenheit, day.Condition))
	}
}
