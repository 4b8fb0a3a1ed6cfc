package cmd

import (
	"fmt"
	"io"

	"github.com/TRX-1000/Weatherly-v2/internal/news"
	"github.com/TRX-1000/Weatherly-v2/internal/weather"
)

// summaryWidth clips news summaries for terminal display. The pipeline
// leaves summaries untruncated.
const summaryWidth = 180

func renderCurrent(w io.Writer, cur *weather.Current, u weather.Units) {
	fmt.Fprintf(w, "%s  %s: %s, %s\n", weather.Glyph(cur.ConditionID), cur.City, u.Temp(cur.Temp), cur.Description)
	fmt.Fprintf(w, "   Feels like %s · Humidity %d%% · Wind %s\n", u.Temp(cur.FeelsLike), cur.Humidity, u.Wind(cur.Wind))
}

func renderForecast(w io.Writer, city string, days []weather.Day, u weather.Units) {
	if len(days) == 0 {
		fmt.Fprintf(w, "No forecast data for %s.\n", city)
		return
	}
	fmt.Fprintf(w, "Forecast for %s:\n", city)
	for _, d := range days {
		fmt.Fprintf(w, "  %s  %s  %s / %s  %s\n",
			d.Date.Format("Mon Jan 02"), weather.Glyph(d.ConditionID), u.Temp(d.Min), u.Temp(d.Max), d.Description)
	}
}

func renderNews(w io.Writer, place string, items []news.Item) {
	if len(items) == 0 {
		fmt.Fprintf(w, "No weather news found for %s.\n", place)
		return
	}
	fmt.Fprintf(w, "Weather news for %s:\n\n", place)
	for _, it := range items {
		fmt.Fprintf(w, "  %s\n", it.Title)
		fmt.Fprintf(w, "    %s · %s (%s)\n", it.Source, it.PublishedRelative, it.Published)
		if it.Summary != "" {
			fmt.Fprintf(w, "    %s\n", truncate(it.Summary, summaryWidth))
		}
		fmt.Fprintf(w, "    %s\n\n", it.Link)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
