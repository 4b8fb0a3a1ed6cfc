package news

import "strings"

// weatherTerms is the fixed vocabulary gating acceptance: an article must
// mention at least one of these to count as weather news. IMD, NOAA and the
// Met Office are the agency names the feed editions surface.
var weatherTerms = []string{
	"weather", "forecast", "temperature", "rainfall", "storm", "cyclone",
	"hurricane", "tornado", "heatwave", "cold wave", "imd", "noaa",
	"met office", "snowfall", "thunderstorm", "rain alert",
}

// offTopicTerms force rejection regardless of weather terms. Catches books,
// films and sports coverage that merely mentions the weather.
var offTopicTerms = []string{
	"book", "novel", "review", "movie", "show", "series", "trailer",
	"podcast", "author", "set in", "mystery", "crime", "celebrity",
	"music", "sports", "match", "fashion",
}

// Relevant reports whether a sanitized title/summary pair is genuinely
// about weather: at least one weather term present and no off-topic term.
// A two-list substring heuristic, case-insensitive; no scoring.
func Relevant(title, summary string) bool {
	text := strings.ToLower(title + " " + summary)
	if !containsAny(text, weatherTerms) {
		return false
	}
	return !containsAny(text, offTopicTerms)
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
