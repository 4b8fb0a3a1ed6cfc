// Package news fetches, filters and ranks weather news for a place from the
// Google News RSS search feed.
package news

import "net/url"

const feedBase = "https://news.google.com/rss/search"

// Locale carries the Google News edition parameters appended to every
// search URL.
type Locale struct {
	HL   string
	GL   string
	CEID string
}

// DefaultLocale is the edition the app originally shipped with.
var DefaultLocale = Locale{HL: "en-IN", GL: "IN", CEID: "IN:en"}

// Query is one search against the feed, bound to a fixed template.
// Immutable once built.
type Query struct {
	Text   string
	Window string // recency restriction, e.g. "7d"; empty means none
}

// BuildQueries returns the three query variants for a place, highest
// precision first: recency-windowed, OR-category, then plain fallback.
func BuildQueries(place string) []Query {
	return []Query{
		{Text: place + " weather", Window: "7d"},
		{Text: place + " (weather OR forecast OR temperature)"},
		{Text: place + " weather"},
	}
}

// URL renders the query as a feed search URL for the given locale.
func (q Query) URL(loc Locale) string {
	text := q.Text
	if q.Window != "" {
		text += " when:" + q.Window
	}
	v := url.Values{}
	v.Set("q", text)
	v.Set("hl", loc.HL)
	v.Set("gl", loc.GL)
	v.Set("ceid", loc.CEID)
	return feedBase + "?" + v.Encode()
}
