package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed/rss"
)

// RawEntry is a single feed result before sanitization or filtering. The
// publish time is feed-supplied and low trust.
type RawEntry struct {
	Title     string
	Source    string
	Summary   string
	Link      string
	Published string     // raw date string from the feed
	Parsed    *time.Time // feed-parsed instant, if the feed gave one
}

// Fetcher runs one query against the news feed.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]RawEntry, error)
}

const fetchTimeout = 10 * time.Second

// GoogleNewsFetcher queries the Google News RSS search endpoint. The rss
// sub-parser is used directly because the universal gofeed parser drops the
// <source> element Google News uses for the publisher name.
type GoogleNewsFetcher struct {
	Locale Locale
	Client *http.Client
	parser *rss.Parser
}

func NewGoogleNewsFetcher(loc Locale) *GoogleNewsFetcher {
	return &GoogleNewsFetcher{
		Locale: loc,
		Client: &http.Client{Timeout: fetchTimeout},
		parser: &rss.Parser{},
	}
}

func (f *GoogleNewsFetcher) Fetch(ctx context.Context, q Query) ([]RawEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.URL(f.Locale), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", q.Text, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", q.Text, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %q: status %d", q.Text, resp.StatusCode)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed for %q: %w", q.Text, err)
	}

	entries := make([]RawEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		source := "Unknown"
		if item.Source != nil && item.Source.Title != "" {
			source = item.Source.Title
		}
		entries = append(entries, RawEntry{
			Title:     item.Title,
			Source:    source,
			Summary:   item.Description,
			Link:      item.Link,
			Published: item.PubDate,
			Parsed:    item.PubDateParsed,
		})
	}
	return entries, nil
}
