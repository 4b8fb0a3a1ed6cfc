package news

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Item is one ranked weather news result, ready for rendering. The summary
// is untruncated; clipping it is the rendering layer's job.
type Item struct {
	Title             string `json:"title"`
	Source            string `json:"source"`
	Published         string `json:"published"`
	PublishedRelative string `json:"published_relative"`
	Summary           string `json:"summary"`
	Link              string `json:"link"`

	recency Recency
}

// DisplayCaps are the result-list sizes a caller may request.
var DisplayCaps = []int{5, 10, 15}

// ValidDisplayCap reports whether n is a selectable display cap.
func ValidDisplayCap(n int) bool {
	for _, c := range DisplayCaps {
		if n == c {
			return true
		}
	}
	return false
}

const (
	// candidatePool bounds how many deduplicated entries are examined, so a
	// pathologically large merged result stays cheap to classify.
	candidatePool = 20

	// maxAccepted matches the largest selectable display cap so a limit of
	// 15 can actually be filled.
	maxAccepted = 15
)

// Pipeline fetches, filters and ranks weather news. It holds no state
// between invocations; concurrent calls are independent.
type Pipeline struct {
	fetcher Fetcher
	now     func() time.Time
}

func NewPipeline(fetcher Fetcher) *Pipeline {
	return &Pipeline{fetcher: fetcher, now: time.Now}
}

// FetchWeatherNews runs the full pipeline for place: three feed queries,
// dedup by sanitized title, a 30-day age filter, the relevance gate, then
// ranking by recency and truncation to limit. Upstream failures degrade to
// fewer (possibly zero) results; only an invalid limit is an error.
func (p *Pipeline) FetchWeatherNews(ctx context.Context, place string, limit int) ([]Item, error) {
	if !ValidDisplayCap(limit) {
		return nil, fmt.Errorf("invalid news limit %d (valid: 5, 10, 15)", limit)
	}

	items := p.filter(dedupe(p.fetchAll(ctx, place)))

	// Most recent first; entries with no resolved instant rank last.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].recency, items[j].recency
		if a.Known != b.Known {
			return a.Known
		}
		return a.Instant.After(b.Instant)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// fetchAll runs the three query variants in template order. A query that
// errors contributes nothing and does not abort the others.
func (p *Pipeline) fetchAll(ctx context.Context, place string) []RawEntry {
	var all []RawEntry
	for _, q := range BuildQueries(place) {
		entries, err := p.fetcher.Fetch(ctx, q)
		if err != nil {
			continue
		}
		all = append(all, entries...)
	}
	return all
}

// candidate pairs an entry with its sanitized title, the dedup key.
type candidate struct {
	entry RawEntry
	title string
}

// dedupe folds the fetch-ordered entries into at most candidatePool
// candidates with unique sanitized titles. First occurrence wins.
func dedupe(entries []RawEntry) []candidate {
	seen := make(map[string]struct{}, len(entries))
	var out []candidate
	for _, e := range entries {
		if len(out) == candidatePool {
			break
		}
		title := Sanitize(e.Title)
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, candidate{entry: e, title: title})
	}
	return out
}

// filter sanitizes each candidate, resolves its recency, then applies the
// age filter and the relevance gate, keeping at most maxAccepted items.
func (p *Pipeline) filter(candidates []candidate) []Item {
	now := p.now()
	items := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		if len(items) == maxAccepted {
			break
		}
		summary := Sanitize(c.entry.Summary)
		rec := ResolveRecency(c.entry.Parsed, c.entry.Published)
		if rec.Known && now.Sub(rec.Instant) > maxAge {
			continue
		}
		if !Relevant(c.title, summary) {
			continue
		}
		items = append(items, Item{
			Title:             c.title,
			Source:            c.entry.Source,
			Published:         rec.Absolute(),
			PublishedRelative: rec.Relative(now),
			Summary:           summary,
			Link:              c.entry.Link,
			recency:           rec,
		})
	}
	return items
}
