package news

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

const absoluteFormat = "Jan 02, 2006"

// maxAge is the oldest a dated entry may be before it is dropped.
const maxAge = 30 * 24 * time.Hour

// Recency is a feed timestamp resolved for sorting and display. Known is
// false when the feed date was absent or unparseable; such entries sort as
// oldest and are exempt from the age filter.
type Recency struct {
	Instant time.Time
	Known   bool
}

// ResolveRecency turns a feed-supplied publish time into a Recency. The
// feed-parsed instant is preferred; otherwise the raw string goes through a
// lenient parser.
func ResolveRecency(parsed *time.Time, raw string) Recency {
	if parsed != nil {
		return Recency{Instant: *parsed, Known: true}
	}
	if raw == "" {
		return Recency{}
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return Recency{}
	}
	return Recency{Instant: t, Known: true}
}

// Absolute formats the instant as "Jan 02, 2006", or "Unknown" when the
// timestamp never resolved.
func (r Recency) Absolute() string {
	if !r.Known {
		return "Unknown"
	}
	return r.Instant.Format(absoluteFormat)
}

// Relative returns a human "time ago" label for the instant as of now.
// Entries a month or older fall back to the absolute date.
func (r Recency) Relative(now time.Time) string {
	if !r.Known {
		return "Unknown"
	}
	elapsed := now.Sub(r.Instant)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return agoLabel(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return agoLabel(int(elapsed.Hours()), "hour")
	case elapsed < 48*time.Hour:
		return "Yesterday"
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(elapsed.Hours())/24)
	case elapsed < maxAge:
		return agoLabel(int(elapsed.Hours())/24/7, "week")
	default:
		return r.Absolute()
	}
}

func agoLabel(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
