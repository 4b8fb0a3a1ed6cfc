package news

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from s and collapses runs of whitespace
// (including newlines and tabs) to single spaces, trimming the ends.
// Idempotent: sanitizing already-plain text returns it unchanged.
func Sanitize(s string) string {
	plain := html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.Join(strings.Fields(plain), " ")
}
