package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// metaDateNames are the metadata tags scanned when no date selector
// matches, in priority order.
var metaDateNames = []string{
	"article:published_time",
	"og:updated_time",
	"date",
	"pubdate",
}

// ExtractDate recovers a publication timestamp from an article document.
// It tries the rule set's date selectors first, reading a datetime
// attribute when present and the element's visible text otherwise, then
// falls back to common metadata tags. Returns false when every strategy
// fails; an unrecoverable date is a valid outcome, never an error.
func ExtractDate(doc *goquery.Document, selectors []string) (time.Time, bool) {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		val, ok := sel.Attr("datetime")
		if !ok || strings.TrimSpace(val) == "" {
			val = sel.Text()
		}
		if t, ok := parseTimestamp(val); ok {
			return t, true
		}
	}

	for _, name := range metaDateNames {
		val := metaContent(doc, name)
		if val == "" {
			continue
		}
		if t, ok := parseTimestamp(val); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// metaContent returns the content attribute of the first meta tag carrying
// the name, checking the property attribute first (Open Graph style) and
// the name attribute second.
func metaContent(doc *goquery.Document, name string) string {
	sel := doc.Find(`meta[property="` + name + `"]`).First()
	if sel.Length() == 0 {
		sel = doc.Find(`meta[name="` + name + `"]`).First()
	}
	content, _ := sel.Attr("content")
	return strings.TrimSpace(content)
}

// parseTimestamp parses a flexible near-ISO-8601 string. A trailing "Z"
// is treated as UTC; strings without zone information are interpreted in
// local time. The result is converted to local time for consistent cutoff
// comparison and timezone-less output formatting.
func parseTimestamp(val string) (time.Time, bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(val, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(time.Local), true
}
