package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText returns the visible text of the first selector with a
// non-empty match, with whitespace runs collapsed to single spaces and the
// result trimmed. Returns the empty string when nothing matches; whether
// that disqualifies the record is the caller's decision.
func ExtractText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := collapseSpace(sel.Text()); text != "" {
			return text
		}
	}
	return ""
}

// collapseSpace collapses all whitespace runs to single spaces and trims.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
