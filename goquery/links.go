// Package goquery provides CSS-selector-based implementations of the
// newscrawl parsing interfaces: link discovery on landing pages and
// headline, body and date extraction from article pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newscrawl"
)

// Ensure Discoverer implements newscrawl.LinkDiscoverer at compile time.
var _ newscrawl.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer finds article links on landing pages using the rule set's
// link selectors.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// DiscoverLinks iterates the selectors in order and, within each selector,
// anchors in document order. Hrefs are resolved against baseURL; anything
// that does not resolve to http or https is dropped. Candidates are capped
// at twice maxLinks before deduplication so duplicate-heavy pages can
// still fill the budget, then deduplicated preserving first-seen order and
// truncated to maxLinks.
//
// Selector order matters: earlier selectors contribute first and therefore
// survive truncation preferentially.
func (d *Discoverer) DiscoverLinks(html, baseURL string, selectors []string, maxLinks int) ([]string, error) {
	if maxLinks <= 0 || len(selectors) == 0 {
		return nil, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	limit := 2 * maxLinks
	var candidates []string

	for _, selector := range selectors {
		if len(candidates) >= limit {
			break
		}
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, ok := sel.Attr("href")
			if !ok || href == "" {
				return true
			}
			resolved := resolveURL(base, href)
			if resolved == "" {
				return true
			}
			candidates = append(candidates, resolved)
			return len(candidates) < limit
		})
	}

	seen := make(map[string]bool, len(candidates))
	var links []string
	for _, u := range candidates {
		if seen[u] {
			continue
		}
		seen[u] = true
		links = append(links, u)
		if len(links) >= maxLinks {
			break
		}
	}

	return links, nil
}

// resolveURL resolves a relative href against a base URL. Returns the
// empty string when the href cannot be parsed or does not resolve to an
// http(s) URL (javascript:, mailto:, etc.).
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
