package newscrawl

import "time"

// Extraction holds the fields recovered from one article page.
type Extraction struct {
	Headline string
	Body     string

	// PublishedAt is nil when no date strategy succeeded.
	PublishedAt *time.Time
}

// Extractor recovers headline, body text and publication date from article
// HTML using a publisher rule set.
type Extractor interface {
	Extract(html string, rules RuleSet) (*Extraction, error)
}

// LinkDiscoverer finds article links on a landing page.
type LinkDiscoverer interface {
	// DiscoverLinks resolves anchors matched by the selectors against
	// baseURL, deduplicates them preserving first-seen order, and caps
	// the result at maxLinks. An empty selector list yields an empty
	// result, not an error.
	DiscoverLinks(html, baseURL string, selectors []string, maxLinks int) ([]string, error)
}

// Target is a landing page to crawl plus the article-link budget for it.
type Target struct {
	URL      string
	MaxLinks int
}

// Targets builds crawl targets from a list of landing-page URLs, all
// sharing the same link budget.
func Targets(sites []string, maxLinks int) []Target {
	targets := make([]Target, 0, len(sites))
	for _, site := range sites {
		targets = append(targets, Target{URL: site, MaxLinks: maxLinks})
	}
	return targets
}
