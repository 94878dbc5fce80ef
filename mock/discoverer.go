package mock

import "github.com/fwojciec/newscrawl"

var _ newscrawl.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of newscrawl.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html, baseURL string, selectors []string, maxLinks int) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html, baseURL string, selectors []string, maxLinks int) ([]string, error) {
	return d.DiscoverLinksFn(html, baseURL, selectors, maxLinks)
}
