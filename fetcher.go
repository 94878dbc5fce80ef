package newscrawl

import "context"

// Page is a fetched page. URL is the final URL after redirects, which may
// differ from the requested one.
type Page struct {
	URL  string
	HTML string
}

// Fetcher retrieves pages over the network.
type Fetcher interface {
	// Fetch performs a single GET for the URL. It does not retry; retry
	// policy, if any, belongs to the caller. The context bounds the
	// request in addition to any implementation timeout.
	Fetch(ctx context.Context, url string) (*Page, error)
}

// DomainLimiter provides per-domain rate limiting between article fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
