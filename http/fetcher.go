// Package http provides the HTTP implementation of newscrawl.Fetcher.
// It performs a single GET per call; retries and pacing belong to the
// crawl orchestrator.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/newscrawl"
)

// DefaultFetchTimeout bounds each request.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent identifies the crawler as a desktop browser. Several
// financial publishers serve bot user agents a stripped or blocked page.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Ensure Fetcher implements newscrawl.Fetcher at compile time.
var _ newscrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using plain HTTP requests. It does not execute
// JavaScript and is suitable for server-rendered markup only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a single GET and returns the page body together with the
// final URL after redirects. Transport failures and timeouts map to
// EUNAVAILABLE, a 404 to ENOTFOUND, and any other non-2xx status to
// EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*newscrawl.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, newscrawl.Errorf(newscrawl.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, newscrawl.Errorf(newscrawl.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, newscrawl.Errorf(newscrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return &newscrawl.Page{
		URL:  resp.Request.URL.String(),
		HTML: string(body),
	}, nil
}
