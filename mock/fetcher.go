package mock

import (
	"context"

	"github.com/fwojciec/newscrawl"
)

var _ newscrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newscrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*newscrawl.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*newscrawl.Page, error) {
	return f.FetchFn(ctx, url)
}
