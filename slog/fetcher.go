// Package slog provides logging decorators for newscrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newscrawl"
)

// Ensure Fetcher implements newscrawl.Fetcher at compile time.
var _ newscrawl.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a newscrawl.Fetcher with request logging.
type Fetcher struct {
	next   newscrawl.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next newscrawl.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*newscrawl.Page, error) {
	begin := time.Now()
	page, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"code", newscrawl.ErrorCode(err),
			"duration", time.Since(begin),
			"error", newscrawl.ErrorMessage(err),
		)
		return nil, err
	}
	f.logger.Debug("fetch",
		"url", url,
		"bytes", len(page.HTML),
		"duration", time.Since(begin),
	)
	return page, nil
}
