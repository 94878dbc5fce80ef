package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/newscrawl"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond spaces article fetches roughly half a second
// apart within a publisher's domain.
const DefaultRequestsPerSecond = 2.0

var _ newscrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per publisher domain using token buckets.
// Each domain gets its own limiter with a burst of 1, so the pause applies
// between consecutive fetches within a domain while parallel site workers
// hitting different domains proceed unhindered.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter with the given requests-per-
// second limit. Values at or below zero fall back to
// DefaultRequestsPerSecond.
func NewDomainLimiter(rps float64) *DomainLimiter {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
