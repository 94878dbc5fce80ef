package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/newscrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("spaces consecutive requests to the same domain", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10) // 100ms between requests

		ctx := context.Background()
		require.NoError(t, limiter.Wait(ctx, "example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "example.com"))

		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("different domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)

		ctx := context.Background()
		require.NoError(t, limiter.Wait(ctx, "a.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "b.example.com"))

		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.001) // effectively never refills

		ctx := context.Background()
		require.NoError(t, limiter.Wait(ctx, "example.com"))

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := limiter.Wait(canceled, "example.com")
		require.Error(t, err)
	})

	t.Run("non-positive rate falls back to the default", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0)

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)
	})
}
