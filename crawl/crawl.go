// Package crawl orchestrates the news crawl: landing-page link discovery,
// per-article extraction, recency filtering and failure isolation.
//
// Failures are isolated at two granularities. A site that cannot be
// fetched or parsed is reported and skipped without touching the other
// sites; an article that fails is reported and skipped without touching
// the rest of its site. Nothing here is fatal short of context
// cancellation, and a crawl that yields zero records is a valid outcome.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/newscrawl"
	"golang.org/x/sync/errgroup"
)

// Crawler sequences sites and articles. The zero value is not usable;
// populate the service fields before calling Crawl.
type Crawler struct {
	Fetcher   newscrawl.Fetcher
	Extractor newscrawl.Extractor
	Links     newscrawl.LinkDiscoverer
	Rules     *newscrawl.Registry

	// Limiter paces article fetches per domain. Optional; when nil,
	// articles are fetched back to back.
	Limiter newscrawl.DomainLimiter

	// Concurrency is the number of sites crawled in parallel.
	// Values below 1 mean sequential. Sites share no mutable state
	// (rule lookups are read-only), and results are reassembled into
	// discovery order regardless of completion order.
	Concurrency int
}

// EventType classifies per-item crawl outcomes.
type EventType int

// Event types, one per orchestrator decision branch.
const (
	// EventSiteFailed means a landing page could not be fetched or its
	// links could not be discovered; the site was skipped.
	EventSiteFailed EventType = iota

	// EventArticleFailed means an article could not be fetched or parsed;
	// the link was skipped.
	EventArticleFailed

	// EventArticleStale means the article's known publication date
	// predates the cutoff.
	EventArticleStale

	// EventArticleEmpty means neither headline nor body could be
	// extracted.
	EventArticleEmpty

	// EventArticleKept means the article produced a record.
	EventArticleKept
)

// Event reports the outcome of one site or article.
type Event struct {
	Type EventType
	URL  string
	Err  error // set for the failure event types
}

// EventFunc receives crawl events. It may be called from multiple
// goroutines when Concurrency exceeds one.
type EventFunc func(Event)

// Crawl processes every target and returns the surviving records in
// discovery order. A nil cutoff disables recency filtering; with a cutoff
// set, records whose date could not be determined are still kept — an
// unknown date is not staleness. Per-site and per-article failures are
// reported through events and never abort the run.
func (c *Crawler) Crawl(ctx context.Context, targets []newscrawl.Target, cutoff *time.Time, events EventFunc) ([]*newscrawl.Article, error) {
	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Indexing results by target position keeps the output in discovery
	// order even when sites complete out of order.
	results := make([][]*newscrawl.Article, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			results[i] = c.crawlSite(gctx, target, cutoff, events)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var articles []*newscrawl.Article
	for _, siteArticles := range results {
		articles = append(articles, siteArticles...)
	}
	return articles, nil
}

// crawlSite fetches one landing page and processes its discovered links.
// Returns whatever records were accumulated before any failure or
// cancellation.
func (c *Crawler) crawlSite(ctx context.Context, target newscrawl.Target, cutoff *time.Time, events EventFunc) []*newscrawl.Article {
	page, err := c.Fetcher.Fetch(ctx, target.URL)
	if err != nil {
		emit(events, Event{Type: EventSiteFailed, URL: target.URL, Err: err})
		return nil
	}

	rules := c.Rules.RulesFor(page.URL)
	links, err := c.Links.DiscoverLinks(page.HTML, page.URL, rules.Links, target.MaxLinks)
	if err != nil {
		emit(events, Event{Type: EventSiteFailed, URL: target.URL, Err: err})
		return nil
	}

	var articles []*newscrawl.Article
	for _, link := range links {
		if err := c.wait(ctx, link); err != nil {
			return articles
		}
		article, event := c.crawlArticle(ctx, link, cutoff)
		emit(events, event)
		if article != nil {
			articles = append(articles, article)
		}
	}
	return articles
}

// crawlArticle fetches and extracts a single article. A nil article means
// the link was skipped; the returned event says why.
func (c *Crawler) crawlArticle(ctx context.Context, link string, cutoff *time.Time) (*newscrawl.Article, Event) {
	page, err := c.Fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, Event{Type: EventArticleFailed, URL: link, Err: err}
	}

	// Syndicated links may point cross-domain, so rules come from the
	// article's own host rather than the landing page's.
	rules := c.Rules.RulesFor(page.URL)
	extraction, err := c.Extractor.Extract(page.HTML, rules)
	if err != nil {
		return nil, Event{Type: EventArticleFailed, URL: link, Err: err}
	}

	// Only a known date can make a record stale.
	if cutoff != nil && extraction.PublishedAt != nil && extraction.PublishedAt.Before(*cutoff) {
		return nil, Event{Type: EventArticleStale, URL: link}
	}

	if extraction.Headline == "" && extraction.Body == "" {
		return nil, Event{Type: EventArticleEmpty, URL: link}
	}

	return &newscrawl.Article{
		URL:         link,
		Headline:    extraction.Headline,
		Body:        extraction.Body,
		PublishedAt: extraction.PublishedAt,
	}, Event{Type: EventArticleKept, URL: link}
}

// wait applies the inter-request pause for the link's domain.
func (c *Crawler) wait(ctx context.Context, link string) error {
	if c.Limiter == nil {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil {
		return nil
	}
	return c.Limiter.Wait(ctx, u.Host)
}

func emit(events EventFunc, event Event) {
	if events != nil {
		events(event)
	}
}
