// Command newscrawl crawls financial-news landing pages, extracts article
// records and writes them to a CSV file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/crawl"
	"github.com/fwojciec/newscrawl/csv"
	"github.com/fwojciec/newscrawl/goquery"
	newshttp "github.com/fwojciec/newscrawl/http"
	newsslog "github.com/fwojciec/newscrawl/slog"
	newsyaml "github.com/fwojciec/newscrawl/yaml"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newscrawl"),
		kong.Description("Crawl financial-news sites and write article records to CSV."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	sites := newscrawl.DefaultSites()
	registry := newscrawl.DefaultRegistry()

	if cli.Rules != "" {
		cfg, err := newsyaml.Load(cli.Rules)
		if err != nil {
			return err
		}
		registry = cfg.Registry()
		if len(cfg.Sites) > 0 {
			sites = cfg.Sites
		}
	}

	if cli.SitesFile != "" {
		fileSites, err := loadSites(cli.SitesFile)
		if err != nil {
			logger.Warn("sites file unusable, falling back to defaults",
				"path", cli.SitesFile,
				"error", newscrawl.ErrorMessage(err),
			)
		} else {
			sites = fileSites
		}
	}

	var cutoff *time.Time
	if cli.SinceDays != nil {
		c := time.Now().AddDate(0, 0, -*cli.SinceDays)
		cutoff = &c
	}

	crawler := &crawl.Crawler{
		Fetcher:     newsslog.NewFetcher(newshttp.NewFetcher(), logger),
		Extractor:   goquery.NewExtractor(),
		Links:       goquery.NewDiscoverer(),
		Rules:       registry,
		Limiter:     crawl.NewDomainLimiter(crawl.DefaultRequestsPerSecond),
		Concurrency: cli.Concurrency,
	}

	articles, err := crawler.Crawl(ctx, newscrawl.Targets(sites, cli.MaxPerSite), cutoff, logEvents(logger))
	if err != nil {
		return err
	}

	n, err := csv.NewWriter(cli.Out).WriteArticles(ctx, articles)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d rows to %s\n", n, cli.Out)
	return nil
}

// newLogger builds the process logger. Debug level is opt-in; the default
// keeps per-article noise out of normal runs.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logEvents adapts crawl events to log lines. Site failures are warnings,
// article failures informational, skip decisions debug only.
func logEvents(logger *slog.Logger) crawl.EventFunc {
	return func(e crawl.Event) {
		switch e.Type {
		case crawl.EventSiteFailed:
			logger.Warn("site skipped", "url", e.URL, "error", newscrawl.ErrorMessage(e.Err))
		case crawl.EventArticleFailed:
			logger.Info("article skipped", "url", e.URL, "error", newscrawl.ErrorMessage(e.Err))
		case crawl.EventArticleStale:
			logger.Debug("article older than cutoff", "url", e.URL)
		case crawl.EventArticleEmpty:
			logger.Debug("article had no extractable text", "url", e.URL)
		case crawl.EventArticleKept:
			logger.Debug("article kept", "url", e.URL)
		}
	}
}
