// Package csv writes crawl results as the flat four-column table consumed
// by downstream aggregation: url, headline, text, published_iso.
package csv

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/fwojciec/newscrawl"
)

// header is the fixed column order of the output table.
var header = []string{"url", "headline", "text", "published_iso"}

// Ensure Writer implements newscrawl.ArticleWriter at compile time.
var _ newscrawl.ArticleWriter = (*Writer)(nil)

// Writer writes articles to a CSV file, replacing any existing file at
// the path.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteArticles writes the header row followed by one row per article and
// returns the number of data rows written. The published_iso column is
// empty when the article's date is unknown.
func (w *Writer) WriteArticles(ctx context.Context, articles []*newscrawl.Article) (int, error) {
	f, err := os.Create(w.path)
	if err != nil {
		return 0, newscrawl.Errorf(newscrawl.EINTERNAL, "create %s: %v", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return 0, newscrawl.Errorf(newscrawl.EINTERNAL, "write %s: %v", w.path, err)
	}

	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		row := []string{article.URL, article.Headline, article.Body, article.PublishedISO()}
		if err := cw.Write(row); err != nil {
			return 0, newscrawl.Errorf(newscrawl.EINTERNAL, "write %s: %v", w.path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, newscrawl.Errorf(newscrawl.EINTERNAL, "flush %s: %v", w.path, err)
	}
	if err := f.Close(); err != nil {
		return 0, newscrawl.Errorf(newscrawl.EINTERNAL, "close %s: %v", w.path, err)
	}

	return len(articles), nil
}
