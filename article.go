package newscrawl

import (
	"context"
	"time"
)

// PublishedISOLayout is the timezone-less layout used for the
// published_iso output column.
const PublishedISOLayout = "2006-01-02T15:04:05"

// Article is one extracted news record.
type Article struct {
	URL      string
	Headline string
	Body     string

	// PublishedAt is nil when no publication date could be recovered.
	// An unknown date is a valid outcome, not an error, and must never
	// cause the record to be treated as stale.
	PublishedAt *time.Time
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Headline == "" && a.Body == "" {
		return Errorf(EINVALID, "article requires a headline or body")
	}
	return nil
}

// PublishedISO formats the publication date as a timezone-less ISO-8601
// string in local time. Returns the empty string when the date is unknown.
func (a *Article) PublishedISO() string {
	if a.PublishedAt == nil {
		return ""
	}
	return a.PublishedAt.In(time.Local).Format(PublishedISOLayout)
}

// ArticleWriter persists extracted articles.
type ArticleWriter interface {
	// WriteArticles writes all records and returns the number of data
	// rows written.
	WriteArticles(ctx context.Context, articles []*Article) (int, error)
}
