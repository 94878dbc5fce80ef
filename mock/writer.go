package mock

import (
	"context"

	"github.com/fwojciec/newscrawl"
)

var _ newscrawl.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of newscrawl.ArticleWriter.
type ArticleWriter struct {
	WriteArticlesFn func(ctx context.Context, articles []*newscrawl.Article) (int, error)
}

func (w *ArticleWriter) WriteArticles(ctx context.Context, articles []*newscrawl.Article) (int, error) {
	return w.WriteArticlesFn(ctx, articles)
}
