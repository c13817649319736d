package mock

import (
	"context"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of mdscrape.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *mdscrape.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *mdscrape.Article) error {
	return w.CreateArticleFn(ctx, article)
}
