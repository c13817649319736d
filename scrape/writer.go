package scrape

import (
	"context"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.ArticleWriter = (MultiWriter)(nil)

// MultiWriter writes each article to every writer in order, stopping at
// the first error.
type MultiWriter []mdscrape.ArticleWriter

func (w MultiWriter) CreateArticle(ctx context.Context, article *mdscrape.Article) error {
	for _, writer := range w {
		if err := writer.CreateArticle(ctx, article); err != nil {
			return err
		}
	}
	return nil
}
