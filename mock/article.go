package mock

import (
	"context"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of mdscrape.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *mdscrape.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*mdscrape.Article, error)
	FindArticlesFn    func(ctx context.Context, filter mdscrape.ArticleFilter) ([]*mdscrape.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *mdscrape.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*mdscrape.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter mdscrape.ArticleFilter) ([]*mdscrape.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
