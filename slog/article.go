package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with logging.
type LoggingArticleService struct {
	next   mdscrape.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next mdscrape.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

func (s *LoggingArticleService) CreateArticle(ctx context.Context, article *mdscrape.Article) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "create article",
			"id", article.ID,
			"url", article.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateArticle(ctx, article)
}

func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (article *mdscrape.Article, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "find article",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticleByID(ctx, id)
}

func (s *LoggingArticleService) FindArticles(ctx context.Context, filter mdscrape.ArticleFilter) (articles []*mdscrape.Article, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "find articles",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticles(ctx, filter)
}

func (s *LoggingArticleService) DeleteArticle(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "delete article",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteArticle(ctx, id)
}
