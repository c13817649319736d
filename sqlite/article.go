package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/mdscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ mdscrape.ArticleService = (*ArticleService)(nil)
	_ mdscrape.ArticleWriter  = (*ArticleService)(nil)
)

const articleColumns = "id, source_url, title, markdown, content_hash, scraped_at"

// ArticleService implements mdscrape.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle archives an article. A missing ID or ScrapedAt is
// generated; ContentHash is always recomputed from Markdown.
func (s *ArticleService) CreateArticle(ctx context.Context, article *mdscrape.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.ScrapedAt.IsZero() {
		article.ScrapedAt = time.Now()
	}
	article.ScrapedAt = article.ScrapedAt.UTC()
	article.ContentHash = hashContent(article.Markdown)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceURL, article.Title, article.Markdown, article.ContentHash,
		article.ScrapedAt.Format(timeLayout))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*mdscrape.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)

	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mdscrape.Errorf(mdscrape.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter mdscrape.ArticleFilter) ([]*mdscrape.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*mdscrape.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mdscrape.Errorf(mdscrape.ENOTFOUND, "article not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*mdscrape.Article, error) {
	var article mdscrape.Article
	var scrapedAt string

	if err := s.Scan(&article.ID, &article.SourceURL, &article.Title, &article.Markdown,
		&article.ContentHash, &scrapedAt); err != nil {
		return nil, err
	}

	var err error
	article.ScrapedAt, err = parseTime(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}
