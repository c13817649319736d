package mock

import (
	"context"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of mdscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*mdscrape.Article, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*mdscrape.Article, error) {
	return s.ScrapeFn(ctx, url)
}
