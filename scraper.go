package mdscrape

import "context"

// Scraper turns the page at a URL into an article.
type Scraper interface {
	// Scrape fetches url and runs the extraction pipeline on it.
	// Returns EINVALID for a missing or malformed URL.
	Scrape(ctx context.Context, url string) (*Article, error)
}
