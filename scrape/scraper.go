// Package scrape orchestrates the article pipeline: fetch a page, extract
// its main content, convert it to markdown, and assemble the final
// document. Batch runs many independent scrapes concurrently.
package scrape

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.Scraper = (*Scraper)(nil)

// Scraper runs the pipeline for a single page.
type Scraper struct {
	Fetcher   mdscrape.Fetcher
	Extractor mdscrape.Extractor
	Converter mdscrape.Converter

	// Now returns the scrape timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Scrape fetches rawURL and runs Process on the returned markup.
// Transport failures are reported as EINTERNAL with the transport's
// diagnostic; timeouts use mdscrape.TimeoutMessage.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*mdscrape.Article, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fetchError(err)
	}

	return s.Process(html, rawURL)
}

// Process turns already-fetched markup into an article. It performs no I/O
// and touches no shared state, so concurrent calls are safe.
func (s *Scraper) Process(html, sourceURL string) (*mdscrape.Article, error) {
	extracted, err := s.Extractor.Extract(html, sourceURL)
	if err != nil {
		return nil, err
	}

	body, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		if !isApplicationError(err) {
			return nil, mdscrape.Errorf(mdscrape.ECONVERT, "failed to convert to markdown: %v", err)
		}
		return nil, err
	}

	scrapedAt := s.now()
	return &mdscrape.Article{
		Title:     extracted.Title,
		SourceURL: sourceURL,
		Markdown:  mdscrape.FormatArticle(extracted.Title, sourceURL, scrapedAt, body),
		ScrapedAt: scrapedAt,
	}, nil
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return mdscrape.Errorf(mdscrape.EINVALID, mdscrape.MissingURLMessage)
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return mdscrape.Errorf(mdscrape.EINVALID, "invalid url: %q", rawURL)
	}
	return nil
}

func fetchError(err error) error {
	if isApplicationError(err) {
		return err
	}
	var te interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &te) && te.Timeout()) {
		return mdscrape.Errorf(mdscrape.EINTERNAL, mdscrape.TimeoutMessage)
	}
	return mdscrape.Errorf(mdscrape.EINTERNAL, "failed to fetch page: %v", err)
}

func isApplicationError(err error) bool {
	var e *mdscrape.Error
	return errors.As(err, &e)
}
