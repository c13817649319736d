package scrape

import (
	"context"
	"net/url"

	"github.com/fwojciec/mdscrape"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Batch.Concurrency is not positive.
const DefaultConcurrency = 10

// Batch scrapes many URLs concurrently. Every URL runs its own independent
// pipeline; a failure for one URL never affects another.
type Batch struct {
	Scraper *Scraper

	// Limiter, if set, is waited on with the URL's host before each fetch.
	Limiter mdscrape.DomainLimiter

	// Writer, if set, receives every successful article, in input order.
	// A write failure turns the item into a failure.
	Writer mdscrape.ArticleWriter

	Concurrency int
}

// Item is the outcome of scraping one URL. Exactly one of Article and Err
// is set.
type Item struct {
	URL     string
	Article *mdscrape.Article
	Err     error
}

// Result converts the item into the reported result shape.
func (i *Item) Result() *mdscrape.Result {
	return mdscrape.NewResult(i.Article, i.Err)
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is never
// called concurrently.
type ProgressFunc func(event ProgressEvent)

// Run scrapes the de-duplicated urls and returns one item per distinct URL
// in first-occurrence order. The progress callback, if provided, receives
// events as scrapes complete.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) []*Item {
	urls = Dedupe(urls)
	total := len(urls)

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	type indexed struct {
		position int
		item     *Item
	}
	resultCh := make(chan indexed, total)

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- indexed{position: i, item: b.scrape(ctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	items := make([]*Item, total)
	completed := 0
	for r := range resultCh {
		completed++
		items[r.position] = r.item

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       r.item.URL,
		}
		if r.item.Err != nil {
			event.Type = ProgressFailed
			event.Error = r.item.Err
		}
		notify(event)
	}

	if b.Writer != nil {
		for _, item := range items {
			if item.Err != nil {
				continue
			}
			if err := b.Writer.CreateArticle(ctx, item.Article); err != nil {
				item.Article, item.Err = nil, err
			}
		}
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return items
}

func (b *Batch) scrape(ctx context.Context, rawURL string) *Item {
	item := &Item{URL: rawURL}

	if b.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := b.Limiter.Wait(ctx, u.Host); err != nil {
				item.Err = fetchError(err)
				return item
			}
		}
	}

	item.Article, item.Err = b.Scraper.Scrape(ctx, rawURL)
	return item
}
