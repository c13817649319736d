package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/mdscrape"
	"github.com/fwojciec/mdscrape/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 {
		fmt.Fprintln(deps.Stderr, "usage: mdscrape scrape <url>...")
		return mdscrape.Errorf(mdscrape.EINVALID, mdscrape.MissingURLMessage)
	}

	batch := &scrape.Batch{
		Scraper:     deps.Scraper,
		Limiter:     deps.Limiter,
		Writer:      deps.Writer,
		Concurrency: deps.Config.Concurrency,
	}

	items := batch.Run(deps.Ctx, c.URLs, func(e scrape.ProgressEvent) {
		if e.Type == scrape.ProgressFailed {
			deps.Logger.Warn("scrape failed", "url", e.URL, "err", e.Error)
		}
	})

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)

	var failed int
	for _, item := range items {
		result := item.Result()
		if !result.Success {
			failed++
		}
		if err := enc.Encode(result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scrapes failed", failed, len(items))
	}
	return nil
}
