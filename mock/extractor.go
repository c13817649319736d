package mock

import "github.com/fwojciec/mdscrape"

var _ mdscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mdscrape.Extractor.
type Extractor struct {
	ExtractFn func(html, sourceURL string) (*mdscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html, sourceURL string) (*mdscrape.ExtractResult, error) {
	return e.ExtractFn(html, sourceURL)
}
