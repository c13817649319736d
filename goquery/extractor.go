package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdscrape"
)

// Ensure Extractor implements mdscrape.Extractor at compile time.
var _ mdscrape.Extractor = (*Extractor)(nil)

// Extractor identifies article content with a fixed cascade of CSS
// selectors and a largest-div fallback.
//
// Each call parses its own document tree, so an Extractor is safe for
// concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract sanitizes the page, resolves its title, selects the article
// subtree, and makes the subtree's references absolute.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*mdscrape.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mdscrape.Errorf(mdscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	Sanitize(doc)
	title := ResolveTitle(doc)

	content, err := SelectContent(doc)
	if err != nil {
		return nil, err
	}

	NormalizeResources(content, sourceURL)

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, mdscrape.Errorf(mdscrape.ECONVERT, "failed to serialize article content: %v", err)
	}

	return &mdscrape.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		SourceURL:   sourceURL,
	}, nil
}
