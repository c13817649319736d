package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdscrape"
)

// MinContentLength is the rendered text length a cascade candidate must
// exceed to be accepted as article content.
const MinContentLength = 100

// contentRules are the article container candidates in priority order.
var contentRules = []string{
	"article",
	".article-content",
	".post-content",
	".entry-content",
	"#article-content",
	"#content",
	`main article, [role="main"] article`,
	`[role="main"]`,
	".markdown-body",
	".content",
}

// SelectContent returns the subtree of a sanitized document judged to be
// the article body.
//
// The first element matching each rule in contentRules is accepted if its
// rendered text is longer than MinContentLength. When no rule qualifies,
// the div with the strictly greatest rendered text length is chosen; ties
// go to the earliest div in document order and nested divs are measured
// independently. Returns EEXTRACT if neither step selects anything.
func SelectContent(doc *goquery.Document) (*goquery.Selection, error) {
	for _, selector := range contentRules {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && textLength(sel) > MinContentLength {
			return sel, nil
		}
	}

	if sel := largestDiv(doc); sel != nil {
		return sel, nil
	}
	return nil, mdscrape.Errorf(mdscrape.EEXTRACT, mdscrape.ExtractionFailedMessage)
}

// largestDiv returns the div with the most rendered text, or nil if the
// document has no div with any text.
func largestDiv(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestLen := 0

	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		if n := textLength(sel); n > bestLen {
			best = sel
			bestLen = n
		}
	})

	return best
}

// textLength returns the number of characters in the trimmed text content of sel.
func textLength(sel *goquery.Selection) int {
	return utf8.RuneCountInString(strings.TrimSpace(sel.Text()))
}
