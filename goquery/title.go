package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FallbackTitle is returned when no title candidate yields any text.
const FallbackTitle = "Untitled Article"

// titleRule locates a title candidate. When attr is set the candidate's
// value is read from that attribute instead of its text.
type titleRule struct {
	selector string
	attr     string
}

// titleRules are evaluated in order; the first non-empty value wins.
var titleRules = []titleRule{
	{selector: "h1"},
	{selector: "article h1"},
	{selector: ".article-title"},
	{selector: ".post-title"},
	{selector: "#article-title"},
	{selector: `meta[property="og:title"], meta[name="og:title"]`, attr: "content"},
	{selector: "title"},
}

// ResolveTitle returns the article title of a sanitized document, trimmed
// of leading and trailing whitespace. Internal whitespace is kept as is.
// It never returns an empty string.
func ResolveTitle(doc *goquery.Document) string {
	for _, rule := range titleRules {
		sel := doc.Find(rule.selector).First()
		if sel.Length() == 0 {
			continue
		}

		var value string
		if rule.attr != "" {
			value, _ = sel.Attr(rule.attr)
		} else {
			value = sel.Text()
		}

		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return FallbackTitle
}
