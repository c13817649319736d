package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NormalizeResources rewrites image sources and link targets inside content
// to absolute URLs resolved against sourceURL. Absolute references pass
// through unchanged. Values that cannot be parsed are kept as they are, as
// is everything when sourceURL itself cannot be parsed.
func NormalizeResources(content *goquery.Selection, sourceURL string) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return
	}

	resolveAttr(content, base, "img", "src")
	resolveAttr(content, base, "a", "href")
}

// resolveAttr resolves attr on every tag element in content, including
// content itself.
func resolveAttr(content *goquery.Selection, base *url.URL, tag, attr string) {
	selector := tag + "[" + attr + "]"
	content.Filter(selector).AddSelection(content.Find(selector)).Each(func(_ int, sel *goquery.Selection) {
		ref, _ := sel.Attr(attr)
		if strings.TrimSpace(ref) == "" {
			return
		}
		sel.SetAttr(attr, resolveReference(base, ref))
	})
}

// resolveReference resolves ref against base, returning ref unchanged if
// it cannot be parsed.
func resolveReference(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
