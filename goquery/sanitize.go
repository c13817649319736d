package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// chromeTags identifies page scaffolding that never carries article content.
var chromeTags = []string{
	"script",
	"style",
	"nav",
	"footer",
	"header",
	"aside",
	"iframe",
}

// scriptSchemes are URL schemes that execute code when followed.
var scriptSchemes = []string{"javascript:", "vbscript:"}

// Sanitize removes chrome elements and their subtrees from doc in place.
// Elements are matched by their own tag only. Event handler attributes
// and script URLs in href or src are dropped from the remaining elements;
// every other reference is left as written.
func Sanitize(doc *goquery.Document) {
	doc.Find(strings.Join(chromeTags, ", ")).Remove()

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			n.Attr = keepSafeAttrs(n.Attr)
		}
	})
}

func keepSafeAttrs(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if (key == "href" || key == "src") && isScriptURL(a.Val) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// isScriptURL reports whether ref uses a script scheme. Browsers ignore
// whitespace and control characters inside the scheme, so those are
// dropped before comparing.
func isScriptURL(ref string) bool {
	compact := strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, ref)
	compact = strings.ToLower(compact)
	for _, scheme := range scriptSchemes {
		if strings.HasPrefix(compact, scheme) {
			return true
		}
	}
	return false
}
