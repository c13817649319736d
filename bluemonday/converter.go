// Package bluemonday strips unsafe markup from article HTML before it is
// converted, using github.com/microcosm-cc/bluemonday.
package bluemonday

import (
	"github.com/fwojciec/mdscrape"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Converter implements mdscrape.Converter at compile time.
var _ mdscrape.Converter = (*Converter)(nil)

// Converter sanitizes HTML with a user-generated-content policy and passes
// the result to the wrapped Converter. Event handlers and disallowed
// elements are dropped and the text of dropped inline elements is kept.
// URL values are passed through unparsed, so data URIs, malformed
// sources, and non-web schemes survive as written; script URLs are
// removed earlier by goquery.Sanitize.
type Converter struct {
	next   mdscrape.Converter
	policy *bluemonday.Policy
}

// NewConverter creates a new Converter wrapping next.
func NewConverter(next mdscrape.Converter) *Converter {
	return &Converter{
		next:   next,
		policy: newPolicy(),
	}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireParseableURLs(false)
	return p
}

// Convert sanitizes html and delegates to the wrapped converter.
func (c *Converter) Convert(html string) (string, error) {
	return c.next.Convert(c.policy.Sanitize(html))
}
