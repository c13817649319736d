// Package htmltomarkdown converts article HTML to Markdown using
// github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/mdscrape"
)

// Ensure Converter implements mdscrape.Converter at compile time.
var _ mdscrape.Converter = (*Converter)(nil)

// blankRuns matches three or more consecutive newlines.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Lines are never wrapped.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown, collapsing runs of blank
// lines and trimming surrounding whitespace.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", mdscrape.Errorf(mdscrape.ECONVERT, "empty HTML input")
	}
	if !utf8.ValidString(html) {
		return "", mdscrape.Errorf(mdscrape.ECONVERT, "failed to convert to markdown: content is not valid UTF-8")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", mdscrape.Errorf(mdscrape.ECONVERT, "failed to convert to markdown: %v", err)
	}

	return Tidy(result), nil
}

// Tidy collapses every run of three or more newlines into a single blank
// line and trims leading and trailing whitespace.
func Tidy(markdown string) string {
	return strings.TrimSpace(blankRuns.ReplaceAllString(markdown, "\n\n"))
}
