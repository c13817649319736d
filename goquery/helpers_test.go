package goquery_test

import (
	"strings"
	"testing"

	goq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// parse builds a goquery document from html or fails the test.
func parse(t *testing.T, html string) *goq.Document {
	t.Helper()

	doc, err := goq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// text returns a string of n non-space characters.
func text(n int) string {
	return strings.Repeat("a", n)
}
