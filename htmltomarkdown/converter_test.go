package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mdscrape"
	"github.com/fwojciec/mdscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements mdscrape.Converter at compile time.
var _ mdscrape.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello, world!</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Hello, world!", md)
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts links with their targets", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com/docs">Example</a> for more info.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com/docs)")
	})

	t.Run("converts images with alt text and source", func(t *testing.T) {
		t.Parallel()

		html := `<p>World <img src="https://ex.com/a.png" alt="Diagram"></p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "World")
		assert.Contains(t, md, "![Diagram](https://ex.com/a.png)")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Bold</strong> and <em>italic</em> text.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li><li>Third</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "- Third")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go">package main

func main() {
    println("Hello")
}
</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, "package main")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Name")
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "|")
	})

	t.Run("separates block elements with blank lines", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>First paragraph.</p><p>Second paragraph.</p></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "First paragraph.\n\nSecond paragraph.", md)
	})

	t.Run("never wraps long lines", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("word ", 400)
		html := `<p>` + long + `</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "\n")
		assert.Equal(t, strings.TrimSpace(long), md)
	})

	t.Run("never emits three consecutive newlines", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>a</p><br><br><br><br><p></p><p></p><div><div><p>b</p></div></div>
<pre>x



y</pre><p>c</p></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.Contains(t, md, "a")
		assert.Contains(t, md, "c")
	})

	t.Run("renders unknown tags as inline text", func(t *testing.T) {
		t.Parallel()

		html := `<p>Before <x-widget data-id="1">inside</x-widget> after</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "inside")
		assert.Contains(t, md, "Before")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		html := "\n\n  <p>  Trimmed  </p>\n\n"

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Trimmed", md)
	})

	t.Run("returns ECONVERT for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, mdscrape.ECONVERT, mdscrape.ErrorCode(err))
	})

	t.Run("returns ECONVERT for corrupt encoding", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("<p>bad \xff\xfe bytes</p>")

		require.Error(t, err)
		assert.Equal(t, mdscrape.ECONVERT, mdscrape.ErrorCode(err))
	})
}

func TestTidy(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of blank lines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a\n\nb\n\nc", htmltomarkdown.Tidy("a\n\n\n\nb\n\n\nc"))
	})

	t.Run("keeps single blank lines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a\n\nb\nc", htmltomarkdown.Tidy("a\n\nb\nc"))
	})

	t.Run("trims leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a", htmltomarkdown.Tidy("\n\n\n  a \n\n\n"))
	})
}
