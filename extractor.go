package mdscrape

// ExtractResult holds the article identified in an HTML page.
type ExtractResult struct {
	// Title is the resolved article title, trimmed of surrounding whitespace.
	Title string

	// ContentHTML is the selected article subtree rendered back to HTML.
	// Chrome (scripts, navigation, headers, footers, sidebars, frames) has
	// been removed and resource references are absolute.
	ContentHTML string

	// SourceURL is the URL the page was retrieved from.
	SourceURL string
}

// Extractor identifies the article inside a raw HTML page.
type Extractor interface {
	// Extract parses raw HTML and returns the article title and content.
	// Relative references in the content are resolved against sourceURL.
	// Returns EEXTRACT if no subtree qualifies as article content.
	Extract(html, sourceURL string) (*ExtractResult, error)
}
