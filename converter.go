package mdscrape

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Returns ECONVERT if the markup cannot be converted at all.
	Convert(html string) (string, error)
}
