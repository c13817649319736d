package mdscrape

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of the scraped_at header field.
const TimestampLayout = "2006-01-02 15:04:05"

// headerReplacer collapses line breaks so a value stays on its header line.
var headerReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// FormatArticle assembles the final document: a front-matter block with
// title, source, and scrape time, a level-1 heading repeating the title,
// a blank line, and the converted body.
func FormatArticle(title, sourceURL string, scrapedAt time.Time, body string) string {
	title = headerReplacer.Replace(title)
	sourceURL = headerReplacer.Replace(sourceURL)

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(title)
	b.WriteString("\nsource: ")
	b.WriteString(sourceURL)
	b.WriteString("\nscraped_at: ")
	b.WriteString(scrapedAt.Format(TimestampLayout))
	b.WriteString("\n---\n\n# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}
