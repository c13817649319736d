package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   mdscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mdscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the resolved title
// and the size of the selected content.
func (e *LoggingExtractor) Extract(html, sourceURL string) (result *mdscrape.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if result != nil {
			title, size = result.Title, len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"title", title,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
