package http

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/mdscrape"
)

var _ mdscrape.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher wraps a Fetcher and retries failed fetches with backoff.
// Client errors (4xx other than 429) and context errors are not retried.
type RetryFetcher struct {
	next   mdscrape.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next. One retry is attempted per entry in delays.
// A nil logger disables retry logging.
func NewRetryFetcher(next mdscrape.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch calls the wrapped fetcher until it succeeds or attempts run out.
// The error from the last attempt is returned.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(err) {
			break
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if f.logger != nil {
			f.logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}
