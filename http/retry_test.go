package http_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	mdhttp "github.com/fwojciec/mdscrape/http"
	"github.com/fwojciec/mdscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelays is used for fast unit tests.
var noDelays = []time.Duration{0, 0, 0}

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts.Add(1)
				return "<html>content</html>", nil
			},
		}

		html, err := mdhttp.NewRetryFetcher(next, noDelays, nil).Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on failure and succeeds", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if attempts.Add(1) < 4 {
					return "", errors.New("transient error")
				}
				return "<html>success</html>", nil
			},
		}

		html, err := mdhttp.NewRetryFetcher(next, noDelays, nil).Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>success</html>", html)
		assert.Equal(t, int32(4), attempts.Load())
	})

	t.Run("returns last error after max retries", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts.Add(1)
				return "", errors.New("persistent error")
			},
		}

		_, err := mdhttp.NewRetryFetcher(next, noDelays, nil).Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistent error")
		assert.Equal(t, int32(4), attempts.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts.Add(1)
				return "", &mdhttp.StatusError{StatusCode: http.StatusNotFound, URL: url}
			},
		}

		_, err := mdhttp.NewRetryFetcher(next, noDelays, nil).Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, "HTTP 404 for https://example.com", err.Error())
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if attempts.Add(1) == 1 {
					return "", &mdhttp.StatusError{StatusCode: http.StatusServiceUnavailable, URL: url}
				}
				return "<html></html>", nil
			},
		}

		_, err := mdhttp.NewRetryFetcher(next, noDelays, nil).Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var attempts atomic.Int32
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if attempts.Add(1) == 1 {
					cancel()
				}
				return "", errors.New("error")
			},
		}

		_, err := mdhttp.NewRetryFetcher(next, []time.Duration{time.Second, time.Second}, nil).Fetch(ctx, "https://example.com")

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("makes a single attempt without delays", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts.Add(1)
				return "", errors.New("error")
			},
		}

		_, err := mdhttp.NewRetryFetcher(next, nil, nil).Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())
	})
}

func TestRetryFetcher_Close(t *testing.T) {
	t.Parallel()

	var closed bool
	next := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	require.NoError(t, mdhttp.NewRetryFetcher(next, noDelays, nil).Close())
	assert.True(t, closed)
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, mdhttp.DefaultRetryDelays())
}
