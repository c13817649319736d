package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/mdscrape"
	"github.com/fwojciec/mdscrape/mock"
	mdslog "github.com/fwojciec/mdscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ mdscrape.Fetcher = (*mdslog.LoggingFetcher)(nil)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		err     error
		wantLog []string
	}{
		{
			name:    "records page size of a successful fetch",
			html:    "<html><article>post</article></html>",
			wantLog: []string{"msg=fetch", "url=https://blog.example.com/post", "bytes=36", "duration="},
		},
		{
			name:    "records the transport error",
			err:     errors.New("connection reset"),
			wantLog: []string{"msg=fetch", "bytes=0", `err="connection reset"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			fetcher := mdslog.NewLoggingFetcher(&mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return tt.html, tt.err
				},
			}, slog.New(slog.NewTextHandler(&buf, nil)))

			html, err := fetcher.Fetch(context.Background(), "https://blog.example.com/post")

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.html, html)
			}
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("pool busy")
	fetcher := mdslog.NewLoggingFetcher(&mock.Fetcher{
		CloseFn: func() error { return closeErr },
	}, slog.New(slog.DiscardHandler))

	require.ErrorIs(t, fetcher.Close(), closeErr)
}
