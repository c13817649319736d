package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/mdscrape/cmd/mdscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdscrape.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads all keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
timeout: 5s
scrape_timeout: 20s
user_agent: test-agent
retry_delays: [100ms, 200ms]
concurrency: 8
rate_limit: 2.5
output_dir: /tmp/out
db: /tmp/archive.db
listen: 127.0.0.1:9000
`)

		cfg, err := main.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 20*time.Second, cfg.ScrapeTimeout)
		assert.Equal(t, "test-agent", cfg.UserAgent)
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, cfg.RetryDelays)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, 2.5, cfg.RateLimit)
		assert.Equal(t, "/tmp/out", cfg.OutputDir)
		assert.Equal(t, "/tmp/archive.db", cfg.DB)
		assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	})

	t.Run("applies defaults to missing keys", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadFile(writeConfig(t, "output_dir: out\n"))
		require.NoError(t, err)

		assert.Equal(t, "out", cfg.OutputDir)
		assert.Equal(t, main.DefaultTimeout, cfg.Timeout)
		assert.Equal(t, main.DefaultScrapeTimeout, cfg.ScrapeTimeout)
		assert.Equal(t, main.DefaultConcurrency, cfg.Concurrency)
		assert.Equal(t, main.DefaultRateLimit, cfg.RateLimit)
		assert.Equal(t, main.DefaultListen, cfg.Listen)
		assert.Len(t, cfg.RetryDelays, 3)
	})

	t.Run("empty retry list disables retries", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadFile(writeConfig(t, "retry_delays: []\n"))
		require.NoError(t, err)

		assert.NotNil(t, cfg.RetryDelays)
		assert.Empty(t, cfg.RetryDelays)
	})

	t.Run("negative rate limit is kept to disable limiting", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadFile(writeConfig(t, "rate_limit: -1\n"))
		require.NoError(t, err)

		assert.Equal(t, -1.0, cfg.RateLimit)
	})

	t.Run("zero rate limit takes the default", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadFile(writeConfig(t, "rate_limit: 0\n"))
		require.NoError(t, err)

		assert.Equal(t, main.DefaultRateLimit, cfg.RateLimit)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("returns error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadFile(writeConfig(t, "concurrency: [not an int\n"))
		require.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := main.DefaultConfig()

	assert.Equal(t, main.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, cfg.RetryDelays)
	assert.Empty(t, cfg.DB)
	assert.Empty(t, cfg.OutputDir)
}
