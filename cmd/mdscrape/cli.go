package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mdscrape"
	"github.com/fwojciec/mdscrape/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config

	Scraper  *scrape.Scraper
	Limiter  mdscrape.DomainLimiter
	Articles mdscrape.ArticleService

	// Writer receives successful scrapes; nil when neither an output
	// directory nor an archive is configured.
	Writer mdscrape.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"MDSCRAPE_CONFIG" help:"YAML config file"`
	DB      string `env:"MDSCRAPE_DB" help:"Archive database path; archiving is off when unset"`
	Verbose bool   `short:"v" help:"Log each pipeline step to stderr"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape article URLs and print one JSON result per URL"`
	Serve  ServeCmd  `cmd:"" help:"Serve the scrape HTTP API"`
	List   ListCmd   `cmd:"" help:"List archived articles"`
	Show   ShowCmd   `cmd:"" help:"Print an archived article"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived article"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string      `arg:"" optional:"" name:"url" help:"Article URLs"`
	Out         string        `short:"o" type:"path" help:"Also write each article to <dir>/<title>.md"`
	Timeout     time.Duration `help:"Per-request fetch timeout (default 30s)"`
	UserAgent   string        `name:"user-agent" help:"User-Agent header for fetches"`
	Concurrency int           `short:"c" help:"Concurrent scrape limit (default 4)"`
	RateLimit   float64       `name:"rate-limit" help:"Fetches per second per host (default 1); negative disables limiting"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Listen        string        `short:"l" help:"Listen address (default :8080)"`
	ScrapeTimeout time.Duration `name:"scrape-timeout" help:"Time limit for one scrape request (default 30s)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only list articles scraped from this URL"`
	Limit int    `short:"n" default:"50" help:"Maximum number of articles"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}

// resolveConfig overlays explicitly set flags onto the file configuration.
func (c *CLI) resolveConfig() (*Config, error) {
	cfg := DefaultConfig()
	if c.Config != "" {
		var err error
		if cfg, err = LoadFile(c.Config); err != nil {
			return nil, err
		}
	}

	if c.DB != "" {
		cfg.DB = c.DB
	}
	if c.Scrape.Out != "" {
		cfg.OutputDir = c.Scrape.Out
	}
	if c.Scrape.Timeout > 0 {
		cfg.Timeout = c.Scrape.Timeout
	}
	if c.Scrape.UserAgent != "" {
		cfg.UserAgent = c.Scrape.UserAgent
	}
	if c.Scrape.Concurrency > 0 {
		cfg.Concurrency = c.Scrape.Concurrency
	}
	if c.Scrape.RateLimit != 0 {
		cfg.RateLimit = c.Scrape.RateLimit
	}
	if c.Serve.Listen != "" {
		cfg.Listen = c.Serve.Listen
	}
	if c.Serve.ScrapeTimeout > 0 {
		cfg.ScrapeTimeout = c.Serve.ScrapeTimeout
	}
	return cfg, nil
}
