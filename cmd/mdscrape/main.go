package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdscrape"
	"github.com/fwojciec/mdscrape/bluemonday"
	"github.com/fwojciec/mdscrape/fs"
	"github.com/fwojciec/mdscrape/goquery"
	"github.com/fwojciec/mdscrape/htmltomarkdown"
	mdhttp "github.com/fwojciec/mdscrape/http"
	"github.com/fwojciec/mdscrape/scrape"
	mdslog "github.com/fwojciec/mdscrape/slog"
	"github.com/fwojciec/mdscrape/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the archive, if one is configured.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher mdscrape.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdscrape"),
		kong.Description("Extract the main article from web pages as markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mdscrape --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Config, err = cli.resolveConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := deps.Config

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if cfg.DB != "" {
		m.DB = sqlite.NewDB(cfg.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MDSCRAPE_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.DB, err)
		}
		defer m.Close()

		var articles mdscrape.ArticleService = sqlite.NewArticleService(m.DB)
		if cli.Verbose {
			articles = mdslog.NewLoggingArticleService(articles, deps.Logger)
		}
		deps.Articles = articles
	}

	switch strings.Fields(kongCtx.Command())[0] {
	case "scrape", "serve":
		deps.Scraper = m.newScraper(cfg, deps.Logger, cli.Verbose)
		defer deps.Scraper.Fetcher.Close()
		deps.Limiter = scrape.NewDomainLimiter(cfg.RateLimit)

		var writers scrape.MultiWriter
		if cfg.OutputDir != "" {
			writers = append(writers, fs.NewWriter(cfg.OutputDir))
		}
		if deps.Articles != nil {
			writers = append(writers, deps.Articles)
		}
		if len(writers) > 0 {
			deps.Writer = writers
		}
	}

	return kongCtx.Run(deps)
}

// newScraper wires the fetch, extract, and convert stages.
func (m *Main) newScraper(cfg *Config, logger *slog.Logger, verbose bool) *scrape.Scraper {
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = mdhttp.NewFetcher(
			mdhttp.WithTimeout(cfg.Timeout),
			mdhttp.WithUserAgent(cfg.UserAgent),
		)
	}

	var retryLogger *slog.Logger
	if verbose {
		retryLogger = logger
	}
	fetcher = mdhttp.NewRetryFetcher(fetcher, cfg.RetryDelays, retryLogger)

	var extractor mdscrape.Extractor = goquery.NewExtractor()
	var converter mdscrape.Converter = bluemonday.NewConverter(htmltomarkdown.NewConverter())

	if verbose {
		fetcher = mdslog.NewLoggingFetcher(fetcher, logger)
		extractor = mdslog.NewLoggingExtractor(extractor, logger)
		converter = mdslog.NewLoggingConverter(converter, logger)
	}

	return &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: extractor,
		Converter: converter,
	}
}
