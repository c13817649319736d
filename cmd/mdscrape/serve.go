package main

import (
	"fmt"

	"github.com/fwojciec/mdscrape/chi"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := chi.NewServer(deps.Logger)
	s.Addr = deps.Config.Listen
	s.ScrapeTimeout = deps.Config.ScrapeTimeout
	s.Scraper = deps.Scraper
	s.Archive = deps.Writer

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", s.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	<-deps.Ctx.Done()
	return s.Close()
}
