// Package chi serves the scrape API over HTTP using the chi router.
package chi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/mdscrape"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultScrapeTimeout bounds one scrape request when ScrapeTimeout is unset.
const DefaultScrapeTimeout = 30 * time.Second

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcefully closed.
const ShutdownTimeout = 5 * time.Second

// Server serves POST /api/scrape-article and GET /api/health.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, e.g. ":8080".
	Addr string

	// ScrapeTimeout bounds each scrape request.
	ScrapeTimeout time.Duration

	Scraper mdscrape.Scraper

	// Archive, if set, records every successful scrape.
	Archive mdscrape.ArticleWriter

	Logger *slog.Logger
}

// NewServer returns a server with routes and middleware installed.
// Scraper must be set before serving requests.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		server:        &http.Server{},
		router:        chi.NewRouter(),
		ScrapeTimeout: DefaultScrapeTimeout,
		Logger:        logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	s.router.Use(middleware.Recoverer)
	s.router.Use(noStore)

	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/scrape-article", s.handleScrapeArticle)

	s.server.Handler = s.router
	return s
}

// Open binds Addr and starts serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP routes the request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type scrapeRequest struct {
	URL string `json:"url"`
}

// handleScrapeArticle answers every scrape outcome with 200 and the
// result shape; only an unreadable body is a client error.
func (s *Server) handleScrapeArticle(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &mdscrape.Result{Message: "invalid request body"})
		return
	}

	timeout := s.ScrapeTimeout
	if timeout <= 0 {
		timeout = DefaultScrapeTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	article, err := s.Scraper.Scrape(ctx, req.URL)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		err = mdscrape.Errorf(mdscrape.EINTERNAL, mdscrape.TimeoutMessage)
	}
	if err == nil && s.Archive != nil {
		if err = s.Archive.CreateArticle(ctx, article); err != nil {
			article = nil
		}
	}

	if err != nil {
		s.Logger.Error("scrape failed", "url", req.URL, "code", mdscrape.ErrorCode(err), "err", err)
	} else {
		s.Logger.Info("scrape succeeded", "url", req.URL, "title", article.Title)
	}

	writeJSON(w, http.StatusOK, mdscrape.NewResult(article, err))
}

// noStore marks responses as uncacheable and disables content sniffing.
func noStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
