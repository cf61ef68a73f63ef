// Package server maps the HTTP surface of the blog onto the article store
// and the content root: homepage, paginated index, article pages, RSS feed,
// authenticated submission, and static assets.
package server

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ldlewis/simpleblog/internal/config"
	"github.com/ldlewis/simpleblog/pkg/core"
)

// Server wires the immutable site configuration and the article store into
// the handler set. Templates and article bodies are read from the content
// root on every request; nothing is cached.
type Server struct {
	cfg    *config.Site
	store  core.Store
	logger *slog.Logger
}

// New creates a Server. A nil logger falls back to slog.Default().
func New(cfg *config.Site, store core.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, store: store, logger: logger}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleHome)
	r.Get("/articles", s.handleIndex)
	r.With(middleware.BasicAuth("simpleblog", map[string]string{
		s.cfg.AdminUsername: s.cfg.AdminPassword,
	})).Post("/articles", s.handleSubmit)
	r.Get("/articles/{article_id}", s.handleArticle)
	r.Get("/feed", s.handleFeed)

	assets := http.FileServer(http.Dir(filepath.Join(s.cfg.FilePath, "assets")))
	r.Handle("/assets/*", http.StripPrefix("/assets/", assets))

	return r
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
