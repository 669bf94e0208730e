package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/nav"
	"github.com/docnav/docnav/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the documentation pages live from markdown, the navigation
// JSON API and the navigation websocket.
type Server struct {
	cfg        Config
	nav        *nav.Router
	renderer   *site.Renderer
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given navigation sets and renderer.
func New(cfg Config, navRouter *nav.Router, renderer *site.Renderer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		nav:      navRouter,
		renderer: renderer,
		logger:   logger,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		// Browsers reject credentials on a wildcard origin.
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The websocket stays outside the timeout group; connections are long-lived.
	r.Get("/ws/nav", s.handleNavSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/api/nav/sets", s.handleSets)
		r.Get("/api/nav/pages", s.handlePages)
		r.Get("/api/nav/neighbors", s.handleNeighbors)
		r.Get("/api/nav/sidebar", s.handleSidebar)

		r.Get("/style.css", s.handleStylesheet)
		r.Get("/script.js", s.handleScript)
		r.Get("/search-index.json", s.handleSearchIndex)
		if s.renderer != nil && s.renderer.Logo != "" {
			r.Get("/"+filepath.Base(s.renderer.Logo), func(w http.ResponseWriter, r *http.Request) {
				http.ServeFile(w, r, s.renderer.Logo)
			})
		}

		r.Get("/*", s.handlePage)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("docnav server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
