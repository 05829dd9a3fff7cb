// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/moviebunkers/api/internal/catalog/episode"
	"github.com/moviebunkers/api/internal/catalog/link"
	"github.com/moviebunkers/api/internal/catalog/season"
	"github.com/moviebunkers/api/internal/catalog/title"
	"github.com/moviebunkers/api/internal/platform/config"
	"github.com/moviebunkers/api/internal/platform/constants"
	"github.com/moviebunkers/api/internal/platform/middleware"
	"github.com/moviebunkers/api/internal/users/account"
	"github.com/moviebunkers/api/internal/users/auth"
	"github.com/moviebunkers/api/internal/users/userdata"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, logout, identity echo and password reset.
	Auth *auth.Handler

	// Title handles the catalog list/aggregation and title CRUD.
	Title *title.Handler

	// Season, Episode and Link handle the title-owned dependent entities.
	Season  *season.Handler
	Episode *episode.Handler
	Link    *link.Handler

	// Account handles admin user management.
	Account *account.Handler

	// UserData handles per-user watch-state.
	UserData *userdata.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(
	appContext context.Context,
	cfg *config.Config,
	log *slog.Logger,
	verifier middleware.TokenVerifier,
	resolver middleware.PrincipalResolver,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(appContext))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier, resolver))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)

		api.Route("/titles", func(titles chi.Router) {
			h.Title.RegisterRoutes(titles)
			titles.Route("/{titleId}/seasons", h.Season.RegisterRoutes)
			titles.Route("/{titleId}/episodes", h.Episode.RegisterRoutes)
			titles.Route("/{titleId}/links", h.Link.RegisterRoutes)
		})

		api.Route("/users", h.Account.RegisterRoutes)
		api.Route("/userdata", h.UserData.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
