// Package web provides the HTTP API for the Rewind service.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rewindhq/rewind/internal/auth"
	"github.com/rewindhq/rewind/internal/capsule"
	"github.com/rewindhq/rewind/internal/catalog"
	"github.com/rewindhq/rewind/internal/favorites"
	"github.com/rewindhq/rewind/internal/gamification"
	"github.com/rewindhq/rewind/internal/mirror"
	"github.com/rewindhq/rewind/internal/prefs"
)

// ServerConfig holds server dependencies and settings. Auth, Capsules
// and Mirror are optional; the corresponding routes respond with 503
// when they are absent.
type ServerConfig struct {
	Addr string

	Catalog   *catalog.Store
	Favorites *favorites.Aggregator
	Progress  *gamification.Engine
	Prefs     *prefs.Manager

	Auth     *auth.Provider
	Capsules *capsule.Service
	Mirror   *mirror.Mirror

	Log zerolog.Logger
}

// Server is the HTTP server for the Rewind API.
type Server struct {
	router   chi.Router
	server   *http.Server
	sessions *SessionStore
	handlers *Handlers
	log      zerolog.Logger
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig) *Server {
	sessions := NewSessionStore()
	handlers := NewHandlers(cfg, sessions)
	router := chi.NewRouter()

	s := &Server{
		router:   router,
		sessions: sessions,
		handlers: handlers,
		log:      cfg.Log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures routes for the application.
func (s *Server) setupRoutes() {
	h := s.handlers

	// Auth routes
	s.router.Get("/auth/login", h.Login)
	s.router.Get("/callback", h.Callback)
	s.router.Post("/auth/logout", h.Logout)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/me", h.Me)

		// Catalog
		r.Get("/years", h.ListYears)
		r.Get("/years/{yearID}", h.GetYear)
		r.Get("/years/{yearID}/months", h.ListMonths)
		r.Get("/years/{yearID}/items", h.ListYearItems)
		r.Get("/categories", h.ListCategories)
		r.Get("/months/{monthID}/items", h.ListMonthItems)
		r.Get("/items/random", h.RandomItem)
		r.Get("/items/slug/{slug}", h.GetItemBySlug)
		r.Get("/items/{itemID}", h.GetItem)
		r.Get("/items/{itemID}/related", h.RelatedItems)
		r.Get("/search", h.Search)
		r.Get("/on-this-day", h.OnThisDay)

		// Favorites and wrapped
		r.Get("/favorites", h.ListFavorites)
		r.Delete("/favorites", h.ClearFavorites)
		r.Put("/favorites/{itemID}", h.AddFavorite)
		r.Delete("/favorites/{itemID}", h.RemoveFavorite)
		r.Post("/favorites/{itemID}/toggle", h.ToggleFavorite)
		r.Get("/wrapped/{year}", h.GetWrapped)
		r.Get("/wrapped/{year}/export", h.ExportWrapped)
		r.Get("/wrapped/{year}/waves", h.WrappedWaves)

		// Progress and achievements
		r.Post("/progress/explorations/{itemID}", h.RecordExploration)
		r.Post("/progress/shares", h.RecordShare)
		r.Delete("/progress", h.ResetProgress)
		r.Get("/achievements", h.ListAchievements)
		r.Get("/achievements/earned", h.ListEarnedAchievements)
		r.Get("/achievements/{achievementID}/progress", h.AchievementProgress)
		r.Get("/stats", h.GetStats)
		r.Get("/streak-message", h.StreakMessage)

		// Preferences
		r.Get("/preferences", h.GetPreferences)
		r.Put("/preferences", h.PutPreferences)

		// Capsules require a signed-in user.
		r.Route("/capsules", func(r chi.Router) {
			r.Use(h.RequireSession)
			r.Get("/", h.ListCapsules)
			r.Post("/", h.CreateCapsule)
			r.Get("/{capsuleID}", h.GetCapsule)
			r.Delete("/{capsuleID}", h.DeleteCapsule)
			r.Post("/{capsuleID}/entries", h.AddCapsuleEntry)
			r.Post("/{capsuleID}/seal", h.SealCapsule)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.log.Info().Msg("server stopped")
	return nil
}
