// Package server provides the HTTP server and routing for the optimizer.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/config"
	"github.com/mavenwealth/optimizer/internal/database"
	cataloghandlers "github.com/mavenwealth/optimizer/internal/modules/catalog/handlers"
	comparisonhandlers "github.com/mavenwealth/optimizer/internal/modules/comparison/handlers"
	frontierhandlers "github.com/mavenwealth/optimizer/internal/modules/frontier/handlers"
	hybridhandlers "github.com/mavenwealth/optimizer/internal/modules/hybrid/handlers"
	rebalancinghandlers "github.com/mavenwealth/optimizer/internal/modules/rebalancing/handlers"
	scoringhandlers "github.com/mavenwealth/optimizer/internal/modules/scoring/handlers"
	stresshandlers "github.com/mavenwealth/optimizer/internal/modules/stress/handlers"
)

// Config holds server configuration
type Config struct {
	Log      zerolog.Logger
	FundsDB  *database.DB
	Config   *config.Config
	Port     int
	DevMode  bool
	Handlers Handlers
}

// Handlers collects the per-module HTTP handlers mounted under /api.
type Handlers struct {
	Catalog     *cataloghandlers.Handler
	Scoring     *scoringhandlers.Handler
	Hybrid      *hybridhandlers.Handler
	Frontier    *frontierhandlers.Handler
	Stress      *stresshandlers.Handler
	Rebalancing *rebalancinghandlers.Handler
	Comparison  *comparisonhandlers.Handler
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	fundsDB        *database.DB
	cfg            *config.Config
	handlers       Handlers
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		fundsDB:        cfg.FundsDB,
		cfg:            cfg.Config,
		handlers:       cfg.Handlers,
		systemHandlers: NewSystemHandlers(cfg.Log, cfg.Config.DataDir, cfg.FundsDB),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		s.handlers.Catalog.RegisterRoutes(r)
		s.handlers.Scoring.RegisterRoutes(r)
		s.handlers.Hybrid.RegisterRoutes(r)
		s.handlers.Frontier.RegisterRoutes(r)
		s.handlers.Stress.RegisterRoutes(r)
		s.handlers.Rebalancing.RegisterRoutes(r)
		s.handlers.Comparison.RegisterRoutes(r)

		r.Get("/system/status", s.systemHandlers.HandleStatus)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
