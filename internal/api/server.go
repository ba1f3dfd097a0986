package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/extract"
	"github.com/dgallion1/outliner/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for outliner.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	stats        *extract.Stats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, stats *extract.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		stats:        stats,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.OutlinerAPIKey, s.log))

		r.Post("/api/outline", s.handleOutline)
		r.Get("/api/outline/{jobID}", s.handleOutlineStatus)
		r.Post("/api/outline/batch", s.handleBatchOutline)
		r.Get("/api/stats/extract", s.handleExtractStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
