// Package api exposes the evaluation pipeline over HTTP. The JSON shapes
// served here are the wire contract storage and audit callers consume.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gomandate/app"
	"gomandate/internal"
	"gomandate/internal/usage"
	"gomandate/ports"
)

// Server represents the HTTP API server
type Server struct {
	router    *chi.Mux
	evaluator *app.EvaluationService
	decisions ports.DecisionRepository // nil disables persistence
	tracker   *usage.Tracker
	logger    *internal.Logger
}

// Config holds server configuration
type Config struct {
	Port string
}

// NewServer creates the API server and mounts its routes
func NewServer(evaluator *app.EvaluationService, decisions ports.DecisionRepository, tracker *usage.Tracker) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		evaluator: evaluator,
		decisions: decisions,
		tracker:   tracker,
		logger:    internal.DefaultLogger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Post("/api/evaluate", s.handleEvaluate)
	s.router.Get("/api/decisions/{id}", s.handleGetDecision)
	s.router.Get("/health", s.handleHealth)

	return s
}

// Handler returns the mounted router
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on the configured port
func (s *Server) ListenAndServe(config Config) error {
	addr := ":" + config.Port
	s.logger.Info("[API] listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
