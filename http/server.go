// Package http provides the HTTP API for site generation: multipart
// uploads in, generated site out, plus generation history endpoints.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/pipeline"
)

// Server is the HTTP server for the generation API.
type Server struct {
	Addr string

	generator   *pipeline.Generator
	templates   sitegen.TemplateService
	generations sitegen.GenerationService
	logger      *slog.Logger
	server      *http.Server
}

// NewServer creates a server with the given dependencies. generations
// may be nil when no history storage is configured.
func NewServer(addr string, generator *pipeline.Generator, templates sitegen.TemplateService, generations sitegen.GenerationService, logger *slog.Logger) *Server {
	return &Server{
		Addr:        addr,
		generator:   generator,
		templates:   templates,
		generations: generations,
		logger:      logger,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Post("/api/v1/generate", s.handleGenerate)
	r.Get("/api/v1/templates", s.handleListTemplates)
	r.Get("/api/v1/generations", s.handleListGenerations)
	r.Get("/api/v1/generations/{id}", s.handleGetGeneration)
	r.Delete("/api/v1/generations/{id}", s.handleDeleteGeneration)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.Addr,
		Handler: s.Handler(),
	}
	s.logger.Info("starting server", "addr", s.Addr)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
