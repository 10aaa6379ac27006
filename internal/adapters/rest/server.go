package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "property-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewRouter собирает chi-роутер со всеми маршрутами сервиса.
func NewRouter(handlers *PropertyHandler, baseLogger core_port.LoggerPort) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1/properties", func(r chi.Router) {
		r.Get("/", handlers.GetProperties)
		r.Post("/", handlers.CreateProperty)
		r.Get("/featured", handlers.GetFeaturedProperties)
		r.Get("/search", handlers.SearchProperties)
		r.Get("/agent/{agentId}", handlers.GetPropertiesByAgent)
		r.Get("/city/{cityId}", handlers.GetPropertiesByCity)
		r.Get("/{id}", handlers.GetPropertyByID)
		r.Put("/{id}", handlers.UpdateProperty)
		r.Delete("/{id}", handlers.DeleteProperty)
		r.Put("/{id}/feature", handlers.ToggleFeatured)
	})

	return r
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, handlers *PropertyHandler, baseLogger core_port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: NewRouter(handlers, baseLogger),
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
