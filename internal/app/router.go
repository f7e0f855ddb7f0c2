package app

import (
	"net/http"

	"github.com/avc-dev/linkcounter/internal/config"
	"github.com/avc-dev/linkcounter/internal/handler"
	"github.com/avc-dev/linkcounter/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.Gzip(logger))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Index)
	r.Get("/health", h.Health)
	r.Post("/api/shorten", h.CreateURLJSON)
	r.Get("/api/stats/{id}", h.GetStats)
	r.Get("/{id}", h.GetURL)

	return r
}
