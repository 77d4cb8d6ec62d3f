package server

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter wires the checklist routes.
func NewRouter(h *Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(Recovery(logger))
	r.Use(Logger(logger))

	r.Get("/", h.Form)
	r.Post("/generate", h.Generate)
	r.Get("/reports/{name}", h.Download)
	r.Get("/healthz", h.Healthz)

	return r
}
