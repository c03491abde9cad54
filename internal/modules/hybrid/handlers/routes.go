package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all model portfolio routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/models", func(r chi.Router) {
		r.Get("/", h.HandleListModels)
		r.Post("/hybrid", h.HandleBuildHybrid)
	})
}
