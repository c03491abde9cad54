package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers comparison routes on the given router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/compare", h.HandleCompare)
}
