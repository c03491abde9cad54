package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all efficient frontier routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/frontier", func(r chi.Router) {
		r.Get("/", h.HandleGetFrontier)
		r.Get("/risk-parity", h.HandleGetRiskParity)
	})
}
