package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all fund catalog routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/funds", func(r chi.Router) {
		r.Get("/", h.HandleListFunds)
		r.Get("/{ticker}", func(w http.ResponseWriter, r *http.Request) {
			ticker := chi.URLParam(r, "ticker")
			h.HandleGetFund(w, r, ticker)
		})
	})
}
