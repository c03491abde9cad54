// Package handlers provides HTTP handlers for the fund catalog.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/catalog"
)

// Handler handles fund catalog HTTP requests
type Handler struct {
	repo *catalog.Repository
	log  zerolog.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(repo *catalog.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "catalog").Logger(),
	}
}

// HandleListFunds handles GET /api/funds
func (h *Handler) HandleListFunds(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{
		AssetClass: domain.AssetClass(r.URL.Query().Get("assetClass")),
		Search:     r.URL.Query().Get("search"),
	}

	if t := r.URL.Query().Get("type"); t != "" {
		filter.Type = domain.FundType(t)
	}
	if raw := r.URL.Query().Get("minAum"); raw != "" {
		minAUM, err := strconv.ParseFloat(raw, 64)
		if err != nil || minAUM < 0 {
			http.Error(w, "minAum must be a non-negative number", http.StatusBadRequest)
			return
		}
		filter.MinAUM = minAUM
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	funds, err := h.repo.List(filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list funds")
		http.Error(w, "Failed to list funds", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"funds": funds,
			"count": len(funds),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleGetFund handles GET /api/funds/{ticker}
func (h *Handler) HandleGetFund(w http.ResponseWriter, r *http.Request, ticker string) {
	fund, err := h.repo.Get(ticker)
	if err != nil {
		http.Error(w, "Fund not found", http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"data": fund,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
