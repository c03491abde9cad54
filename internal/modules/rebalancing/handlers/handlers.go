// Package handlers provides HTTP handlers for rebalance drift analysis.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/rebalancing"
)

// Handler handles rebalancing HTTP requests
type Handler struct {
	monitor *rebalancing.Monitor
	log     zerolog.Logger
}

// NewHandler creates a new rebalancing handler
func NewHandler(monitor *rebalancing.Monitor, log zerolog.Logger) *Handler {
	return &Handler{
		monitor: monitor,
		log:     log.With().Str("handler", "rebalancing").Logger(),
	}
}

// AnalyzeDriftRequest carries target and current allocations in percentage
// points plus the portfolio value in currency units.
type AnalyzeDriftRequest struct {
	Target     map[string]float64 `json:"target"`
	Current    map[string]float64 `json:"current"`
	TotalValue float64            `json:"total_value"`
}

// HandleAnalyzeDrift handles POST /api/rebalance/analyze
func (h *Handler) HandleAnalyzeDrift(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeDriftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	target := domain.FromPercents(req.Target)
	current := domain.FromPercents(req.Current)
	totalValue := decimal.NewFromFloat(req.TotalValue)

	analysis, err := h.monitor.AnalyzeDrift(target, current, totalValue)
	if err != nil {
		var verr *domain.InputValidationError
		if errors.As(err, &verr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Drift analysis failed")
		http.Error(w, "Drift analysis failed", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": analysis,
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
