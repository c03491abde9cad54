// Package handlers provides HTTP handlers for portfolio comparison.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/comparison"
)

// Handler handles portfolio comparison HTTP requests
type Handler struct {
	comparer *comparison.Comparer
	log      zerolog.Logger
}

// NewHandler creates a new comparison handler
func NewHandler(comparer *comparison.Comparer, log zerolog.Logger) *Handler {
	return &Handler{
		comparer: comparer,
		log:      log.With().Str("handler", "comparison").Logger(),
	}
}

// CompareRequest carries the portfolios to compare. Holding weights are in
// percentage points.
type CompareRequest struct {
	Portfolios []struct {
		Name     string `json:"name"`
		Holdings []struct {
			Ticker string  `json:"ticker"`
			Weight float64 `json:"weight"`
		} `json:"holdings"`
	} `json:"portfolios"`
}

// HandleCompare handles POST /api/compare
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	portfolios := make([]comparison.Portfolio, 0, len(req.Portfolios))
	for _, p := range req.Portfolios {
		holdings := make([]comparison.Holding, 0, len(p.Holdings))
		for _, hld := range p.Holdings {
			holdings = append(holdings, comparison.Holding{
				Ticker: hld.Ticker,
				Weight: hld.Weight / 100,
			})
		}
		portfolios = append(portfolios, comparison.Portfolio{Name: p.Name, Holdings: holdings})
	}

	results, err := h.comparer.Compare(portfolios)
	if err != nil {
		var verr *domain.InputValidationError
		if errors.As(err, &verr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Comparison failed")
		http.Error(w, "Comparison failed", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"comparisons": results,
			"count":       len(results),
		},
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
