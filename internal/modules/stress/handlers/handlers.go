// Package handlers provides HTTP handlers for stress tests and Monte Carlo
// projections.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/stress"
)

// Handler handles stress testing HTTP requests
type Handler struct {
	engine *stress.Engine
	log    zerolog.Logger
}

// NewHandler creates a new stress testing handler
func NewHandler(engine *stress.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log.With().Str("handler", "stress").Logger(),
	}
}

// StressRequest carries the allocation to shock, in percentage points.
type StressRequest struct {
	Allocation map[string]float64 `json:"allocation"`
}

// MonteCarloRequest configures a Monte Carlo projection. The allocation is in
// percentage points; StartValue and Seed are optional.
type MonteCarloRequest struct {
	Allocation  map[string]float64 `json:"allocation"`
	Years       int                `json:"years"`
	Simulations int                `json:"simulations"`
	Seed        *uint64            `json:"seed,omitempty"`
	StartValue  float64            `json:"startValue,omitempty"`
}

// HandleRunStressTests handles POST /api/stress
func (h *Handler) HandleRunStressTests(w http.ResponseWriter, r *http.Request) {
	var req StressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	alloc := domain.FromPercents(req.Allocation)
	if err := alloc.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := h.engine.RunAll(alloc)

	response := map[string]interface{}{
		"data": report,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"scenarios": len(report.Historical) + len(report.Hypothetical),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleListScenarios handles GET /api/stress/scenarios
func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"data": map[string]interface{}{
			"scenarios": h.engine.Scenarios(),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleMonteCarlo handles POST /api/stress/montecarlo
func (h *Handler) HandleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req MonteCarloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	alloc := domain.FromPercents(req.Allocation)
	result, err := h.engine.MonteCarlo(alloc, req.Years, req.Simulations, stress.MonteCarloOptions{
		Seed:       req.Seed,
		StartValue: req.StartValue,
	})
	if err != nil {
		var verr *domain.InputValidationError
		if errors.As(err, &verr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Monte Carlo simulation failed")
		http.Error(w, "Monte Carlo simulation failed", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": result,
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
