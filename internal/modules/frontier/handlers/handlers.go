// Package handlers provides HTTP handlers for efficient frontier generation.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/frontier"
)

// Handler handles efficient frontier HTTP requests
type Handler struct {
	generator *frontier.Generator
	log       zerolog.Logger
}

// NewHandler creates a new frontier handler
func NewHandler(generator *frontier.Generator, log zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		log:       log.With().Str("handler", "frontier").Logger(),
	}
}

// HandleGetFrontier handles GET /api/frontier
func (h *Handler) HandleGetFrontier(w http.ResponseWriter, r *http.Request) {
	opts, ok := h.parseOptions(w, r)
	if !ok {
		return
	}

	if opts.Samples == 0 {
		opts.Samples = frontier.DefaultSamples
	}
	if opts.Steps == 0 {
		opts.Steps = frontier.DefaultSteps
	}

	points, err := h.generator.Generate(nil, opts)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	maxSharpe, err := h.generator.MaxSharpe(nil, opts)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	minVol, err := h.generator.MinVolatility(nil, opts)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"frontier":       points,
			"max_sharpe":     maxSharpe,
			"min_volatility": minVol,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"samples":   opts.Samples,
			"steps":     opts.Steps,
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleGetRiskParity handles GET /api/frontier/risk-parity
func (h *Handler) HandleGetRiskParity(w http.ResponseWriter, r *http.Request) {
	alloc, err := h.generator.RiskParity(nil)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"allocation": alloc,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// parseOptions reads steps, samples, seed and the weight bounds from the
// query string. A false return means the error response was already written.
func (h *Handler) parseOptions(w http.ResponseWriter, r *http.Request) (frontier.Options, bool) {
	var opts frontier.Options

	if raw := r.URL.Query().Get("steps"); raw != "" {
		steps, err := strconv.Atoi(raw)
		if err != nil || steps < 2 {
			http.Error(w, "steps must be an integer >= 2", http.StatusBadRequest)
			return opts, false
		}
		opts.Steps = steps
	}
	if raw := r.URL.Query().Get("samples"); raw != "" {
		samples, err := strconv.Atoi(raw)
		if err != nil || samples < 1 {
			http.Error(w, "samples must be a positive integer", http.StatusBadRequest)
			return opts, false
		}
		opts.Samples = samples
	}
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "seed must be an unsigned integer", http.StatusBadRequest)
			return opts, false
		}
		opts.Seed = &seed
	}
	if raw := r.URL.Query().Get("maxWeight"); raw != "" {
		maxWeight, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxWeight <= 0 || maxWeight > 1 {
			http.Error(w, "maxWeight must be in (0, 1]", http.StatusBadRequest)
			return opts, false
		}
		opts.MaxWeight = maxWeight
	}

	return opts, true
}

func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	var verr *domain.InputValidationError
	if errors.As(err, &verr) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var rerr *domain.ReferenceDataError
	if errors.As(err, &rerr) {
		h.log.Error().Err(err).Msg("Reference data missing")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	h.log.Error().Err(err).Msg("Frontier generation failed")
	http.Error(w, "Frontier generation failed", http.StatusInternalServerError)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
