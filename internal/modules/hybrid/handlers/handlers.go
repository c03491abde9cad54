// Package handlers provides HTTP handlers for manager model portfolios and
// hybrid model construction.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/hybrid"
)

// Handler handles model portfolio HTTP requests
type Handler struct {
	builder *hybrid.Builder
	log     zerolog.Logger
}

// NewHandler creates a new models handler
func NewHandler(builder *hybrid.Builder, log zerolog.Logger) *Handler {
	return &Handler{
		builder: builder,
		log:     log.With().Str("handler", "models").Logger(),
	}
}

// BuildHybridRequest names the risk profile to build a hybrid model for.
type BuildHybridRequest struct {
	RiskProfile string `json:"riskProfile"`
}

// HandleListModels handles GET /api/models
func (h *Handler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	profiles := hybrid.AllProfiles
	if raw := r.URL.Query().Get("profile"); raw != "" {
		profile := hybrid.RiskProfile(raw)
		if len(hybrid.ReferenceModels(profile)) == 0 {
			http.Error(w, "Unknown risk profile", http.StatusBadRequest)
			return
		}
		profiles = []hybrid.RiskProfile{profile}
	}

	models := make(map[hybrid.RiskProfile][]domain.ModelPortfolio, len(profiles))
	for _, profile := range profiles {
		models[profile] = hybrid.ReferenceModels(profile)
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"models": models,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleBuildHybrid handles POST /api/models/hybrid
func (h *Handler) HandleBuildHybrid(w http.ResponseWriter, r *http.Request) {
	var req BuildHybridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	model, err := h.builder.Build(hybrid.RiskProfile(req.RiskProfile))
	if err != nil {
		var verr *domain.InputValidationError
		if errors.As(err, &verr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Str("profile", req.RiskProfile).Msg("Failed to build hybrid model")
		http.Error(w, "Failed to build hybrid model", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": model,
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
