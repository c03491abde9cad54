// Package handlers provides HTTP handlers for fund selection and
// auto-optimization.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/catalog"
	"github.com/mavenwealth/optimizer/internal/modules/insights"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
	"github.com/mavenwealth/optimizer/internal/modules/scoring"
)

// Handler handles optimization HTTP requests
type Handler struct {
	repo     *catalog.Repository
	scorer   *scoring.Scorer
	calc     *metrics.Calculator
	insights *insights.Generator
	log      zerolog.Logger
}

// NewHandler creates a new optimization handler
func NewHandler(
	repo *catalog.Repository,
	scorer *scoring.Scorer,
	calc *metrics.Calculator,
	gen *insights.Generator,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		repo:     repo,
		scorer:   scorer,
		calc:     calc,
		insights: gen,
		log:      log.With().Str("handler", "optimize").Logger(),
	}
}

// AutoOptimizeRequest carries a target allocation in percentage points plus
// fund selection preferences. MaxExpenseRatio is also in percentage points
// (0.2 means 0.2% per year).
type AutoOptimizeRequest struct {
	Allocation  map[string]float64 `json:"allocation"`
	Preferences struct {
		PreferETF       bool    `json:"preferETF"`
		MaxExpenseRatio float64 `json:"maxExpenseRatio"`
	} `json:"preferences"`
}

// ClassResult is the selection outcome for one asset class.
type ClassResult struct {
	Weight float64 `json:"weight"`
	scoring.Selection
}

// PortfolioEntry is one concrete fund position in the optimized portfolio.
type PortfolioEntry struct {
	Ticker       string            `json:"ticker"`
	Name         string            `json:"name"`
	Weight       float64           `json:"weight"`
	AssetClass   domain.AssetClass `json:"asset_class"`
	ExpenseRatio float64           `json:"expense_ratio"`
}

// HandleAutoOptimize handles POST /api/optimize/auto
func (h *Handler) HandleAutoOptimize(w http.ResponseWriter, r *http.Request) {
	var req AutoOptimizeRequest
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

	prefs := scoring.Preferences{
		PreferETF:       req.Preferences.PreferETF,
		MaxExpenseRatio: req.Preferences.MaxExpenseRatio / 100,
	}

	results := make(map[domain.AssetClass]ClassResult)
	var portfolio []PortfolioEntry
	var weightedExpense float64

	for _, class := range domain.AllAssetClasses {
		weight := alloc[class]
		if weight <= 0 {
			continue
		}

		candidates, err := h.repo.List(catalog.Filter{AssetClass: class})
		if err != nil {
			h.log.Error().Err(err).Str("asset_class", string(class)).Msg("Failed to load candidates")
			http.Error(w, "Failed to load fund candidates", http.StatusInternalServerError)
			return
		}

		sel := h.scorer.Select(class, candidates, prefs)
		results[class] = ClassResult{Weight: weight, Selection: sel}

		if sel.Unfilled {
			continue
		}
		fund := sel.Selected.Fund
		portfolio = append(portfolio, PortfolioEntry{
			Ticker:       fund.Ticker,
			Name:         fund.Name,
			Weight:       weight,
			AssetClass:   class,
			ExpenseRatio: fund.ExpenseRatio,
		})
		weightedExpense += fund.ExpenseRatio * weight
	}

	portfolioMetrics, err := h.calc.Compute(alloc)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}
	portfolioMetrics.WeightedExpenseRatio = weightedExpense

	explanations, err := h.insights.Generate(alloc, weightedExpense)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	modelComparisons := insights.ClosestModels(alloc, 5)

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"analysis_id":       uuid.New().String(),
			"allocation":        alloc,
			"results":           results,
			"portfolio":         portfolio,
			"portfolio_metrics": portfolioMetrics,
			"explanations":      explanations,
			"model_comparisons": modelComparisons,
			"closest_model":     modelComparisons[0],
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// writeComputeError maps engine errors to HTTP statuses: bad input is the
// caller's fault, missing reference data is ours.
func (h *Handler) writeComputeError(w http.ResponseWriter, err error) {
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
	h.log.Error().Err(err).Msg("Optimization failed")
	http.Error(w, "Optimization failed", http.StatusInternalServerError)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
