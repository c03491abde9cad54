package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mavenwealth/optimizer/internal/modules/catalog"
	"github.com/mavenwealth/optimizer/internal/modules/cma"
	"github.com/mavenwealth/optimizer/internal/modules/insights"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
	"github.com/mavenwealth/optimizer/internal/modules/scoring"
	"github.com/mavenwealth/optimizer/internal/modules/stress"
)

func setupTestRouter(t *testing.T) chi.Router {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := catalog.NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.Init())
	require.NoError(t, repo.SeedIfEmpty())

	set := cma.Default()
	calc := metrics.NewCalculator(set)
	scorer, err := scoring.NewScorer(scoring.DefaultWeights, set.RiskFreeRate, zerolog.Nop())
	require.NoError(t, err)
	gen := insights.NewGenerator(calc, stress.NewEngine(calc, zerolog.Nop()), zerolog.Nop())

	h := NewHandler(repo, scorer, calc, gen, zerolog.Nop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postOptimize(t *testing.T, router chi.Router, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/optimize/auto", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAutoOptimize(t *testing.T) {
	router := setupTestRouter(t)

	w := postOptimize(t, router, map[string]interface{}{
		"allocation": map[string]float64{
			"US Equity": 60,
			"US Bonds":  40,
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	data := response["data"].(map[string]interface{})

	assert.NotEmpty(t, data["analysis_id"])

	// One selection per funded class, each with a concrete pick.
	results := data["results"].(map[string]interface{})
	require.Len(t, results, 2)
	for class, raw := range results {
		result := raw.(map[string]interface{})
		assert.NotNil(t, result["selected"], class)
		assert.Greater(t, result["funds_analyzed"].(float64), 0.0, class)
	}

	// The portfolio carries the fractional weights, not percentage points.
	portfolio := data["portfolio"].([]interface{})
	require.Len(t, portfolio, 2)
	var totalWeight float64
	for _, raw := range portfolio {
		entry := raw.(map[string]interface{})
		totalWeight += entry["weight"].(float64)
	}
	assert.InDelta(t, 1.0, totalWeight, 1e-9)

	pm := data["portfolio_metrics"].(map[string]interface{})
	assert.InDelta(t, 0.06, pm["expected_return"].(float64), 1e-9)
	assert.Greater(t, pm["weighted_expense_ratio"].(float64), 0.0)

	assert.NotEmpty(t, data["explanations"])
	comparisons := data["model_comparisons"].([]interface{})
	assert.Len(t, comparisons, 5)
	assert.NotNil(t, data["closest_model"])
}

func TestHandleAutoOptimizePreferences(t *testing.T) {
	router := setupTestRouter(t)

	w := postOptimize(t, router, map[string]interface{}{
		"allocation": map[string]float64{
			"US Equity": 100,
		},
		"preferences": map[string]interface{}{
			"preferETF":       true,
			"maxExpenseRatio": 0.05,
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	data := response["data"].(map[string]interface{})

	// A 5bp expense cap leaves only the cheapest index funds.
	portfolio := data["portfolio"].([]interface{})
	require.Len(t, portfolio, 1)
	entry := portfolio[0].(map[string]interface{})
	assert.LessOrEqual(t, entry["expense_ratio"].(float64), 0.0005)
}

func TestHandleAutoOptimizeRejectsBadAllocation(t *testing.T) {
	router := setupTestRouter(t)

	cases := []map[string]float64{
		{},
		{"US Equity": 50},
		{"Crypto": 100},
		{"US Equity": -20, "US Bonds": 120},
	}
	for _, alloc := range cases {
		w := postOptimize(t, router, map[string]interface{}{"allocation": alloc})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestHandleAutoOptimizeInvalidBody(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest("POST", "/optimize/auto", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
