package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mavenwealth/optimizer/internal/modules/catalog"
	"github.com/mavenwealth/optimizer/internal/modules/comparison"
)

func setupTestHandler(t *testing.T) *Handler {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := catalog.NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.Init())
	require.NoError(t, repo.SeedIfEmpty())

	comparer := comparison.NewComparer(repo, zerolog.Nop())
	return NewHandler(comparer, zerolog.Nop())
}

func newRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postCompare(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/compare", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCompare(t *testing.T) {
	router := newRouter(setupTestHandler(t))

	body := `{"portfolios": [{
		"name": "Classic 60/40",
		"holdings": [
			{"ticker": "VOO", "weight": 60},
			{"ticker": "AGG", "weight": 40}
		]
	}]}`
	w := postCompare(t, router, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Contains(t, response, "data")
	require.Contains(t, response, "metadata")

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["count"])

	comparisons := data["comparisons"].([]interface{})
	require.Len(t, comparisons, 1)

	first := comparisons[0].(map[string]interface{})
	assert.Equal(t, "Classic 60/40", first["name"])

	m := first["metrics"].(map[string]interface{})
	assert.InDelta(t, 1.0, m["total_weight"].(float64), 1e-9)
	assert.InDelta(t, 0.0003, m["expense_ratio"].(float64), 1e-9)

	returns := m["returns"].(map[string]interface{})
	assert.InDelta(t, 15.98, returns["return_1yr"].(float64), 1e-9)

	alpha := first["alpha"].(map[string]interface{})
	assert.InDelta(t, 0.48, alpha["return_1yr"].(float64), 1e-9)
}

func TestHandleCompareMultiple(t *testing.T) {
	router := newRouter(setupTestHandler(t))

	body := `{"portfolios": [
		{"name": "All Stocks", "holdings": [{"ticker": "VOO", "weight": 100}]},
		{"name": "All Bonds", "holdings": [{"ticker": "AGG", "weight": 100}]}
	]}`
	w := postCompare(t, router, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	data := response["data"].(map[string]interface{})
	comparisons := data["comparisons"].([]interface{})
	require.Len(t, comparisons, 2)
	assert.Equal(t, "All Stocks", comparisons[0].(map[string]interface{})["name"])
	assert.Equal(t, "All Bonds", comparisons[1].(map[string]interface{})["name"])
}

func TestHandleCompareUnmatchedTicker(t *testing.T) {
	router := newRouter(setupTestHandler(t))

	body := `{"portfolios": [{
		"name": "Mystery",
		"holdings": [
			{"ticker": "VOO", "weight": 50},
			{"ticker": "ZZZZ", "weight": 50}
		]
	}]}`
	w := postCompare(t, router, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	data := response["data"].(map[string]interface{})
	first := data["comparisons"].([]interface{})[0].(map[string]interface{})
	m := first["metrics"].(map[string]interface{})
	assert.InDelta(t, 0.5, m["unmatched_weight"].(float64), 1e-9)
}

func TestHandleCompareValidation(t *testing.T) {
	router := newRouter(setupTestHandler(t))

	cases := []struct {
		name string
		body string
	}{
		{"empty portfolios", `{"portfolios": []}`},
		{"no holdings", `{"portfolios": [{"name": "Empty", "holdings": []}]}`},
		{"negative weight", `{"portfolios": [{"name": "Bad", "holdings": [{"ticker": "VOO", "weight": -10}]}]}`},
		{"malformed body", `{"portfolios": `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postCompare(t, router, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
