package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenwealth/optimizer/internal/modules/cma"
	"github.com/mavenwealth/optimizer/internal/modules/frontier"
)

func setupTestRouter(t *testing.T) chi.Router {
	t.Helper()
	h := NewHandler(frontier.NewGenerator(cma.Default(), zerolog.Nop()), zerolog.Nop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func getFrontier(t *testing.T, router chi.Router, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	}
	return w, response
}

func TestHandleGetFrontier(t *testing.T) {
	router := setupTestRouter(t)

	w, response := getFrontier(t, router, "/frontier/?samples=2000&steps=20&seed=42")
	require.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	points := data["frontier"].([]interface{})
	require.NotEmpty(t, points)
	require.LessOrEqual(t, len(points), 20)

	// Volatility must increase strictly along the frontier.
	var lastVol float64 = -1
	for _, raw := range points {
		p := raw.(map[string]interface{})
		vol := p["volatility"].(float64)
		assert.Greater(t, vol, lastVol)
		lastVol = vol
	}

	maxSharpe := data["max_sharpe"].(map[string]interface{})
	minVol := data["min_volatility"].(map[string]interface{})
	assert.GreaterOrEqual(t, maxSharpe["sharpe"].(float64), 0.0)
	assert.LessOrEqual(t, minVol["volatility"].(float64), lastVol)

	metadata := response["metadata"].(map[string]interface{})
	assert.Equal(t, 2000.0, metadata["samples"])
	assert.Equal(t, 20.0, metadata["steps"])
}

func TestHandleGetFrontierSeedDeterminism(t *testing.T) {
	router := setupTestRouter(t)

	w1, r1 := getFrontier(t, router, "/frontier/?samples=1500&steps=15&seed=7")
	w2, r2 := getFrontier(t, router, "/frontier/?samples=1500&steps=15&seed=7")
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	assert.Equal(t, r1["data"], r2["data"])
}

func TestHandleGetFrontierBadQuery(t *testing.T) {
	router := setupTestRouter(t)

	for _, url := range []string{
		"/frontier/?steps=1",
		"/frontier/?samples=0",
		"/frontier/?seed=-1",
		"/frontier/?maxWeight=1.5",
		"/frontier/?maxWeight=0.1", // 6 classes at 10% cannot reach 100%
	} {
		req := httptest.NewRequest("GET", url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestHandleGetRiskParity(t *testing.T) {
	router := setupTestRouter(t)

	w, response := getFrontier(t, router, "/frontier/risk-parity")
	require.Equal(t, http.StatusOK, w.Code)

	alloc := response["data"].(map[string]interface{})["allocation"].(map[string]interface{})
	var total float64
	for _, v := range alloc {
		total += v.(float64)
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	// Inverse volatility weighting puts more in bonds than in EM.
	assert.Greater(t, alloc["US Bonds"].(float64), alloc["Emerging Markets"].(float64))
}
