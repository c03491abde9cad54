package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenwealth/optimizer/internal/modules/rebalancing"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	monitor := rebalancing.NewMonitor(rebalancing.DefaultThresholds(), zerolog.Nop())
	h := NewHandler(monitor, zerolog.Nop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postAnalyze(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/rebalance/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAnalyzeDrift(t *testing.T) {
	router := newRouter(t)

	body := `{
		"target":      {"US Equity": 60, "US Bonds": 40},
		"current":     {"US Equity": 67, "US Bonds": 33},
		"total_value": 100000
	}`
	w := postAnalyze(t, router, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Contains(t, response, "data")
	require.Contains(t, response, "metadata")

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "critical", data["status"])
	assert.Equal(t, 2.0, data["trades_needed"])

	reports := data["reports"].([]interface{})
	require.Len(t, reports, 2)

	first := reports[0].(map[string]interface{})
	assert.Equal(t, "US Equity", first["asset_class"])
	assert.InDelta(t, 7.0, first["drift_pct"].(float64), 1e-9)
	assert.Equal(t, "SELL", first["action"])

	priorities := data["priorities"].([]interface{})
	assert.NotEmpty(t, priorities)
}

func TestHandleAnalyzeDriftWithinTolerance(t *testing.T) {
	router := newRouter(t)

	body := `{
		"target":      {"US Equity": 60, "US Bonds": 40},
		"current":     {"US Equity": 61, "US Bonds": 39},
		"total_value": 100000
	}`
	w := postAnalyze(t, router, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	// 1pp of drift is inside the tolerance band, but the $1,000 trades it
	// implies clear the materiality floor and are still listed.
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, 2.0, data["trades_needed"])

	for _, r := range data["reports"].([]interface{}) {
		report := r.(map[string]interface{})
		switch report["asset_class"] {
		case "US Equity":
			assert.Equal(t, "SELL", report["action"])
		case "US Bonds":
			assert.Equal(t, "BUY", report["action"])
		}
	}
}

func TestHandleAnalyzeDriftValidation(t *testing.T) {
	router := newRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{
			"target does not sum",
			`{"target": {"US Equity": 50}, "current": {"US Equity": 60, "US Bonds": 40}, "total_value": 100000}`,
		},
		{
			"unknown asset class",
			`{"target": {"Crypto": 100}, "current": {"US Equity": 100}, "total_value": 100000}`,
		},
		{
			"negative total value",
			`{"target": {"US Equity": 100}, "current": {"US Equity": 100}, "total_value": -5}`,
		},
		{
			"malformed body",
			`{"target": `,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postAnalyze(t, router, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
