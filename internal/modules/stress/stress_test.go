package stress

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/cma"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
)

func newTestEngine() *Engine {
	return NewEngine(metrics.NewCalculator(cma.Default()), zerolog.Nop())
}

func TestApplyGFC(t *testing.T) {
	e := newTestEngine()
	gfc, ok := ScenarioByID("gfc_2008")
	require.True(t, ok)

	tests := []struct {
		name  string
		alloc domain.Allocation
		want  float64
	}{
		{"all equity", domain.Allocation{domain.USEquity: 1}, -55.3},
		{"all bonds", domain.Allocation{domain.USBonds: 1}, 6.1},
		{"classic 60/40", domain.Allocation{domain.USEquity: 0.6, domain.USBonds: 0.4}, -30.74},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := e.Apply(tc.alloc, gfc)
			assert.InDelta(t, tc.want, result.PortfolioImpact, 1e-9)
		})
	}
}

func TestApplyContributionsSumToImpact(t *testing.T) {
	e := newTestEngine()
	scenario, ok := ScenarioByID("rate_shock_2022")
	require.True(t, ok)

	alloc := domain.Allocation{
		domain.USEquity:      0.40,
		domain.IntlDeveloped: 0.15,
		domain.EmergingMkts:  0.05,
		domain.USBonds:       0.30,
		domain.IntlBonds:     0.10,
	}
	result := e.Apply(alloc, scenario)

	var sum float64
	for _, c := range result.Contributions {
		sum += c.Impact
		assert.Equal(t, scenario.Shocks[c.AssetClass], c.Shock)
	}
	assert.InDelta(t, result.PortfolioImpact, sum, 1e-9)
	assert.Len(t, result.Contributions, 5, "zero-weight classes are omitted")
}

func TestApplyMissingClassFallsBackToUSEquity(t *testing.T) {
	e := newTestEngine()
	scenario := Scenario{
		ID: "partial", Name: "Partial", Kind: KindHypothetical,
		Shocks: map[domain.AssetClass]float64{domain.USEquity: -20.0},
	}

	result := e.Apply(domain.Allocation{domain.Alternatives: 1}, scenario)
	assert.InDelta(t, -20.0, result.PortfolioImpact, 1e-9)
}

func TestRunAllSortedWorstFirst(t *testing.T) {
	e := newTestEngine()
	alloc := domain.Allocation{domain.USEquity: 0.6, domain.USBonds: 0.4}

	report := e.RunAll(alloc)
	require.Len(t, report.Historical, 7)
	require.Len(t, report.Hypothetical, 4)

	for _, results := range [][]Result{report.Historical, report.Hypothetical} {
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].PortfolioImpact, results[i].PortfolioImpact)
		}
	}

	// Stagflation (-30.8) narrowly beats the GFC (-30.74) for a 60/40.
	assert.Equal(t, "stagflation_70s", report.Historical[0].ScenarioID)
	assert.Equal(t, "gfc_2008", report.Historical[1].ScenarioID)
}

func TestScenarioCatalogShape(t *testing.T) {
	for _, s := range Catalog {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
		require.NotEmpty(t, s.Shocks, s.ID)
		_, hasUS := s.Shocks[domain.USEquity]
		assert.True(t, hasUS, "every scenario needs a US Equity shock for fallback (%s)", s.ID)
		if s.Kind == KindHistorical {
			assert.NotEmpty(t, s.Period, s.ID)
			assert.NotEmpty(t, s.Recovery, s.ID)
			assert.NotEmpty(t, s.Lesson, s.ID)
		}
	}
}
