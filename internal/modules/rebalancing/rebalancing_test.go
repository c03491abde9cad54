package rebalancing

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenwealth/optimizer/internal/domain"
)

func newTestMonitor() *Monitor {
	return NewMonitor(DefaultThresholds(), zerolog.Nop())
}

func value(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestAnalyzeDriftClassification(t *testing.T) {
	m := newTestMonitor()

	target := domain.Allocation{domain.USEquity: 0.55, domain.USBonds: 0.45}

	t.Run("seven points over is critical", func(t *testing.T) {
		current := domain.Allocation{domain.USEquity: 0.62, domain.USBonds: 0.38}
		analysis, err := m.AnalyzeDrift(target, current, value(100000))
		require.NoError(t, err)

		us := findReport(t, analysis, domain.USEquity)
		assert.Equal(t, domain.DriftCritical, us.Status)
		assert.InDelta(t, 7.0, us.DriftPct, 1e-9)
		assert.Equal(t, domain.DriftCritical, analysis.Status)
	})

	t.Run("two points over is ok", func(t *testing.T) {
		current := domain.Allocation{domain.USEquity: 0.57, domain.USBonds: 0.43}
		analysis, err := m.AnalyzeDrift(target, current, value(100000))
		require.NoError(t, err)

		us := findReport(t, analysis, domain.USEquity)
		assert.Equal(t, domain.DriftOK, us.Status, "2pp drift is under the 3pp warning band")
	})

	t.Run("four points over is warning", func(t *testing.T) {
		current := domain.Allocation{domain.USEquity: 0.59, domain.USBonds: 0.41}
		analysis, err := m.AnalyzeDrift(target, current, value(100000))
		require.NoError(t, err)

		us := findReport(t, analysis, domain.USEquity)
		assert.Equal(t, domain.DriftWarning, us.Status)
		assert.Equal(t, domain.DriftWarning, analysis.Status)
	})
}

func TestAnalyzeDriftTradeDirections(t *testing.T) {
	m := newTestMonitor()

	target := domain.Allocation{domain.USEquity: 0.55, domain.USBonds: 0.45}
	current := domain.Allocation{domain.USEquity: 0.62, domain.USBonds: 0.38}

	analysis, err := m.AnalyzeDrift(target, current, value(100000))
	require.NoError(t, err)

	us := findReport(t, analysis, domain.USEquity)
	bonds := findReport(t, analysis, domain.USBonds)

	// Overweight equity sells down to target; underweight bonds buy up.
	assert.Equal(t, domain.ActionSell, us.Action)
	assert.True(t, us.TradeAmount.Equal(decimal.NewFromInt(-7000)), us.TradeAmount.String())
	assert.Equal(t, domain.ActionBuy, bonds.Action)
	assert.True(t, bonds.TradeAmount.Equal(decimal.NewFromInt(7000)), bonds.TradeAmount.String())
	assert.Equal(t, 2, analysis.TradesNeeded)
}

func TestAnalyzeDriftMaterialityFloor(t *testing.T) {
	m := newTestMonitor()

	target := domain.Allocation{domain.USEquity: 0.60, domain.USBonds: 0.40}
	current := domain.Allocation{domain.USEquity: 0.6004, domain.USBonds: 0.3996}

	// 0.04pp drift on a $100k portfolio is a $40 trade, under the floor.
	analysis, err := m.AnalyzeDrift(target, current, value(100000))
	require.NoError(t, err)

	for _, r := range analysis.Reports {
		assert.Equal(t, domain.ActionHold, r.Action)
	}
	assert.Equal(t, 0, analysis.TradesNeeded)
	assert.Equal(t, domain.DriftOK, analysis.Status)
	require.NotEmpty(t, analysis.Priorities)
	assert.Contains(t, analysis.Priorities[0], "within tolerance")
}

func TestAnalyzeDriftOrderedByTradeSize(t *testing.T) {
	m := newTestMonitor()

	target := domain.Allocation{
		domain.USEquity:      0.40,
		domain.IntlDeveloped: 0.20,
		domain.EmergingMkts:  0.10,
		domain.USBonds:       0.30,
	}
	current := domain.Allocation{
		domain.USEquity:      0.48,
		domain.IntlDeveloped: 0.17,
		domain.EmergingMkts:  0.09,
		domain.USBonds:       0.26,
	}

	analysis, err := m.AnalyzeDrift(target, current, value(250000))
	require.NoError(t, err)
	require.Len(t, analysis.Reports, 4)

	for i := 1; i < len(analysis.Reports); i++ {
		prev := analysis.Reports[i-1].TradeAmount.Abs()
		cur := analysis.Reports[i].TradeAmount.Abs()
		assert.True(t, prev.GreaterThanOrEqual(cur), "reports must be ordered largest trade first")
	}
	assert.Equal(t, domain.USEquity, analysis.Reports[0].AssetClass)
}

func TestAnalyzeDriftTaxPriorities(t *testing.T) {
	m := newTestMonitor()

	target := domain.Allocation{domain.USEquity: 0.50, domain.USBonds: 0.50}
	current := domain.Allocation{domain.USEquity: 0.60, domain.USBonds: 0.40}

	analysis, err := m.AnalyzeDrift(target, current, value(500000))
	require.NoError(t, err)

	joined := ""
	for _, p := range analysis.Priorities {
		joined += p + "\n"
	}
	assert.Contains(t, joined, "new contributions")
	assert.Contains(t, joined, "tax-advantaged")
	assert.Contains(t, joined, "highest-cost-basis")
	assert.Contains(t, joined, "tax-loss harvesting")
}

func TestAnalyzeDriftValidation(t *testing.T) {
	m := newTestMonitor()

	valid := domain.Allocation{domain.USEquity: 1}
	var verr *domain.InputValidationError

	_, err := m.AnalyzeDrift(domain.Allocation{domain.USEquity: 0.5}, valid, value(1000))
	require.ErrorAs(t, err, &verr)

	_, err = m.AnalyzeDrift(valid, domain.Allocation{"Crypto": 1}, value(1000))
	require.ErrorAs(t, err, &verr)

	_, err = m.AnalyzeDrift(valid, valid, value(-1))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "total_value", verr.Field)
}

func findReport(t *testing.T, analysis *Analysis, class domain.AssetClass) domain.DriftReport {
	t.Helper()
	for _, r := range analysis.Reports {
		if r.AssetClass == class {
			return r
		}
	}
	t.Fatalf("no report for %s", class)
	return domain.DriftReport{}
}
