package scoring

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenwealth/optimizer/internal/domain"
)

func f(v float64) *float64 { return &v }

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	s, err := NewScorer(DefaultWeights, 0.05, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func usEquityPool() []domain.Fund {
	return []domain.Fund{
		{Ticker: "CHEAP", Name: "Cheap Index", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0003, AUM: 300e9, Return1Y: f(24.8), Return3Y: f(10.1), Return5Y: f(14.4), Return10Y: f(12.6), StdDev3Y: f(16.8)},
		{Ticker: "MIDDY", Name: "Middling Fund", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0020, AUM: 20e9, Return1Y: f(22.0), Return3Y: f(8.5), Return5Y: f(12.0), Return10Y: f(10.5), StdDev3Y: f(17.5)},
		{Ticker: "SPENDY", Name: "Expensive Active Fund", Type: domain.FundTypeMutualFund, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0095, AUM: 2e9, Return1Y: f(30.0), Return3Y: f(4.0), Return5Y: f(16.0), Return10Y: f(9.0), StdDev3Y: f(22.0), Active: true},
	}
}

func TestNewScorerRejectsBadWeights(t *testing.T) {
	_, err := NewScorer(Weights{RiskAdjustedReturn: 0.5, ExpenseRatio: 0.5, Consistency: 0.5}, 0.05, zerolog.Nop())
	assert.Error(t, err)
}

func TestScoreFundsOrderingAndRanks(t *testing.T) {
	s := newTestScorer(t)

	scored := s.ScoreFunds(domain.USEquity, usEquityPool(), Preferences{})
	require.Len(t, scored, 3)

	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].TotalScore, scored[i].TotalScore)
		assert.Equal(t, i+1, scored[i].Rank)
	}
	assert.Equal(t, 1, scored[0].Rank)

	// The cheap diversified index should win this pool.
	assert.Equal(t, "CHEAP", scored[0].Fund.Ticker)

	for _, sf := range scored {
		for _, score := range []float64{
			sf.Scores.RiskAdjustedReturn, sf.Scores.ExpenseRatio,
			sf.Scores.Consistency, sf.Scores.TrackingPrecision, sf.Scores.Liquidity,
		} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestMaxExpenseRatioIsHardFilter(t *testing.T) {
	s := newTestScorer(t)

	scored := s.ScoreFunds(domain.USEquity, usEquityPool(), Preferences{MaxExpenseRatio: 0.002})
	require.NotEmpty(t, scored)
	for _, sf := range scored {
		assert.LessOrEqual(t, sf.Fund.ExpenseRatio, 0.002)
	}
}

func TestAUMEligibilityFloor(t *testing.T) {
	s := newTestScorer(t)

	pool := []domain.Fund{
		{Ticker: "TINY", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0001, AUM: 50e6, Return1Y: f(30.0), StdDev3Y: f(15.0)},
		{Ticker: "OKAY", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0010, AUM: 500e6, Return1Y: f(20.0), StdDev3Y: f(16.0)},
	}

	scored := s.ScoreFunds(domain.USEquity, pool, Preferences{})
	require.Len(t, scored, 1)
	assert.Equal(t, "OKAY", scored[0].Fund.Ticker, "sub-floor fund must be excluded, not scored low")
}

func TestPreferETFTieBreak(t *testing.T) {
	s := newTestScorer(t)

	// Identical stats, different wrappers.
	twin := func(ticker string, ft domain.FundType) domain.Fund {
		return domain.Fund{Ticker: ticker, Type: ft, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0005, AUM: 10e9, Return1Y: f(24.0), Return3Y: f(10.0), Return5Y: f(14.0), StdDev3Y: f(17.0)}
	}
	pool := []domain.Fund{twin("MFTWIN", domain.FundTypeMutualFund), twin("ETFTWIN", domain.FundTypeETF)}

	scored := s.ScoreFunds(domain.USEquity, pool, Preferences{PreferETF: true})
	require.Len(t, scored, 2)
	assert.Equal(t, "ETFTWIN", scored[0].Fund.Ticker)

	// Without the preference the mutual fund twin keeps its input position.
	scored = s.ScoreFunds(domain.USEquity, pool, Preferences{})
	assert.InDelta(t, scored[0].TotalScore, scored[1].TotalScore, 1e-9)
}

func TestSelect(t *testing.T) {
	s := newTestScorer(t)

	sel := s.Select(domain.USEquity, usEquityPool(), Preferences{})
	require.NotNil(t, sel.Selected)
	assert.False(t, sel.Unfilled)
	assert.Equal(t, 3, sel.FundsAnalyzed)
	assert.Len(t, sel.Alternatives, 2)
	assert.NotEmpty(t, sel.Selected.Reasoning)
}

func TestSelectUnfilledClass(t *testing.T) {
	s := newTestScorer(t)

	sel := s.Select(domain.IntlBonds, nil, Preferences{})
	assert.True(t, sel.Unfilled)
	assert.Nil(t, sel.Selected)
	assert.Equal(t, domain.IntlBonds, sel.AssetClass)
}

func TestSelectCapsAlternativesAtFive(t *testing.T) {
	s := newTestScorer(t)

	var pool []domain.Fund
	for i := 0; i < 10; i++ {
		pool = append(pool, domain.Fund{
			Ticker: string(rune('A' + i)), Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.001 + float64(i)*0.0005, AUM: 1e9 + float64(i)*1e9,
			Return1Y: f(20 + float64(i)), StdDev3Y: f(16.0),
		})
	}

	sel := s.Select(domain.USEquity, pool, Preferences{})
	require.NotNil(t, sel.Selected)
	assert.Len(t, sel.Alternatives, 5)
	assert.Equal(t, 10, sel.FundsAnalyzed)
}

func TestExpenseScore(t *testing.T) {
	// Monotone decreasing, flat near zero, harsh for expensive funds.
	assert.InDelta(t, 100.0, expenseScore(0), 1e-9)
	assert.Greater(t, expenseScore(0.0003), expenseScore(0.0095))
	assert.Greater(t, expenseScore(0.0003)-expenseScore(0.0005),
		0.0, "cheaper still scores higher")
	assert.Less(t, expenseScore(0.0003)-expenseScore(0.0005),
		expenseScore(0.005)-expenseScore(0.0095),
		"basis-point gaps at the cheap end matter less than at the expensive end")
	assert.InDelta(t, 100/math.E, expenseScore(expenseDecay), 1e-9)
}

func TestConsistencyScore(t *testing.T) {
	steady := domain.Fund{Return1Y: f(10), Return3Y: f(10), Return5Y: f(10), Return10Y: f(10)}
	assert.InDelta(t, 100.0, consistencyScore(steady), 1e-9)

	wild := domain.Fund{Return1Y: f(40), Return3Y: f(-20), Return5Y: f(30), Return10Y: f(-10)}
	assert.Less(t, consistencyScore(wild), consistencyScore(steady))

	oneHorizon := domain.Fund{Return1Y: f(12)}
	assert.Equal(t, neutralScore, consistencyScore(oneHorizon))
}

func TestLiquidityTiers(t *testing.T) {
	tests := []struct {
		aum  float64
		want float64
	}{
		{60e9, 100},
		{50e9, 100},
		{15e9, 90},
		{2e9, 75},
		{300e6, 60},
		{100e6, 60},
		{99e6, 40},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, liquidityScore(tc.aum), "aum=%v", tc.aum)
	}
}

func TestRiskAdjustedScoreIsPoolRelative(t *testing.T) {
	s := newTestScorer(t)

	scored := s.ScoreFunds(domain.USEquity, usEquityPool(), Preferences{})
	var min, max float64 = 101, -1
	for _, sf := range scored {
		if sf.Scores.RiskAdjustedReturn < min {
			min = sf.Scores.RiskAdjustedReturn
		}
		if sf.Scores.RiskAdjustedReturn > max {
			max = sf.Scores.RiskAdjustedReturn
		}
	}
	// Best and worst of the pool pin the scale.
	assert.InDelta(t, 0.0, min, 1e-9)
	assert.InDelta(t, 100.0, max, 1e-9)
}
