package comparison

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/catalog"
)

// memSource serves the static seed set without a database.
type memSource struct {
	byTicker map[string]domain.Fund
}

func newMemSource() *memSource {
	src := &memSource{byTicker: make(map[string]domain.Fund)}
	for _, f := range catalog.SeedFunds() {
		src.byTicker[f.Ticker] = f
	}
	return src
}

func (s *memSource) Get(ticker string) (domain.Fund, error) {
	f, ok := s.byTicker[ticker]
	if !ok {
		return domain.Fund{}, sql.ErrNoRows
	}
	return f, nil
}

func (s *memSource) Benchmarks() (map[domain.AssetClass]domain.Fund, error) {
	out := make(map[domain.AssetClass]domain.Fund)
	for class, ticker := range catalog.BenchmarkTickers {
		out[class] = s.byTicker[ticker]
	}
	return out, nil
}

func newTestComparer() *Comparer {
	return NewComparer(newMemSource(), zerolog.Nop())
}

func TestCompareSixtyForty(t *testing.T) {
	c := newTestComparer()

	results, err := c.Compare([]Portfolio{{
		Name: "60/40",
		Holdings: []Holding{
			{Ticker: "VOO", Weight: 0.60},
			{Ticker: "AGG", Weight: 0.40},
		},
	}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "60/40", r.Name)
	assert.InDelta(t, 1.0, r.Metrics.TotalWeight, 1e-9)
	assert.InDelta(t, 0.0003, r.Metrics.ExpenseRatio, 1e-9)
	assert.InDelta(t, 0.60, r.Metrics.Breakdown[domain.USEquity], 1e-9)
	assert.InDelta(t, 0.40, r.Metrics.Breakdown[domain.USBonds], 1e-9)

	// 0.6*24.9 + 0.4*2.6 against the ITOT/AGG blend 0.6*24.1 + 0.4*2.6.
	assert.InDelta(t, 15.98, r.Metrics.Returns.OneYear, 1e-9)
	assert.InDelta(t, 0.60, r.BenchmarkWeights["ITOT"], 1e-9)
	assert.InDelta(t, 0.40, r.BenchmarkWeights["AGG"], 1e-9)
	assert.InDelta(t, 15.50, r.BenchmarkReturns.OneYear, 1e-9)
	assert.InDelta(t, 0.48, r.Alpha.OneYear, 1e-9)
}

func TestCompareUnmatchedRenormalizesBenchmark(t *testing.T) {
	c := newTestComparer()

	results, err := c.Compare([]Portfolio{{
		Name: "half unknown",
		Holdings: []Holding{
			{Ticker: "VOO", Weight: 0.50},
			{Ticker: "ZZZZ", Weight: 0.50},
		},
	}})
	require.NoError(t, err)

	r := results[0]
	assert.InDelta(t, 0.50, r.Metrics.Unmatched, 1e-9)
	assert.InDelta(t, 12.45, r.Metrics.Returns.OneYear, 1e-9)

	// The mapped half rescales to a pure US equity benchmark.
	require.Len(t, r.BenchmarkWeights, 1)
	assert.InDelta(t, 1.0, r.BenchmarkWeights["ITOT"], 1e-9)
	assert.InDelta(t, 24.1, r.BenchmarkReturns.OneYear, 1e-9)
}

func TestCompareNilHorizonContributesNothing(t *testing.T) {
	c := newTestComparer()

	src := newMemSource()
	ftihx, err := src.Get("FTIHX")
	require.NoError(t, err)
	require.Nil(t, ftihx.Return10Y, "FTIHX is the short-track-record fixture")

	results, err := c.Compare([]Portfolio{{
		Name:     "young fund",
		Holdings: []Holding{{Ticker: "FTIHX", Weight: 1.0}},
	}})
	require.NoError(t, err)

	r := results[0]
	assert.Zero(t, r.Metrics.Returns.TenYr)
	assert.NotZero(t, r.Metrics.Returns.OneYear)
	// The benchmark still reports a 10yr figure, so the alpha goes negative.
	assert.Negative(t, r.Alpha.TenYr)
}

func TestCompareMultiplePortfolios(t *testing.T) {
	c := newTestComparer()

	results, err := c.Compare([]Portfolio{
		{Name: "a", Holdings: []Holding{{Ticker: "VOO", Weight: 1}}},
		{Name: "b", Holdings: []Holding{{Ticker: "AGG", Weight: 1}}},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, "b", results[1].Name)
	assert.Greater(t, results[0].Metrics.Returns.OneYear, results[1].Metrics.Returns.OneYear)
}

func TestCompareValidation(t *testing.T) {
	c := newTestComparer()
	var verr *domain.InputValidationError

	_, err := c.Compare(nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "portfolios", verr.Field)

	_, err = c.Compare([]Portfolio{{Name: "empty"}})
	require.ErrorAs(t, err, &verr)

	_, err = c.Compare([]Portfolio{{
		Name:     "negative",
		Holdings: []Holding{{Ticker: "VOO", Weight: -0.2}},
	}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "VOO", verr.Field)
}
