// Package metrics computes portfolio-level risk and return figures from an
// allocation and a capital market assumption set.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/cma"
)

// Drawdown heuristic constants. The estimate is a documented rule of thumb
// derived from the historical relationship between volatility and realized
// drawdowns, not a simulated drawdown.
const (
	drawdownBaseMultiplier   = 2.0
	drawdownEquityMultiplier = 0.5
)

// Metrics holds the computed portfolio figures. All values are fractions.
// Sharpe is 0 with SharpeUndefined=true when volatility is zero; callers
// must treat it as a sentinel, not a real ratio.
type Metrics struct {
	ExpectedReturn       float64 `json:"expected_return"`
	Volatility           float64 `json:"volatility"`
	Sharpe               float64 `json:"sharpe"`
	SharpeUndefined      bool    `json:"sharpe_undefined,omitempty"`
	MaxDrawdownEstimate  float64 `json:"max_drawdown_estimate"`
	WeightedExpenseRatio float64 `json:"weighted_expense_ratio,omitempty"`
}

// Calculator computes portfolio metrics against one CMA set. It is pure and
// safe for concurrent use; the CMA set is read-only reference data.
type Calculator struct {
	cma *cma.Set
}

// NewCalculator creates a calculator over the given assumption set.
func NewCalculator(set *cma.Set) *Calculator {
	return &Calculator{cma: set}
}

// RiskFreeRate exposes the assumption set's risk-free rate.
func (c *Calculator) RiskFreeRate() float64 {
	return c.cma.RiskFreeRate
}

// Compute calculates expected return, volatility, Sharpe ratio and the
// drawdown estimate for a validated allocation. The caller is responsible
// for rejecting allocations that do not sum to 1; this function assumes
// normalized input. A class with nonzero weight but no CMA coverage is a
// hard reference-data error.
func (c *Calculator) Compute(alloc domain.Allocation) (Metrics, error) {
	classes := make([]domain.AssetClass, 0, len(alloc))
	for _, ac := range domain.AllAssetClasses {
		if w, ok := alloc[ac]; ok && w != 0 {
			classes = append(classes, ac)
		}
	}

	var expectedReturn float64
	for _, ac := range classes {
		assumption, ok := c.cma.Assumption(ac)
		if !ok {
			return Metrics{}, &domain.ReferenceDataError{AssetClass: ac, Missing: "capital market assumption"}
		}
		expectedReturn += alloc[ac] * assumption.ExpectedReturn
	}

	volatility := c.volatility(alloc, classes)

	m := Metrics{
		ExpectedReturn: expectedReturn,
		Volatility:     volatility,
	}

	if volatility > 0 {
		m.Sharpe = (expectedReturn - c.cma.RiskFreeRate) / volatility
	} else {
		// Division undefined: report the sentinel instead of failing.
		m.Sharpe = 0
		m.SharpeUndefined = true
	}

	m.MaxDrawdownEstimate = -volatility * (drawdownBaseMultiplier + alloc.EquityFraction()*drawdownEquityMultiplier)

	return m, nil
}

// volatility evaluates sqrt(w' Σ w) where Σ_ij = vol_i * vol_j * corr(i,j).
// Correlation lookups are symmetric and missing pairs default to 0.
func (c *Calculator) volatility(alloc domain.Allocation, classes []domain.AssetClass) float64 {
	n := len(classes)
	if n == 0 {
		return 0
	}

	weights := mat.NewVecDense(n, nil)
	sigma := mat.NewSymDense(n, nil)
	for i, a := range classes {
		weights.SetVec(i, alloc[a])
		volA := c.cma.Assumptions[a].Volatility
		for j := i; j < n; j++ {
			b := classes[j]
			volB := c.cma.Assumptions[b].Volatility
			sigma.SetSym(i, j, volA*volB*c.cma.Correlations.Correlation(a, b))
		}
	}

	variance := mat.Inner(weights, sigma, weights)
	if variance < 0 {
		// Numerical noise from near-singular inputs; clamp.
		variance = 0
	}
	return math.Sqrt(variance)
}

// WeightedExpenseRatio returns the portfolio-level expense ratio of a fund
// lineup, weights as fractions of 1.
func WeightedExpenseRatio(funds []domain.Fund, weights []float64) float64 {
	var total float64
	for i, f := range funds {
		if i < len(weights) {
			total += f.ExpenseRatio * weights[i]
		}
	}
	return total
}
