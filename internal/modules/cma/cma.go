// Package cma holds the capital market assumptions used by the optimizer
// engine: forward-looking expected return and volatility per asset class,
// plus the cross-asset correlation matrix. The tables are versioned reference
// data sourced from third-party research, loaded once and treated as
// read-only for the lifetime of the process.
package cma

import (
	"github.com/mavenwealth/optimizer/internal/domain"
)

// Assumption is the forward-looking estimate for one asset class.
// Values are fractions (0.07 = 7% annualized).
type Assumption struct {
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
}

// Set is one version of the capital market assumptions.
type Set struct {
	Version      string                           `json:"version"`
	RiskFreeRate float64                          `json:"risk_free_rate"`
	Assumptions  map[domain.AssetClass]Assumption `json:"assumptions"`
	Correlations *CorrelationMatrix               `json:"correlations"`
}

// Assumption returns the assumption for ac, reporting ok=false when the
// class has no CMA coverage. Callers treat a missing assumption for a class
// with nonzero weight as a hard reference-data error.
func (s *Set) Assumption(ac domain.AssetClass) (Assumption, bool) {
	a, ok := s.Assumptions[ac]
	return a, ok
}

// AssetClasses returns the covered classes in canonical order.
func (s *Set) AssetClasses() []domain.AssetClass {
	out := make([]domain.AssetClass, 0, len(s.Assumptions))
	for _, ac := range domain.AllAssetClasses {
		if _, ok := s.Assumptions[ac]; ok {
			out = append(out, ac)
		}
	}
	return out
}

// CorrelationMatrix is a symmetric correlation lookup over asset classes.
// It is never mutated at runtime.
type CorrelationMatrix struct {
	pairs map[domain.AssetClass]map[domain.AssetClass]float64
}

// NewCorrelationMatrix builds a matrix from nested pair values. The input is
// copied; symmetry is enforced by mirroring whichever direction is present.
func NewCorrelationMatrix(pairs map[domain.AssetClass]map[domain.AssetClass]float64) *CorrelationMatrix {
	m := &CorrelationMatrix{pairs: make(map[domain.AssetClass]map[domain.AssetClass]float64, len(pairs))}
	for a, row := range pairs {
		for b, v := range row {
			m.set(a, b, v)
			m.set(b, a, v)
		}
	}
	for a := range m.pairs {
		m.set(a, a, 1.0)
	}
	return m
}

func (m *CorrelationMatrix) set(a, b domain.AssetClass, v float64) {
	row, ok := m.pairs[a]
	if !ok {
		row = make(map[domain.AssetClass]float64)
		m.pairs[a] = row
	}
	row[b] = v
}

// Correlation returns the pairwise correlation. The diagonal is always 1.0.
// A missing pair defaults to 0 (uncorrelated): new asset classes may lack
// full correlation coverage and that must not fail variance aggregation.
func (m *CorrelationMatrix) Correlation(a, b domain.AssetClass) float64 {
	if a == b {
		return 1.0
	}
	if row, ok := m.pairs[a]; ok {
		if v, ok := row[b]; ok {
			return v
		}
	}
	return 0.0
}
