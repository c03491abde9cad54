package cma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavenwealth/optimizer/internal/domain"
)

func TestDefaultSetInvariants(t *testing.T) {
	set := Default()

	require.NotEmpty(t, set.Assumptions)
	assert.Equal(t, DefaultVersion, set.Version)
	assert.Greater(t, set.RiskFreeRate, 0.0)

	for ac, a := range set.Assumptions {
		assert.GreaterOrEqual(t, a.Volatility, 0.0, "volatility must be non-negative for %s", ac)
	}
}

func TestCorrelationMatrixSymmetry(t *testing.T) {
	set := Default()
	classes := set.AssetClasses()

	for _, a := range classes {
		assert.Equal(t, 1.0, set.Correlations.Correlation(a, a), "diagonal must be 1.0")
		for _, b := range classes {
			ab := set.Correlations.Correlation(a, b)
			ba := set.Correlations.Correlation(b, a)
			assert.Equal(t, ab, ba, "correlation(%s,%s) must be symmetric", a, b)
			assert.GreaterOrEqual(t, ab, -1.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}

func TestCorrelationMissingPairDefaultsToZero(t *testing.T) {
	m := NewCorrelationMatrix(map[domain.AssetClass]map[domain.AssetClass]float64{
		domain.USEquity: {domain.USBonds: 0.03},
	})

	assert.Equal(t, 0.03, m.Correlation(domain.USEquity, domain.USBonds))
	assert.Equal(t, 0.03, m.Correlation(domain.USBonds, domain.USEquity))
	// Uncovered pair: uncorrelated, not an error.
	assert.Equal(t, 0.0, m.Correlation(domain.USEquity, domain.EmergingMkts))
	assert.Equal(t, 1.0, m.Correlation(domain.EmergingMkts, domain.EmergingMkts))
}

func TestAssetClassesCanonicalOrder(t *testing.T) {
	set := Default()
	classes := set.AssetClasses()
	require.Len(t, classes, len(set.Assumptions))
	assert.Equal(t, domain.USEquity, classes[0])
}
