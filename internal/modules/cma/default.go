package cma

import "github.com/mavenwealth/optimizer/internal/domain"

// DefaultVersion identifies the bundled assumption set. Swapping the tables
// for a recalibrated vintage changes this string, never the algorithm code.
const DefaultVersion = "2025-consensus"

// defaultRiskFreeRate is the current T-bill / money market proxy.
const defaultRiskFreeRate = 0.05

// Default returns the bundled 2025 consensus assumption set.
// Expected return and volatility are annualized fractions.
func Default() *Set {
	return &Set{
		Version:      DefaultVersion,
		RiskFreeRate: defaultRiskFreeRate,
		Assumptions: map[domain.AssetClass]Assumption{
			domain.USEquity:      {ExpectedReturn: 0.070, Volatility: 0.165},
			domain.IntlDeveloped: {ExpectedReturn: 0.075, Volatility: 0.180},
			domain.EmergingMkts:  {ExpectedReturn: 0.085, Volatility: 0.240},
			domain.USBonds:       {ExpectedReturn: 0.045, Volatility: 0.055},
			domain.IntlBonds:     {ExpectedReturn: 0.040, Volatility: 0.070},
			domain.Alternatives:  {ExpectedReturn: 0.060, Volatility: 0.140},
		},
		Correlations: NewCorrelationMatrix(map[domain.AssetClass]map[domain.AssetClass]float64{
			domain.USEquity: {
				domain.IntlDeveloped: 0.82,
				domain.EmergingMkts:  0.72,
				domain.USBonds:       0.03,
				domain.IntlBonds:     0.15,
				domain.Alternatives:  0.55,
			},
			domain.IntlDeveloped: {
				domain.EmergingMkts: 0.80,
				domain.USBonds:      0.08,
				domain.IntlBonds:    0.35,
				domain.Alternatives: 0.50,
			},
			domain.EmergingMkts: {
				domain.USBonds:      0.10,
				domain.IntlBonds:    0.30,
				domain.Alternatives: 0.45,
			},
			domain.USBonds: {
				domain.IntlBonds:    0.65,
				domain.Alternatives: 0.15,
			},
			domain.IntlBonds: {
				domain.Alternatives: 0.20,
			},
		}),
	}
}
