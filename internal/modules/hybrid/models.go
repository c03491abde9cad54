// Package hybrid builds consensus "all-star" model portfolios by blending
// published asset-manager models for a risk profile, weighted by their
// historical Sharpe ratios.
package hybrid

import "github.com/mavenwealth/optimizer/internal/domain"

// RiskProfile names a target investor risk band.
type RiskProfile string

const (
	ProfileConservative RiskProfile = "conservative"
	ProfileModerate     RiskProfile = "moderate"
	ProfileGrowth       RiskProfile = "growth"
	ProfileAggressive   RiskProfile = "aggressive"
)

// AllProfiles lists the supported risk profiles in ascending equity order.
var AllProfiles = []RiskProfile{ProfileConservative, ProfileModerate, ProfileGrowth, ProfileAggressive}

// labelAliases reconciles the inconsistent asset-class labels that published
// manager models use into the canonical classes. Applied exactly once, at
// ingestion; nothing downstream branches on manager identity or raw labels.
// Cash-like sleeves fold into US Bonds; alternatives sleeves carry
// equity-like risk and fold into US Equity.
var labelAliases = map[string]domain.AssetClass{
	"US Equity":        domain.USEquity,
	"Intl Equity":      domain.IntlDeveloped,
	"Intl Developed":   domain.IntlDeveloped,
	"International":    domain.IntlDeveloped,
	"Emerging Markets": domain.EmergingMkts,
	"EM":               domain.EmergingMkts,
	"US Bonds":         domain.USBonds,
	"Intl Bonds":       domain.USBonds,
	"Short-Term":       domain.USBonds,
	"Cash":             domain.USBonds,
	"Alternatives":     domain.USEquity,
}

// reconcile maps a raw manager allocation (percentage points, arbitrary
// labels) onto the canonical classes as fractions. Unknown labels are
// dropped; the result is normalized so each model contributes a proper
// distribution regardless of how sloppily its source sums.
func reconcile(raw map[string]float64) domain.Allocation {
	alloc := domain.Allocation{}
	for label, pct := range raw {
		class, ok := labelAliases[label]
		if !ok {
			continue
		}
		alloc[class] += pct / 100
	}
	return alloc.Normalized()
}

// rawModel is a published manager model as sourced, before reconciliation.
type rawModel struct {
	manager          string
	model            string
	allocation       map[string]float64 // label -> percentage points
	historicalReturn float64            // 10yr annualized, pp
	historicalVol    float64            // pp
	sharpe           float64
	expenseRatio     float64 // fraction
	source           string
}

// referenceModels is the published model snapshot, keyed by risk profile.
// Allocation values are percentage points as the managers publish them.
var referenceModels = map[RiskProfile][]rawModel{
	ProfileConservative: {
		{manager: "Vanguard", model: "LifeStrategy Conservative Growth",
			allocation:       map[string]float64{"US Equity": 24, "Intl Equity": 16, "US Bonds": 42, "Intl Bonds": 18},
			historicalReturn: 5.2, historicalVol: 6.8, sharpe: 0.54, expenseRatio: 0.0012, source: "2024"},
		{manager: "BlackRock", model: "Target Allocation Conservative",
			allocation:       map[string]float64{"US Equity": 20, "Intl Equity": 10, "US Bonds": 50, "Intl Bonds": 10, "Alternatives": 10},
			historicalReturn: 4.8, historicalVol: 5.9, sharpe: 0.56, expenseRatio: 0.0025, source: "2024"},
		{manager: "Fidelity", model: "Asset Manager 20%",
			allocation:       map[string]float64{"US Equity": 14, "Intl Equity": 6, "US Bonds": 55, "Short-Term": 25},
			historicalReturn: 4.1, historicalVol: 4.2, sharpe: 0.62, expenseRatio: 0.0053, source: "2024"},
		{manager: "Schwab", model: "Conservative",
			allocation:       map[string]float64{"US Equity": 18, "Intl Equity": 12, "US Bonds": 45, "Intl Bonds": 15, "Cash": 10},
			historicalReturn: 4.5, historicalVol: 5.5, sharpe: 0.55, expenseRatio: 0.0008, source: "2024"},
	},
	ProfileModerate: {
		{manager: "Vanguard", model: "LifeStrategy Moderate Growth",
			allocation:       map[string]float64{"US Equity": 36, "Intl Equity": 24, "US Bonds": 28, "Intl Bonds": 12},
			historicalReturn: 6.8, historicalVol: 10.2, sharpe: 0.51, expenseRatio: 0.0013, source: "2024"},
		{manager: "BlackRock", model: "Target Allocation Moderate",
			allocation:       map[string]float64{"US Equity": 32, "Intl Equity": 18, "US Bonds": 30, "Intl Bonds": 10, "Alternatives": 10},
			historicalReturn: 6.5, historicalVol: 9.8, sharpe: 0.50, expenseRatio: 0.0028, source: "2024"},
		{manager: "JPMorgan", model: "SmartRetirement Blend Moderate",
			allocation:       map[string]float64{"US Equity": 35, "Intl Equity": 15, "US Bonds": 35, "Intl Bonds": 10, "Alternatives": 5},
			historicalReturn: 6.4, historicalVol: 9.5, sharpe: 0.51, expenseRatio: 0.0045, source: "2024"},
		{manager: "Capital Group", model: "American Balanced",
			allocation:       map[string]float64{"US Equity": 40, "Intl Equity": 10, "US Bonds": 45, "Cash": 5},
			historicalReturn: 7.2, historicalVol: 10.5, sharpe: 0.53, expenseRatio: 0.0058, source: "2024"},
		{manager: "Fidelity", model: "Balanced",
			allocation:       map[string]float64{"US Equity": 42, "Intl Equity": 8, "US Bonds": 40, "Short-Term": 10},
			historicalReturn: 7.0, historicalVol: 10.8, sharpe: 0.50, expenseRatio: 0.0049, source: "2024"},
		{manager: "Schwab", model: "Balanced",
			allocation:       map[string]float64{"US Equity": 35, "Intl Equity": 15, "US Bonds": 30, "Intl Bonds": 15, "Cash": 5},
			historicalReturn: 6.6, historicalVol: 9.6, sharpe: 0.52, expenseRatio: 0.0008, source: "2024"},
	},
	ProfileGrowth: {
		{manager: "Vanguard", model: "LifeStrategy Growth",
			allocation:       map[string]float64{"US Equity": 48, "Intl Equity": 32, "US Bonds": 14, "Intl Bonds": 6},
			historicalReturn: 8.2, historicalVol: 13.5, sharpe: 0.48, expenseRatio: 0.0014, source: "2024"},
		{manager: "BlackRock", model: "Target Allocation Growth",
			allocation:       map[string]float64{"US Equity": 45, "Intl Equity": 25, "US Bonds": 15, "Intl Bonds": 5, "Alternatives": 10},
			historicalReturn: 8.0, historicalVol: 13.2, sharpe: 0.47, expenseRatio: 0.0030, source: "2024"},
		{manager: "JPMorgan", model: "SmartRetirement Blend Growth",
			allocation:       map[string]float64{"US Equity": 50, "Intl Equity": 20, "US Bonds": 18, "Intl Bonds": 7, "Alternatives": 5},
			historicalReturn: 8.3, historicalVol: 13.8, sharpe: 0.48, expenseRatio: 0.0048, source: "2024"},
		{manager: "Capital Group", model: "Growth Portfolio",
			allocation:       map[string]float64{"US Equity": 55, "Intl Equity": 25, "US Bonds": 15, "Cash": 5},
			historicalReturn: 8.8, historicalVol: 14.5, sharpe: 0.49, expenseRatio: 0.0062, source: "2024"},
		{manager: "Fidelity", model: "Asset Manager 70%",
			allocation:       map[string]float64{"US Equity": 49, "Intl Equity": 21, "US Bonds": 25, "Short-Term": 5},
			historicalReturn: 8.1, historicalVol: 13.4, sharpe: 0.47, expenseRatio: 0.0056, source: "2024"},
		{manager: "Schwab", model: "Growth",
			allocation:       map[string]float64{"US Equity": 47, "Intl Equity": 23, "US Bonds": 18, "Intl Bonds": 9, "Cash": 3},
			historicalReturn: 7.9, historicalVol: 13.0, sharpe: 0.47, expenseRatio: 0.0008, source: "2024"},
	},
	ProfileAggressive: {
		{manager: "Vanguard", model: "LifeStrategy Equity Growth",
			allocation:       map[string]float64{"US Equity": 60, "Intl Equity": 40},
			historicalReturn: 9.1, historicalVol: 16.2, sharpe: 0.45, expenseRatio: 0.0014, source: "2024"},
		{manager: "BlackRock", model: "Target Allocation Aggressive",
			allocation:       map[string]float64{"US Equity": 55, "Intl Equity": 30, "Emerging Markets": 5, "Alternatives": 10},
			historicalReturn: 9.0, historicalVol: 15.8, sharpe: 0.46, expenseRatio: 0.0032, source: "2024"},
		{manager: "JPMorgan", model: "SmartRetirement Blend Aggressive",
			allocation:       map[string]float64{"US Equity": 58, "Intl Equity": 27, "Emerging Markets": 5, "US Bonds": 5, "Alternatives": 5},
			historicalReturn: 9.3, historicalVol: 16.0, sharpe: 0.47, expenseRatio: 0.0050, source: "2024"},
		{manager: "Capital Group", model: "Aggressive Growth",
			allocation:       map[string]float64{"US Equity": 60, "Intl Equity": 30, "Emerging Markets": 10},
			historicalReturn: 9.8, historicalVol: 17.2, sharpe: 0.46, expenseRatio: 0.0065, source: "2024"},
		{manager: "Schwab", model: "Aggressive",
			allocation:       map[string]float64{"US Equity": 55, "Intl Equity": 30, "Emerging Markets": 10, "US Bonds": 5},
			historicalReturn: 9.0, historicalVol: 15.5, sharpe: 0.47, expenseRatio: 0.0008, source: "2024"},
	},
}

// ReferenceModels returns the published models for a profile with label
// reconciliation already applied. Returns nil for an unknown profile.
func ReferenceModels(profile RiskProfile) []domain.ModelPortfolio {
	raws, ok := referenceModels[profile]
	if !ok {
		return nil
	}
	models := make([]domain.ModelPortfolio, len(raws))
	for i, r := range raws {
		models[i] = domain.ModelPortfolio{
			Manager:          r.manager,
			Model:            r.model,
			RiskProfile:      string(profile),
			Allocation:       reconcile(r.allocation),
			HistoricalReturn: r.historicalReturn,
			HistoricalVol:    r.historicalVol,
			Sharpe:           r.sharpe,
			ExpenseRatio:     r.expenseRatio,
			Source:           r.source,
		}
	}
	return models
}
