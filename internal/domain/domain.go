// Package domain contains the core types shared across the optimizer engine.
// The engine is a pure computation layer: every type here is either immutable
// reference data loaded once per process, or a value computed fresh per request.
package domain

import "github.com/shopspring/decimal"

// AssetClass identifies a canonical asset class. Manager model portfolios use
// inconsistent labels ("Intl Equity" vs "Intl Developed"); those are reconciled
// to this canonical set once at ingestion, never inside scoring logic.
type AssetClass string

const (
	USEquity      AssetClass = "US Equity"
	IntlDeveloped AssetClass = "Intl Developed"
	EmergingMkts  AssetClass = "Emerging Markets"
	USBonds       AssetClass = "US Bonds"
	IntlBonds     AssetClass = "International Bonds"
	Alternatives  AssetClass = "Alternatives"
)

// AllAssetClasses is the canonical ordering used for deterministic iteration.
var AllAssetClasses = []AssetClass{
	USEquity,
	IntlDeveloped,
	EmergingMkts,
	USBonds,
	IntlBonds,
	Alternatives,
}

// equityClasses are the classes counted as equity for the drawdown heuristic.
var equityClasses = map[AssetClass]bool{
	USEquity:      true,
	IntlDeveloped: true,
	EmergingMkts:  true,
}

// IsEquity reports whether the asset class carries equity-like risk.
func (ac AssetClass) IsEquity() bool {
	return equityClasses[ac]
}

// KnownAssetClass reports whether ac belongs to the canonical set.
func KnownAssetClass(ac AssetClass) bool {
	for _, known := range AllAssetClasses {
		if ac == known {
			return true
		}
	}
	return false
}

// FundType distinguishes exchange-traded funds from mutual-fund-like vehicles.
type FundType string

const (
	FundTypeETF        FundType = "ETF"
	FundTypeMutualFund FundType = "Mutual Fund"
)

// Fund is an immutable snapshot of a candidate fund from the catalog.
// Trailing returns are percentage points and nullable: funds with a short
// track record carry nil for the horizons they have not reached.
type Fund struct {
	Ticker       string     `json:"ticker"`
	Name         string     `json:"name"`
	Type         FundType   `json:"type"`
	AssetClass   AssetClass `json:"asset_class"`
	ExpenseRatio float64    `json:"expense_ratio"` // fraction, e.g. 0.0003 = 0.03%
	AUM          float64    `json:"aum"`           // currency units
	Return1Y     *float64   `json:"return_1yr"`
	Return3Y     *float64   `json:"return_3yr"`
	Return5Y     *float64   `json:"return_5yr"`
	Return10Y    *float64   `json:"return_10yr"`
	StdDev3Y     *float64   `json:"std_dev_3yr"` // percentage points
	Active       bool       `json:"active"`      // actively managed (satellite candidate)
}

// TrailingReturns returns the non-nil horizon returns in 1/3/5/10 year order.
func (f Fund) TrailingReturns() []float64 {
	var out []float64
	for _, r := range []*float64{f.Return1Y, f.Return3Y, f.Return5Y, f.Return10Y} {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// FactorScores holds the per-factor sub-scores of a scored fund, each in [0,100].
type FactorScores struct {
	RiskAdjustedReturn float64 `json:"risk_adjusted_return"`
	ExpenseRatio       float64 `json:"expense_ratio"`
	Consistency        float64 `json:"consistency"`
	TrackingPrecision  float64 `json:"tracking_precision"`
	Liquidity          float64 `json:"liquidity"`
}

// ScoredFund is a fund plus its multi-factor score. Scores are pool-relative:
// comparable only within the scoring run that produced them.
type ScoredFund struct {
	Fund       Fund         `json:"fund"`
	Scores     FactorScores `json:"scores"`
	TotalScore float64      `json:"total_score"`
	Rank       int          `json:"rank"`
	Reasoning  []string     `json:"reasoning,omitempty"`
}

// ModelPortfolio is read-only reference data describing a published asset
// manager model. Allocation weights are fractions over the canonical classes
// (label reconciliation already applied).
type ModelPortfolio struct {
	Manager          string     `json:"manager"`
	Model            string     `json:"model"`
	RiskProfile      string     `json:"risk_profile"`
	Allocation       Allocation `json:"allocation"`
	HistoricalReturn float64    `json:"historical_return"` // annualized pp
	HistoricalVol    float64    `json:"historical_vol"`    // annualized pp
	Sharpe           float64    `json:"sharpe"`
	ExpenseRatio     float64    `json:"expense_ratio"` // fraction
	Source           string     `json:"source"`
}

// RecommendationCategory tags a fund recommendation as core or satellite.
type RecommendationCategory string

const (
	CategoryCore      RecommendationCategory = "Core (Passive)"
	CategorySatellite RecommendationCategory = "Satellite (Active)"
)

// FundRecommendation is one slice of a hybrid model lineup.
type FundRecommendation struct {
	AssetClass AssetClass             `json:"asset_class"`
	Ticker     string                 `json:"ticker"`
	Name       string                 `json:"name"`
	Weight     float64                `json:"weight"` // fraction of the whole portfolio
	Expense    float64                `json:"expense"`
	Category   RecommendationCategory `json:"category"`
	Rationale  string                 `json:"rationale"`
}

// TradeAction is the direction of a rebalancing trade.
type TradeAction string

const (
	ActionBuy  TradeAction = "BUY"
	ActionSell TradeAction = "SELL"
	ActionHold TradeAction = "HOLD"
)

// DriftStatus classifies allocation drift severity.
type DriftStatus string

const (
	DriftOK       DriftStatus = "ok"
	DriftWarning  DriftStatus = "warning"
	DriftCritical DriftStatus = "critical"
)

// DriftReport describes one asset class in a rebalance analysis.
// Target/Current/Drift are percentage points; TradeAmount is currency.
type DriftReport struct {
	AssetClass  AssetClass      `json:"asset_class"`
	TargetPct   float64         `json:"target_pct"`
	CurrentPct  float64         `json:"current_pct"`
	DriftPct    float64         `json:"drift_pct"`
	Status      DriftStatus     `json:"status"`
	TradeAmount decimal.Decimal `json:"trade_amount"`
	Action      TradeAction     `json:"action"`
}
