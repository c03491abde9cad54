// Package stress applies historical and hypothetical market scenarios to an
// allocation and runs Monte Carlo projections of long-horizon outcomes.
package stress

import "github.com/mavenwealth/optimizer/internal/domain"

// ScenarioKind separates realized-history scenarios from synthetic ones.
// Both kinds share one shape and one code path.
type ScenarioKind string

const (
	KindHistorical   ScenarioKind = "historical"
	KindHypothetical ScenarioKind = "hypothetical"
)

// Scenario is a static market shock. Shocks are percentage-point returns per
// asset class over the scenario window. Description, Recovery, and Lesson
// are narrative metadata passed through to clients unmodified.
type Scenario struct {
	ID          string                        `json:"id"`
	Name        string                        `json:"name"`
	Kind        ScenarioKind                  `json:"kind"`
	Period      string                        `json:"period,omitempty"`
	Description string                        `json:"description"`
	Shocks      map[domain.AssetClass]float64 `json:"shocks"`
	Recovery    string                        `json:"recovery,omitempty"`
	Lesson      string                        `json:"lesson,omitempty"`
}

// Catalog is the scenario set, version "2025.1". Values are calibrated to
// broad index returns over each window.
var Catalog = []Scenario{
	{
		ID: "dotcom_crash", Name: "2000-2002 Dot-Com Crash", Kind: KindHistorical, Period: "2000-2002",
		Description: "Tech bubble burst, 3-year bear market",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -45.0, domain.IntlDeveloped: -48.0, domain.EmergingMkts: -35.0,
			domain.USBonds: 32.0, domain.IntlBonds: 18.0, domain.Alternatives: 12.0,
		},
		Recovery: "7 years",
		Lesson:   "Bonds soared while stocks crashed. Valuation matters, and growth stocks can stay down for a long time.",
	},
	{
		ID: "gfc_2008", Name: "2008 Global Financial Crisis", Kind: KindHistorical, Period: "2008-2009",
		Description: "Lehman collapse, global credit freeze",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -55.3, domain.IntlDeveloped: -56.0, domain.EmergingMkts: -61.0,
			domain.USBonds: 6.1, domain.IntlBonds: 4.0, domain.Alternatives: -30.0,
		},
		Recovery: "4 years",
		Lesson:   "Bonds provided crucial protection. Diversification across asset classes mattered more than within equities.",
	},
	{
		ID: "covid_crash", Name: "2020 COVID Crash", Kind: KindHistorical, Period: "Feb-Mar 2020",
		Description: "Fastest bear market in history (34 days)",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -34.0, domain.IntlDeveloped: -33.0, domain.EmergingMkts: -32.0,
			domain.USBonds: 3.5, domain.IntlBonds: 1.5, domain.Alternatives: -12.0,
		},
		Recovery: "5 months",
		Lesson:   "Sharp crashes recover faster than slow bleeds. Those who sold missed the fastest recovery ever.",
	},
	{
		ID: "rate_shock_2022", Name: "2022 Rate Shock", Kind: KindHistorical, Period: "2022",
		Description: "Fed aggressive rate hikes, stocks and bonds down together",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -19.0, domain.IntlDeveloped: -16.0, domain.EmergingMkts: -22.0,
			domain.USBonds: -13.0, domain.IntlBonds: -10.0, domain.Alternatives: 6.0,
		},
		Recovery: "2 years",
		Lesson:   "Traditional 60/40 didn't protect. When inflation spikes, stocks and bonds can fall together.",
	},
	{
		ID: "stagflation_70s", Name: "1973-1974 Stagflation", Kind: KindHistorical, Period: "1973-1974",
		Description: "Oil crisis, high inflation, recession",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -48.0, domain.IntlDeveloped: -42.0, domain.EmergingMkts: -30.0,
			domain.USBonds: -5.0, domain.IntlBonds: -8.0, domain.Alternatives: 60.0,
		},
		Recovery: "8 years",
		Lesson:   "Real assets outperformed paper assets. Gold and commodities were the only place to hide.",
	},
	{
		ID: "black_monday", Name: "1987 Black Monday", Kind: KindHistorical, Period: "Oct 1987",
		Description: "Single-day 22% crash",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -33.0, domain.IntlDeveloped: -28.0, domain.EmergingMkts: -25.0,
			domain.USBonds: 2.0, domain.IntlBonds: 1.0, domain.Alternatives: 5.0,
		},
		Recovery: "2 years",
		Lesson:   "Flash crashes without economic damage recover quickly. The selling itself was the crisis.",
	},
	{
		ID: "em_crisis_1997", Name: "1997-1998 EM Crisis", Kind: KindHistorical, Period: "1997-1998",
		Description: "Asian financial crisis, Russian default, LTCM",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -15.0, domain.IntlDeveloped: -12.0, domain.EmergingMkts: -55.0,
			domain.USBonds: 12.0, domain.IntlBonds: 6.0, domain.Alternatives: -8.0,
		},
		Recovery: "3 years",
		Lesson:   "Emerging markets carry crisis risk of their own. US assets were the safe haven.",
	},

	{
		ID: "severe_recession", Name: "Severe Recession", Kind: KindHypothetical,
		Description: "Deep recession, risk-off environment",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -40.0, domain.IntlDeveloped: -45.0, domain.EmergingMkts: -50.0,
			domain.USBonds: 8.0, domain.IntlBonds: 5.0, domain.Alternatives: -20.0,
		},
	},
	{
		ID: "inflation_spike", Name: "Inflation Spike", Kind: KindHypothetical,
		Description: "Unexpected inflation surge, rates rise sharply",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -25.0, domain.IntlDeveloped: -20.0, domain.EmergingMkts: -30.0,
			domain.USBonds: -15.0, domain.IntlBonds: -12.0, domain.Alternatives: 25.0,
		},
	},
	{
		ID: "dollar_collapse", Name: "Dollar Collapse", Kind: KindHypothetical,
		Description: "Loss of USD reserve status, currency crisis",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -35.0, domain.IntlDeveloped: 10.0, domain.EmergingMkts: 5.0,
			domain.USBonds: -25.0, domain.IntlBonds: 15.0, domain.Alternatives: 40.0,
		},
	},
	{
		ID: "ai_bubble_burst", Name: "AI Bubble Burst", Kind: KindHypothetical,
		Description: "Tech/AI valuations collapse",
		Shocks: map[domain.AssetClass]float64{
			domain.USEquity: -35.0, domain.IntlDeveloped: -20.0, domain.EmergingMkts: -25.0,
			domain.USBonds: 5.0, domain.IntlBonds: 3.0, domain.Alternatives: 10.0,
		},
	},
}

// ScenarioByID looks up a catalog scenario.
func ScenarioByID(id string) (Scenario, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}
