package hybrid

// Insights is static personality metadata for a risk profile, passed through
// to clients verbatim.
type Insights struct {
	Nickname         string            `json:"nickname"`
	Philosophy       string            `json:"philosophy"`
	Bullets          []string          `json:"bullets"`
	MarketConditions map[string]string `json:"market_conditions"`
}

var profileInsights = map[RiskProfile]Insights{
	ProfileConservative: {
		Nickname:   "The Steady Hand",
		Philosophy: "Preservation first, growth second. Sleep well at night knowing your portfolio can weather any storm.",
		Bullets: []string{
			"Designed for capital preservation with modest growth",
			"Bond-heavy allocation provides income and stability",
			"Equity sleeve focused on quality, dividend-paying companies",
			"Lower correlation to market swings",
		},
		MarketConditions: map[string]string{
			"bull_market":  "Will lag during strong equity rallies, and that's okay. You're not trying to maximize upside.",
			"bear_market":  "Shines when markets fall. Bonds provide ballast, quality equities hold up better.",
			"rising_rates": "Some bond pain, but shorter duration and quality tilt helps.",
			"recession":    "Built for this. Stable income, defensive positioning.",
		},
	},
	ProfileModerate: {
		Nickname:   "The Balanced Builder",
		Philosophy: "The classic 60/40 evolved. Enough equity for growth, enough bonds to smooth the ride.",
		Bullets: []string{
			"Time-tested balanced approach updated for today",
			"Diversified across asset classes, geographies, and managers",
			"Core-satellite structure: cheap beta plus active alpha",
			"Rebalancing opportunities in volatile markets",
		},
		MarketConditions: map[string]string{
			"bull_market":  "Participates meaningfully in upside with around 60% equity exposure.",
			"bear_market":  "Bonds cushion the fall. Historically recovers faster than aggressive portfolios.",
			"rising_rates": "Some headwinds on bonds, but equity growth can offset.",
			"recession":    "Balanced approach means balanced pain, and balanced recovery.",
		},
	},
	ProfileGrowth: {
		Nickname:   "The Wealth Compounder",
		Philosophy: "You have time on your side. Accept volatility as the price of admission to long-term wealth building.",
		Bullets: []string{
			"Equity-heavy for maximum long-term compounding",
			"International diversification captures global growth",
			"Active managers seeking tomorrow's winners",
			"Small bond allocation for opportunistic rebalancing",
		},
		MarketConditions: map[string]string{
			"bull_market":  "In its element. High equity exposure captures most of the upside.",
			"bear_market":  "Will feel the pain. But if your timeline is 10+ years, corrections are buying opportunities.",
			"rising_rates": "Less bond exposure means less interest rate sensitivity.",
			"recession":    "Short-term pain, long-term gain. Quality companies survive and thrive post-recession.",
		},
	},
	ProfileAggressive: {
		Nickname:   "The Maximum Compounder",
		Philosophy: "All-in on equities. This is for money you won't touch for 20+ years and an iron stomach.",
		Bullets: []string{
			"Near-100% equity for maximum long-term growth",
			"Significant international and emerging markets exposure",
			"Tilts toward growth and momentum factors",
			"Only for investors who can watch 50% drops without panic selling",
		},
		MarketConditions: map[string]string{
			"bull_market":  "Maximum participation. This is what the portfolio is built for.",
			"bear_market":  "Will drop hard. 40-50% drawdowns are possible. You need to hold through it.",
			"rising_rates": "Growth stocks may struggle short-term, but quality wins long-term.",
			"recession":    "Painful but ultimately rewarding if you stay the course. The biggest gains come after the biggest drops.",
		},
	},
}

// ProfileInsights returns the static insight metadata for a profile,
// falling back to moderate for unknown profiles.
func ProfileInsights(profile RiskProfile) Insights {
	if ins, ok := profileInsights[profile]; ok {
		return ins
	}
	return profileInsights[ProfileModerate]
}
