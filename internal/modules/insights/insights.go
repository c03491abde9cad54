// Package insights turns an allocation and its computed metrics into plain
// language commentary: allocation posture, risk framing, forward projections
// and historical context. Output is advisory text only; nothing here feeds
// back into optimization.
package insights

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
	"github.com/mavenwealth/optimizer/internal/modules/stress"
)

// Kind classifies the tone of a note so clients can style it.
type Kind string

const (
	KindPositive Kind = "positive"
	KindInfo     Kind = "info"
	KindCaution  Kind = "caution"
	KindWarning  Kind = "warning"
)

// Note is one piece of commentary. Detail expands on Text and may be empty.
type Note struct {
	Kind   Kind   `json:"type"`
	Text   string `json:"text"`
	Detail string `json:"detail,omitempty"`
}

// Report groups notes by topic.
type Report struct {
	Allocation []Note `json:"allocation"`
	Risk       []Note `json:"risk"`
	Returns    []Note `json:"returns"`
	Efficiency []Note `json:"efficiency"`
	Rearview   []Note `json:"rearview"`
	Forward    []Note `json:"forward"`
}

// Thresholds for the posture and diversification bands, as fractions.
const (
	aggressiveEquity = 0.80
	growthEquity     = 0.60
	moderateEquity   = 0.40

	strongIntlShare   = 0.30
	moderateIntlShare = 0.20

	heavyEMWeight = 0.15

	lowVol      = 0.08
	moderateVol = 0.12

	goodSharpe       = 0.5
	acceptableSharpe = 0.3

	assumedInflation = 2.5 // pp per year
	ruleOf72         = 72.0

	// Historical scenarios are only worth mentioning when the portfolio
	// would have moved by more than this many percentage points.
	rearviewThresholdPct = 8.0
)

// Generator produces narrative reports. It is pure and safe for concurrent
// use once constructed.
type Generator struct {
	calc   *metrics.Calculator
	stress *stress.Engine
	log    zerolog.Logger
}

func NewGenerator(calc *metrics.Calculator, stressEngine *stress.Engine, log zerolog.Logger) *Generator {
	return &Generator{
		calc:   calc,
		stress: stressEngine,
		log:    log.With().Str("service", "insights").Logger(),
	}
}

// Generate builds a full report for a validated allocation. weightedExpense
// is the portfolio's weighted expense ratio as a fraction; pass 0 when the
// portfolio is an abstract allocation with no concrete funds yet.
func (g *Generator) Generate(alloc domain.Allocation, weightedExpense float64) (*Report, error) {
	if err := alloc.Validate(); err != nil {
		return nil, err
	}

	m, err := g.calc.Compute(alloc)
	if err != nil {
		return nil, err
	}

	return &Report{
		Allocation: allocationNotes(alloc),
		Risk:       riskNotes(m),
		Returns:    returnNotes(m),
		Efficiency: efficiencyNotes(m, weightedExpense),
		Rearview:   g.rearviewNotes(alloc),
		Forward:    forwardNotes(alloc, m),
	}, nil
}

func allocationNotes(alloc domain.Allocation) []Note {
	equity := alloc.EquityFraction()
	bonds := alloc[domain.USBonds] + alloc[domain.IntlBonds]
	intlEquity := alloc[domain.IntlDeveloped] + alloc[domain.EmergingMkts]

	var notes []Note

	switch {
	case equity >= aggressiveEquity:
		notes = append(notes, Note{
			Kind:   KindInfo,
			Text:   fmt.Sprintf("Aggressive allocation: %.0f%% in equities", equity*100),
			Detail: "Positioned for long-term growth; expect large swings along the way",
		})
	case equity >= growthEquity:
		notes = append(notes, Note{
			Kind:   KindPositive,
			Text:   fmt.Sprintf("Growth allocation: %.0f%% equities / %.0f%% bonds", equity*100, bonds*100),
			Detail: "Balanced risk and return for long horizons",
		})
	case equity >= moderateEquity:
		notes = append(notes, Note{
			Kind:   KindInfo,
			Text:   fmt.Sprintf("Moderate allocation: %.0f%% equities / %.0f%% bonds", equity*100, bonds*100),
			Detail: "Suitable for medium time horizons",
		})
	default:
		notes = append(notes, Note{
			Kind:   KindCaution,
			Text:   fmt.Sprintf("Conservative allocation: %.0f%% in bonds", bonds*100),
			Detail: "Focus on capital preservation; lower growth but more stability",
		})
	}

	if equity > 0 {
		intlShare := intlEquity / equity
		switch {
		case intlShare >= strongIntlShare:
			notes = append(notes, Note{
				Kind:   KindPositive,
				Text:   fmt.Sprintf("Strong international diversification: %.0f%% of equity is non-US", intlShare*100),
				Detail: "Reduces home country bias and captures global growth",
			})
		case intlShare >= moderateIntlShare:
			notes = append(notes, Note{
				Kind: KindInfo,
				Text: fmt.Sprintf("Moderate international exposure: %.0f%% of equity outside the US", intlShare*100),
			})
		case intlShare > 0:
			notes = append(notes, Note{
				Kind:   KindCaution,
				Text:   fmt.Sprintf("Heavy US concentration: only %.0f%% international equity", intlShare*100),
				Detail: "US has outperformed recently, but valuations are stretched versus the rest of the world",
			})
		}
	}

	if alloc[domain.EmergingMkts] > heavyEMWeight {
		notes = append(notes, Note{
			Kind: KindInfo,
			Text: fmt.Sprintf("Higher EM allocation (%.0f%%) increases growth potential but adds volatility", alloc[domain.EmergingMkts]*100),
		})
	}

	return notes
}

func riskNotes(m metrics.Metrics) []Note {
	var notes []Note

	volPct := m.Volatility * 100
	switch {
	case m.Volatility < lowVol:
		notes = append(notes, Note{
			Kind: KindPositive,
			Text: fmt.Sprintf("Low volatility (%.1f%%): the portfolio should be relatively stable", volPct),
		})
	case m.Volatility < moderateVol:
		notes = append(notes, Note{
			Kind: KindInfo,
			Text: fmt.Sprintf("Moderate volatility (%.1f%%): expect swings of about ±%.0f%% in most years", volPct, volPct*2),
		})
	default:
		notes = append(notes, Note{
			Kind: KindCaution,
			Text: fmt.Sprintf("Higher volatility (%.1f%%): expect significant fluctuations; stay the course in downturns", volPct),
		})
	}

	notes = append(notes, Note{
		Kind:   KindWarning,
		Text:   fmt.Sprintf("In a severe market crash this portfolio could decline roughly %.0f%%", math.Abs(m.MaxDrawdownEstimate)*100),
		Detail: "Estimate based on the historical relationship between volatility and drawdowns",
	})

	return notes
}

func returnNotes(m metrics.Metrics) []Note {
	retPct := m.ExpectedReturn * 100
	notes := []Note{{
		Kind: KindInfo,
		Text: fmt.Sprintf("Expected annual return: %.1f%% based on long-term capital market assumptions", retPct),
	}}

	if retPct > 0 {
		notes = append(notes, Note{
			Kind: KindPositive,
			Text: fmt.Sprintf("At this expected return the investment doubles in about %.0f years", ruleOf72/retPct),
		})
	}

	notes = append(notes, Note{
		Kind:   KindInfo,
		Text:   fmt.Sprintf("Real return after %.1f%% inflation: about %.1f%% per year", assumedInflation, retPct-assumedInflation),
		Detail: "This is the true purchasing power growth",
	})

	return notes
}

func efficiencyNotes(m metrics.Metrics, weightedExpense float64) []Note {
	var notes []Note

	if !m.SharpeUndefined {
		switch {
		case m.Sharpe > goodSharpe:
			notes = append(notes, Note{
				Kind:   KindPositive,
				Text:   fmt.Sprintf("Strong risk-adjusted efficiency: Sharpe ratio of %.2f", m.Sharpe),
				Detail: "Above 0.5 is considered good return per unit of risk",
			})
		case m.Sharpe > acceptableSharpe:
			notes = append(notes, Note{
				Kind: KindInfo,
				Text: fmt.Sprintf("Acceptable risk-adjusted returns: Sharpe ratio of %.2f", m.Sharpe),
			})
		case m.Sharpe > 0:
			notes = append(notes, Note{
				Kind:   KindCaution,
				Text:   fmt.Sprintf("Below-average risk-adjusted returns: Sharpe ratio of %.2f", m.Sharpe),
				Detail: "Consider adjusting the allocation",
			})
		default:
			notes = append(notes, Note{
				Kind: KindWarning,
				Text: fmt.Sprintf("Negative Sharpe ratio (%.2f): expected return is below the risk-free rate", m.Sharpe),
			})
		}
	}

	if weightedExpense > 0 {
		notes = append(notes, Note{
			Kind:   KindInfo,
			Text:   fmt.Sprintf("Portfolio-weighted expense ratio: %.3f%%", weightedExpense*100),
			Detail: fmt.Sprintf("This costs roughly $%.0f per year per $100K invested", weightedExpense*100000),
		})
	}

	return notes
}

// rearviewNotes replays the historical stress scenarios and reports the ones
// that would have moved the portfolio materially.
func (g *Generator) rearviewNotes(alloc domain.Allocation) []Note {
	var notes []Note

	for _, scenario := range g.stress.Scenarios() {
		if scenario.Kind != stress.KindHistorical {
			continue
		}
		result := g.stress.Apply(alloc, scenario)
		if math.Abs(result.PortfolioImpact) <= rearviewThresholdPct {
			continue
		}

		kind := KindWarning
		verb := "declined"
		if result.PortfolioImpact > 0 {
			kind = KindPositive
			verb = "gained"
		}
		notes = append(notes, Note{
			Kind:   kind,
			Text:   fmt.Sprintf("%s: would have %s %.1f%%", scenario.Name, verb, math.Abs(result.PortfolioImpact)),
			Detail: scenario.Lesson,
		})
	}

	return notes
}

func forwardNotes(alloc domain.Allocation, m metrics.Metrics) []Note {
	notes := []Note{{
		Kind:   KindInfo,
		Text:   fmt.Sprintf("Expected annual return %.1f%% at %.1f%% volatility", m.ExpectedReturn*100, m.Volatility*100),
		Detail: "Based on consensus capital market assumptions across major asset managers",
	}}

	bonds := alloc[domain.USBonds] + alloc[domain.IntlBonds]
	switch {
	case bonds >= 0.2:
		notes = append(notes, Note{
			Kind:   KindPositive,
			Text:   fmt.Sprintf("%.0f%% in bonds provides income and stability", bonds*100),
			Detail: "Starting yields are the highest in over a decade, supporting forward returns",
		})
	case bonds > 0:
		notes = append(notes, Note{
			Kind: KindInfo,
			Text: fmt.Sprintf("Low bond allocation (%.0f%%) means less cushion if equities correct", bonds*100),
		})
	}

	return notes
}
