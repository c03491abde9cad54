// Package scoring ranks candidate funds within an asset class on a weighted
// multi-factor score and selects the best pick plus alternatives.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
)

// Weights are the factor weights of the total score. They must sum to 1.
type Weights struct {
	RiskAdjustedReturn float64
	ExpenseRatio       float64
	Consistency        float64
	TrackingPrecision  float64
	Liquidity          float64
}

// DefaultWeights is the production weighting.
var DefaultWeights = Weights{
	RiskAdjustedReturn: 0.30,
	ExpenseRatio:       0.25,
	Consistency:        0.15,
	TrackingPrecision:  0.15,
	Liquidity:          0.15,
}

func (w Weights) sum() float64 {
	return w.RiskAdjustedReturn + w.ExpenseRatio + w.Consistency + w.TrackingPrecision + w.Liquidity
}

// Benchmark holds the reference stats a class's funds are scored against.
// Returns and volatility are annualized percentage points.
type Benchmark struct {
	Return1Y   float64
	Return3Y   float64
	Return5Y   float64
	Volatility float64
}

// DefaultBenchmarks is a static snapshot of index performance per class,
// used for tracking-precision scoring and as a volatility fallback for funds
// that do not report a standard deviation.
var DefaultBenchmarks = map[domain.AssetClass]Benchmark{
	domain.USEquity:      {Return1Y: 25, Return3Y: 10, Return5Y: 14, Volatility: 16.5},
	domain.IntlDeveloped: {Return1Y: 12, Return3Y: 5, Return5Y: 7.5, Volatility: 18.0},
	domain.EmergingMkts:  {Return1Y: 10, Return3Y: -1, Return5Y: 4, Volatility: 24.0},
	domain.USBonds:       {Return1Y: 3, Return3Y: -2.5, Return5Y: 0.8, Volatility: 5.5},
	domain.IntlBonds:     {Return1Y: 2, Return3Y: -3, Return5Y: -0.5, Volatility: 7.0},
	domain.Alternatives:  {Return1Y: 8, Return3Y: 4, Return5Y: 6, Volatility: 14.0},
}

const (
	// neutralScore is assigned when a factor cannot be computed from the
	// fund's data (too few horizons, no benchmark return).
	neutralScore = 50.0

	// expenseDecay controls the inverse-exponential expense score. At
	// er == expenseDecay the score is 100/e; fee differences below a few
	// basis points barely move it.
	expenseDecay = 0.005

	// consistencyPenalty is the score deducted per point of stdev across
	// the fund's trailing-return horizons.
	consistencyPenalty = 3.0

	// trackingPenalty is the score deducted per point of absolute 1-year
	// deviation from the class benchmark.
	trackingPenalty = 3.0

	// DefaultMinAUM is the eligibility floor. Funds below it are excluded
	// from candidacy entirely, not scored low.
	DefaultMinAUM = 100e6

	// preferETFBonus is added to ETF total scores when the caller prefers
	// ETFs. A tie-break nudge, small enough not to override a real gap.
	preferETFBonus = 2.0
)

// AUM tiers for the liquidity score.
var liquidityTiers = []struct {
	MinAUM float64
	Score  float64
}{
	{50e9, 100},
	{10e9, 90},
	{1e9, 75},
	{100e6, 60},
}

const liquidityFloorScore = 40.0

// Preferences narrow and bias fund selection.
type Preferences struct {
	// PreferETF adds a small tie-break bonus to ETFs. Not a hard filter.
	PreferETF bool
	// MaxExpenseRatio excludes funds above this fraction before scoring.
	// Zero means no cap.
	MaxExpenseRatio float64
}

// Selection is the result of picking a fund for one asset class.
type Selection struct {
	AssetClass    domain.AssetClass   `json:"asset_class"`
	Selected      *domain.ScoredFund  `json:"selected,omitempty"`
	Alternatives  []domain.ScoredFund `json:"alternatives,omitempty"`
	FundsAnalyzed int                 `json:"funds_analyzed"`
	// Unfilled is set when no candidate survives eligibility filters.
	// The class stays in the result so callers can surface the gap.
	Unfilled bool `json:"unfilled,omitempty"`
}

// maxAlternatives is how many runners-up a Selection carries.
const maxAlternatives = 5

// Scorer ranks funds. Construct with NewScorer; zero value is not usable.
type Scorer struct {
	weights    Weights
	benchmarks map[domain.AssetClass]Benchmark
	minAUM     float64
	rfRate     float64 // percentage points, matches fund trailing returns
	log        zerolog.Logger
}

// NewScorer builds a scorer. riskFreeRate is a fraction (as stored in the
// CMA set); it is converted to percentage points internally to match fund
// trailing returns.
func NewScorer(weights Weights, riskFreeRate float64, log zerolog.Logger) (*Scorer, error) {
	if math.Abs(weights.sum()-1.0) > 1e-9 {
		return nil, fmt.Errorf("scoring weights sum to %.4f, want 1", weights.sum())
	}
	return &Scorer{
		weights:    weights,
		benchmarks: DefaultBenchmarks,
		minAUM:     DefaultMinAUM,
		rfRate:     riskFreeRate * 100,
		log:        log.With().Str("service", "scoring").Logger(),
	}, nil
}

// SetMinAUM overrides the eligibility floor.
func (s *Scorer) SetMinAUM(minAUM float64) { s.minAUM = minAUM }

// ScoreFunds scores the eligible candidates for a class and returns them
// ordered by total score descending, ranks assigned from 1.
func (s *Scorer) ScoreFunds(class domain.AssetClass, candidates []domain.Fund, prefs Preferences) []domain.ScoredFund {
	benchmark, ok := s.benchmarks[class]
	if !ok {
		benchmark = s.benchmarks[domain.USEquity]
	}

	eligible := make([]domain.Fund, 0, len(candidates))
	for _, fund := range candidates {
		if fund.AUM < s.minAUM {
			continue
		}
		if prefs.MaxExpenseRatio > 0 && fund.ExpenseRatio > prefs.MaxExpenseRatio {
			continue
		}
		eligible = append(eligible, fund)
	}
	if len(eligible) == 0 {
		return nil
	}

	sharpes := poolSharpes(eligible, benchmark, s.rfRate)
	minSharpe, maxSharpe := minMax(sharpes)

	scored := make([]domain.ScoredFund, len(eligible))
	for i, fund := range eligible {
		factors := domain.FactorScores{
			RiskAdjustedReturn: scaleToPool(sharpes[i], minSharpe, maxSharpe),
			ExpenseRatio:       expenseScore(fund.ExpenseRatio),
			Consistency:        consistencyScore(fund),
			TrackingPrecision:  trackingScore(fund, benchmark),
			Liquidity:          liquidityScore(fund.AUM),
		}

		total := factors.RiskAdjustedReturn*s.weights.RiskAdjustedReturn +
			factors.ExpenseRatio*s.weights.ExpenseRatio +
			factors.Consistency*s.weights.Consistency +
			factors.TrackingPrecision*s.weights.TrackingPrecision +
			factors.Liquidity*s.weights.Liquidity

		if prefs.PreferETF && fund.Type == domain.FundTypeETF {
			total += preferETFBonus
		}

		scored[i] = domain.ScoredFund{Fund: fund, Scores: factors, TotalScore: total}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// Select scores the candidates and returns the winner with up to five
// alternatives and its reasoning. An empty pool yields an Unfilled
// selection rather than an error.
func (s *Scorer) Select(class domain.AssetClass, candidates []domain.Fund, prefs Preferences) Selection {
	scored := s.ScoreFunds(class, candidates, prefs)
	if len(scored) == 0 {
		s.log.Warn().Str("asset_class", string(class)).
			Int("candidates", len(candidates)).
			Msg("No eligible fund for asset class")
		return Selection{AssetClass: class, Unfilled: true}
	}

	selected := scored[0]
	selected.Reasoning = s.reasoning(selected, scored, class)

	end := len(scored)
	if end > maxAlternatives+1 {
		end = maxAlternatives + 1
	}
	return Selection{
		AssetClass:    class,
		Selected:      &selected,
		Alternatives:  scored[1:end],
		FundsAnalyzed: len(scored),
	}
}

func poolSharpes(funds []domain.Fund, benchmark Benchmark, rfRate float64) []float64 {
	out := make([]float64, len(funds))
	for i, fund := range funds {
		vol := benchmark.Volatility
		if fund.StdDev3Y != nil && *fund.StdDev3Y > 0 {
			vol = *fund.StdDev3Y
		}
		ret := 0.0
		if fund.Return1Y != nil {
			ret = *fund.Return1Y
		}
		if vol > 0 {
			out[i] = (ret - rfRate) / vol
		}
	}
	return out
}

// scaleToPool maps a Sharpe to [0,100] relative to the candidate pool. With
// a degenerate pool (all equal) everyone gets the neutral score.
func scaleToPool(v, min, max float64) float64 {
	if max-min < 1e-12 {
		return neutralScore
	}
	return (v - min) / (max - min) * 100
}

// expenseScore decays exponentially in the expense ratio so that basis-point
// differences among already-cheap funds barely matter, while expensive funds
// are punished hard. er is a fraction.
func expenseScore(er float64) float64 {
	if er < 0 {
		er = 0
	}
	return 100 * math.Exp(-er/expenseDecay)
}

// consistencyScore penalizes dispersion of returns across the fund's
// available horizons. Fewer than two horizons is neutral, not penalized.
func consistencyScore(fund domain.Fund) float64 {
	returns := fund.TrailingReturns()
	if len(returns) < 2 {
		return neutralScore
	}
	sd, err := stats.StandardDeviation(returns)
	if err != nil {
		return neutralScore
	}
	return clampScore(100 - sd*consistencyPenalty)
}

func trackingScore(fund domain.Fund, benchmark Benchmark) float64 {
	if fund.Return1Y == nil {
		return neutralScore
	}
	trackingError := math.Abs(*fund.Return1Y - benchmark.Return1Y)
	return clampScore(100 - trackingError*trackingPenalty)
}

func liquidityScore(aum float64) float64 {
	for _, tier := range liquidityTiers {
		if aum >= tier.MinAUM {
			return tier.Score
		}
	}
	return liquidityFloorScore
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minMax(vs []float64) (float64, float64) {
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
