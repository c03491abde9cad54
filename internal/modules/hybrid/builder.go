package hybrid

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/catalog"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
	"github.com/mavenwealth/optimizer/internal/modules/scoring"
)

// Consensus spread thresholds, as fractions of the portfolio.
const (
	strongConsensusSpread   = 0.10
	moderateConsensusSpread = 0.20
)

// sharpeFloor keeps Sharpe-weighting defined when a model reports a zero or
// negative Sharpe. Such a model still contributed an opinion; it just gets a
// token weight instead of dragging the blend negative.
const sharpeFloor = 0.01

// DefaultCoreSplit is the fraction of each class sleeve given to the
// low-cost passive core; the remainder goes to active satellites.
const DefaultCoreSplit = 0.50

// ConsensusStat describes how much the source models agree on one class.
// Values are fractions of the portfolio.
type ConsensusStat struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Spread  float64 `json:"spread"`
	Label   string  `json:"label"`
}

// SourceWeight records one model's contribution to the blend.
type SourceWeight struct {
	Manager string  `json:"manager"`
	Model   string  `json:"model"`
	Weight  float64 `json:"weight"` // fraction of the blend
	Sharpe  float64 `json:"sharpe"`
}

// Model is a built hybrid portfolio.
type Model struct {
	Name            string                              `json:"name"`
	RiskProfile     RiskProfile                         `json:"risk_profile"`
	Allocation      domain.Allocation                   `json:"allocation"`
	Metrics         metrics.Metrics                     `json:"metrics"`
	Methodology     string                              `json:"methodology"`
	SourceModels    []SourceWeight                      `json:"source_models"`
	Recommendations []domain.FundRecommendation         `json:"recommendations"`
	Consensus       map[domain.AssetClass]ConsensusStat `json:"consensus"`
	Insights        Insights                            `json:"insights"`
}

// FundLister is the slice of the catalog the builder needs.
type FundLister interface {
	List(filter catalog.Filter) ([]domain.Fund, error)
}

// Builder constructs hybrid models from the reference set, the CMA-backed
// metrics calculator, and the fund catalog.
type Builder struct {
	calc      *metrics.Calculator
	scorer    *scoring.Scorer
	funds     FundLister
	coreSplit float64
	log       zerolog.Logger
}

// NewBuilder creates a hybrid model builder with the default core split.
func NewBuilder(calc *metrics.Calculator, scorer *scoring.Scorer, funds FundLister, log zerolog.Logger) *Builder {
	return &Builder{
		calc:      calc,
		scorer:    scorer,
		funds:     funds,
		coreSplit: DefaultCoreSplit,
		log:       log.With().Str("service", "hybrid").Logger(),
	}
}

// SetCoreSplit overrides the passive core fraction. Values outside (0,1]
// are ignored.
func (b *Builder) SetCoreSplit(split float64) {
	if split > 0 && split <= 1 {
		b.coreSplit = split
	}
}

// Build blends the published models for a risk profile into a single
// Sharpe-weighted consensus portfolio with a core/satellite fund lineup.
func (b *Builder) Build(profile RiskProfile) (*Model, error) {
	models := ReferenceModels(profile)
	if len(models) == 0 {
		return nil, &domain.InputValidationError{
			Field:  "risk_profile",
			Reason: fmt.Sprintf("unknown risk profile %q", profile),
		}
	}

	weights := sharpeWeights(models)

	blend := domain.Allocation{}
	for i, m := range models {
		for class, w := range m.Allocation {
			blend[class] += w * weights[i]
		}
	}
	blend = blend.Normalized()

	computed, err := b.calc.Compute(blend)
	if err != nil {
		return nil, fmt.Errorf("hybrid %s metrics: %w", profile, err)
	}

	sources := make([]SourceWeight, len(models))
	for i, m := range models {
		sources[i] = SourceWeight{Manager: m.Manager, Model: m.Model, Weight: weights[i], Sharpe: m.Sharpe}
	}

	recs, err := b.recommendations(blend)
	if err != nil {
		return nil, err
	}

	b.log.Info().Str("risk_profile", string(profile)).
		Float64("expected_return", computed.ExpectedReturn).
		Float64("volatility", computed.Volatility).
		Int("recommendations", len(recs)).
		Msg("Built hybrid model")

	return &Model{
		Name:            "All-Star " + titleCase(string(profile)),
		RiskProfile:     profile,
		Allocation:      blend,
		Metrics:         computed,
		Methodology:     "Sharpe-weighted average of leading asset manager models",
		SourceModels:    sources,
		Recommendations: recs,
		Consensus:       Consensus(models),
		Insights:        ProfileInsights(profile),
	}, nil
}

// recommendations fills each allocated class with a low-cost passive core
// pick and an active satellite pick, split by the configured core fraction.
// A class with no active candidates gets its satellite sleeve from the
// runner-up passive fund; a class with no candidates at all keeps its full
// weight on the core slot and is flagged by the scorer's selection.
func (b *Builder) recommendations(blend domain.Allocation) ([]domain.FundRecommendation, error) {
	var recs []domain.FundRecommendation
	for _, class := range domain.AllAssetClasses {
		weight := blend[class]
		if weight <= 0 {
			continue
		}

		pool, err := b.funds.List(catalog.Filter{AssetClass: class})
		if err != nil {
			return nil, fmt.Errorf("listing %s candidates: %w", class, err)
		}

		var passive, active []domain.Fund
		for _, f := range pool {
			if f.Active {
				active = append(active, f)
			} else {
				passive = append(passive, f)
			}
		}

		coreWeight := weight * b.coreSplit
		satelliteWeight := weight - coreWeight

		coreSel := b.scorer.Select(class, passive, scoring.Preferences{PreferETF: true})
		if coreSel.Selected != nil {
			satellitePool := active
			rationale := "Active alpha sleeve"
			if len(satellitePool) == 0 {
				// No active funds in this class: diversify across a second
				// passive manager instead.
				satellitePool = runnersUp(coreSel)
				rationale = "Diversified passive sleeve"
			}

			satSel := b.scorer.Select(class, satellitePool, scoring.Preferences{})
			if satSel.Selected == nil {
				// Nothing to pair with; the core carries the whole sleeve.
				coreWeight = weight
				satelliteWeight = 0
			}

			core := coreSel.Selected.Fund
			recs = append(recs, domain.FundRecommendation{
				AssetClass: class,
				Ticker:     core.Ticker,
				Name:       core.Name,
				Weight:     coreWeight,
				Expense:    core.ExpenseRatio,
				Category:   domain.CategoryCore,
				Rationale:  fmt.Sprintf("Low-cost beta at %.2f%% expense", core.ExpenseRatio*100),
			})
			if satSel.Selected != nil && satelliteWeight > 0 {
				sat := satSel.Selected.Fund
				category := domain.CategorySatellite
				if !sat.Active {
					category = domain.CategoryCore
				}
				recs = append(recs, domain.FundRecommendation{
					AssetClass: class,
					Ticker:     sat.Ticker,
					Name:       sat.Name,
					Weight:     satelliteWeight,
					Expense:    sat.ExpenseRatio,
					Category:   category,
					Rationale:  rationale,
				})
			}
			continue
		}

		// No passive candidates either. Fall back to the best fund of any
		// wrapper for the full sleeve.
		anySel := b.scorer.Select(class, pool, scoring.Preferences{})
		if anySel.Selected == nil {
			b.log.Warn().Str("asset_class", string(class)).Msg("No fund available for hybrid sleeve")
			continue
		}
		best := anySel.Selected.Fund
		recs = append(recs, domain.FundRecommendation{
			AssetClass: class,
			Ticker:     best.Ticker,
			Name:       best.Name,
			Weight:     weight,
			Expense:    best.ExpenseRatio,
			Category:   domain.CategoryCore,
			Rationale:  "Only eligible fund in class",
		})
	}
	return recs, nil
}

// Consensus measures per-class agreement across a model set. Classes absent
// from every model are omitted.
func Consensus(models []domain.ModelPortfolio) map[domain.AssetClass]ConsensusStat {
	out := make(map[domain.AssetClass]ConsensusStat)
	for _, class := range domain.AllAssetClasses {
		present := false
		min, max, sum := 1.0, 0.0, 0.0
		for _, m := range models {
			w := m.Allocation[class]
			if w > 0 {
				present = true
			}
			if w < min {
				min = w
			}
			if w > max {
				max = w
			}
			sum += w
		}
		if !present {
			continue
		}
		spread := max - min
		out[class] = ConsensusStat{
			Average: sum / float64(len(models)),
			Min:     min,
			Max:     max,
			Spread:  spread,
			Label:   consensusLabel(spread),
		}
	}
	return out
}

func consensusLabel(spread float64) string {
	switch {
	case spread < strongConsensusSpread:
		return "Strong"
	case spread < moderateConsensusSpread:
		return "Moderate"
	default:
		return "Weak"
	}
}

func sharpeWeights(models []domain.ModelPortfolio) []float64 {
	weights := make([]float64, len(models))
	total := 0.0
	for i, m := range models {
		s := m.Sharpe
		if s <= 0 {
			s = sharpeFloor
		}
		weights[i] = s
		total += s
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// runnersUp returns the alternatives of a selection as plain funds.
func runnersUp(sel scoring.Selection) []domain.Fund {
	out := make([]domain.Fund, 0, len(sel.Alternatives))
	for _, alt := range sel.Alternatives {
		out = append(out, alt.Fund)
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
