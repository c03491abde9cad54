package stress

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
)

// ClassImpact is one asset class's contribution to a scenario result.
// Shock and Impact are percentage points.
type ClassImpact struct {
	AssetClass domain.AssetClass `json:"asset_class"`
	Weight     float64           `json:"weight"`
	Shock      float64           `json:"shock"`
	Impact     float64           `json:"impact"`
}

// Result is a scenario applied to one allocation. PortfolioImpact is the
// weighted shock sum in percentage points.
type Result struct {
	ScenarioID      string        `json:"scenario_id"`
	Name            string        `json:"name"`
	Kind            ScenarioKind  `json:"kind"`
	Period          string        `json:"period,omitempty"`
	Description     string        `json:"description"`
	PortfolioImpact float64       `json:"portfolio_impact"`
	Contributions   []ClassImpact `json:"contributions"`
	Recovery        string        `json:"recovery,omitempty"`
	Lesson          string        `json:"lesson,omitempty"`
}

// Report groups scenario results by kind, each sorted worst-first.
type Report struct {
	Historical   []Result `json:"historical"`
	Hypothetical []Result `json:"hypothetical"`
}

// Engine runs scenarios and Monte Carlo projections over allocations.
type Engine struct {
	calc      *metrics.Calculator
	scenarios []Scenario
	log       zerolog.Logger
}

// NewEngine creates a stress engine over the default scenario catalog.
func NewEngine(calc *metrics.Calculator, log zerolog.Logger) *Engine {
	return &Engine{
		calc:      calc,
		scenarios: Catalog,
		log:       log.With().Str("service", "stress").Logger(),
	}
}

// Scenarios returns the engine's scenario catalog.
func (e *Engine) Scenarios() []Scenario { return e.scenarios }

// Apply runs one scenario against an allocation. A class the scenario does
// not cover takes the scenario's US Equity shock, the catalog's documented
// fallback for unclassified exposure.
func (e *Engine) Apply(alloc domain.Allocation, scenario Scenario) Result {
	var total float64
	var contributions []ClassImpact
	for _, class := range domain.AllAssetClasses {
		weight := alloc[class]
		if weight == 0 {
			continue
		}
		shock, ok := scenario.Shocks[class]
		if !ok {
			shock = scenario.Shocks[domain.USEquity]
		}
		impact := shock * weight
		total += impact
		contributions = append(contributions, ClassImpact{
			AssetClass: class,
			Weight:     weight,
			Shock:      shock,
			Impact:     impact,
		})
	}

	return Result{
		ScenarioID:      scenario.ID,
		Name:            scenario.Name,
		Kind:            scenario.Kind,
		Period:          scenario.Period,
		Description:     scenario.Description,
		PortfolioImpact: total,
		Contributions:   contributions,
		Recovery:        scenario.Recovery,
		Lesson:          scenario.Lesson,
	}
}

// RunAll applies every catalog scenario to the allocation and returns the
// results grouped by kind, worst impact first.
func (e *Engine) RunAll(alloc domain.Allocation) Report {
	var report Report
	for _, scenario := range e.scenarios {
		result := e.Apply(alloc, scenario)
		switch scenario.Kind {
		case KindHistorical:
			report.Historical = append(report.Historical, result)
		case KindHypothetical:
			report.Hypothetical = append(report.Hypothetical, result)
		}
	}

	worstFirst := func(results []Result) {
		sort.Slice(results, func(i, j int) bool {
			return results[i].PortfolioImpact < results[j].PortfolioImpact
		})
	}
	worstFirst(report.Historical)
	worstFirst(report.Hypothetical)

	e.log.Debug().Int("historical", len(report.Historical)).
		Int("hypothetical", len(report.Hypothetical)).
		Msg("Ran stress scenarios")
	return report
}
