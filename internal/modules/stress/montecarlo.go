package stress

import (
	"math"
	"math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mavenwealth/optimizer/internal/domain"
)

const (
	// DefaultStartValue is the invested capital a simulation compounds.
	DefaultStartValue = 100.0

	// MaxSimulations caps a run to bound worst-case latency.
	MaxSimulations = 100000

	// MaxYears caps the projection horizon.
	MaxYears = 100

	// mcChunkSize is the trial count per worker chunk. Fixed so a seeded
	// run produces identical output at any GOMAXPROCS.
	mcChunkSize = 1024
)

// MonteCarloOptions tune a simulation run.
type MonteCarloOptions struct {
	// Seed makes the run reproducible. Without it results vary run to run.
	Seed *uint64
	// StartValue defaults to DefaultStartValue.
	StartValue float64
}

// Outcome summarizes one simulated path, or a percentile of the run.
type Outcome struct {
	FinalValue       float64 `json:"final_value"`
	TotalReturn      float64 `json:"total_return"`      // fraction of start value
	AnnualizedReturn float64 `json:"annualized_return"` // fraction
}

// MonteCarloResult aggregates a full simulation run.
type MonteCarloResult struct {
	Simulations    int     `json:"simulations"`
	Years          int     `json:"years"`
	StartValue     float64 `json:"start_value"`
	ExpectedReturn float64 `json:"expected_return"` // fraction, from the CMA
	Volatility     float64 `json:"volatility"`      // fraction, from the CMA

	Percentiles map[string]Outcome `json:"percentiles"` // p5, p25, p50, p75, p95
	Mean        Outcome            `json:"mean"`
	Worst       Outcome            `json:"worst"`
	Best        Outcome            `json:"best"`
}

var percentileProbs = map[string]float64{
	"p5": 0.05, "p25": 0.25, "p50": 0.50, "p75": 0.75, "p95": 0.95,
}

// MonteCarlo simulates `sims` independent paths of `years` annual returns
// drawn from a normal distribution parameterized by the allocation's CMA
// expected return and volatility, compounding the start value through each
// path. Percentiles are interpolated over the sorted final values, so p50
// stays well-defined even for small runs.
func (e *Engine) MonteCarlo(alloc domain.Allocation, years, sims int, opts MonteCarloOptions) (*MonteCarloResult, error) {
	if years <= 0 || years > MaxYears {
		return nil, &domain.InputValidationError{Field: "years", Reason: "must be in [1, 100]"}
	}
	if sims <= 0 {
		return nil, &domain.InputValidationError{Field: "simulations", Reason: "must be positive"}
	}
	if sims > MaxSimulations {
		sims = MaxSimulations
	}
	if err := alloc.Validate(); err != nil {
		return nil, err
	}

	m, err := e.calc.Compute(alloc)
	if err != nil {
		return nil, err
	}

	startValue := opts.StartValue
	if startValue <= 0 {
		startValue = DefaultStartValue
	}
	seed := rand.Uint64()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	finals := make([]float64, sims)
	chunks := (sims + mcChunkSize - 1) / mcChunkSize

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for chunk := 0; chunk < chunks; chunk++ {
		chunk := chunk
		eg.Go(func() error {
			dist := distuv.Normal{
				Mu:    m.ExpectedReturn,
				Sigma: m.Volatility,
				Src:   rand.NewPCG(seed, uint64(chunk)),
			}
			start := chunk * mcChunkSize
			end := start + mcChunkSize
			if end > sims {
				end = sims
			}
			for i := start; i < end; i++ {
				value := startValue
				for y := 0; y < years; y++ {
					value *= 1 + dist.Rand()
					if value < 0 {
						value = 0
					}
				}
				finals[i] = value
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Float64s(finals)

	outcome := func(final float64) Outcome {
		return Outcome{
			FinalValue:       final,
			TotalReturn:      (final - startValue) / startValue,
			AnnualizedReturn: math.Pow(final/startValue, 1/float64(years)) - 1,
		}
	}

	percentiles := make(map[string]Outcome, len(percentileProbs))
	for name, p := range percentileProbs {
		percentiles[name] = outcome(stat.Quantile(p, stat.LinInterp, finals, nil))
	}

	var sum float64
	for _, v := range finals {
		sum += v
	}

	e.log.Debug().Int("simulations", sims).Int("years", years).
		Float64("median", percentiles["p50"].FinalValue).
		Msg("Monte Carlo run complete")

	return &MonteCarloResult{
		Simulations:    sims,
		Years:          years,
		StartValue:     startValue,
		ExpectedReturn: m.ExpectedReturn,
		Volatility:     m.Volatility,
		Percentiles:    percentiles,
		Mean:           outcome(sum / float64(sims)),
		Worst:          outcome(finals[0]),
		Best:           outcome(finals[len(finals)-1]),
	}, nil
}
