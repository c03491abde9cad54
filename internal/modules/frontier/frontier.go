// Package frontier sweeps the allocation simplex to produce Pareto-efficient
// risk/return curves and reference portfolios (max Sharpe, min volatility,
// target return, risk parity).
package frontier

import (
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mavenwealth/optimizer/internal/domain"
	"github.com/mavenwealth/optimizer/internal/modules/cma"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
)

const (
	// DefaultSamples is the simplex sample count per generation.
	DefaultSamples = 20000

	// DefaultSteps is the target number of frontier points returned.
	DefaultSteps = 50

	// chunkSize is the number of samples drawn per worker chunk. Fixed so
	// results depend only on the seed, not on worker count.
	chunkSize = 2048

	// maxRejections bounds rejection sampling per draw when weight bounds
	// are set.
	maxRejections = 200
)

// Options tune a frontier generation run.
type Options struct {
	Samples int
	Steps   int
	// MinWeight/MaxWeight bound every class weight in the sampled
	// allocations. Zero MaxWeight means unbounded.
	MinWeight float64
	MaxWeight float64
	// Seed makes the run reproducible. Nil picks a random seed.
	Seed *uint64
}

func (o Options) withDefaults() Options {
	if o.Samples <= 0 {
		o.Samples = DefaultSamples
	}
	if o.Steps <= 0 {
		o.Steps = DefaultSteps
	}
	if o.Seed == nil {
		seed := rand.Uint64()
		o.Seed = &seed
	}
	return o
}

// Point is one candidate portfolio on or behind the frontier.
// Volatility and ExpectedReturn are fractions.
type Point struct {
	Volatility     float64           `json:"volatility"`
	ExpectedReturn float64           `json:"expected_return"`
	Sharpe         float64           `json:"sharpe"`
	Weights        domain.Allocation `json:"weights"`
}

// Generator samples allocations and filters them down to the efficient set.
type Generator struct {
	calc *metrics.Calculator
	cma  *cma.Set
	log  zerolog.Logger
}

// NewGenerator creates a frontier generator over a CMA set.
func NewGenerator(set *cma.Set, log zerolog.Logger) *Generator {
	return &Generator{
		calc: metrics.NewCalculator(set),
		cma:  set,
		log:  log.With().Str("service", "frontier").Logger(),
	}
}

// Generate returns the Pareto-efficient subset of sampled allocations over
// the given classes, ordered by increasing volatility with non-decreasing
// expected return. Classes defaults to the full CMA universe.
func (g *Generator) Generate(classes []domain.AssetClass, opts Options) ([]Point, error) {
	points, err := g.sample(classes, opts)
	if err != nil {
		return nil, err
	}
	frontier := paretoFilter(points)
	frontier = downsample(frontier, opts.withDefaults().Steps)

	g.log.Debug().Int("samples", len(points)).Int("frontier", len(frontier)).
		Msg("Generated efficient frontier")
	return frontier, nil
}

// MaxSharpe returns the sampled portfolio with the highest Sharpe ratio.
func (g *Generator) MaxSharpe(classes []domain.AssetClass, opts Options) (Point, error) {
	points, err := g.sample(classes, opts)
	if err != nil {
		return Point{}, err
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Sharpe > best.Sharpe {
			best = p
		}
	}
	return best, nil
}

// MinVolatility returns the sampled portfolio with the lowest volatility.
func (g *Generator) MinVolatility(classes []domain.AssetClass, opts Options) (Point, error) {
	points, err := g.sample(classes, opts)
	if err != nil {
		return Point{}, err
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Volatility < best.Volatility {
			best = p
		}
	}
	return best, nil
}

// TargetReturn returns the efficient portfolio whose expected return is
// closest to target (a fraction).
func (g *Generator) TargetReturn(target float64, classes []domain.AssetClass, opts Options) (Point, error) {
	points, err := g.sample(classes, opts)
	if err != nil {
		return Point{}, err
	}
	frontier := paretoFilter(points)
	best := frontier[0]
	bestDiff := math.Abs(best.ExpectedReturn - target)
	for _, p := range frontier[1:] {
		if diff := math.Abs(p.ExpectedReturn - target); diff < bestDiff {
			best, bestDiff = p, diff
		}
	}
	return best, nil
}

// RiskParity allocates inversely to each class volatility so every class
// contributes comparably to portfolio risk.
func (g *Generator) RiskParity(classes []domain.AssetClass) (domain.Allocation, error) {
	if len(classes) == 0 {
		classes = g.cma.AssetClasses()
	}
	alloc := domain.Allocation{}
	total := 0.0
	for _, class := range classes {
		assumption, ok := g.cma.Assumption(class)
		if !ok {
			return nil, &domain.ReferenceDataError{AssetClass: class, Missing: "capital market assumption"}
		}
		if assumption.Volatility <= 0 {
			return nil, fmt.Errorf("risk parity undefined for zero-volatility class %s", class)
		}
		inv := 1 / assumption.Volatility
		alloc[class] = inv
		total += inv
	}
	for class := range alloc {
		alloc[class] /= total
	}
	return alloc, nil
}

// sample draws opts.Samples random allocations over the classes in parallel
// and computes their metrics. Chunks are seeded independently from the run
// seed so output is identical regardless of GOMAXPROCS.
func (g *Generator) sample(classes []domain.AssetClass, opts Options) ([]Point, error) {
	opts = opts.withDefaults()
	if len(classes) == 0 {
		classes = g.cma.AssetClasses()
	}
	for _, class := range classes {
		if _, ok := g.cma.Assumption(class); !ok {
			return nil, &domain.ReferenceDataError{AssetClass: class, Missing: "capital market assumption"}
		}
	}
	if opts.MaxWeight > 0 && opts.MaxWeight*float64(len(classes)) < 1 {
		return nil, &domain.InputValidationError{
			Field:  "max_weight",
			Reason: fmt.Sprintf("max weight %.2f infeasible for %d classes", opts.MaxWeight, len(classes)),
		}
	}

	chunks := (opts.Samples + chunkSize - 1) / chunkSize
	points := make([]Point, opts.Samples)

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for chunk := 0; chunk < chunks; chunk++ {
		chunk := chunk
		eg.Go(func() error {
			rng := rand.New(rand.NewPCG(*opts.Seed, uint64(chunk)))
			start := chunk * chunkSize
			end := start + chunkSize
			if end > opts.Samples {
				end = opts.Samples
			}
			for i := start; i < end; i++ {
				alloc := sampleSimplex(rng, classes, opts.MinWeight, opts.MaxWeight)
				m, err := g.calc.Compute(alloc)
				if err != nil {
					return err
				}
				points[i] = Point{
					Volatility:     m.Volatility,
					ExpectedReturn: m.ExpectedReturn,
					Sharpe:         m.Sharpe,
					Weights:        alloc,
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// sampleSimplex draws a uniform allocation over the simplex via normalized
// exponentials, with optional per-class weight bounds enforced by rejection.
func sampleSimplex(rng *rand.Rand, classes []domain.AssetClass, minW, maxW float64) domain.Allocation {
	weights := make([]float64, len(classes))
	for attempt := 0; ; attempt++ {
		total := 0.0
		for i := range weights {
			weights[i] = rng.ExpFloat64()
			total += weights[i]
		}
		ok := true
		for i := range weights {
			weights[i] /= total
			if weights[i] < minW || (maxW > 0 && weights[i] > maxW) {
				ok = false
			}
		}
		if ok || attempt >= maxRejections {
			break
		}
	}
	alloc := make(domain.Allocation, len(classes))
	for i, class := range classes {
		alloc[class] = weights[i]
	}
	return alloc
}

// paretoFilter keeps the non-dominated points ordered by volatility. The
// result has strictly increasing expected return as volatility increases.
func paretoFilter(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Volatility != sorted[j].Volatility {
			return sorted[i].Volatility < sorted[j].Volatility
		}
		return sorted[i].ExpectedReturn > sorted[j].ExpectedReturn
	})

	var frontier []Point
	bestReturn := math.Inf(-1)
	for _, p := range sorted {
		if p.ExpectedReturn > bestReturn {
			frontier = append(frontier, p)
			bestReturn = p.ExpectedReturn
		}
	}
	return frontier
}

// downsample thins a frontier to about n evenly spaced points, always
// keeping the endpoints.
func downsample(frontier []Point, n int) []Point {
	if len(frontier) <= n || n < 2 {
		return frontier
	}
	out := make([]Point, 0, n)
	step := float64(len(frontier)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, frontier[int(math.Round(float64(i)*step))])
	}
	return out
}
