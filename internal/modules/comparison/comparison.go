// Package comparison measures portfolios of concrete fund holdings against a
// blended benchmark built from the per-class benchmark ETFs.
package comparison

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mavenwealth/optimizer/internal/domain"
)

// Holding is one position in a portfolio under comparison. Weight is a
// fraction of the portfolio.
type Holding struct {
	Ticker string  `json:"ticker"`
	Weight float64 `json:"weight"`
}

// Portfolio is a named set of holdings.
type Portfolio struct {
	Name     string    `json:"name"`
	Holdings []Holding `json:"holdings"`
}

// HorizonReturns carries one value per trailing-return horizon, in
// percentage points.
type HorizonReturns struct {
	OneYear float64 `json:"return_1yr"`
	ThreeYr float64 `json:"return_3yr"`
	FiveYr  float64 `json:"return_5yr"`
	TenYr   float64 `json:"return_10yr"`
}

// Metrics summarizes a single portfolio's holdings.
type Metrics struct {
	TotalWeight  float64                       `json:"total_weight"`
	ExpenseRatio float64                       `json:"expense_ratio"` // weighted fraction
	Returns      HorizonReturns                `json:"returns"`
	Breakdown    map[domain.AssetClass]float64 `json:"asset_class_breakdown"`
	Unmatched    float64                       `json:"unmatched_weight"` // tickers not in the catalog
}

// Comparison is the result for one portfolio: its own metrics, the blended
// benchmark it maps to, and the alpha per horizon.
type Comparison struct {
	Name             string             `json:"name"`
	Metrics          Metrics            `json:"metrics"`
	BenchmarkWeights map[string]float64 `json:"benchmark_weights"` // benchmark ticker -> fraction
	BenchmarkReturns HorizonReturns     `json:"benchmark_returns"`
	Alpha            HorizonReturns     `json:"alpha"`
}

// FundSource is the slice of the catalog the comparer needs.
type FundSource interface {
	Get(ticker string) (domain.Fund, error)
	Benchmarks() (map[domain.AssetClass]domain.Fund, error)
}

// Comparer compares fund portfolios against blended class benchmarks.
type Comparer struct {
	funds FundSource
	log   zerolog.Logger
}

func NewComparer(funds FundSource, log zerolog.Logger) *Comparer {
	return &Comparer{
		funds: funds,
		log:   log.With().Str("service", "comparison").Logger(),
	}
}

// Compare resolves each portfolio's holdings against the catalog and scores
// it against a benchmark blended from the per-class benchmark ETFs in
// proportion to the portfolio's own asset class mix. Holdings with tickers
// missing from the catalog contribute no returns and no benchmark weight.
func (c *Comparer) Compare(portfolios []Portfolio) ([]Comparison, error) {
	if len(portfolios) == 0 {
		return nil, &domain.InputValidationError{Field: "portfolios", Reason: "at least one portfolio is required"}
	}

	benchmarks, err := c.funds.Benchmarks()
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmarks: %w", err)
	}

	out := make([]Comparison, 0, len(portfolios))
	for i, p := range portfolios {
		if len(p.Holdings) == 0 {
			return nil, &domain.InputValidationError{
				Field:  fmt.Sprintf("portfolios[%d].holdings", i),
				Reason: "portfolio has no holdings",
			}
		}
		cmp, err := c.compareOne(p, benchmarks)
		if err != nil {
			return nil, err
		}
		out = append(out, cmp)
	}
	return out, nil
}

func (c *Comparer) compareOne(p Portfolio, benchmarks map[domain.AssetClass]domain.Fund) (Comparison, error) {
	m := Metrics{Breakdown: make(map[domain.AssetClass]float64)}

	for _, h := range p.Holdings {
		if h.Weight < 0 {
			return Comparison{}, &domain.InputValidationError{Field: h.Ticker, Reason: "negative weight"}
		}
		m.TotalWeight += h.Weight

		fund, err := c.funds.Get(h.Ticker)
		if errors.Is(err, sql.ErrNoRows) {
			c.log.Warn().Str("ticker", h.Ticker).Msg("holding not in catalog, treated as unmatched")
			m.Unmatched += h.Weight
			continue
		}
		if err != nil {
			return Comparison{}, fmt.Errorf("failed to resolve holding %s: %w", h.Ticker, err)
		}

		m.ExpenseRatio += fund.ExpenseRatio * h.Weight
		addReturns(&m.Returns, fund, h.Weight)
		m.Breakdown[fund.AssetClass] += h.Weight
	}

	weights := benchmarkWeights(m.Breakdown, benchmarks)
	benchReturns := blendReturns(weights, benchmarks)

	return Comparison{
		Name:             p.Name,
		Metrics:          m,
		BenchmarkWeights: weights,
		BenchmarkReturns: benchReturns,
		Alpha: HorizonReturns{
			OneYear: m.Returns.OneYear - benchReturns.OneYear,
			ThreeYr: m.Returns.ThreeYr - benchReturns.ThreeYr,
			FiveYr:  m.Returns.FiveYr - benchReturns.FiveYr,
			TenYr:   m.Returns.TenYr - benchReturns.TenYr,
		},
	}, nil
}

// benchmarkWeights maps the portfolio's class breakdown to benchmark ETF
// tickers and renormalizes over the mapped weight, so unmatched holdings do
// not drag the benchmark toward zero.
func benchmarkWeights(breakdown map[domain.AssetClass]float64, benchmarks map[domain.AssetClass]domain.Fund) map[string]float64 {
	weights := make(map[string]float64)
	var mapped float64

	for _, class := range domain.AllAssetClasses {
		w := breakdown[class]
		if w <= 0 {
			continue
		}
		bench, ok := benchmarks[class]
		if !ok {
			continue
		}
		weights[bench.Ticker] += w
		mapped += w
	}

	if mapped > 0 && mapped < 1 {
		scale := 1 / mapped
		for ticker := range weights {
			weights[ticker] *= scale
		}
	}
	return weights
}

func blendReturns(weights map[string]float64, benchmarks map[domain.AssetClass]domain.Fund) HorizonReturns {
	byTicker := make(map[string]domain.Fund, len(benchmarks))
	for _, f := range benchmarks {
		byTicker[f.Ticker] = f
	}

	tickers := make([]string, 0, len(weights))
	for t := range weights {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	var blended HorizonReturns
	for _, ticker := range tickers {
		fund, ok := byTicker[ticker]
		if !ok {
			continue
		}
		addReturns(&blended, fund, weights[ticker])
	}
	return blended
}

// addReturns accumulates a fund's trailing returns into r, weighted by w.
// Nil horizons contribute nothing, matching how short-track-record funds are
// scored elsewhere.
func addReturns(r *HorizonReturns, f domain.Fund, w float64) {
	if f.Return1Y != nil {
		r.OneYear += *f.Return1Y * w
	}
	if f.Return3Y != nil {
		r.ThreeYr += *f.Return3Y * w
	}
	if f.Return5Y != nil {
		r.FiveYr += *f.Return5Y * w
	}
	if f.Return10Y != nil {
		r.TenYr += *f.Return10Y * w
	}
}
