// Package rebalancing compares current against target allocations,
// classifies drift severity, and produces a prioritized trade list.
package rebalancing

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mavenwealth/optimizer/internal/domain"
)

// Thresholds configure drift classification and trade materiality.
type Thresholds struct {
	// CriticalDriftPct is the absolute drift, in percentage points, at
	// which a class is flagged critical.
	CriticalDriftPct float64
	// WarningRatio scales the critical threshold down to the warning
	// threshold.
	WarningRatio float64
	// MinTradeAmount is the materiality floor: trades below it in
	// absolute value become HOLD.
	MinTradeAmount decimal.Decimal
}

// DefaultThresholds follows the common institutional practice of a 5
// percentage point absolute band for major asset classes.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalDriftPct: 5.0,
		WarningRatio:     0.6,
		MinTradeAmount:   decimal.NewFromInt(100),
	}
}

func (t Thresholds) warningPct() float64 {
	return t.CriticalDriftPct * t.WarningRatio
}

// Analysis is a full rebalance review of one portfolio.
type Analysis struct {
	TotalValue   decimal.Decimal      `json:"total_value"`
	Reports      []domain.DriftReport `json:"reports"`
	Status       domain.DriftStatus   `json:"status"`
	TradesNeeded int                  `json:"trades_needed"`
	Priorities   []string             `json:"priorities"`
}

// Monitor analyzes allocation drift. Safe for concurrent use.
type Monitor struct {
	thresholds Thresholds
	log        zerolog.Logger
}

// NewMonitor creates a drift monitor with the given thresholds.
func NewMonitor(thresholds Thresholds, log zerolog.Logger) *Monitor {
	return &Monitor{
		thresholds: thresholds,
		log:        log.With().Str("service", "rebalancing").Logger(),
	}
}

// AnalyzeDrift compares current to target weights (fractions) over a
// portfolio of totalValue and returns per-class drift reports ordered by
// absolute trade amount, largest first. Classes present in either
// allocation are covered; severity is the worst class severity.
func (m *Monitor) AnalyzeDrift(target, current domain.Allocation, totalValue decimal.Decimal) (*Analysis, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := current.Validate(); err != nil {
		return nil, err
	}
	if totalValue.IsNegative() {
		return nil, &domain.InputValidationError{Field: "total_value", Reason: "must not be negative"}
	}

	var reports []domain.DriftReport
	worst := domain.DriftOK
	trades := 0

	for _, class := range domain.AllAssetClasses {
		targetW, inTarget := target[class]
		currentW, inCurrent := current[class]
		if !inTarget && !inCurrent {
			continue
		}

		driftPct := (currentW - targetW) * 100
		status := m.classify(driftPct)

		targetValue := totalValue.Mul(decimal.NewFromFloat(targetW))
		currentValue := totalValue.Mul(decimal.NewFromFloat(currentW))
		amount := targetValue.Sub(currentValue).Round(2)

		action := domain.ActionHold
		if amount.Abs().GreaterThanOrEqual(m.thresholds.MinTradeAmount) {
			if amount.IsPositive() {
				action = domain.ActionBuy
			} else {
				action = domain.ActionSell
			}
			trades++
		}

		reports = append(reports, domain.DriftReport{
			AssetClass:  class,
			TargetPct:   targetW * 100,
			CurrentPct:  currentW * 100,
			DriftPct:    driftPct,
			Status:      status,
			TradeAmount: amount,
			Action:      action,
		})

		if severityRank(status) > severityRank(worst) {
			worst = status
		}
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].TradeAmount.Abs().GreaterThan(reports[j].TradeAmount.Abs())
	})

	m.log.Debug().Str("status", string(worst)).Int("trades", trades).
		Msg("Analyzed allocation drift")

	return &Analysis{
		TotalValue:   totalValue,
		Reports:      reports,
		Status:       worst,
		TradesNeeded: trades,
		Priorities:   taxAwarePriorities(reports),
	}, nil
}

func (m *Monitor) classify(driftPct float64) domain.DriftStatus {
	abs := driftPct
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= m.thresholds.CriticalDriftPct:
		return domain.DriftCritical
	case abs >= m.thresholds.warningPct():
		return domain.DriftWarning
	default:
		return domain.DriftOK
	}
}

func severityRank(s domain.DriftStatus) int {
	switch s {
	case domain.DriftCritical:
		return 2
	case domain.DriftWarning:
		return 1
	default:
		return 0
	}
}

// taxAwarePriorities is the advisory ordering for executing the trade list
// in a taxable context. It is guidance text over the computed trades, not a
// different numeric computation.
func taxAwarePriorities(reports []domain.DriftReport) []string {
	hasBuy, hasSell := false, false
	for _, r := range reports {
		switch r.Action {
		case domain.ActionBuy:
			hasBuy = true
		case domain.ActionSell:
			hasSell = true
		}
	}
	if !hasBuy && !hasSell {
		return []string{"Portfolio is within tolerance bands. No trades needed."}
	}

	var priorities []string
	if hasBuy {
		priorities = append(priorities,
			"Direct new contributions to underweight asset classes first.",
			"Redirect fund distributions to underweight classes instead of reinvesting in place.")
	}
	priorities = append(priorities,
		"Rebalance inside tax-advantaged accounts before touching taxable positions.")
	if hasSell {
		priorities = append(priorities,
			"If a taxable sale is unavoidable, sell highest-cost-basis lots first.",
			"Pair sales with available tax-loss harvesting opportunities.")
	}
	return priorities
}
