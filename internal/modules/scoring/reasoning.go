package scoring

import (
	"fmt"

	"github.com/mavenwealth/optimizer/internal/domain"
)

// Margins over the runner-up that warrant a callout, in score points.
const (
	clearWinnerMargin = 8.0
	narrowWinMargin   = 3.0
)

// reasoning builds short human-readable justifications for the winning fund,
// derived from whichever sub-scores were dominant.
func (s *Scorer) reasoning(selected domain.ScoredFund, pool []domain.ScoredFund, class domain.AssetClass) []string {
	var reasons []string
	fund := selected.Fund
	er := fund.ExpenseRatio

	switch {
	case er <= 0.0005:
		reasons = append(reasons, fmt.Sprintf("Ultra-low expense ratio (%.3f%%), among the cheapest in class", er*100))
	case er <= 0.002:
		reasons = append(reasons, fmt.Sprintf("Very low expense ratio (%.2f%%), keeps more returns for you", er*100))
	case er <= 0.005:
		reasons = append(reasons, fmt.Sprintf("Competitive expense ratio (%.2f%%)", er*100))
	}

	if benchmark, ok := s.benchmarks[class]; ok && fund.Return1Y != nil {
		switch {
		case *fund.Return1Y > benchmark.Return1Y*1.05:
			reasons = append(reasons, fmt.Sprintf("Outperformed benchmark by %.1f points over the past year", *fund.Return1Y-benchmark.Return1Y))
		case *fund.Return1Y >= benchmark.Return1Y*0.98:
			reasons = append(reasons, fmt.Sprintf("Closely tracked benchmark (%.1f%% vs %.1f%%)", *fund.Return1Y, benchmark.Return1Y))
		}
	}

	if selected.Scores.Consistency >= 80 {
		reasons = append(reasons, "Highly consistent returns across trailing periods")
	}

	switch {
	case fund.AUM >= 50e9:
		reasons = append(reasons, fmt.Sprintf("Massive AUM ($%.0fB), excellent liquidity", fund.AUM/1e9))
	case fund.AUM >= 10e9:
		reasons = append(reasons, fmt.Sprintf("Large AUM ($%.1fB), very liquid", fund.AUM/1e9))
	}

	if selected.Scores.RiskAdjustedReturn >= 80 {
		reasons = append(reasons, "Strong risk-adjusted returns relative to peers")
	}

	if len(pool) > 1 {
		margin := selected.TotalScore - pool[1].TotalScore
		if margin > clearWinnerMargin {
			reasons = append(reasons, fmt.Sprintf("Clear winner, %.1f pts ahead of runner-up", margin))
		} else if margin > narrowWinMargin {
			reasons = append(reasons, fmt.Sprintf("Top choice, narrowly beating %s", pool[1].Fund.Ticker))
		}
	}

	if len(reasons) == 0 {
		reasons = []string{"Best overall score in this asset class"}
	}
	return reasons
}
