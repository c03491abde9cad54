package insights

import (
	"math"
	"sort"

	"github.com/mavenwealth/optimizer/internal/domain"
)

// Each absolute percentage point of allocation difference costs half a
// similarity point, so two allocations 100pp apart in total score 50.
const similarityPenalty = 50.0

// comparables are published manager model portfolios used only for
// "your allocation looks closest to X" framing. Weights are fractions.
var comparables = []Comparable{
	{ID: "blackrock_moderate", Manager: "BlackRock", Model: "Moderate", Allocation: domain.Allocation{
		domain.USEquity: 0.40, domain.IntlDeveloped: 0.10, domain.EmergingMkts: 0.05, domain.USBonds: 0.45}},
	{ID: "blackrock_growth", Manager: "BlackRock", Model: "Growth", Allocation: domain.Allocation{
		domain.USEquity: 0.55, domain.IntlDeveloped: 0.15, domain.EmergingMkts: 0.05, domain.USBonds: 0.25}},
	{ID: "vanguard_moderate", Manager: "Vanguard", Model: "LifeStrategy Moderate", Allocation: domain.Allocation{
		domain.USEquity: 0.40, domain.IntlDeveloped: 0.15, domain.EmergingMkts: 0.05, domain.USBonds: 0.40}},
	{ID: "vanguard_growth", Manager: "Vanguard", Model: "LifeStrategy Growth", Allocation: domain.Allocation{
		domain.USEquity: 0.55, domain.IntlDeveloped: 0.20, domain.EmergingMkts: 0.05, domain.USBonds: 0.20}},
	{ID: "fidelity_balanced", Manager: "Fidelity", Model: "Balanced", Allocation: domain.Allocation{
		domain.USEquity: 0.45, domain.IntlDeveloped: 0.12, domain.EmergingMkts: 0.03, domain.USBonds: 0.40}},
	{ID: "capitalgroup_growth", Manager: "Capital Group", Model: "Growth", Allocation: domain.Allocation{
		domain.USEquity: 0.50, domain.IntlDeveloped: 0.20, domain.EmergingMkts: 0.10, domain.USBonds: 0.20}},
	{ID: "jpmorgan_balanced", Manager: "JP Morgan", Model: "Balanced", Allocation: domain.Allocation{
		domain.USEquity: 0.45, domain.IntlDeveloped: 0.10, domain.EmergingMkts: 0.05, domain.USBonds: 0.40}},
	{ID: "schwab_aggressive", Manager: "Schwab", Model: "Aggressive", Allocation: domain.Allocation{
		domain.USEquity: 0.60, domain.IntlDeveloped: 0.20, domain.EmergingMkts: 0.10, domain.USBonds: 0.10}},
}

// Comparable is one published model an allocation can be measured against.
type Comparable struct {
	ID         string            `json:"id"`
	Manager    string            `json:"manager"`
	Model      string            `json:"model"`
	Allocation domain.Allocation `json:"allocation"`
}

// ModelMatch is a comparable plus its distance from the input allocation.
// Similarity is in [0,100]; Diffs are signed fractions (input minus model).
type ModelMatch struct {
	Comparable
	Diffs      map[domain.AssetClass]float64 `json:"diffs"`
	Similarity float64                       `json:"similarity"`
}

// ClosestModels ranks the comparables by similarity to the allocation,
// best match first, and returns at most limit entries.
func ClosestModels(alloc domain.Allocation, limit int) []ModelMatch {
	matches := make([]ModelMatch, 0, len(comparables))
	for _, c := range comparables {
		diffs := make(map[domain.AssetClass]float64, len(domain.AllAssetClasses))
		var totalDiff float64
		for _, ac := range domain.AllAssetClasses {
			d := alloc[ac] - c.Allocation[ac]
			diffs[ac] = d
			totalDiff += math.Abs(d)
		}
		matches = append(matches, ModelMatch{
			Comparable: c,
			Diffs:      diffs,
			Similarity: math.Max(0, 100-totalDiff*similarityPenalty),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
