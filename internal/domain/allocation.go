package domain

import "math"

// WeightTolerance is the accepted deviation of an allocation's total weight
// from 1.0. It mirrors the 0.1 percentage-point tolerance used at the API
// boundary.
const WeightTolerance = 0.001

// Allocation maps asset classes to portfolio weights expressed as fractions
// of 1. A valid allocation has no negative weight and sums to 1 within
// WeightTolerance. Invalid allocations are rejected, never silently
// renormalized.
type Allocation map[AssetClass]float64

// Total returns the sum of all weights.
func (a Allocation) Total() float64 {
	var total float64
	for _, w := range a {
		total += w
	}
	return total
}

// EquityFraction returns the summed weight of equity-tagged classes.
func (a Allocation) EquityFraction() float64 {
	var eq float64
	for ac, w := range a {
		if ac.IsEquity() {
			eq += w
		}
	}
	return eq
}

// Validate checks the allocation invariants and returns an
// *InputValidationError naming the offending field on failure.
func (a Allocation) Validate() error {
	if len(a) == 0 {
		return &InputValidationError{Field: "allocation", Reason: "allocation is empty"}
	}
	for ac, w := range a {
		if !KnownAssetClass(ac) {
			return &InputValidationError{Field: string(ac), Reason: "unknown asset class"}
		}
		if w < 0 {
			return &InputValidationError{Field: string(ac), Reason: "negative weight"}
		}
	}
	if total := a.Total(); math.Abs(total-1.0) > WeightTolerance {
		return &InputValidationError{Field: "allocation", Reason: "weights do not sum to 1"}
	}
	return nil
}

// Normalized returns a copy scaled so the weights sum to exactly 1.
// Used only for consensus blending; request validation never renormalizes.
func (a Allocation) Normalized() Allocation {
	total := a.Total()
	out := make(Allocation, len(a))
	if total <= 0 {
		return out
	}
	for ac, w := range a {
		out[ac] = w / total
	}
	return out
}

// FromPercents converts a percentage-point allocation, as accepted at the
// API boundary, into a fractional one. Conversion happens exactly once, at
// the boundary; it does not validate.
func FromPercents(pct map[string]float64) Allocation {
	out := make(Allocation, len(pct))
	for ac, w := range pct {
		out[AssetClass(ac)] = w / 100
	}
	return out
}

// Clone returns an independent copy of the allocation.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for ac, w := range a {
		out[ac] = w
	}
	return out
}
