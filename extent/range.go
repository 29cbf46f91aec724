package extent

import (
	"fmt"
	"math"
)

// CalcRange — Extent Range Calculator
//
// Description:
//
//	Derives the feasible extent interval from six signed coefficients and
//	six initial amounts. It is a pure function: no Reaction state is read.
//
// Algorithm Outline:
//  1. Max = +∞, Min = −∞.
//  2. For each reactant slot i with ν_i ≠ 0: Max = min(Max, −n_i/ν_i).
//  3. For each product  slot j with ν_j ≠ 0: Min = max(Min, −n_j/ν_j).
//  4. If Min == Max the range has collapsed → ErrInfeasibleReaction.
//  5. If either end is ±∞ (a side without participants, or −n/ν overflowing
//     for a subnormal ν) there is nothing to map a percentage onto →
//     ErrInfeasibleReaction.
//
// A product that starts at zero pins Min to 0: the reaction cannot run in
// reverse past the point where that product is exhausted.
//
// Errors:
//   - ErrInfeasibleReaction — returned together with the collapsed or
//     unbounded range so callers can still display it; they must not divide
//     by its width.
//
// Complexity: O(SlotCount).
func CalcRange(coefficients, initial [SlotCount]float64) (Range, error) {
	rng := Range{Min: math.Inf(-1), Max: math.Inf(1)}

	var (
		s    Slot
		c, n float64
	)
	for s = A; s <= Z; s++ {
		c, n = coefficients[s], initial[s]
		if c == 0 {
			continue // spectator
		}
		if s.IsReactant() {
			rng.Max = math.Min(rng.Max, -n/c)
		} else {
			rng.Min = math.Max(rng.Min, -n/c)
		}
	}
	rng.Min = positiveZero(rng.Min)
	rng.Max = positiveZero(rng.Max)

	if rng.Min == rng.Max {
		return rng, fmt.Errorf("range [%v, %v]: %w", rng.Min, rng.Max, ErrInfeasibleReaction)
	}
	if !rng.Bounded() {
		return rng, fmt.Errorf("range [%v, %v] is unbounded: %w", rng.Min, rng.Max, ErrInfeasibleReaction)
	}

	return rng, nil
}

// positiveZero maps −0 to +0 so ranges print and compare cleanly.
func positiveZero(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

// Width returns Max − Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// Bounded reports whether both ends are finite.
func (r Range) Bounded() bool { return isFinite(r.Min) && isFinite(r.Max) }

// Degenerate reports whether the range has collapsed to a point.
func (r Range) Degenerate() bool { return r.Min == r.Max }

// Contains reports whether Min <= x <= Max. NaN is never contained.
func (r Range) Contains(x float64) bool { return x >= r.Min && x <= r.Max }

// PercentToExtent maps p ∈ [0,100] linearly onto [Min, Max].
//
//	ξ = Min + p/100 · (Max − Min)
//
// A degenerate range yields Min. An unbounded range yields the point of the
// range closest to 0, since Min + 0·∞ is NaN.
func (r Range) PercentToExtent(p float64) float64 {
	if r.Degenerate() {
		return r.Min
	}
	if !r.Bounded() {
		return math.Max(r.Min, math.Min(r.Max, 0))
	}

	return r.Min + p/100*r.Width()
}

// ExtentToPercent is the inverse of PercentToExtent.
//
//	p = (ξ − Min) / (Max − Min) · 100
//
// A degenerate or unbounded range yields 0 instead of dividing by 0 or ∞.
func (r Range) ExtentToPercent(x float64) float64 {
	if r.Degenerate() || !r.Bounded() {
		return 0
	}

	return (x - r.Min) / r.Width() * 100
}

// CheckExtent returns ErrOutOfRangeExtent unless x lies in [Min, Max].
func (r Range) CheckExtent(x float64) error {
	if r.Contains(x) {
		return nil
	}

	return fmt.Errorf("extent %v, allowed [%v, %v]: %w", x, r.Min, r.Max, ErrOutOfRangeExtent)
}
