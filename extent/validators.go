// Package extent - validation helpers shared by New and the Reaction setters.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Validators see a complete candidate state, so setters can validate
//     first and commit after (no commit-then-check).
package extent

import (
	"fmt"
	"math"
)

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// validateSlot ensures s addresses one of the six species.
func validateSlot(s Slot) error {
	if !s.Valid() {
		return fmt.Errorf("slot %d: %w", int(s), ErrUnknownSlot)
	}

	return nil
}

// validateMode ensures m is Moles or Mass.
func validateMode(m Mode) error {
	if m != Moles && m != Mass {
		return fmt.Errorf("mode %d: %w", int(m), ErrUnknownMode)
	}

	return nil
}

// validateCoefficients checks a full candidate coefficient vector.
//
// Stage 1: every value is finite and carries the sign of its side
// (reactants <= 0, products >= 0).
// Stage 2: at least one reactant and one product participate.
//
// Complexity: O(SlotCount).
func validateCoefficients(c [SlotCount]float64) error {
	for _, s := range Slots {
		v := c[s]
		if !isFinite(v) {
			return fmt.Errorf("coefficient %s=%v: %w", s, v, ErrInvalidCoefficientSign)
		}
		if s.IsReactant() && v > 0 {
			return fmt.Errorf("coefficient %s=%v: %w", s, v, ErrInvalidCoefficientSign)
		}
		if s.IsProduct() && v < 0 {
			return fmt.Errorf("coefficient %s=%v: %w", s, v, ErrInvalidCoefficientSign)
		}
	}

	var reactants, products bool
	for _, s := range Slots {
		if c[s] == 0 {
			continue
		}
		if s.IsReactant() {
			reactants = true
		} else {
			products = true
		}
	}
	if !reactants {
		return fmt.Errorf("no reactant coefficient set: %w", ErrDegenerateReaction)
	}
	if !products {
		return fmt.Errorf("no product coefficient set: %w", ErrDegenerateReaction)
	}

	return nil
}

// validateAmount checks 0 <= n <= maxMoles. NaN fails both comparisons.
func validateAmount(s Slot, n, maxMoles float64) error {
	if n >= 0 && n <= maxMoles {
		return nil
	}

	return fmt.Errorf("amount %s=%v mol, allowed [0, %v]: %w", s, n, maxMoles, ErrAmountOutOfBounds)
}

// validateMolarMass checks mm is finite and strictly positive.
func validateMolarMass(s Slot, mm float64) error {
	if isFinite(mm) && mm > 0 {
		return nil
	}

	return fmt.Errorf("molar mass %s=%v: %w", s, mm, ErrInvalidMolarMass)
}

// validateInputs runs every input validator over a complete option set.
// Order: coefficients → amounts → molar masses.
func validateInputs(o Options) error {
	if err := validateCoefficients(o.coefficients); err != nil {
		return err
	}
	for _, s := range Slots {
		if err := validateAmount(s, o.initial[s], o.maxMoles); err != nil {
			return err
		}
	}
	for _, s := range Slots {
		if err := validateMolarMass(s, o.molarMasses[s]); err != nil {
			return err
		}
	}

	return nil
}
