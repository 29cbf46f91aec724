// Package extent: sentinel error set.
// Every failure is a validation failure returned synchronously to the caller.
// None of them is fatal: the Reaction keeps its last valid state and the
// caller decides how to surface the message.
package extent

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "extent: ...". Setters wrap the sentinel with
// the offending slot/value via fmt.Errorf("...: %w", ErrX); callers match with
// errors.Is.

var (
	// ErrInvalidCoefficientSign is returned when a reactant coefficient is
	// positive or a product coefficient is negative (or the value is not finite).
	ErrInvalidCoefficientSign = errors.New("extent: reactant coefficients must be <= 0 and product coefficients >= 0")

	// ErrDegenerateReaction is returned when every reactant or every product
	// coefficient is zero, so no reaction can take place.
	ErrDegenerateReaction = errors.New("extent: at least one reactant and one product must take part in the reaction")

	// ErrAmountOutOfBounds is returned when an amount (in moles) falls outside
	// [0, MaxMoles] or is not a number.
	ErrAmountOutOfBounds = errors.New("extent: amount out of bounds")

	// ErrInvalidMolarMass is returned when a molar mass is not a finite value > 0.
	ErrInvalidMolarMass = errors.New("extent: molar mass must be greater than 0")

	// ErrOutOfRangeExtent is returned when a directly entered extent lies
	// outside the feasible range [Min, Max].
	ErrOutOfRangeExtent = errors.New("extent: extent outside feasible range")

	// ErrInfeasibleReaction signals a collapsed range (Min == Max): a
	// participating reactant and a participating product both start at zero.
	ErrInfeasibleReaction = errors.New("extent: reaction cannot progress")

	// ErrUnknownSlot is returned for a slot index outside A..Z.
	ErrUnknownSlot = errors.New("extent: unknown species slot")

	// ErrUnknownMode is returned for a display mode other than Moles or Mass.
	ErrUnknownMode = errors.New("extent: unknown display mode")

	// ErrOutOfRange indicates a Table row or slot index outside valid bounds.
	ErrOutOfRange = errors.New("extent: table index out of range")
)
