package extent

// AmountAt returns the amount of a species once the reaction has advanced to
// extent x:
//
//	n(ξ) = n(0) + ξ·ν
//
// Spectators (ν = 0) keep their initial amount at every extent.
// Complexity: O(1).
func AmountAt(initial, coefficient, x float64) float64 {
	return initial + x*coefficient
}

// ChangeAt returns AmountAt(initial, coefficient, x) − initial, i.e. ξ·ν.
func ChangeAt(coefficient, x float64) float64 {
	return positiveZero(x * coefficient)
}

// ToDisplay converts a stored molar amount to the unit selected by mode.
// Every view goes through this function, so mode handling lives in one place.
//
//	Moles: n
//	Mass:  n · M
func ToDisplay(moles, molarMass float64, mode Mode) float64 {
	if mode == Mass {
		return moles * molarMass
	}

	return moles
}

// FromDisplay is the inverse of ToDisplay: it turns a user-entered value in
// mode units back into moles. molarMass must be > 0 in Mass mode.
func FromDisplay(value, molarMass float64, mode Mode) float64 {
	if mode == Mass {
		return value / molarMass
	}

	return value
}
