package extent

import "gonum.org/v1/gonum/floats"

// Peak returns the largest amount any species reaches across the feasible
// range, in mode units. Amounts are linear in ξ, so the maximum sits at one of
// the two range ends. Charts use it as their vertical ceiling.
//
// Complexity: O(SlotCount).
func (s Snapshot) Peak(mode Mode) float64 {
	ends := make([]float64, 0, 2*SlotCount)
	for _, sa := range s.Slots {
		a := sa.In(mode)
		ends = append(ends, a.AtMin, a.AtMax)
	}

	return floats.Max(ends)
}

// Participating lists the slots with a non-zero coefficient, in slot order.
func (s Snapshot) Participating() []Slot {
	out := make([]Slot, 0, SlotCount)
	for _, sa := range s.Slots {
		if sa.Coefficient != 0 {
			out = append(out, sa.Slot)
		}
	}

	return out
}

// Amounts returns the amounts of slot sl in mode units.
func (s Snapshot) Amounts(sl Slot, mode Mode) (Amounts, error) {
	if err := validateSlot(sl); err != nil {
		return Amounts{}, err
	}
	if err := validateMode(mode); err != nil {
		return Amounts{}, err
	}

	return s.Slots[sl].In(mode), nil
}
