package extent

import (
	"fmt"
	"math"
)

// Reaction is the single long-lived session state: six species, the derived
// feasible range and the current extent.
//
// Input setters (SetCoefficient, SetInitialAmount, SetMolarMass) validate a
// complete candidate before assigning anything; on error the Reaction is left
// exactly as it was. A successful input edit marks the derived state stale;
// the next Recompute (or extent setter) recalculates the range, resets ξ to 0
// and refreshes the amounts at the range ends.
//
// Extent setters (SetExtentByPercent, SetExtentDirect) are the cheap path:
// they move ξ inside the current range and leave the extremes untouched.
type Reaction struct {
	species  [SlotCount]Species
	maxMoles float64

	rng      Range
	feasible bool
	extent   float64
	percent  float64
	table    Table
	stale    bool
}

// New builds a Reaction from the defaults overridden by opts.
//
// Errors (first failing check wins, in this order):
//   - ErrInvalidCoefficientSign, ErrDegenerateReaction — coefficients.
//   - ErrAmountOutOfBounds — initial amounts outside [0, MaxMoles].
//   - ErrInvalidMolarMass — molar masses not > 0.
//
// An infeasible but valid input set is accepted; Recompute reports it.
func New(opts ...Option) (*Reaction, error) {
	o := gatherOptions(opts...)
	if err := validateInputs(o); err != nil {
		return nil, err
	}

	r := &Reaction{maxMoles: o.maxMoles}
	for _, s := range Slots {
		r.species[s] = Species{
			Coefficient: o.coefficients[s],
			Initial:     o.initial[s],
			MolarMass:   o.molarMasses[s],
		}
	}
	r.refresh()
	r.derive()

	return r, nil
}

// SetCoefficient replaces the stoichiometric coefficient of slot s.
//
// Errors: ErrUnknownSlot, ErrInvalidCoefficientSign, ErrDegenerateReaction.
func (r *Reaction) SetCoefficient(s Slot, v float64) error {
	if err := validateSlot(s); err != nil {
		return err
	}
	candidate := r.Coefficients()
	candidate[s] = v
	if err := validateCoefficients(candidate); err != nil {
		return err
	}

	r.species[s].Coefficient = v
	r.stale = true

	return nil
}

// SetInitialAmount replaces the initial amount of slot s. In Mass mode v is in
// grams and is converted to moles with the slot's molar mass before the
// [0, MaxMoles] check.
//
// Errors: ErrUnknownSlot, ErrUnknownMode, ErrAmountOutOfBounds.
func (r *Reaction) SetInitialAmount(s Slot, v float64, mode Mode) error {
	if err := validateSlot(s); err != nil {
		return err
	}
	if err := validateMode(mode); err != nil {
		return err
	}
	n := FromDisplay(v, r.species[s].MolarMass, mode)
	if err := validateAmount(s, n, r.maxMoles); err != nil {
		return err
	}

	r.species[s].Initial = n
	r.stale = true

	return nil
}

// SetMolarMass replaces the molar mass of slot s and rescales the stored
// initial amount so its mass is preserved:
//
//	n_new = n_old · M_old / M_new
//
// Errors: ErrUnknownSlot, ErrInvalidMolarMass, and ErrAmountOutOfBounds when
// the rescaled amount would exceed MaxMoles.
func (r *Reaction) SetMolarMass(s Slot, mm float64) error {
	if err := validateSlot(s); err != nil {
		return err
	}
	if err := validateMolarMass(s, mm); err != nil {
		return err
	}
	sp := r.species[s]
	n := sp.Initial * sp.MolarMass / mm
	if err := validateAmount(s, n, r.maxMoles); err != nil {
		return err
	}

	r.species[s].Initial = n
	r.species[s].MolarMass = mm
	r.stale = true

	return nil
}

// SetExtentByPercent moves ξ to p percent of the feasible range. p is clamped
// to [0, 100]; NaN is treated as 0. This is the slider path and never fails.
// An infeasible reaction stays at ξ = 0, 0%.
func (r *Reaction) SetExtentByPercent(p float64) {
	if r.stale {
		r.refresh()
	}
	if !r.feasible {
		r.extent, r.percent = 0, 0
		return
	}
	switch {
	case math.IsNaN(p) || p < 0:
		p = 0
	case p > 100:
		p = 100
	}

	r.percent = p
	r.extent = clamp(r.rng.PercentToExtent(p), r.rng)
}

// SetExtentDirect moves ξ to x. Values outside [Min, Max] are rejected with
// ErrOutOfRangeExtent and the prior extent is kept.
func (r *Reaction) SetExtentDirect(x float64) error {
	if r.stale {
		r.refresh()
	}
	if !r.feasible && x != 0 {
		return fmt.Errorf("extent %v, reaction cannot progress: %w", x, ErrOutOfRangeExtent)
	}
	if err := r.rng.CheckExtent(x); err != nil {
		return err
	}

	r.extent = x
	r.percent = r.rng.ExtentToPercent(x)

	return nil
}

// Recompute derives per-species amounts and returns a render-ready Snapshot.
//
// inputsChanged=true forces the full path: range, ξ reset to 0, percent and
// the amounts at Min/Max. inputsChanged=false only refreshes Change/End for
// the current ξ, unless an input setter has run since the last full pass.
//
// When the range has collapsed the Snapshot is still returned (Feasible=false,
// Percent=0) together with a wrapped ErrInfeasibleReaction.
func (r *Reaction) Recompute(inputsChanged bool) (Snapshot, error) {
	if inputsChanged || r.stale {
		r.refresh()
	}
	r.derive()

	snap := r.snapshot()
	if !r.feasible {
		return snap, fmt.Errorf("recompute: %w", ErrInfeasibleReaction)
	}

	return snap, nil
}

// refresh is the "inputs changed" path: recalculates the range, resets ξ and
// fills the Initial, AtMin and AtMax rows.
func (r *Reaction) refresh() {
	rng, err := CalcRange(r.Coefficients(), r.initialAmounts())
	r.feasible = err == nil
	if !rng.Bounded() {
		// Overflowed bounds: keep every derived amount finite.
		rng = Range{}
	}
	r.rng = rng

	// Min <= 0 <= Max always holds for non-negative amounts, so ξ = 0 (the
	// state the user typed in) is inside the range, collapsed or not.
	r.extent = 0
	r.percent = rng.ExtentToPercent(0)

	var sp Species
	for _, s := range Slots {
		sp = r.species[s]
		r.table.put(RowInitial, s, sp.Initial)
		r.table.put(RowAtMin, s, nonNegative(AmountAt(sp.Initial, sp.Coefficient, rng.Min)))
		r.table.put(RowAtMax, s, nonNegative(AmountAt(sp.Initial, sp.Coefficient, rng.Max)))
	}
	r.stale = false
}

// derive is the cheap path: Change and End rows for the current ξ.
func (r *Reaction) derive() {
	var sp Species
	for _, s := range Slots {
		sp = r.species[s]
		r.table.put(RowChange, s, ChangeAt(sp.Coefficient, r.extent))
		r.table.put(RowEnd, s, nonNegative(AmountAt(sp.Initial, sp.Coefficient, r.extent)))
	}
}

// snapshot copies the table into moles and mass views.
func (r *Reaction) snapshot() Snapshot {
	snap := Snapshot{
		Range:    r.rng,
		Extent:   r.extent,
		Percent:  r.percent,
		Feasible: r.feasible,
	}
	var sp Species
	for _, s := range Slots {
		sp = r.species[s]
		moles := Amounts{
			Initial: r.table.get(RowInitial, s),
			Change:  r.table.get(RowChange, s),
			End:     r.table.get(RowEnd, s),
			AtMin:   r.table.get(RowAtMin, s),
			AtMax:   r.table.get(RowAtMax, s),
		}
		snap.Slots[s] = SlotAmounts{
			Slot:        s,
			Coefficient: sp.Coefficient,
			MolarMass:   sp.MolarMass,
			Moles:       moles,
			Mass:        moles.scaled(sp.MolarMass),
		}
	}

	return snap
}

// scaled converts every field of a to mass units.
func (a Amounts) scaled(molarMass float64) Amounts {
	return Amounts{
		Initial: ToDisplay(a.Initial, molarMass, Mass),
		Change:  ToDisplay(a.Change, molarMass, Mass),
		End:     ToDisplay(a.End, molarMass, Mass),
		AtMin:   ToDisplay(a.AtMin, molarMass, Mass),
		AtMax:   ToDisplay(a.AtMax, molarMass, Mass),
	}
}

// nonNegative absorbs rounding residue at the range ends (e.g. −5e−17).
func nonNegative(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return x
}

// clamp keeps x inside rng.
func clamp(x float64, rng Range) float64 {
	return math.Max(rng.Min, math.Min(rng.Max, x))
}

// ---------- Accessors ----------

// Species returns the inputs of slot s.
func (r *Reaction) Species(s Slot) (Species, error) {
	if err := validateSlot(s); err != nil {
		return Species{}, err
	}

	return r.species[s], nil
}

// Coefficients returns a copy of the six coefficients.
func (r *Reaction) Coefficients() [SlotCount]float64 {
	var c [SlotCount]float64
	for _, s := range Slots {
		c[s] = r.species[s].Coefficient
	}

	return c
}

// initialAmounts returns a copy of the six initial amounts in moles.
func (r *Reaction) initialAmounts() [SlotCount]float64 {
	var n [SlotCount]float64
	for _, s := range Slots {
		n[s] = r.species[s].Initial
	}

	return n
}

// Range returns the feasible range as of the last full recompute.
func (r *Reaction) Range() Range { return r.rng }

// Feasible reports whether the last full recompute produced a non-empty range.
func (r *Reaction) Feasible() bool { return r.feasible }

// Extent returns the current ξ.
func (r *Reaction) Extent() float64 { return r.extent }

// Percent returns the current percent complete.
func (r *Reaction) Percent() float64 { return r.percent }

// MaxMoles returns the configured upper bound for stored amounts.
func (r *Reaction) MaxMoles() float64 { return r.maxMoles }

// Stale reports whether an input changed since the last full recompute.
func (r *Reaction) Stale() bool { return r.stale }

// Table returns a copy of the amount table as of the last Recompute.
func (r *Reaction) Table() Table { return r.table }
