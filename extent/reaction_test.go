package extent_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rxnprogress/extent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDefault builds the default reaction and fails the test on error.
func newDefault(t *testing.T, opts ...extent.Option) *extent.Reaction {
	t.Helper()
	r, err := extent.New(opts...)
	require.NoError(t, err)

	return r
}

// TestNew_Defaults verifies the startup reaction 2A + B → 2X.
func TestNew_Defaults(t *testing.T) {
	r := newDefault(t)

	assert.Equal(t, [extent.SlotCount]float64{-2, -1, 0, 2, 0, 0}, r.Coefficients())
	assert.Equal(t, extent.Range{Min: 0, Max: 0.5}, r.Range())
	assert.True(t, r.Feasible())
	assert.Equal(t, 0.0, r.Extent())
	assert.Equal(t, 0.0, r.Percent())
	assert.Equal(t, float64(extent.DefaultMaxMoles), r.MaxMoles())
	assert.False(t, r.Stale())
}

// TestNew_RejectsInvalidOptions covers each validator through New.
func TestNew_RejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  extent.Option
		want error
	}{
		{"positive reactant", extent.WithCoefficients([extent.SlotCount]float64{1, -1, 0, 2, 0, 0}), extent.ErrInvalidCoefficientSign},
		{"negative product", extent.WithCoefficients([extent.SlotCount]float64{-1, 0, 0, 2, -1, 0}), extent.ErrInvalidCoefficientSign},
		{"NaN coefficient", extent.WithCoefficients([extent.SlotCount]float64{math.NaN(), -1, 0, 2, 0, 0}), extent.ErrInvalidCoefficientSign},
		{"no reactants", extent.WithCoefficients([extent.SlotCount]float64{0, 0, 0, 2, 0, 0}), extent.ErrDegenerateReaction},
		{"no products", extent.WithCoefficients([extent.SlotCount]float64{-1, 0, 0, 0, 0, 0}), extent.ErrDegenerateReaction},
		{"negative amount", extent.WithInitialAmounts([extent.SlotCount]float64{-1, 1, 0, 0, 0, 0}), extent.ErrAmountOutOfBounds},
		{"huge amount", extent.WithInitialAmounts([extent.SlotCount]float64{1, 1e8, 0, 0, 0, 0}), extent.ErrAmountOutOfBounds},
		{"zero molar mass", extent.WithMolarMasses([extent.SlotCount]float64{1, 1, 1, 0, 1, 1}), extent.ErrInvalidMolarMass},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extent.New(tc.opt)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestWithMaxMoles_PanicsOnNonsense: a non-positive bound is a programmer error.
func TestWithMaxMoles_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { extent.WithMaxMoles(0) })
	assert.Panics(t, func() { extent.WithMaxMoles(math.Inf(1)) })
	assert.NotPanics(t, func() { extent.WithMaxMoles(5) })
}

// TestRecompute_FullExtent walks the default reaction to completion.
func TestRecompute_FullExtent(t *testing.T) {
	r := newDefault(t)

	r.SetExtentByPercent(100)
	snap, err := r.Recompute(false)
	require.NoError(t, err)

	assert.Equal(t, extent.Range{Min: 0, Max: 0.5}, snap.Range)
	assert.Equal(t, 0.5, snap.Extent)
	assert.Equal(t, 100.0, snap.Percent)

	want := [extent.SlotCount]float64{0, 0.5, 0, 1, 0, 0}
	for _, s := range extent.Slots {
		assert.InDelta(t, want[s], snap.Slots[s].Moles.End, 1e-12, "end amount of %s", s)
	}
	assert.Equal(t, -1.0, snap.Slots[extent.A].Moles.Change)
	assert.Equal(t, 1.0, snap.Slots[extent.X].Moles.Change)
	assert.Equal(t, 0.0, snap.Slots[extent.C].Moles.Change, "spectators never change")
}

// TestRecompute_Extremes checks the Min/Max columns on a reaction that can
// also run backwards.
func TestRecompute_Extremes(t *testing.T) {
	r := newDefault(t, extent.WithInitialAmounts([extent.SlotCount]float64{1, 1, 0, 2, 0, 0}))

	snap, err := r.Recompute(true)
	require.NoError(t, err)
	assert.Equal(t, extent.Range{Min: -1, Max: 0.5}, snap.Range)
	assert.InDelta(t, 200.0/3, snap.Percent, 1e-9, "ξ = 0 sits two thirds along [-1, 0.5]")

	a := snap.Slots[extent.A].Moles
	assert.Equal(t, 3.0, a.AtMin)
	assert.Equal(t, 0.0, a.AtMax)
	x := snap.Slots[extent.X].Moles
	assert.Equal(t, 0.0, x.AtMin)
	assert.Equal(t, 3.0, x.AtMax)

	for _, sa := range snap.Slots {
		assert.GreaterOrEqual(t, sa.Moles.AtMin, 0.0)
		assert.GreaterOrEqual(t, sa.Moles.AtMax, 0.0)
	}
}

// TestRecompute_Infeasible: all participants empty → typed error, but the
// snapshot is still displayable.
func TestRecompute_Infeasible(t *testing.T) {
	r := newDefault(t, extent.WithInitialAmounts([extent.SlotCount]float64{}))

	snap, err := r.Recompute(true)
	assert.ErrorIs(t, err, extent.ErrInfeasibleReaction)
	assert.False(t, snap.Feasible)
	assert.Equal(t, 0.0, snap.Percent)
	assert.Equal(t, 0.0, snap.Extent)

	r.SetExtentByPercent(60)
	assert.Equal(t, 0.0, r.Extent(), "collapsed range keeps ξ at its only value")
	assert.Equal(t, 0.0, r.Percent())

	snap, err = r.Recompute(false)
	assert.ErrorIs(t, err, extent.ErrInfeasibleReaction)
	assert.Equal(t, 0.0, snap.Percent)
	assert.ErrorIs(t, r.SetExtentDirect(0.1), extent.ErrOutOfRangeExtent)
	assert.NoError(t, r.SetExtentDirect(0))
}

// TestRecompute_OverflowingRange keeps every number finite when a tiny
// coefficient pushes the range to +Inf.
func TestRecompute_OverflowingRange(t *testing.T) {
	r := newDefault(t,
		extent.WithCoefficients([extent.SlotCount]float64{-1e-310, 0, 0, 1, 0, 0}),
		extent.WithInitialAmounts([extent.SlotCount]float64{1e6, 0, 0, 0, 0, 0}),
	)

	for _, p := range []float64{0, 50, 100} {
		r.SetExtentByPercent(p)
		snap, err := r.Recompute(false)
		require.ErrorIs(t, err, extent.ErrInfeasibleReaction, "p=%v", p)
		assert.False(t, snap.Feasible)
		assert.Equal(t, 0.0, snap.Extent, "p=%v", p)
		assert.Equal(t, 0.0, snap.Percent, "p=%v", p)
		assert.True(t, snap.Range.Contains(snap.Extent))
		for _, sa := range snap.Slots {
			for _, v := range []float64{sa.Moles.Initial, sa.Moles.Change, sa.Moles.End, sa.Moles.AtMin, sa.Moles.AtMax} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "slot %s p=%v: %v", sa.Slot, p, v)
			}
		}
	}
	assert.ErrorIs(t, r.SetExtentDirect(5), extent.ErrOutOfRangeExtent)
}

// TestSetCoefficient_ValidateThenCommit ensures rejected edits leave no trace.
func TestSetCoefficient_ValidateThenCommit(t *testing.T) {
	r := newDefault(t)
	before := r.Coefficients()

	err := r.SetCoefficient(extent.A, 1)
	assert.ErrorIs(t, err, extent.ErrInvalidCoefficientSign)
	err = r.SetCoefficient(extent.Y, -3)
	assert.ErrorIs(t, err, extent.ErrInvalidCoefficientSign)
	err = r.SetCoefficient(extent.Slot(9), -1)
	assert.ErrorIs(t, err, extent.ErrUnknownSlot)

	assert.Equal(t, before, r.Coefficients())
	assert.False(t, r.Stale())
}

// TestSetCoefficient_Degenerate: zeroing every reactant is refused.
func TestSetCoefficient_Degenerate(t *testing.T) {
	r := newDefault(t)

	require.NoError(t, r.SetCoefficient(extent.A, 0))
	err := r.SetCoefficient(extent.B, 0)
	assert.ErrorIs(t, err, extent.ErrDegenerateReaction)
	assert.Equal(t, -1.0, r.Coefficients()[extent.B])

	err = r.SetCoefficient(extent.X, 0)
	assert.ErrorIs(t, err, extent.ErrDegenerateReaction, "no product left")
}

// TestSetCoefficient_RecomputesRange verifies the edit reaches the range.
func TestSetCoefficient_RecomputesRange(t *testing.T) {
	r := newDefault(t)

	require.NoError(t, r.SetCoefficient(extent.A, -1))
	assert.True(t, r.Stale())

	snap, err := r.Recompute(true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, snap.Range.Max)
}

// TestSetInitialAmount covers bounds, NaN and mass-mode conversion.
func TestSetInitialAmount(t *testing.T) {
	r := newDefault(t, extent.WithMolarMasses([extent.SlotCount]float64{2, 1, 1, 1, 1, 1}))

	assert.ErrorIs(t, r.SetInitialAmount(extent.A, -0.1, extent.Moles), extent.ErrAmountOutOfBounds)
	assert.ErrorIs(t, r.SetInitialAmount(extent.A, math.NaN(), extent.Moles), extent.ErrAmountOutOfBounds)
	assert.ErrorIs(t, r.SetInitialAmount(extent.A, extent.DefaultMaxMoles+1, extent.Moles), extent.ErrAmountOutOfBounds)
	assert.ErrorIs(t, r.SetInitialAmount(extent.A, 1, extent.Mode(7)), extent.ErrUnknownMode)
	sp, err := r.Species(extent.A)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sp.Initial, "rejected edits keep the prior amount")

	require.NoError(t, r.SetInitialAmount(extent.A, extent.DefaultMaxMoles, extent.Moles))
	require.NoError(t, r.SetInitialAmount(extent.A, 10, extent.Mass))
	sp, _ = r.Species(extent.A)
	assert.Equal(t, 5.0, sp.Initial, "10 g at 2 g/mol is 5 mol")
}

// TestSetInitialAmount_MaxMolesOption uses a tighter configured bound.
func TestSetInitialAmount_MaxMolesOption(t *testing.T) {
	r := newDefault(t, extent.WithMaxMoles(10))

	require.NoError(t, r.SetInitialAmount(extent.B, 10, extent.Moles))
	assert.ErrorIs(t, r.SetInitialAmount(extent.B, 10.5, extent.Moles), extent.ErrAmountOutOfBounds)
}

// TestSetMolarMass_PreservesMass: 4 mol at 1 g/mol becomes 2 mol at 2 g/mol.
func TestSetMolarMass_PreservesMass(t *testing.T) {
	r := newDefault(t, extent.WithInitialAmounts([extent.SlotCount]float64{4, 1, 0, 0, 0, 0}))

	require.NoError(t, r.SetMolarMass(extent.A, 2))
	sp, err := r.Species(extent.A)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sp.Initial)
	assert.Equal(t, 2.0, sp.MolarMass)
	assert.Equal(t, 4.0, sp.Initial*sp.MolarMass)
}

// TestSetMolarMass_Rejects covers invalid masses and overflow of MaxMoles.
func TestSetMolarMass_Rejects(t *testing.T) {
	r := newDefault(t, extent.WithMaxMoles(10), extent.WithInitialAmounts([extent.SlotCount]float64{4, 1, 0, 0, 0, 0}))

	assert.ErrorIs(t, r.SetMolarMass(extent.A, 0), extent.ErrInvalidMolarMass)
	assert.ErrorIs(t, r.SetMolarMass(extent.A, -2), extent.ErrInvalidMolarMass)
	assert.ErrorIs(t, r.SetMolarMass(extent.A, math.Inf(1)), extent.ErrInvalidMolarMass)
	assert.ErrorIs(t, r.SetMolarMass(extent.A, 0.1), extent.ErrAmountOutOfBounds, "4 mol would become 40 mol")

	sp, _ := r.Species(extent.A)
	assert.Equal(t, extent.Species{Coefficient: -2, Initial: 4, MolarMass: 1}, sp)
	assert.False(t, r.Stale())
}

// TestSetExtentDirect_OutOfRange: 0.6 outside [0, 0.5] keeps the prior ξ.
func TestSetExtentDirect_OutOfRange(t *testing.T) {
	r := newDefault(t)

	require.NoError(t, r.SetExtentDirect(0.25))
	assert.Equal(t, 50.0, r.Percent())

	err := r.SetExtentDirect(0.6)
	assert.ErrorIs(t, err, extent.ErrOutOfRangeExtent)
	assert.Equal(t, 0.25, r.Extent())
	assert.Equal(t, 50.0, r.Percent())
}

// TestSetExtentByPercent_Clamps covers the slider edge values.
func TestSetExtentByPercent_Clamps(t *testing.T) {
	r := newDefault(t)

	r.SetExtentByPercent(150)
	assert.Equal(t, 100.0, r.Percent())
	assert.Equal(t, 0.5, r.Extent())

	r.SetExtentByPercent(-3)
	assert.Equal(t, 0.0, r.Extent())

	r.SetExtentByPercent(math.NaN())
	assert.Equal(t, 0.0, r.Percent())
}

// TestRecompute_ExtentOnlyKeepsExtremes: the cheap path moves End/Change but
// leaves the Min/Max columns and ξ alone.
func TestRecompute_ExtentOnlyKeepsExtremes(t *testing.T) {
	r := newDefault(t)

	r.SetExtentByPercent(50)
	snap, err := r.Recompute(false)
	require.NoError(t, err)
	assert.Equal(t, 0.25, snap.Extent)
	assert.Equal(t, 0.5, snap.Slots[extent.A].Moles.End)
	assert.Equal(t, 0.0, snap.Slots[extent.A].Moles.AtMax)

	// A full recompute starts over from the entered state.
	snap, err = r.Recompute(true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, snap.Extent)
	assert.Equal(t, 1.0, snap.Slots[extent.A].Moles.End)
}

// TestRecompute_StaleForcesFullPath: an input edit is never hidden behind
// inputsChanged=false.
func TestRecompute_StaleForcesFullPath(t *testing.T) {
	r := newDefault(t)
	r.SetExtentByPercent(100)

	require.NoError(t, r.SetInitialAmount(extent.B, 0.25, extent.Moles))
	snap, err := r.Recompute(false)
	require.NoError(t, err)
	assert.Equal(t, extent.Range{Min: 0, Max: 0.25}, snap.Range)
	assert.Equal(t, 0.0, snap.Extent)
	assert.False(t, r.Stale())
}

// TestRecompute_MassView verifies the mass-scaled copy of every column.
func TestRecompute_MassView(t *testing.T) {
	r := newDefault(t,
		extent.WithInitialAmounts([extent.SlotCount]float64{1, 1, 0, 2, 0, 0}),
		extent.WithMolarMasses([extent.SlotCount]float64{2, 3, 1, 5, 1, 1}),
	)

	snap, err := r.Recompute(true)
	require.NoError(t, err)

	x := snap.Slots[extent.X]
	assert.Equal(t, 10.0, x.Mass.Initial)
	assert.Equal(t, 15.0, x.Mass.AtMax)
	assert.Equal(t, 3.0, snap.Peak(extent.Moles))
	assert.Equal(t, 15.0, snap.Peak(extent.Mass))

	got, err := snap.Amounts(extent.B, extent.Mass)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Initial)

	_, err = snap.Amounts(extent.Slot(-1), extent.Mass)
	assert.ErrorIs(t, err, extent.ErrUnknownSlot)
	_, err = snap.Amounts(extent.A, extent.Mode(3))
	assert.ErrorIs(t, err, extent.ErrUnknownMode)
}

// TestSnapshot_Participating lists non-spectators in order.
func TestSnapshot_Participating(t *testing.T) {
	r := newDefault(t)
	snap, err := r.Recompute(false)
	require.NoError(t, err)

	assert.Equal(t, []extent.Slot{extent.A, extent.B, extent.X}, snap.Participating())
}
