// Package extent: functional configuration for New. This file defines:
//   - documented defaults (the reaction shown on first load),
//   - Option / Options (functional options with internal state),
//   - WithX constructors (panic only on nonsensical programmer values),
//   - gatherOptions helper.
//
// Reaction inputs passed through WithCoefficients / WithInitialAmounts /
// WithMolarMasses are user data: New validates them and returns sentinel
// errors instead of panicking.
package extent

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultMaxMoles is the upper bound for any stored amount, in moles.
const DefaultMaxMoles = 10_000_000

// DefaultCoefficients describes 2A + B → 2X.
var DefaultCoefficients = [SlotCount]float64{-2, -1, 0, 2, 0, 0}

// DefaultInitialAmounts starts with one mole each of A and B.
var DefaultInitialAmounts = [SlotCount]float64{1, 1, 0, 0, 0, 0}

// DefaultMolarMasses uses 1 g/mol for every species.
var DefaultMolarMasses = [SlotCount]float64{1, 1, 1, 1, 1, 1}

// ---------- Internal panic messages (no magic strings) ----------

const panicMaxMolesInvalid = "extent: WithMaxMoles: bound must be finite and > 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxMoles     float64
	coefficients [SlotCount]float64
	initial      [SlotCount]float64
	molarMasses  [SlotCount]float64
}

// defaultOptions returns the zero-configuration reaction.
func defaultOptions() Options {
	return Options{
		maxMoles:     DefaultMaxMoles,
		coefficients: DefaultCoefficients,
		initial:      DefaultInitialAmounts,
		molarMasses:  DefaultMolarMasses,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxMoles sets the inclusive upper bound for stored amounts.
// Panics if m is not finite or not positive.
func WithMaxMoles(m float64) Option {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		panic(panicMaxMolesInvalid)
	}

	return func(o *Options) { o.maxMoles = m }
}

// WithCoefficients sets the six stoichiometric coefficients (A, B, C, X, Y, Z).
func WithCoefficients(c [SlotCount]float64) Option {
	return func(o *Options) { o.coefficients = c }
}

// WithInitialAmounts sets the six initial amounts, in moles.
func WithInitialAmounts(n [SlotCount]float64) Option {
	return func(o *Options) { o.initial = n }
}

// WithMolarMasses sets the six molar masses, in g/mol.
func WithMolarMasses(mm [SlotCount]float64) Option {
	return func(o *Options) { o.molarMasses = mm }
}
