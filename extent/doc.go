// Package extent models the progress of a single chemical reaction through
// its extent of reaction ξ.
//
// 🚀 What is the extent model?
//
//	A reaction with six species slots (A, B, C reactants; X, Y, Z products)
//	is described by signed stoichiometric coefficients and initial molar
//	amounts. Every species amount is a linear function of ξ:
//
//	  n_i(ξ) = n_i(0) + ξ·ν_i
//
//	The feasible extent range [Min, Max] keeps every species non-negative:
//	  • reactants (ν < 0) cap Max at -n/ν (depletion),
//	  • products  (ν > 0) floor Min at -n/ν (reverse reaction stops at 0),
//	  • spectators (ν = 0) never bound the range.
//
// ✨ Key features:
//   - pure range calculator (CalcRange) and percent mapper (Range methods)
//   - Reaction aggregate with validate-then-commit setters
//   - cheap extent-only updates vs. full recompute (Recompute(inputsChanged))
//   - one display conversion point for moles/mass (ToDisplay / FromDisplay)
//   - typed sentinel errors, matched with errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rxnprogress/extent"
//
//	r, err := extent.New() // 2A + B → 2X, 1 mol A, 1 mol B
//	if err != nil {
//	  // handle ErrDegenerateReaction, ErrInvalidCoefficientSign, ...
//	}
//	r.SetExtentByPercent(100)
//	snap, err := r.Recompute(false)
//	fmt.Println(snap.Extent, snap.Slots[extent.X].Moles.End) // 0.5 1
//
// Concurrency:
//
//	A Reaction is single-session state driven by one event loop. It carries
//	no locks; callers that share one across goroutines must serialise access.
//
// See example_test.go for runnable walkthroughs.
package extent
