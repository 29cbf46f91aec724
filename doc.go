// Package rxnprogress models how far a single chemical reaction has run,
// measured by its extent ξ, and renders the result as tables and charts.
//
// 🚀 What is rxnprogress?
//
//	A small, dependency-light toolkit built around one reaction with six
//	species slots:
//		• Reactants A, B, C with coefficients ≤ 0
//		• Products X, Y, Z with coefficients ≥ 0
//		• Feasible extent range from the initial amounts
//		• Slider-style percent ↔ extent mapping
//		• Moles or grams, with molar masses per slot
//		• Bar charts and extent line graphs (PNG, SVG)
//
// ✨ Why rxnprogress?
//
//   - Validate-then-commit setters – a rejected edit never leaves the model half changed
//   - Cheap extent-only recomputes for slider drags
//   - Plain values out – Snapshot carries everything a view needs
//
// Packages:
//
//	extent/                  — the reaction model: ranges, amounts, tables, snapshots
//	view/                    — text tables, number formatting and charts
//	internal/cmd/rxnprogress — CLI wiring: config, one-shot and interactive sessions
//	cmd/rxnprogress          — the binary
//	examples/                — worked reactions
//
// Quick ASCII example, 2A + B → 2X starting from 1 mol of A and B:
//
//	ξ:     0 ─────────────── 0.5
//	A:     1 ─────────────── 0     (limiting)
//	B:     1 ─────────────── 0.5
//	X:     0 ─────────────── 1
//
//	go install github.com/katalvlaran/rxnprogress/cmd/rxnprogress@latest
package rxnprogress
