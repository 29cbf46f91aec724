// Package view turns an extent.Snapshot into things people look at: a text
// table, a bar chart of initial vs. current amounts and a line graph of amount
// vs. extent with a marker at the current ξ.
//
// ✨ Key features:
//   - Round: significant-figure rounding with a fixed decimal cut-off
//   - WriteTable: locale-aware extent and species tables (golang.org/x/text)
//   - BarChart / LineGraph: go-chart/v2 charts, rendered by Render as PNG or SVG
//
// Every amount goes through extent.Snapshot's mode-aware accessors, so the
// moles/mass switch is handled in one place.
//
// ⚙️ Usage:
//
//	snap, _ := r.Recompute(false)
//	_ = view.WriteTable(os.Stdout, snap, extent.Moles, nil)
//	g, err := view.LineGraph(snap, extent.Moles)
//	if err == nil {
//	  _ = view.Render(f, g, view.PNG)
//	}
package view
