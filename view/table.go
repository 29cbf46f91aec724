package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/message"

	"github.com/katalvlaran/rxnprogress/extent"
)

// WriteTable writes the extent readout followed by one row per species:
//
//	Extent ξ (moles)   0.25
//	Percent complete   50%
//
//	Species  Coefficient  Initial (moles)  Change (moles)  End (moles)
//	A        -2           1                -0.5            0.5
//
// A nil printer means English formatting. An infeasible snapshot gets a
// trailing notice instead of silently showing a frozen reaction.
func WriteTable(w io.Writer, snap extent.Snapshot, mode extent.Mode, p *message.Printer) error {
	if p == nil {
		p, _ = NewPrinter("")
	}
	unit := mode.Unit()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Extent ξ (moles)\t%s\n", formatAmount(p, snap.Extent))
	fmt.Fprintf(tw, "Percent complete\t%s\n", formatPercent(p, snap.Percent))
	fmt.Fprintf(tw, "Feasible range\t[%s, %s]\n", formatAmount(p, snap.Range.Min), formatAmount(p, snap.Range.Max))
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Species\tCoefficient\tInitial (%s)\tChange (%s)\tEnd (%s)\n", unit, unit, unit)
	for _, sa := range snap.Slots {
		a := sa.In(mode)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			sa.Slot,
			formatAmount(p, sa.Coefficient),
			formatAmount(p, a.Initial),
			formatAmount(p, a.Change),
			formatAmount(p, a.End),
		)
	}
	if !snap.Feasible {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "The reaction cannot progress: at least one reactant and one product taking part have no initial amount.")
	}

	return tw.Flush()
}
