package extent

import (
	"fmt"
	"strings"
)

// Row selects one derived quantity in a Table.
type Row int

const (
	RowInitial Row = iota // amount at ξ = 0
	RowChange             // ξ·ν at the current extent
	RowEnd                // amount at the current extent
	RowAtMin              // amount at Range.Min
	RowAtMax              // amount at Range.Max
)

// RowCount is the number of rows in a Table.
const RowCount = 5

var rowNames = [RowCount]string{"initial", "change", "end", "at-min", "at-max"}

// String returns the row label.
func (r Row) String() string {
	if r < 0 || r >= RowCount {
		return fmt.Sprintf("Row(%d)", int(r))
	}

	return rowNames[r]
}

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, row Row, s Slot, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, int(row), int(s), err)
}

// Table is a fixed RowCount×SlotCount grid of molar amounts, stored
// row-major in a flat array. The zero value is an all-zero table.
type Table struct {
	data [RowCount * SlotCount]float64
}

// indexOf computes the flat index for (row, slot) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Table) indexOf(method string, row Row, s Slot) (int, error) {
	if row < 0 || row >= RowCount {
		return 0, tableErrorf(method, row, s, ErrOutOfRange)
	}
	if !s.Valid() {
		return 0, tableErrorf(method, row, s, ErrOutOfRange)
	}

	return int(row)*SlotCount + int(s), nil
}

// At retrieves the amount at (row, slot).
func (t *Table) At(row Row, s Slot) (float64, error) {
	idx, err := t.indexOf("At", row, s)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set assigns v at (row, slot).
func (t *Table) Set(row Row, s Slot, v float64) error {
	idx, err := t.indexOf("Set", row, s)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// get is the unchecked accessor used internally once indices are known good.
func (t *Table) get(row Row, s Slot) float64 {
	return t.data[int(row)*SlotCount+int(s)]
}

// put is the unchecked counterpart of get.
func (t *Table) put(row Row, s Slot, v float64) {
	t.data[int(row)*SlotCount+int(s)] = v
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(RowCount·SlotCount).
func (t *Table) String() string {
	var sb strings.Builder
	var (
		r Row
		s Slot
	)
	for r = 0; r < RowCount; r++ {
		sb.WriteString("[")
		for s = A; s <= Z; s++ {
			fmt.Fprintf(&sb, "%g", t.get(r, s))
			if s < Z {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
