package extent

import (
	"fmt"
	"strings"
)

// Slot identifies one of the six fixed species positions.
// A, B, C are reactants; X, Y, Z are products.
type Slot int

const (
	A Slot = iota
	B
	C
	X
	Y
	Z
)

// SlotCount is the number of species slots in a reaction.
const SlotCount = 6

// reactantCount splits the slot array: [0, reactantCount) are reactants.
const reactantCount = 3

var slotNames = [SlotCount]string{"A", "B", "C", "X", "Y", "Z"}

// Slots lists every slot in display order.
var Slots = [SlotCount]Slot{A, B, C, X, Y, Z}

// String returns the single-letter species name.
func (s Slot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}

	return slotNames[s]
}

// Valid reports whether s is one of A..Z.
func (s Slot) Valid() bool { return s >= A && s <= Z }

// IsReactant reports whether s is one of the reactant slots A, B, C.
func (s Slot) IsReactant() bool { return s >= A && s < Slot(reactantCount) }

// IsProduct reports whether s is one of the product slots X, Y, Z.
func (s Slot) IsProduct() bool { return s >= Slot(reactantCount) && s <= Z }

// ParseSlot maps a species name ("A".."Z", case-insensitive) to its Slot.
func ParseSlot(name string) (Slot, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range slotNames {
		if n == name {
			return Slot(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownSlot)
}

// Mode selects how amounts are presented. The model always stores moles;
// Mode only scales values on the way in and out.
type Mode int

const (
	// Moles presents amounts in moles.
	Moles Mode = iota

	// Mass presents amounts in grams (moles × molar mass).
	Mass
)

// String returns "moles" or "mass".
func (m Mode) String() string {
	switch m {
	case Moles:
		return "moles"
	case Mass:
		return "mass"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Unit returns the unit label used in table headers ("moles" or "grams").
func (m Mode) Unit() string {
	if m == Mass {
		return "grams"
	}

	return "moles"
}

// ParseMode accepts "mole", "moles", "mol", "mass", "gram", "grams" or "g".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mole", "moles", "mol":
		return Moles, nil
	case "mass", "gram", "grams", "g":
		return Mass, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Species holds the user inputs of a single slot.
type Species struct {
	Coefficient float64 // signed stoichiometric number; 0 = spectator
	Initial     float64 // initial amount in moles, in [0, MaxMoles]
	MolarMass   float64 // g/mol, > 0
}

// Participates reports whether the species takes part in the reaction.
func (s Species) Participates() bool { return s.Coefficient != 0 }

// Range is the feasible extent interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Amounts is one row of derived amounts for a slot, in a single unit.
type Amounts struct {
	Initial float64 // amount at ξ = 0
	Change  float64 // End - Initial
	End     float64 // amount at the current ξ
	AtMin   float64 // amount at Range.Min
	AtMax   float64 // amount at Range.Max
}

// SlotAmounts is the render-ready state of one species.
type SlotAmounts struct {
	Slot        Slot
	Coefficient float64
	MolarMass   float64
	Moles       Amounts
	Mass        Amounts
}

// In returns the amounts expressed in mode. Unknown modes fall back to moles.
func (s SlotAmounts) In(mode Mode) Amounts {
	if mode == Mass {
		return s.Mass
	}

	return s.Moles
}

// Snapshot is the full derived state handed to the presentation layer.
type Snapshot struct {
	Range    Range
	Extent   float64
	Percent  float64
	Feasible bool
	Slots    [SlotCount]SlotAmounts
}
