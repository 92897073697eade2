// Package periodic provides the periodic-table lookup capability consumed
// by the chemistry layer: element records (valences, ordinal number,
// electronegativity, weight, valence electrons) and the cation/anion
// acceptance tables used by valence reconciliation.
//
// Tables are plain data described in HCL. Default returns the embedded
// table; Parse and Loader read caller-supplied files.
package periodic

import "errors"

var (
	// ErrInvalidTable indicates a table document failed to parse or validate.
	ErrInvalidTable = errors.New("periodic: invalid table")

	// ErrUnknownElement indicates a symbol that is not present in the table.
	ErrUnknownElement = errors.New("periodic: unknown element")
)

// Element describes one chemical element.
type Element struct {
	// Symbol is the element code, e.g. "C" or "Cl".
	Symbol string `validate:"required,max=3"`

	// Ordinal is the atomic number; CIP precedence compares it.
	Ordinal int `validate:"gte=1"`

	// Valences lists the allowed valences in ascending order. The first one
	// is adopted when an atom takes this symbol.
	Valences []int `validate:"required,min=1,dive,gte=0"`

	// Electronegativity is the Pauling value; 0 means undefined.
	Electronegativity float64 `validate:"gte=0"`

	// Weight is the standard atomic weight.
	Weight float64 `validate:"gt=0"`

	// ValenceElectrons is the number of electrons in the valence shell.
	ValenceElectrons int `validate:"gte=0"`
}

// HasElectronegativity reports whether the element defines an electronegativity.
func (e Element) HasElectronegativity() bool { return e.Electronegativity > 0 }

// Table is the lookup capability the chemistry layer consumes.
type Table interface {
	// Lookup returns the element for symbol.
	Lookup(symbol string) (Element, bool)

	// CationAcceptance returns the highest valence at which a +1 charge on
	// the element raises its bonding capacity instead of lowering it.
	CationAcceptance(symbol string) (int, bool)

	// AnionAcceptance is the analogue of CationAcceptance for a -1 charge.
	AnionAcceptance(symbol string) (int, bool)
}
