package chem

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvchem/core"
	"github.com/katalvlaran/lvchem/periodic"
	"github.com/katalvlaran/lvchem/stereo"
)

// Atom is a ChemVertex bound to a chemical element.
//
// Its valency is always one of the element's allowed valences: SetSymbol
// adopts the first, RaiseValency moves up the list, nothing moves it down.
type Atom struct {
	ChemVertex

	symbol            string
	ordinal           int
	isotope           int
	hasIsotope        bool
	explicitHydrogens int

	stereo stereo.Record

	table periodic.Table
	log   logr.Logger
}

// NewAtom creates an atom of the given element.
//
// Errors:
//   - ErrInvalidAtomSymbol: symbol is not in the table.
//   - ErrInvalidValue: negative isotope or explicit hydrogen count.
//   - ErrCoordinateArity: WithCoords with neither 2 nor 3 values.
func NewAtom(symbol string, opts ...AtomOption) (*Atom, error) {
	cfg := defaultAtomConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Atom{table: cfg.table, log: cfg.log}
	a.ChemVertex.init(a, a.OccupiedValency)
	if err := a.SetSymbol(symbol); err != nil {
		return nil, err
	}
	a.SetCharge(cfg.charge)
	if cfg.isotope != nil {
		if err := a.SetIsotope(*cfg.isotope); err != nil {
			return nil, err
		}
	}
	if err := a.SetExplicitHydrogens(cfg.hydrogens); err != nil {
		return nil, err
	}
	if cfg.coords != nil {
		if err := a.SetCoords(cfg.coords...); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// MustAtom is NewAtom for statically known symbols; it panics on error.
func MustAtom(symbol string, opts ...AtomOption) *Atom {
	a, err := NewAtom(symbol, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Symbol returns the element symbol.
func (a *Atom) Symbol() string { return a.symbol }

// Ordinal returns the atomic number of the element.
func (a *Atom) Ordinal() int { return a.ordinal }

// Table returns the periodic table the atom resolves its element against.
func (a *Atom) Table() periodic.Table { return a.table }

// SetSymbol changes the element. The valency resets to the element's first
// allowed valence and every derived quantity is invalidated.
//
// Errors:
//   - ErrInvalidAtomSymbol: symbol is not in the table; the atom is unchanged.
func (a *Atom) SetSymbol(symbol string) error {
	el, ok := a.table.Lookup(symbol)
	if !ok || len(el.Valences) == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAtomSymbol, symbol)
	}
	a.setValency(el.Valences[0])
	a.ordinal = el.Ordinal
	a.symbol = symbol
	return nil
}

// SetValency adopts one of the element's allowed valences.
//
// Errors:
//   - ErrInvalidValue: val is not in the element's valence list.
func (a *Atom) SetValency(val int) error {
	el, _ := a.table.Lookup(a.symbol)
	for _, v := range el.Valences {
		if v == val {
			a.setValency(val)
			return nil
		}
	}
	return fmt.Errorf("%w: valency %d not allowed for %s", ErrInvalidValue, val, a.symbol)
}

// Isotope returns the mass number and whether one is set.
func (a *Atom) Isotope() (int, bool) { return a.isotope, a.hasIsotope }

// SetIsotope sets the mass number.
//
// Errors:
//   - ErrInvalidValue: mass is negative.
func (a *Atom) SetIsotope(mass int) error {
	if mass < 0 {
		return fmt.Errorf("%w: isotope %d", ErrInvalidValue, mass)
	}
	a.isotope, a.hasIsotope = mass, true
	return nil
}

// ClearIsotope removes the mass number.
func (a *Atom) ClearIsotope() { a.isotope, a.hasIsotope = 0, false }

// ExplicitHydrogens returns the hydrogens not represented as graph neighbors.
func (a *Atom) ExplicitHydrogens() int { return a.explicitHydrogens }

// SetExplicitHydrogens sets the explicit hydrogen count.
//
// Errors:
//   - ErrInvalidValue: n is negative.
func (a *Atom) SetExplicitHydrogens(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: explicit hydrogens %d", ErrInvalidValue, n)
	}
	a.Invalidate()
	a.explicitHydrogens = n
	return nil
}

// Stereochemistry returns the record annotating this atom, if any.
func (a *Atom) Stereochemistry() stereo.Record { return a.stereo }

// SetStereochemistry attaches (or with nil, detaches) a stereo record.
func (a *Atom) SetStereochemistry(r stereo.Record) { a.stereo = r }

// NeighborAtoms returns the neighboring atoms over connected bonds. Vertices of
// other kinds are skipped.
func (a *Atom) NeighborAtoms() []*Atom {
	ns := a.Neighbors()
	out := make([]*Atom, 0, len(ns))
	for _, n := range ns {
		if na, ok := n.(*Atom); ok {
			out = append(out, na)
		}
	}
	return out
}

// Electronegativity returns the element's Pauling electronegativity, or
// false when the table does not define one.
func (a *Atom) Electronegativity() (float64, bool) {
	el, ok := a.table.Lookup(a.symbol)
	if !ok || !el.HasElectronegativity() {
		return 0, false
	}
	return el.Electronegativity, true
}

// Weight returns the element's atomic weight, 0 when unknown.
func (a *Atom) Weight() float64 {
	el, ok := a.table.Lookup(a.symbol)
	if !ok {
		return 0
	}
	return el.Weight
}

// Matches reports whether a can stand for other in pattern matching:
// same symbol, valency and multiplicity; charge is compared only when
// other carries a non-zero charge.
func (a *Atom) Matches(other Valenced) bool {
	o, ok := other.(*Atom)
	if !ok {
		return false
	}
	if a.symbol != o.symbol || a.valency != o.valency || a.multiplicity != o.multiplicity {
		return false
	}
	if o.charge != 0 && a.charge != o.charge {
		return false
	}
	return true
}

// Copy returns a new atom with the copyable attributes (value, charge,
// coordinates, multiplicity, valency, free sites, symbol, isotope, explicit
// hydrogens). Bonds and stereochemistry are not copied.
func (a *Atom) Copy() *Atom {
	other := &Atom{table: a.table, log: a.log}
	other.ChemVertex.init(other, other.OccupiedValency)
	a.ChemVertex.copyInto(&other.ChemVertex)
	other.symbol = a.symbol
	other.ordinal = a.ordinal
	other.isotope, other.hasIsotope = a.isotope, a.hasIsotope
	other.explicitHydrogens = a.explicitHydrogens
	return other
}

// FormulaDict returns element counts for this atom with implicit and
// explicit hydrogens folded in when positive.
func (a *Atom) FormulaDict() map[string]int {
	ret := periodic.FormulaDict(a.symbol)
	if h := a.FreeValency() + a.explicitHydrogens; h > 0 {
		ret["H"] += h
	}
	return ret
}

// String implements fmt.Stringer.
func (a *Atom) String() string { return fmt.Sprintf("atom '%s'", a.symbol) }

var _ Valenced = (*Atom)(nil)
var _ Valenced = (*ChemVertex)(nil)
var _ core.Node = (*Atom)(nil)
