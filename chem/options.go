package chem

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvchem/periodic"
)

// AtomOption configures NewAtom.
// Option constructors panic on meaningless input; NewAtom itself returns errors.
type AtomOption func(*atomConfig)

type atomConfig struct {
	table     periodic.Table
	log       logr.Logger
	charge    int
	isotope   *int
	hydrogens int
	coords    []float64
}

func defaultAtomConfig() atomConfig {
	return atomConfig{
		table: periodic.Default(),
		log:   logr.Discard(),
	}
}

// WithTable selects the periodic table used for symbol lookups.
func WithTable(t periodic.Table) AtomOption {
	if t == nil {
		panic("chem: WithTable(nil)")
	}
	return func(c *atomConfig) { c.table = t }
}

// WithLogger attaches a logger for valence escalation events.
func WithLogger(l logr.Logger) AtomOption {
	return func(c *atomConfig) { c.log = l }
}

// WithCharge sets the initial formal charge.
func WithCharge(charge int) AtomOption {
	return func(c *atomConfig) { c.charge = charge }
}

// WithIsotope sets the mass number; NewAtom rejects negative values.
func WithIsotope(mass int) AtomOption {
	return func(c *atomConfig) { c.isotope = &mass }
}

// WithExplicitHydrogens sets the hydrogens not represented as graph neighbors.
func WithExplicitHydrogens(n int) AtomOption {
	return func(c *atomConfig) { c.hydrogens = n }
}

// WithCoords sets initial 2D or 3D coordinates.
func WithCoords(xyz ...float64) AtomOption {
	return func(c *atomConfig) { c.coords = xyz }
}

// BondOption configures NewBond.
type BondOption func(*Bond)

// WithType sets the rendering/stereo category of the bond.
func WithType(t BondType) BondOption {
	if !t.valid() {
		panic("chem: WithType(" + string(rune(t)) + ")")
	}
	return func(b *Bond) { b.typ = t }
}

// WithAromaticity sets the aromatic flag without changing the order.
func WithAromaticity(a Aromaticity) BondOption {
	return func(b *Bond) { b.aromatic = a }
}
