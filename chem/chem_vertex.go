package chem

import (
	"fmt"

	"github.com/katalvlaran/lvchem/core"
)

// Cache keys for derived valence quantities.
const (
	keyOccupied = "occupied_valency"
	keyFree     = "free_valency"
)

// AromaticOrder is the bond order code of an unlocalized aromatic bond.
const AromaticOrder = 4

// Valenced is the capability set shared by every chemical vertex kind.
type Valenced interface {
	core.Node
	Valency() int
	OccupiedValency() int
	FreeValency() int
	FreeSites() int
	Matches(other Valenced) bool
}

// orderer is satisfied by links that carry a bond order (*Bond).
type orderer interface {
	Order() int
}

// aromaticer is satisfied by links that carry an aromatic flag (*Bond).
type aromaticer interface {
	IsAromatic() bool
}

// orderOf returns the bond order of l; links without one count as single.
func orderOf(l core.Link) int {
	if o, ok := l.(orderer); ok {
		return o.Order()
	}
	return 1
}

// ChemVertex is the common base of chemical vertices: atoms, groups and
// pseudo-atoms. Coordinates are optional; unset components read as 0.
type ChemVertex struct {
	core.Vertex

	charge       int
	multiplicity int
	valency      int
	freeSites    int

	coords    [3]float64
	hasCoords bool

	// occupied overrides OccupiedValency for specializations (Atom).
	occupied func() int
}

// NewChemVertex returns a neutral, singlet vertex with valency 0.
func NewChemVertex() *ChemVertex {
	v := &ChemVertex{}
	v.init(v, nil)
	return v
}

func (v *ChemVertex) init(owner core.Node, occupied func() int) {
	v.Vertex.Init(owner)
	v.multiplicity = 1
	v.occupied = occupied
}

// Charge returns the formal charge.
func (v *ChemVertex) Charge() int { return v.charge }

// SetCharge sets the formal charge and invalidates derived valences.
func (v *ChemVertex) SetCharge(c int) {
	v.Invalidate()
	v.charge = c
}

// Multiplicity returns the spin multiplicity (1 for singlet).
func (v *ChemVertex) Multiplicity() int { return v.multiplicity }

// SetMultiplicity sets the spin multiplicity; values below 1 are rejected.
func (v *ChemVertex) SetMultiplicity(m int) error {
	if m < 1 {
		return fmt.Errorf("%w: multiplicity %d", ErrInvalidValue, m)
	}
	v.Invalidate()
	v.multiplicity = m
	return nil
}

// Valency returns the current valency.
func (v *ChemVertex) Valency() int { return v.valency }

// SetValency sets the valency; negative values are rejected.
func (v *ChemVertex) SetValency(val int) error {
	if val < 0 {
		return fmt.Errorf("%w: valency %d", ErrInvalidValue, val)
	}
	v.setValency(val)
	return nil
}

func (v *ChemVertex) setValency(val int) {
	v.Invalidate()
	v.valency = val
}

// OccupiedValency sums the orders of connected bonds, aromatic bonds as 1.
func (v *ChemVertex) OccupiedValency() int {
	i := 0
	for _, l := range v.NeighborEdges() {
		o := orderOf(l)
		if o == AromaticOrder {
			o = 1
		}
		i += o
	}
	return i
}

// occupiedValency dispatches to the specialization when one is installed.
func (v *ChemVertex) occupiedValency() int {
	if v.occupied != nil {
		return v.occupied()
	}
	return v.OccupiedValency()
}

// FreeValency is valency − occupied valency, memoized until invalidated.
func (v *ChemVertex) FreeValency() int {
	if x, ok := v.Cache().Get(keyFree); ok {
		return x
	}
	x := v.valency - v.occupiedValency()
	v.Cache().Set(keyFree, x)
	return x
}

// FreeSites returns the requested free sites left after occupied valency,
// never below zero.
func (v *ChemVertex) FreeSites() int {
	really := v.freeSites - v.occupiedValency()
	if really < 0 {
		return 0
	}
	return really
}

// RequestedFreeSites returns the raw value passed to SetFreeSites.
func (v *ChemVertex) RequestedFreeSites() int { return v.freeSites }

// SetFreeSites records the requested number of open connection points.
func (v *ChemVertex) SetFreeSites(n int) { v.freeSites = n }

// Matches reports whether other may stand in for v in pattern matching.
// A generic chemical vertex matches anything except itself.
func (v *ChemVertex) Matches(other Valenced) bool {
	return !core.SameNode(v, other)
}

// SetCoords sets 2D (z := 0) or 3D coordinates.
func (v *ChemVertex) SetCoords(c ...float64) error {
	switch len(c) {
	case 2:
		v.coords = [3]float64{c[0], c[1], 0}
	case 3:
		v.coords = [3]float64{c[0], c[1], c[2]}
	default:
		return fmt.Errorf("%w: got %d", ErrCoordinateArity, len(c))
	}
	v.hasCoords = true
	return nil
}

// ClearCoords marks the coordinates unset.
func (v *ChemVertex) ClearCoords() {
	v.coords = [3]float64{}
	v.hasCoords = false
}

// Coords returns (x, y, z), or nil while unset.
func (v *ChemVertex) Coords() []float64 {
	if !v.hasCoords {
		return nil
	}
	return []float64{v.coords[0], v.coords[1], v.coords[2]}
}

// HasCoords reports whether coordinates were set.
func (v *ChemVertex) HasCoords() bool { return v.hasCoords }

// X returns the x coordinate (0 when unset).
func (v *ChemVertex) X() float64 { return v.coords[0] }

// Y returns the y coordinate (0 when unset).
func (v *ChemVertex) Y() float64 { return v.coords[1] }

// Z returns the z coordinate (0 when unset).
func (v *ChemVertex) Z() float64 { return v.coords[2] }

// HasAromaticBonds reports whether any connected bond is flagged aromatic.
func (v *ChemVertex) HasAromaticBonds() bool {
	for _, l := range v.NeighborEdges() {
		if a, ok := l.(aromaticer); ok && a.IsAromatic() {
			return true
		}
	}
	return false
}

// BondOrderChanged is called by an incident bond whose order changed.
func (v *ChemVertex) BondOrderChanged() { v.Invalidate() }

// HydrogenCount is zero for a generic chemical vertex.
func (v *ChemVertex) HydrogenCount() int { return 0 }

// Weight is zero for a generic chemical vertex; Atom reports its element's.
func (v *ChemVertex) Weight() float64 { return 0 }

// copyInto writes v's copyable attributes into dst.
func (v *ChemVertex) copyInto(dst *ChemVertex) {
	v.Vertex.CopyInto(&dst.Vertex)
	dst.charge = v.charge
	dst.multiplicity = v.multiplicity
	dst.valency = v.valency
	dst.freeSites = v.freeSites
	dst.coords = v.coords
	dst.hasCoords = v.hasCoords
	dst.Invalidate()
}

// Copy returns a new ChemVertex with the copyable attributes and no topology.
func (v *ChemVertex) Copy() *ChemVertex {
	other := NewChemVertex()
	v.copyInto(other)
	return other
}
