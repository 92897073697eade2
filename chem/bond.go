package chem

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvchem/core"
	"github.com/katalvlaran/lvchem/stereo"
)

// BondType is the rendering/stereo category of a bond.
type BondType rune

// Bond types.
const (
	BondNormal BondType = 'n'
	BondWedge  BondType = 'w'
	BondHatch  BondType = 'h'
	BondAdder  BondType = 'a'
	BondBold   BondType = 'b'
	BondDash   BondType = 'd'
)

func (t BondType) valid() bool {
	switch t {
	case BondNormal, BondWedge, BondHatch, BondAdder, BondBold, BondDash:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t BondType) String() string { return string(rune(t)) }

// Aromaticity is the aromatic flag of a bond; the zero value means unset.
type Aromaticity int8

// Aromaticity states.
const (
	AromaticityUnset Aromaticity = iota
	Aromatic
	NotAromatic
)

// Bond is an Edge with ordered endpoints (start, end), a bond order and a
// rendering type.
//
// Orders 1–3 are explicit. Order 4 is the unlocalized aromatic state: it is
// stored as "no explicit order + aromatic flag", so Order reports 4 only
// while no explicit order has been set since.
type Bond struct {
	core.Edge

	order    int // 0: no explicit order
	aromatic Aromaticity
	typ      BondType

	stereo stereo.Record
}

// NewBond creates a detached bond of the given order (1–4).
//
// Errors:
//   - ErrInvalidValue: order outside 1..4.
func NewBond(order int, opts ...BondOption) (*Bond, error) {
	b := &Bond{typ: BondNormal}
	b.Properties = make(map[string]interface{})
	for _, opt := range opts {
		opt(b)
	}
	if err := b.SetOrder(order); err != nil {
		return nil, err
	}
	return b, nil
}

// MustBond is NewBond for statically known orders; it panics on error.
func MustBond(order int, opts ...BondOption) *Bond {
	b, err := NewBond(order, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Order returns 4 while the bond is unlocalized aromatic, otherwise the
// explicit order.
func (b *Bond) Order() int {
	if b.order == 0 && b.aromatic == Aromatic {
		return AromaticOrder
	}
	return b.order
}

// SetOrder sets the bond order and tells both endpoints their valences are
// stale. Order 4 clears the explicit order and sets the aromatic flag; any
// other order is stored explicitly and leaves the flag as it was, so ring
// membership stays visible through IsAromatic.
//
// Errors:
//   - ErrInvalidValue: order outside 1..4.
func (b *Bond) SetOrder(order int) error {
	if order < 1 || order > AromaticOrder {
		return fmt.Errorf("%w: bond order %d", ErrInvalidValue, order)
	}
	b.notifyEndpoints()
	if order == AromaticOrder {
		b.order = 0
		b.aromatic = Aromatic
		return nil
	}
	b.order = order
	return nil
}

// IsAromatic reports whether the aromatic flag is set.
func (b *Bond) IsAromatic() bool { return b.aromatic == Aromatic }

// Aromaticity returns the raw aromatic flag.
func (b *Bond) Aromaticity() Aromaticity { return b.aromatic }

// SetAromaticity changes the aromatic flag. Endpoints are notified because
// an unlocalized bond's order depends on it.
func (b *Bond) SetAromaticity(a Aromaticity) {
	b.notifyEndpoints()
	b.aromatic = a
}

// Type returns the rendering category.
func (b *Bond) Type() BondType { return b.typ }

// SetType sets the rendering category.
//
// Errors:
//   - ErrInvalidValue: t is not one of n, w, h, a, b, d.
func (b *Bond) SetType(t BondType) error {
	if !t.valid() {
		return fmt.Errorf("%w: bond type %q", ErrInvalidValue, rune(t))
	}
	b.typ = t
	return nil
}

// Stereochemistry returns the record annotating this bond, if any.
func (b *Bond) Stereochemistry() stereo.Record { return b.stereo }

// SetStereochemistry attaches (or with nil, detaches) a stereo record.
func (b *Bond) SetStereochemistry(r stereo.Record) { b.stereo = r }

// Atoms returns the endpoints as atoms when both are atoms.
func (b *Bond) Atoms() (*Atom, *Atom, bool) {
	vs := b.Vertices()
	if len(vs) != 2 {
		return nil, nil, false
	}
	a1, ok1 := vs[0].(*Atom)
	a2, ok2 := vs[1].(*Atom)
	return a1, a2, ok1 && ok2
}

// positioned is implemented by vertices carrying coordinates (*ChemVertex, *Atom).
type positioned interface {
	HasCoords() bool
	X() float64
	Y() float64
}

// Length is the 2D distance between the endpoints, or 0 when the bond has
// no endpoints or either endpoint lacks coordinates.
func (b *Bond) Length() float64 {
	vs := b.Vertices()
	if len(vs) != 2 {
		return 0
	}
	p1, ok1 := vs[0].(positioned)
	p2, ok2 := vs[1].(positioned)
	if !ok1 || !ok2 || !p1.HasCoords() || !p2.HasCoords() {
		return 0
	}
	return math.Hypot(p1.X()-p2.X(), p1.Y()-p2.Y())
}

// Matches reports whether the bonds have the same order.
func (b *Bond) Matches(other *Bond) bool {
	return other != nil && b.Order() == other.Order()
}

// Copy returns a detached bond carrying the disconnected flag, order,
// aromatic flag and type.
func (b *Bond) Copy() *Bond {
	other := &Bond{
		order:    b.order,
		aromatic: b.aromatic,
		typ:      b.typ,
	}
	other.Properties = make(map[string]interface{})
	b.Edge.CopyInto(&other.Edge)
	return other
}

// String implements fmt.Stringer.
func (b *Bond) String() string {
	vs := b.Vertices()
	if len(vs) != 2 {
		return "bond, no vertices set"
	}
	return fmt.Sprintf("bond between %v %v", vs[0], vs[1])
}

// orderListener is implemented by vertices that cache valence (*ChemVertex, *Atom).
type orderListener interface {
	BondOrderChanged()
}

func (b *Bond) notifyEndpoints() {
	for _, n := range b.Vertices() {
		if l, ok := n.(orderListener); ok {
			l.BondOrderChanged()
			continue
		}
		n.CoreVertex().Invalidate()
	}
}

var _ core.Link = (*Bond)(nil)
