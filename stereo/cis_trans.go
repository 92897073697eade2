package stereo

import (
	"fmt"

	"github.com/katalvlaran/lvchem/core"
)

// CisTrans records the configuration around a double bond.
//
// References are ordered (a, x, y, b): a sits on the x end, b on the y end.
// The value tells whether a and b lie on the same or opposite sides.
type CisTrans struct {
	record
	center core.Link
}

// NewCisTrans builds a cis/trans record. center may be nil when the bond is
// not known yet.
//
// Errors:
//   - ErrReferenceCount: len(refs) != 4.
//   - ErrInvalidValue: value not in {Undefined, OppositeSide, SameSide}.
func NewCisTrans(center core.Link, refs []core.Node, value Value) (*CisTrans, error) {
	ct := &CisTrans{center: center}
	if err := ct.SetReferences(refs); err != nil {
		return nil, err
	}
	if err := ct.SetValue(value); err != nil {
		return nil, err
	}
	return ct, nil
}

// Kind implements Record.
func (ct *CisTrans) Kind() Kind { return KindCisTrans }

// Center returns the stereogenic bond (may be nil).
func (ct *CisTrans) Center() core.Link { return ct.center }

// SetCenter replaces the stereogenic bond.
func (ct *CisTrans) SetCenter(l core.Link) { ct.center = l }

// SetReferences replaces the participants.
//
// Errors:
//   - ErrReferenceCount: len(refs) != 4.
func (ct *CisTrans) SetReferences(refs []core.Node) error {
	return ct.setReferences(refs)
}

// SetValue sets the configuration code.
//
// Errors:
//   - ErrInvalidValue: v not in {Undefined, OppositeSide, SameSide}.
func (ct *CisTrans) SetValue(v Value) error {
	return ct.setValue(v, Undefined, OppositeSide, SameSide)
}

// GetOtherEnd returns the outer reference on the opposite side of the bond
// from ref: the last reference when ref is the first, otherwise the first.
//
// Errors:
//   - ErrMissingReference: ref is not among the references.
func (ct *CisTrans) GetOtherEnd(ref core.Node) (core.Node, error) {
	if ref == nil || ct.indexOf(ref) < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingReference, ref)
	}
	if sameReference(ref, ct.refs[0]) {
		return ct.refs[ReferenceCount-1], nil
	}
	return ct.refs[0], nil
}

var _ Record = (*CisTrans)(nil)
