package stereo

import "github.com/katalvlaran/lvchem/core"

// Tetrahedral records the configuration of a chirality center: looking at
// the center with the last reference behind it, the first three references
// run Clockwise or Anticlockwise.
type Tetrahedral struct {
	record
	center core.Node
}

// NewTetrahedral builds a tetrahedral record. center may be nil.
//
// Errors:
//   - ErrReferenceCount: len(refs) != 4.
//   - ErrInvalidValue: value not in {Undefined, Clockwise, Anticlockwise}.
func NewTetrahedral(center core.Node, refs []core.Node, value Value) (*Tetrahedral, error) {
	t := &Tetrahedral{center: center}
	if err := t.SetReferences(refs); err != nil {
		return nil, err
	}
	if err := t.SetValue(value); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind implements Record.
func (t *Tetrahedral) Kind() Kind { return KindTetrahedral }

// Center returns the stereocenter (may be nil).
func (t *Tetrahedral) Center() core.Node { return t.center }

// SetCenter replaces the stereocenter.
func (t *Tetrahedral) SetCenter(n core.Node) { t.center = n }

// SetReferences replaces the participants.
//
// Errors:
//   - ErrReferenceCount: len(refs) != 4.
func (t *Tetrahedral) SetReferences(refs []core.Node) error {
	return t.setReferences(refs)
}

// SetValue sets the configuration code.
//
// Errors:
//   - ErrInvalidValue: v not in {Undefined, Clockwise, Anticlockwise}.
func (t *Tetrahedral) SetValue(v Value) error {
	return t.setValue(v, Undefined, Clockwise, Anticlockwise)
}

var _ Record = (*Tetrahedral)(nil)
