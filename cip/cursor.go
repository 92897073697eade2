package cip

import "github.com/katalvlaran/lvchem/chem"

// Cursor flattens a Sequence into ordinals with a Gap after every layer.
type Cursor struct {
	seq       *Sequence
	buf       []int
	exhausted bool
}

// NewCursor opens a Cursor over the Sequence of a seen from cameFrom.
//
// Errors:
//   - ErrNilAtom, ErrOptionViolation, or the context error.
func NewCursor(a, cameFrom *chem.Atom, opts ...Option) (*Cursor, error) {
	s, err := NewSequence(a, cameFrom, opts...)
	if err != nil {
		return nil, err
	}
	return &Cursor{seq: s}, nil
}

// Next returns the next token: an ordinal or Gap. After the last layer it
// returns Gap on every call.
func (c *Cursor) Next() int {
	if len(c.buf) == 0 {
		if c.exhausted {
			return Gap
		}
		layer, ok := c.seq.NextLayer()
		if !ok {
			c.exhausted = true
			return Gap
		}
		for _, a := range layer {
			c.buf = append(c.buf, a.Ordinal())
		}
		c.buf = append(c.buf, Gap)
	}
	x := c.buf[0]
	c.buf = c.buf[1:]
	return x
}

// Exhausted reports whether the Cursor has nothing left but Gap.
func (c *Cursor) Exhausted() bool { return c.exhausted && len(c.buf) == 0 }
