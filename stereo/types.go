package stereo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvchem/core"
)

// Sentinel errors for stereochemistry records.
var (
	// ErrReferenceCount indicates a reference list whose length is not 4.
	ErrReferenceCount = errors.New("stereo: wrong number of references")

	// ErrInvalidValue indicates a configuration value outside the variant's set.
	ErrInvalidValue = errors.New("stereo: invalid stereochemistry value")

	// ErrMissingReference indicates a node that the record does not reference.
	ErrMissingReference = errors.New("stereo: node is not referenced")
)

// ReferenceCount is the number of participants every record references.
const ReferenceCount = 4

// Value is a configuration code. Its meaning depends on the record kind.
type Value int

// Shared and cis/trans values.
const (
	Undefined    Value = 0
	OppositeSide Value = 1
	SameSide     Value = 2
)

// Tetrahedral values.
const (
	Clockwise     Value = 1
	Anticlockwise Value = 2
)

// Kind discriminates record variants.
type Kind int

// Record kinds.
const (
	KindCisTrans Kind = iota + 1
	KindTetrahedral
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCisTrans:
		return "cis/trans"
	case KindTetrahedral:
		return "tetrahedral"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Record is the behavior shared by every stereochemistry variant.
type Record interface {
	Kind() Kind
	References() []core.Node
	SetReferences(refs []core.Node) error
	Value() Value
	SetValue(v Value) error
}

// record carries the fields common to all variants.
type record struct {
	refs  []core.Node
	value Value
}

// References returns a copy of the ordered participants.
func (r *record) References() []core.Node {
	out := make([]core.Node, len(r.refs))
	copy(out, r.refs)
	return out
}

// Value returns the configuration code.
func (r *record) Value() Value { return r.value }

func (r *record) setReferences(refs []core.Node) error {
	if len(refs) != ReferenceCount {
		return fmt.Errorf("%w: got %d, want %d", ErrReferenceCount, len(refs), ReferenceCount)
	}
	r.refs = make([]core.Node, ReferenceCount)
	copy(r.refs, refs)
	return nil
}

// setValue stores v if allowed contains it.
func (r *record) setValue(v Value, allowed ...Value) error {
	for _, a := range allowed {
		if v == a {
			r.value = v
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrInvalidValue, int(v))
}

// indexOf returns the position of n among the references, or -1.
func (r *record) indexOf(n core.Node) int {
	for i, ref := range r.refs {
		if sameReference(ref, n) {
			return i
		}
	}
	return -1
}

// ExplicitHydrogen stands in for a hydrogen that is not a graph vertex.
type ExplicitHydrogen struct {
	core.Vertex
}

// NewExplicitHydrogen returns a fresh placeholder.
func NewExplicitHydrogen() *ExplicitHydrogen {
	h := &ExplicitHydrogen{}
	h.Init(h)
	return h
}

// String implements fmt.Stringer.
func (h *ExplicitHydrogen) String() string { return "explicit hydrogen" }

// sameReference compares references: placeholders are all equal to each
// other, everything else by vertex identity.
func sameReference(a, b core.Node) bool {
	_, ha := a.(*ExplicitHydrogen)
	_, hb := b.(*ExplicitHydrogen)
	if ha || hb {
		return ha && hb
	}
	return core.SameNode(a, b)
}
