package cip

import (
	"slices"

	"github.com/katalvlaran/lvchem/bfs"
	"github.com/katalvlaran/lvchem/chem"
	"github.com/katalvlaran/lvchem/core"
)

// tree is the breadth-first spanning tree below one root atom. Every atom
// appears at most once, at its shortest distance from the root; a ring
// closure ends the branch that would have revisited an atom.
type tree struct {
	children map[*core.Vertex][]*chem.Atom
}

// grow lays out the tree rooted at root with one bfs.BFS pass. cameFrom,
// when non-nil, is never entered. Non-atom neighbors are skipped.
//
// Complexity:
//   - Time O(V + E) over the atoms reachable from root, Space O(V).
func grow(root, cameFrom *chem.Atom, o Options) (*tree, error) {
	allowed := func(_, nbr core.Node, _ core.Link) bool {
		a, ok := nbr.(*chem.Atom)
		if !ok {
			return false
		}
		return cameFrom == nil || !core.SameNode(a, cameFrom)
	}
	res, err := bfs.BFS(root,
		bfs.WithContext(o.Ctx),
		bfs.WithMaxDepth(o.MaxDepth),
		bfs.WithFilterNeighbor(allowed),
	)
	if err != nil {
		return nil, err
	}

	t := &tree{children: make(map[*core.Vertex][]*chem.Atom, len(res.Order))}
	for _, n := range res.Order {
		p, ok := res.Parent[n.CoreVertex()]
		if !ok {
			continue // root
		}
		pv := p.CoreVertex()
		t.children[pv] = append(t.children[pv], n.(*chem.Atom))
	}
	return t, nil
}

// branch is a child Sequence with the ordinals it has produced so far.
type branch struct {
	seq     *Sequence
	history []int
	pending []*chem.Atom
}

// Sequence yields the atoms around one atom layer by layer, moving away
// from the atom it was entered from.
type Sequence struct {
	atom     *chem.Atom
	tree     *tree
	started  bool
	done     bool
	branches []*branch
}

// NewSequence opens a Sequence rooted at a. cameFrom, when non-nil, is
// excluded from the traversal together with everything reached only
// through it. Only WithContext and WithMaxDepth affect a Sequence.
//
// Errors:
//   - ErrNilAtom, ErrOptionViolation, or the context error.
func NewSequence(a, cameFrom *chem.Atom, opts ...Option) (*Sequence, error) {
	if a == nil {
		return nil, ErrNilAtom
	}
	o, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}
	return newSequence(a, cameFrom, o)
}

func newSequence(a, cameFrom *chem.Atom, o Options) (*Sequence, error) {
	t, err := grow(a, cameFrom, o)
	if err != nil {
		return nil, err
	}
	return &Sequence{atom: a, tree: t}, nil
}

// Atom returns the root of the sequence.
func (s *Sequence) Atom() *chem.Atom { return s.atom }

// Done reports whether every layer has been produced.
func (s *Sequence) Done() bool { return s.done }

// NextLayer returns the next layer of atoms, or false once the sequence is
// exhausted. Returned layers are never empty.
//
// Implementation:
//   - Stage 1: The first call returns the root and opens one branch per
//     child of the root in the breadth-first tree.
//   - Stage 2: Later calls advance every branch by one layer and drop the
//     branches that are exhausted.
//   - Stage 3: Branches are stable-sorted by accumulated ordinals,
//     descending, and their new layers concatenated in that order.
//
// Behavior highlights:
//   - Each atom is produced at most once over the life of the sequence, so
//     fused and bridged ring systems cost no more than chains.
//
// Complexity:
//   - Time O(n + b·log b) per call for n atoms above the new layer and b
//     live branches; O(V·D) for the whole sequence of depth D.
func (s *Sequence) NextLayer() ([]*chem.Atom, bool) {
	if s.done {
		return nil, false
	}
	if !s.started {
		s.started = true
		s.open()
		return []*chem.Atom{s.atom}, true
	}

	live := s.branches[:0]
	for _, b := range s.branches {
		layer, ok := b.seq.NextLayer()
		if !ok {
			continue
		}
		for _, a := range layer {
			b.history = append(b.history, a.Ordinal())
		}
		b.pending = layer
		live = append(live, b)
	}
	s.branches = live
	if len(s.branches) == 0 {
		s.done = true
		return nil, false
	}

	slices.SortStableFunc(s.branches, func(x, y *branch) int {
		return slices.Compare(y.history, x.history)
	})
	var out []*chem.Atom
	for _, b := range s.branches {
		out = append(out, b.pending...)
		b.pending = nil
	}
	return out, true
}

// open creates a branch for every child of the root in the tree.
func (s *Sequence) open() {
	for _, c := range s.tree.children[s.atom.CoreVertex()] {
		s.branches = append(s.branches, &branch{seq: &Sequence{atom: c, tree: s.tree}})
	}
}
