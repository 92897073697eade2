package cip

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvchem/chem"
)

// entry is one neighbor of the center with its token history.
type entry struct {
	atom    *chem.Atom
	cursor  *Cursor
	history []int
}

// walker encapsulates the mutable state of a ranking run.
type walker struct {
	center  *chem.Atom
	opts    Options
	entries []*entry
	rounds  int
}

func newWalker(center *chem.Atom, opts []Option) (*walker, error) {
	if center == nil {
		return nil, ErrNilAtom
	}
	o, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}
	w := &walker{center: center, opts: o}
	for _, n := range center.NeighborAtoms() {
		s, err := newSequence(n, center, o)
		if err != nil {
			return nil, err
		}
		w.entries = append(w.entries, &entry{atom: n, cursor: &Cursor{seq: s}})
	}
	return w, nil
}

// round pulls one token per entry and re-sorts the entries by history,
// highest first. The sort is stable so tied entries keep their order.
func (w *walker) round() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxRounds > 0 && w.rounds >= w.opts.MaxRounds {
		w.opts.Log.V(1).Info("round limit reached", "atom", w.center.ID, "rounds", w.rounds)
		return fmt.Errorf("%w: %d rounds at %s", ErrRoundLimit, w.rounds, w.center)
	}
	w.rounds++
	for _, e := range w.entries {
		e.history = append(e.history, e.cursor.Next())
	}
	slices.SortStableFunc(w.entries, func(x, y *entry) int {
		return slices.Compare(y.history, x.history)
	})
	if l := w.opts.Log.V(2); l.Enabled() {
		l.Info("cip round", "atom", w.center.ID, "round", w.rounds, "histories", w.histories())
	}
	return nil
}

// unique reports whether all histories differ. Entries are sorted, so only
// neighbors need comparing.
func (w *walker) unique() bool {
	for i := 1; i < len(w.entries); i++ {
		if slices.Equal(w.entries[i-1].history, w.entries[i].history) {
			return false
		}
	}
	return true
}

// deadTie reports whether two adjacent entries are equal and both exhausted:
// no further token can separate them.
func (w *walker) deadTie() bool {
	for i := 1; i < len(w.entries); i++ {
		a, b := w.entries[i-1], w.entries[i]
		if a.cursor.Exhausted() && b.cursor.Exhausted() && slices.Equal(a.history, b.history) {
			return true
		}
	}
	return false
}

// exhausted reports whether every cursor is exhausted.
func (w *walker) exhausted() bool {
	for _, e := range w.entries {
		if !e.cursor.Exhausted() {
			return false
		}
	}
	return true
}

func (w *walker) histories() [][]int {
	out := make([][]int, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.history
	}
	return out
}

func (w *walker) ranking(unique bool) Ranking {
	r := Ranking{
		Order:     make([]*chem.Atom, len(w.entries)),
		Histories: w.histories(),
		Unique:    unique,
	}
	for i, e := range w.entries {
		r.Order[i] = e.atom
	}
	return r
}

// RankNeighbors orders the neighbors of a by CIP precedence, highest first.
//
// Implementation:
//   - Stage 1: Open one Cursor per neighbor over its breadth-first tree,
//     excluding a itself.
//   - Stage 2: Each round appends one token to every history and stable-sorts.
//   - Stage 3: Stop when all histories differ (Unique) or when every cursor
//     is exhausted (best partial order, Unique false).
//
// Behavior highlights:
//   - Neighbors over disconnected bonds and non-atom neighbors are ignored.
//   - A single neighbor, or none, is trivially unique.
//
// Errors:
//   - ErrNilAtom, ErrOptionViolation, ErrRoundLimit, or the context error.
//
// Complexity:
//   - Time O(k·V·D) for k neighbors over a molecule of V atoms whose
//     branches reach depth D.
func RankNeighbors(a *chem.Atom, opts ...Option) (Ranking, error) {
	w, err := newWalker(a, opts)
	if err != nil {
		return Ranking{}, err
	}
	for !w.unique() {
		if w.exhausted() {
			w.opts.Log.V(1).Info("ranking not unique", "atom", a.ID, "rounds", w.rounds)
			return w.ranking(false), nil
		}
		if err := w.round(); err != nil {
			return w.ranking(false), err
		}
	}
	return w.ranking(true), nil
}

// IsChiral reports whether a is a chirality center judged by connectivity:
// at least four neighbors, all distinguishable by CIP precedence.
//
// Behavior highlights:
//   - Fewer than four neighbors: false without any traversal.
//   - Two branches whose histories stay equal after both are exhausted: false.
//
// Errors:
//   - ErrNilAtom, ErrOptionViolation, ErrRoundLimit, or the context error.
func IsChiral(a *chem.Atom, opts ...Option) (bool, error) {
	w, err := newWalker(a, opts)
	if err != nil {
		return false, err
	}
	if len(w.entries) < 4 {
		return false, nil
	}
	for !w.unique() {
		if err := w.round(); err != nil {
			return false, err
		}
		if w.deadTie() {
			w.opts.Log.V(1).Info("not chiral: tied branches", "atom", a.ID, "rounds", w.rounds)
			return false, nil
		}
	}
	w.opts.Log.V(1).Info("chiral", "atom", a.ID, "rounds", w.rounds)
	return true, nil
}
