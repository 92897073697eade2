// Package bfs provides tunable options and error definitions
// for breadth-first search over core vertices.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvchem/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNil is returned when the start vertex is nil.
	ErrStartNil = errors.New("bfs: start vertex is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the search never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, with its depth.
	OnEnqueue func(n core.Node, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(n core.Node, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip an incidence by returning false.
	FilterNeighbor func(curr, neighbor core.Node, via core.Link) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.Node, int) {},
		OnDequeue:      func(core.Node, int) {},
		OnVisit:        func(core.Node, int) error { return nil },
		FilterNeighbor: func(_, _ core.Node, _ core.Link) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n core.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(n core.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips incidences when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Node, via core.Link) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start, keyed by embedded vertex.
//   - Parent: predecessor in the BFS tree, keyed by embedded vertex.
type BFSResult struct {
	Order  []core.Node
	Depth  map[*core.Vertex]int
	Parent map[*core.Vertex]core.Node
}

// DepthOf returns the distance of n from the start and whether n was reached.
func (r *BFSResult) DepthOf(n core.Node) (int, bool) {
	if n == nil {
		return 0, false
	}
	d, ok := r.Depth[n.CoreVertex()]
	return d, ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNotReached if dest was not reached.
func (r *BFSResult) PathTo(dest core.Node) ([]core.Node, error) {
	if _, ok := r.DepthOf(dest); !ok {
		return nil, ErrNotReached
	}
	// build reversed path
	path := []core.Node{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur.CoreVertex()]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
