// Package bfs provides breadth-first search over core vertices,
// returning unweighted distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvchem/core"
)

// DistanceKey is the Properties key written by MarkDistances and read by
// core.Vertex.NeighborsWithDistance.
const DistanceKey = "d"

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	node  core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search from start over connected edges,
// applying any number of functional Options.
// Returns ErrStartNil for a nil start, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func BFS(start core.Node, opts ...Option) (*BFSResult, error) {
	if start == nil {
		return nil, ErrStartNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts: o,
		ctx:  o.Ctx,
		res: &BFSResult{
			Depth:  make(map[*core.Vertex]int),
			Parent: make(map[*core.Vertex]core.Node),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// MarkDistances runs BFS from start and stores every reached vertex's
// distance in its Properties under DistanceKey. Unreached vertices keep
// whatever they had.
func MarkDistances(start core.Node, opts ...Option) (*BFSResult, error) {
	res, err := BFS(start, opts...)
	if err != nil {
		return res, err
	}
	for _, n := range res.Order {
		v := n.CoreVertex()
		if v.Properties == nil {
			v.Properties = make(map[string]interface{})
		}
		v.Properties[DistanceKey] = res.Depth[v]
	}
	return res, nil
}

// enqueue records depth and parent, calls OnEnqueue, and adds n to the queue.
func (w *walker) enqueue(n core.Node, d int, parent core.Node) {
	v := n.CoreVertex()
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.node.CoreVertex().ID, err)
	}
	return nil
}

// enqueueNeighbors walks the connected incidences of item in insertion
// order, applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, inc := range item.node.CoreVertex().Incidences() {
		if !w.opts.FilterNeighbor(item.node, inc.Node, inc.Link) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[inc.Node.CoreVertex()]; !seen {
			w.enqueue(inc.Node, nextDepth, item.node)
		}
	}
}
