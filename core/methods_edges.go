// File: methods_edges.go
// Role: Edge endpoints, soft deletion & the Connect/Detach wiring helpers.
//
// Determinism:
//   - NeighborEdges() lists the first endpoint's edges before the second's,
//     each side in its vertex's insertion order.
package core

import "fmt"

// SetVertices sets the endpoints of e.
//
// Implementation:
//   - Stage 1: Accept exactly zero or two endpoints (ErrEndpointCount otherwise).
//   - Stage 2: Store a private copy of the endpoint slice.
//
// Behavior highlights:
//   - Both endpoints may be the same vertex.
//   - Does not register the edge on the vertices; see Connect.
//
// Errors:
//   - ErrEndpointCount: len(vs) ∉ {0, 2}.
//   - ErrNilNode: one of two endpoints is nil.
func (e *Edge) SetVertices(vs ...Node) error {
	switch len(vs) {
	case 0:
		e.vertices = nil
		return nil
	case 2:
		if vs[0] == nil || vs[1] == nil {
			return ErrNilNode
		}
		e.vertices = []Node{vs[0], vs[1]}
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrEndpointCount, len(vs))
	}
}

// Vertices returns the endpoints in (start, end) order, or nil when unset.
func (e *Edge) Vertices() []Node {
	if len(e.vertices) == 0 {
		return nil
	}
	return []Node{e.vertices[0], e.vertices[1]}
}

// Other returns the endpoint opposite to n.
// For a self-loop both endpoints are n and n is returned.
func (e *Edge) Other(n Node) (Node, bool) {
	if len(e.vertices) != 2 {
		return nil, false
	}
	switch {
	case sameNode(e.vertices[0], n):
		return e.vertices[1], true
	case sameNode(e.vertices[1], n):
		return e.vertices[0], true
	}
	return nil, false
}

// Disconnected reports whether e is soft-deleted.
func (e *Edge) Disconnected() bool { return e.disconnected }

// SetDisconnected soft-deletes (true) or restores (false) e.
// The caches of both endpoints are cleared because their neighbor sets change.
func (e *Edge) SetDisconnected(d bool) {
	e.disconnected = d
	e.invalidateEndpoints()
}

// NeighborEdges returns the connected edges sharing an endpoint with e,
// excluding e itself.
func (e *Edge) NeighborEdges() []Link {
	a, b := e.NeighborEdgesBySide()
	return append(a, b...)
}

// NeighborEdgesBySide returns the connected edges around each endpoint
// separately: first those of the start vertex, then those of the end vertex.
func (e *Edge) NeighborEdgesBySide() ([]Link, []Link) {
	if len(e.vertices) != 2 {
		return nil, nil
	}
	return e.othersAt(e.vertices[0]), e.othersAt(e.vertices[1])
}

func (e *Edge) othersAt(n Node) []Link {
	var out []Link
	for _, l := range n.CoreVertex().NeighborEdges() {
		if l.CoreEdge() != e {
			out = append(out, l)
		}
	}
	return out
}

// invalidateEndpoints clears the cache of every endpoint of e.
func (e *Edge) invalidateEndpoints() {
	for _, n := range e.vertices {
		n.CoreVertex().Invalidate()
	}
}

// Connect joins a and b through l: it sets l's endpoints to (a, b) and
// registers the incidence on both vertices. A self-loop (a == b) is
// registered once.
//
// Errors:
//   - ErrNilNode: a, b or l is nil.
func Connect(a, b Node, l Link) error {
	if a == nil || b == nil || l == nil {
		return ErrNilNode
	}
	if err := l.CoreEdge().SetVertices(a, b); err != nil {
		return err
	}
	a.CoreVertex().AddNeighbor(b, l)
	if !sameNode(a, b) {
		b.CoreVertex().AddNeighbor(a, l)
	}
	return nil
}

// Detach undoes Connect: it removes l from both endpoints and clears them.
//
// Errors:
//   - ErrNilNode: l is nil.
//   - ErrEdgeNotFound: an endpoint does not know l; neither endpoint is changed.
func Detach(l Link) error {
	if l == nil {
		return ErrNilNode
	}
	e := l.CoreEdge()
	if len(e.vertices) != 2 {
		return fmt.Errorf("%w: edge has no endpoints", ErrEdgeNotFound)
	}
	a, b := e.vertices[0], e.vertices[1]
	// both sides must know l before either is touched
	for _, n := range e.vertices {
		if n.CoreVertex().indexOfLink(l) < 0 {
			return fmt.Errorf("%w: %s", ErrEdgeNotFound, n.CoreVertex())
		}
	}
	_ = a.CoreVertex().RemoveEdgeAndNeighbor(l)
	if !sameNode(a, b) {
		_ = b.CoreVertex().RemoveEdgeAndNeighbor(l)
	}
	e.vertices = nil
	return nil
}
