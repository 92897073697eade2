// File: methods_vertices.go
// Role: Vertex incidence bookkeeping & neighbor queries.
//
// Determinism:
//   - Neighbors(), NeighborEdges() and Incidences() follow insertion order.
//
// Cache:
//   - Every mutating method clears the vertex cache before returning.
package core

import "fmt"

// Cache returns the vertex's private memo table.
func (v *Vertex) Cache() *Cache { return &v.cache }

// Invalidate clears every derived value cached on the vertex.
//
// Implementation:
//   - Stage 1: Drop the cache map; the next read recomputes lazily.
//
// Notes:
//   - Chemistry layers call this when an attribute feeding occupied or free
//     valency changes (charge, multiplicity, valency, incident bond order).
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vertex) Invalidate() { v.cache.Clear() }

// AddNeighbor registers n as a neighbor reachable through l.
//
// Implementation:
//   - Stage 1: Clear the cache.
//   - Stage 2: Replace the neighbor if l is already registered, otherwise append.
//
// Behavior highlights:
//   - Edges are the keys: registering a second, distinct edge to the same
//     neighbor creates a second incidence.
//
// Inputs:
//   - n: neighbor vertex (outer value, e.g. *chem.Atom).
//   - l: edge joining the two vertices.
//
// Complexity:
//   - Time O(d) for the duplicate check, Space O(1) amortized.
func (v *Vertex) AddNeighbor(n Node, l Link) {
	v.Invalidate()
	for i := range v.incidences {
		if sameLink(v.incidences[i].Link, l) {
			v.incidences[i].Node = n
			return
		}
	}
	v.incidences = append(v.incidences, Incidence{Link: l, Node: n})
}

// RemoveNeighbor removes the first incidence leading to n.
//
// Implementation:
//   - Stage 1: Clear the cache.
//   - Stage 2: Scan incidences (disconnected ones included) for n.
//   - Stage 3: Delete the match, preserving the order of the rest.
//
// Errors:
//   - ErrNeighborNotFound: if no incidence leads to n.
//
// Complexity:
//   - Time O(d), Space O(1).
func (v *Vertex) RemoveNeighbor(n Node) error {
	v.Invalidate()
	for i := range v.incidences {
		if sameNode(v.incidences[i].Node, n) {
			v.incidences = append(v.incidences[:i], v.incidences[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no neighbor %s", ErrNeighborNotFound, v, describe(n))
}

// RemoveEdgeAndNeighbor removes the incidence keyed by l.
//
// Errors:
//   - ErrEdgeNotFound: if l is not incident to v.
//
// Complexity:
//   - Time O(d), Space O(1).
func (v *Vertex) RemoveEdgeAndNeighbor(l Link) error {
	v.Invalidate()
	i := v.indexOfLink(l)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, v)
	}
	v.incidences = append(v.incidences[:i], v.incidences[i+1:]...)
	return nil
}

// indexOfLink returns the position of l among the incidences, or -1.
func (v *Vertex) indexOfLink(l Link) int {
	for i := range v.incidences {
		if sameLink(v.incidences[i].Link, l) {
			return i
		}
	}
	return -1
}

// Neighbors returns the vertices reachable through connected edges.
func (v *Vertex) Neighbors() []Node {
	out := make([]Node, 0, len(v.incidences))
	for _, inc := range v.incidences {
		if !inc.Link.CoreEdge().disconnected {
			out = append(out, inc.Node)
		}
	}
	return out
}

// NeighborEdges returns the connected incident edges.
func (v *Vertex) NeighborEdges() []Link {
	out := make([]Link, 0, len(v.incidences))
	for _, inc := range v.incidences {
		if !inc.Link.CoreEdge().disconnected {
			out = append(out, inc.Link)
		}
	}
	return out
}

// Incidences returns the connected (edge, neighbor) pairs in insertion order.
func (v *Vertex) Incidences() []Incidence {
	out := make([]Incidence, 0, len(v.incidences))
	for _, inc := range v.incidences {
		if !inc.Link.CoreEdge().disconnected {
			out = append(out, inc)
		}
	}
	return out
}

// AllIncidences returns every registered pair, disconnected edges included.
func (v *Vertex) AllIncidences() []Incidence {
	out := make([]Incidence, len(v.incidences))
	copy(out, v.incidences)
	return out
}

// Degree is the number of neighbors over connected edges.
func (v *Vertex) Degree() int {
	d := 0
	for _, inc := range v.incidences {
		if !inc.Link.CoreEdge().disconnected {
			d++
		}
	}
	return d
}

// NeighborConnectedVia returns the vertex at the other side of l.
//
// Errors:
//   - ErrEdgeNotFound: if l is not incident to v.
func (v *Vertex) NeighborConnectedVia(l Link) (Node, error) {
	for _, inc := range v.incidences {
		if sameLink(inc.Link, l) {
			return inc.Node, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, v)
}

// EdgeLeadingTo returns the first edge joining v to n, if any.
func (v *Vertex) EdgeLeadingTo(n Node) (Link, bool) {
	for _, inc := range v.incidences {
		if sameNode(inc.Node, n) {
			return inc.Link, true
		}
	}
	return nil, false
}

// NeighborsWithDistance returns neighbors whose Properties["d"] equals d.
// Distances are written by traversal algorithms; unmarked neighbors are skipped.
func (v *Vertex) NeighborsWithDistance(d int) []Node {
	var out []Node
	for _, n := range v.Neighbors() {
		if x, ok := n.CoreVertex().Properties["d"].(int); ok && x == d {
			out = append(out, n)
		}
	}
	return out
}

// String renders the vertex label, value and degree.
func (v *Vertex) String() string {
	if v == nil {
		return "vertex <nil>"
	}
	return fmt.Sprintf("vertex %s, value=%v, degree=%d", v.ID, v.Value, v.Degree())
}

// describe formats a Node for error messages without assuming its kind.
func describe(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return n.CoreVertex().ID
}
