// Package core provides the chemistry-agnostic graph primitives that every
// lvchem structure is built from: Vertex, Edge and the per-vertex Cache.
//
// Unlike a container-centric graph, core keeps the topology on the vertices
// themselves. Each Vertex owns an insertion-ordered list of incidences
// (edge → neighbor) and a private cache of derived quantities. Higher layers
// (chem.Atom, chem.Bond) embed Vertex and Edge and reach them through the
// Node and Link capability interfaces.
//
// Topology rules:
//
//   - An Edge has either no endpoints or exactly two (SetVertices enforces it).
//     Both endpoints may be the same vertex; ring-closure representations rely on it.
//   - Edges are the identity of a connection: two distinct edges may join the
//     same pair of vertices.
//   - A disconnected Edge stays registered on its vertices but is skipped by
//     Neighbors, NeighborEdges, Incidences and Degree ("soft delete").
//
// Cache contract:
//
//	Every mutation of a vertex's incidences (AddNeighbor, RemoveNeighbor,
//	RemoveEdgeAndNeighbor) and every change of an edge's disconnected flag
//	clears the cache of the affected vertices before returning. Derived values
//	stored in the cache are therefore never stale.
//
// Core Methods:
//
//	// Vertex bookkeeping
//	AddNeighbor(n Node, l Link)                 // O(1)
//	RemoveNeighbor(n Node) error                // O(d)
//	RemoveEdgeAndNeighbor(l Link) error         // O(d)
//	Neighbors() []Node                          // O(d), insertion order
//	NeighborEdges() []Link                      // O(d), insertion order
//	Degree() int                                // O(d)
//
//	// Edge
//	SetVertices(vs ...Node) error               // 0 or 2 endpoints
//	NeighborEdges() []Link                      // edges sharing an endpoint
//	SetDisconnected(bool)                       // soft delete / restore
//
//	// Wiring helpers
//	Connect(a, b Node, l Link) error            // endpoints + both incidences
//	Detach(l Link) error                        // inverse of Connect
//
// Errors:
//
//	ErrNilNode          - a nil Node or Link was supplied.
//	ErrNeighborNotFound - RemoveNeighbor on a vertex that is not a neighbor.
//	ErrEdgeNotFound     - RemoveEdgeAndNeighbor/NeighborConnectedVia on a foreign edge.
//	ErrEndpointCount    - SetVertices with neither 0 nor 2 endpoints.
//
// Concurrency: none of the types are safe for concurrent mutation. A molecule
// is edited and queried from one goroutine at a time.
package core
