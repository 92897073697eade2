// Package core defines Vertex, Edge and Cache, the Node/Link capability
// interfaces, and the sentinel errors of the graph primitive layer.
//
// Errors:
//
//	ErrNilNode          - nil Node or Link argument.
//	ErrNeighborNotFound - requested neighbor is not connected to the vertex.
//	ErrEdgeNotFound     - requested edge is not incident to the vertex.
//	ErrEndpointCount    - an edge was given neither 0 nor 2 endpoints.
package core

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates a nil Node or Link was passed where a value is required.
	ErrNilNode = errors.New("core: nil node or link")

	// ErrNeighborNotFound indicates an operation referenced a vertex that is not a neighbor.
	ErrNeighborNotFound = errors.New("core: neighbor not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not incident.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEndpointCount indicates an edge was given a number of endpoints other than 0 or 2.
	ErrEndpointCount = errors.New("core: edge needs exactly 0 or 2 endpoints")
)

// Node is implemented by every value that embeds a Vertex.
// CoreVertex returns the embedded primitive; its pointer is the node identity.
type Node interface {
	CoreVertex() *Vertex
}

// Link is implemented by every value that embeds an Edge.
// CoreEdge returns the embedded primitive; its pointer is the link identity.
type Link interface {
	CoreEdge() *Edge
}

// Incidence pairs an incident edge with the vertex it leads to.
type Incidence struct {
	Link Link
	Node Node
}

// Vertex is a graph node that stores its own incidences.
//
// ID is a free-form label (a random UUID unless the caller sets one).
// Value holds an arbitrary associated object and is carried over by Copy.
// Properties is scratch space for algorithms (distances, marks) and is not copied.
type Vertex struct {
	// ID labels the vertex in logs and String output.
	ID string

	// Value stores any object associated with the vertex.
	Value interface{}

	// Properties stores intermediate algorithm data such as distances.
	Properties map[string]interface{}

	// incidences keeps edge → neighbor pairs in insertion order.
	incidences []Incidence

	// cache holds derived quantities; cleared on every topology mutation.
	cache Cache

	// owner is the outer value embedding this vertex (nil: the vertex itself).
	owner Node
}

// Edge connects exactly two vertices, or none while it is being built.
//
// Disconnected edges stay registered on their endpoints but are invisible to
// neighbor and degree queries.
type Edge struct {
	// Properties stores intermediate algorithm data. It is not copied.
	Properties map[string]interface{}

	vertices     []Node
	disconnected bool
}

// Cache is a small memo table of derived per-vertex quantities.
// The zero value is ready to use.
type Cache struct {
	entries map[string]int
}

// NewVertex returns a standalone Vertex labelled with a random UUID.
func NewVertex() *Vertex {
	v := &Vertex{}
	v.Init(nil)
	return v
}

// NewEdge returns an Edge, optionally with its two endpoints already set.
// Endpoint registration on the vertices is left to Connect or the caller.
func NewEdge(vs ...Node) (*Edge, error) {
	e := &Edge{Properties: make(map[string]interface{})}
	if err := e.SetVertices(vs...); err != nil {
		return nil, err
	}
	return e, nil
}

// Init prepares an embedded Vertex. owner is the outer value that embeds the
// vertex; neighbors of other vertices will be reported as owner, so callers
// can type-assert them back to their concrete kind. A nil owner means the
// vertex stands for itself.
func (v *Vertex) Init(owner Node) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Properties == nil {
		v.Properties = make(map[string]interface{})
	}
	v.owner = owner
	v.cache.Clear()
}

// CoreVertex implements Node.
func (v *Vertex) CoreVertex() *Vertex { return v }

// Self returns the outer Node this vertex is embedded in (or the vertex itself).
func (v *Vertex) Self() Node {
	if v.owner != nil {
		return v.owner
	}
	return v
}

// CoreEdge implements Link.
func (e *Edge) CoreEdge() *Edge { return e }

// Get returns a cached value and whether it was present.
func (c *Cache) Get(key string) (int, bool) {
	x, ok := c.entries[key]
	return x, ok
}

// Set stores a derived value under key.
func (c *Cache) Set(key string, x int) {
	if c.entries == nil {
		c.entries = make(map[string]int)
	}
	c.entries[key] = x
}

// Len reports the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }

// Clear drops every cached entry.
func (c *Cache) Clear() { c.entries = nil }

// sameNode compares two nodes by the identity of their embedded Vertex.
func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.CoreVertex() == b.CoreVertex()
}

// sameLink compares two links by the identity of their embedded Edge.
func sameLink(a, b Link) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.CoreEdge() == b.CoreEdge()
}

// SameNode reports whether a and b wrap the same Vertex.
func SameNode(a, b Node) bool { return sameNode(a, b) }

// SameLink reports whether a and b wrap the same Edge.
func SameLink(a, b Link) bool { return sameLink(a, b) }
