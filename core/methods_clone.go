// File: methods_clone.go
// Role: Attribute-only copies of vertices and edges.
//
// Policy:
//   - Copy carries the declared copyable attributes only.
//   - Topology (incidences, endpoints) is NEVER copied: cloning a molecule
//     attaches fresh vertices to fresh edges separately.
package core

// Copy returns a new Vertex with the same Value and a fresh ID.
// Incidences, Properties and cache are not carried over.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vertex) Copy() *Vertex {
	other := NewVertex()
	other.Value = v.Value
	return other
}

// CopyInto writes v's copyable attributes into dst (used by embedding types).
func (v *Vertex) CopyInto(dst *Vertex) {
	dst.Value = v.Value
}

// Copy returns a new Edge carrying only the disconnected flag.
// The copy has no endpoints.
//
// Complexity:
//   - Time O(1), Space O(1).
func (e *Edge) Copy() *Edge {
	return &Edge{
		Properties:   make(map[string]interface{}),
		disconnected: e.disconnected,
	}
}

// CopyInto writes e's copyable attributes into dst without touching endpoints.
func (e *Edge) CopyInto(dst *Edge) {
	dst.disconnected = e.disconnected
}
