// Package core_test verifies vertex/edge bookkeeping contracts.
//
// Purpose:
//   - Lock in insertion-ordered neighbor views and soft-delete filtering.
//   - Verify the cache is cleared by every topology mutation.
//   - Verify Copy never carries topology.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/core"
)

// triangle builds A-B, B-C, C-A and returns vertices and edges.
func triangle(t *testing.T) ([]*core.Vertex, []*core.Edge) {
	t.Helper()
	vs := []*core.Vertex{core.NewVertex(), core.NewVertex(), core.NewVertex()}
	es := make([]*core.Edge, 3)
	for i := range es {
		e, err := core.NewEdge()
		require.NoError(t, err)
		require.NoError(t, core.Connect(vs[i], vs[(i+1)%3], e))
		es[i] = e
	}
	return vs, es
}

func TestVertex_AddNeighborInvalidatesCache(t *testing.T) {
	a, b := core.NewVertex(), core.NewVertex()
	a.Cache().Set("free_valency", 3)
	require.Equal(t, 1, a.Cache().Len())

	e, err := core.NewEdge()
	require.NoError(t, err)
	a.AddNeighbor(b, e)

	assert.Equal(t, 0, a.Cache().Len(), "AddNeighbor must clear the cache")
	assert.Equal(t, 1, a.Degree())
	_, ok := a.Cache().Get("free_valency")
	assert.False(t, ok)
}

func TestVertex_NeighborsInsertionOrder(t *testing.T) {
	center := core.NewVertex()
	var want []*core.Vertex
	for i := 0; i < 5; i++ {
		n := core.NewVertex()
		e, _ := core.NewEdge()
		require.NoError(t, core.Connect(center, n, e))
		want = append(want, n)
	}
	got := center.Neighbors()
	require.Len(t, got, 5)
	for i := range want {
		assert.Same(t, want[i], got[i].CoreVertex(), "neighbor %d out of order", i)
	}
}

func TestVertex_RemoveNeighbor(t *testing.T) {
	vs, es := triangle(t)
	a, b := vs[0], vs[1]

	require.NoError(t, a.RemoveNeighbor(b))
	assert.Equal(t, 1, a.Degree())
	_, ok := a.EdgeLeadingTo(b)
	assert.False(t, ok)

	err := a.RemoveNeighbor(b)
	assert.ErrorIs(t, err, core.ErrNeighborNotFound)

	// b still knows a: RemoveNeighbor is one-sided.
	l, ok := b.EdgeLeadingTo(a)
	require.True(t, ok)
	assert.True(t, core.SameLink(l, es[0]))
}

func TestVertex_RemoveEdgeAndNeighbor(t *testing.T) {
	vs, es := triangle(t)
	a := vs[0]

	require.NoError(t, a.RemoveEdgeAndNeighbor(es[0]))
	assert.Equal(t, 1, a.Degree())
	assert.ErrorIs(t, a.RemoveEdgeAndNeighbor(es[0]), core.ErrEdgeNotFound)
	assert.ErrorIs(t, a.RemoveEdgeAndNeighbor(es[1]), core.ErrEdgeNotFound, "B-C is not incident to A")
}

func TestVertex_DisconnectedEdgesAreHidden(t *testing.T) {
	vs, es := triangle(t)
	a := vs[0]
	a.Cache().Set("x", 1)

	es[0].SetDisconnected(true)
	assert.Equal(t, 0, a.Cache().Len(), "disconnecting must clear endpoint caches")
	assert.Equal(t, 1, a.Degree())
	assert.Len(t, a.Neighbors(), 1)
	assert.Len(t, a.NeighborEdges(), 1)
	assert.Len(t, a.Incidences(), 1)
	assert.Len(t, a.AllIncidences(), 2, "soft-deleted edge stays registered")

	n, err := a.NeighborConnectedVia(es[0])
	require.NoError(t, err)
	assert.True(t, core.SameNode(n, vs[1]))

	es[0].SetDisconnected(false)
	assert.Equal(t, 2, a.Degree())
}

func TestVertex_NeighborsWithDistance(t *testing.T) {
	vs, _ := triangle(t)
	vs[1].Properties["d"] = 1
	vs[2].Properties["d"] = 2

	got := vs[0].NeighborsWithDistance(1)
	require.Len(t, got, 1)
	assert.Same(t, vs[1], got[0].CoreVertex())
	assert.Empty(t, vs[0].NeighborsWithDistance(3))
}

func TestEdge_SetVertices(t *testing.T) {
	a, b, c := core.NewVertex(), core.NewVertex(), core.NewVertex()
	e, err := core.NewEdge(a, b)
	require.NoError(t, err)
	assert.Len(t, e.Vertices(), 2)

	assert.ErrorIs(t, e.SetVertices(a), core.ErrEndpointCount)
	assert.ErrorIs(t, e.SetVertices(a, b, c), core.ErrEndpointCount)
	_, err = core.NewEdge(a)
	assert.ErrorIs(t, err, core.ErrEndpointCount)

	require.NoError(t, e.SetVertices())
	assert.Nil(t, e.Vertices())

	// Self-loops are legal for ring-closure representations.
	require.NoError(t, e.SetVertices(a, a))
	other, ok := e.Other(a)
	require.True(t, ok)
	assert.True(t, core.SameNode(other, a))
}

func TestEdge_NeighborEdges(t *testing.T) {
	_, es := triangle(t)
	got := es[0].NeighborEdges()
	require.Len(t, got, 2)

	left, right := es[0].NeighborEdgesBySide()
	require.Len(t, left, 1)
	require.Len(t, right, 1)
	assert.True(t, core.SameLink(left[0], es[2]), "A touches C-A")
	assert.True(t, core.SameLink(right[0], es[1]), "B touches B-C")
}

func TestConnectDetach(t *testing.T) {
	a, b := core.NewVertex(), core.NewVertex()
	e, _ := core.NewEdge()
	assert.ErrorIs(t, core.Connect(a, nil, e), core.ErrNilNode)

	require.NoError(t, core.Connect(a, b, e))
	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, 1, b.Degree())

	require.NoError(t, core.Detach(e))
	assert.Equal(t, 0, a.Degree())
	assert.Equal(t, 0, b.Degree())
	assert.Nil(t, e.Vertices())
	assert.ErrorIs(t, core.Detach(e), core.ErrEdgeNotFound)
}

func TestDetach_OneSidedLeavesBothEndpoints(t *testing.T) {
	a, b := core.NewVertex(), core.NewVertex()
	e, _ := core.NewEdge()
	require.NoError(t, core.Connect(a, b, e))
	require.NoError(t, b.RemoveEdgeAndNeighbor(e))

	assert.ErrorIs(t, core.Detach(e), core.ErrEdgeNotFound)
	assert.Equal(t, 1, a.Degree(), "a keeps its incidence")
	assert.Len(t, e.Vertices(), 2)
}

func TestCopy_DropsTopology(t *testing.T) {
	vs, es := triangle(t)
	vs[0].Value = "payload"
	es[0].SetDisconnected(true)

	vc := vs[0].Copy()
	assert.Equal(t, "payload", vc.Value)
	assert.NotEqual(t, vs[0].ID, vc.ID)
	assert.Equal(t, 0, vc.Degree())
	assert.Empty(t, vc.AllIncidences())

	ec := es[0].Copy()
	assert.True(t, ec.Disconnected())
	assert.Nil(t, ec.Vertices(), "copied edge has no endpoints")
}
