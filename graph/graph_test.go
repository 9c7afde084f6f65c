package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zayad10/densub/graph"
)

// triangleWithPendant builds 0-1-2-0 plus a pendant 0-3, matching spec scenario 3.
func triangleWithPendant() *graph.Graph {
	return graph.Build([]graph.EdgePair{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}, {U: 0, V: 3}})
}

func TestDeactivate_UpdatesDegreeAndActiveEdgeCount(t *testing.T) {
	g := triangleWithPendant()
	require.NoError(t, g.Deactivate(3))

	d0, _ := g.Degree(0)
	assert.Equal(t, 2, d0) // pendant edge gone
	assert.Equal(t, 3, g.ActiveEdgeCount())
	assert.False(t, g.IsActive(3))
	assert.Equal(t, 3, g.ActiveCount())
}

func TestDeactivate_AlreadyInactiveIsFatal(t *testing.T) {
	g := triangleWithPendant()
	require.NoError(t, g.Deactivate(3))
	err := g.Deactivate(3)
	assert.ErrorIs(t, err, graph.ErrAlreadyInactive)
}

func TestDeactivate_OutOfRange(t *testing.T) {
	g := triangleWithPendant()
	err := g.Deactivate(99)
	assert.ErrorIs(t, err, graph.ErrNoSuchVertex)
}

// P1: degree consistency after any sequence of deactivations.
func TestProperty_DegreeConsistency(t *testing.T) {
	g := graph.Build([]graph.EdgePair{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}, {U: 0, V: 2},
	})
	require.NoError(t, g.Deactivate(0))
	require.NoError(t, g.Deactivate(2))

	for v := 0; v < g.N(); v++ {
		if !g.IsActive(v) {
			continue
		}
		want := 0
		nbrs, err := g.Neighbours(v)
		require.NoError(t, err)
		for _, u := range nbrs {
			if g.IsActive(u) {
				want++
			}
		}
		got, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, want, got, "vertex %d", v)
	}
}

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	g := triangleWithPendant()
	clone := g.Clone()

	require.NoError(t, clone.Deactivate(3))
	assert.True(t, g.IsActive(3), "original must be untouched by clone peeling")
	assert.False(t, clone.IsActive(3))
	assert.Equal(t, 4, g.ActiveEdgeCount()) // original's edge count unaffected by clone's peel
}

func TestSnapshotRestore_RoundTrips(t *testing.T) {
	g := triangleWithPendant()
	snap := g.Snapshot()

	require.NoError(t, g.Deactivate(3))
	require.NoError(t, g.Deactivate(0))
	assert.Equal(t, 2, g.ActiveCount())

	g.Restore(snap)
	assert.Equal(t, 4, g.ActiveCount())
	assert.Equal(t, 4, g.ActiveEdgeCount())
	for v := 0; v < 4; v++ {
		assert.True(t, g.IsActive(v))
	}
}

// P8: density round-trip against a freshly filtered edge list.
func TestProperty_DensityRoundTrip(t *testing.T) {
	g := graph.Build([]graph.EdgePair{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0}, {U: 0, V: 2},
	})
	s := []int{0, 1, 2}
	in := map[int]bool{0: true, 1: true, 2: true}
	edges := 0
	for _, e := range g.Edges() {
		if in[e.U] && in[e.V] {
			edges++
		}
	}
	want := float64(edges) / float64(len(s))
	assert.InDelta(t, want, g.SubgraphDensity(s), 1e-12)
}
