package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clustergraph/core"
)

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	root := newTestRoot()
	a, _ := root.AddVertex()

	_, _, err := root.AddEdge(a, a)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrPreconditionViolated))
}

func TestAddEdge_RejectsClusterVertexEndpoint(t *testing.T) {
	root := newTestRoot()
	a, _ := root.AddVertex()
	_, clusterVertex := root.CreateCluster()

	_, _, err := root.AddEdge(a, clusterVertex)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrPreconditionViolated))
}

func TestAddEdge_AggregatesOnRepeatedPair(t *testing.T) {
	root := newTestRoot()
	a, _ := root.AddVertex()
	b, _ := root.AddVertex()

	le1, ge1, err := root.AddEdge(a, b)
	require.NoError(t, err)
	le2, ge2, err := root.AddEdge(a, b)
	require.NoError(t, err)

	require.Equal(t, le1, le2, "a second constraint between the same pair rides the same local edge")
	require.NotEqual(t, ge1, ge2)
	require.ElementsMatch(t, []core.GlobalEdge{ge1, ge2}, root.GlobalEdgesOf(le1))
}

func TestRemoveEdgeGlobal_OnlyDropsItsOwnEntry(t *testing.T) {
	root := newTestRoot()
	a, _ := root.AddVertex()
	b, _ := root.AddVertex()
	le, ge1, err := root.AddEdge(a, b)
	require.NoError(t, err)
	_, ge2, err := root.AddEdge(a, b)
	require.NoError(t, err)

	require.NoError(t, root.RemoveEdgeGlobal(ge1))
	require.Equal(t, []core.GlobalEdge{ge2}, root.GlobalEdgesOf(le))

	stats := root.Stats()
	require.Equal(t, 1, stats.LocalEdges, "local edge survives while an entry remains")
}

func TestRemoveEdgeLocal_RemovesEveryAggregatedEntry(t *testing.T) {
	root := newTestRoot()
	a, _ := root.AddVertex()
	b, _ := root.AddVertex()
	le, _, err := root.AddEdge(a, b)
	require.NoError(t, err)
	_, _, err = root.AddEdge(a, b)
	require.NoError(t, err)

	var seen int
	err = root.RemoveEdgeLocal(le, func(core.GlobalEdge) error {
		seen++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, seen)
	require.Equal(t, 0, root.Stats().LocalEdges)
}

func TestAddEdgeGlobal_LocalScopeWhenSameCluster(t *testing.T) {
	root := newTestRoot()
	_, gA := root.AddVertex()
	_, gB := root.AddVertex()

	res, err := root.AddEdgeGlobal(gA, gB)
	require.NoError(t, err)
	require.Equal(t, core.ScopeLocal, res.Scope)
	require.Same(t, root, res.Cluster)
}
