package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clustergraph/core"
)

// buildTwoClusters creates a root with two sibling clusters, each holding
// one plain vertex, and returns the root plus both global vertex ids.
func buildTwoClusters(t *testing.T) (root *core.Cluster, left, right *core.Cluster, gLeft, gRight core.GlobalVertex) {
	t.Helper()
	root = newTestRoot()
	left, _ = root.CreateCluster()
	right, _ = root.CreateCluster()
	_, gLeft = left.AddVertex()
	_, gRight = right.AddVertex()
	return
}

func TestAddEdgeGlobal_AggregatesAtLowestCommonAncestor(t *testing.T) {
	root, left, right, gLeft, gRight := buildTwoClusters(t)

	res, err := root.AddEdgeGlobal(gLeft, gRight)
	require.NoError(t, err)
	require.Equal(t, core.ScopeCrossCluster, res.Scope)
	require.Same(t, root, res.Cluster)

	stats := root.Stats()
	require.Equal(t, 1, stats.LocalEdges, "boundary edge realized once, between the two cluster vertices")
	require.Equal(t, 0, left.Stats().LocalEdges)
	require.Equal(t, 0, right.Stats().LocalEdges)

	gotEdge, ok := root.ContainingEdge(res.Edge)
	require.True(t, ok)
	require.Equal(t, res.Local, gotEdge)
}

func TestAddEdgeGlobal_SecondConstraintAggregatesOntoSameBoundaryEdge(t *testing.T) {
	root, _, _, gLeft, gRight := buildTwoClusters(t)

	res1, err := root.AddEdgeGlobal(gLeft, gRight)
	require.NoError(t, err)
	res2, err := root.AddEdgeGlobal(gLeft, gRight)
	require.NoError(t, err)

	require.Equal(t, res1.Local, res2.Local)
	require.Equal(t, 1, root.Stats().LocalEdges)
	require.ElementsMatch(t, []core.GlobalEdge{res1.Edge, res2.Edge}, root.GlobalEdgesOf(res1.Local))
}

func TestContainingVertex_ResolvesNestedVertex(t *testing.T) {
	root, left, _, gLeft, _ := buildTwoClusters(t)

	host, v, ok := root.ContainingCluster(gLeft)
	require.True(t, ok)
	require.Same(t, left, host)

	gotV, ok := root.ContainingVertex(gLeft)
	require.True(t, ok)
	require.Equal(t, v, gotV)
}

func TestContainingVertex_UnknownGlobalNotFound(t *testing.T) {
	root := newTestRoot()
	_, ok := root.ContainingVertex(core.GlobalVertex(99999))
	require.False(t, ok)
}

func TestInitIndexMaps_RebuildsResolutionFromScratch(t *testing.T) {
	root, _, _, gLeft, gRight := buildTwoClusters(t)
	res, err := root.AddEdgeGlobal(gLeft, gRight)
	require.NoError(t, err)

	root.InitIndexMaps()

	_, ok := root.ContainingVertex(gLeft)
	require.True(t, ok)
	_, ok = root.ContainingEdge(res.Edge)
	require.True(t, ok)
}

func TestDegree_CountsIncidentLocalEdges(t *testing.T) {
	root := newTestRoot()
	a, _ := root.AddVertex()
	b, _ := root.AddVertex()
	c, _ := root.AddVertex()
	_, _, err := root.AddEdge(a, b)
	require.NoError(t, err)
	_, _, err = root.AddEdge(a, c)
	require.NoError(t, err)

	require.Equal(t, 2, root.Degree(a))
	require.Equal(t, 1, root.Degree(b))
}
