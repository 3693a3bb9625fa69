package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clustergraph/core"
)

func TestRemoveVertexGlobal_SurgicalAscensionPreservesSibling(t *testing.T) {
	root := newTestRoot()
	left, _ := root.CreateCluster()
	right, _ := root.CreateCluster()
	_, gA := left.AddVertex()
	_, gB := left.AddVertex()
	_, gC := right.AddVertex()

	// Both gA and gB, from inside left, connect out to gC in right: both
	// aggregate onto the single boundary edge between left's and right's
	// cluster vertices at the root.
	resAC, err := root.AddEdgeGlobal(gA, gC)
	require.NoError(t, err)
	resBC, err := root.AddEdgeGlobal(gB, gC)
	require.NoError(t, err)
	require.Equal(t, resAC.Local, resBC.Local, "both aggregate onto the same boundary local edge")

	var removed []core.GlobalEdge
	err = root.RemoveVertexGlobal(gA, func(ge core.GlobalEdge) error {
		removed = append(removed, ge)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []core.GlobalEdge{resAC.Edge}, removed, "only the entry touching gA is reported")

	remaining := root.GlobalEdgesOf(resBC.Local)
	require.Equal(t, []core.GlobalEdge{resBC.Edge}, remaining, "gB's entry survives on the same boundary edge")
	require.Equal(t, 1, root.Stats().LocalEdges, "boundary edge itself survives with one remaining entry")
}

func TestRemoveVertexGlobal_LastEntryDropsTheBoundaryEdge(t *testing.T) {
	root := newTestRoot()
	left, _ := root.CreateCluster()
	right, _ := root.CreateCluster()
	_, gA := left.AddVertex()
	_, gC := right.AddVertex()

	_, err := root.AddEdgeGlobal(gA, gC)
	require.NoError(t, err)

	require.NoError(t, root.RemoveVertexGlobal(gA, nil))
	require.Equal(t, 0, root.Stats().LocalEdges)
}

func TestRemoveClusterByChild_WholesaleCleansBoundaryEdges(t *testing.T) {
	root := newTestRoot()
	left, _ := root.CreateCluster()
	right, _ := root.CreateCluster()
	_, gA := left.AddVertex()
	_, gC := right.AddVertex()

	_, err := root.AddEdgeGlobal(gA, gC)
	require.NoError(t, err)
	require.Equal(t, 1, root.Stats().LocalEdges)

	require.NoError(t, root.RemoveClusterByChild(left, nil))

	require.Equal(t, 0, root.Stats().LocalEdges, "the boundary edge is destroyed along with the whole subtree")
	require.Equal(t, 1, root.Stats().ClusterVertices, "only right remains")

	_, ok := root.ContainingVertex(gA)
	require.False(t, ok)
}

func TestRemoveClusterByChild_HooksFirePreOrder(t *testing.T) {
	root := newTestRoot()
	child, _ := root.CreateCluster()
	grandchild, _ := child.CreateCluster()
	_, leafGlobal := grandchild.AddVertex()

	var order []string
	hooks := &core.CascadeHooks{
		OnCluster: func(c *core.Cluster) error {
			order = append(order, "cluster")
			return nil
		},
		OnVertex: func(g core.GlobalVertex) error {
			order = append(order, "vertex")
			require.Equal(t, leafGlobal, g)
			return nil
		},
	}

	require.NoError(t, root.RemoveClusterByChild(child, hooks))
	require.Equal(t, []string{"cluster", "cluster", "vertex"}, order, "child's own hook, then grandchild's, then grandchild's leaf")
}

func TestRemoveClusterByVertex_RejectsPlainVertex(t *testing.T) {
	root := newTestRoot()
	a, _ := root.AddVertex()

	err := root.RemoveClusterByVertex(a, nil)
	require.Error(t, err)
}

func TestClearClusters_RemovesEveryDirectChild(t *testing.T) {
	root := newTestRoot()
	root.CreateCluster()
	root.CreateCluster()
	require.Equal(t, 2, root.Stats().ClusterVertices)

	require.NoError(t, root.ClearClusters(nil))
	require.Equal(t, 0, root.Stats().ClusterVertices)
}
