// Package core implements the hierarchical cluster graph at the heart of a
// dimensional constraint manager: vertices and edges hold geometric entities
// and constraints, and any subgraph can be folded ("clustered") into a
// single vertex of its enclosing graph so that rigid subsystems can be
// solved independently and recomposed.
//
// Two identifier spaces coexist:
//
//   - GlobalVertex / GlobalEdge — tree-wide stable integers, allocated by
//     idalloc.Allocator, unchanged across moves, clones and recursion depth.
//   - LocalVertex / LocalEdge — positional handles into one particular
//     Cluster's own local graph; stable across unrelated insertions and
//     removals in that cluster (slot-arena storage), but meaningless outside
//     the cluster that produced them and invalidated when that entity moves.
//
// A Cluster owns a local graph of LocalVertex/LocalEdge plus a map from the
// LocalVertex handles that represent nested clusters to the *Cluster values
// they host; the same pattern repeats recursively. One local edge between
// two local vertices can aggregate many GlobalEdge values — this is what
// happens whenever two subclusters are connected by more than one logical
// constraint: at the parent's level they all collapse onto a single local
// edge between the two subcluster vertices.
//
// Why this shape:
//
//   - Stable handles under structural rearrangement — GlobalVertex survives
//     MoveToSubcluster/MoveToParent, RemoveCluster, and CopyInto.
//   - Deterministic enumeration — GlobalVertices() is sorted by id,
//     Clusters() by hosting LocalVertex handle, and GlobalEdgesOf() keeps
//     attachment order; all return reproducible slices.
//   - No external synchronization — see the package-level Non-goals in
//     SPEC_FULL.md; a tree is owned by one solver pipeline at a time and
//     mutation requires exclusive access to the whole tree, not per-cluster
//     locks (moves and removals touch more than one cluster).
//
// Configuration (Schema + Option, the GraphOption pattern generalized):
//
//	NewRootCluster(schema Schema, opts ...Option) *Cluster
//
//	Schema declares the vertex/edge/cluster property kinds and the object
//	(payload) kinds this tree will use; the package injects two mandatory
//	kinds if the caller's Schema omits them: an "index" vertex/edge property
//	kind (the dense position InitIndexMaps assigns within each cluster) and
//	a "changed" cluster property kind.
//
// Core operations:
//
//	// Vertex lifecycle
//	AddVertex() (LocalVertex, GlobalVertex)
//	AddVertexGlobal(g GlobalVertex) (LocalVertex, error)
//	RemoveVertexLocal(v LocalVertex, onEdge EdgeFunc) error
//	RemoveVertexGlobal(g GlobalVertex, onEdge EdgeFunc) error
//
//	// Edge lifecycle
//	AddEdge(u, v LocalVertex) (LocalEdge, GlobalEdge, error)
//	AddEdgeGlobal(s, t GlobalVertex) (AddEdgeResult, error)
//	RemoveEdgeLocal(e LocalEdge, onEdge EdgeFunc) error
//	RemoveEdgeGlobal(ge GlobalEdge) error
//
//	// Clustering
//	CreateCluster() (*Cluster, LocalVertex)
//	RemoveClusterByChild(child *Cluster, hooks *CascadeHooks) error
//	RemoveClusterByVertex(v LocalVertex, hooks *CascadeHooks) error
//	ClearClusters(hooks *CascadeHooks) error
//	MoveToSubcluster(v LocalVertex, child *Cluster) (LocalVertex, error)
//	MoveToParent(v LocalVertex) (LocalVertex, error)
//
//	// Resolution
//	ContainingVertex(g GlobalVertex) (LocalVertex, bool)
//	ContainingCluster(g GlobalVertex) (*Cluster, LocalVertex, bool)
//	ContainingEdge(ge GlobalEdge) (LocalEdge, bool)
//	ContainingEdgeCluster(ge GlobalEdge) (*Cluster, LocalEdge, bool)
//
//	// Maintenance
//	CopyInto(dest *Cluster, fn CopyFunc) error
//	InitIndexMaps()
//	Stats() ClusterStats
//
// Errors: see errors.go. All sentinels are checked via errors.Is; none are
// ever stringified for branching.
package core
