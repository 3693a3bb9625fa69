// File: cluster.go
// Role: Cluster type, tree-wide shared state (allocator + resolution
// index), construction, configuration options, and read-only navigation.
//
// Grounded on the teacher's Graph type (single struct owning storage plus
// injected cross-cutting concerns) and its functional-options constructor
// (NewGraph(opts ...GraphOption)), generalized here to NewRootCluster plus
// an internal child constructor that inherits the tree's shared state
// instead of re-parsing options.
package core

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/clustergraph/idalloc"
)

// Recorder receives structural-mutation counters. Clusters use a no-op
// Recorder unless WithRecorder installs a concrete implementation (see
// package telemetry).
type Recorder interface {
	VertexAdded()
	VertexRemoved()
	EdgeAdded()
	EdgeRemoved()
	ClusterCreated()
	ClusterRemoved()
}

type noopRecorder struct{}

func (noopRecorder) VertexAdded()    {}
func (noopRecorder) VertexRemoved()  {}
func (noopRecorder) EdgeAdded()      {}
func (noopRecorder) EdgeRemoved()    {}
func (noopRecorder) ClusterCreated() {}
func (noopRecorder) ClusterRemoved() {}

// treeIndex is shared by pointer across every Cluster in one tree. It maps
// global identifiers to the cluster that directly hosts them, so
// ContainingCluster need not walk the whole tree on every call.
type treeIndex struct {
	vertexHost map[GlobalVertex]*Cluster
	edgeHost   map[uint64]*Cluster
}

func newTreeIndex() *treeIndex {
	return &treeIndex{
		vertexHost: make(map[GlobalVertex]*Cluster),
		edgeHost:   make(map[uint64]*Cluster),
	}
}

// Cluster is one node of the hierarchical cluster graph: a local graph of
// LocalVertex/LocalEdge, some of whose vertices are themselves nested
// Cluster values ("cluster vertices"). See doc.go for the overall shape.
type Cluster struct {
	schema Schema
	graph  *localGraph

	parent       *Cluster
	parentVertex LocalVertex // handle in parent.graph naming this cluster; Invalid at the root

	alloc *idalloc.Allocator // shared across the whole tree
	index *treeIndex         // shared across the whole tree

	logger   *logrus.Entry
	recorder Recorder

	// selfProps holds this cluster's own ClusterProps (currently just
	// KindChanged); lazily constructed by rootProps.
	selfProps *PropertySet

	// copying suppresses markChanged while CopyInto is populating a
	// freshly-constructed destination tree.
	copying bool
}

// Option configures a Cluster at construction time.
type Option func(*Cluster)

// WithLogger installs a structured logger; by default clusters log to a
// discarding logrus.Entry so callers pay nothing unless they opt in.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *Cluster) { c.logger = entry }
}

// WithRecorder installs a mutation-counter sink; see package telemetry for
// a Prometheus-backed implementation.
func WithRecorder(r Recorder) Option {
	return func(c *Cluster) { c.recorder = r }
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(logrusDiscard{})
	return logrus.NewEntry(l)
}

type logrusDiscard struct{}

func (logrusDiscard) Write(p []byte) (int, error) { return len(p), nil }

// NewRootCluster creates a new, empty cluster tree whose root is the
// returned Cluster. schema is finalized (mandatory kinds injected) once,
// here, and shared read-only by every descendant cluster.
func NewRootCluster(schema Schema, opts ...Option) *Cluster {
	finalSchema := schema.finalize()
	c := &Cluster{
		schema:       finalSchema,
		graph:        newLocalGraph(finalSchema),
		parent:       nil,
		parentVertex: InvalidLocalVertex,
		alloc:        idalloc.New(),
		index:        newTreeIndex(),
		logger:       discardLogger(),
		recorder:     noopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newChildCluster builds a cluster sharing the parent's tree-wide state.
func newChildCluster(parent *Cluster, parentVertex LocalVertex) *Cluster {
	return &Cluster{
		schema:       parent.schema,
		graph:        newLocalGraph(parent.schema),
		parent:       parent,
		parentVertex: parentVertex,
		alloc:        parent.alloc,
		index:        parent.index,
		logger:       parent.logger,
		recorder:     parent.recorder,
	}
}

// Schema returns the (finalized) schema shared by this cluster's whole
// tree.
func (c *Cluster) Schema() Schema { return c.schema }

// Parent returns the enclosing cluster, or nil at the root.
func (c *Cluster) Parent() *Cluster { return c.parent }

// IsRoot reports whether c has no parent.
func (c *Cluster) IsRoot() bool { return c.parent == nil }

// Changed reports whether this cluster has been structurally mutated
// (vertices/edges added or removed, or a child cluster created/removed)
// since the flag was last cleared. Mutations made while in copy mode do not
// set it.
func (c *Cluster) Changed() bool {
	return GetProperty[bool](c.rootProps(), KindChanged)
}

// markChanged sets the change flag unless c is in copy mode.
func (c *Cluster) markChanged() {
	if c.copying {
		return
	}
	SetProperty(c.rootProps(), KindChanged, true)
}

// ClearChanged resets the change flag.
func (c *Cluster) ClearChanged() {
	SetProperty(c.rootProps(), KindChanged, false)
}

// rootProps is a tiny indirection so Changed/markChanged read and write one
// PropertySet per cluster without plumbing a dedicated field; it is stored
// lazily the first time either is touched.
func (c *Cluster) rootProps() *PropertySet {
	if c.selfProps == nil {
		c.selfProps = newPropertySet(c.schema.ClusterProps)
	}
	return c.selfProps
}

// SetCopyMode toggles suppression of markChanged, used by CopyInto while
// populating a destination tree so the copy itself is not recorded as a
// structural change.
func (c *Cluster) SetCopyMode(on bool) { c.copying = on }

// clusterOf returns the nested Cluster hosted by local vertex v, or nil if
// v is not a cluster vertex.
func (c *Cluster) clusterOf(v LocalVertex) *Cluster {
	sl := c.graph.vertex(v)
	if sl == nil {
		return nil
	}
	return sl.child
}

// Clusters returns this cluster's direct child clusters, ordered by the
// LocalVertex handle that hosts each.
func (c *Cluster) Clusters() []*Cluster {
	var out []*Cluster
	for _, v := range c.graph.orderedVertices() {
		if child := c.clusterOf(v); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// GlobalVertices returns the GlobalVertex of every non-cluster local vertex
// directly owned by c, ascending.
func (c *Cluster) GlobalVertices() []GlobalVertex {
	var out []GlobalVertex
	for _, v := range c.graph.orderedVertices() {
		sl := c.graph.vertex(v)
		if sl.child == nil {
			out = append(out, sl.global)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GlobalEdgesOf returns the GlobalEdge values aggregated onto local edge e,
// in the order they were attached.
func (c *Cluster) GlobalEdgesOf(e LocalEdge) []GlobalEdge {
	sl := c.graph.edge(e)
	if sl == nil {
		return nil
	}
	out := make([]GlobalEdge, len(sl.globalEdges))
	for i, entry := range sl.globalEdges {
		out[i] = entry.edge
	}
	return out
}

// Degree returns the number of local edges incident to v.
func (c *Cluster) Degree(v LocalVertex) int {
	sl := c.graph.vertex(v)
	if sl == nil {
		return 0
	}
	return len(sl.incident)
}

// ForEachObject invokes fn for every (kind, payload) pair installed on v's
// object set, in unspecified order.
func (c *Cluster) ForEachObject(v LocalVertex, fn func(kind ObjectKind, payload interface{})) {
	sl := c.graph.vertex(v)
	if sl == nil {
		return
	}
	for _, kind := range sl.objects.Kinds() {
		payload, _ := sl.objects.Get(kind)
		fn(kind, payload)
	}
}

// containingVertexLocal searches c's own local graph (not descendants) for
// global. Used internally by ContainingVertex/ContainingCluster before
// falling back to a full-tree search when the index is stale.
func (c *Cluster) containingVertexLocal(global GlobalVertex) (LocalVertex, bool) {
	return c.graph.byGlobalVertex(global)
}

// ContainingCluster returns the cluster directly hosting global and the
// LocalVertex handle within it, searching the tree-wide index first and
// falling back to a recursive walk from c if the index has no entry (e.g.
// before InitIndexMaps has run on a tree built by direct struct
// population rather than through this package's mutators).
func (c *Cluster) ContainingCluster(global GlobalVertex) (*Cluster, LocalVertex, bool) {
	if host, ok := c.index.vertexHost[global]; ok {
		if v, ok := host.containingVertexLocal(global); ok {
			return host, v, true
		}
	}
	return c.recursiveFindVertex(global)
}

func (c *Cluster) recursiveFindVertex(global GlobalVertex) (*Cluster, LocalVertex, bool) {
	if v, ok := c.containingVertexLocal(global); ok {
		return c, v, true
	}
	for _, child := range c.Clusters() {
		if host, v, ok := child.recursiveFindVertex(global); ok {
			return host, v, true
		}
	}
	return nil, InvalidLocalVertex, false
}

// ContainingVertex returns the LocalVertex handle of global within the
// cluster that directly hosts it.
func (c *Cluster) ContainingVertex(global GlobalVertex) (LocalVertex, bool) {
	_, v, ok := c.ContainingCluster(global)
	return v, ok
}

// ContainingEdgeCluster returns the cluster at whose level ge is a direct
// local edge (the lowest common ancestor of its two endpoints) and the
// LocalEdge handle within it.
func (c *Cluster) ContainingEdgeCluster(ge GlobalEdge) (*Cluster, LocalEdge, bool) {
	if host, ok := c.index.edgeHost[ge.ID]; ok {
		if e, ok := host.localEdgeFor(ge); ok {
			return host, e, true
		}
	}
	return c.recursiveFindEdge(ge)
}

func (c *Cluster) localEdgeFor(ge GlobalEdge) (LocalEdge, bool) {
	for _, e := range c.graph.orderedEdges() {
		for _, entry := range c.graph.edge(e).globalEdges {
			if entry.edge.ID == ge.ID {
				return e, true
			}
		}
	}
	return InvalidLocalEdge, false
}

func (c *Cluster) recursiveFindEdge(ge GlobalEdge) (*Cluster, LocalEdge, bool) {
	if e, ok := c.localEdgeFor(ge); ok {
		return c, e, true
	}
	for _, child := range c.Clusters() {
		if host, e, ok := child.recursiveFindEdge(ge); ok {
			return host, e, true
		}
	}
	return nil, InvalidLocalEdge, false
}

// ContainingEdge returns the LocalEdge handle of ge within the cluster that
// directly hosts it.
func (c *Cluster) ContainingEdge(ge GlobalEdge) (LocalEdge, bool) {
	_, e, ok := c.ContainingEdgeCluster(ge)
	return e, ok
}

// InitIndexMaps rebuilds the tree-wide vertex/edge resolution index for the
// whole tree (starting from the root, whichever cluster it is called on),
// and, for every cluster in the tree, assigns a dense 0..n-1
// integer to each of its own vertices and edges, written into their
// mandatory KindIndex property — list-backed slot-arena storage gives
// algorithms no free array index of their own, so this is how one gets
// produced on demand. Intended for trees assembled by direct manipulation
// rather than exclusively through this package's mutators (e.g.
// deserialization); every mutator in mutation.go keeps the resolution
// index current incrementally, so well-behaved callers never need this for
// that purpose alone — but the dense index is a snapshot that goes stale
// the moment the cluster mutates again, so any caller depending on it
// re-runs this first.
func (c *Cluster) InitIndexMaps() {
	if !c.IsRoot() {
		c = c.rootOfTree()
	}
	c.index.vertexHost = make(map[GlobalVertex]*Cluster)
	c.index.edgeHost = make(map[uint64]*Cluster)
	c.rebuildIndex()
}

func (c *Cluster) rootOfTree() *Cluster {
	cur := c
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

func (c *Cluster) rebuildIndex() {
	for i, v := range c.graph.orderedVertices() {
		sl := c.graph.vertex(v)
		SetProperty(sl.props, KindIndex, i)
		if sl.child != nil {
			sl.child.rebuildIndex()
			continue
		}
		c.index.vertexHost[sl.global] = c
	}
	for i, e := range c.graph.orderedEdges() {
		sl := c.graph.edge(e)
		SetProperty(sl.props, KindIndex, i)
		for _, entry := range sl.globalEdges {
			c.index.edgeHost[entry.edge.ID] = c
		}
	}
}
