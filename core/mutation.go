// File: mutation.go
// Role: The structural mutation engine — vertex/edge lifecycle, clustering,
// and vertex relocation. Every exported method here either fully commits
// its change or fails with a wrapped sentinel before changing anything;
// there is no partial in-between state a caller can observe. Removals that
// commit may still return the aggregated errors of caller-supplied
// callbacks.
//
// Grounded on the teacher's AddVertex/AddEdge/RemoveVertex/RemoveEdge shape
// (single-purpose mutators returning handles, not a generic "apply" path),
// generalized to the two-tier global/local identifier space and to
// boundary aggregation.
//
// AI-HINT (file):
//   - Edge aggregation happens at exactly one level: the lowest common
//     ancestor cluster of the two endpoints' hosting clusters. A local edge
//     never appears at more than one level for the same GlobalEdge.
//   - Ascension cleanup on vertex/cluster removal walks from the removed
//     entity's host upward, stripping only the GlobalEdge entries that
//     actually touch what was removed — siblings aggregated on the same
//     local edge are untouched.
//   - RemoveVertexGlobal's ascension is surgical (per global-edge entry);
//     RemoveClusterByChild's is wholesale (the entire incident local edge
//     at the immediate parent level, since the whole subtree is gone).
package core

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// EdgeFunc is invoked once per affected GlobalEdge during a removal, with
// enough for the caller to look up anything it still needs via the edge's
// own Source/Target. A non-nil error is collected, never fatal to the
// structural removal already in progress.
type EdgeFunc func(GlobalEdge) error

// ScopeKind reports whether an edge operation resolved entirely within one
// cluster's local graph or required cross-cluster aggregation.
type ScopeKind int

const (
	ScopeLocal ScopeKind = iota
	ScopeCrossCluster
)

func (k ScopeKind) String() string {
	if k == ScopeCrossCluster {
		return "cross-cluster"
	}
	return "local"
}

// AddEdgeResult reports where a global-vertex-addressed edge insertion was
// actually realized.
type AddEdgeResult struct {
	Scope   ScopeKind
	Cluster *Cluster
	Local   LocalEdge
	Edge    GlobalEdge
}

// CascadeHooks are invoked, best-effort, while a cluster subtree is
// structurally dismantled. Every hook's errors are aggregated via
// go-multierror and returned together; none of them can stop the removal,
// which runs to completion whatever the hooks return. OnCluster fires
// before the cluster's contents are visited.
type CascadeHooks struct {
	OnCluster func(*Cluster) error
	OnVertex  func(GlobalVertex) error
	OnEdge    func(GlobalEdge) error
}

// AddVertex inserts a new plain vertex into c, allocating a fresh
// tree-wide GlobalVertex for it.
func (c *Cluster) AddVertex() (LocalVertex, GlobalVertex) {
	g := GlobalVertex(c.alloc.Generate())
	v := c.graph.insertVertex(g)
	c.index.vertexHost[g] = c
	c.markChanged()
	c.recorder.VertexAdded()
	c.logger.WithField("global_vertex", g).Debug("vertex added")
	return v, g
}

// AddVertexGlobal inserts a vertex carrying a caller-supplied GlobalVertex,
// used by CopyInto to preserve identity across a tree boundary. Fails if global is already present anywhere in the tree.
func (c *Cluster) AddVertexGlobal(global GlobalVertex) (LocalVertex, error) {
	if !global.IsValid() {
		return InvalidLocalVertex, wrapf("AddVertexGlobal", "global vertex %d is not a valid issued id", ErrPreconditionViolated, global)
	}
	if _, _, ok := c.ContainingCluster(global); ok {
		return InvalidLocalVertex, wrapf("AddVertexGlobal", "global vertex %d already present in this tree", ErrPreconditionViolated, global)
	}
	v := c.graph.insertVertex(global)
	c.index.vertexHost[global] = c
	c.alloc.SetCount(uint64(global))
	c.markChanged()
	c.recorder.VertexAdded()
	return v, nil
}

// AddEdge inserts or aggregates an edge between two plain (non-cluster)
// vertices already local to c, allocating a fresh GlobalEdge. Aggregates
// onto any existing local edge between u and v rather than erroring, so a
// second independent constraint between the same pair of points is
// represented as a second GlobalEdge riding the same LocalEdge.
func (c *Cluster) AddEdge(u, v LocalVertex) (LocalEdge, GlobalEdge, error) {
	su := c.graph.vertex(u)
	sv := c.graph.vertex(v)
	if su == nil || sv == nil {
		return InvalidLocalEdge, InvalidGlobalEdge, wrapf("AddEdge", "vertex handle not found in this cluster", ErrNotFound)
	}
	if u == v {
		return InvalidLocalEdge, InvalidGlobalEdge, wrapf("AddEdge", "self-loops are not permitted", ErrPreconditionViolated)
	}
	if su.child != nil || sv.child != nil {
		return InvalidLocalEdge, InvalidGlobalEdge, wrapf("AddEdge", "a cluster vertex cannot be a plain edge endpoint", ErrPreconditionViolated)
	}
	ge := GlobalEdge{Source: su.global, Target: sv.global, ID: c.alloc.Generate()}
	le := c.addLocalEdgeAggregating(u, v, ge)
	c.logger.WithField("global_edge", ge.ID).Debug("edge added")
	return le, ge, nil
}

// addLocalEdgeAggregating inserts ge between local vertices u and v in c's
// own local graph, reusing the existing local edge between them if one
// already exists. u and v may be cluster vertices (this is how boundary
// aggregation is realized); AddEdge forbids that at the public surface.
func (c *Cluster) addLocalEdgeAggregating(u, v LocalVertex, ge GlobalEdge) LocalEdge {
	le, exists := c.graph.edgeBetween(u, v)
	if !exists {
		le = c.graph.insertEdge(u, v)
	}
	c.graph.appendGlobalEdge(le, ge)
	c.index.edgeHost[ge.ID] = c
	c.alloc.SetCount(ge.ID)
	c.markChanged()
	c.recorder.EdgeAdded()
	return le
}

// AddEdgeGlobal connects two vertices addressed by GlobalVertex, wherever
// in the tree they live. If both resolve to the same hosting cluster the
// edge is realized directly there (ScopeLocal); otherwise it is realized,
// aggregated if needed, at the lowest common ancestor of their two hosts,
// between the cluster-vertices that represent each side there
// (ScopeCrossCluster).
func (c *Cluster) AddEdgeGlobal(s, t GlobalVertex) (AddEdgeResult, error) {
	if s == t {
		return AddEdgeResult{}, wrapf("AddEdgeGlobal", "self-loops are not permitted", ErrPreconditionViolated)
	}
	hostS, vS, ok := c.ContainingCluster(s)
	if !ok {
		return AddEdgeResult{}, wrapf("AddEdgeGlobal", "global vertex %d not found", ErrNotFound, s)
	}
	hostT, vT, ok := c.ContainingCluster(t)
	if !ok {
		return AddEdgeResult{}, wrapf("AddEdgeGlobal", "global vertex %d not found", ErrNotFound, t)
	}
	ge := GlobalEdge{Source: s, Target: t, ID: c.alloc.Generate()}
	batchID := uuid.New().String()

	if hostS == hostT {
		le := hostS.addLocalEdgeAggregating(vS, vT, ge)
		c.logger.WithFields(logFields{"batch": batchID, "scope": "local", "global_edge": ge.ID}).Debug("edge added")
		return AddEdgeResult{Scope: ScopeLocal, Cluster: hostS, Local: le, Edge: ge}, nil
	}

	lca := findLCA(hostS, hostT)
	repS := representativeAt(hostS, vS, lca)
	repT := representativeAt(hostT, vT, lca)
	le := lca.addLocalEdgeAggregating(repS, repT, ge)
	c.logger.WithFields(logFields{"batch": batchID, "scope": "cross-cluster", "global_edge": ge.ID}).Debug("edge added")
	return AddEdgeResult{Scope: ScopeCrossCluster, Cluster: lca, Local: le, Edge: ge}, nil
}

// findLCA returns the lowest cluster that is an ancestor of (or equal to)
// both a and b. a and b are always in the same tree, so this never fails.
func findLCA(a, b *Cluster) *Cluster {
	ancestors := make(map[*Cluster]bool)
	for cur := a; cur != nil; cur = cur.parent {
		ancestors[cur] = true
	}
	for cur := b; cur != nil; cur = cur.parent {
		if ancestors[cur] {
			return cur
		}
	}
	return nil
}

// representativeAt returns the LocalVertex within lca that stands in for
// leafVertex (hosted directly by leafHost): leafVertex itself if
// leafHost == lca, otherwise the cluster vertex in lca that is the
// ancestor-or-self of leafHost one level below lca.
func representativeAt(leafHost *Cluster, leafVertex LocalVertex, lca *Cluster) LocalVertex {
	if leafHost == lca {
		return leafVertex
	}
	cur := leafHost
	for cur.parent != lca {
		cur = cur.parent
	}
	return cur.parentVertex
}

// RemoveVertexLocal removes a plain vertex known to c by its LocalVertex
// handle, invoking onEdge once per GlobalEdge the vertex was party to.
func (c *Cluster) RemoveVertexLocal(v LocalVertex, onEdge EdgeFunc) error {
	sl := c.graph.vertex(v)
	if sl == nil {
		return wrapf("RemoveVertexLocal", "vertex handle not found", ErrNotFound)
	}
	if sl.child != nil {
		return wrapf("RemoveVertexLocal", "v is a cluster vertex; use RemoveClusterByVertex", ErrPreconditionViolated)
	}
	return c.removeVertexAscending(sl.global, v, onEdge)
}

// RemoveVertexGlobal removes the vertex identified by global, wherever in
// the tree it is hosted, invoking onEdge once per GlobalEdge it was party
// to — whether that edge was realized at its host's own level or
// aggregated higher up the tree.
func (c *Cluster) RemoveVertexGlobal(global GlobalVertex, onEdge EdgeFunc) error {
	host, v, ok := c.ContainingCluster(global)
	if !ok {
		return wrapf("RemoveVertexGlobal", "global vertex %d not found", ErrNotFound, global)
	}
	return host.removeVertexAscending(global, v, onEdge)
}

// removeVertexAscending performs the shared removal algorithm: detach and
// destroy every local edge directly incident to v in host (these are the
// edges whose other endpoint shares host), then ascend the tree, at each
// level stripping only the GlobalEdge entries that touch global from the
// aggregated edges incident to the cluster-vertex representing host's
// subtree — leaving any other vertex still aggregated there untouched.
func (host *Cluster) removeVertexAscending(global GlobalVertex, v LocalVertex, onEdge EdgeFunc) error {
	var errs *multierror.Error

	for _, e := range host.graph.incidentEdges(v) {
		entries := append([]globalEdgeEntry(nil), host.graph.edge(e).globalEdges...)
		for _, entry := range entries {
			delete(host.index.edgeHost, entry.edge.ID)
			host.recorder.EdgeRemoved()
			if onEdge != nil {
				if err := onEdge(entry.edge); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
		}
		host.graph.freeEdgeSlot(e)
	}
	host.graph.freeVertexSlot(v)
	delete(host.index.vertexHost, global)
	host.markChanged()
	host.recorder.VertexRemoved()

	for cur := host; cur.parent != nil; cur = cur.parent {
		parent := cur.parent
		selfVertex := cur.parentVertex
		for _, e := range parent.graph.incidentEdges(selfVertex) {
			sl := parent.graph.edge(e)
			var touched []GlobalEdge
			for _, entry := range sl.globalEdges {
				if entry.edge.Touches(global) {
					touched = append(touched, entry.edge)
				}
			}
			for _, ge := range touched {
				remaining := parent.graph.removeGlobalEdge(e, ge)
				delete(parent.index.edgeHost, ge.ID)
				parent.recorder.EdgeRemoved()
				if onEdge != nil {
					if err := onEdge(ge); err != nil {
						errs = multierror.Append(errs, err)
					}
				}
				if remaining == 0 {
					parent.graph.freeEdgeSlot(e)
				}
			}
			if len(touched) > 0 {
				parent.markChanged()
			}
		}
	}
	return errs.ErrorOrNil()
}

// RemoveEdgeLocal destroys an entire local edge, along with every
// GlobalEdge aggregated onto it, invoking onEdge once per GlobalEdge.
func (c *Cluster) RemoveEdgeLocal(e LocalEdge, onEdge EdgeFunc) error {
	sl := c.graph.edge(e)
	if sl == nil {
		return wrapf("RemoveEdgeLocal", "edge handle not found", ErrNotFound)
	}
	var errs *multierror.Error
	entries := append([]globalEdgeEntry(nil), sl.globalEdges...)
	for _, entry := range entries {
		delete(c.index.edgeHost, entry.edge.ID)
		c.recorder.EdgeRemoved()
		if onEdge != nil {
			if err := onEdge(entry.edge); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	c.graph.freeEdgeSlot(e)
	c.markChanged()
	return errs.ErrorOrNil()
}

// RemoveEdgeGlobal removes exactly one aggregated GlobalEdge entry,
// wherever it is hosted. The underlying local edge is destroyed only if
// this was its last remaining entry.
func (c *Cluster) RemoveEdgeGlobal(ge GlobalEdge) error {
	host, e, ok := c.ContainingEdgeCluster(ge)
	if !ok {
		return wrapf("RemoveEdgeGlobal", "global edge %d not found", ErrNotFound, ge.ID)
	}
	remaining := host.graph.removeGlobalEdge(e, ge)
	delete(host.index.edgeHost, ge.ID)
	if remaining == 0 {
		host.graph.freeEdgeSlot(e)
	}
	host.markChanged()
	host.recorder.EdgeRemoved()
	return nil
}

// CreateCluster inserts a new, empty child cluster as a cluster vertex of
// c, sharing c's schema, identifier allocator, and resolution index.
func (c *Cluster) CreateCluster() (*Cluster, LocalVertex) {
	g := GlobalVertex(c.alloc.Generate())
	v := c.graph.insertVertex(g)
	child := newChildCluster(c, v)
	c.graph.vertex(v).child = child
	c.markChanged()
	c.recorder.ClusterCreated()
	c.logger.WithField("cluster_vertex_global", g).Debug("cluster created")
	return child, v
}

// RemoveClusterByVertex resolves v to its hosted child cluster and removes
// it; v must name a cluster vertex of c.
func (c *Cluster) RemoveClusterByVertex(v LocalVertex, hooks *CascadeHooks) error {
	child := c.clusterOf(v)
	if child == nil {
		return wrapf("RemoveClusterByVertex", "v is not a cluster vertex", ErrPreconditionViolated)
	}
	return c.RemoveClusterByChild(child, hooks)
}

// RemoveClusterByChild dismantles child, which must be a direct child of
// c, invoking hooks pre-order (the cluster's own hook fires before its
// contents') and best-effort (hook errors are aggregated, never abort the
// structural removal already underway).
func (c *Cluster) RemoveClusterByChild(child *Cluster, hooks *CascadeHooks) error {
	if child.parent != c {
		return wrapf("RemoveClusterByChild", "not a direct child of this cluster", ErrPreconditionViolated)
	}
	v := child.parentVertex
	batchID := uuid.New().String()
	var errs *multierror.Error

	if hooks != nil && hooks.OnCluster != nil {
		if err := hooks.OnCluster(child); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	removedGlobals := child.collectGlobalVertices()
	if sub := child.cascadeDestroy(hooks); sub != nil {
		errs = multierror.Append(errs, sub)
	}

	for _, e := range c.graph.incidentEdges(v) {
		for _, entry := range c.graph.edge(e).globalEdges {
			delete(c.index.edgeHost, entry.edge.ID)
		}
		c.graph.freeEdgeSlot(e)
	}
	c.graph.freeVertexSlot(v)
	c.markChanged()
	c.recorder.ClusterRemoved()

	removedSet := make(map[GlobalVertex]bool, len(removedGlobals))
	for _, g := range removedGlobals {
		removedSet[g] = true
	}
	for cur := c; cur.parent != nil; cur = cur.parent {
		parent := cur.parent
		selfVertex := cur.parentVertex
		for _, e := range parent.graph.incidentEdges(selfVertex) {
			sl := parent.graph.edge(e)
			kept := sl.globalEdges[:0:0]
			changed := false
			for _, entry := range sl.globalEdges {
				if removedSet[entry.edge.Source] || removedSet[entry.edge.Target] {
					delete(parent.index.edgeHost, entry.edge.ID)
					changed = true
					continue
				}
				kept = append(kept, entry)
			}
			if changed {
				sl.globalEdges = kept
				if len(kept) == 0 {
					parent.graph.freeEdgeSlot(e)
				}
				parent.markChanged()
			}
		}
	}
	c.logger.WithFields(logFields{"batch": batchID, "removed_vertices": len(removedGlobals)}).Debug("cluster removed")
	return errs.ErrorOrNil()
}

// cascadeDestroy recurses pre-order through c's contents, invoking hooks
// and purging every descendant global id from the tree-wide index. c
// itself is assumed already reported to OnCluster by the caller.
func (c *Cluster) cascadeDestroy(hooks *CascadeHooks) *multierror.Error {
	var errs *multierror.Error
	for _, v := range c.graph.orderedVertices() {
		sl := c.graph.vertex(v)
		if sl.child != nil {
			if hooks != nil && hooks.OnCluster != nil {
				if err := hooks.OnCluster(sl.child); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
			if sub := sl.child.cascadeDestroy(hooks); sub != nil {
				errs = multierror.Append(errs, sub)
			}
		} else {
			delete(c.index.vertexHost, sl.global)
			if hooks != nil && hooks.OnVertex != nil {
				if err := hooks.OnVertex(sl.global); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
		}
	}
	for _, e := range c.graph.orderedEdges() {
		for _, entry := range c.graph.edge(e).globalEdges {
			delete(c.index.edgeHost, entry.edge.ID)
			if hooks != nil && hooks.OnEdge != nil {
				if err := hooks.OnEdge(entry.edge); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
		}
	}
	return errs
}

// collectGlobalVertices returns the GlobalVertex of every plain (leaf)
// vertex anywhere in c's subtree, recursively.
func (c *Cluster) collectGlobalVertices() []GlobalVertex {
	var out []GlobalVertex
	for _, v := range c.graph.orderedVertices() {
		sl := c.graph.vertex(v)
		if sl.child != nil {
			out = append(out, sl.child.collectGlobalVertices()...)
		} else {
			out = append(out, sl.global)
		}
	}
	return out
}

// ClearClusters removes every direct child cluster of c. Each child's
// removal runs CascadeHooks independently; a hook failure on one child
// does not prevent the others from being removed.
func (c *Cluster) ClearClusters(hooks *CascadeHooks) error {
	var errs *multierror.Error
	for _, child := range c.Clusters() {
		if err := c.RemoveClusterByChild(child, hooks); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// MoveToSubcluster relocates a plain vertex from c into child, which must
// be a direct child cluster of c. Edges from v to vertices remaining in c
// are re-aggregated onto the edge between child's cluster vertex and each
// such remaining vertex; an edge v already had to child's own cluster
// vertex — meaning every one of its aggregated entries already resolves to
// something inside child's subtree — instead descends into child as an
// internal edge of its own, rather than becoming a self-loop on child's
// cluster vertex. v's GlobalVertex identity is preserved.
func (c *Cluster) MoveToSubcluster(v LocalVertex, child *Cluster) (LocalVertex, error) {
	if child.parent != c {
		return InvalidLocalVertex, wrapf("MoveToSubcluster", "child is not a direct child of this cluster", ErrPreconditionViolated)
	}
	sl := c.graph.vertex(v)
	if sl == nil {
		return InvalidLocalVertex, wrapf("MoveToSubcluster", "vertex handle not found", ErrNotFound)
	}
	if sl.child != nil {
		return InvalidLocalVertex, wrapf("MoveToSubcluster", "cannot move a cluster vertex", ErrPreconditionViolated)
	}
	global, props, objects := sl.global, sl.props, sl.objects
	anchor := child.parentVertex

	newV := child.graph.insertVertex(global)
	*child.graph.vertex(newV) = vslot{occupied: true, global: global, props: props, objects: objects}
	child.index.vertexHost[global] = child

	for _, e := range c.graph.incidentEdges(v) {
		other := c.graph.otherEndpoint(e, v)
		entries := append([]globalEdgeEntry(nil), c.graph.edge(e).globalEdges...)
		for _, entry := range entries {
			delete(c.index.edgeHost, entry.edge.ID)
		}
		c.graph.freeEdgeSlot(e)

		if other != anchor {
			for _, entry := range entries {
				c.addLocalEdgeAggregating(anchor, other, entry.edge)
			}
			continue
		}

		// other == anchor: v already had an edge to the subcluster that
		// now absorbs it. By the aggregation invariant every entry here
		// resolves to a vertex somewhere inside child's subtree, so each
		// becomes an internal edge of child between newV and that vertex's
		// representative at child's own level.
		for _, entry := range entries {
			otherGlobal := entry.edge.Other(global)
			if host2, local2, ok := child.ContainingCluster(otherGlobal); ok {
				rep2 := representativeAt(host2, local2, child)
				child.addLocalEdgeAggregating(newV, rep2, entry.edge)
				continue
			}
			// Defensive fallback: otherGlobal is not actually in child's
			// subtree (should not happen given the invariant above); keep
			// it aggregated in c, from anchor to otherGlobal's own
			// representative here.
			if host2, local2, ok := c.ContainingCluster(otherGlobal); ok {
				rep2 := representativeAt(host2, local2, c)
				c.addLocalEdgeAggregating(anchor, rep2, entry.edge)
			}
		}
	}
	c.graph.freeVertexSlot(v)

	c.markChanged()
	child.markChanged()
	return newV, nil
}

// MoveToParent relocates a plain vertex from c up into c's parent, the
// exact inverse of MoveToSubcluster: every edge v had within c collapses
// onto the single edge between c's cluster vertex and v's new local
// vertex in the parent, and any boundary edge already incident to c's
// cluster vertex that aggregates a GlobalEdge touching v's own id is split
// so that entry moves onto v's new vertex instead — v is no longer part
// of the subtree c's cluster vertex represents.
func (c *Cluster) MoveToParent(v LocalVertex) (LocalVertex, error) {
	if c.parent == nil {
		return InvalidLocalVertex, wrapf("MoveToParent", "root cluster has no parent", ErrPreconditionViolated)
	}
	sl := c.graph.vertex(v)
	if sl == nil {
		return InvalidLocalVertex, wrapf("MoveToParent", "vertex handle not found", ErrNotFound)
	}
	if sl.child != nil {
		return InvalidLocalVertex, wrapf("MoveToParent", "cannot move a cluster vertex", ErrPreconditionViolated)
	}
	parent := c.parent
	myVertex := c.parentVertex
	global, props, objects := sl.global, sl.props, sl.objects

	var allEntries []globalEdgeEntry
	for _, e := range c.graph.incidentEdges(v) {
		entries := append([]globalEdgeEntry(nil), c.graph.edge(e).globalEdges...)
		for _, entry := range entries {
			delete(c.index.edgeHost, entry.edge.ID)
		}
		c.graph.freeEdgeSlot(e)
		allEntries = append(allEntries, entries...)
	}
	c.graph.freeVertexSlot(v)

	newV := parent.graph.insertVertex(global)
	*parent.graph.vertex(newV) = vslot{occupied: true, global: global, props: props, objects: objects}
	parent.index.vertexHost[global] = parent

	// Peel v's own entries off every boundary edge already incident to
	// myVertex in parent before collapsing v's internal edges onto the new
	// myVertex-newV edge below — otherwise the freshly created edge would
	// immediately be mistaken for one that needs peeling too.
	for _, e := range parent.graph.incidentEdges(myVertex) {
		other := parent.graph.otherEndpoint(e, myVertex)
		var toMove []GlobalEdge
		for _, entry := range parent.graph.edge(e).globalEdges {
			if entry.edge.Touches(global) {
				toMove = append(toMove, entry.edge)
			}
		}
		if len(toMove) == 0 {
			continue
		}
		remaining := 0
		for _, ge := range toMove {
			remaining = parent.graph.removeGlobalEdge(e, ge)
			delete(parent.index.edgeHost, ge.ID)
		}
		if remaining == 0 {
			parent.graph.freeEdgeSlot(e)
		}
		for _, ge := range toMove {
			parent.addLocalEdgeAggregating(newV, other, ge)
		}
	}

	for _, entry := range allEntries {
		parent.addLocalEdgeAggregating(myVertex, newV, entry.edge)
	}
	c.markChanged()
	parent.markChanged()
	return newV, nil
}
