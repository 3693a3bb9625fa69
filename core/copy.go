// File: copy.go
// Role: Deep, identity-preserving tree copy.
//
// Grounded on the teacher's graph-cloning helpers (deterministic iteration
// plus a caller-supplied per-entity transform), generalized to recurse
// through nested clusters and to run the destination tree in copy mode so
// the copy itself is never recorded as a structural mutation.
//
// AI-HINT (file):
//   - CopyFunc errors ABORT the copy immediately: unlike CascadeHooks
//     (best-effort callbacks during a removal that runs to completion
//     whatever they return), a partial
//     copy has no defined recovery, so the first error wins and dest is
//     left in a state the caller must discard.
//   - Iteration order is always orderedVertices/orderedEdges (ascending
//     handle), so two copies of the same source produce identical
//     destination handle assignments.
package core

// CopyFunc is invoked once per object payload installed on a copied vertex
// or GlobalEdge entry (entities with no payload never reach it), receiving
// that payload's kind and value so the caller can remap
// entity-specific references (e.g. rebinding a geometric payload to a new
// owning vertex). Returning a non-nil error aborts the copy immediately.
type CopyFunc func(kind ObjectKind, payload interface{}) (interface{}, error)

// CopyInto recursively copies c's entire subtree into dest, which must be
// empty. Vertex and edge identifiers (GlobalVertex/GlobalEdge) are
// preserved verbatim; LocalVertex/LocalEdge handles are reassigned by
// dest's own arena and are not guaranteed to match c's.
func (c *Cluster) CopyInto(dest *Cluster, fn CopyFunc) error {
	dest.SetCopyMode(true)
	defer dest.SetCopyMode(false)
	return c.copyChildrenInto(dest, fn)
}

func (c *Cluster) copyChildrenInto(dest *Cluster, fn CopyFunc) error {
	localMap := make(map[LocalVertex]LocalVertex, len(c.graph.vertices))

	for _, v := range c.graph.orderedVertices() {
		sl := c.graph.vertex(v)
		if sl.child != nil {
			newChild, newV := dest.CreateCluster()
			newChild.SetCopyMode(true)
			defer newChild.SetCopyMode(false)
			if err := sl.child.copyChildrenInto(newChild, fn); err != nil {
				return err
			}
			localMap[v] = newV
			continue
		}
		newV, err := dest.AddVertexGlobal(sl.global)
		if err != nil {
			return wrapf("CopyInto", "copying vertex %d", err, sl.global)
		}
		destSlot := dest.graph.vertex(newV)
		destSlot.props = sl.props.clone()
		if fn != nil {
			for _, kind := range sl.objects.Kinds() {
				payload, _ := sl.objects.Get(kind)
				mapped, err := fn(kind, payload)
				if err != nil {
					return wrapf("CopyInto", "mapping object kind %s on vertex %d", err, kind, sl.global)
				}
				destSlot.objects.Set(kind, mapped)
			}
		}
		localMap[v] = newV
	}

	for _, e := range c.graph.orderedEdges() {
		sl := c.graph.edge(e)
		du, dv := localMap[sl.u], localMap[sl.v]
		for _, entry := range sl.globalEdges {
			newE := dest.addLocalEdgeAggregating(du, dv, entry.edge)
			if fn != nil {
				destSlot := dest.graph.edge(newE)
				for _, kind := range entry.objects.Kinds() {
					payload, _ := entry.objects.Get(kind)
					mapped, err := fn(kind, payload)
					if err != nil {
						return wrapf("CopyInto", "mapping object kind %s on edge %d", err, kind, entry.edge.ID)
					}
					for i := range destSlot.globalEdges {
						if destSlot.globalEdges[i].edge.ID == entry.edge.ID {
							destSlot.globalEdges[i].objects.Set(kind, mapped)
						}
					}
				}
			}
		}
	}
	return nil
}
