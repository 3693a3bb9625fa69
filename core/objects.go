// File: objects.go
// Role: Object (payload) accessors for vertices and, as a documented
// shortcut, for the first aggregated GlobalEdge of a local edge.
//
// AI-HINT (file):
//   - SetObject/GetObject on a local edge operate on its FIRST aggregated
//     GlobalEdge entry only — a convenience for the overwhelmingly common
//     case of one constraint per local edge. GlobalEdgesOf lists every
//     aggregated entry, but this package exports no accessor for the
//     objects of entries other than the first; this shortcut does not
//     iterate.
package core

// SetVertexObject installs payload under kind on v's object set.
func (c *Cluster) SetVertexObject(v LocalVertex, kind ObjectKind, payload interface{}) error {
	sl := c.graph.vertex(v)
	if sl == nil {
		return wrapf("SetVertexObject", "vertex handle not found", ErrNotFound)
	}
	sl.objects.Set(kind, payload)
	return nil
}

// GetVertexObject returns the payload installed under kind on v, if any.
func (c *Cluster) GetVertexObject(v LocalVertex, kind ObjectKind) (interface{}, bool) {
	sl := c.graph.vertex(v)
	if sl == nil {
		return nil, false
	}
	return sl.objects.Get(kind)
}

// SetObject installs payload under kind on the first GlobalEdge aggregated
// onto local edge e. See the file-level note on why this does not iterate.
func (c *Cluster) SetObject(e LocalEdge, kind ObjectKind, payload interface{}) error {
	sl := c.graph.edge(e)
	if sl == nil {
		return wrapf("SetObject", "edge handle not found", ErrNotFound)
	}
	if len(sl.globalEdges) == 0 {
		return wrapf("SetObject", "local edge has no aggregated GlobalEdge", ErrPreconditionViolated)
	}
	sl.globalEdges[0].objects.Set(kind, payload)
	return nil
}

// GetObject returns the payload installed under kind on the first
// GlobalEdge aggregated onto local edge e, if any.
func (c *Cluster) GetObject(e LocalEdge, kind ObjectKind) (interface{}, bool) {
	sl := c.graph.edge(e)
	if sl == nil || len(sl.globalEdges) == 0 {
		return nil, false
	}
	return sl.globalEdges[0].objects.Get(kind)
}
