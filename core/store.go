// File: store.go
// Role: Untyped heterogeneous storage backing PropertySet/ObjectSet; see
// kinds.go for the typed accessors layered on top.
//
// AI-HINT (file):
//   - PropertySet default-constructs a slot on first Get; ObjectSet never
//     default-constructs (an object slot is either empty or holds a
//     caller-installed handle — spec.md §4.2).
package core

// PropertySet is a fixed-kind, heterogeneous attribute bag attached to one
// vertex, edge, or cluster.
type PropertySet struct {
	specs  map[PropertyKind]func() interface{}
	values map[PropertyKind]interface{}
}

func newPropertySet(specs []PropertySpec) *PropertySet {
	s := &PropertySet{
		specs:  make(map[PropertyKind]func() interface{}, len(specs)),
		values: make(map[PropertyKind]interface{}, len(specs)),
	}
	for _, spec := range specs {
		s.specs[spec.Kind] = spec.Default
	}
	return s
}

// clone returns a PropertySet sharing the same declared kinds with an
// independent copy of the currently stored values (used by CopyInto;
// vertex moves carry the original PropertySet over unchanged).
func (s *PropertySet) clone() *PropertySet {
	out := &PropertySet{
		specs:  s.specs, // kind declarations are immutable and tree-wide; share
		values: make(map[PropertyKind]interface{}, len(s.values)),
	}
	for k, v := range s.values {
		out.values[k] = v
	}
	return out
}

func (s *PropertySet) get(kind PropertyKind) interface{} {
	if v, ok := s.values[kind]; ok {
		return v
	}
	factory, declared := s.specs[kind]
	if !declared {
		panic("core: property kind " + string(kind) + " was not declared in this Schema")
	}
	v := factory()
	s.values[kind] = v
	return v
}

func (s *PropertySet) set(kind PropertyKind, v interface{}) {
	if _, declared := s.specs[kind]; !declared {
		panic("core: property kind " + string(kind) + " was not declared in this Schema")
	}
	s.values[kind] = v
}

// ObjectSet is a heterogeneous slot table holding one optional shared
// payload per ObjectKind. Kinds are not checked against the Schema's
// ObjectKinds: Set accepts any kind.
type ObjectSet struct {
	slots map[ObjectKind]interface{}
}

func newObjectSet(kinds []ObjectKind) *ObjectSet {
	return &ObjectSet{slots: make(map[ObjectKind]interface{}, len(kinds))}
}

// Get returns the payload installed for kind, if any.
func (o *ObjectSet) Get(kind ObjectKind) (interface{}, bool) {
	v, ok := o.slots[kind]
	return v, ok
}

// Set installs h as the payload for kind, replacing any previous value.
func (o *ObjectSet) Set(kind ObjectKind, h interface{}) {
	o.slots[kind] = h
}

// Kinds returns the object kinds currently holding a payload, in
// unspecified order; callers needing determinism should sort.
func (o *ObjectSet) Kinds() []ObjectKind {
	out := make([]ObjectKind, 0, len(o.slots))
	for k := range o.slots {
		out = append(out, k)
	}
	return out
}
