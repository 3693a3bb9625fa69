// File: kinds.go
// Role: Declared kind lists (Schema) and the typed accessor helpers layered
// on top of the untyped PropertySet/ObjectSet storage in store.go.
//
// The source specification describes property/object kinds as a
// compile-time-known template parameter list. Go has no template
// metaprogramming; per spec.md §9 this becomes "a runtime-keyed
// heterogeneous map keyed by kind tag" — PropertySet/ObjectSet below — with
// typed access layered on top via small generic functions, so callers still
// get "exactly one storage slot per (entity, declared kind); access by kind
// is typed" without either party writing out interface{} casts by hand.
//
// AI-HINT (file):
//   - GetProperty/SetProperty panic on a kind/type mismatch: that is a
//     programmer error (wrong Go type for a declared kind), not a runtime
//     condition callers are expected to recover from, mirroring how the
//     teacher's builder package confines invalid-option panics to
//     construction-time misuse rather than steady-state operation.
package core

// PropertyKind names a declared property slot on a vertex, edge, or
// cluster.
type PropertyKind string

// Mandatory property kinds injected by the package if the caller's Schema
// omits them.
const (
	// KindIndex is injected into vertex and edge property sets; it holds
	// the dense 0..n-1 position InitIndexMaps assigns within each cluster,
	// giving algorithms that want a plain array index something to key on
	// without walking the slot arena's free list themselves.
	KindIndex PropertyKind = "index"
	// KindChanged is injected into cluster property sets; see the Changed
	// method and SetCopyMode.
	KindChanged PropertyKind = "changed"
)

// ObjectKind names a declared payload slot on a vertex, or on a single
// GlobalEdge entry of a local edge.
type ObjectKind string

// PropertySpec declares one property kind and its default-value factory.
// Default is invoked lazily, once, the first time a given entity's slot for
// this kind is read before ever being written.
type PropertySpec struct {
	Kind    PropertyKind
	Default func() interface{}
}

// Schema declares the property and object kinds a cluster graph tree will
// use. It is established once, at the root, and shared by every Cluster in
// the tree (child clusters created via CreateCluster inherit it).
type Schema struct {
	VertexProps  []PropertySpec
	EdgeProps    []PropertySpec
	ClusterProps []PropertySpec
	ObjectKinds  []ObjectKind
}

func constFalse() interface{} { return false }
func constZeroInt() interface{} { return 0 }

// finalize returns a copy of s with the mandatory kinds injected if absent.
func (s Schema) finalize() Schema {
	out := Schema{
		VertexProps:  injectProp(s.VertexProps, KindIndex, constZeroInt),
		EdgeProps:    injectProp(s.EdgeProps, KindIndex, constZeroInt),
		ClusterProps: injectProp(s.ClusterProps, KindChanged, constFalse),
		ObjectKinds:  append([]ObjectKind(nil), s.ObjectKinds...),
	}
	return out
}

func injectProp(specs []PropertySpec, kind PropertyKind, def func() interface{}) []PropertySpec {
	for _, s := range specs {
		if s.Kind == kind {
			return append([]PropertySpec(nil), specs...)
		}
	}
	out := make([]PropertySpec, 0, len(specs)+1)
	out = append(out, specs...)
	out = append(out, PropertySpec{Kind: kind, Default: def})
	return out
}

// GetProperty reads the typed value of kind on s, default-constructing it
// on first access per the kind's declared factory.
//
// Panics if kind was not declared in the owning Schema, or if the stored
// value is not assignable to V — both are programmer errors.
func GetProperty[V any](s *PropertySet, kind PropertyKind) V {
	v, ok := s.get(kind).(V)
	if !ok {
		panic("core: GetProperty: kind " + string(kind) + " is not of the requested type")
	}
	return v
}

// SetProperty overwrites the value of kind on s.
//
// Panics if kind was not declared in the owning Schema.
func SetProperty[V any](s *PropertySet, kind PropertyKind, v V) {
	s.set(kind, v)
}
