package facet

import "github.com/go-loom/loom/pkg/native"

// Value is a tagged facet value attached to an entity. An entity owns at
// most one value per kind.
type Value interface {
	FacetKind() Kind
}

// Ref is a capability facet wrapping a native widget. One generic value type
// serves every kind in the taxonomy; the kind tag carries the capability,
// the object is shared by every member of a cascade chain.
type Ref struct {
	Kind   Kind
	Object native.Widget
}

func (r *Ref) FacetKind() Kind { return r.Kind }

// Erased is the erased-reference facet value. It refers to the most-derived
// native widget most recently installed on the entity.
type Erased struct {
	Object native.Widget
}

func (e *Erased) FacetKind() Kind { return KindErased }
