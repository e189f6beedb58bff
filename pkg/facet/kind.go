// Package facet defines facet values and the declarative taxonomy table the
// cascade engine interprets.
//
// A facet is one capability in a widget's conceptual inheritance chain. The
// registry has no notion of subtyping, so single-inheritance toolkit
// hierarchies are emulated by composition: installing a leaf facet installs
// its whole ancestor chain, every member wrapping the identical native
// object. The chain for each kind is registration data, not code.
package facet

// Kind identifies a facet kind. Kinds are registered in a Taxonomy; the
// built-in catalog lives in the facets package.
type Kind string

// KindNone marks the absence of a kind, used for terminal facets with no
// cascade parent.
const KindNone Kind = ""

// KindErased is the erased-reference facet: a type-erased handle to the
// most-derived native widget installed on an entity. At most one exists per
// entity, and it always tracks the most recently installed concrete widget.
// It is not part of any taxonomy chain.
const KindErased Kind = "erased"

func (k Kind) String() string {
	if k == KindNone {
		return "<none>"
	}
	return string(k)
}
