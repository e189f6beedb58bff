package facet

import (
	"sort"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/native"
)

// Rule declares how a facet's native widget is attached to its parent
// entity's native widget.
type Rule int

const (
	// RuleInherit defers to the nearest ancestor kind in the cascade chain
	// that declares a concrete rule. The zero value.
	RuleInherit Rule = iota
	// RuleNone opts the kind out of placement even when an ancestor kind
	// declares one. Roots such as windows use this.
	RuleNone
	// RuleChildCollection inserts the widget at the end of the parent's
	// ordered child collection.
	RuleChildCollection
	// RuleContentSlot assigns the widget into the parent's single content
	// slot.
	RuleContentSlot
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleChildCollection:
		return "child-collection"
	case RuleContentSlot:
		return "content-slot"
	default:
		return "inherit"
	}
}

// Descriptor is the registration data for one facet kind. The cascade
// engine interprets descriptors; kinds carry no code of their own.
type Descriptor struct {
	// Kind is the facet kind being registered.
	Kind Kind
	// CascadeParent is the ancestor kind installed alongside this kind,
	// or KindNone for terminal facets.
	CascadeParent Kind
	// Subscriptions lists the native event kinds wired when this kind is
	// installed on an event-capable widget.
	Subscriptions []native.EventKind
	// Placement governs how the widget is attached under the parent
	// entity's widget.
	Placement Rule
	// Container marks kinds whose widgets hold an ordered child
	// collection (native.Container).
	Container bool
	// Content marks kinds whose widgets hold a single content slot
	// (native.ContentHost).
	Content bool
}

// Taxonomy is a validated, immutable table of facet descriptors.
//
// Validation happens once at construction: duplicate kinds, dangling
// cascade parents, and cycles in the cascade-parent relation are all
// rejected, so chain walks never need cycle detection at install time.
type Taxonomy struct {
	descs  map[Kind]Descriptor
	chains map[Kind][]Descriptor
}

// NewTaxonomy builds a taxonomy from the given descriptors.
func NewTaxonomy(descs ...Descriptor) (*Taxonomy, error) {
	t := &Taxonomy{
		descs:  make(map[Kind]Descriptor, len(descs)),
		chains: make(map[Kind][]Descriptor, len(descs)),
	}
	for _, d := range descs {
		if d.Kind == KindNone || d.Kind == KindErased {
			return nil, &errors.TaxonomyError{Kind: d.Kind.String(), Reason: "reserved kind"}
		}
		if _, dup := t.descs[d.Kind]; dup {
			return nil, &errors.TaxonomyError{Kind: d.Kind.String(), Reason: "duplicate registration"}
		}
		t.descs[d.Kind] = d
	}
	for _, d := range t.descs {
		if d.CascadeParent == KindNone {
			continue
		}
		if _, ok := t.descs[d.CascadeParent]; !ok {
			return nil, &errors.TaxonomyError{
				Kind:   d.Kind.String(),
				Reason: "cascade parent " + d.CascadeParent.String() + " is not registered",
			}
		}
	}
	for kind := range t.descs {
		chain, err := t.buildChain(kind)
		if err != nil {
			return nil, err
		}
		t.chains[kind] = chain
	}
	return t, nil
}

// MustTaxonomy is NewTaxonomy that panics on invalid registration data.
// Intended for static catalogs validated by tests.
func MustTaxonomy(descs ...Descriptor) *Taxonomy {
	t, err := NewTaxonomy(descs...)
	if err != nil {
		panic(err)
	}
	return t
}

// buildChain walks leaf to root, rejecting cycles.
func (t *Taxonomy) buildChain(kind Kind) ([]Descriptor, error) {
	var chain []Descriptor
	seen := make(map[Kind]bool)
	for k := kind; k != KindNone; {
		if seen[k] {
			return nil, &errors.TaxonomyError{Kind: kind.String(), Reason: "cascade-parent cycle through " + k.String()}
		}
		seen[k] = true
		d := t.descs[k]
		chain = append(chain, d)
		k = d.CascadeParent
	}
	return chain, nil
}

// Descriptor returns the registration data for kind.
func (t *Taxonomy) Descriptor(kind Kind) (Descriptor, bool) {
	d, ok := t.descs[kind]
	return d, ok
}

// Chain returns the cascade chain for kind, leaf first, root last.
// The returned slice is shared; callers must not modify it.
func (t *Taxonomy) Chain(kind Kind) ([]Descriptor, bool) {
	c, ok := t.chains[kind]
	return c, ok
}

// Placement resolves the effective placement rule for kind: the first
// non-inherit rule walking leaf to root, or RuleNone when the whole chain
// inherits.
func (t *Taxonomy) Placement(kind Kind) Rule {
	chain, ok := t.chains[kind]
	if !ok {
		return RuleNone
	}
	for _, d := range chain {
		if d.Placement != RuleInherit {
			return d.Placement
		}
	}
	return RuleNone
}

// Kinds returns every registered kind in sorted order.
func (t *Taxonomy) Kinds() []Kind {
	kinds := make([]Kind, 0, len(t.descs))
	for k := range t.descs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Len returns the number of registered kinds.
func (t *Taxonomy) Len() int { return len(t.descs) }
