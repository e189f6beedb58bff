package core

import (
	"sort"

	"github.com/go-loom/loom/pkg/entity"
	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/native"
)

// The native tree mirror keeps the widget tree congruent with the entity
// parent/child graph. The parent's capability decides the attachment mode:
// a container facet wins over a content-holder facet, matching toolkit
// semantics where panels collect children and decorators hold one.

// place attaches w under the parent entity's widget according to the
// effective placement rule for kind. Idempotent: a widget already in the
// parent's child collection is not inserted again, and assigning the same
// content occupant is harmless.
func (g *Engine) place(e *entity.Entity, kind facet.Kind, w native.Widget) {
	if g.tax.Placement(kind) == facet.RuleNone {
		return
	}
	parent := e.Parent()
	if parent == nil || !parent.Live() {
		return
	}
	if c, ok := g.containerOf(parent); ok {
		if !c.ContainsChild(w) {
			c.AppendChild(w)
		}
		return
	}
	if h, ok := g.contentHostOf(parent); ok {
		h.SetContent(w)
		return
	}
	// Parent carries neither capability: placement is a no-op, not an error.
}

// unplace performs the symmetric removal, but only while the parent
// reference is still valid. An entity may be uninstalled after its parent
// was already destroyed; that is a no-op.
func (g *Engine) unplace(e *entity.Entity, kind facet.Kind, w native.Widget) {
	if g.tax.Placement(kind) == facet.RuleNone {
		return
	}
	parent := e.Parent()
	if parent == nil || !parent.Live() {
		return
	}
	if c, ok := g.containerOf(parent); ok {
		c.RemoveChild(w)
		return
	}
	if h, ok := g.contentHostOf(parent); ok {
		if h.Content() == w {
			h.SetContent(nil)
		}
	}
}

// containerOf returns the parent's child collection when some attached
// facet kind declares the container capability and its widget implements
// native.Container.
func (g *Engine) containerOf(parent *entity.Entity) (native.Container, bool) {
	obj, ok := g.capabilityObject(parent, func(d facet.Descriptor) bool { return d.Container })
	if !ok {
		return nil, false
	}
	c, ok := obj.(native.Container)
	return c, ok
}

// contentHostOf returns the parent's content slot when some attached facet
// kind declares the content capability and its widget implements
// native.ContentHost.
func (g *Engine) contentHostOf(parent *entity.Entity) (native.ContentHost, bool) {
	obj, ok := g.capabilityObject(parent, func(d facet.Descriptor) bool { return d.Content })
	if !ok {
		return nil, false
	}
	h, ok := obj.(native.ContentHost)
	return h, ok
}

// capabilityObject scans the parent's facets in sorted kind order for one
// whose descriptor matches, returning its wrapped native object.
func (g *Engine) capabilityObject(parent *entity.Entity, want func(facet.Descriptor) bool) (native.Widget, bool) {
	kinds := parent.FacetKinds()
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		d, ok := g.tax.Descriptor(k)
		if !ok || !want(d) {
			continue
		}
		if obj, ok := parent.RefObject(k); ok {
			return obj, true
		}
	}
	return nil, false
}
