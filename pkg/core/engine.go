// Package core implements the cascade engine and the native tree mirror:
// the machinery that keeps the entity/facet graph and the native widget
// tree mutually consistent.
//
// Installing a facet kind installs its whole cascade chain as an explicit
// leaf-to-root loop over the validated taxonomy, wires the chain's native
// subscriptions as owned handles, refreshes the erased reference, and then
// places the native widget under the parent entity's widget. Uninstalling
// is symmetric. All of it is synchronous, re-entrant, and UI-affine.
package core

import (
	"sort"

	"github.com/go-loom/loom/pkg/bridge"
	"github.com/go-loom/loom/pkg/entity"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/native"
)

// Engine binds a registry to a taxonomy and interprets the table.
type Engine struct {
	reg   *entity.Registry
	tax   *facet.Taxonomy
	br    *bridge.Bridge
	guard *native.Guard
}

// Option configures an Engine.
type Option func(*Engine)

// WithGuard makes every mutating engine operation assert the goroutine
// bound to g. Without a guard the single-writer discipline is caller
// convention only.
func WithGuard(g *native.Guard) Option {
	return func(e *Engine) { e.guard = g }
}

// New returns an engine over the given registry and taxonomy.
func New(reg *entity.Registry, tax *facet.Taxonomy, opts ...Option) *Engine {
	e := &Engine{
		reg: reg,
		tax: tax,
		br:  bridge.New(reg),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's entity registry.
func (g *Engine) Registry() *entity.Registry { return g.reg }

// Taxonomy returns the engine's taxonomy table.
func (g *Engine) Taxonomy() *facet.Taxonomy { return g.tax }

// Install attaches the facet kind to e wrapping the native widget w, then
// installs the kind's entire cascade chain so every ancestor facet wraps
// the identical object. Re-installing an already-correct kind/value is
// idempotent: no subscription or placement side effect runs again.
//
// After the entity's own chain installs complete, the widget is placed
// under the parent entity's widget (child collection or content slot).
// A missing, destroyed, or capability-less parent makes placement a silent
// no-op; teardown order is not guaranteed caller-side.
func (g *Engine) Install(e *entity.Entity, kind facet.Kind, w native.Widget) error {
	const op = "core.Install"
	if err := g.assertAffinity(op); err != nil {
		return err
	}
	chain, ok := g.tax.Chain(kind)
	if !ok {
		return g.unknownKind(op, e, kind)
	}

	for _, d := range chain {
		if cur, ok := e.Facet(d.Kind); ok {
			if ref, isRef := cur.(*facet.Ref); isRef && ref.Object == w {
				// Already the correct kind/value. Re-running the attach
				// side effects would double-subscribe and re-insert.
				continue
			}
		}
		e.SetFacet(&facet.Ref{Kind: d.Kind, Object: w})
		if len(d.Subscriptions) > 0 {
			if src, isSrc := w.(native.EventSource); isSrc {
				e.AttachHandles(d.Kind, g.br.Wire(e.Name(), d.Subscriptions, src))
			}
		}
	}

	// The erased reference always tracks the most recently installed
	// concrete widget, whatever the previous value was.
	e.SetFacet(&facet.Erased{Object: w})

	// Placement runs only after the chain is fully installed locally, so a
	// parent inspecting this child sees it fully formed.
	g.place(e, kind, w)
	return nil
}

// Uninstall detaches the facet kind from e along with its entire cascade
// chain, releasing each member's native subscriptions and performing the
// symmetric tree removal. Uninstalling a kind that is not attached returns
// a FacetNotFoundError.
func (g *Engine) Uninstall(e *entity.Entity, kind facet.Kind) error {
	const op = "core.Uninstall"
	if err := g.assertAffinity(op); err != nil {
		return err
	}
	chain, ok := g.tax.Chain(kind)
	if !ok {
		return g.unknownKind(op, e, kind)
	}
	leaf, ok := e.Facet(kind)
	if !ok {
		return &errors.FacetNotFoundError{Entity: e.Name(), Kind: kind.String(), Op: op}
	}

	if ref, isRef := leaf.(*facet.Ref); isRef {
		g.unplace(e, kind, ref.Object)
	}
	for _, d := range chain {
		e.ReleaseHandles(d.Kind)
		e.RemoveFacet(d.Kind)
	}
	if !g.hasRefs(e) {
		e.RemoveFacet(facet.KindErased)
	}
	return nil
}

// Destroy uninstalls every attached facet of e through its cascade chain
// and removes the entity from the registry. Destroying a name that does
// not exist is a no-op. Children are left intact with a stale parent
// reference; their own teardown degrades placement removal to a no-op.
func (g *Engine) Destroy(name string) error {
	const op = "core.Destroy"
	if err := g.assertAffinity(op); err != nil {
		return err
	}
	e, ok := g.reg.Lookup(name)
	if !ok {
		return nil
	}

	// Uninstall leaf-most kinds first so each chain unwinds exactly once.
	kinds := e.FacetKinds()
	sort.Slice(kinds, func(i, j int) bool {
		ci, _ := g.tax.Chain(kinds[i])
		cj, _ := g.tax.Chain(kinds[j])
		if len(ci) != len(cj) {
			return len(ci) > len(cj)
		}
		return kinds[i] < kinds[j]
	})
	for _, k := range kinds {
		if _, registered := g.tax.Descriptor(k); !registered {
			continue
		}
		if e.HasFacet(k) {
			if err := g.Uninstall(e, k); err != nil {
				return err
			}
		}
	}
	g.reg.Remove(name)
	return nil
}

// hasRefs reports whether any capability ref facet remains on e.
func (g *Engine) hasRefs(e *entity.Entity) bool {
	for _, k := range e.FacetKinds() {
		if v, ok := e.Facet(k); ok {
			if _, isRef := v.(*facet.Ref); isRef {
				return true
			}
		}
	}
	return false
}

func (g *Engine) assertAffinity(op string) error {
	if g.guard == nil {
		return nil
	}
	return g.guard.Assert(op)
}

func (g *Engine) unknownKind(op string, e *entity.Entity, kind facet.Kind) error {
	err := &errors.TaxonomyError{Kind: kind.String(), Reason: "kind is not registered"}
	errors.Report(&errors.LoomError{
		Op:     op,
		Kind:   errors.KindTaxonomy,
		Entity: e.Name(),
		Err:    err,
	})
	return err
}
