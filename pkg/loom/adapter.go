// Package loom is the application-facing surface of the adapter layer. It
// wires the entity registry, the facet taxonomy, the cascade engine, and
// the event bridge into one Adapter.
package loom

import (
	"github.com/go-loom/loom/pkg/bridge"
	"github.com/go-loom/loom/pkg/config"
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/entity"
	"github.com/go-loom/loom/pkg/erased"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/facets"
	"github.com/go-loom/loom/pkg/native"
)

// Adapter binds application code to the native widget tree through the
// entity/facet registry. Create one per toolkit connection, on the
// UI-affine goroutine.
type Adapter struct {
	reg   *entity.Registry
	tax   *facet.Taxonomy
	eng   *core.Engine
	guard *native.Guard
}

type options struct {
	tax      *facet.Taxonomy
	guard    *native.Guard
	resolved *config.Resolved
}

// Option configures an Adapter.
type Option func(*options)

// WithTaxonomy replaces the built-in facet taxonomy.
func WithTaxonomy(tax *facet.Taxonomy) Option {
	return func(o *options) { o.tax = tax }
}

// WithGuard supplies a pre-bound affinity guard. Without this option New
// binds a fresh guard to the calling goroutine.
func WithGuard(g *native.Guard) Option {
	return func(o *options) { o.guard = g }
}

// WithResolved applies a resolved loom.yaml configuration.
func WithResolved(r *config.Resolved) Option {
	return func(o *options) { o.resolved = r }
}

// New creates an adapter. Call it from the UI-affine goroutine: unless
// affinity enforcement is disabled by configuration, the calling goroutine
// becomes the owner every mutating operation is checked against.
func New(opts ...Option) *Adapter {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	enforce := true
	if o.resolved != nil {
		enforce = o.resolved.EnforceAffinity
		if o.resolved.VerboseErrors {
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		}
	}

	tax := o.tax
	if tax == nil {
		tax = facets.Builtin()
	}

	guard := o.guard
	if guard == nil && enforce {
		guard = native.NewGuard()
	}

	reg := entity.NewRegistry()
	var engineOpts []core.Option
	if guard != nil {
		engineOpts = append(engineOpts, core.WithGuard(guard))
	}

	return &Adapter{
		reg:   reg,
		tax:   tax,
		eng:   core.New(reg, tax, engineOpts...),
		guard: guard,
	}
}

// Registry returns the underlying entity registry.
func (a *Adapter) Registry() *entity.Registry { return a.reg }

// Taxonomy returns the facet taxonomy in use.
func (a *Adapter) Taxonomy() *facet.Taxonomy { return a.tax }

// Ensure returns the entity named name, creating it if absent.
func (a *Adapter) Ensure(name string) *entity.Entity { return a.reg.Ensure(name) }

// Lookup returns the entity named name, if it exists.
func (a *Adapter) Lookup(name string) (*entity.Entity, bool) { return a.reg.Lookup(name) }

// SetParent sets child's navigational parent. Pass nil to clear.
func (a *Adapter) SetParent(child, parent *entity.Entity) { a.reg.SetParent(child, parent) }

// Children returns the entities whose parent is e, sorted by name.
func (a *Adapter) Children(e *entity.Entity) []*entity.Entity { return a.reg.Children(e) }

// Install attaches the facet kind to e wrapping the native widget w,
// cascading through the kind's ancestor chain and mirroring the widget
// into the parent's native tree.
func (a *Adapter) Install(e *entity.Entity, kind facet.Kind, w native.Widget) error {
	return a.eng.Install(e, kind, w)
}

// Uninstall detaches the facet kind and its cascade chain from e.
func (a *Adapter) Uninstall(e *entity.Entity, kind facet.Kind) error {
	return a.eng.Uninstall(e, kind)
}

// Destroy uninstalls every facet of the named entity and removes it.
func (a *Adapter) Destroy(name string) error { return a.eng.Destroy(name) }

// Has reports whether a facet of the given kind is attached to e.
func (a *Adapter) Has(e *entity.Entity, kind facet.Kind) bool { return e.HasFacet(kind) }

// Facet returns the facet of the given kind, or a FacetNotFoundError.
func (a *Adapter) Facet(e *entity.Entity, kind facet.Kind) (facet.Value, error) {
	v, ok := e.Facet(kind)
	if !ok {
		return nil, &errors.FacetNotFoundError{Entity: e.Name(), Kind: kind.String(), Op: "loom.Facet"}
	}
	return v, nil
}

// Erased returns e's erased reference, or a FacetNotFoundError.
func (a *Adapter) Erased(e *entity.Entity) (native.Widget, error) {
	w, ok := e.Erased()
	if !ok {
		return nil, &errors.FacetNotFoundError{Entity: e.Name(), Kind: facet.KindErased.String(), Op: "loom.Erased"}
	}
	return w, nil
}

// Listen subscribes to entity notifications for the event kind. The
// handler receives each occurrence's record on the publishing goroutine;
// UI-affecting work inside it must go through Dispatch.
func (a *Adapter) Listen(e *entity.Entity, kind native.EventKind, fn func(*bridge.Record)) (remove func()) {
	return e.Listen(kind, func(r any) {
		if rec, ok := r.(*bridge.Record); ok {
			fn(rec)
		}
	})
}

// LastRecord returns the most recent event record for the kind on e.
func (a *Adapter) LastRecord(e *entity.Entity, kind native.EventKind) (*bridge.Record, bool) {
	r, ok := e.LastRecord(kind)
	if !ok {
		return nil, false
	}
	rec, ok := r.(*bridge.Record)
	return rec, ok
}

// Get reads the named member through the reflective fallback accessor.
func (a *Adapter) Get(e *entity.Entity, member string) (any, error) {
	return erased.Get(e, member)
}

// Set writes the named member through the reflective fallback accessor.
func (a *Adapter) Set(e *entity.Entity, member string, value any) error {
	return erased.Set(e, member, value)
}

// Invoke calls the named method through the reflective fallback accessor.
func (a *Adapter) Invoke(e *entity.Entity, member string, args ...any) ([]any, error) {
	return erased.Invoke(e, member, args...)
}

// Dispatch schedules a callback onto the UI-affine thread. It re-exports
// native.Dispatch for application code that only imports this package.
func Dispatch(callback func()) bool {
	return native.Dispatch(callback)
}
