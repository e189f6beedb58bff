// Package entity implements the entity registry: named entities holding
// typed facets, a navigational parent reference, per-event-kind records,
// and entity-level notifications.
package entity

import (
	"sync"

	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/native"
)

// Entity is an opaque identifier owning at most one facet per kind.
//
// Facet storage and the parent reference follow the registry's single-writer
// discipline and must only be touched from the UI-affine goroutine. Records
// and listeners are the exception: native event callbacks write them from
// toolkit threads, so those two paths are internally locked.
type Entity struct {
	name   string
	parent *Entity
	live   bool

	facets  map[facet.Kind]facet.Value
	handles map[facet.Kind][]native.Handle

	mu        sync.Mutex
	records   map[native.EventKind]any
	listeners map[native.EventKind]map[int]func(record any)
	nextID    int
}

func newEntity(name string) *Entity {
	return &Entity{
		name:   name,
		live:   true,
		facets: make(map[facet.Kind]facet.Value),
	}
}

// Name returns the stable name the entity was created under.
func (e *Entity) Name() string { return e.name }

// Live reports whether the entity has not been destroyed. A destroyed
// entity's facets are gone; holding a stale reference to one is legal and
// placement against it degrades to a no-op.
func (e *Entity) Live() bool { return e.live }

// Parent returns the parent entity, or nil. The reference is navigational;
// the parent does not own the child.
func (e *Entity) Parent() *Entity { return e.parent }

// SetFacet attaches v, replacing any previous value of the same kind.
func (e *Entity) SetFacet(v facet.Value) {
	e.facets[v.FacetKind()] = v
}

// Facet returns the value of the given kind, if present.
func (e *Entity) Facet(kind facet.Kind) (facet.Value, bool) {
	v, ok := e.facets[kind]
	return v, ok
}

// HasFacet reports whether a facet of the given kind is attached.
func (e *Entity) HasFacet(kind facet.Kind) bool {
	_, ok := e.facets[kind]
	return ok
}

// RemoveFacet detaches the facet of the given kind, if present.
func (e *Entity) RemoveFacet(kind facet.Kind) {
	delete(e.facets, kind)
}

// FacetKinds returns the kinds currently attached, in unspecified order.
func (e *Entity) FacetKinds() []facet.Kind {
	kinds := make([]facet.Kind, 0, len(e.facets))
	for k := range e.facets {
		kinds = append(kinds, k)
	}
	return kinds
}

// RefObject returns the native object wrapped by the facet of the given
// kind, when that facet is a capability ref.
func (e *Entity) RefObject(kind facet.Kind) (native.Widget, bool) {
	v, ok := e.facets[kind]
	if !ok {
		return nil, false
	}
	ref, ok := v.(*facet.Ref)
	if !ok {
		return nil, false
	}
	return ref.Object, true
}

// Erased returns the erased reference to the most-derived native widget.
func (e *Entity) Erased() (native.Widget, bool) {
	v, ok := e.facets[facet.KindErased]
	if !ok {
		return nil, false
	}
	er, ok := v.(*facet.Erased)
	if !ok {
		return nil, false
	}
	return er.Object, true
}

// AttachHandles stores owned native subscription handles taken on behalf of
// the facet kind. Any handles already held for that kind are released first.
func (e *Entity) AttachHandles(kind facet.Kind, hs []native.Handle) {
	if e.handles == nil {
		e.handles = make(map[facet.Kind][]native.Handle)
	}
	e.ReleaseHandles(kind)
	if len(hs) > 0 {
		e.handles[kind] = hs
	}
}

// ReleaseHandles removes every native subscription held for the facet kind.
func (e *Entity) ReleaseHandles(kind facet.Kind) {
	for _, h := range e.handles[kind] {
		h.Remove()
	}
	delete(e.handles, kind)
}

// releaseAllHandles removes every native subscription the entity holds.
func (e *Entity) releaseAllHandles() {
	for kind := range e.handles {
		e.ReleaseHandles(kind)
	}
}

// PublishRecord stores record as the entity's current record for the event
// kind, overwriting the previous occurrence, and notifies every listener
// registered for that kind. Each occurrence is observable through the
// listeners; only the latest is retained as queryable state.
//
// Safe to call from any goroutine: native callbacks arrive on toolkit
// threads.
func (e *Entity) PublishRecord(kind native.EventKind, record any) {
	e.mu.Lock()
	if e.records == nil {
		e.records = make(map[native.EventKind]any)
	}
	e.records[kind] = record
	var fns []func(any)
	for _, fn := range e.listeners[kind] {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(record)
	}
}

// LastRecord returns the most recent record stored for the event kind.
func (e *Entity) LastRecord(kind native.EventKind) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.records[kind]
	return r, ok
}

// Listen registers a handler for occurrences of the event kind and returns
// a removal function. Handlers run on whatever goroutine published the
// record, which for native events is a toolkit thread; UI-affecting work
// inside a handler must go through native.Dispatch.
func (e *Entity) Listen(kind native.EventKind, fn func(record any)) (remove func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[native.EventKind]map[int]func(any))
	}
	if e.listeners[kind] == nil {
		e.listeners[kind] = make(map[int]func(any))
	}
	id := e.nextID
	e.nextID++
	e.listeners[kind][id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners[kind], id)
	}
}
