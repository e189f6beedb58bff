package entity

import (
	"sort"
	"sync"
)

// Registry holds every live entity by stable name.
//
// Mutation follows the single-writer discipline (the UI-affine goroutine);
// the internal lock exists because the event bridge resolves entity names
// from toolkit threads, not to make concurrent mutation safe.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]*Entity
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]*Entity)}
}

// Ensure returns the entity named name, creating it if absent.
func (r *Registry) Ensure(name string) *Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entities[name]; ok {
		return e
	}
	e := newEntity(name)
	r.entities[name] = e
	return e
}

// Lookup returns the entity named name, if it exists.
func (r *Registry) Lookup(name string) (*Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[name]
	return e, ok
}

// Remove deletes the entity from the registry and marks it dead, releasing
// any native subscriptions it still holds. Children keep their stale parent
// reference; placement against a dead parent is a no-op. Facet uninstall
// cascades are the engine's job and must run before Remove.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	e, ok := r.entities[name]
	if ok {
		delete(r.entities, name)
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	e.live = false
	e.releaseAllHandles()
}

// SetParent sets child's navigational parent reference. Pass nil to clear.
func (r *Registry) SetParent(child, parent *Entity) {
	child.parent = parent
}

// Children returns the live entities whose parent is e, sorted by name.
// Children are derived by query; the parent stores nothing.
func (r *Registry) Children(e *Entity) []*Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var kids []*Entity
	for _, c := range r.entities {
		if c.parent == e {
			kids = append(kids, c)
		}
	}
	sort.Slice(kids, func(i, j int) bool { return kids[i].name < kids[j].name })
	return kids
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}

// Names returns every live entity name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entities))
	for n := range r.entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
