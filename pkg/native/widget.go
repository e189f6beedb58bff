// Package native defines the interfaces through which Loom reaches the host
// UI toolkit, plus the UI-thread dispatch and affinity primitives.
//
// Loom never constructs or destroys native widgets. Facets hold references to
// them, and the tree mirror moves those references between parent containers
// and content slots through the interfaces below.
package native

// Widget is a reference to a toolkit-owned object. The concrete type belongs
// to the host toolkit; Loom treats it as opaque except where it implements
// one of the capability interfaces in this package.
type Widget any

// Container is implemented by widgets holding an ordered child collection.
type Container interface {
	// Children returns the current child list in order.
	Children() []Widget
	// ContainsChild reports whether w is already in the child collection.
	ContainsChild(w Widget) bool
	// AppendChild inserts w at the end of the child collection.
	AppendChild(w Widget)
	// RemoveChild removes w from the child collection if present.
	RemoveChild(w Widget)
}

// ContentHost is implemented by widgets with a single content slot.
type ContentHost interface {
	// Content returns the current occupant of the content slot, or nil.
	Content() Widget
	// SetContent assigns w into the content slot, replacing any previous
	// occupant reference. Disposal of the previous occupant is the
	// toolkit's responsibility.
	SetContent(w Widget)
}
