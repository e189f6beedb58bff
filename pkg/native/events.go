package native

// EventKind names a native event a widget can raise.
type EventKind string

// Native event kinds understood by the built-in taxonomy. A toolkit binding
// may define additional kinds; the bridge treats the set as open.
const (
	EventPointerPress   EventKind = "pointer.press"
	EventPointerRelease EventKind = "pointer.release"
	EventPointerMove    EventKind = "pointer.move"
	EventKeyDown        EventKind = "key.down"
	EventKeyUp          EventKind = "key.up"
	EventFocusGained    EventKind = "focus.gained"
	EventFocusLost      EventKind = "focus.lost"
	EventClick          EventKind = "click"
	EventTextChanged    EventKind = "text.changed"
	EventValueChanged   EventKind = "value.changed"
	EventClosed         EventKind = "closed"
)

// Event is a single native occurrence as delivered by the toolkit.
//
// The toolkit chooses the delivery thread, which is explicitly not the
// UI-affine thread. Handlers must not mutate native widget state directly;
// any UI-affecting reaction goes through Dispatch.
type Event struct {
	// Kind is the event kind this occurrence belongs to.
	Kind EventKind
	// Sender is the native widget that raised the event.
	Sender Widget
	// Payload is the toolkit-specific argument object.
	Payload any
}

// Handler receives native event occurrences.
type Handler func(ev Event)

// Handle is an owned native subscription. Every subscription taken on
// install must be released on uninstall by calling Remove.
type Handle interface {
	// Remove releases the subscription. Removing an already-removed
	// handle is a no-op.
	Remove()
}

// EventSource is implemented by widgets that raise native events.
type EventSource interface {
	// AddHandler subscribes fn to occurrences of kind and returns the
	// owned subscription handle.
	AddHandler(kind EventKind, fn Handler) Handle
}
