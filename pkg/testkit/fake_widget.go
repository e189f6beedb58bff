// Package testkit provides a fake native toolkit for exercising the engine,
// mirror, and bridge without a real widget library.
package testkit

import (
	"sync"

	"github.com/go-loom/loom/pkg/native"
)

// FakeWidget is an in-memory stand-in for a toolkit widget. It implements
// native.Container, native.ContentHost, and native.EventSource, and records
// every mutation so tests can assert exact mirror behavior.
type FakeWidget struct {
	// Label identifies the widget in test failures.
	Label string

	mu       sync.Mutex
	children []native.Widget
	content  native.Widget
	handlers map[native.EventKind]map[int]native.Handler
	nextID   int

	// AppendCalls counts AppendChild invocations, duplicates included.
	AppendCalls int
	// RemoveCalls counts RemoveChild invocations.
	RemoveCalls int
	// ContentSets counts SetContent invocations.
	ContentSets int
}

// NewWidget returns a fake widget with the given label.
func NewWidget(label string) *FakeWidget {
	return &FakeWidget{Label: label}
}

// Children implements native.Container.
func (w *FakeWidget) Children() []native.Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]native.Widget, len(w.children))
	copy(out, w.children)
	return out
}

// ContainsChild implements native.Container.
func (w *FakeWidget) ContainsChild(child native.Widget) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, c := range w.children {
		if c == child {
			return true
		}
	}
	return false
}

// AppendChild implements native.Container. Appending a widget already in
// the collection panics, the way real toolkit containers reject duplicate
// children; the mirror's membership check is what keeps this from firing.
func (w *FakeWidget) AppendChild(child native.Widget) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.AppendCalls++
	for _, c := range w.children {
		if c == child {
			panic("testkit: duplicate child appended to " + w.Label)
		}
	}
	w.children = append(w.children, child)
}

// RemoveChild implements native.Container.
func (w *FakeWidget) RemoveChild(child native.Widget) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.RemoveCalls++
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

// Content implements native.ContentHost.
func (w *FakeWidget) Content() native.Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content
}

// SetContent implements native.ContentHost.
func (w *FakeWidget) SetContent(child native.Widget) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ContentSets++
	w.content = child
}

type fakeHandle struct {
	widget *FakeWidget
	kind   native.EventKind
	id     int
}

func (h *fakeHandle) Remove() {
	h.widget.mu.Lock()
	defer h.widget.mu.Unlock()
	delete(h.widget.handlers[h.kind], h.id)
}

// AddHandler implements native.EventSource.
func (w *FakeWidget) AddHandler(kind native.EventKind, fn native.Handler) native.Handle {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.handlers == nil {
		w.handlers = make(map[native.EventKind]map[int]native.Handler)
	}
	if w.handlers[kind] == nil {
		w.handlers[kind] = make(map[int]native.Handler)
	}
	id := w.nextID
	w.nextID++
	w.handlers[kind][id] = fn
	return &fakeHandle{widget: w, kind: kind, id: id}
}

// HandlerCount returns the number of live subscriptions for the event kind.
func (w *FakeWidget) HandlerCount(kind native.EventKind) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.handlers[kind])
}

// Fire synchronously delivers one occurrence of kind with the given payload
// to every live handler, the widget itself as sender. Returns the number of
// handlers invoked.
func (w *FakeWidget) Fire(kind native.EventKind, payload any) int {
	w.mu.Lock()
	fns := make([]native.Handler, 0, len(w.handlers[kind]))
	for _, fn := range w.handlers[kind] {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	ev := native.Event{Kind: kind, Sender: w, Payload: payload}
	for _, fn := range fns {
		fn(ev)
	}
	return len(fns)
}

// SyncDispatch registers an inline dispatcher so Dispatch callbacks run
// immediately on the calling goroutine. Returns a restore function.
func SyncDispatch() (restore func()) {
	native.RegisterDispatch(func(cb func()) { cb() })
	return func() { native.RegisterDispatch(nil) }
}
