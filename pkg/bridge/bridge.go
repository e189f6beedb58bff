// Package bridge translates native widget events into entity notifications.
//
// Subscriptions are taken when a facet kind declaring them is installed and
// are owned: the engine stores the returned handles on the entity and
// releases them on uninstall, so a reinstalled facet never sees duplicate
// delivery and an uninstalled one sees none.
package bridge

import (
	"sync/atomic"
	"time"

	"github.com/go-loom/loom/pkg/entity"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/native"
)

// Record is the typed event record stored per entity and event kind. Each
// native occurrence overwrites the stored record for its kind; every
// occurrence is observable through entity.Listen at the moment it fires.
type Record struct {
	// Event is the native event kind the occurrence belongs to.
	Event native.EventKind
	// Sender is the native widget that raised the event.
	Sender native.Widget
	// Payload is the toolkit-specific argument object.
	Payload any
	// Seq is a bridge-wide monotonic sequence number.
	Seq uint64
	// Time is when the bridge observed the occurrence.
	Time time.Time
}

// Bridge wires native event sources to entity notifications.
type Bridge struct {
	reg *entity.Registry
	seq atomic.Uint64
}

// New returns a bridge publishing into the given registry.
func New(reg *entity.Registry) *Bridge {
	return &Bridge{reg: reg}
}

// Wire subscribes to each of the given native event kinds on src and returns
// the owned handles. The closures capture the entity name only, never a
// facet value: delivery resolves the name at fire time, so events raised
// after the entity is destroyed are dropped.
//
// Callbacks run on whatever thread the toolkit delivers them on, which is
// explicitly not the UI-affine thread. Storing the record and notifying
// listeners is safe there; anything touching native state must be handed to
// native.Dispatch by the listener.
func (b *Bridge) Wire(name string, kinds []native.EventKind, src native.EventSource) []native.Handle {
	handles := make([]native.Handle, 0, len(kinds))
	for _, kind := range kinds {
		h := src.AddHandler(kind, func(ev native.Event) {
			b.deliver(name, ev)
		})
		if h != nil {
			handles = append(handles, h)
		}
	}
	return handles
}

// deliver builds the record for one occurrence and publishes it.
func (b *Bridge) deliver(name string, ev native.Event) {
	defer errors.Recover("bridge.deliver")

	e, ok := b.reg.Lookup(name)
	if !ok {
		return
	}
	rec := &Record{
		Event:   ev.Kind,
		Sender:  ev.Sender,
		Payload: ev.Payload,
		Seq:     b.seq.Add(1),
		Time:    time.Now(),
	}
	e.PublishRecord(ev.Kind, rec)
}
