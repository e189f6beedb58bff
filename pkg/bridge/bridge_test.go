package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-loom/loom/pkg/entity"
	"github.com/go-loom/loom/pkg/native"
	"github.com/go-loom/loom/pkg/testkit"
)

func TestWireDeliversRecords(t *testing.T) {
	reg := entity.NewRegistry()
	e := reg.Ensure("btn")
	w := testkit.NewWidget("btn")
	b := New(reg)

	var seen []*Record
	e.Listen(native.EventClick, func(r any) { seen = append(seen, r.(*Record)) })

	handles := b.Wire("btn", []native.EventKind{native.EventClick, native.EventPointerPress}, w)
	require.Len(t, handles, 2)

	w.Fire(native.EventClick, "first")
	w.Fire(native.EventClick, "second")

	require.Len(t, seen, 2)
	assert.Equal(t, "first", seen[0].Payload)
	assert.Equal(t, "second", seen[1].Payload)
	assert.Equal(t, native.EventClick, seen[1].Event)
	assert.Same(t, w, seen[1].Sender)
	assert.Greater(t, seen[1].Seq, seen[0].Seq)
	assert.False(t, seen[1].Time.IsZero())

	// only the latest occurrence is retained as queryable state
	last, ok := e.LastRecord(native.EventClick)
	require.True(t, ok)
	assert.Equal(t, "second", last.(*Record).Payload)
}

func TestWireCapturesIdentifierNotEntity(t *testing.T) {
	reg := entity.NewRegistry()
	reg.Ensure("btn")
	w := testkit.NewWidget("btn")
	b := New(reg)

	b.Wire("btn", []native.EventKind{native.EventClick}, w)

	// destroy the entity; later occurrences resolve the name and drop
	reg.Remove("btn")
	w.Fire(native.EventClick, nil)

	// a recreated entity under the same name receives subsequent events
	e := reg.Ensure("btn")
	var count int
	e.Listen(native.EventClick, func(any) { count++ })
	w.Fire(native.EventClick, nil)
	assert.Equal(t, 1, count)
}

func TestHandleRemoveStopsDelivery(t *testing.T) {
	reg := entity.NewRegistry()
	e := reg.Ensure("btn")
	w := testkit.NewWidget("btn")
	b := New(reg)

	var count int
	e.Listen(native.EventClick, func(any) { count++ })

	handles := b.Wire("btn", []native.EventKind{native.EventClick}, w)
	w.Fire(native.EventClick, nil)
	for _, h := range handles {
		h.Remove()
	}
	w.Fire(native.EventClick, nil)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, w.HandlerCount(native.EventClick))
}
