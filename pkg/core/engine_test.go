package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-loom/loom/pkg/bridge"
	"github.com/go-loom/loom/pkg/entity"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/native"
	"github.com/go-loom/loom/pkg/testkit"
)

// testTaxonomy is a compact chain mirroring the shape of the built-in
// catalog: clickable -> content-holder -> element -> layoutable -> visual.
func testTaxonomy(t *testing.T) *facet.Taxonomy {
	t.Helper()
	tax, err := facet.NewTaxonomy(
		facet.Descriptor{Kind: "visual"},
		facet.Descriptor{Kind: "layoutable", CascadeParent: "visual"},
		facet.Descriptor{
			Kind:          "element",
			CascadeParent: "layoutable",
			Placement:     facet.RuleChildCollection,
			Subscriptions: []native.EventKind{native.EventPointerPress},
		},
		facet.Descriptor{Kind: "content-holder", CascadeParent: "element", Content: true},
		facet.Descriptor{
			Kind:          "clickable",
			CascadeParent: "content-holder",
			Subscriptions: []native.EventKind{native.EventClick},
		},
		facet.Descriptor{Kind: "panel", CascadeParent: "element", Container: true},
		facet.Descriptor{Kind: "window", CascadeParent: "content-holder", Placement: facet.RuleNone},
	)
	require.NoError(t, err)
	return tax
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(entity.NewRegistry(), testTaxonomy(t))
}

func TestCascadeCompleteness(t *testing.T) {
	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")
	w := testkit.NewWidget("btn")

	require.NoError(t, eng.Install(btn, "clickable", w))

	for _, kind := range []facet.Kind{"clickable", "content-holder", "element", "layoutable", "visual"} {
		obj, ok := btn.RefObject(kind)
		require.True(t, ok, "facet %s should be present", kind)
		assert.Same(t, w, obj, "facet %s should wrap the identical widget", kind)
	}
	erased, ok := btn.Erased()
	require.True(t, ok)
	assert.Same(t, w, erased)
}

func TestCascadeSymmetry(t *testing.T) {
	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")
	w := testkit.NewWidget("btn")

	require.NoError(t, eng.Install(btn, "clickable", w))
	require.NoError(t, eng.Uninstall(btn, "clickable"))

	for _, kind := range []facet.Kind{"clickable", "content-holder", "element", "layoutable", "visual"} {
		assert.False(t, btn.HasFacet(kind), "facet %s should be absent", kind)
	}
	_, ok := btn.Erased()
	assert.False(t, ok, "erased reference should be gone with the last concrete facet")
}

func TestInstallIdempotent(t *testing.T) {
	eng := newTestEngine(t)
	reg := eng.Registry()

	parentW := testkit.NewWidget("panel")
	parent := reg.Ensure("panel")
	require.NoError(t, eng.Install(parent, "panel", parentW))

	childW := testkit.NewWidget("btn")
	child := reg.Ensure("panel/btn")
	reg.SetParent(child, parent)

	require.NoError(t, eng.Install(child, "clickable", childW))
	require.NoError(t, eng.Install(child, "clickable", childW))

	// exactly one occurrence in the child collection, no duplicate-append panic
	assert.Equal(t, []native.Widget{childW}, parentW.Children())
	assert.Equal(t, 1, parentW.AppendCalls)

	// subscriptions were wired exactly once
	assert.Equal(t, 1, childW.HandlerCount(native.EventClick))
	assert.Equal(t, 1, childW.HandlerCount(native.EventPointerPress))
}

func TestContentSlotAssignAndOverwrite(t *testing.T) {
	eng := newTestEngine(t)
	reg := eng.Registry()

	hostW := testkit.NewWidget("host")
	host := reg.Ensure("host")
	require.NoError(t, eng.Install(host, "window", hostW))

	aW := testkit.NewWidget("a")
	a := reg.Ensure("host/a")
	reg.SetParent(a, host)
	require.NoError(t, eng.Install(a, "clickable", aW))
	assert.Same(t, aW, hostW.Content())

	// a second child overwrites the occupant reference; disposal of the
	// previous occupant is the toolkit's business
	bW := testkit.NewWidget("b")
	b := reg.Ensure("host/b")
	reg.SetParent(b, host)
	require.NoError(t, eng.Install(b, "clickable", bW))
	assert.Same(t, bW, hostW.Content())

	// symmetric removal nils the slot only for the current occupant
	require.NoError(t, eng.Uninstall(a, "clickable"))
	assert.Same(t, bW, hostW.Content())
	require.NoError(t, eng.Uninstall(b, "clickable"))
	assert.Nil(t, hostW.Content())
}

func TestOrphanPlacementNoOp(t *testing.T) {
	eng := newTestEngine(t)
	reg := eng.Registry()

	// no parent at all
	a := reg.Ensure("orphan")
	require.NoError(t, eng.Install(a, "clickable", testkit.NewWidget("orphan")))

	// parent carrying neither container nor content capability
	plain := reg.Ensure("plain")
	require.NoError(t, eng.Install(plain, "element", testkit.NewWidget("plain")))
	kid := reg.Ensure("plain/kid")
	reg.SetParent(kid, plain)
	require.NoError(t, eng.Install(kid, "clickable", testkit.NewWidget("kid")))
	assert.True(t, kid.HasFacet("clickable"))
}

func TestUninstallAfterParentDestroyed(t *testing.T) {
	eng := newTestEngine(t)
	reg := eng.Registry()

	parentW := testkit.NewWidget("panel")
	parent := reg.Ensure("panel")
	require.NoError(t, eng.Install(parent, "panel", parentW))

	child := reg.Ensure("panel/btn")
	reg.SetParent(child, parent)
	require.NoError(t, eng.Install(child, "clickable", testkit.NewWidget("btn")))

	require.NoError(t, eng.Destroy("panel"))

	// the parent is gone; the symmetric removal degrades to a no-op
	require.NoError(t, eng.Uninstall(child, "clickable"))
	assert.False(t, child.HasFacet("clickable"))
}

func TestErasedRefreshOnReinstall(t *testing.T) {
	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")

	w1 := testkit.NewWidget("button-v1")
	w2 := testkit.NewWidget("button-v2")

	require.NoError(t, eng.Install(btn, "clickable", w1))
	require.NoError(t, eng.Install(btn, "clickable", w2))

	erased, ok := btn.Erased()
	require.True(t, ok)
	assert.Same(t, w2, erased, "erased reference should resolve to the most recently installed widget")

	// every chain member was refreshed to the new object
	obj, _ := btn.RefObject("visual")
	assert.Same(t, w2, obj)

	// subscriptions moved: the old widget's handlers were released
	assert.Equal(t, 0, w1.HandlerCount(native.EventClick))
	assert.Equal(t, 1, w2.HandlerCount(native.EventClick))
}

func TestUninstallReleasesSubscriptions(t *testing.T) {
	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")
	w := testkit.NewWidget("btn")

	require.NoError(t, eng.Install(btn, "clickable", w))
	assert.Equal(t, 1, w.HandlerCount(native.EventClick))

	var count int
	btn.Listen(native.EventClick, func(any) { count++ })
	w.Fire(native.EventClick, nil)

	require.NoError(t, eng.Uninstall(btn, "clickable"))
	assert.Equal(t, 0, w.HandlerCount(native.EventClick))
	assert.Equal(t, 0, w.HandlerCount(native.EventPointerPress))

	w.Fire(native.EventClick, nil)
	assert.Equal(t, 1, count, "no delivery after uninstall")
}

func TestEventRecordFreshnessThroughEngine(t *testing.T) {
	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")
	w := testkit.NewWidget("btn")
	require.NoError(t, eng.Install(btn, "clickable", w))

	var payloads []any
	btn.Listen(native.EventClick, func(r any) {
		payloads = append(payloads, r.(*bridge.Record).Payload)
	})

	for i := 1; i <= 5; i++ {
		w.Fire(native.EventClick, i)
	}

	assert.Equal(t, []any{1, 2, 3, 4, 5}, payloads)
	last, ok := btn.LastRecord(native.EventClick)
	require.True(t, ok)
	assert.Equal(t, 5, last.(*bridge.Record).Payload)
}

func TestUninstallMissingFacet(t *testing.T) {
	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")

	err := eng.Uninstall(btn, "clickable")
	require.Error(t, err)
	var fnf *errors.FacetNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, "btn", fnf.Entity)
	assert.Equal(t, "clickable", fnf.Kind)
	assert.Equal(t, "core.Uninstall", fnf.Op)
}

func TestUnknownKind(t *testing.T) {
	errors.SetHandler(&errors.LogHandler{})
	defer errors.SetHandler(nil)

	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")

	var terr *errors.TaxonomyError
	err := eng.Install(btn, "bogus", testkit.NewWidget("w"))
	require.ErrorAs(t, err, &terr)
	err = eng.Uninstall(btn, "bogus")
	require.ErrorAs(t, err, &terr)
}

func TestDestroyCascades(t *testing.T) {
	eng := newTestEngine(t)
	reg := eng.Registry()

	parentW := testkit.NewWidget("panel")
	parent := reg.Ensure("panel")
	require.NoError(t, eng.Install(parent, "panel", parentW))

	childW := testkit.NewWidget("btn")
	child := reg.Ensure("panel/btn")
	reg.SetParent(child, parent)
	require.NoError(t, eng.Install(child, "clickable", childW))

	require.NoError(t, eng.Destroy("panel/btn"))

	_, ok := reg.Lookup("panel/btn")
	assert.False(t, ok)
	assert.False(t, child.Live())
	assert.Empty(t, parentW.Children(), "destroy should remove the widget from the parent collection")
	assert.Equal(t, 0, childW.HandlerCount(native.EventClick))

	// destroying a missing name is a no-op
	require.NoError(t, eng.Destroy("panel/btn"))
}

func TestGuardRejectsWrongGoroutine(t *testing.T) {
	errors.SetHandler(&errors.LogHandler{})
	defer errors.SetHandler(nil)

	guard := native.NewGuard()
	eng := New(entity.NewRegistry(), testTaxonomy(t), WithGuard(guard))
	btn := eng.Registry().Ensure("btn")

	// same goroutine passes
	require.NoError(t, eng.Install(btn, "clickable", testkit.NewWidget("btn")))

	var wg sync.WaitGroup
	var err error
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = eng.Uninstall(btn, "clickable")
	}()
	wg.Wait()

	var aerr *errors.AffinityError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "core.Uninstall", aerr.Op)
	assert.True(t, btn.HasFacet("clickable"), "rejected call must not mutate")
}

// The concrete scenario from the adapter's contract: a parentless entity
// gets a leaf clickable content-holder facet; the generic content-holder
// and base visual element facets appear wrapping the identical widget, and
// uninstalling the leaf removes them all.
func TestClickableContentHolderScenario(t *testing.T) {
	eng := newTestEngine(t)
	btn := eng.Registry().Ensure("btn")
	w := testkit.NewWidget("W")

	require.NoError(t, eng.Install(btn, "clickable", w))

	holder, ok := btn.RefObject("content-holder")
	require.True(t, ok)
	element, ok2 := btn.RefObject("element")
	require.True(t, ok2)
	assert.Same(t, w, holder)
	assert.Same(t, w, element)

	require.NoError(t, eng.Uninstall(btn, "clickable"))
	assert.False(t, btn.HasFacet("content-holder"))
	assert.False(t, btn.HasFacet("element"))
}
