package native

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/go-loom/loom/pkg/errors"
)

// Guard pins the registry and widget tree to a single owning goroutine.
//
// The entity registry and the native tree are shared mutable state with a
// single-writer discipline: only the UI-affine goroutine may mutate them.
// A Guard turns that convention into a runtime check. Bind it from the UI
// goroutine, hand it to the engine, and every mutating operation asserts
// the caller.
type Guard struct {
	owner atomic.Int64
}

// NewGuard returns a guard bound to the calling goroutine.
func NewGuard() *Guard {
	g := &Guard{}
	g.Bind()
	return g
}

// Bind captures the calling goroutine as the owner of the widget tree.
func (g *Guard) Bind() {
	g.owner.Store(goroutineID())
}

// Check reports whether the calling goroutine is the bound owner.
// An unbound guard passes every check.
func (g *Guard) Check() bool {
	owner := g.owner.Load()
	return owner == 0 || owner == goroutineID()
}

// Assert reports an AffinityError through the global error handler when the
// calling goroutine is not the bound owner. Returns the error, or nil.
func (g *Guard) Assert(op string) error {
	owner := g.owner.Load()
	if owner == 0 {
		return nil
	}
	caller := goroutineID()
	if caller == owner {
		return nil
	}
	err := &errors.AffinityError{Op: op, Owner: owner, Caller: caller}
	errors.Report(&errors.LoomError{
		Op:   op,
		Kind: errors.KindAffinity,
		Err:  err,
	})
	return err
}

// goroutineID parses the current goroutine id from the runtime stack header
// ("goroutine N [running]:"). There is no public API for this; the header
// format has been stable across releases.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
