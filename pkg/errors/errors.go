// Package errors provides structured error handling for the Loom adapter layer.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindFacet indicates a required facet was absent from an entity.
	KindFacet
	// KindMember indicates the reflective fallback could not locate a member.
	KindMember
	// KindTaxonomy indicates invalid facet taxonomy registration data.
	KindTaxonomy
	// KindAffinity indicates a mutating call from the wrong goroutine.
	KindAffinity
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindFacet:
		return "facet"
	case KindMember:
		return "member"
	case KindTaxonomy:
		return "taxonomy"
	case KindAffinity:
		return "affinity"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LoomError represents a structured error in the Loom adapter layer.
type LoomError struct {
	// Op is the operation that failed (e.g., "core.Install").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Entity is the name of the entity involved, if applicable.
	Entity string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LoomError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s [%s] entity=%s: %v", e.Op, e.Kind, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoomError) Unwrap() error {
	return e.Err
}

// FacetNotFoundError reports an operation that required a facet kind
// absent from the entity. It is always surfaced to the caller and never
// retried internally.
type FacetNotFoundError struct {
	// Entity is the name of the entity the operation targeted.
	Entity string
	// Kind is the string form of the missing facet kind.
	Kind string
	// Op is the operation that required the facet (e.g., "core.Uninstall").
	Op string
}

func (e *FacetNotFoundError) Error() string {
	return fmt.Sprintf("%s: entity %q has no %q facet", e.Op, e.Entity, e.Kind)
}

// MemberNotFoundError reports a reflective fallback that could not locate
// a named property or method on the erased object.
type MemberNotFoundError struct {
	// Entity is the name of the entity the lookup targeted.
	Entity string
	// Member is the member name that was attempted.
	Member string
	// Type is the runtime type of the erased object.
	Type string
	// Op is the accessor operation ("erased.Get", "erased.Set", "erased.Invoke").
	Op string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("%s: entity %q: no member %q on %s", e.Op, e.Entity, e.Member, e.Type)
}

// TaxonomyError reports invalid facet registration data detected while
// constructing a taxonomy table.
type TaxonomyError struct {
	// Kind is the string form of the facet kind the defect was found on.
	Kind string
	// Reason describes the defect (duplicate kind, dangling parent, cycle).
	Reason string
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("taxonomy: kind %q: %s", e.Kind, e.Reason)
}

// AffinityError reports a mutating operation invoked from a goroutine other
// than the one owning the native widget tree.
type AffinityError struct {
	// Op is the mutating operation.
	Op string
	// Owner is the goroutine id bound as the owner.
	Owner int64
	// Caller is the goroutine id the call arrived on.
	Caller int64
}

func (e *AffinityError) Error() string {
	return fmt.Sprintf("%s called from goroutine %d, widget tree owned by goroutine %d", e.Op, e.Caller, e.Owner)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "bridge.deliver").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Loom adapter layer.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LoomError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
