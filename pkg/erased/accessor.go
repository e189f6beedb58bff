// Package erased implements the reflective fallback accessor: generic
// get/set/invoke by member name over an entity's erased reference, used when
// no statically-typed facet exposes the member.
//
// This is deliberately a fallback path. Its one contract is that a missing
// member is surfaced as a typed error, never silently coerced into a
// default value.
package erased

import (
	"fmt"
	"reflect"

	"github.com/go-loom/loom/pkg/entity"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/facet"
)

// Get returns the value of the named member on the entity's erased object:
// an exported field, or the result of a niladic single-result method.
func Get(e *entity.Entity, member string) (any, error) {
	const op = "erased.Get"
	obj, err := object(e, op)
	if err != nil {
		return nil, err
	}

	if f, ok := field(obj, member); ok {
		return f.Interface(), nil
	}
	if m, ok := method(obj, member); ok && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0].Interface(), nil
	}
	return nil, notFound(e, member, obj, op)
}

// Set assigns value to the named exported field on the entity's erased
// object, converting primitive types as needed. The erased object must be a
// pointer for the field to be addressable.
func Set(e *entity.Entity, member string, value any) error {
	const op = "erased.Set"
	obj, err := object(e, op)
	if err != nil {
		return err
	}

	f, ok := field(obj, member)
	if !ok || !f.CanSet() {
		return notFound(e, member, obj, op)
	}
	converted, ok := coerce(value, f.Type())
	if !ok {
		return &errors.LoomError{
			Op:     op,
			Kind:   errors.KindMember,
			Entity: e.Name(),
			Err:    fmt.Errorf("cannot convert %T to %s for member %q", value, f.Type(), member),
		}
	}
	f.Set(converted)
	return nil
}

// Invoke calls the named method on the entity's erased object, converting
// primitive argument types as needed, and returns the results.
func Invoke(e *entity.Entity, member string, args ...any) ([]any, error) {
	const op = "erased.Invoke"
	obj, err := object(e, op)
	if err != nil {
		return nil, err
	}

	m, ok := method(obj, member)
	if !ok {
		return nil, notFound(e, member, obj, op)
	}
	mt := m.Type()
	if mt.NumIn() != len(args) && !mt.IsVariadic() {
		return nil, &errors.LoomError{
			Op:     op,
			Kind:   errors.KindMember,
			Entity: e.Name(),
			Err:    fmt.Errorf("member %q takes %d arguments, got %d", member, mt.NumIn(), len(args)),
		}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= mt.NumIn()-1 {
			pt = mt.In(mt.NumIn() - 1).Elem()
		} else {
			pt = mt.In(i)
		}
		converted, ok := coerce(arg, pt)
		if !ok {
			return nil, &errors.LoomError{
				Op:     op,
				Kind:   errors.KindMember,
				Entity: e.Name(),
				Err:    fmt.Errorf("cannot convert argument %d (%T) to %s for member %q", i, arg, pt, member),
			}
		}
		in[i] = converted
	}

	out := m.Call(in)
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// object resolves the entity's erased reference.
func object(e *entity.Entity, op string) (any, error) {
	obj, ok := e.Erased()
	if !ok || obj == nil {
		return nil, &errors.FacetNotFoundError{
			Entity: e.Name(),
			Kind:   facet.KindErased.String(),
			Op:     op,
		}
	}
	return obj, nil
}

// field locates an exported struct field by name, following one level of
// pointer indirection.
func field(obj any, name string) (reflect.Value, bool) {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return reflect.Value{}, false
	}
	return f, true
}

// method locates an exported method by name, on the value or its pointer.
func method(obj any, name string) (reflect.Value, bool) {
	v := reflect.ValueOf(obj)
	m := v.MethodByName(name)
	if m.IsValid() {
		return m, true
	}
	return reflect.Value{}, false
}

func notFound(e *entity.Entity, member string, obj any, op string) error {
	return &errors.MemberNotFoundError{
		Entity: e.Name(),
		Member: member,
		Type:   fmt.Sprintf("%T", obj),
		Op:     op,
	}
}
