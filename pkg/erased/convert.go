package erased

import "reflect"

// toInt64 converts various numeric types to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// toUint64 converts various numeric types to uint64.
func toUint64(v any) (uint64, bool) {
	n, ok := toInt64(v)
	if !ok || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

// toFloat64 converts various numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		i, ok := toInt64(v)
		if !ok {
			return 0, false
		}
		return float64(i), true
	}
}

// coerce adapts value to the target type, converting primitive numeric,
// string, and bool values as needed. Returns false when no safe conversion
// exists; a failed coercion is never papered over with a zero value.
func coerce(value any, target reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch target.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(target), true
		default:
			return reflect.Value{}, false
		}
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(target) {
		return rv, true
	}

	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := toInt64(value); ok {
			out := reflect.New(target).Elem()
			out.SetInt(n)
			return out, true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := toUint64(value); ok {
			out := reflect.New(target).Elem()
			out.SetUint(n)
			return out, true
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat64(value); ok {
			out := reflect.New(target).Elem()
			out.SetFloat(f)
			return out, true
		}
	case reflect.String:
		if s, ok := value.(string); ok {
			out := reflect.New(target).Elem()
			out.SetString(s)
			return out, true
		}
	case reflect.Bool:
		if b, ok := value.(bool); ok {
			out := reflect.New(target).Elem()
			out.SetBool(b)
			return out, true
		}
	}

	if rv.Type().ConvertibleTo(target) {
		return rv.Convert(target), true
	}
	return reflect.Value{}, false
}
