package is

import (
	"reflect"
	"strings"
	"time"
)

// Defined reports whether v carries an actual value. Untyped nil and typed
// nil pointers, maps, slices, channels, functions and interfaces all count
// as undefined.
func Defined(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

// Empty implements the shared emptiness rule: undefined values,
// whitespace-only strings and zero-length collections are empty. Functions
// and dates are never empty, and neither are numbers or booleans, so zero
// and false still count as "something".
func Empty(v any) bool {
	if !Defined(v) {
		return true
	}

	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	case time.Time, *time.Time:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr:
		return Empty(rv.Elem().Interface())
	default:
		return false
	}
}

// WhitespaceOnly reports whether v is a string containing nothing but
// whitespace (including the empty string).
func WhitespaceOnly(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// String reports whether v is a string.
func String(v any) bool {
	_, ok := v.(string)
	return ok
}

// Bool reports whether v is a boolean.
func Bool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// Number reports whether v is any integer or floating point value.
// Booleans are not numbers.
func Number(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Integer reports whether v is a number with no fractional part.
func Integer(v any) bool {
	if !Number(v) {
		return false
	}
	f, _ := Float(v)
	return f == float64(int64(f))
}

// Float converts any numeric value to float64. The second return value is
// false when v is not numeric.
func Float(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// Array reports whether v is a slice or array. Strings are not arrays.
func Array(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// Hash reports whether v is a map.
func Hash(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// Date reports whether v is a time.Time or *time.Time.
func Date(v any) bool {
	switch v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return v.(*time.Time) != nil
	default:
		return false
	}
}

// Function reports whether v is callable.
func Function(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// DeepEqual reports structural equality, used for de-duplicating rendered
// error values.
func DeepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
