// Package dyn introspects dynamically-typed values.
//
// The checker treats values as plain "any" and asks this package what they
// are: their kind name, whether they are callable, whether a number has an
// integer representation, whether a table-like value is a contiguous list,
// and so on. Capability interfaces are probed structurally, so callers never
// import this package to satisfy them.
package dyn

import (
	"io/fs"
	"math"
	"reflect"
)

// callable is the structural probe for the call capability. A value carrying
// this method is invocable like a function even though it is not one.
type callable interface {
	Call(args ...any) ([]any, error)
}

// lengther is the structural probe for the length capability. It takes
// priority over the string-conversion capability when both are present.
type lengther interface {
	Len() int
}

// stringConverter is the structural probe for the string-conversion
// capability.
type stringConverter interface {
	String() string
}

// Kind names the fundamental kind of a value: "nil", "boolean", "number",
// "string", "function", or "table". Named record types (structs and
// pointers to structs) report their own type name; an anonymous record
// reports "table".
func Kind(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Func:
		return "function"
	case reflect.Map, reflect.Slice, reflect.Array:
		return "table"
	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		if rv.Elem().Kind() == reflect.Struct {
			return structName(rv.Elem().Type())
		}
		return Kind(rv.Elem().Interface())
	case reflect.Struct:
		return structName(rv.Type())
	default:
		return rv.Type().String()
	}
}

func structName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return "table"
}

// IsRecord reports whether the value is record-like: a struct or a non-nil
// pointer to one.
func IsRecord(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

// IsFunc reports whether the value is literally a function.
func IsFunc(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Func
}

// IsCallable reports whether the value is a function or carries the call
// capability.
func IsCallable(v any) bool {
	if IsFunc(v) {
		return true
	}
	_, ok := v.(callable)
	return ok
}

// IsFile reports whether the value is an open-file-like object.
func IsFile(v any) bool {
	_, ok := v.(fs.File)
	return ok
}

// IsNumber reports whether the value is of a numeric kind.
func IsNumber(v any) bool {
	return v != nil && Kind(v) == "number"
}

// NumberKind names the numeric subtype of a value, "integer" or "float".
// ok is false for non-numeric values. The distinction feeds diagnostics
// only; matching treats integer-valued floats as integers.
func NumberKind(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer", true
	case reflect.Float32, reflect.Float64:
		return "float", true
	}
	return "", false
}

// IsIntegral reports whether a numeric value has an exact integer
// representation: any integer kind, or a float with zero fractional part.
func IsIntegral(v any) bool {
	sub, ok := NumberKind(v)
	if !ok {
		return false
	}
	if sub == "integer" {
		return true
	}
	f := reflect.ValueOf(v).Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}

// IsTable reports whether the value is table-like: a map, slice, or array.
func IsTable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// Length returns the number of entries in a table-like value. A value
// carrying the length capability answers through it, ahead of both the
// string-conversion capability and reflection.
func Length(v any) (int, bool) {
	if l, ok := v.(lengther); ok {
		return l.Len(), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len(), true
	}
	return 0, false
}

// ToString renders a value through its string-conversion capability.
func ToString(v any) (string, bool) {
	if s, ok := v.(stringConverter); ok {
		return s.String(), true
	}
	return "", false
}

// IsList reports whether the value is list-like: a slice or array, or a map
// whose keys form the contiguous integer range 1..len. The empty map and
// the empty slice are both lists of length zero.
func IsList(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Map:
		n := rv.Len()
		seen := make(map[int64]bool, n)
		for _, k := range rv.MapKeys() {
			i, ok := intKey(k)
			if !ok || i < 1 || i > int64(n) || seen[i] {
				return false
			}
			seen[i] = true
		}
		return true
	}
	return false
}

// intKey extracts an exact integer from a map key, unwrapping interface
// keys first.
func intKey(k reflect.Value) (int64, bool) {
	if k.Kind() == reflect.Interface {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return k.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := k.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := k.Float()
		if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}
