package dyn

import (
	"fmt"
	"reflect"
	"sort"
)

// Element is one entry of a table-like value. Slice and array elements carry
// 1-based integer keys to match the house numbering of diagnostics.
type Element struct {
	Key   any
	Value any
}

// Elements enumerates the entries of a table-like value in deterministic
// order: slices and arrays in index order, maps sorted by key with integer
// keys numerically first, then string keys lexicographically, then everything
// else by its printed form. Non-table values yield nil.
func Elements(v any) []Element {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]Element, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Element{Key: i + 1, Value: rv.Index(i).Interface()}
		}
		return out
	case reflect.Map:
		keys := rv.MapKeys()
		var ints, strs, rest []reflect.Value
		for _, k := range keys {
			kk := k
			if kk.Kind() == reflect.Interface {
				kk = kk.Elem()
			}
			switch {
			case isIntKind(kk.Kind()):
				ints = append(ints, k)
			case kk.Kind() == reflect.String:
				strs = append(strs, k)
			default:
				rest = append(rest, k)
			}
		}
		sort.Slice(ints, func(i, j int) bool {
			return numKey(ints[i]) < numKey(ints[j])
		})
		sort.Slice(strs, func(i, j int) bool {
			return keyString(strs[i]) < keyString(strs[j])
		})
		sort.Slice(rest, func(i, j int) bool {
			return fmt.Sprint(rest[i].Interface()) < fmt.Sprint(rest[j].Interface())
		})
		out := make([]Element, 0, len(keys))
		for _, group := range [][]reflect.Value{ints, strs, rest} {
			for _, k := range group {
				out = append(out, Element{
					Key:   keyValue(k),
					Value: rv.MapIndex(k).Interface(),
				})
			}
		}
		return out
	}
	return nil
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func numKey(k reflect.Value) float64 {
	if k.Kind() == reflect.Interface {
		k = k.Elem()
	}
	switch {
	case k.CanInt():
		return float64(k.Int())
	case k.CanUint():
		return float64(k.Uint())
	case k.CanFloat():
		return k.Float()
	}
	return 0
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.Interface {
		k = k.Elem()
	}
	return k.String()
}

func keyValue(k reflect.Value) any {
	return k.Interface()
}
