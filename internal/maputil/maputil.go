// Package maputil provides small generic helpers for maps and nil-filtering of collections.
package maputil

import (
	"cmp"
	"reflect"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
// A nil map yields an empty, non-nil slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IsNil reports whether v is a nil value: an untyped nil, or a nil pointer,
// possibly boxed in an interface. Empty or nil slices and maps are not nil values.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	return isNilValue(reflect.ValueOf(v))
}

func isNilValue(v reflect.Value) bool {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// FilterNil removes nil values from slices and maps. For maps, entries whose key is
// nil are removed as well. The result has the same type as v and preserves slice
// ordering. When nothing is removed, v itself is returned. Any other value,
// including arrays, passes through unchanged.
func FilterNil(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), 0, rv.Len())
		for i := range rv.Len() {
			elem := rv.Index(i)
			if isNilValue(elem) {
				continue
			}
			out = reflect.Append(out, elem)
		}
		if out.Len() == rv.Len() {
			return v
		}
		return out.Interface()

	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if isNilValue(iter.Key()) || isNilValue(iter.Value()) {
				continue
			}
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		if out.Len() == rv.Len() {
			return v
		}
		return out.Interface()
	}
	return v
}
