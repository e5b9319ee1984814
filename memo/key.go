package memo

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// mayHoldUnhashable reports whether a value of static type t can carry a
// slice, map or func behind an interface, which would panic as a map key.
func mayHoldUnhashable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayHoldUnhashable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if mayHoldUnhashable(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func unhashableType(v reflect.Value) (reflect.Type, bool) {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
		return unhashableType(v.Elem())
	case reflect.Struct:
		for i := range v.NumField() {
			if t, bad := unhashableType(v.Field(i)); bad {
				return t, true
			}
		}
	case reflect.Array:
		for i := range v.Len() {
			if t, bad := unhashableType(v.Index(i)); bad {
				return t, true
			}
		}
	case reflect.Slice, reflect.Map, reflect.Func:
		return v.Type(), true
	}
	return nil, false
}

// checkKey returns an *UnhashableKeyError if key cannot index a map.
func checkKey[K comparable](key K) error {
	v := reflect.ValueOf(&key).Elem()
	if _, ok := any(key).(tuple); ok {
		for i := range v.NumField() {
			if t, bad := unhashableType(v.Field(i)); bad {
				return &UnhashableKeyError{Position: i, Type: t}
			}
		}
		return nil
	}
	if t, bad := unhashableType(v); bad {
		return &UnhashableKeyError{Position: 0, Type: t}
	}
	return nil
}

func keyHash(key any) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%v", key))
}
