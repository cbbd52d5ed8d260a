package reflecthelpers

import (
	"reflect"
)

// GetBaseType returns the base type of the given type by dereferencing pointers.
func GetBaseType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// GetElemType returns the element type of the given type by dereferencing pointers, arrays, and slices.
func GetElemType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Array || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t
}

// Indirect dereferences pointers and unwraps interfaces until it reaches a
// concrete value. It stops at nil pointers and nil interfaces.
func Indirect(v reflect.Value) reflect.Value {
	for {
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return v
			}
			v = v.Elem()
		default:
			return v
		}
	}
}

// IsNil reports whether v holds no value at all, either because it is the
// zero reflect.Value or because it is a nil-able kind that is nil.
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// SafeInterface returns v.Interface() guarding against the panics reflect
// raises for unexported or otherwise unreadable values.
func SafeInterface(v reflect.Value) (i any, ok bool) {
	defer func() {
		if recover() != nil {
			i, ok = nil, false
		}
	}()

	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}
