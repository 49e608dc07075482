package hash

import (
	"reflect"
	"unsafe"
)

// PointerHash - Hashes pointers by address, two keys are equal only if they point to the same variable
type PointerHash[T any] struct{}

// Hash - Returns the mixed address of key
func (O PointerHash[T]) Hash(key *T) uint64 {
	return Mix64(uint64(uintptr(unsafe.Pointer(key))))
}

// Equal - Returns true if a and b point to the same variable
func (O PointerHash[T]) Equal(a, b *T) bool {
	return a == b
}

// KindHash - Hashes keys of any named type whose kind is a string, number, bool, pointer or channel by looking at
// the kind through reflection. Floats follow FloatEqual, every other kind compares with ==.
type KindHash[K any] struct {
	kind reflect.Kind
}

// NewKindHash - Returns a KindHash for K.
// It returns ok as false if the kind of K has no hash, which is the case for interfaces, structs, arrays, maps,
// slices and functions.
func NewKindHash[K any]() (kh KindHash[K], ok bool) {
	kind := reflect.TypeOf((*K)(nil)).Elem().Kind()
	switch kind {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		kh, ok = KindHash[K]{kind: kind}, true
	}

	return
}

// Hash - Returns a hash of key according to its kind
func (O KindHash[K]) Hash(key K) uint64 {
	v := reflect.ValueOf(key)
	switch O.kind {
	case reflect.String:
		return Djb2(v.String())
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return Float(v.Float())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return Mix64(uint64(v.Pointer()))
	}

	return 0
}

// Equal - Returns true if a and b are equal according to their kind
func (O KindHash[K]) Equal(a, b K) bool {
	if O.kind == reflect.Float32 || O.kind == reflect.Float64 {
		return FloatEqual(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
	}

	return any(a) == any(b)
}
