// Package hashfunc defines the capability a HashMap needs from its keys, a hash function and an equality function
// supplied together as one HashAlgorithm, along with ready made algorithms for the common key kinds.
package hashfunc

import (
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/internal/hash"
	"reflect"
)

// HashAlgorithm - Interface that permits an implementation using the HashMap to supply a custom hash and equality
// suited for its particular kind of keys.
// The two functions must agree: keys that are Equal must have the same Hash. Since both are methods on one value
// it is not possible to replace one without the other.
type HashAlgorithm[K any] interface {
	// Hash - Given key it generates a hash value, the HashMap reduces it modulo its capacity to select a bucket
	Hash(key K) uint64

	// Equal - Returns true if a and b denote the same key
	Equal(a, b K) bool
}

// funcPair - HashAlgorithm made of two plain functions
type funcPair[K any] struct {
	hash  func(key K) uint64
	equal func(a, b K) bool
}

func (O funcPair[K]) Hash(key K) uint64 {
	return O.hash(key)
}

func (O funcPair[K]) Equal(a, b K) bool {
	return O.equal(a, b)
}

// New - Returns a HashAlgorithm made of the hash and equal functions.
// It returns an error of type containers.InvalidArgument if either of them is nil.
func New[K any](hashFn func(key K) uint64, equalFn func(a, b K) bool) (ha HashAlgorithm[K], err error) {
	if hashFn == nil || equalFn == nil {
		err = containers.NewInvalidArgument("hash and equal functions must be supplied as a pair")
		return
	}

	ha = funcPair[K]{hash: hashFn, equal: equalFn}

	return
}

// String - Returns the djb2 hash algorithm for strings
func String() HashAlgorithm[string] {
	return hash.StringHash[string]{}
}

// XXHashString - Returns a 64 bit xxHash algorithm for strings, better spread than String for long keys sharing
// prefixes
func XXHashString() HashAlgorithm[string] {
	return hash.XXHash[string]{}
}

// Integer - Returns an algorithm using the integer value as hash
func Integer[K hash.Integer]() HashAlgorithm[K] {
	return hash.IntegerHash[K]{}
}

// Float - Returns an algorithm for floats where all NaNs are one key and +0 and -0 are two different keys
func Float[K ~float32 | ~float64]() HashAlgorithm[K] {
	return hash.FloatHash[K]{}
}

// Bool - Returns an algorithm for booleans
func Bool() HashAlgorithm[bool] {
	return hash.BoolHash[bool]{}
}

// Bytes - Returns a crc32 based algorithm for byte slices comparing them by content.
// A slice must not be modified while it is used as a key.
func Bytes() HashAlgorithm[[]byte] {
	return hash.BytesHash{}
}

// Pointer - Returns an identity algorithm for pointers, two keys are equal only if they point to the same variable
func Pointer[T any]() HashAlgorithm[*T] {
	return hash.PointerHash[T]{}
}

// Default - Returns the algorithm a HashMap uses when none is supplied.
// Strings use djb2, integers their value, floats Float semantics, booleans 1231/1237, byte slices crc32 and
// pointers and channels their identity. Named types of those kinds are handled by reflection.
// It returns an error of type containers.InvalidArgument for other key types, such as structs or interfaces, which
// need a HashAlgorithm supplied by the caller.
func Default[K any]() (ha HashAlgorithm[K], err error) {
	var zero K
	var alg any

	switch any(zero).(type) {
	case string:
		alg = String()
	case int:
		alg = Integer[int]()
	case int64:
		alg = Integer[int64]()
	case int32:
		alg = Integer[int32]()
	case uint64:
		alg = Integer[uint64]()
	case uint32:
		alg = Integer[uint32]()
	case uint:
		alg = Integer[uint]()
	case float64:
		alg = Float[float64]()
	case float32:
		alg = Float[float32]()
	case bool:
		alg = Bool()
	case []byte:
		alg = Bytes()
	default:
		kh, ok := hash.NewKindHash[K]()
		if !ok {
			err = containers.NewInvalidArgument("no default hash algorithm for key type %s, supply one", reflect.TypeOf((*K)(nil)).Elem())
			return
		}
		alg = kh
	}

	ha = alg.(HashAlgorithm[K])

	return
}
