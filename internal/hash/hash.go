// Package hash holds the hash and equality implementations backing the ready made algorithms in hashfunc, and the
// mapping from a hash value to a bucket in a table of a given capacity.
package hash

import (
	"math"
	"math/bits"
)

// BucketIndex - Maps hash value h to a bucket number between 0 and capacity - 1
func BucketIndex(h uint64, capacity int) int {
	return int(h % uint64(capacity))
}

// Mix64 - Finalizer from MurmurHash3 spreading entropy from all input bits to all output bits.
// Used for keys whose raw value has structure in the low bits, such as aligned addresses.
func Mix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Float - Hashes f so that integral values hash as the corresponding integer and every NaN hashes to 0
func Float(f float64) uint64 {
	if f != f {
		return 0
	}

	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return uint64(int64(f))
	}

	b := math.Float64bits(f)
	return b ^ bits.RotateLeft64(b, 32)
}

// FloatEqual - Bitwise identity with canonical NaN: all NaNs are equal to each other while +0 and -0 differ
func FloatEqual(a, b float64) bool {
	if a != a {
		return b != b
	}

	return math.Float64bits(a) == math.Float64bits(b)
}

// Bool - Returns 1231 for true and 1237 for false
func Bool(b bool) uint64 {
	if b {
		return 1231
	}
	return 1237
}
