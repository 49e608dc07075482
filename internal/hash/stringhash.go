package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/containers/internal/utils"
	"hash/crc32"
)

// Djb2 - The djb2 string hash, h = (h * 33) ^ c over the bytes of s starting from 5381, kept in 32 bits
func Djb2(s string) uint64 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = (h * 33) ^ uint32(s[i])
	}

	return uint64(h)
}

// StringHash - Hashes strings using Djb2 and compares them by value
type StringHash[K ~string] struct{}

// Hash - Returns the Djb2 hash of key
func (O StringHash[K]) Hash(key K) uint64 {
	return Djb2(string(key))
}

// Equal - Returns true if a and b are the same string
func (O StringHash[K]) Equal(a, b K) bool {
	return a == b
}

// XXHash - Hashes strings using 64 bit xxHash and compares them by value
type XXHash[K ~string] struct{}

// Hash - Returns the xxHash digest of key
func (O XXHash[K]) Hash(key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// Equal - Returns true if a and b are the same string
func (O XXHash[K]) Equal(a, b K) bool {
	return a == b
}

// BytesHash - Hashes byte slices using crc32.ChecksumIEEE and compares them by content
type BytesHash struct{}

// Hash - Returns the crc32 checksum of key
func (O BytesHash) Hash(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// Equal - Returns true if a and b hold the same bytes
func (O BytesHash) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}
