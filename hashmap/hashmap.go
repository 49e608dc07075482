// Package hashmap implements a generic HashMap using separate chaining. The number of buckets doubles before an
// insertion that would push the load factor above the max load factor, and halves (never below the initial
// capacity) after a deletion leaving it below the min load factor.
package hashmap

import (
	"fmt"
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/hashfunc"
	"github.com/gostonefire/containers/internal/model"
	"github.com/gostonefire/containers/internal/storage/separatechaining"
)

// DefaultInitialCapacity - Number of buckets used by NewDefaultHashMap
const DefaultInitialCapacity int = 16

// DefaultMaxLoadFactor - Max load factor used by NewDefaultHashMap
const DefaultMaxLoadFactor float64 = 0.75

// DefaultMinLoadFactor - Min load factor used by NewDefaultHashMap
const DefaultMinLoadFactor float64 = 0.2

// bucketStorage - Interface for any bucket storage implementation
type bucketStorage[K, V any] interface {
	Get(key K) (entry model.Entry[K, V], err error)
	Set(key K, value V) (added bool)
	Delete(key K) (entry model.Entry[K, V], err error)
	GetBucket(bucketNo int) (bucket model.Bucket[K, V], err error)
	GetBucketNo(key K) int
	Rehash(numberOfBuckets int) (err error)
	Reset(numberOfBuckets int)
	Distribution() []int
	GetStorageParameters() (params model.StorageParameters)
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Size is the total number of entries stored
//   - Capacity is the number of buckets
//   - LoadFactor is Size / Capacity
//   - Grows is the number of times the number of buckets doubled
//   - Shrinks is the number of times the number of buckets halved
//   - Rehashes is Grows + Shrinks, each resize redistributes all entries
//   - Copies is the total number of entries moved by rehashes
//   - BucketDistribution is the number of entries stored in each bucket, nil unless asked for
type HashMapStat struct {
	Size               int
	Capacity           int
	LoadFactor         float64
	Grows              int
	Shrinks            int
	Rehashes           int
	Copies             int
	BucketDistribution []int
}

// HashMap - The main implementation struct
type HashMap[K, V any] struct {
	storage         bucketStorage[K, V]
	initialCapacity int
	maxLoadFactor   float64
	minLoadFactor   float64
	grows           int
	shrinks         int
}

// NewHashMap - Returns a new empty HashMap.
//   - initialCapacity is the number of buckets to start with, the number of buckets never shrinks below it
//   - maxLoadFactor is the load factor an insertion may not push the map above without first doubling the buckets, within (0, 1]
//   - minLoadFactor is the load factor below which a deletion halves the buckets, at least 0 and below maxLoadFactor
//   - hashAlgorithm is an optional entry to provide a custom hash and equality pair, if nil hashfunc.Default is used
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is of type containers.InvalidArgument if any parameter is invalid or if K has no default hash algorithm
func NewHashMap[K, V any](
	initialCapacity int,
	maxLoadFactor float64,
	minLoadFactor float64,
	hashAlgorithm hashfunc.HashAlgorithm[K],
) (
	hashMap *HashMap[K, V],
	err error,
) {
	// Check if initialCapacity is valid
	if initialCapacity <= 0 {
		err = containers.NewInvalidArgument("initialCapacity must be a positive value higher than 0 (zero), got %d", initialCapacity)
		return
	}

	// Check load factors, negated comparisons also reject NaN
	if !(maxLoadFactor > 0 && maxLoadFactor <= 1) {
		err = containers.NewInvalidArgument("maxLoadFactor must be within (0, 1], got %g", maxLoadFactor)
		return
	}
	if !(minLoadFactor >= 0 && minLoadFactor < maxLoadFactor) {
		err = containers.NewInvalidArgument("minLoadFactor must be within [0, maxLoadFactor), got %g", minLoadFactor)
		return
	}

	// If no HashAlgorithm was given then use the default for the key type
	if hashAlgorithm == nil {
		hashAlgorithm, err = hashfunc.Default[K]()
		if err != nil {
			err = fmt.Errorf("error while resolving default hash algorithm: %w", err)
			return
		}
	}

	storage, err := separatechaining.NewSCTable[K, V](initialCapacity, hashAlgorithm)
	if err != nil {
		return
	}

	hashMap = &HashMap[K, V]{
		storage:         storage,
		initialCapacity: initialCapacity,
		maxLoadFactor:   maxLoadFactor,
		minLoadFactor:   minLoadFactor,
	}

	return
}

// NewDefaultHashMap - Returns a new empty HashMap using DefaultInitialCapacity, DefaultMaxLoadFactor,
// DefaultMinLoadFactor and hashfunc.Default for K.
// It returns an error of type containers.InvalidArgument if K has no default hash algorithm.
func NewDefaultHashMap[K, V any]() (*HashMap[K, V], error) {
	return NewHashMap[K, V](DefaultInitialCapacity, DefaultMaxLoadFactor, DefaultMinLoadFactor, nil)
}
