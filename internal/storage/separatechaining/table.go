// Package separatechaining implements the bucket table behind the HashMap. Every bucket holds the entries whose key
// maps to it in insertion order, collisions simply grow the bucket.
package separatechaining

import (
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/hashfunc"
	"github.com/gostonefire/containers/internal/hash"
	"github.com/gostonefire/containers/internal/model"
)

// SCTable - Represents an in-memory implementation of the Separate Chaining Collision Resolution Technique
type SCTable[K, V any] struct {
	buckets       []model.Bucket[K, V]
	size          int
	hashAlgorithm hashfunc.HashAlgorithm[K]
	rehashes      int
	copies        int
}

// NewSCTable - Returns a pointer to a new empty table.
//   - numberOfBuckets is the number of buckets to allocate, must be above 0 (zero)
//   - hashAlgorithm is the hash and equality pair used to place and find keys
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err of type containers.InvalidArgument if numberOfBuckets is not positive or hashAlgorithm is nil
func NewSCTable[K, V any](numberOfBuckets int, hashAlgorithm hashfunc.HashAlgorithm[K]) (scTable *SCTable[K, V], err error) {
	if numberOfBuckets <= 0 {
		err = containers.NewInvalidArgument("numberOfBuckets must be a positive value higher than 0 (zero), got %d", numberOfBuckets)
		return
	}
	if hashAlgorithm == nil {
		err = containers.NewInvalidArgument("a hash algorithm must be given")
		return
	}

	scTable = &SCTable[K, V]{
		buckets:       make([]model.Bucket[K, V], numberOfBuckets),
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// GetStorageParameters - Returns a struct with the current storage parameters
func (S *SCTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets: len(S.buckets),
		NumberOfEntries: S.size,
		Rehashes:        S.rehashes,
		Copies:          S.copies,
	}

	return
}

// Size - Returns the number of entries in the table
func (S *SCTable[K, V]) Size() int {
	return S.size
}

// NumberOfBuckets - Returns the number of allocated buckets
func (S *SCTable[K, V]) NumberOfBuckets() int {
	return len(S.buckets)
}

// GetBucketNo - Returns the bucket number that key maps to given the current number of buckets
func (S *SCTable[K, V]) GetBucketNo(key K) int {
	return hash.BucketIndex(S.hashAlgorithm.Hash(key), len(S.buckets))
}

// GetBucket - Returns a bucket with its entries given the bucket number.
// The returned bucket shares storage with the table and must not be modified.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing the entries in insertion order
//   - err is of type containers.IndexOutOfRange if bucketNo does not address a bucket
func (S *SCTable[K, V]) GetBucket(bucketNo int) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= len(S.buckets) {
		err = containers.NewIndexOutOfRange(bucketNo, len(S.buckets))
		return
	}

	bucket = S.buckets[bucketNo]

	return
}

// Get - Gets the entry that corresponds to the given key.
//
// It returns:
//   - entry is the matching entry if found
//   - err is of type containers.NotFound if no entry has an equal key
func (S *SCTable[K, V]) Get(key K) (entry model.Entry[K, V], err error) {
	bucket := S.buckets[S.GetBucketNo(key)]
	if i := S.indexOf(bucket, key); i >= 0 {
		entry = bucket.Entries[i]
		return
	}

	err = containers.NewNotFound("no entry found for key")

	return
}

// Set - Updates the value of an existing entry with equal key or appends a new entry at the end of its bucket.
// It never changes the number of buckets.
//
// It returns:
//   - added is true if a new entry was appended, false if an existing value was overwritten
func (S *SCTable[K, V]) Set(key K, value V) (added bool) {
	bucketNo := S.GetBucketNo(key)
	if i := S.indexOf(S.buckets[bucketNo], key); i >= 0 {
		S.buckets[bucketNo].Entries[i].Value = value
		return
	}

	S.buckets[bucketNo].Entries = append(S.buckets[bucketNo].Entries, model.Entry[K, V]{Key: key, Value: value})
	S.size++
	added = true

	return
}

// Delete - Removes the entry with a key equal to key, keeping the order of the remaining entries in the bucket.
// It never changes the number of buckets.
//
// It returns:
//   - entry is the removed entry
//   - err is of type containers.NotFound if no entry has an equal key
func (S *SCTable[K, V]) Delete(key K) (entry model.Entry[K, V], err error) {
	bucketNo := S.GetBucketNo(key)
	entries := S.buckets[bucketNo].Entries
	i := S.indexOf(S.buckets[bucketNo], key)
	if i < 0 {
		err = containers.NewNotFound("no entry found for key")
		return
	}

	entry = entries[i]
	copy(entries[i:], entries[i+1:])
	entries[len(entries)-1] = model.Entry[K, V]{}
	S.buckets[bucketNo].Entries = entries[:len(entries)-1]
	S.size--

	return
}

// Rehash - Redistributes all entries over numberOfBuckets new buckets.
// Buckets are visited in order and entries within a bucket in insertion order, each appended to its new bucket,
// so entries sharing a new bucket keep their relative order. No resize is triggered while doing this.
//
// It returns:
//   - err is of type containers.InvalidArgument if numberOfBuckets is not positive, the table is then unchanged
func (S *SCTable[K, V]) Rehash(numberOfBuckets int) (err error) {
	if numberOfBuckets <= 0 {
		err = containers.NewInvalidArgument("numberOfBuckets must be a positive value higher than 0 (zero), got %d", numberOfBuckets)
		return
	}

	buckets := make([]model.Bucket[K, V], numberOfBuckets)
	for _, bucket := range S.buckets {
		for _, entry := range bucket.Entries {
			bucketNo := hash.BucketIndex(S.hashAlgorithm.Hash(entry.Key), numberOfBuckets)
			buckets[bucketNo].Entries = append(buckets[bucketNo].Entries, entry)
		}
	}

	S.buckets = buckets
	S.rehashes++
	S.copies += S.size

	return
}

// Reset - Drops all entries and reallocates numberOfBuckets empty buckets, the rehash history is cleared
func (S *SCTable[K, V]) Reset(numberOfBuckets int) {
	S.buckets = make([]model.Bucket[K, V], numberOfBuckets)
	S.size = 0
	S.rehashes = 0
	S.copies = 0
}

// Distribution - Returns the number of entries in each bucket
func (S *SCTable[K, V]) Distribution() (distribution []int) {
	distribution = make([]int, len(S.buckets))
	for i, bucket := range S.buckets {
		distribution[i] = len(bucket.Entries)
	}

	return
}

// indexOf - Returns the position within bucket of the entry with a key equal to key, or -1
func (S *SCTable[K, V]) indexOf(bucket model.Bucket[K, V], key K) int {
	for i, entry := range bucket.Entries {
		if S.hashAlgorithm.Equal(entry.Key, key) {
			return i
		}
	}

	return -1
}
