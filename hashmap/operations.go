package hashmap

import (
	"errors"
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/internal/model"
	"github.com/gostonefire/containers/internal/utils"
)

// Size - Returns the number of entries
func (H *HashMap[K, V]) Size() int {
	return H.storage.GetStorageParameters().NumberOfEntries
}

// Capacity - Returns the number of buckets
func (H *HashMap[K, V]) Capacity() int {
	return H.storage.GetStorageParameters().NumberOfBuckets
}

// IsEmpty - Returns true if the map holds no entries
func (H *HashMap[K, V]) IsEmpty() bool {
	return H.Size() == 0
}

// Get - Gets the value that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching entry if found
//   - ok is false if no entry has an equal key
func (H *HashMap[K, V]) Get(key K) (value V, ok bool) {
	entry, err := H.storage.Get(key)
	if err != nil {
		return
	}

	return entry.Value, true
}

// Has - Returns true if an entry with an equal key exists
func (H *HashMap[K, V]) Has(key K) bool {
	_, err := H.storage.Get(key)
	return err == nil
}

// Set - Updates an existing entry with a new value or adds it if no existing entry has an equal key.
// Before adding a new entry, the number of buckets doubles (repeatedly if needed) if the entry would push the load
// factor above the max load factor. Overwriting never resizes.
func (H *HashMap[K, V]) Set(key K, value V) {
	if _, err := H.storage.Get(key); errors.Is(err, containers.NotFound{}) {
		capacity := H.Capacity()
		for utils.LoadFactor(H.Size()+1, capacity) > H.maxLoadFactor {
			capacity = utils.GrowCapacity(capacity)
		}
		if capacity > H.Capacity() {
			H.rehash(capacity)
			H.grows++
		}
	}

	H.storage.Set(key, value)
}

// Put - Alias for Set
func (H *HashMap[K, V]) Put(key K, value V) {
	H.Set(key, value)
}

// Delete - Removes the entry with a key equal to key. If the number of buckets is above the initial capacity and the
// load factor fell below the min load factor, the number of buckets halves (never below the initial capacity).
//
// It returns:
//   - deleted is true if an entry was removed
func (H *HashMap[K, V]) Delete(key K) (deleted bool) {
	if _, err := H.storage.Delete(key); err != nil {
		return
	}
	deleted = true

	capacity := H.Capacity()
	if capacity > H.initialCapacity && utils.LoadFactor(H.Size(), capacity) < H.minLoadFactor {
		H.rehash(utils.ShrinkCapacity(capacity, H.initialCapacity))
		H.shrinks++
	}

	return
}

// Clear - Removes all entries and resets the number of buckets to the initial capacity
func (H *HashMap[K, V]) Clear() {
	H.storage.Reset(H.initialCapacity)
	H.grows = 0
	H.shrinks = 0
}

// Keys - Returns all keys in bucket order, then insertion order within each bucket
func (H *HashMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, H.Size())
	H.ForEach(func(_ V, key K) {
		keys = append(keys, key)
	})

	return
}

// Values - Returns all values in the same order as Keys
func (H *HashMap[K, V]) Values() (values []V) {
	values = make([]V, 0, H.Size())
	H.ForEach(func(value V, _ K) {
		values = append(values, value)
	})

	return
}

// Entries - Returns all key/value pairs in the same order as Keys
func (H *HashMap[K, V]) Entries() (entries []Entry[K, V]) {
	entries = make([]Entry[K, V], 0, H.Size())
	H.ForEach(func(value V, key K) {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	})

	return
}

// ForEach - Calls callback with value and key for every entry in the same order as Keys.
// The map must not be modified from within callback.
func (H *HashMap[K, V]) ForEach(callback func(value V, key K)) {
	var bucket model.Bucket[K, V]
	for i := 0; i < H.Capacity(); i++ {
		bucket, _ = H.storage.GetBucket(i)
		for _, entry := range bucket.Entries {
			callback(entry.Value, entry.Key)
		}
	}
}

// Stat - Produces a HashMapStat struct with information on size, capacity and resize history.
// The HashMapStat.BucketDistribution slice has one entry per bucket.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	sp := H.storage.GetStorageParameters()

	hashMapStat = HashMapStat{
		Size:       sp.NumberOfEntries,
		Capacity:   sp.NumberOfBuckets,
		LoadFactor: utils.LoadFactor(sp.NumberOfEntries, sp.NumberOfBuckets),
		Grows:      H.grows,
		Shrinks:    H.shrinks,
		Rehashes:   sp.Rehashes,
		Copies:     sp.Copies,
	}

	if includeDistribution {
		hashMapStat.BucketDistribution = H.storage.Distribution()
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in with the current number of buckets
func (H *HashMap[K, V]) GetBucketNo(key K) int {
	return H.storage.GetBucketNo(key)
}

// rehash - Redistributes all entries over numberOfBuckets buckets.
// numberOfBuckets always comes from GrowCapacity or ShrinkCapacity of a positive capacity, so the storage never
// rejects it.
func (H *HashMap[K, V]) rehash(numberOfBuckets int) {
	_ = H.storage.Rehash(numberOfBuckets)
}
