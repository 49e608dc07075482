package hashmap

import (
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/internal/model"
)

// Entry - One key/value pair as returned by Entries and Iterator.Next
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Iterator - Is used to iterate over entries one by one in the same order as Keys.
// The map must not be modified while an iterator is in use.
type Iterator[K, V any] struct {
	storage  bucketStorage[K, V]
	buckets  int
	bucketNo int
	bucket   model.Bucket[K, V]
	index    int
}

// Iterator - Returns a pointer to a new Iterator positioned before the first entry
func (H *HashMap[K, V]) Iterator() *Iterator[K, V] {
	iter := &Iterator[K, V]{
		storage:  H.storage,
		buckets:  H.Capacity(),
		bucketNo: -1,
	}
	iter.seek()

	return iter
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (O *Iterator[K, V]) HasNext() bool {
	return O.index < len(O.bucket.Entries)
}

// Next - Returns the next entry.
// It returns:
//   - entry is the next entry.
//   - err is of type containers.NotFound if there are no more entries when calling this function.
func (O *Iterator[K, V]) Next() (entry Entry[K, V], err error) {
	if !O.HasNext() {
		err = containers.NewNotFound("no more entries")
		return
	}

	e := O.bucket.Entries[O.index]
	entry = Entry[K, V]{Key: e.Key, Value: e.Value}

	O.index++
	if O.index >= len(O.bucket.Entries) {
		O.seek()
	}

	return
}

// seek - Moves to the start of the next non-empty bucket, or past the last bucket
func (O *Iterator[K, V]) seek() {
	O.index = 0
	O.bucket = model.Bucket[K, V]{}
	for O.bucketNo++; O.bucketNo < O.buckets; O.bucketNo++ {
		bucket, err := O.storage.GetBucket(O.bucketNo)
		if err == nil && len(bucket.Entries) > 0 {
			O.bucket = bucket
			return
		}
	}
}
