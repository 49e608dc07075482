package model

// Entry - Represents one key/value pair stored in a bucket
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Bucket - Represents all entries whose key maps to one bucket number, kept in insertion order
type Bucket[K, V any] struct {
	Entries []Entry[K, V]
}

// StorageParameters - Represents the current geometry and history of a bucket table
//   - NumberOfBuckets is the number of buckets currently allocated
//   - NumberOfEntries is the number of entries stored across all buckets
//   - Rehashes is the number of times all entries were redistributed to a new number of buckets
//   - Copies is the total number of entries moved by those rehashes
type StorageParameters struct {
	NumberOfBuckets int
	NumberOfEntries int
	Rehashes        int
	Copies          int
}
