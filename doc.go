// Package containers is the root of a set of generic in-memory data structures that keep their
// invariants across mutating operations:
//
//   - dynarray, stack and queue share one grow/shrink policy giving amortized O(1) push, pop,
//     enqueue and dequeue through capacity doubling and halving (never below the initial capacity)
//   - hashmap is a separate chaining hash table rehashing on load factor thresholds, with hash and
//     equality supplied as one pair through hashfunc.HashAlgorithm
//   - avltree and rbtree are self-balancing binary search trees driven by an injected comparator
//   - unionfind is a small disjoint set forest built on top of hashmap
//
// No container is safe for concurrent use, callers needing that must serialize access themselves.
//
// This package holds the error types shared by all containers. Operations where an index or element is
// implied by the structure (pop, peek, dequeue, get) signal absence with a comma-ok result, while
// operations given an explicit out of range index (set, insert) or invalid construction parameters
// return IndexOutOfRange respective InvalidArgument.
package containers
