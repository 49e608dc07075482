// Package unionfind implements UnionFind, a disjoint set forest with union by rank and path compression. Parents
// and ranks are kept in two hashmap.HashMap so elements can be of any type a HashMap accepts as key.
package unionfind

import (
	"fmt"
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/hashfunc"
	"github.com/gostonefire/containers/hashmap"
)

// UnionFind - The main implementation struct
type UnionFind[T any] struct {
	parent        *hashmap.HashMap[T, T]
	rank          *hashmap.HashMap[T, int]
	hashAlgorithm hashfunc.HashAlgorithm[T]
	count         int
}

// NewUnionFind - Returns a new empty UnionFind.
//   - hashAlgorithm is an optional entry to provide a custom hash and equality pair for elements, if nil
//     hashfunc.Default is used
//
// It returns:
//   - unionFind is a pointer to a UnionFind struct
//   - err is of type containers.InvalidArgument if T has no default hash algorithm
func NewUnionFind[T any](hashAlgorithm hashfunc.HashAlgorithm[T]) (unionFind *UnionFind[T], err error) {
	if hashAlgorithm == nil {
		hashAlgorithm, err = hashfunc.Default[T]()
		if err != nil {
			err = fmt.Errorf("error while resolving default hash algorithm: %w", err)
			return
		}
	}

	parent, err := hashmap.NewHashMap[T, T](hashmap.DefaultInitialCapacity, hashmap.DefaultMaxLoadFactor, hashmap.DefaultMinLoadFactor, hashAlgorithm)
	if err != nil {
		return
	}
	rank, err := hashmap.NewHashMap[T, int](hashmap.DefaultInitialCapacity, hashmap.DefaultMaxLoadFactor, hashmap.DefaultMinLoadFactor, hashAlgorithm)
	if err != nil {
		return
	}

	unionFind = &UnionFind[T]{parent: parent, rank: rank, hashAlgorithm: hashAlgorithm}

	return
}

// Add - Adds element as a set of its own, nothing happens if it already exists
func (U *UnionFind[T]) Add(element T) {
	if U.parent.Has(element) {
		return
	}

	U.parent.Set(element, element)
	U.rank.Set(element, 0)
	U.count++
}

// Find - Returns the representative of the set holding element and points every element on the way directly to it.
// It returns an error of type containers.NotFound if element was never added.
func (U *UnionFind[T]) Find(element T) (root T, err error) {
	if !U.parent.Has(element) {
		err = containers.NewNotFound("element %v not found", element)
		return
	}

	root = element
	for {
		p, _ := U.parent.Get(root)
		if U.hashAlgorithm.Equal(p, root) {
			break
		}
		root = p
	}

	for current := element; !U.hashAlgorithm.Equal(current, root); {
		next, _ := U.parent.Get(current)
		U.parent.Set(current, root)
		current = next
	}

	return
}

// Union - Merges the sets holding a and b, adding either of them first if missing. The root of lower rank is
// attached below the other.
func (U *UnionFind[T]) Union(a, b T) {
	U.Add(a)
	U.Add(b)

	rootA, _ := U.Find(a)
	rootB, _ := U.Find(b)
	if U.hashAlgorithm.Equal(rootA, rootB) {
		return
	}

	rankA, _ := U.rank.Get(rootA)
	rankB, _ := U.rank.Get(rootB)
	switch {
	case rankA < rankB:
		U.parent.Set(rootA, rootB)
	case rankA > rankB:
		U.parent.Set(rootB, rootA)
	default:
		U.parent.Set(rootB, rootA)
		U.rank.Set(rootA, rankA+1)
	}

	U.count--
}

// Connected - Returns true if a and b both exist and are in the same set
func (U *UnionFind[T]) Connected(a, b T) bool {
	rootA, errA := U.Find(a)
	rootB, errB := U.Find(b)
	if errA != nil || errB != nil {
		return false
	}

	return U.hashAlgorithm.Equal(rootA, rootB)
}

// Size - Returns the number of elements
func (U *UnionFind[T]) Size() int {
	return U.parent.Size()
}

// Count - Returns the number of disjoint sets
func (U *UnionFind[T]) Count() int {
	return U.count
}

// Sets - Returns every element paired with the representative of its set
func (U *UnionFind[T]) Sets() (sets []hashmap.Entry[T, T]) {
	elements := U.parent.Keys()
	sets = make([]hashmap.Entry[T, T], 0, len(elements))
	for _, element := range elements {
		root, _ := U.Find(element)
		sets = append(sets, hashmap.Entry[T, T]{Key: element, Value: root})
	}

	return
}
