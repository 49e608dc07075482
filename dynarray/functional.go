package dynarray

import "github.com/gostonefire/containers/internal/buffer"

// IndexOf - Returns the index of the first element of source equal to item, or -1. O(size) linear scan.
func IndexOf[T comparable](source *DynamicArray[T], item T) int {
	return source.IndexFunc(func(v T) bool { return v == item })
}

// Contains - Returns true if any element of source equals item
func Contains[T comparable](source *DynamicArray[T], item T) bool {
	return IndexOf(source, item) != -1
}

// Map - Returns a new DynamicArray holding callback applied to every element of source in index order.
// The result starts at the capacity of source and inherits its shrink threshold, source is not modified.
func Map[T, U any](source *DynamicArray[T], callback func(item T, index int) U) *DynamicArray[U] {
	result := derived[T, U](source)
	source.ForEach(func(item T, index int) {
		result.Push(callback(item, index))
	})

	return result
}

// Filter - Returns a new DynamicArray holding the elements of source for which callback returns true, in index order.
// The result starts at the capacity of source and inherits its shrink threshold, source is not modified.
func Filter[T any](source *DynamicArray[T], callback func(item T, index int) bool) *DynamicArray[T] {
	result := derived[T, T](source)
	source.ForEach(func(item T, index int) {
		if callback(item, index) {
			result.Push(item)
		}
	})

	return result
}

// Reduce - Folds the elements of source in index order into a single value starting from initialValue
func Reduce[T, U any](source *DynamicArray[T], callback func(acc U, item T, index int) U, initialValue U) U {
	acc := initialValue
	source.ForEach(func(item T, index int) {
		acc = callback(acc, item, index)
	})

	return acc
}

// derived - Returns an empty DynamicArray with the current capacity of source as initial capacity
func derived[T, U any](source *DynamicArray[T]) *DynamicArray[U] {
	p := source.policy()
	p.InitialCapacity = source.Capacity()
	return &DynamicArray[U]{ring: buffer.NewRing[U](p)}
}
