// Package dynarray implements DynamicArray, an index addressable array that grows by doubling when full and
// halves when utilization drops below a shrink threshold, never below its initial capacity.
package dynarray

import (
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/internal/buffer"
)

// DefaultInitialCapacity - Initial capacity used by NewDefaultDynamicArray
const DefaultInitialCapacity int = 4

// DefaultShrinkThreshold - Shrink threshold used by NewDefaultDynamicArray
const DefaultShrinkThreshold float64 = 0.3

// Stat - Snapshot of size, capacity and resize history
//   - Size is the number of elements
//   - Capacity is the number of allocated slots
//   - Grows is the number of doublings since creation or last Clear
//   - Shrinks is the number of halvings since creation or last Clear
//   - Copies is the number of elements moved by those resizes
type Stat struct {
	Size     int
	Capacity int
	Grows    int
	Shrinks  int
	Copies   int
}

// DynamicArray - The main implementation struct
type DynamicArray[T any] struct {
	ring *buffer.Ring[T]
}

// NewDynamicArray - Returns a new empty DynamicArray.
//   - initialCapacity is the number of slots allocated from start, it is also the floor for shrinking
//   - shrinkThreshold is the utilization below which capacity halves after a removal, must be within [0, 0.5]
//
// It returns:
//   - dynamicArray is a pointer to a DynamicArray struct
//   - err is of type containers.InvalidArgument if any parameter is invalid
func NewDynamicArray[T any](initialCapacity int, shrinkThreshold float64) (dynamicArray *DynamicArray[T], err error) {
	policy, err := buffer.NewPolicy(initialCapacity, shrinkThreshold)
	if err != nil {
		return
	}

	dynamicArray = &DynamicArray[T]{ring: buffer.NewRing[T](policy)}

	return
}

// NewDefaultDynamicArray - Returns a new empty DynamicArray using DefaultInitialCapacity and DefaultShrinkThreshold
func NewDefaultDynamicArray[T any]() *DynamicArray[T] {
	da, _ := NewDynamicArray[T](DefaultInitialCapacity, DefaultShrinkThreshold)
	return da
}

// Size - Returns the number of elements
func (D *DynamicArray[T]) Size() int {
	return D.ring.Size()
}

// Capacity - Returns the number of allocated slots
func (D *DynamicArray[T]) Capacity() int {
	return D.ring.Capacity()
}

// IsEmpty - Returns true if there are no elements
func (D *DynamicArray[T]) IsEmpty() bool {
	return D.ring.Size() == 0
}

// Push - Appends item at the end, doubling capacity first if full. Amortized O(1).
func (D *DynamicArray[T]) Push(item T) {
	D.ring.PushBack(item)
}

// Pop - Removes and returns the last element.
// It returns ok as false if the array is empty.
func (D *DynamicArray[T]) Pop() (item T, ok bool) {
	return D.ring.PopBack()
}

// Get - Returns the element at index.
// It returns ok as false if index is outside [0, Size()).
func (D *DynamicArray[T]) Get(index int) (item T, ok bool) {
	if index < 0 || index >= D.ring.Size() {
		return
	}

	return D.ring.At(index), true
}

// Set - Replaces the element at index.
// It returns an error of type containers.IndexOutOfRange if index is outside [0, Size()).
func (D *DynamicArray[T]) Set(index int, value T) (err error) {
	if index < 0 || index >= D.ring.Size() {
		err = containers.NewIndexOutOfRange(index, D.ring.Size())
		return
	}

	D.ring.Put(index, value)

	return
}

// Insert - Inserts value at index shifting the elements from index and on one step right.
// It returns an error of type containers.IndexOutOfRange if index is outside [0, Size()].
func (D *DynamicArray[T]) Insert(index int, value T) (err error) {
	if index < 0 || index > D.ring.Size() {
		err = containers.NewIndexOutOfRange(index, D.ring.Size())
		return
	}

	D.ring.InsertAt(index, value)

	return
}

// Remove - Removes and returns the element at index shifting the elements after it one step left.
// It returns ok as false if index is outside [0, Size()).
func (D *DynamicArray[T]) Remove(index int) (item T, ok bool) {
	if index < 0 || index >= D.ring.Size() {
		return
	}

	return D.ring.RemoveAt(index), true
}

// IndexFunc - Returns the index of the first element for which match returns true, or -1
func (D *DynamicArray[T]) IndexFunc(match func(item T) bool) (index int) {
	index = -1
	D.ring.Each(func(i int, v T) bool {
		if match(v) {
			index = i
			return false
		}
		return true
	})

	return
}

// Clear - Removes all elements and resets capacity to the initial capacity
func (D *DynamicArray[T]) Clear() {
	D.ring.Reset()
}

// ToArray - Returns a copy of the elements in index order
func (D *DynamicArray[T]) ToArray() []T {
	return D.ring.Slice()
}

// ForEach - Calls callback for every element in index order
func (D *DynamicArray[T]) ForEach(callback func(item T, index int)) {
	D.ring.Each(func(i int, v T) bool {
		callback(v, i)
		return true
	})
}

// Stat - Returns a snapshot of size, capacity and resize history
func (D *DynamicArray[T]) Stat() Stat {
	s := D.ring.Stats()
	return Stat{
		Size:     D.ring.Size(),
		Capacity: D.ring.Capacity(),
		Grows:    s.Grows,
		Shrinks:  s.Shrinks,
		Copies:   s.Copies,
	}
}

// policy - Returns the grow and shrink policy, used to give derived arrays the same configuration
func (D *DynamicArray[T]) policy() buffer.Policy {
	return D.ring.Policy()
}
