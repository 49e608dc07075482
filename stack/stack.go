// Package stack implements a LIFO Stack on top of a dynarray.DynamicArray. The top of the stack is the
// highest index of the underlying array, so ToArray lists elements bottom to top while ForEach visits them
// top to bottom.
package stack

import "github.com/gostonefire/containers/dynarray"

// DefaultInitialCapacity - Initial capacity used by NewDefaultStack
const DefaultInitialCapacity int = 4

// DefaultShrinkThreshold - Shrink threshold used by NewDefaultStack
const DefaultShrinkThreshold float64 = 0.3

// Stack - The main implementation struct
type Stack[T any] struct {
	data *dynarray.DynamicArray[T]
}

// NewStack - Returns a new empty Stack.
//   - initialCapacity is the number of slots allocated from start, it is also the floor for shrinking
//   - shrinkThreshold is the utilization below which capacity halves after a pop, must be within [0, 0.5]
//
// It returns:
//   - stack is a pointer to a Stack struct
//   - err is of type containers.InvalidArgument if any parameter is invalid
func NewStack[T any](initialCapacity int, shrinkThreshold float64) (stack *Stack[T], err error) {
	data, err := dynarray.NewDynamicArray[T](initialCapacity, shrinkThreshold)
	if err != nil {
		return
	}

	stack = &Stack[T]{data: data}

	return
}

// NewDefaultStack - Returns a new empty Stack using DefaultInitialCapacity and DefaultShrinkThreshold
func NewDefaultStack[T any]() *Stack[T] {
	s, _ := NewStack[T](DefaultInitialCapacity, DefaultShrinkThreshold)
	return s
}

// Size - Returns the number of elements
func (S *Stack[T]) Size() int {
	return S.data.Size()
}

// Capacity - Returns the number of allocated slots
func (S *Stack[T]) Capacity() int {
	return S.data.Capacity()
}

// IsEmpty - Returns true if the stack holds no elements
func (S *Stack[T]) IsEmpty() bool {
	return S.data.IsEmpty()
}

// Push - Puts item on top of the stack. Amortized O(1).
func (S *Stack[T]) Push(item T) {
	S.data.Push(item)
}

// Pop - Removes and returns the top element.
// It returns ok as false if the stack is empty.
func (S *Stack[T]) Pop() (item T, ok bool) {
	return S.data.Pop()
}

// Peek - Returns the top element without removing it.
// It returns ok as false if the stack is empty.
func (S *Stack[T]) Peek() (item T, ok bool) {
	return S.data.Get(S.data.Size() - 1)
}

// Clear - Removes all elements and resets capacity to the initial capacity
func (S *Stack[T]) Clear() {
	S.data.Clear()
}

// ToArray - Returns a copy of the elements ordered bottom to top
func (S *Stack[T]) ToArray() []T {
	return S.data.ToArray()
}

// ForEach - Calls callback for every element from top to bottom, index 0 is the top element
func (S *Stack[T]) ForEach(callback func(item T, index int)) {
	n := S.data.Size()
	for i := n - 1; i >= 0; i-- {
		item, _ := S.data.Get(i)
		callback(item, n-1-i)
	}
}

// Stat - Returns a snapshot of size, capacity and resize history
func (S *Stack[T]) Stat() dynarray.Stat {
	return S.data.Stat()
}
