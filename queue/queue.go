// Package queue implements a FIFO Queue on a circular buffer. Enqueue writes at the tail and dequeue reads at
// the head, both wrapping around the physical slots. A resize in either direction lays the elements out again
// from slot 0 in FIFO order.
package queue

import (
	"github.com/gostonefire/containers/internal/buffer"
)

// DefaultInitialCapacity - Initial capacity used by NewDefaultQueue
const DefaultInitialCapacity int = 8

// DefaultShrinkThreshold - Shrink threshold used by NewDefaultQueue
const DefaultShrinkThreshold float64 = 0.25

// Stat - Snapshot of the ring layout and resize history
//   - Size is the number of elements
//   - Capacity is the number of allocated slots
//   - Head is the physical slot of the front element
//   - Tail is the physical slot the next enqueued element goes to
//   - Grows, Shrinks and Copies describe resizes since creation or last Clear
type Stat struct {
	Size     int
	Capacity int
	Head     int
	Tail     int
	Grows    int
	Shrinks  int
	Copies   int
}

// Queue - The main implementation struct
type Queue[T any] struct {
	ring *buffer.Ring[T]
}

// NewQueue - Returns a new empty Queue.
//   - initialCapacity is the number of slots allocated from start, it is also the floor for shrinking
//   - shrinkThreshold is the utilization below which capacity halves after a dequeue, must be within [0, 0.5]
//
// It returns:
//   - queue is a pointer to a Queue struct
//   - err is of type containers.InvalidArgument if any parameter is invalid
func NewQueue[T any](initialCapacity int, shrinkThreshold float64) (queue *Queue[T], err error) {
	policy, err := buffer.NewPolicy(initialCapacity, shrinkThreshold)
	if err != nil {
		return
	}

	queue = &Queue[T]{ring: buffer.NewRing[T](policy)}

	return
}

// NewDefaultQueue - Returns a new empty Queue using DefaultInitialCapacity and DefaultShrinkThreshold
func NewDefaultQueue[T any]() *Queue[T] {
	q, _ := NewQueue[T](DefaultInitialCapacity, DefaultShrinkThreshold)
	return q
}

// Size - Returns the number of elements
func (Q *Queue[T]) Size() int {
	return Q.ring.Size()
}

// Capacity - Returns the number of allocated slots
func (Q *Queue[T]) Capacity() int {
	return Q.ring.Capacity()
}

// IsEmpty - Returns true if the queue holds no elements
func (Q *Queue[T]) IsEmpty() bool {
	return Q.ring.Size() == 0
}

// Enqueue - Adds item at the tail, doubling capacity first if the buffer is full. Amortized O(1).
func (Q *Queue[T]) Enqueue(item T) {
	Q.ring.PushBack(item)
}

// Dequeue - Removes and returns the element at the head.
// It returns ok as false if the queue is empty.
func (Q *Queue[T]) Dequeue() (item T, ok bool) {
	return Q.ring.PopFront()
}

// Peek - Returns the element at the head without removing it.
// It returns ok as false if the queue is empty.
func (Q *Queue[T]) Peek() (item T, ok bool) {
	if Q.ring.Size() == 0 {
		return
	}

	return Q.ring.At(0), true
}

// Clear - Removes all elements and resets capacity to the initial capacity
func (Q *Queue[T]) Clear() {
	Q.ring.Reset()
}

// ToArray - Returns a copy of the elements in FIFO order
func (Q *Queue[T]) ToArray() []T {
	return Q.ring.Slice()
}

// ForEach - Calls callback for every element in FIFO order, index 0 is the head
func (Q *Queue[T]) ForEach(callback func(item T, index int)) {
	Q.ring.Each(func(i int, v T) bool {
		callback(v, i)
		return true
	})
}

// Stat - Returns a snapshot of the ring layout and resize history
func (Q *Queue[T]) Stat() Stat {
	s := Q.ring.Stats()
	return Stat{
		Size:     Q.ring.Size(),
		Capacity: Q.ring.Capacity(),
		Head:     Q.ring.Head(),
		Tail:     Q.ring.Tail(),
		Grows:    s.Grows,
		Shrinks:  s.Shrinks,
		Copies:   s.Copies,
	}
}
