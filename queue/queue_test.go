//go:build unit

package queue

import (
	"errors"
	"github.com/gostonefire/containers"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func newTestQueue(t *testing.T) *Queue[int] {
	q, err := NewQueue[int](4, 0.25)
	assert.NoError(t, err, "create queue")
	return q
}

func TestNewQueue(t *testing.T) {
	t.Run("error on invalid parameters", func(t *testing.T) {
		// Execute
		_, errCap := NewQueue[int](0, 0.25)
		_, errThreshold := NewQueue[int](4, 1.5)

		// Check
		assert.True(t, errors.Is(errCap, containers.InvalidArgument{}), "invalid capacity")
		assert.True(t, errors.Is(errThreshold, containers.InvalidArgument{}), "invalid threshold")
	})

	t.Run("default queue", func(t *testing.T) {
		// Execute
		q := NewDefaultQueue[string]()

		// Check
		assert.True(t, q.IsEmpty(), "empty")
		assert.Equal(t, DefaultInitialCapacity, q.Capacity(), "default capacity")
	})
}

func TestQueue_Enqueue(t *testing.T) {
	t.Run("adds element and increases size", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)

		// Execute
		q.Enqueue(1)
		q.Enqueue(2)

		// Check
		assert.Equal(t, 2, q.Size(), "size")
		assert.Equal(t, []int{1, 2}, q.ToArray(), "FIFO order")
	})

	t.Run("resizes when full", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		for i := 1; i <= 4; i++ {
			q.Enqueue(i)
		}
		assert.Equal(t, 4, q.Capacity(), "full at initial capacity")

		// Execute
		q.Enqueue(5)

		// Check
		assert.Equal(t, 5, q.Size(), "size")
		assert.GreaterOrEqual(t, q.Capacity(), 8, "grown")
		assert.Equal(t, []int{1, 2, 3, 4, 5}, q.ToArray(), "FIFO order")
	})

	t.Run("grows a logarithmic number of times", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		n := 4096

		// Execute
		for i := 0; i < n; i++ {
			q.Enqueue(i)
		}

		// Check
		maxGrows := int(math.Ceil(math.Log2(float64(n)/4))) + 1
		assert.LessOrEqual(t, q.Stat().Grows, maxGrows, "bounded number of grows")
		assert.Less(t, q.Stat().Copies, 2*n, "linear number of copies")
	})
}

func TestQueue_Peek(t *testing.T) {
	t.Run("returns front without removing", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		_, okEmpty := q.Peek()
		q.Enqueue(10)
		q.Enqueue(20)

		// Execute
		v, ok := q.Peek()

		// Check
		assert.False(t, okEmpty, "absent on empty")
		assert.True(t, ok, "present")
		assert.Equal(t, 10, v, "front")
		assert.Equal(t, 2, q.Size(), "not removed")
	})
}

func TestQueue_Dequeue(t *testing.T) {
	t.Run("removes and returns front element", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		q.Enqueue(1)
		q.Enqueue(2)

		// Execute
		v1, _ := q.Dequeue()
		size := q.Size()
		v2, _ := q.Dequeue()

		// Check
		assert.Equal(t, 1, v1, "first in first out")
		assert.Equal(t, 1, size, "size after first")
		assert.Equal(t, 2, v2, "second out")
		assert.True(t, q.IsEmpty(), "empty")
	})

	t.Run("absent on empty", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)

		// Execute
		_, ok1 := q.Dequeue()
		q.Enqueue(1)
		v, ok2 := q.Dequeue()
		_, ok3 := q.Dequeue()

		// Check
		assert.False(t, ok1, "empty at start")
		assert.True(t, ok2, "present")
		assert.Equal(t, 1, v, "value")
		assert.False(t, ok3, "empty again")
	})

	t.Run("shrinks when underutilized", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		for i := 1; i <= 8; i++ {
			q.Enqueue(i)
		}
		assert.GreaterOrEqual(t, q.Capacity(), 8, "grown")

		// Execute
		for i := 0; i < 7; i++ {
			_, _ = q.Dequeue()
		}

		// Check
		front, _ := q.Peek()
		assert.Equal(t, 1, q.Size(), "one left")
		assert.GreaterOrEqual(t, q.Capacity(), 4, "not below initial")
		assert.Equal(t, 8, front, "last enqueued left")
	})

	t.Run("resets head and tail when emptied", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)

		// Execute
		for i := 0; i < 3; i++ {
			_, _ = q.Dequeue()
		}

		// Check
		s := q.Stat()
		assert.Equal(t, 0, s.Head, "head reset")
		assert.Equal(t, 0, s.Tail, "tail reset")
	})

	t.Run("capacity never drops below initial", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		for i := 0; i < 16; i++ {
			q.Enqueue(i)
		}

		// Execute
		for i := 0; i < 16; i++ {
			_, _ = q.Dequeue()
			assert.GreaterOrEqual(t, q.Capacity(), 4, "capacity floor")
		}

		// Check
		assert.Equal(t, 0, q.Size(), "empty")
	})
}

func TestQueue_Wraparound(t *testing.T) {
	t.Run("preserves order after head moves", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		for i := 1; i <= 4; i++ {
			q.Enqueue(i)
		}

		// Execute
		v1, _ := q.Dequeue()
		v2, _ := q.Dequeue()
		mid := q.ToArray()
		q.Enqueue(5)
		q.Enqueue(6)

		// Check
		assert.Equal(t, 1, v1, "first")
		assert.Equal(t, 2, v2, "second")
		assert.Equal(t, []int{3, 4}, mid, "after dequeues")
		assert.Equal(t, []int{3, 4, 5, 6}, q.ToArray(), "wrapped tail")
		assert.Equal(t, 4, q.Capacity(), "no growth")
		assert.Equal(t, 2, q.Stat().Head, "head in the middle")
	})

	t.Run("preserves order after resize of wrapped buffer", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		for i := 1; i <= 4; i++ {
			q.Enqueue(i)
		}
		_, _ = q.Dequeue()
		_, _ = q.Dequeue()
		q.Enqueue(5)
		q.Enqueue(6)

		// Execute
		q.Enqueue(7)

		// Check
		s := q.Stat()
		assert.Equal(t, []int{3, 4, 5, 6, 7}, q.ToArray(), "FIFO order")
		assert.Equal(t, 8, s.Capacity, "grown")
		assert.Equal(t, 0, s.Head, "re-laid from slot zero")
		assert.Equal(t, 5, s.Tail, "tail at size")
	})
}

func TestQueue_Clear(t *testing.T) {
	t.Run("removes all elements and resets capacity", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		for i := 0; i < 9; i++ {
			q.Enqueue(i)
		}

		// Execute
		q.Clear()

		// Check
		assert.True(t, q.IsEmpty(), "empty")
		assert.Equal(t, 4, q.Capacity(), "initial capacity")
		assert.Empty(t, q.ToArray(), "no elements")
	})
}

func TestQueue_ForEach(t *testing.T) {
	t.Run("iterates in FIFO order", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)
		var out []int

		// Execute
		q.ForEach(func(item int, index int) {
			out = append(out, item+index)
		})

		// Check
		assert.Equal(t, []int{1, 3, 5}, out, "head has index 0")
	})
}

func TestQueue_Mixed(t *testing.T) {
	t.Run("matches a slice based simulation", func(t *testing.T) {
		// Prepare
		q := newTestQueue(t)
		var sim []int

		// Execute
		for i := 0; i < 20; i++ {
			q.Enqueue(i)
			sim = append(sim, i)
			if i%3 == 0 {
				v, ok := q.Dequeue()
				assert.True(t, ok, "dequeued")
				assert.Equal(t, sim[0], v, "FIFO value")
				sim = sim[1:]
			}
		}

		// Check
		assert.Equal(t, sim, q.ToArray(), "same contents")
	})
}
