package buffer

// Stats - Counters describing the resize history of a buffer since it was created or last reset
//   - Grows is the number of times capacity doubled
//   - Shrinks is the number of times capacity halved
//   - Copies is the total number of elements moved to new storage by grows and shrinks
type Stats struct {
	Grows   int
	Shrinks int
	Copies  int
}

// Ring - A resizable slot array addressed by logical position from head with wraparound.
// Containers that only ever append and remove at the back keep head at 0 and use it as a plain linear buffer,
// containers removing at the front (queues) advance head.
// The size logical elements occupy physical slots head, head+1, ..., head+size-1 (mod capacity).
type Ring[T any] struct {
	policy Policy
	slots  []T
	head   int
	size   int
	stats  Stats
}

// NewRing - Returns a pointer to a new empty Ring with capacity set to the policy's initial capacity
func NewRing[T any](policy Policy) *Ring[T] {
	return &Ring[T]{
		policy: policy,
		slots:  make([]T, policy.InitialCapacity),
	}
}

// Size - Returns the number of logical elements
func (R *Ring[T]) Size() int {
	return R.size
}

// Capacity - Returns the number of physical slots
func (R *Ring[T]) Capacity() int {
	return len(R.slots)
}

// Head - Returns the physical slot of logical position 0
func (R *Ring[T]) Head() int {
	return R.head
}

// Tail - Returns the physical slot the next element appended at the back will be written to
func (R *Ring[T]) Tail() int {
	return (R.head + R.size) % len(R.slots)
}

// Policy - Returns the policy the ring was created with
func (R *Ring[T]) Policy() Policy {
	return R.policy
}

// Stats - Returns the resize counters
func (R *Ring[T]) Stats() Stats {
	return R.stats
}

// At - Returns the element at logical position i, bounds are the caller's responsibility
func (R *Ring[T]) At(i int) T {
	return R.slots[R.physical(i)]
}

// Put - Replaces the element at logical position i, bounds are the caller's responsibility
func (R *Ring[T]) Put(i int, v T) {
	R.slots[R.physical(i)] = v
}

// PushBack - Appends v after the last element, doubling capacity first if the ring is full
func (R *Ring[T]) PushBack(v T) {
	if R.policy.MustGrow(R.size, len(R.slots)) {
		R.resize(R.policy.GrowTo(len(R.slots)))
		R.stats.Grows++
	}

	R.slots[R.Tail()] = v
	R.size++
}

// PopBack - Removes and returns the last element, ok is false if the ring is empty
func (R *Ring[T]) PopBack() (v T, ok bool) {
	if R.size == 0 {
		return
	}

	last := R.physical(R.size - 1)
	v, ok = R.slots[last], true
	R.slots[last] = *new(T)
	R.size--
	R.afterRemoval()

	return
}

// PopFront - Removes and returns the first element advancing head, ok is false if the ring is empty
func (R *Ring[T]) PopFront() (v T, ok bool) {
	if R.size == 0 {
		return
	}

	v, ok = R.slots[R.head], true
	R.slots[R.head] = *new(T)
	R.head = (R.head + 1) % len(R.slots)
	R.size--
	R.afterRemoval()

	return
}

// InsertAt - Inserts v at logical position i (0 <= i <= size) shifting the elements at i and after one step
// towards the back. Capacity doubles first if the ring is full. Bounds are the caller's responsibility.
func (R *Ring[T]) InsertAt(i int, v T) {
	if R.policy.MustGrow(R.size, len(R.slots)) {
		R.resize(R.policy.GrowTo(len(R.slots)))
		R.stats.Grows++
	}

	for j := R.size; j > i; j-- {
		R.slots[R.physical(j)] = R.slots[R.physical(j-1)]
	}
	R.slots[R.physical(i)] = v
	R.size++
}

// RemoveAt - Removes and returns the element at logical position i (0 <= i < size) shifting the elements after
// it one step towards the front. Bounds are the caller's responsibility.
func (R *Ring[T]) RemoveAt(i int) (v T) {
	v = R.slots[R.physical(i)]
	for j := i; j < R.size-1; j++ {
		R.slots[R.physical(j)] = R.slots[R.physical(j+1)]
	}
	R.slots[R.physical(R.size-1)] = *new(T)
	R.size--
	R.afterRemoval()

	return
}

// Reset - Drops all elements and reallocates storage at the initial capacity
func (R *Ring[T]) Reset() {
	R.slots = make([]T, R.policy.InitialCapacity)
	R.head = 0
	R.size = 0
	R.stats = Stats{}
}

// Each - Calls fn for every element in logical order until fn returns false
func (R *Ring[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < R.size; i++ {
		if !fn(i, R.slots[R.physical(i)]) {
			return
		}
	}
}

// Slice - Returns a new slice holding the elements in logical order
func (R *Ring[T]) Slice() (out []T) {
	out = make([]T, R.size)
	for i := 0; i < R.size; i++ {
		out[i] = R.slots[R.physical(i)]
	}

	return
}

// physical - Maps a logical position to its physical slot
func (R *Ring[T]) physical(i int) int {
	return (R.head + i) % len(R.slots)
}

// afterRemoval - Applies the shrink rule, and resets head when the ring became empty
func (R *Ring[T]) afterRemoval() {
	if newCapacity, ok := R.policy.ShrinkTo(R.size, len(R.slots)); ok {
		R.resize(newCapacity)
		R.stats.Shrinks++
	}

	if R.size == 0 {
		R.head = 0
	}
}

// resize - Moves all elements to new storage of newCapacity laid out in logical order from physical slot 0
func (R *Ring[T]) resize(newCapacity int) {
	slots := make([]T, newCapacity)
	for i := 0; i < R.size; i++ {
		slots[i] = R.slots[R.physical(i)]
	}

	R.stats.Copies += R.size
	R.slots = slots
	R.head = 0
}
