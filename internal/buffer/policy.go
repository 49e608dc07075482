package buffer

import (
	"github.com/gostonefire/containers"
	"github.com/gostonefire/containers/internal/utils"
)

// MaxShrinkThreshold - Highest accepted shrink threshold. Above it a halved capacity could end up smaller than the
// number of elements that triggered the shrink.
const MaxShrinkThreshold float64 = 0.5

// Policy - The grow and shrink rules shared by every array backed container.
//   - InitialCapacity is the capacity a buffer starts with, is reset to on clear and never shrinks below
//   - ShrinkThreshold is the utilization (size / capacity) below which a buffer halves after a removal
type Policy struct {
	InitialCapacity int
	ShrinkThreshold float64
}

// NewPolicy - Returns a validated Policy.
// It returns an error of type containers.InvalidArgument if initialCapacity is not positive or if
// shrinkThreshold is outside [0, MaxShrinkThreshold].
func NewPolicy(initialCapacity int, shrinkThreshold float64) (policy Policy, err error) {
	if initialCapacity <= 0 {
		err = containers.NewInvalidArgument("initialCapacity must be a positive value higher than 0 (zero), got %d", initialCapacity)
		return
	}

	// Written as a negated range check so that NaN is rejected as well
	if !(shrinkThreshold >= 0 && shrinkThreshold <= MaxShrinkThreshold) {
		err = containers.NewInvalidArgument("shrinkThreshold must be within [0, %g], got %g", MaxShrinkThreshold, shrinkThreshold)
		return
	}

	policy = Policy{InitialCapacity: initialCapacity, ShrinkThreshold: shrinkThreshold}

	return
}

// MustGrow - Returns true if a buffer of capacity holding size elements has no room for another element
func (P Policy) MustGrow(size, capacity int) bool {
	return size >= capacity
}

// GrowTo - Returns the capacity to grow to, which is always double the current
func (P Policy) GrowTo(capacity int) int {
	return utils.GrowCapacity(capacity)
}

// ShrinkTo - Returns the capacity to shrink to after a removal left size elements in a buffer of capacity.
// It returns ok as false if no shrink should happen, which is the case when the buffer is empty, when
// utilization is not below the threshold or when the buffer already is at its initial capacity.
func (P Policy) ShrinkTo(size, capacity int) (newCapacity int, ok bool) {
	if size == 0 || utils.LoadFactor(size, capacity) >= P.ShrinkThreshold {
		return
	}

	newCapacity = utils.ShrinkCapacity(capacity, P.InitialCapacity)
	ok = newCapacity < capacity

	return
}
