package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// LoadFactor - Returns the ratio between a logical size and a physical capacity.
// A capacity of zero or less gives a load factor of 0.
func LoadFactor(size, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}

	return float64(size) / float64(capacity)
}

// GrowCapacity - Returns the capacity to grow to from the given capacity, which is always the double.
// A capacity of zero or less is treated as 1 so that growth always makes room for at least one more slot.
func GrowCapacity(capacity int) int {
	if capacity <= 0 {
		return 1
	}

	return capacity * 2
}

// ShrinkCapacity - Returns half the given capacity floored at floor
func ShrinkCapacity(capacity, floor int) int {
	half := capacity / 2
	if half < floor {
		return floor
	}

	return half
}
