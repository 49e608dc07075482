package hash

// Integer - Any type whose underlying type is a built-in integer
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntegerHash - Uses the integer value itself as hash, which places consecutive keys in consecutive buckets
type IntegerHash[K Integer] struct{}

// Hash - Returns key reinterpreted as uint64
func (O IntegerHash[K]) Hash(key K) uint64 {
	return uint64(key)
}

// Equal - Returns true if a equals b
func (O IntegerHash[K]) Equal(a, b K) bool {
	return a == b
}

// FloatHash - Hashes floats with Float and compares them with FloatEqual
type FloatHash[K ~float32 | ~float64] struct{}

// Hash - Returns Float of key
func (O FloatHash[K]) Hash(key K) uint64 {
	return Float(float64(key))
}

// Equal - Returns FloatEqual of a and b
func (O FloatHash[K]) Equal(a, b K) bool {
	return FloatEqual(float64(a), float64(b))
}

// BoolHash - Hashes booleans with Bool
type BoolHash[K ~bool] struct{}

// Hash - Returns Bool of key
func (O BoolHash[K]) Hash(key K) uint64 {
	return Bool(bool(key))
}

// Equal - Returns true if a equals b
func (O BoolHash[K]) Equal(a, b K) bool {
	return a == b
}
