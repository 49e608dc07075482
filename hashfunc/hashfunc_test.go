//go:build unit

package hashfunc

import (
	"errors"
	"github.com/gostonefire/containers"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("builds algorithm from function pair", func(t *testing.T) {
		// Prepare
		hashFn := func(key string) uint64 { return uint64(len(key)) }
		equalFn := func(a, b string) bool { return a == b }

		// Execute
		ha, err := New(hashFn, equalFn)

		// Check
		assert.NoError(t, err, "created")
		assert.Equal(t, uint64(3), ha.Hash("abc"), "uses hash function")
		assert.True(t, ha.Equal("abc", "abc"), "uses equal function")
	})

	t.Run("rejects a lone hash or equal function", func(t *testing.T) {
		// Execute
		_, errNoEqual := New[string](func(key string) uint64 { return 0 }, nil)
		_, errNoHash := New[string](nil, func(a, b string) bool { return a == b })

		// Check
		assert.True(t, errors.Is(errNoEqual, containers.InvalidArgument{}), "missing equal")
		assert.True(t, errors.Is(errNoHash, containers.InvalidArgument{}), "missing hash")
	})
}

func TestDefault(t *testing.T) {
	t.Run("built-in key types", func(t *testing.T) {
		// Execute
		s, errS := Default[string]()
		i, errI := Default[int]()
		f, errF := Default[float64]()
		b, errB := Default[bool]()
		bs, errBs := Default[[]byte]()

		// Check
		assert.NoError(t, errS, "string")
		assert.NoError(t, errI, "int")
		assert.NoError(t, errF, "float64")
		assert.NoError(t, errB, "bool")
		assert.NoError(t, errBs, "[]byte")
		assert.Equal(t, String().Hash("key"), s.Hash("key"), "djb2 for strings")
		assert.Equal(t, uint64(12), i.Hash(12), "value for ints")
		assert.True(t, f.Equal(math.NaN(), math.NaN()), "canonical NaN for floats")
		assert.Equal(t, uint64(1231), b.Hash(true), "bool constants")
		assert.True(t, bs.Equal([]byte("ab"), []byte("ab")), "content equality for bytes")
	})

	t.Run("pointer keys use identity", func(t *testing.T) {
		// Prepare
		type node struct{ v int }
		a, b := &node{v: 1}, &node{v: 1}

		// Execute
		ha, err := Default[*node]()

		// Check
		assert.NoError(t, err, "pointer")
		assert.True(t, ha.Equal(a, a), "same pointer")
		assert.False(t, ha.Equal(a, b), "different pointer")
		assert.Equal(t, Pointer[node]().Hash(a), ha.Hash(a), "same hash as Pointer")
	})

	t.Run("named types fall back to their kind", func(t *testing.T) {
		// Prepare
		type color string

		// Execute
		ha, err := Default[color]()

		// Check
		assert.NoError(t, err, "named string")
		assert.Equal(t, String().Hash("red"), ha.Hash("red"), "djb2 of underlying string")
	})

	t.Run("error on unsupported key type", func(t *testing.T) {
		// Prepare
		type point struct{ x, y int }

		// Execute
		_, errStruct := Default[point]()
		_, errAny := Default[any]()

		// Check
		assert.True(t, errors.Is(errStruct, containers.InvalidArgument{}), "struct key")
		assert.True(t, errors.Is(errAny, containers.InvalidArgument{}), "interface key")
	})
}

func TestFloat(t *testing.T) {
	t.Run("signed zeros are distinct keys", func(t *testing.T) {
		// Prepare
		ha := Float[float64]()
		negZero := math.Copysign(0, -1)

		// Check
		assert.False(t, ha.Equal(0, negZero), "+0 and -0 differ")
		assert.Equal(t, ha.Hash(0), ha.Hash(negZero), "but share a bucket")
	})
}
