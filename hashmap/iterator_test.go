//go:build unit

package hashmap

import (
	"errors"
	"github.com/gostonefire/containers"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIterator(t *testing.T) {
	t.Run("iterates all entries in key order", func(t *testing.T) {
		// Prepare
		hm := newTestHashMap[int, string](t, 8, nil)
		hm.Set(3, "c")
		hm.Set(11, "k")
		hm.Set(6, "f")
		var got []Entry[int, string]

		// Execute
		iter := hm.Iterator()
		for iter.HasNext() {
			entry, err := iter.Next()
			assert.NoError(t, err, "next")
			got = append(got, entry)
		}

		// Check
		assert.Equal(t, hm.Entries(), got, "same order as Entries")
		assert.Len(t, got, 3, "all entries")
	})

	t.Run("error after last entry", func(t *testing.T) {
		// Prepare
		hm := newTestHashMap[int, string](t, 8, nil)
		hm.Set(1, "a")
		iter := hm.Iterator()
		_, _ = iter.Next()

		// Execute
		_, err := iter.Next()

		// Check
		assert.False(t, iter.HasNext(), "exhausted")
		assert.True(t, errors.Is(err, containers.NotFound{}), "not found")
	})

	t.Run("empty map", func(t *testing.T) {
		// Prepare
		hm := newTestHashMap[int, string](t, 8, nil)

		// Execute
		iter := hm.Iterator()

		// Check
		assert.False(t, iter.HasNext(), "nothing to iterate")
	})
}
