package keyindex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locgen/pkg/keyindex"
)

func TestAssign(t *testing.T) {
	t.Run("dense lexicographic indices", func(t *testing.T) {
		idx := keyindex.Assign([]string{"GREETING", "FAREWELL", "ANSWER"})

		require.Equal(t, 3, idx.Len())
		if diff := cmp.Diff([]string{"ANSWER", "FAREWELL", "GREETING"}, idx.Keys()); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
		for i, key := range idx.Keys() {
			got, ok := idx.Of(key)
			require.True(t, ok)
			assert.Equal(t, i, got)
			assert.Equal(t, key, idx.Key(i))
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		idx := keyindex.Assign([]string{"b", "a", "b", "a"})
		assert.Equal(t, 2, idx.Len())
		assert.Equal(t, []string{"a", "b"}, idx.Keys())
	})

	t.Run("input order does not matter", func(t *testing.T) {
		a := keyindex.Assign([]string{"x", "y", "z"})
		b := keyindex.Assign([]string{"z", "x", "y"})
		assert.Equal(t, a.Keys(), b.Keys())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := keyindex.Assign([]string{"a"}).Of("b")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		idx := keyindex.Assign(nil)
		assert.Equal(t, 0, idx.Len())
		assert.Empty(t, idx.Keys())
	})

	t.Run("caller slice is not modified", func(t *testing.T) {
		in := []string{"b", "a"}
		keyindex.Assign(in)
		assert.Equal(t, []string{"b", "a"}, in)
	})
}
