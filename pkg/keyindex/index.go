package keyindex

import (
	"slices"
)

// Index is a bijection between keys and the range [0, Len()).
type Index struct {
	keys []string
	pos  map[string]int
}

// Assign deduplicates keys and numbers them in lexicographic order.
func Assign(keys []string) *Index {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	pos := make(map[string]int, len(sorted))
	for i, k := range sorted {
		pos[k] = i
	}
	return &Index{keys: sorted, pos: pos}
}

// Len returns the number of keys.
func (x *Index) Len() int {
	return len(x.keys)
}

// Of returns the index assigned to key.
func (x *Index) Of(key string) (int, bool) {
	i, ok := x.pos[key]
	return i, ok
}

// Key returns the key at index i. It panics if i is out of range.
func (x *Index) Key(i int) string {
	return x.keys[i]
}

// Keys returns the keys in index order.
func (x *Index) Keys() []string {
	return slices.Clone(x.keys)
}
