// Package pick selects random items from candidate collections.
//
// All helpers take an explicit Source so callers can inject a seeded
// generator in tests and get reproducible output.
package pick

import (
	"cmp"
	"maps"
	"math/rand/v2"
	"slices"
)

// Source is the random source used by every picker. *rand.Rand
// satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed draws a random one.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes items in place using Fisher-Yates.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// One returns a uniformly chosen element. ok is false for an empty slice.
func One[T any](src Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[src.IntN(len(items))], true
}

// Sample returns n distinct positions' elements chosen uniformly without
// replacement. The input slice is not modified. If n exceeds len(items)
// all items are returned in shuffled order.
func Sample[T any](src Source, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}
	cp := slices.Clone(items)
	// Partial Fisher-Yates: only the first n slots are needed.
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:n]
}

// Between returns a uniform integer in [lo, hi]. hi < lo returns lo.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// FromMap picks a uniformly random entry of m. Keys are sorted first so
// the result depends only on the source, not on map iteration order.
func FromMap[K cmp.Ordered, V any](src Source, m map[K]V) (key K, val V, ok bool) {
	if len(m) == 0 {
		return key, val, false
	}
	keys := slices.Sorted(maps.Keys(m))
	key = keys[src.IntN(len(keys))]
	return key, m[key], true
}
