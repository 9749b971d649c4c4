package pick

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutation(t *testing.T) {
	src := NewSource(42)
	for range 100 {
		items := []int{1, 2, 3, 4, 5, 6}
		Shuffle(src, items)
		sorted := slices.Clone(items)
		slices.Sort(sorted)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, sorted)
	}
}

func TestShuffle_Uniform(t *testing.T) {
	// Every element should land in every slot roughly equally often.
	src := NewSource(7)
	const rounds = 30000
	counts := [3][3]int{}
	for range rounds {
		items := []int{0, 1, 2}
		Shuffle(src, items)
		for pos, v := range items {
			counts[v][pos]++
		}
	}
	for v := range 3 {
		for pos := range 3 {
			assert.InDelta(t, rounds/3, counts[v][pos], rounds*0.03, "value %d at %d", v, pos)
		}
	}
}

func TestSameSeedSameOutput(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := slices.Clone(a)
	Shuffle(NewSource(99), a)
	Shuffle(NewSource(99), b)
	assert.Equal(t, a, b)
}

func TestOne(t *testing.T) {
	_, ok := One[int](NewSource(1), nil)
	assert.False(t, ok)

	v, ok := One(NewSource(1), []int{5})
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestSample(t *testing.T) {
	src := NewSource(3)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got := Sample(src, items, 3)
	require.Len(t, got, 3)
	assert.Len(t, uniq(got), 3)
	for _, v := range got {
		assert.Contains(t, items, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items, "input must not change")

	assert.Len(t, Sample(src, items, 20), 8)
	assert.Nil(t, Sample(src, items, 0))
}

func TestBetween(t *testing.T) {
	src := NewSource(11)
	for range 500 {
		v := Between(src, 3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
	}
	assert.Equal(t, 4, Between(src, 4, 2))
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"x": 1, "y": 2, "z": 3}
	k1, v1, ok := FromMap(NewSource(5), m)
	require.True(t, ok)
	assert.Equal(t, m[k1], v1)

	k2, _, _ := FromMap(NewSource(5), m)
	assert.Equal(t, k1, k2)

	_, _, ok = FromMap(NewSource(5), map[string]int{})
	assert.False(t, ok)
}

func uniq(xs []int) map[int]struct{} {
	m := map[int]struct{}{}
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}
