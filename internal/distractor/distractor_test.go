package distractor

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/pick"
)

var pool = []string{"Ma", "Pa", "Ha", "Ho", "Hu", "Ro", "So", "Ma", "Tas", "Ham"}

func assertValid[T comparable](t *testing.T, correct T, got []T) {
	t.Helper()
	require.Len(t, got, Count)
	assert.NotContains(t, got, correct)
	assert.NotEqual(t, got[0], got[1])
}

func TestVowelSwap(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		got, err := Syllables(pick.NewSource(seed), "Ma", pool, ModeVowelSwap)
		require.NoError(t, err)
		assertValid(t, "Ma", got)
		for _, s := range got {
			r := []rune(s)
			require.Len(t, r, 2)
			assert.Equal(t, 'M', r[0])
			assert.NotEqual(t, 'a', r[1])
			assert.Contains(t, Vowels, r[1])
		}
	}
}

func TestVowelSwap_Umlaut(t *testing.T) {
	got, err := Syllables(pick.NewSource(3), "Lö", nil, ModeVowelSwap)
	require.NoError(t, err)
	assertValid(t, "Lö", got)
	for _, s := range got {
		assert.Equal(t, 'L', []rune(s)[0])
		assert.NotEqual(t, 'ö', []rune(s)[1])
	}
}

func TestVowelSwap_TooShort(t *testing.T) {
	_, err := Syllables(pick.NewSource(1), "M", pool, ModeVowelSwap)
	assert.True(t, errors.Is(err, ErrInsufficientCandidates))
}

func TestSameInitial_Enough(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		got, err := Syllables(pick.NewSource(seed), "Ha", pool, ModeSameInitial)
		require.NoError(t, err)
		assertValid(t, "Ha", got)
		for _, s := range got {
			assert.Contains(t, []string{"Ho", "Hu", "Ham"}, s)
		}
	}
}

func TestSameInitial_Padded(t *testing.T) {
	// Only one other syllable starts with R.
	got, err := Syllables(pick.NewSource(9), "Ro", []string{"Ro", "Ri", "Ma", "So"}, ModeSameInitial)
	require.NoError(t, err)
	assertValid(t, "Ro", got)
	assert.Equal(t, "Ri", got[0], "same-initial syllables come first")
	assert.Contains(t, []string{"Ma", "So"}, got[1])
}

func TestSameInitial_Insufficient(t *testing.T) {
	_, err := Syllables(pick.NewSource(1), "Ma", []string{"Ma", "Pa", "Ma"}, ModeSameInitial)
	assert.True(t, errors.Is(err, ErrInsufficientCandidates))
}

func TestAny(t *testing.T) {
	got, err := Syllables(pick.NewSource(4), "Tas", pool, ModeAny)
	require.NoError(t, err)
	assertValid(t, "Tas", got)
	for _, s := range got {
		assert.Contains(t, pool, s)
	}
}

func TestSyllables_Deterministic(t *testing.T) {
	a, err := Syllables(pick.NewSource(77), "Ma", pool, ModeAny)
	require.NoError(t, err)
	b, err := Syllables(pick.NewSource(77), "Ma", pool, ModeAny)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSyllables_UnsupportedMode(t *testing.T) {
	_, err := Syllables(pick.NewSource(1), "Ma", pool, ModeNearMiss)
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		lo, hi  int
		mode    Mode
		wantErr bool
	}{
		{"near miss middle", 7, 0, 10, ModeNearMiss, false},
		{"near miss at floor", 0, 0, 10, ModeNearMiss, false},
		{"near miss at ceiling", 10, 0, 10, ModeNearMiss, false},
		{"near miss tiny range", 1, 0, 2, ModeNearMiss, false},
		{"near miss no room", 0, 0, 1, ModeNearMiss, true},
		{"any", 5, 0, 20, ModeAny, false},
		{"any no room", 1, 1, 2, ModeAny, true},
		{"vowel swap on numbers", 1, 0, 9, ModeVowelSwap, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 20; seed++ {
				got, err := Numbers(pick.NewSource(seed), tt.correct, tt.lo, tt.hi, tt.mode)
				if tt.wantErr {
					require.Error(t, err)
					return
				}
				require.NoError(t, err)
				assertValid(t, tt.correct, got)
				for _, v := range got {
					assert.GreaterOrEqual(t, v, tt.lo)
					assert.LessOrEqual(t, v, tt.hi)
				}
			}
		})
	}
}

func TestNumbers_NearMissStaysClose(t *testing.T) {
	got, err := Numbers(pick.NewSource(2), 25, 0, 50, ModeNearMiss)
	require.NoError(t, err)
	for _, v := range got {
		assert.LessOrEqual(t, abs(v-25), 2)
	}
}

func TestNumberStrings(t *testing.T) {
	got, err := NumberStrings(pick.NewSource(2), 5, 0, 10, ModeNearMiss)
	require.NoError(t, err)
	assert.False(t, slices.Contains(got, "5"))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
