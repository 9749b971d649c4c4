package problemgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/distractor"
	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/validate"
	"github.com/abhisek/smarty/internal/words"
)

func newTestGenerator(seed uint64) *Generator {
	return New(pick.NewSource(seed), DefaultConfig())
}

func testPool() []words.Entry {
	return []words.Entry{
		{Word: "Mama", Syllable: "Ma", Emoji: "👩", Difficulty: words.Easy},
		{Word: "Hose", Syllable: "Ho", Emoji: "👖", Difficulty: words.Easy},
		{Word: "Sonne", Syllable: "Son", Emoji: "☀️", Difficulty: words.Easy},
		{Word: "Tasse", Syllable: "Tas", Emoji: "☕", Difficulty: words.Medium},
		{Word: "Tiger", Syllable: "Ti", Emoji: "🐯", Difficulty: words.Easy},
		{Word: "Hammer", Syllable: "Ham", Emoji: "🔨", Difficulty: words.Medium},
		{Word: "Schule", Syllable: "Schu", Emoji: "🏫", Difficulty: words.Hard},
		{Word: "Schnecke", Syllable: "Schne", Emoji: "🐌", Difficulty: words.Hard},
		{Word: "Blume", Syllable: "Blu", Emoji: "🌸", Difficulty: words.Hard},
	}
}

func assertTaskShape(t *testing.T, task *Task) {
	t.Helper()
	require.Len(t, task.Options, 3)
	seen := map[string]bool{}
	matches := 0
	for _, o := range task.Options {
		assert.False(t, seen[o], "duplicate option %q", o)
		seen[o] = true
		if o == task.Answer {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestSyllable_EasyScenario(t *testing.T) {
	pool := []words.Entry{
		{Word: "Mama", Syllable: "Ma", Emoji: "👩", Difficulty: words.Easy},
		{Word: "Hose", Syllable: "Ho", Emoji: "👖", Difficulty: words.Easy},
		{Word: "Rübe", Syllable: "Rü", Emoji: "🥕", Difficulty: words.Easy},
		{Word: "Lupe", Syllable: "Lu", Emoji: "🔍", Difficulty: words.Easy},
		{Word: "Tiger", Syllable: "Ti", Emoji: "🐯", Difficulty: words.Easy},
		{Word: "Dose", Syllable: "De", Emoji: "🥫", Difficulty: words.Easy},
	}
	g := newTestGenerator(1)

	task, err := g.Syllable(pool, ModeEasy, nil)
	require.NoError(t, err)
	assertTaskShape(t, task)
	assert.Equal(t, KindSyllable, task.Kind)
	assert.Contains(t, task.Options, task.Answer)

	correct := []rune(task.Answer)
	for _, o := range task.Options {
		if o == task.Answer {
			continue
		}
		r := []rune(o)
		require.Len(t, r, 2)
		assert.Equal(t, correct[0], r[0], "same consonant")
		assert.NotEqual(t, correct[1], r[1], "different vowel")
		assert.Contains(t, distractor.Vowels, r[1])
	}
}

func TestSyllable_ModesFilterPool(t *testing.T) {
	tests := []struct {
		mode  Mode
		state *adaptive.State
		allow []words.Difficulty
	}{
		{ModeEasy, nil, []words.Difficulty{words.Easy}},
		{ModeMedium, nil, []words.Difficulty{words.Easy, words.Medium}},
		{ModeHard, nil, []words.Difficulty{words.Easy, words.Medium, words.Hard}},
		{ModeAdaptive, &adaptive.State{Level: adaptive.LevelHard}, []words.Difficulty{words.Hard}},
		{ModeAdaptive, &adaptive.State{Level: adaptive.LevelMedium}, []words.Difficulty{words.Medium}},
	}

	byWord := map[string]words.Entry{}
	for _, e := range testPool() {
		byWord[e.Word] = e
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			g := newTestGenerator(5)
			for range 40 {
				task, err := g.Syllable(testPool(), tt.mode, tt.state)
				require.NoError(t, err)
				assertTaskShape(t, task)
				assert.Contains(t, tt.allow, byWord[task.Word].Difficulty)
				if tt.mode == ModeEasy {
					assert.Len(t, []rune(task.Answer), 2)
				}
			}
		})
	}
}

func TestSyllable_IDsIncrease(t *testing.T) {
	g := newTestGenerator(2)
	last := 0
	for range 10 {
		task, err := g.Syllable(testPool(), ModeHard, nil)
		require.NoError(t, err)
		assert.Greater(t, task.ID, last)
		last = task.ID
	}
}

func TestSyllable_EmptyFilterFallsBack(t *testing.T) {
	pool := []words.Entry{
		{Word: "Tasse", Syllable: "Tas", Difficulty: words.Medium},
		{Word: "Hammer", Syllable: "Ham", Difficulty: words.Medium},
		{Word: "Mantel", Syllable: "Man", Difficulty: words.Medium},
	}
	task, err := newTestGenerator(3).Syllable(pool, ModeAdaptive, &adaptive.State{Level: adaptive.LevelHard})
	require.NoError(t, err)
	assertTaskShape(t, task)
}

func TestSyllable_InsufficientPool(t *testing.T) {
	tests := []struct {
		name string
		pool []words.Entry
	}{
		{"empty", nil},
		{"single syllable", []words.Entry{
			{Word: "Mama", Syllable: "Ma", Difficulty: words.Medium},
			{Word: "Mantel", Syllable: "Ma", Difficulty: words.Medium},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestGenerator(1).Syllable(tt.pool, ModeMedium, nil)
			var poolErr *InsufficientPoolError
			require.True(t, errors.As(err, &poolErr), "got %v", err)
			assert.Equal(t, KindSyllable, poolErr.Kind)
		})
	}
}

func TestSyllable_RetryBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 7
	g := New(pick.NewSource(1), cfg)
	_, err := g.Syllable([]words.Entry{{Word: "A", Syllable: "A", Difficulty: words.Hard}}, ModeHard, nil)

	var poolErr *InsufficientPoolError
	require.True(t, errors.As(err, &poolErr))
	assert.Equal(t, 7, poolErr.Attempts)
	assert.True(t, errors.Is(err, distractor.ErrInsufficientCandidates))
}

func TestSyllable_InvalidMode(t *testing.T) {
	_, err := newTestGenerator(1).Syllable(testPool(), Mode("bogus"), nil)
	var cfgErr *validate.InvalidConfigurationError
	assert.True(t, errors.As(err, &cfgErr))

	_, err = newTestGenerator(1).Syllable(testPool(), ModeAdaptive, nil)
	assert.True(t, errors.As(err, &cfgErr))
}

func TestSyllable_WithDefaultDatabase(t *testing.T) {
	db, err := words.Default()
	require.NoError(t, err)

	for _, mode := range []Mode{ModeEasy, ModeMedium, ModeHard} {
		g := newTestGenerator(11)
		for range 100 {
			task, err := g.Syllable(db.Words, mode, nil)
			require.NoError(t, err, "mode %s", mode)
			assertTaskShape(t, task)
		}
	}
	for level := adaptive.LevelEasy; level <= adaptive.LevelHard; level++ {
		g := newTestGenerator(12)
		task, err := g.Syllable(db.Words, ModeAdaptive, &adaptive.State{Level: level})
		require.NoError(t, err)
		assertTaskShape(t, task)
	}
}

func TestSyllableModeForLevel(t *testing.T) {
	assert.Equal(t, ModeEasy, SyllableModeForLevel(2))
	assert.Equal(t, ModeMedium, SyllableModeForLevel(5))
	assert.Equal(t, ModeHard, SyllableModeForLevel(9))
}
