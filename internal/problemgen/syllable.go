package problemgen

import (
	"fmt"
	"unicode/utf8"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/distractor"
	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/validate"
	"github.com/abhisek/smarty/internal/words"
)

// Syllable builds a task asking for the first syllable of a word.
//
// pool is the whole word database. mode filters it: easy keeps easy words
// with a two-letter syllable, medium keeps easy and medium words, hard
// keeps everything and adaptive keeps words matching state.Level. An
// empty filtered pool falls back to the whole pool.
func (g *Generator) Syllable(pool []words.Entry, mode Mode, state *adaptive.State) (*Task, error) {
	keep, dmode, err := syllableRules(mode, state)
	if err != nil {
		return nil, err
	}

	candidates := words.Filter(pool, keep)
	if len(candidates) == 0 {
		candidates = pool
	}
	if len(candidates) == 0 {
		return nil, &InsufficientPoolError{Kind: KindSyllable, Mode: mode}
	}

	syllables := words.Syllables(pool)
	attempts := max(g.cfg.MaxAttempts, 1)
	var lastErr error
	for range attempts {
		entry, _ := pick.One(g.src, candidates)

		wrong, err := distractor.Syllables(g.src, entry.Syllable, syllables, dmode)
		if err != nil {
			lastErr = err
			continue
		}

		t := &Task{
			Kind:    KindSyllable,
			Prompt:  entry.Word,
			Emoji:   entry.Emoji,
			Image:   entry.Image,
			Word:    entry.Word,
			Answer:  entry.Syllable,
			Options: g.withOptions(entry.Syllable, wrong),
		}
		if verr := g.validate(t); verr != nil {
			lastErr = verr
			continue
		}
		t.ID = g.newID()
		return t, nil
	}

	return nil, &InsufficientPoolError{
		Kind:     KindSyllable,
		Mode:     mode,
		PoolSize: len(candidates),
		Attempts: attempts,
		Err:      lastErr,
	}
}

func syllableRules(mode Mode, state *adaptive.State) (func(words.Entry) bool, distractor.Mode, error) {
	switch mode {
	case ModeEasy:
		return func(e words.Entry) bool {
			return e.Difficulty == words.Easy && utf8.RuneCountInString(e.Syllable) == 2
		}, distractor.ModeVowelSwap, nil
	case ModeMedium:
		return func(e words.Entry) bool {
			return e.Difficulty == words.Easy || e.Difficulty == words.Medium
		}, distractor.ModeSameInitial, nil
	case ModeHard:
		return func(words.Entry) bool { return true }, distractor.ModeSameInitial, nil
	case ModeAdaptive:
		if state == nil {
			return nil, "", validate.Invalid("adaptive state", "missing")
		}
		want := words.DifficultyFromRank(state.Level)
		return func(e words.Entry) bool { return e.Difficulty == want }, distractor.ModeAny, nil
	}
	return nil, "", validate.Invalid("syllable mode", fmt.Sprintf("unknown %q", mode))
}
