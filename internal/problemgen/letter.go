package problemgen

import (
	"errors"
	"slices"
	"strings"

	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/words"
)

// Alphabet is the set of letters a letter task can ask for.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var errNoLetter = errors.New("no letter has enough words with and without it")

// Letter builds a task showing LetterGroupSize words that contain a random
// letter and as many that do not. Each letter is tried at most once;
// previous is tried last so consecutive tasks vary.
func (g *Generator) Letter(pool []words.Entry, previous string) (*LetterTask, error) {
	n := max(g.cfg.LetterGroupSize, 1)
	pool = uniqueWords(pool)

	letters := strings.Split(Alphabet, "")
	pick.Shuffle(g.src, letters)
	if i := slices.Index(letters, strings.ToUpper(previous)); i >= 0 {
		prev := letters[i]
		letters = append(slices.Delete(letters, i, i+1), prev)
	}

	for _, letter := range letters {
		var with, without []words.Entry
		for _, e := range pool {
			if e.HasLetter(letter) {
				with = append(with, e)
			} else {
				without = append(without, e)
			}
		}
		if len(with) < n || len(without) < n {
			continue
		}

		targets := pick.Sample(g.src, with, n)
		shown := append(slices.Clone(targets), pick.Sample(g.src, without, n)...)
		pick.Shuffle(g.src, shown)

		names := make([]string, len(targets))
		for i, e := range targets {
			names[i] = e.Word
		}
		return &LetterTask{
			ID:      g.newID(),
			Letter:  letter,
			Words:   shown,
			Targets: names,
		}, nil
	}

	return nil, &InsufficientPoolError{
		Kind:     KindLetter,
		Mode:     ModeFixed,
		PoolSize: len(pool),
		Attempts: len(letters),
		Err:      errNoLetter,
	}
}

func uniqueWords(pool []words.Entry) []words.Entry {
	seen := make(map[string]struct{}, len(pool))
	out := make([]words.Entry, 0, len(pool))
	for _, e := range pool {
		if _, ok := seen[e.Word]; ok {
			continue
		}
		seen[e.Word] = struct{}{}
		out = append(out, e)
	}
	return out
}
