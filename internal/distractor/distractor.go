// Package distractor produces plausible wrong answers for multiple-choice
// tasks. Every function is pure given its pick.Source.
package distractor

import (
	"errors"
	"slices"
	"strconv"

	"github.com/abhisek/smarty/internal/pick"
)

// Count is the number of wrong options per task.
const Count = 2

// Mode selects the distractor rule.
type Mode string

const (
	// ModeVowelSwap keeps the leading consonant and swaps the vowel.
	ModeVowelSwap Mode = "vowel-swap"
	// ModeSameInitial prefers other syllables with the same first letter.
	ModeSameInitial Mode = "same-initial"
	// ModeAny draws from the whole pool regardless of similarity.
	ModeAny Mode = "any"
	// ModeNearMiss picks numbers close to the correct one.
	ModeNearMiss Mode = "near-miss"
)

// Vowels is the inventory used by ModeVowelSwap.
var Vowels = []rune{'a', 'e', 'i', 'o', 'u', 'ä', 'ö', 'ü'}

// ErrInsufficientCandidates is returned when fewer than Count distinct
// wrong values exist.
var ErrInsufficientCandidates = errors.New("not enough distractor candidates")

// ErrUnsupportedMode is returned for a mode that does not apply to the
// value type.
var ErrUnsupportedMode = errors.New("unsupported distractor mode")

// Syllables returns Count wrong syllables for correct. pool is the full
// list of syllables in the database; duplicates are ignored.
func Syllables(src pick.Source, correct string, pool []string, mode Mode) ([]string, error) {
	switch mode {
	case ModeVowelSwap:
		return vowelSwap(src, correct)
	case ModeSameInitial:
		return sameInitial(src, correct, pool)
	case ModeAny:
		return anyOf(src, others(correct, pool, nil), nil)
	default:
		return nil, ErrUnsupportedMode
	}
}

func vowelSwap(src pick.Source, correct string) ([]string, error) {
	runes := []rune(correct)
	if len(runes) < 2 {
		return nil, ErrInsufficientCandidates
	}
	consonant, used := runes[0], runes[1]

	var candidates []string
	for _, v := range Vowels {
		if v == used {
			continue
		}
		s := string([]rune{consonant, v})
		if s != correct {
			candidates = append(candidates, s)
		}
	}
	return anyOf(src, candidates, nil)
}

func sameInitial(src pick.Source, correct string, pool []string) ([]string, error) {
	rest := others(correct, pool, nil)
	initial := firstRune(correct)

	var similar []string
	for _, s := range rest {
		if firstRune(s) == initial {
			similar = append(similar, s)
		}
	}
	if len(similar) >= Count {
		return pick.Sample(src, similar, Count), nil
	}
	// Pad with random syllables from the whole pool.
	return anyOf(src, others(correct, rest, similar), similar)
}

// anyOf fills chosen up to Count with random candidates.
func anyOf(src pick.Source, candidates, chosen []string) ([]string, error) {
	need := Count - len(chosen)
	if len(candidates) < need {
		return nil, ErrInsufficientCandidates
	}
	out := slices.Clone(chosen)
	return append(out, pick.Sample(src, candidates, need)...), nil
}

// others returns the distinct values of pool that are neither correct nor
// in exclude, in first-seen order.
func others(correct string, pool, exclude []string) []string {
	seen := map[string]struct{}{correct: {}}
	for _, s := range exclude {
		seen[s] = struct{}{}
	}
	var out []string
	for _, s := range pool {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// nearMissOffsets are tried in widening rings around the correct value.
var nearMissOffsets = [][]int{
	{-1, 1, -2, 2},
	{-3, 3, -10, 10},
	{-4, 4, -5, 5},
}

// Numbers returns Count wrong values in [lo, hi] for correct.
func Numbers(src pick.Source, correct, lo, hi int, mode Mode) ([]int, error) {
	switch mode {
	case ModeNearMiss:
		var candidates []int
		for _, ring := range nearMissOffsets {
			for _, off := range ring {
				v := correct + off
				if v >= lo && v <= hi {
					candidates = append(candidates, v)
				}
			}
			if len(candidates) >= Count {
				break
			}
		}
		if len(candidates) < Count {
			return nil, ErrInsufficientCandidates
		}
		return pick.Sample(src, candidates, Count), nil

	case ModeAny:
		var candidates []int
		for v := lo; v <= hi; v++ {
			if v != correct {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) < Count {
			return nil, ErrInsufficientCandidates
		}
		return pick.Sample(src, candidates, Count), nil

	default:
		return nil, ErrUnsupportedMode
	}
}

// NumberStrings is Numbers formatted as decimal strings.
func NumberStrings(src pick.Source, correct, lo, hi int, mode Mode) ([]string, error) {
	nums, err := Numbers(src, correct, lo, hi, mode)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nums))
	for i, n := range nums {
		out[i] = strconv.Itoa(n)
	}
	return out, nil
}
