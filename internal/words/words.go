// Package words loads and validates the word database that feeds the
// syllable and letter trainers.
package words

import (
	"slices"
	"strings"
	"unicode"
)

// Difficulty tags a word entry.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists all tags from easiest to hardest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Rank returns 1 for easy, 2 for medium and 3 for hard (0 if unknown).
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	}
	return 0
}

// DifficultyFromRank is the inverse of Rank. Out-of-range ranks clamp.
func DifficultyFromRank(rank int) Difficulty {
	switch {
	case rank <= 1:
		return Easy
	case rank == 2:
		return Medium
	default:
		return Hard
	}
}

// Label returns the learner-facing German name.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Einfach"
	case Medium:
		return "Mittel"
	case Hard:
		return "Schwer"
	}
	return string(d)
}

// DifficultyForLevel maps a 1..10 level to a tag: easy up to 3,
// medium up to 6, hard above.
func DifficultyForLevel(level int) Difficulty {
	switch {
	case level <= 3:
		return Easy
	case level <= 6:
		return Medium
	default:
		return Hard
	}
}

// Entry is one word in the database.
type Entry struct {
	Word       string     `json:"word"`
	Syllable   string     `json:"syllable"`
	Emoji      string     `json:"emoji"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category,omitempty"`
	Image      string     `json:"image,omitempty"`
	Letters    []string   `json:"letters,omitempty"`
}

// LetterSet returns the upper-case letters of the word. Explicit Letters
// take precedence over the derived set.
func (e Entry) LetterSet() map[string]struct{} {
	set := make(map[string]struct{})
	if len(e.Letters) > 0 {
		for _, l := range e.Letters {
			set[strings.ToUpper(l)] = struct{}{}
		}
		return set
	}
	for _, r := range e.Word {
		if unicode.IsLetter(r) {
			set[string(unicode.ToUpper(r))] = struct{}{}
		}
	}
	return set
}

// HasLetter reports whether the word contains letter (case-insensitive).
func (e Entry) HasLetter(letter string) bool {
	_, ok := e.LetterSet()[strings.ToUpper(letter)]
	return ok
}

// Database is a versioned word list.
type Database struct {
	Version string  `json:"version"`
	Words   []Entry `json:"words"`
}

// Syllables returns the distinct syllables of entries in first-seen order.
func Syllables(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, e := range entries {
		if _, ok := seen[e.Syllable]; ok {
			continue
		}
		seen[e.Syllable] = struct{}{}
		out = append(out, e.Syllable)
	}
	return out
}

// Filter returns the entries for which keep reports true.
func Filter(entries []Entry, keep func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Counts returns the number of entries per difficulty.
func (db *Database) Counts() map[Difficulty]int {
	counts := make(map[Difficulty]int, len(Difficulties))
	for _, e := range db.Words {
		counts[e.Difficulty]++
	}
	return counts
}

// Categories returns the sorted distinct categories.
func (db *Database) Categories() []string {
	var out []string
	for _, e := range db.Words {
		if e.Category != "" && !slices.Contains(out, e.Category) {
			out = append(out, e.Category)
		}
	}
	slices.Sort(out)
	return out
}
