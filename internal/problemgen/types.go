package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/smarty/internal/words"
)

// Kind identifies which trainer a task belongs to.
type Kind string

const (
	KindSyllable Kind = "syllable"
	KindMath     Kind = "math"
	KindLetter   Kind = "letter"
)

// Mode selects how tasks are picked.
type Mode string

const (
	ModeEasy     Mode = "easy"
	ModeMedium   Mode = "medium"
	ModeHard     Mode = "hard"
	ModeFixed    Mode = "fixed"
	ModeAdaptive Mode = "adaptive"
)

// SyllableModeForLevel maps a 1..10 level to the fixed syllable mode.
func SyllableModeForLevel(level int) Mode {
	switch words.DifficultyForLevel(level) {
	case words.Easy:
		return ModeEasy
	case words.Medium:
		return ModeMedium
	default:
		return ModeHard
	}
}

// Operator is an arithmetic operator.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
)

// ParseOperator accepts "+", "-", "add"/"plus" and "sub"/"minus".
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+", "add", "plus", "addition":
		return OpAdd, true
	case "-", "sub", "minus", "subtraction":
		return OpSub, true
	}
	return "", false
}

// Apply computes a op b.
func (o Operator) Apply(a, b int) int {
	if o == OpSub {
		return a - b
	}
	return a + b
}

// Task is one generated practice item. It is never mutated after
// creation.
type Task struct {
	ID   int  `json:"id"`
	Kind Kind `json:"kind"`

	// Prompt is the text shown to the learner, e.g. "7 + 5 = ?" or the
	// word whose first syllable is asked for.
	Prompt string `json:"prompt"`
	Emoji  string `json:"emoji,omitempty"`
	Image  string `json:"image,omitempty"`
	Word   string `json:"word,omitempty"`

	// Answer is the canonical correct answer.
	Answer string `json:"answer"`

	// Options holds the correct answer and the distractors in shuffled
	// order.
	Options []string `json:"options"`

	Operand1 int      `json:"operand1,omitempty"`
	Operand2 int      `json:"operand2,omitempty"`
	Operator Operator `json:"operator,omitempty"`
	Result   int      `json:"result,omitempty"`
}

// Key identifies equivalent tasks for duplicate checks.
func (t *Task) Key() string {
	if t.Kind == KindMath {
		return fmt.Sprintf("%d%s%d", t.Operand1, t.Operator, t.Operand2)
	}
	return string(t.Kind) + ":" + t.Word
}

// HasZeroOperand reports whether a math task has a zero second operand.
func (t *Task) HasZeroOperand() bool {
	return t.Kind == KindMath && t.Operand2 == 0
}

// AnswerInt returns the numeric answer of a math task.
func (t *Task) AnswerInt() int {
	n, _ := strconv.Atoi(t.Answer)
	return n
}

// LetterTask asks the learner to find every word containing Letter.
type LetterTask struct {
	ID     int           `json:"id"`
	Letter string        `json:"letter"`
	Words  []words.Entry `json:"words"`
	// Targets are the words in Words that contain Letter.
	Targets []string `json:"targets"`
}

// IsTarget reports whether word contains the task's letter.
func (lt *LetterTask) IsTarget(word string) bool {
	for _, w := range lt.Targets {
		if w == word {
			return true
		}
	}
	return false
}

// Contains reports whether word is one of the offered words.
func (lt *LetterTask) Contains(word string) bool {
	for _, e := range lt.Words {
		if e.Word == word {
			return true
		}
	}
	return false
}
