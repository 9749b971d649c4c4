package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the task's answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Text comparison is case-insensitive
// - Math answers are compared as integers, so "007" matches "7"
// - For syllable tasks a number 1..len(Options) selects that option
func CheckAnswer(input string, t *Task) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if t.Kind == KindMath {
		n, err := strconv.Atoi(input)
		if err != nil {
			return false
		}
		return n == t.Result
	}

	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(t.Options) {
		return strings.EqualFold(t.Options[idx-1], t.Answer)
	}
	return strings.EqualFold(input, strings.TrimSpace(t.Answer))
}
