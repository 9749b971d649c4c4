// Package adaptive adjusts training difficulty from the learner's answers.
//
// The controller is an explicit state machine: Step maps a Policy, the
// current State and one Answer to the next State plus the transitions
// that fired. Syllable and math trainers differ only by Policy.
package adaptive

import "maps"

// State is the per-session adaptive state.
type State struct {
	Level             int         `json:"level"`
	CorrectStreak     int         `json:"correctStreak"`
	IncorrectCount    int         `json:"incorrectCount"`
	TasksShown        int         `json:"tasksShown"`
	MaxUnlockedNumber int         `json:"maxUnlockedNumber,omitempty"`
	NumberUsageCount  map[int]int `json:"numberUsageCount,omitempty"`
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	if s.NumberUsageCount != nil {
		c.NumberUsageCount = maps.Clone(s.NumberUsageCount)
	}
	return c
}

// Usage returns how often n has been answered correctly as a result.
// At the starting ceiling this is the count of all correct answers.
func (s State) Usage(n int) int {
	return s.NumberUsageCount[n]
}

// Signal names a transition.
type Signal string

const (
	SignalLevelUp   Signal = "level-up"
	SignalLevelDown Signal = "level-down"
	SignalUnlock    Signal = "unlock"
)

// Transition records one fired signal. For level changes From/To are
// levels; for unlocks they are the old and new ceiling numbers.
type Transition struct {
	Signal Signal
	From   int
	To     int
}

// Answer is one graded learner response.
type Answer struct {
	Correct bool
	// Result is the value of the answered math task; zero otherwise.
	Result int
}
