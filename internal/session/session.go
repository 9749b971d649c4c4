// Package session runs the training games on top of the task
// generators, the adaptive controller and the Sudoku engine. A session
// owns all mutable game state; presentations only render snapshots and
// forward answers.
package session

import (
	"context"
	"errors"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
)

var (
	// ErrUnknownTask is returned for answers to a task that is not on
	// screen.
	ErrUnknownTask = errors.New("unknown task")

	// ErrUnknownWord is returned when a letter selection names a word
	// that is not offered.
	ErrUnknownWord = errors.New("word is not part of the task")

	// ErrFinished is returned for input after the session ended.
	ErrFinished = errors.New("session already finished")

	// ErrNotANumber is returned for math answers that are not integers.
	ErrNotANumber = errors.New("answer is not a number")

	// ErrNoWords is returned when a word game starts without word data.
	ErrNoWords = errors.New("no word data loaded")
)

// Session is the capability every game shares.
type Session interface {
	ID() string
	App() crowns.App
	Snapshot() Snapshot

	// Finish ends the session and records it in the history. It is
	// safe to call more than once.
	Finish(ctx context.Context) *Summary
}

// Outcome reports the effect of one answer.
type Outcome struct {
	TaskID  int  `json:"taskId"`
	Correct bool `json:"correct"`

	// Answer is the correct answer, set after a wrong try so it can be
	// revealed.
	Answer string `json:"answer,omitempty"`

	// TaskDone is set when the task left the screen.
	TaskDone bool `json:"taskDone"`

	// Revoked is set when a wrong answer undid a completed worksheet
	// task.
	Revoked bool `json:"revoked,omitempty"`

	// Repeated is set for a letter selection that was already made.
	Repeated bool `json:"repeated,omitempty"`

	// Milestone holds the solved count when it reached a milestone.
	Milestone int `json:"milestone,omitempty"`

	Transitions []adaptive.Transition `json:"transitions,omitempty"`

	// Next is the task that replaced the solved one.
	Next *problemgen.Task `json:"next,omitempty"`

	Completed bool          `json:"completed"`
	Award     *crowns.Award `json:"award,omitempty"`
}

// LevelUp reports whether a level-up fired.
func (o Outcome) LevelUp() bool {
	return o.fired(adaptive.SignalLevelUp)
}

// Unlocked reports whether a new number was unlocked.
func (o Outcome) Unlocked() bool {
	return o.fired(adaptive.SignalUnlock)
}

func (o Outcome) fired(sig adaptive.Signal) bool {
	for _, t := range o.Transitions {
		if t.Signal == sig {
			return true
		}
	}
	return false
}

// New starts the session described by plan. The plan must already be
// validated, usually by Planner.Build.
func New(ctx context.Context, env *Env, plan Plan) (Session, error) {
	var (
		s   Session
		err error
	)
	switch plan.App {
	case crowns.AppSyllables:
		s, err = NewSyllables(ctx, env, plan)
	case crowns.AppMath:
		s, err = NewMath(ctx, env, plan)
	case crowns.AppLetters:
		s, err = NewLetters(ctx, env, plan)
	case crowns.AppSudoku:
		s, err = NewSudoku(ctx, env, plan)
	default:
		return nil, plan.Validate()
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
