package session

import (
	"context"
	"fmt"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
)

// LetterSession shows six words and asks for the three that contain a
// letter. The session length equals its difficulty.
type LetterSession struct {
	*base
	gen   *problemgen.Generator
	task  *problemgen.LetterTask
	found []string
	wrong []string
}

// NewLetters starts a letter session.
func NewLetters(ctx context.Context, env *Env, plan Plan) (*LetterSession, error) {
	if len(env.Words) == 0 {
		return nil, ErrNoWords
	}
	s := &LetterSession{
		base: newBase(ctx, env, plan),
		gen:  problemgen.New(env.source(), env.Config),
	}
	if err := s.nextTask(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LetterSession) nextTask() error {
	previous := ""
	if s.task != nil {
		previous = s.task.Letter
	}
	t, err := s.gen.Letter(s.env.Words, previous)
	if err != nil {
		return err
	}
	s.task = t
	s.found = nil
	s.wrong = nil
	return nil
}

// Select marks word in the task with taskID.
func (s *LetterSession) Select(ctx context.Context, taskID int, word string) (Outcome, error) {
	if err := s.checkOpen(); err != nil {
		return Outcome{}, err
	}
	if taskID != s.task.ID {
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownTask, taskID)
	}
	if !s.task.Contains(word) {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}

	correct := s.task.IsTarget(word)
	out := Outcome{TaskID: taskID, Correct: correct}
	if contains(s.found, word) || contains(s.wrong, word) {
		out.Repeated = true
		return out, nil
	}

	s.stats.Record(correct)
	if !correct {
		s.wrong = append(s.wrong, word)
		return out, nil
	}
	s.found = append(s.found, word)
	if len(s.found) < len(s.task.Targets) {
		return out, nil
	}

	s.solved++
	s.stats.TasksCompleted++
	out.TaskDone = true
	if s.solved >= s.plan.Level {
		out.Completed = true
		out.Award = s.complete(ctx, crowns.ForLetters(s.plan.Level), "Buchstaben gefunden")
		return out, nil
	}
	if err := s.nextTask(); err != nil {
		return out, err
	}
	return out, nil
}

// Task returns the current letter task.
func (s *LetterSession) Task() *problemgen.LetterTask {
	return s.task
}

// Snapshot returns the render state.
func (s *LetterSession) Snapshot() Snapshot {
	snap := s.snapshot()
	snap.Total = s.plan.Level
	snap.Letter = &LetterView{
		TaskID:    s.task.ID,
		Letter:    s.task.Letter,
		Words:     s.task.Words,
		Found:     append([]string{}, s.found...),
		Wrong:     append([]string{}, s.wrong...),
		Remaining: len(s.task.Targets) - len(s.found),
	}
	return snap
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
