package session

import (
	"context"
	"fmt"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/words"
)

// maxRedraws bounds the attempts to find a task whose word is not
// already on screen.
const maxRedraws = 5

// SyllableSession shows three words at a time and asks for their first
// syllable. Fixed sessions end after SyllableTasks solved tasks;
// adaptive sessions run until finished and move between easy, medium
// and hard words.
type SyllableSession struct {
	*base
	gen    *problemgen.Generator
	ctrl   *adaptive.Controller // nil in fixed mode
	active []*problemgen.Task
	total  int
}

// NewSyllables starts a syllable session.
func NewSyllables(ctx context.Context, env *Env, plan Plan) (*SyllableSession, error) {
	if len(env.Words) == 0 {
		return nil, ErrNoWords
	}
	s := &SyllableSession{
		base: newBase(ctx, env, plan),
		gen:  problemgen.New(env.source(), env.Config),
	}
	if plan.Adaptive {
		rank := words.DifficultyForLevel(plan.Level).Rank()
		s.ctrl = adaptive.NewController(adaptive.SyllablePolicy(), rank)
	} else {
		s.total = SyllableTasks
	}

	for range Active {
		t, err := s.next()
		if err != nil {
			return nil, err
		}
		s.active = append(s.active, t)
	}
	return s, nil
}

func (s *SyllableSession) next() (*problemgen.Task, error) {
	var t *problemgen.Task
	for range maxRedraws {
		var err error
		if s.ctrl != nil {
			st := s.ctrl.State()
			t, err = s.gen.Syllable(s.env.Words, problemgen.ModeAdaptive, &st)
		} else {
			t, err = s.gen.Syllable(s.env.Words, problemgen.SyllableModeForLevel(s.plan.Level), nil)
		}
		if err != nil {
			return nil, err
		}
		if !onScreen(s.active, t.Key()) {
			break
		}
	}
	return t, nil
}

func onScreen(tasks []*problemgen.Task, key string) bool {
	for _, t := range tasks {
		if t.Key() == key {
			return true
		}
	}
	return false
}

func indexOf(tasks []*problemgen.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Answer grades option (the syllable or its 1-based position) for the
// task on screen with taskID.
func (s *SyllableSession) Answer(ctx context.Context, taskID int, option string) (Outcome, error) {
	if err := s.checkOpen(); err != nil {
		return Outcome{}, err
	}
	i := indexOf(s.active, taskID)
	if i < 0 {
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownTask, taskID)
	}
	task := s.active[i]

	correct := problemgen.CheckAnswer(option, task)
	s.stats.Record(correct)
	out := Outcome{TaskID: taskID, Correct: correct}
	if s.ctrl != nil {
		out.Transitions = s.ctrl.Record(adaptive.Answer{Correct: correct})
		for _, tr := range out.Transitions {
			s.log.Info().Str("signal", string(tr.Signal)).Int("from", tr.From).Int("to", tr.To).Msg("difficulty changed")
		}
	}
	if !correct {
		out.Answer = task.Answer
		return out, nil
	}

	s.solved++
	s.stats.TasksCompleted++
	out.TaskDone = true
	s.active = append(s.active[:i], s.active[i+1:]...)

	if s.total == 0 || s.solved+len(s.active) < s.total {
		next, err := s.next()
		if err != nil {
			return out, err
		}
		s.active = append(s.active, next)
		out.Next = next
	}

	if s.total > 0 && s.solved >= s.total {
		out.Completed = true
		out.Award = s.complete(ctx, crowns.CompletionCrowns, "Silben geschafft")
		return out, nil
	}
	if crowns.IsMilestone(s.solved) {
		out.Milestone = s.solved
	}
	return out, nil
}

// Tasks returns the tasks on screen.
func (s *SyllableSession) Tasks() []*problemgen.Task {
	return append([]*problemgen.Task(nil), s.active...)
}

// Snapshot returns the render state.
func (s *SyllableSession) Snapshot() Snapshot {
	snap := s.snapshot()
	snap.Total = s.total
	snap.Tasks = s.Tasks()
	if s.ctrl != nil {
		st := s.ctrl.State()
		snap.Adaptive = &st
		snap.Label = words.DifficultyFromRank(st.Level).Label()
	}
	return snap
}
