package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
)

// MathSession is either a fixed worksheet or an endless adaptive run.
//
// On a worksheet every task stays on screen; a correct answer completes
// it and a later wrong answer to the same task takes that back. The
// crown is awarded once all tasks are complete. Adaptive runs keep
// three unsolved tasks on screen and replace each solved one.
type MathSession struct {
	*base
	gen *problemgen.Generator

	// Worksheet mode.
	sheet     []*problemgen.Task
	solvedIDs map[int]bool

	// Adaptive mode.
	ctrl   *adaptive.Controller
	active []*problemgen.Task
	recent []*problemgen.Task
}

// NewMath starts a math session.
func NewMath(ctx context.Context, env *Env, plan Plan) (*MathSession, error) {
	s := &MathSession{
		base: newBase(ctx, env, plan),
		gen:  problemgen.New(env.source(), env.Config),
	}

	if !plan.Adaptive {
		sheet, err := s.gen.Worksheet(plan.Count, plan.Level, plan.Operator)
		if err != nil {
			return nil, err
		}
		s.sheet = sheet
		s.solvedIDs = make(map[int]bool, len(sheet))
		return s, nil
	}

	maxResult := problemgen.MaxResultForLevel(plan.Level)
	s.ctrl = adaptive.NewController(adaptive.MathPolicy(maxResult), adaptive.MathStartLevel(maxResult))
	for range Active {
		t, err := s.next()
		if err != nil {
			return nil, err
		}
		s.active = append(s.active, t)
	}
	return s, nil
}

func (s *MathSession) next() (*problemgen.Task, error) {
	st := s.ctrl.State()
	keys := make([]string, 0, len(s.active))
	for _, t := range s.active {
		keys = append(keys, t.Key())
	}
	t, err := s.gen.Math(problemgen.MathRequest{
		Mode:     problemgen.ModeAdaptive,
		Operator: s.plan.Operator,
		State:    &st,
		Policy:   s.ctrl.Policy(),
		Avoid:    keys,
		Recent:   s.recent,
	})
	if err != nil {
		return nil, err
	}
	s.recent = append(s.recent, t)
	if n := s.env.Config.RecentZeroWindow; len(s.recent) > n {
		s.recent = s.recent[len(s.recent)-n:]
	}
	return t, nil
}

// Answer grades value for the task with taskID.
func (s *MathSession) Answer(ctx context.Context, taskID int, value string) (Outcome, error) {
	if err := s.checkOpen(); err != nil {
		return Outcome{}, err
	}
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return Outcome{}, fmt.Errorf("%w: %q", ErrNotANumber, value)
	}
	if s.ctrl == nil {
		return s.answerSheet(ctx, taskID, value)
	}
	return s.answerAdaptive(taskID, value)
}

func (s *MathSession) answerSheet(ctx context.Context, taskID int, value string) (Outcome, error) {
	i := indexOf(s.sheet, taskID)
	if i < 0 {
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownTask, taskID)
	}
	task := s.sheet[i]

	correct := problemgen.CheckAnswer(value, task)
	s.stats.Record(correct)
	out := Outcome{TaskID: taskID, Correct: correct}

	if !correct {
		if s.solvedIDs[taskID] {
			delete(s.solvedIDs, taskID)
			s.solved--
			s.stats.TasksCompleted--
			out.Revoked = true
		}
		return out, nil
	}
	if s.solvedIDs[taskID] {
		return out, nil
	}

	s.solvedIDs[taskID] = true
	s.solved++
	s.stats.TasksCompleted++
	out.TaskDone = true

	if s.solved == len(s.sheet) {
		out.Completed = true
		out.Award = s.complete(ctx, crowns.CompletionCrowns, "Arbeitsblatt geschafft")
		return out, nil
	}
	if crowns.IsMilestone(s.solved) {
		out.Milestone = s.solved
	}
	return out, nil
}

func (s *MathSession) answerAdaptive(taskID int, value string) (Outcome, error) {
	i := indexOf(s.active, taskID)
	if i < 0 {
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownTask, taskID)
	}
	task := s.active[i]

	correct := problemgen.CheckAnswer(value, task)
	s.stats.Record(correct)
	out := Outcome{TaskID: taskID, Correct: correct}
	out.Transitions = s.ctrl.Record(adaptive.Answer{Correct: correct, Result: task.Result})
	for _, tr := range out.Transitions {
		s.log.Info().Str("signal", string(tr.Signal)).Int("from", tr.From).Int("to", tr.To).Msg("difficulty changed")
	}
	if !correct {
		return out, nil
	}

	s.solved++
	s.stats.TasksCompleted++
	out.TaskDone = true
	s.active = append(s.active[:i], s.active[i+1:]...)

	next, err := s.next()
	if err != nil {
		return out, err
	}
	s.active = append(s.active, next)
	out.Next = next

	if crowns.IsMilestone(s.solved) {
		out.Milestone = s.solved
	}
	return out, nil
}

// Tasks returns the worksheet, or the adaptive tasks on screen.
func (s *MathSession) Tasks() []*problemgen.Task {
	if s.ctrl == nil {
		return append([]*problemgen.Task(nil), s.sheet...)
	}
	return append([]*problemgen.Task(nil), s.active...)
}

// IsComplete reports whether a worksheet task is currently solved.
func (s *MathSession) IsComplete(taskID int) bool {
	return s.solvedIDs[taskID]
}

// Snapshot returns the render state.
func (s *MathSession) Snapshot() Snapshot {
	snap := s.snapshot()
	snap.Tasks = s.Tasks()
	if s.ctrl == nil {
		snap.Total = len(s.sheet)
		for _, t := range s.sheet {
			if s.solvedIDs[t.ID] {
				snap.Completed = append(snap.Completed, t.ID)
			}
		}
		return snap
	}

	st := s.ctrl.State()
	snap.Adaptive = &st
	snap.Label = fmt.Sprintf("Level %d", st.Level)
	count, needed := s.ctrl.Policy().Unlock.Progress(st)
	snap.Unlock = &UnlockProgress{Ceiling: st.MaxUnlockedNumber, Count: count, Needed: needed}
	return snap
}
