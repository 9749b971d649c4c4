package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/store"
	"github.com/abhisek/smarty/internal/sudoku"
	"github.com/abhisek/smarty/internal/validate"
	"github.com/abhisek/smarty/internal/words"
)

// Env holds what sessions share: the word pool and the persistence
// ports. Each session draws its own random source from it, so sessions
// can run on different goroutines.
type Env struct {
	Words    []words.Entry
	Progress store.ProgressRepo
	Events   store.EventRepo
	Log      zerolog.Logger
	Config   problemgen.Config

	seed  uint64
	count atomic.Uint64
}

// NewEnv creates an Env. A zero seed gives every session a random
// source; any other seed makes the n-th session use seed+n.
func NewEnv(pool []words.Entry, progress store.ProgressRepo, events store.EventRepo, log zerolog.Logger, seed uint64) *Env {
	return &Env{
		Words:    pool,
		Progress: progress,
		Events:   events,
		Log:      log,
		Config:   problemgen.DefaultConfig(),
		seed:     seed,
	}
}

func (e *Env) source() pick.Source {
	n := e.count.Add(1) - 1
	if e.seed == 0 {
		return pick.NewSource(0)
	}
	return pick.NewSource(e.seed + n)
}

// Snapshot is the render state of a session.
type Snapshot struct {
	ID       string     `json:"id"`
	App      crowns.App `json:"app"`
	Mode     string     `json:"mode"`
	Level    int        `json:"level"`
	Label    string     `json:"label"`
	Stats    Stats      `json:"stats"`
	Solved   int        `json:"solved"`
	Total    int        `json:"total,omitempty"` // 0 = unbounded
	Crowns   int        `json:"crowns"`
	Done     bool       `json:"done"`
	Warnings []string   `json:"warnings,omitempty"`

	Tasks     []*problemgen.Task `json:"tasks,omitempty"`
	Completed []int              `json:"completed,omitempty"` // solved worksheet task IDs
	Adaptive  *adaptive.State    `json:"adaptive,omitempty"`
	Unlock    *UnlockProgress    `json:"unlock,omitempty"`
	Letter    *LetterView        `json:"letter,omitempty"`
	Sudoku    *SudokuView        `json:"sudoku,omitempty"`
}

// UnlockProgress shows how far the learner is from the next number.
type UnlockProgress struct {
	Ceiling int `json:"ceiling"`
	Count   int `json:"count"`
	Needed  int `json:"needed"`
}

// LetterView is the render state of the current letter task.
type LetterView struct {
	TaskID    int           `json:"taskId"`
	Letter    string        `json:"letter"`
	Words     []words.Entry `json:"words"`
	Found     []string      `json:"found"`
	Wrong     []string      `json:"wrong"`
	Remaining int           `json:"remaining"`
}

// SudokuView is the render state of a puzzle.
type SudokuView struct {
	Difficulty sudoku.Difficulty `json:"difficulty"`
	Puzzle     sudoku.Grid       `json:"puzzle"`
	User       sudoku.Grid       `json:"user"`
	HintsUsed  int               `json:"hintsUsed"`
	Result     *sudoku.Result    `json:"result,omitempty"`
}

// base is embedded by every session and holds the bookkeeping they
// share.
type base struct {
	env   *Env
	id    string
	plan  Plan
	start time.Time
	log   zerolog.Logger

	stats    Stats
	solved   int
	hints    int
	crowns   *crowns.Service
	warnings []string

	done    bool
	summary *Summary
}

func newBase(ctx context.Context, env *Env, plan Plan) *base {
	id := uuid.NewString()
	log := env.Log.With().Str("session", id).Str("app", string(plan.App)).Logger()
	b := &base{
		env:    env,
		id:     id,
		plan:   plan,
		start:  time.Now(),
		log:    log,
		crowns: crowns.NewService(env.Progress, log),
	}
	if env.Progress != nil {
		if err := env.Progress.SetLevel(ctx, string(plan.App), plan.Level); err != nil {
			b.warn(err, "could not save level")
		}
	}
	log.Info().Str("mode", string(plan.Mode())).Int("level", plan.Level).Msg("session started")
	return b
}

func (b *base) ID() string      { return b.id }
func (b *base) App() crowns.App { return b.plan.App }

func (b *base) warn(err error, msg string) {
	b.log.Warn().Err(err).Msg(msg)
	b.warnings = append(b.warnings, msg+": "+err.Error())
}

func (b *base) snapshot() Snapshot {
	return Snapshot{
		ID:       b.id,
		App:      b.plan.App,
		Mode:     string(b.plan.Mode()),
		Level:    b.plan.Level,
		Label:    validate.Label(b.plan.Level),
		Stats:    b.stats,
		Solved:   b.solved,
		Crowns:   b.crowns.SessionTotal(),
		Done:     b.done,
		Warnings: append([]string(nil), b.warnings...),
	}
}

func (b *base) award(ctx context.Context, n int, reason string) *crowns.Award {
	a, err := b.crowns.Award(ctx, b.plan.App, n, b.id, reason)
	if err != nil {
		b.warn(err, "could not save crowns")
	}
	return a
}

// complete ends the session as finished and returns the award.
func (b *base) complete(ctx context.Context, n int, reason string) *crowns.Award {
	a := b.award(ctx, n, reason)
	b.log.Info().Int("solved", b.solved).Int("crowns", n).Msg("session completed")
	b.done = true
	b.Finish(ctx)
	return a
}

// Finish records the session once and returns its summary.
func (b *base) Finish(ctx context.Context) *Summary {
	if b.summary != nil {
		return b.summary
	}
	b.summary = BuildSummary(b)
	if b.env.Events != nil {
		err := b.env.Events.AppendSessionEvent(ctx, b.summary.EventData())
		if err != nil {
			b.warn(err, "could not save session")
			b.summary.Warnings = append([]string(nil), b.warnings...)
		}
	}
	return b.summary
}

func (b *base) checkOpen() error {
	if b.done || b.summary != nil {
		return ErrFinished
	}
	return nil
}
