package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/store"
)

// Planner fills in a Plan from the learner's saved progress.
type Planner struct {
	Progress store.ProgressRepo
	Log      zerolog.Logger
}

// NewPlanner creates a Planner. A nil repo always yields defaults.
func NewPlanner(progress store.ProgressRepo, log zerolog.Logger) *Planner {
	return &Planner{Progress: progress, Log: log}
}

// SavedLevel returns the last level used for app, or its default when
// none was saved or the store could not be read.
func (p *Planner) SavedLevel(ctx context.Context, app crowns.App) int {
	if p.Progress == nil {
		return DefaultLevel(app)
	}
	level, err := p.Progress.Level(ctx, string(app))
	if err != nil {
		p.Log.Warn().Err(err).Str("app", string(app)).Msg("could not read saved level")
		return DefaultLevel(app)
	}
	if level == 0 {
		return DefaultLevel(app)
	}
	return level
}

// Build completes plan with defaults for zero fields and validates it.
func (p *Planner) Build(ctx context.Context, plan Plan) (Plan, error) {
	if plan.Level == 0 {
		plan.Level = p.SavedLevel(ctx, plan.App)
	}
	if plan.App == crowns.AppMath {
		if plan.Operator == "" {
			plan.Operator = problemgen.OpAdd
		}
		if plan.Count == 0 && !plan.Adaptive {
			plan.Count = DefaultWorksheetSize
		}
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}
