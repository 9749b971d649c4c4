package session

import (
	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/sudoku"
	"github.com/abhisek/smarty/internal/validate"
)

// Plan is the validated setup of one session.
type Plan struct {
	App      crowns.App
	Adaptive bool

	// Level is 1..10 for syllables, math and letters and the
	// difficulty preset 1..3 for sudoku.
	Level int

	// Count is the worksheet length of fixed math sessions.
	Count int

	// Operator is the math operator.
	Operator problemgen.Operator
}

// Active is how many unsolved tasks a syllable or adaptive math
// session keeps on screen.
const Active = 3

// SyllableTasks is the length of a fixed syllable session.
const SyllableTasks = 20

// DefaultWorksheetSize is the worksheet length when none is given.
const DefaultWorksheetSize = 20

// DefaultLevel is the level used when nothing was saved yet.
func DefaultLevel(app crowns.App) int {
	if app == crowns.AppSudoku {
		return int(sudoku.Level1)
	}
	return 5
}

// Mode returns the generation mode of the plan.
func (p Plan) Mode() problemgen.Mode {
	if p.Adaptive {
		return problemgen.ModeAdaptive
	}
	return problemgen.ModeFixed
}

// Validate checks the plan bounds.
func (p Plan) Validate() error {
	switch p.App {
	case crowns.AppSyllables, crowns.AppLetters:
		return validate.Level(p.Level)
	case crowns.AppMath:
		if err := validate.Level(p.Level); err != nil {
			return err
		}
		if p.Operator != problemgen.OpAdd && p.Operator != problemgen.OpSub {
			return validate.Invalid("operator", "must be + or -")
		}
		if !p.Adaptive {
			return validate.TaskCount(p.Count)
		}
		return nil
	case crowns.AppSudoku:
		return sudoku.Difficulty(p.Level).Validate()
	}
	return validate.Invalid("app", "unknown "+string(p.App))
}
