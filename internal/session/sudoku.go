package session

import (
	"context"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/sudoku"
)

// SudokuSession plays one 4x4 puzzle. The grid is checked as soon as
// every cell is filled.
type SudokuSession struct {
	*base
	game   *sudoku.Game
	result *sudoku.Result
}

// SudokuOutcome reports the effect of a move or hint.
type SudokuOutcome struct {
	Hint      *sudoku.Hint   `json:"hint,omitempty"`
	Result    *sudoku.Result `json:"result,omitempty"` // set once the grid is full
	Completed bool           `json:"completed"`
	Award     *crowns.Award  `json:"award,omitempty"`
}

// NewSudoku starts a puzzle at the plan's difficulty.
func NewSudoku(ctx context.Context, env *Env, plan Plan) (*SudokuSession, error) {
	game, err := sudoku.NewGame(env.source(), sudoku.Difficulty(plan.Level))
	if err != nil {
		return nil, err
	}
	return &SudokuSession{base: newBase(ctx, env, plan), game: game}, nil
}

// Set writes value into a blank cell; 0 clears it.
func (s *SudokuSession) Set(ctx context.Context, row, col, value int) (SudokuOutcome, error) {
	if err := s.checkOpen(); err != nil {
		return SudokuOutcome{}, err
	}
	if err := s.game.Set(row, col, value); err != nil {
		return SudokuOutcome{}, err
	}
	if value != 0 {
		s.stats.Record(value == s.game.Solution[row][col])
	}
	return s.autoCheck(ctx), nil
}

// Hint reveals one blank cell.
func (s *SudokuSession) Hint(ctx context.Context) (SudokuOutcome, error) {
	if err := s.checkOpen(); err != nil {
		return SudokuOutcome{}, err
	}
	h, err := s.game.Hint()
	if err != nil {
		return SudokuOutcome{}, err
	}
	s.hints = s.game.HintsUsed
	out := s.autoCheck(ctx)
	out.Hint = &h
	return out, nil
}

func (s *SudokuSession) autoCheck(ctx context.Context) SudokuOutcome {
	s.result = nil
	if !s.game.Full() {
		return SudokuOutcome{}
	}
	res := s.game.Check()
	s.result = &res
	out := SudokuOutcome{Result: &res}
	if res.Solved() {
		s.solved = 1
		s.stats.TasksCompleted = 1
		out.Completed = true
		out.Award = s.complete(ctx, crowns.ForSudoku(int(s.game.Difficulty)), "Sudoku gelöst")
	}
	return out
}

// Game returns the puzzle in play.
func (s *SudokuSession) Game() *sudoku.Game {
	return s.game
}

// Snapshot returns the render state.
func (s *SudokuSession) Snapshot() Snapshot {
	snap := s.snapshot()
	snap.Label = s.game.Difficulty.String()
	snap.Total = 1
	snap.Sudoku = &SudokuView{
		Difficulty: s.game.Difficulty,
		Puzzle:     s.game.Puzzle,
		User:       s.game.User,
		HintsUsed:  s.game.HintsUsed,
		Result:     s.result,
	}
	return snap
}
