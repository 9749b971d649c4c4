package sudoku

import (
	"errors"

	"github.com/abhisek/smarty/internal/pick"
)

// ErrNoHintAvailable is returned when every blank cell is already filled.
var ErrNoHintAvailable = errors.New("no hint available")

// Result is the outcome of checking a user grid.
type Result struct {
	AllFilled  bool   `json:"allFilled"`
	AllCorrect bool   `json:"allCorrect"`
	Wrong      []Cell `json:"wrong,omitempty"`
}

// Solved reports whether the puzzle is complete and correct.
func (r Result) Solved() bool {
	return r.AllFilled && r.AllCorrect
}

// Validate compares every non-prefilled cell of user with solution. A zero
// counts as unfilled; unfilled cells do not make the grid incorrect.
func Validate(user, solution, puzzle Grid) Result {
	res := Result{AllFilled: true, AllCorrect: true}
	for r := range Size {
		for c := range Size {
			if puzzle[r][c] != 0 {
				continue
			}
			switch v := user[r][c]; {
			case v == 0:
				res.AllFilled = false
			case v != solution[r][c]:
				res.AllCorrect = false
				res.Wrong = append(res.Wrong, Cell{Row: r, Col: c})
			}
		}
	}
	return res
}

// Hint reveals the solution value of a uniformly chosen cell that is blank
// in both the puzzle and the user grid.
type Hint struct {
	Cell
	Value int `json:"value"`
}

// FindHint picks a hint or returns ErrNoHintAvailable.
func FindHint(src pick.Source, puzzle, user, solution Grid) (Hint, error) {
	var empty []Cell
	for r := range Size {
		for c := range Size {
			if puzzle[r][c] == 0 && user[r][c] == 0 {
				empty = append(empty, Cell{Row: r, Col: c})
			}
		}
	}
	cell, ok := pick.One(src, empty)
	if !ok {
		return Hint{}, ErrNoHintAvailable
	}
	return Hint{Cell: cell, Value: solution[cell.Row][cell.Col]}, nil
}
