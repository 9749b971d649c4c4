package sudoku

import (
	"errors"

	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/validate"
)

// ErrPrefilledCell is returned when the learner tries to change a clue.
var ErrPrefilledCell = errors.New("cell is prefilled")

// Game is one puzzle in progress. User starts equal to Puzzle and only
// its blank cells ever change.
type Game struct {
	Difficulty Difficulty `json:"difficulty"`
	Solution   Grid       `json:"-"`
	Puzzle     Grid       `json:"puzzle"`
	User       Grid       `json:"user"`
	HintsUsed  int        `json:"hintsUsed"`

	src pick.Source
}

// NewGame generates a fresh puzzle for the preset.
func NewGame(src pick.Source, d Difficulty) (*Game, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	solution := GenerateSolution(src)
	puzzle, err := CarvePuzzle(src, solution, d.Clues())
	if err != nil {
		return nil, err
	}
	return &Game{
		Difficulty: d,
		Solution:   solution,
		Puzzle:     puzzle,
		User:       puzzle,
		src:        src,
	}, nil
}

// Prefilled reports whether the cell is a clue.
func (g *Game) Prefilled(row, col int) bool {
	return g.Puzzle[row][col] != 0
}

// Set writes value (0 clears) into a blank cell.
func (g *Game) Set(row, col, value int) error {
	if err := checkCell(row, col); err != nil {
		return err
	}
	if err := validate.Range("value", value, 0, Size); err != nil {
		return err
	}
	if g.Prefilled(row, col) {
		return ErrPrefilledCell
	}
	g.User[row][col] = value
	return nil
}

// Hint fills one random empty cell with its solution value.
func (g *Game) Hint() (Hint, error) {
	h, err := FindHint(g.src, g.Puzzle, g.User, g.Solution)
	if err != nil {
		return Hint{}, err
	}
	g.User[h.Row][h.Col] = h.Value
	g.HintsUsed++
	return h, nil
}

// Check validates the user grid.
func (g *Game) Check() Result {
	return Validate(g.User, g.Solution, g.Puzzle)
}

// Full reports whether every cell of the user grid has a value.
func (g *Game) Full() bool {
	return g.User.Filled() == Cells
}
