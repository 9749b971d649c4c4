package sudoku

import (
	"fmt"

	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/validate"
)

// base is a valid solution every generated grid is derived from.
var base = Grid{
	{1, 2, 3, 4},
	{3, 4, 1, 2},
	{2, 3, 4, 1},
	{4, 1, 2, 3},
}

// Difficulty is a 1..3 preset.
type Difficulty int

const (
	Level1 Difficulty = 1
	Level2 Difficulty = 2
	Level3 Difficulty = 3
)

// Clues returns how many cells a preset leaves filled.
func (d Difficulty) Clues() int {
	switch d {
	case Level1:
		return 10
	case Level2:
		return 8
	default:
		return 6
	}
}

func (d Difficulty) String() string {
	switch d {
	case Level1:
		return "Einfach"
	case Level2:
		return "Mittel"
	case Level3:
		return "Schwer"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Validate checks the preset is 1..3.
func (d Difficulty) Validate() error {
	return validate.Range("sudoku difficulty", int(d), int(Level1), int(Level3))
}

// transform is a symmetry of the 4x4 constraint structure.
type transform func(*Grid)

var transforms = []transform{
	func(g *Grid) { swapRows(g, 0, 1) },
	func(g *Grid) { swapRows(g, 2, 3) },
	func(g *Grid) { swapCols(g, 0, 1) },
	func(g *Grid) { swapCols(g, 2, 3) },
	func(g *Grid) { swapRows(g, 0, 2); swapRows(g, 1, 3) },
	func(g *Grid) { swapCols(g, 0, 2); swapCols(g, 1, 3) },
}

// GenerateSolution returns a random valid solution. Each transform is
// applied independently with probability 1/2.
func GenerateSolution(src pick.Source) Grid {
	g := base
	for _, t := range transforms {
		if pick.Chance(src, 0.5) {
			t(&g)
		}
	}
	return g
}

// CarvePuzzle blanks Cells-clues uniformly chosen cells of solution.
func CarvePuzzle(src pick.Source, solution Grid, clues int) (Grid, error) {
	if err := validate.Range("clue count", clues, 0, Cells); err != nil {
		return Grid{}, err
	}
	positions := make([]Cell, 0, Cells)
	for r := range Size {
		for c := range Size {
			positions = append(positions, Cell{Row: r, Col: c})
		}
	}
	pick.Shuffle(src, positions)

	puzzle := solution
	for _, p := range positions[:Cells-clues] {
		puzzle[p.Row][p.Col] = 0
	}
	return puzzle, nil
}

func swapRows(g *Grid, a, b int) {
	g[a], g[b] = g[b], g[a]
}

func swapCols(g *Grid, a, b int) {
	for r := range Size {
		g[r][a], g[r][b] = g[r][b], g[r][a]
	}
}
