// Package sudoku generates, carves, checks and hints 4x4 Sudoku puzzles.
package sudoku

import (
	"fmt"

	"github.com/abhisek/smarty/internal/validate"
)

// Grid dimensions.
const (
	Size    = 4
	BoxSize = 2
	Cells   = Size * Size
)

// Grid holds cell values 1..4; 0 marks a blank.
type Grid [Size][Size]int

// Cell identifies a grid position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Filled returns the number of non-zero cells.
func (g Grid) Filled() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Conflicts returns the cells whose value repeats within a row, column or
// box. Blank cells are ignored.
func (g Grid) Conflicts() []Cell {
	var out []Cell
	add := func(r, c int) {
		for _, x := range out {
			if x.Row == r && x.Col == c {
				return
			}
		}
		out = append(out, Cell{Row: r, Col: c})
	}

	for r := range Size {
		m := 0
		for c := range Size {
			if bit := mask(g[r][c]); bit != 0 {
				if m&bit != 0 {
					add(r, c)
				}
				m |= bit
			}
		}
	}
	for c := range Size {
		m := 0
		for r := range Size {
			if bit := mask(g[r][c]); bit != 0 {
				if m&bit != 0 {
					add(r, c)
				}
				m |= bit
			}
		}
	}
	for br := 0; br < Size; br += BoxSize {
		for bc := 0; bc < Size; bc += BoxSize {
			m := 0
			for dr := range BoxSize {
				for dc := range BoxSize {
					r, c := br+dr, bc+dc
					if bit := mask(g[r][c]); bit != 0 {
						if m&bit != 0 {
							add(r, c)
						}
						m |= bit
					}
				}
			}
		}
	}
	return out
}

// IsSolution reports whether every row, column and box holds 1..4
// exactly once.
func (g Grid) IsSolution() bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] < 1 || g[r][c] > Size {
				return false
			}
		}
	}
	return len(g.Conflicts()) == 0
}

func mask(v int) int {
	if v < 1 || v > Size {
		return 0
	}
	return 1 << v
}

func checkCell(row, col int) error {
	if err := validate.Range("row", row, 0, Size-1); err != nil {
		return err
	}
	return validate.Range("column", col, 0, Size-1)
}

// String renders the grid with dots for blanks.
func (g Grid) String() string {
	var b []byte
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				b = append(b, '.')
			} else {
				b = fmt.Appendf(b, "%d", g[r][c])
			}
		}
		if r < Size-1 {
			b = append(b, '\n')
		}
	}
	return string(b)
}
