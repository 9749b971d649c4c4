package sudoku

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/validate"
)

func TestBaseIsSolution(t *testing.T) {
	assert.True(t, base.IsSolution())
}

func TestGenerateSolution_AlwaysValid(t *testing.T) {
	seen := map[Grid]bool{}
	for seed := uint64(1); seed <= 500; seed++ {
		g := GenerateSolution(pick.NewSource(seed))
		require.True(t, g.IsSolution(), "seed %d:\n%s", seed, g)
		seen[g] = true
	}
	assert.Greater(t, len(seen), 16, "transforms should produce many distinct grids")
}

func TestEachTransformPreservesValidity(t *testing.T) {
	for i, tr := range transforms {
		g := base
		tr(&g)
		assert.True(t, g.IsSolution(), "transform %d", i)
		assert.NotEqual(t, base, g, "transform %d changes the grid", i)
	}
}

func TestCarvePuzzle(t *testing.T) {
	for _, clues := range []int{0, 6, 8, 10, 16} {
		src := pick.NewSource(uint64(clues + 1))
		solution := GenerateSolution(src)
		puzzle, err := CarvePuzzle(src, solution, clues)
		require.NoError(t, err)

		assert.Equal(t, clues, puzzle.Filled())
		for r := range Size {
			for c := range Size {
				if puzzle[r][c] != 0 {
					assert.Equal(t, solution[r][c], puzzle[r][c])
				}
			}
		}
	}
}

func TestCarvePuzzle_InvalidClues(t *testing.T) {
	for _, clues := range []int{-1, 17} {
		_, err := CarvePuzzle(pick.NewSource(1), base, clues)
		var cfgErr *validate.InvalidConfigurationError
		assert.True(t, errors.As(err, &cfgErr), "clues %d", clues)
	}
}

func TestDifficultyClues(t *testing.T) {
	assert.Equal(t, 10, Level1.Clues())
	assert.Equal(t, 8, Level2.Clues())
	assert.Equal(t, 6, Level3.Clues())
	assert.NoError(t, Level2.Validate())
	assert.Error(t, Difficulty(0).Validate())
	assert.Error(t, Difficulty(4).Validate())
}

func TestValidate(t *testing.T) {
	solution := base
	puzzle := base
	puzzle[0][0], puzzle[1][1], puzzle[2][2] = 0, 0, 0

	user := puzzle
	res := Validate(user, solution, puzzle)
	assert.False(t, res.AllFilled)
	assert.True(t, res.AllCorrect)
	assert.False(t, res.Solved())

	user[0][0] = solution[0][0]
	user[1][1] = solution[1][1]
	user[2][2] = 1 // wrong, solution is 4
	res = Validate(user, solution, puzzle)
	assert.True(t, res.AllFilled)
	assert.False(t, res.AllCorrect)
	assert.Equal(t, []Cell{{Row: 2, Col: 2}}, res.Wrong)

	user[2][2] = solution[2][2]
	assert.True(t, Validate(user, solution, puzzle).Solved())
}

func TestSolveByCopyingSolution(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		src := pick.NewSource(seed)
		solution := GenerateSolution(src)
		puzzle, err := CarvePuzzle(src, solution, 8)
		require.NoError(t, err)

		user := puzzle
		for r := range Size {
			for c := range Size {
				if user[r][c] == 0 {
					user[r][c] = solution[r][c]
				}
			}
		}
		res := Validate(user, solution, puzzle)
		assert.True(t, res.AllCorrect)
		assert.True(t, res.AllFilled)
	}
}

func TestFindHint(t *testing.T) {
	puzzle := base
	puzzle[0][1], puzzle[3][3] = 0, 0
	user := puzzle
	user[0][1] = 4 // filled by the learner, even though wrong

	h, err := FindHint(pick.NewSource(1), puzzle, user, base)
	require.NoError(t, err)
	assert.Equal(t, Hint{Cell: Cell{Row: 3, Col: 3}, Value: base[3][3]}, h)

	user[3][3] = 3
	_, err = FindHint(pick.NewSource(1), puzzle, user, base)
	assert.ErrorIs(t, err, ErrNoHintAvailable)
}

func TestGame_EndToEnd(t *testing.T) {
	g, err := NewGame(pick.NewSource(42), Level3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Puzzle.Filled())
	assert.Equal(t, g.Puzzle, g.User)

	for r := range Size {
		for c := range Size {
			if !g.Prefilled(r, c) {
				require.NoError(t, g.Set(r, c, g.Solution[r][c]))
			}
		}
	}
	res := g.Check()
	assert.True(t, res.AllFilled)
	assert.True(t, res.AllCorrect)
	assert.True(t, g.Full())

	_, err = g.Hint()
	assert.ErrorIs(t, err, ErrNoHintAvailable)
	assert.Zero(t, g.HintsUsed)
}

func TestGame_Set(t *testing.T) {
	g, err := NewGame(pick.NewSource(7), Level1)
	require.NoError(t, err)

	var clue, blank Cell
	for r := range Size {
		for c := range Size {
			if g.Prefilled(r, c) {
				clue = Cell{Row: r, Col: c}
			} else {
				blank = Cell{Row: r, Col: c}
			}
		}
	}

	assert.ErrorIs(t, g.Set(clue.Row, clue.Col, 1), ErrPrefilledCell)
	assert.Equal(t, g.Puzzle, g.User, "clue untouched")

	require.NoError(t, g.Set(blank.Row, blank.Col, 3))
	assert.Equal(t, 3, g.User[blank.Row][blank.Col])
	require.NoError(t, g.Set(blank.Row, blank.Col, 0))
	assert.Zero(t, g.User[blank.Row][blank.Col])

	assert.Error(t, g.Set(blank.Row, blank.Col, 5))
	assert.Error(t, g.Set(4, 0, 1))
	assert.Error(t, g.Set(0, -1, 1))
}

func TestGame_HintFillsUserGrid(t *testing.T) {
	g, err := NewGame(pick.NewSource(3), Level2)
	require.NoError(t, err)

	blanks := Cells - g.User.Filled()
	for i := range blanks {
		h, err := g.Hint()
		require.NoError(t, err)
		assert.Zero(t, g.Puzzle[h.Row][h.Col])
		assert.Equal(t, g.Solution[h.Row][h.Col], g.User[h.Row][h.Col])
		assert.Equal(t, i+1, g.HintsUsed)
	}
	assert.True(t, g.Check().Solved())
	_, err = g.Hint()
	assert.ErrorIs(t, err, ErrNoHintAvailable)
}

func TestNewGame_InvalidDifficulty(t *testing.T) {
	_, err := NewGame(pick.NewSource(1), 0)
	assert.Error(t, err)
}

func TestConflicts(t *testing.T) {
	g := Grid{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	assert.Equal(t, []Cell{{Row: 0, Col: 1}}, g.Conflicts())
	assert.False(t, g.IsSolution())
	assert.Equal(t, "11..\n....\n....\n....", g.String())
}
