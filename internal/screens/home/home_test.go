package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
	"github.com/abhisek/smarty/internal/words"
)

func newHome(t *testing.T, withWords bool) (*HomeScreen, *store.Memory) {
	t.Helper()
	var pool []words.Entry
	if withWords {
		db, err := words.Default()
		require.NoError(t, err)
		pool = db.Words
	}
	mem := store.NewMemory()
	env := session.NewEnv(pool, mem, mem, zerolog.Nop(), 4)
	return New(context.Background(), env), mem
}

func TestHome_WordGamesDisabledWithoutWords(t *testing.T) {
	h, _ := newHome(t, false)
	for i, g := range games {
		needsWords := g.app == crowns.AppSyllables || g.app == crowns.AppLetters
		assert.Equal(t, needsWords, h.menu.Items[i].Disabled, g.label)
	}
	item, ok := h.menu.Current()
	require.True(t, ok)
	assert.Equal(t, "MATHE BLATT", item.Label)
	assert.Equal(t, MascotAlert, h.mascot())
}

func TestHome_DefaultLevels(t *testing.T) {
	h, _ := newHome(t, true)
	assert.Equal(t, 5, h.levels[crowns.AppSyllables])
	assert.Equal(t, 1, h.levels[crowns.AppSudoku])
	assert.Equal(t, "Level 5 · Mittel", h.menu.Items[0].Detail)
}

func TestHome_LevelBounds(t *testing.T) {
	h, _ := newHome(t, true)
	for range 20 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, 10, h.levels[crowns.AppSyllables])

	h.menu.Selected = 5 // sudoku
	for range 5 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, 3, h.levels[crowns.AppSudoku])
	assert.Equal(t, 5, h.menu.Selected, "selection survives rebuild")
}

func TestHome_OperatorToggle(t *testing.T) {
	h, _ := newHome(t, true)
	h.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	assert.Equal(t, problemgen.OpAdd, h.op, "only toggles on math entries")

	h.menu.Selected = 3
	h.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	assert.Equal(t, problemgen.OpSub, h.op)
}

func TestHome_StartPushesGameAndSavesLevel(t *testing.T) {
	h, mem := newHome(t, true)
	h.Update(tea.KeyPressMsg{Code: tea.KeyLeft})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Silben", push.Screen.Title())

	level, err := mem.Level(context.Background(), string(crowns.AppSyllables))
	require.NoError(t, err)
	assert.Equal(t, 4, level)
}

func TestHome_InitRefreshesCrowns(t *testing.T) {
	h, mem := newHome(t, true)
	_, err := mem.AddCrowns(context.Background(), string(crowns.LedgerGerman), 3)
	require.NoError(t, err)

	h.Init()
	assert.Equal(t, 3, h.totals[crowns.LedgerGerman])
	assert.Equal(t, MascotCelebrating, h.mascot())
	assert.NotEmpty(t, h.View(120, 50))
}
