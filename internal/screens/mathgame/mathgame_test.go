package mathgame

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
)

func newScreen(t *testing.T, plan session.Plan) (*Screen, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	env := session.NewEnv(nil, mem, mem, zerolog.Nop(), 5)
	sess, err := session.NewMath(context.Background(), env, plan)
	require.NoError(t, err)
	return New(context.Background(), sess), mem
}

func typeText(s *Screen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestScreen_WorksheetCompletion(t *testing.T) {
	s, mem := newScreen(t, session.Plan{App: crowns.AppMath, Level: 2, Count: 3, Operator: problemgen.OpAdd})
	require.Len(t, s.snap.Tasks, 3)

	for range 3 {
		task := s.snap.Tasks[s.focus]
		require.False(t, s.solved(task.ID))
		typeText(s, task.Answer)
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		assert.True(t, s.solved(task.ID))
	}

	assert.True(t, s.snap.Done)
	assert.Contains(t, s.Feedback.Text, crowns.Icon)
	n, err := mem.CrownCount(context.Background(), string(crowns.LedgerShared))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScreen_LettersAreIgnored(t *testing.T) {
	s, _ := newScreen(t, session.Plan{App: crowns.AppMath, Level: 2, Count: 2, Operator: problemgen.OpSub})
	typeText(s, "a1b")
	assert.Equal(t, "1", s.input.Value())
}

func TestScreen_EmptyInputIsNotSubmitted(t *testing.T) {
	s, _ := newScreen(t, session.Plan{App: crowns.AppMath, Level: 2, Count: 2, Operator: problemgen.OpAdd})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Zero(t, s.snap.Stats.Attempts)
}

func TestScreen_AdaptiveShowsUnlockProgress(t *testing.T) {
	s, _ := newScreen(t, session.Plan{App: crowns.AppMath, Adaptive: true, Level: 1, Operator: problemgen.OpAdd})
	require.Len(t, s.snap.Tasks, session.Active)
	require.NotNil(t, s.snap.Unlock)

	task := s.snap.Tasks[0]
	typeText(s, task.Answer)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 1, s.snap.Solved)
	assert.Len(t, s.snap.Tasks, session.Active)
	assert.NotEmpty(t, s.View(100, 30))
}
