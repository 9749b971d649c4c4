package syllables

import (
	"context"
	"slices"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
	"github.com/abhisek/smarty/internal/words"
)

func newScreen(t *testing.T) *Screen {
	t.Helper()
	db, err := words.Default()
	require.NoError(t, err)
	mem := store.NewMemory()
	env := session.NewEnv(db.Words, mem, mem, zerolog.Nop(), 11)
	sess, err := session.NewSyllables(context.Background(), env, session.Plan{App: crowns.AppSyllables, Level: 3})
	require.NoError(t, err)
	return New(context.Background(), sess)
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestScreen_CorrectAnswerReplacesTask(t *testing.T) {
	s := newScreen(t)
	require.Len(t, s.snap.Tasks, session.Active)
	task := s.snap.Tasks[0]
	i := slices.Index(task.Options, task.Answer)
	require.GreaterOrEqual(t, i, 0)

	_, cmd := s.Update(key(strconv.Itoa(i + 1)))
	assert.NotNil(t, cmd, "feedback timer")
	assert.Equal(t, 1, s.snap.Solved)
	assert.Equal(t, "Richtig!", s.Feedback.Text)
	for _, other := range s.snap.Tasks {
		assert.NotEqual(t, task.ID, other.ID)
	}
}

func TestScreen_WrongAnswerMarksOption(t *testing.T) {
	s := newScreen(t)
	task := s.snap.Tasks[0]
	wrong := slices.IndexFunc(task.Options, func(o string) bool { return o != task.Answer })
	require.GreaterOrEqual(t, wrong, 0)

	s.Update(key(strconv.Itoa(wrong + 1)))
	assert.Zero(t, s.snap.Solved)
	assert.Contains(t, s.Feedback.Text, task.Answer)
	assert.Equal(t, task.ID, s.snap.Tasks[0].ID, "task stays on screen")
	assert.NotEmpty(t, s.choices[task.ID].Marks)
}

func TestScreen_FocusWraps(t *testing.T) {
	s := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, len(s.snap.Tasks)-1, s.focus)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Zero(t, s.focus)
}

func TestScreen_QuitConfirm(t *testing.T) {
	s := newScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, s.Quit)
	assert.Contains(t, s.View(80, 24), "Spiel beenden?")

	// Enter on the default button keeps playing.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, s.Quit)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(key("y"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Zusammenfassung", msg.Screen.Title())
}

func TestScreen_View(t *testing.T) {
	s := newScreen(t)
	view := s.View(100, 30)
	for _, task := range s.snap.Tasks {
		assert.Contains(t, view, task.Prompt)
	}
	assert.True(t, s.HandlesEscape())
}
