package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/screens/history"
	"github.com/abhisek/smarty/internal/screens/home"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
)

func newModel(t *testing.T) (AppModel, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	env := session.NewEnv(nil, mem, mem, zerolog.Nop(), 1)
	return newAppModel(Options{Ctx: context.Background(), Env: env}), mem
}

func TestApp_EscPopsPlainScreens(t *testing.T) {
	m, mem := newModel(t)
	m.router.Push(history.New(context.Background(), mem, mem))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestApp_EscOnHomeIsNoop(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestApp_CrownsRefreshOnNavigation(t *testing.T) {
	m, mem := newModel(t)
	_, err := mem.AddCrowns(context.Background(), string(crowns.LedgerShared), 2)
	require.NoError(t, err)

	updated, _ := m.Update(router.PopToRootMsg{})
	assert.Equal(t, 2, updated.(AppModel).totals[crowns.LedgerShared])
}

func TestApp_WindowSize(t *testing.T) {
	m, _ := newModel(t)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	am := updated.(AppModel)
	assert.Equal(t, 120, am.width)
	assert.Equal(t, 40, am.height)
	assert.NotPanics(t, func() { am.View() })
}

func TestApp_SplashHandsOverToHome(t *testing.T) {
	mem := store.NewMemory()
	env := session.NewEnv(nil, mem, mem, zerolog.Nop(), 1)
	m := newAppModel(Options{Ctx: context.Background(), Env: env, Splash: true})
	require.NotNil(t, m.Init())

	_, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)

	m.Update(msg)
	assert.Equal(t, 1, m.router.Depth())
	_, isHome := m.router.Active().(*home.HomeScreen)
	assert.True(t, isHome)
}
