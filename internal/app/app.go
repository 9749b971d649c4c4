// Package app hosts the root Bubble Tea model of the terminal UI.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/screens/home"
	"github.com/abhisek/smarty/internal/screens/welcome"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/ui/layout"
)

// Options holds the dependencies of the terminal UI.
type Options struct {
	Ctx context.Context
	Env *session.Env
	// Splash plays the welcome animation before the game menu.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	router *router.Router
	crowns *crowns.Service
	totals map[crowns.Ledger]int
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	var root screen.Screen = home.New(ctx, opts.Env)
	if opts.Splash {
		root = welcome.New(func() screen.Screen { return home.New(ctx, opts.Env) })
	}
	m := AppModel{
		ctx:    ctx,
		router: router.New(root),
		crowns: crowns.NewService(opts.Env.Progress, opts.Env.Log),
	}
	m.totals = m.crowns.Totals(ctx)
	return m
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		// Screen changes are when crowns may have been awarded.
		cmd := m.router.Update(msg)
		m.totals = m.crowns.Totals(m.ctx)
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.totals[crowns.LedgerGerman], m.totals[crowns.LedgerShared], m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Zurück"},
			{Key: "Ctrl+C", Description: "Ende"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Auswahl"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Ende"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m, tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
