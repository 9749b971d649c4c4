package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/store"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/ui/theme"
)

// Limit is how many sessions are listed.
const Limit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Levels   map[string]int
	Err      error
}

// HistoryScreen displays the saved levels and past sessions.
type HistoryScreen struct {
	ctx      context.Context
	events   store.EventRepo
	progress store.ProgressRepo
	sessions []store.SessionRecord
	levels   map[string]int
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. Either repo may be nil.
func New(ctx context.Context, events store.EventRepo, progress store.ProgressRepo) *HistoryScreen {
	return &HistoryScreen{
		ctx:      ctx,
		events:   events,
		progress: progress,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		var msg historyLoadedMsg
		if s.progress != nil {
			levels, err := s.progress.Levels(s.ctx)
			if err != nil {
				return historyLoadedMsg{Err: err}
			}
			msg.Levels = levels
		}
		if s.events != nil {
			sessions, err := s.events.RecentSessions(s.ctx, store.QueryOpts{Limit: Limit})
			if err != nil {
				return historyLoadedMsg{Err: err}
			}
			msg.Sessions = sessions
		}
		return msg
	}
}

func (s *HistoryScreen) Title() string {
	return "Verlauf"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Auswahl"},
		{Key: "Esc", Description: "Zurück"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.levels = msg.Levels
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nFehler: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Verlauf wird geladen...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderLevels(width))
	b.WriteString("\n\n")

	if len(s.sessions) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Noch keine Spiele. Los geht's!"))
		return b.String()
	}

	for i, rec := range s.sessions {
		app := crowns.App(rec.App)
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		status := " "
		if rec.Completed {
			status = "✓"
		}
		crownStr := ""
		if rec.Crowns > 0 {
			crownStr = fmt.Sprintf("  ♛ %d", rec.Crowns)
		}

		line := fmt.Sprintf("%s%s %s  %-10s  %-8s  L%-2d  %3d gelöst%s",
			prefix, status, rec.Timestamp.Format("02.01.2006 15:04"),
			app.DisplayName(), rec.Mode, rec.Level, rec.TasksSolved, crownStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    richtig %d · falsch %d · Tipps %d · %d:%02d min",
				rec.Correct, rec.Incorrect, rec.HintsUsed, rec.DurationSecs/60, rec.DurationSecs%60)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderLevels lists the saved level of every game.
func (s *HistoryScreen) renderLevels(width int) string {
	var parts []string
	for _, app := range crowns.AllApps() {
		level := "-"
		if n, ok := s.levels[string(app)]; ok {
			level = fmt.Sprint(n)
		}
		parts = append(parts, fmt.Sprintf("%s %s: %s", app.Icon(), app.DisplayName(), level))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(parts, "   ")))
}
