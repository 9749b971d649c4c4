// Package letters is the screen of the letter trainer: find every word
// that contains the shown letter.
package letters

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/screens/game"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/ui/theme"
)

// columns of the word grid.
const columns = 3

// Screen plays a LetterSession.
type Screen struct {
	game.Base
	sess   *session.LetterSession
	snap   session.Snapshot
	cursor int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscapeHandler = (*Screen)(nil)

// New creates the screen for sess.
func New(ctx context.Context, sess *session.LetterSession) *Screen {
	s := &Screen{Base: game.NewBase(ctx, sess), sess: sess}
	s.snap = sess.Snapshot()
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Buchstaben" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return s.Base.KeyHints([]layout.KeyHint{
		{Key: "←↑↓→", Description: "Wort"},
		{Key: "Enter", Description: "Auswählen"},
	})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, handled := s.Base.Update(msg); handled {
		return s, cmd
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.snap.Done || s.snap.Letter == nil {
		return s, nil
	}

	n := len(s.snap.Letter.Words)
	switch kmsg.String() {
	case "left", "h":
		s.cursor = (s.cursor + n - 1) % n
	case "right", "l":
		s.cursor = (s.cursor + 1) % n
	case "up", "k":
		s.cursor = (s.cursor + n - columns) % n
	case "down", "j":
		s.cursor = (s.cursor + columns) % n
	case "enter", "space":
		return s, s.selectWord()
	}
	return s, nil
}

func (s *Screen) selectWord() tea.Cmd {
	view := s.snap.Letter
	word := view.Words[s.cursor].Word
	out, err := s.sess.Select(s.Ctx, view.TaskID, word)
	if err != nil {
		s.Fail(err)
		return nil
	}
	s.snap = s.sess.Snapshot()
	if s.snap.Letter.TaskID != view.TaskID {
		s.cursor = 0
	}
	return s.Report(out)
}

func (s *Screen) View(width, height int) string {
	if overlay, ok := s.Overlay(width); ok {
		return overlay
	}
	view := s.snap.Letter
	if view == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(game.InfoLine(s.snap, width))

	letter := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 3).
		Render(fmt.Sprintf("%s  %s", view.Letter, strings.ToLower(view.Letter)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, letter))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("Noch %d Wörter mit %s", view.Remaining, view.Letter)))
	b.WriteString("\n\n")

	var rows []string
	var row []string
	for i, e := range view.Words {
		style := lipgloss.NewStyle().
			Width(16).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)
		switch {
		case slices.Contains(view.Found, e.Word):
			style = style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true)
		case slices.Contains(view.Wrong, e.Word):
			style = style.Foreground(theme.Error).BorderForeground(theme.Error).Strikethrough(true)
		}
		if i == s.cursor {
			style = style.BorderForeground(theme.ArcadeYellow)
		}
		row = append(row, style.Render(strings.TrimSpace(e.Emoji+" "+e.Word)))
		if len(row) == columns || i == len(view.Words)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n\n")
	b.WriteString(s.Feedback.View(width))
	return b.String()
}
