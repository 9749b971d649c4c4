// Package syllables is the screen of the syllable trainer: pick the
// first syllable of each word on screen.
package syllables

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/screens/game"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/ui/components"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/ui/theme"
)

// Screen plays a SyllableSession.
type Screen struct {
	game.Base
	sess    *session.SyllableSession
	snap    session.Snapshot
	focus   int
	choices map[int]*components.MultiChoice
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscapeHandler = (*Screen)(nil)

// New creates the screen for sess.
func New(ctx context.Context, sess *session.SyllableSession) *Screen {
	s := &Screen{
		Base:    game.NewBase(ctx, sess),
		sess:    sess,
		choices: make(map[int]*components.MultiChoice),
	}
	s.refresh()
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Silben" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return s.Base.KeyHints([]layout.KeyHint{
		{Key: "↑↓", Description: "Wort"},
		{Key: "←→", Description: "Silbe"},
		{Key: "1-4/Enter", Description: "Antworten"},
	})
}

// refresh reloads the snapshot and keeps one picker per task on screen.
func (s *Screen) refresh() {
	s.snap = s.sess.Snapshot()
	live := make(map[int]*components.MultiChoice, len(s.snap.Tasks))
	for _, t := range s.snap.Tasks {
		mc, ok := s.choices[t.ID]
		if !ok {
			c := components.NewMultiChoice(t.Options)
			mc = &c
		}
		live[t.ID] = mc
	}
	s.choices = live
	s.focus = min(max(s.focus, 0), max(len(s.snap.Tasks)-1, 0))
}

func (s *Screen) focused() (*problemgen.Task, *components.MultiChoice) {
	if s.focus >= len(s.snap.Tasks) {
		return nil, nil
	}
	t := s.snap.Tasks[s.focus]
	return t, s.choices[t.ID]
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, handled := s.Base.Update(msg); handled {
		return s, cmd
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.snap.Done {
		return s, nil
	}

	task, mc := s.focused()
	if task == nil {
		return s, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "shift+tab":
		s.focus = (s.focus + len(s.snap.Tasks) - 1) % len(s.snap.Tasks)
	case "down", "j", "tab":
		s.focus = (s.focus + 1) % len(s.snap.Tasks)
	case "left", "h":
		mc.Move(-1)
	case "right", "l":
		mc.Move(1)
	case "enter", "space":
		return s, s.answer(task, mc, mc.Selected)
	default:
		if i, ok := mc.Pick(key); ok {
			mc.Selected = i
			return s, s.answer(task, mc, i)
		}
	}
	return s, nil
}

func (s *Screen) answer(task *problemgen.Task, mc *components.MultiChoice, i int) tea.Cmd {
	out, err := s.sess.Answer(s.Ctx, task.ID, mc.Options[i])
	if err != nil {
		s.Fail(err)
		return nil
	}
	if !out.Correct {
		mc.Mark(i, components.MarkWrong)
	}
	s.refresh()
	return s.Report(out)
}

func (s *Screen) View(width, height int) string {
	if overlay, ok := s.Overlay(width); ok {
		return overlay
	}

	var b strings.Builder
	b.WriteString(game.InfoLine(s.snap, width))

	cardWidth := min(width-8, 60)
	for i, t := range s.snap.Tasks {
		border := theme.Border
		if i == s.focus {
			border = theme.ArcadeYellow
		}
		word := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(strings.TrimSpace(fmt.Sprintf("%s  %s", t.Emoji, t.Prompt)))
		body := lipgloss.JoinVertical(lipgloss.Center, word, s.choices[t.ID].View(i == s.focus))
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(cardWidth).
			Align(lipgloss.Center).
			Render(body)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Feedback.View(width))
	return b.String()
}
