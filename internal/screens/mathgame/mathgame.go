// Package mathgame is the screen of the math trainer: a worksheet or
// an endless adaptive round of addition and subtraction tasks.
package mathgame

import (
	"context"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/screens/game"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/ui/components"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/ui/theme"
)

// Screen plays a MathSession.
type Screen struct {
	game.Base
	sess  *session.MathSession
	snap  session.Snapshot
	focus int
	input components.TextInput
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscapeHandler = (*Screen)(nil)

// New creates the screen for sess.
func New(ctx context.Context, sess *session.MathSession) *Screen {
	s := &Screen{
		Base:  game.NewBase(ctx, sess),
		sess:  sess,
		input: components.NewTextInput("?", true, 4),
	}
	s.refresh()
	return s
}

func (s *Screen) Init() tea.Cmd { return s.input.Init() }

func (s *Screen) Title() string { return "Mathe" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return s.Base.KeyHints([]layout.KeyHint{
		{Key: "↑↓", Description: "Aufgabe"},
		{Key: "0-9", Description: "Ergebnis"},
		{Key: "Enter", Description: "Prüfen"},
	})
}

func (s *Screen) refresh() {
	s.snap = s.sess.Snapshot()
	s.focus = min(max(s.focus, 0), max(len(s.snap.Tasks)-1, 0))
}

func (s *Screen) solved(id int) bool {
	return slices.Contains(s.snap.Completed, id)
}

// nextOpen moves the focus to the next unsolved worksheet task.
func (s *Screen) nextOpen() {
	n := len(s.snap.Tasks)
	for step := 1; step <= n; step++ {
		i := (s.focus + step) % n
		if !s.solved(s.snap.Tasks[i].ID) {
			s.focus = i
			return
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, handled := s.Base.Update(msg); handled {
		return s, cmd
	}
	if s.snap.Done || len(s.snap.Tasks) == 0 {
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "shift+tab":
			s.focus = (s.focus + len(s.snap.Tasks) - 1) % len(s.snap.Tasks)
			s.input.Reset()
			return s, nil
		case "down", "tab":
			s.focus = (s.focus + 1) % len(s.snap.Tasks)
			s.input.Reset()
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submit() tea.Cmd {
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		return nil
	}
	task := s.snap.Tasks[s.focus]
	out, err := s.sess.Answer(s.Ctx, task.ID, value)
	if err != nil {
		s.Fail(err)
		return nil
	}
	s.input.Reset()
	s.refresh()
	if out.TaskDone && len(s.snap.Completed) > 0 {
		s.nextOpen()
	}
	return s.Report(out)
}

func (s *Screen) View(width, height int) string {
	if overlay, ok := s.Overlay(width); ok {
		return overlay
	}

	var b strings.Builder
	b.WriteString(game.InfoLine(s.snap, width))

	// Long worksheets scroll with the focus.
	rows := max(height-12, 3)
	first := min(max(s.focus-rows/2, 0), max(len(s.snap.Tasks)-rows, 0))
	last := min(first+rows, len(s.snap.Tasks))

	var lines []string
	for i := first; i < last; i++ {
		t := s.snap.Tasks[i]
		prompt := strings.TrimSuffix(t.Prompt, "?")
		var line string
		switch {
		case s.solved(t.ID):
			line = theme.Correct.Render("✓ " + prompt + t.Answer)
		case i == s.focus:
			line = theme.Selected.Render("▸ "+prompt) + s.input.View()
		default:
			line = theme.Unselected.Render("  " + t.Prompt)
		}
		lines = append(lines, line)
	}
	block := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	b.WriteString("\n\n")
	b.WriteString(s.Feedback.View(width))
	return b.String()
}
