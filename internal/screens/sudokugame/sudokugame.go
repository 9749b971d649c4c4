// Package sudokugame is the screen of the 4x4 sudoku.
package sudokugame

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/screens/game"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/sudoku"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/ui/theme"
)

// Screen plays a SudokuSession.
type Screen struct {
	game.Base
	sess     *session.SudokuSession
	snap     session.Snapshot
	row, col int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscapeHandler = (*Screen)(nil)

// New creates the screen for sess.
func New(ctx context.Context, sess *session.SudokuSession) *Screen {
	s := &Screen{Base: game.NewBase(ctx, sess), sess: sess}
	s.snap = sess.Snapshot()
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Sudoku" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return s.Base.KeyHints([]layout.KeyHint{
		{Key: "←↑↓→", Description: "Feld"},
		{Key: "1-4", Description: "Zahl"},
		{Key: "0/Entf", Description: "Löschen"},
		{Key: "?", Description: "Tipp"},
	})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, handled := s.Base.Update(msg); handled {
		return s, cmd
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.snap.Done {
		return s, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		s.row = (s.row + sudoku.Size - 1) % sudoku.Size
	case "down", "j":
		s.row = (s.row + 1) % sudoku.Size
	case "left", "h":
		s.col = (s.col + sudoku.Size - 1) % sudoku.Size
	case "right", "l":
		s.col = (s.col + 1) % sudoku.Size
	case "backspace", "delete", "0":
		return s, s.set(0)
	case "?":
		return s, s.hint()
	default:
		if v, err := strconv.Atoi(key); err == nil && v >= 1 && v <= sudoku.Size {
			return s, s.set(v)
		}
	}
	return s, nil
}

func (s *Screen) set(v int) tea.Cmd {
	out, err := s.sess.Set(s.Ctx, s.row, s.col, v)
	if errors.Is(err, sudoku.ErrPrefilledCell) {
		return s.Feedback.Show("Dieses Feld ist vorgegeben", false)
	}
	if err != nil {
		s.Fail(err)
		return nil
	}
	s.snap = s.sess.Snapshot()
	return s.report(out)
}

func (s *Screen) hint() tea.Cmd {
	out, err := s.sess.Hint(s.Ctx)
	if errors.Is(err, sudoku.ErrNoHintAvailable) {
		return s.Feedback.Show("Kein Tipp mehr möglich", false)
	}
	if err != nil {
		s.Fail(err)
		return nil
	}
	s.snap = s.sess.Snapshot()
	s.row, s.col = out.Hint.Row, out.Hint.Col
	return s.report(out)
}

func (s *Screen) report(out session.SudokuOutcome) tea.Cmd {
	switch {
	case out.Completed:
		text := "Gelöst!"
		if out.Award != nil {
			text += "  " + game.AwardText(out.Award)
		}
		return tea.Batch(s.Feedback.Show(text, true), s.FinishLater())
	case out.Result != nil:
		return s.Feedback.Show(fmt.Sprintf("Noch %d Fehler im Gitter", len(out.Result.Wrong)), false)
	case out.Hint != nil:
		return s.Feedback.Show(fmt.Sprintf("Tipp: %d", out.Hint.Value), true)
	}
	return nil
}

func (s *Screen) wrong(r, c int) bool {
	res := s.snap.Sudoku.Result
	if res == nil {
		return false
	}
	for _, cell := range res.Wrong {
		if cell.Row == r && cell.Col == c {
			return true
		}
	}
	return false
}

func (s *Screen) View(width, height int) string {
	if overlay, ok := s.Overlay(width); ok {
		return overlay
	}
	view := s.snap.Sudoku
	if view == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(game.InfoLine(s.snap, width))

	var lines []string
	for r := range sudoku.Size {
		if r > 0 && r%sudoku.BoxSize == 0 {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Border).Render("──────┼──────"))
		}
		var cells []string
		for c := range sudoku.Size {
			if c > 0 && c%sudoku.BoxSize == 0 {
				cells = append(cells, lipgloss.NewStyle().Foreground(theme.Border).Render("│"))
			}
			cells = append(cells, s.cell(view, r, c))
		}
		lines = append(lines, strings.Join(cells, ""))
	}
	grid := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid))
	b.WriteString("\n")
	if view.HintsUsed > 0 {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("Tipps: %d", view.HintsUsed)))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Feedback.View(width))
	return b.String()
}

func (s *Screen) cell(view *session.SudokuView, r, c int) string {
	text := " · "
	if v := view.User[r][c]; v != 0 {
		text = fmt.Sprintf(" %d ", v)
	}
	style := theme.Unselected
	switch {
	case r == s.row && c == s.col:
		style = theme.Cursor
	case view.Puzzle[r][c] != 0:
		style = theme.Given
	case s.wrong(r, c):
		style = theme.Incorrect
	}
	return style.Render(text)
}
