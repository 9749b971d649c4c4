package components

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/ui/theme"
)

// Mark colors an option after it was answered.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// MultiChoice is a horizontal option picker for one task. Grading is
// left to the caller; the component only tracks the cursor.
type MultiChoice struct {
	Options  []string
	Selected int
	Marks    map[int]Mark
}

// NewMultiChoice creates a picker over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, Marks: make(map[int]Mark)}
}

// Move shifts the cursor by step, clamped to the options.
func (m *MultiChoice) Move(step int) {
	m.Selected = min(max(m.Selected+step, 0), len(m.Options)-1)
}

// Pick maps a number key ("1".."9") to an option index.
func (m MultiChoice) Pick(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(m.Options) {
		return 0, false
	}
	return n - 1, true
}

// Value returns the option under the cursor.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Mark records the grading of option i.
func (m *MultiChoice) Mark(i int, mark Mark) {
	if m.Marks == nil {
		m.Marks = make(map[int]Mark)
	}
	m.Marks[i] = mark
}

// View renders the options on one line. The cursor is only drawn when
// focused.
func (m MultiChoice) View(focused bool) string {
	var s string
	for i, opt := range m.Options {
		label := fmt.Sprintf(" %d %s ", i+1, opt)
		style := lipgloss.NewStyle().
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)

		switch m.Marks[i] {
		case MarkCorrect:
			style = style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true)
		case MarkWrong:
			style = style.Foreground(theme.Error).BorderForeground(theme.Error).Strikethrough(true)
		}
		if focused && i == m.Selected {
			style = style.BorderForeground(theme.ArcadeYellow).Bold(true)
		}
		s = lipgloss.JoinHorizontal(lipgloss.Top, s, style.Render(label))
	}
	return s
}
