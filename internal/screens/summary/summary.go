package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Zusammenfassung"
}

// HandlesEscape makes Esc return to the refreshed home screen.
func (s *SummaryScreen) HandlesEscape() bool { return true }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Weiter"},
		{Key: "Esc", Description: "Start"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	title := "Gut gemacht!"
	if sum.Completed {
		title = "Geschafft!"
	}
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("%s %s", sum.App.Icon(), title))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%s · %s · Level %d · Dauer %d:%02d", sum.App.DisplayName(), sum.Mode, sum.Level, mins, secs))
	b.WriteString("\n")

	stats := fmt.Sprintf("Gelöst: %d        Richtig: %d        Genauigkeit: %d%%",
		sum.Solved, sum.Stats.Correct, sum.Stats.AccuracyPercent())
	center(lipgloss.NewStyle().Foreground(theme.Text), stats)
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Längste Serie: %d", sum.Stats.LongestStreak))
	if sum.HintsUsed > 0 {
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Tipps: %d", sum.HintsUsed))
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if sum.Crowns > 0 {
		center(lipgloss.NewStyle().Foreground(theme.Crown).Bold(true),
			fmt.Sprintf("%s +%d Kronen (%s)", crowns.Icon, sum.Crowns, sum.App.Ledger().DisplayName()))
	} else {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
			"Diesmal keine Krone, weiter so!")
	}

	for _, w := range sum.Warnings {
		center(lipgloss.NewStyle().Foreground(theme.Accent), "⚠ "+w)
	}

	return b.String()
}
