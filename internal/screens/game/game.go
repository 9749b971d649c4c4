// Package game holds the pieces every game screen shares: quit
// confirmation, transient feedback and the hand-off to the summary.
package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/screens/summary"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/ui/components"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/ui/theme"
)

// finishMsg ends the session after the completion feedback was shown.
type finishMsg struct{}

// Base is embedded by the game screens.
type Base struct {
	Ctx      context.Context
	Feedback components.Feedback
	Quit     *components.Confirm
	Err      string

	sess     session.Session
	finished bool
}

// NewBase wraps sess.
func NewBase(ctx context.Context, sess session.Session) Base {
	return Base{Ctx: ctx, sess: sess}
}

// Session returns the running session.
func (b *Base) Session() session.Session { return b.sess }

// HandlesEscape reports that game screens ask before leaving.
func (b *Base) HandlesEscape() bool { return true }

// Update handles the messages shared by all games. The second result
// is false when the caller should process msg itself.
func (b *Base) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case components.FeedbackDoneMsg:
		b.Feedback.Update(msg)
		return nil, true
	case finishMsg:
		return b.Finish(), true
	case tea.KeyMsg:
		if b.Err != "" {
			b.Err = ""
			return nil, true
		}
		if b.Quit != nil {
			return b.quitKey(msg.String()), true
		}
		if msg.String() == "esc" {
			c := components.NewConfirm("Spiel beenden?", "Dein Fortschritt wird gespeichert.", "Ja, beenden", "Weiterspielen")
			b.Quit = &c
			return nil, true
		}
	}
	return nil, false
}

func (b *Base) quitKey(key string) tea.Cmd {
	switch key {
	case "left", "right", "tab", "h", "l":
		b.Quit.Toggle()
	case "y", "j":
		b.Quit = nil
		return b.Finish()
	case "n", "esc":
		b.Quit = nil
	case "enter":
		yes := b.Quit.OnYes
		b.Quit = nil
		if yes {
			return b.Finish()
		}
	}
	return nil
}

// Finish ends the session and replaces the game with its summary.
func (b *Base) Finish() tea.Cmd {
	if b.finished {
		return nil
	}
	b.finished = true
	sum := b.sess.Finish(b.Ctx)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// Fail shows err until the next key press.
func (b *Base) Fail(err error) {
	b.Err = err.Error()
}

// Report shows the feedback for out and schedules the summary once the
// session completed.
func (b *Base) Report(out session.Outcome) tea.Cmd {
	text, good := OutcomeText(out)
	cmd := b.Feedback.Show(text, good)
	if out.Completed {
		return tea.Batch(cmd, b.FinishLater())
	}
	return cmd
}

// FinishLater ends the session once the feedback has been seen.
func (b *Base) FinishLater() tea.Cmd {
	return tea.Tick(components.FeedbackDelay, func(time.Time) tea.Msg {
		return finishMsg{}
	})
}

// Overlay renders the quit dialog or the error, if any.
func (b *Base) Overlay(width int) (string, bool) {
	if b.Quit != nil {
		return b.Quit.View(width), true
	}
	if b.Err != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Fehler: %s\n\n  Weiter mit einer beliebigen Taste.", b.Err)), true
	}
	return "", false
}

// KeyHints returns the footer hints while an overlay is shown, or
// play when none is.
func (b *Base) KeyHints(play []layout.KeyHint) []layout.KeyHint {
	if b.Quit != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Wählen"},
			{Key: "Enter", Description: "Bestätigen"},
		}
	}
	return append(play, layout.KeyHint{Key: "Esc", Description: "Beenden"})
}

// OutcomeText describes an answer for the feedback line.
func OutcomeText(out session.Outcome) (string, bool) {
	var parts []string
	switch {
	case out.Repeated:
		return "Schon gewählt", true
	case out.Revoked:
		parts = append(parts, "Leider falsch, die Aufgabe ist wieder offen")
	case out.Correct:
		parts = append(parts, "Richtig!")
	case out.Answer != "":
		parts = append(parts, "Leider falsch, richtig ist "+out.Answer)
	default:
		parts = append(parts, "Leider falsch")
	}

	if out.LevelUp() {
		parts = append(parts, "Level hoch!")
	}
	if out.Unlocked() {
		parts = append(parts, "Neue Zahl freigeschaltet!")
	}
	if out.Milestone > 0 {
		parts = append(parts, fmt.Sprintf("%d geschafft!", out.Milestone))
	}
	if out.Award != nil {
		parts = append(parts, AwardText(out.Award))
	}
	return strings.Join(parts, "  "), out.Correct || out.Repeated
}

// AwardText renders a crown award.
func AwardText(a *crowns.Award) string {
	return fmt.Sprintf("+%d %s", a.Count, crowns.Icon)
}

// InfoLine renders the status line above the game: mode, level label,
// progress and session crowns.
func InfoLine(snap session.Snapshot, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", strings.ToUpper(snap.Mode), levelLabel(snap)))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d%%  %s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			snap.Stats.Correct,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("◎"),
			snap.Stats.AccuracyPercent(),
			lipgloss.NewStyle().Foreground(theme.Crown).Render("♛"),
			snap.Crowns,
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	if snap.Total > 0 {
		bar := components.NewProgressBar("", snap.Solved, snap.Total, true, min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	if u := snap.Unlock; u != nil && u.Needed > 0 {
		bar := components.NewProgressBar(fmt.Sprintf("Bis %d", u.Ceiling+1), u.Count, u.Needed, true, min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")
	return b.String()
}

func levelLabel(snap session.Snapshot) string {
	if snap.Label != "" {
		return snap.Label
	}
	return fmt.Sprintf("Level %d", snap.Level)
}
