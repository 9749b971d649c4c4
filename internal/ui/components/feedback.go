package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/ui/theme"
)

// FeedbackDelay is how long a feedback line stays visible.
const FeedbackDelay = 1200 * time.Millisecond

// FeedbackDoneMsg clears the feedback shown with sequence Seq.
type FeedbackDoneMsg struct{ Seq int }

// Feedback is a transient status line. Every Show bumps the sequence so
// a stale timer never clears newer feedback.
type Feedback struct {
	Text string
	Good bool
	seq  int
}

// Show displays text and returns the command that hides it again.
func (f *Feedback) Show(text string, good bool) tea.Cmd {
	f.seq++
	f.Text = text
	f.Good = good
	seq := f.seq
	return tea.Tick(FeedbackDelay, func(time.Time) tea.Msg {
		return FeedbackDoneMsg{Seq: seq}
	})
}

// Update hides the feedback when msg belongs to the latest Show.
func (f *Feedback) Update(msg tea.Msg) {
	if done, ok := msg.(FeedbackDoneMsg); ok && done.Seq == f.seq {
		f.Text = ""
	}
}

// Visible reports whether feedback is on screen.
func (f Feedback) Visible() bool { return f.Text != "" }

// View renders the feedback line centered in width.
func (f Feedback) View(width int) string {
	if f.Text == "" {
		return ""
	}
	style := theme.Incorrect
	if f.Good {
		style = theme.Correct
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(f.Text))
}
