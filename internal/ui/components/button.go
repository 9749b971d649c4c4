package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/ui/theme"
)

// Button is a styled button label.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// Confirm is a yes/no dialog toggled with left/right.
type Confirm struct {
	Question string
	Note     string
	Yes, No  string
	// OnYes is true when the yes button is focused.
	OnYes bool
}

// NewConfirm creates a dialog with the no button focused.
func NewConfirm(question, note, yes, no string) Confirm {
	return Confirm{Question: question, Note: note, Yes: yes, No: no}
}

// Toggle moves the focus to the other button.
func (c *Confirm) Toggle() { c.OnYes = !c.OnYes }

// View renders the dialog centered in width.
func (c Confirm) View(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question)
	note := lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Note)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		NewButton(c.Yes, c.OnYes).View(), "  ", NewButton(c.No, !c.OnYes).View())
	block := lipgloss.JoinVertical(lipgloss.Center, title, note, "", buttons)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n\n"+block)
}
