package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/ui/theme"
)

// ButtonState selects how an arcade button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ContentWidth returns the inner width shared by all boxes inside the
// cabinet, so they line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double-border frame and centers it in
// width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeButton renders one bordered menu button of the given width.
func ArcadeButton(label string, state ButtonState, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return style.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label)
	}
	return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
}

// ArcadeLine is the borderless variant of ArcadeButton for small
// terminals.
func ArcadeLine(label string, state ButtonState) string {
	switch state {
	case ButtonSelected:
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Bold(true).
			Render(" ▸ " + label + " ")
	case ButtonDisabled:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
}

// ArcadeMenu renders the menu items as buttons, or as lines when
// compact, centered in width cw. label formats an item.
func ArcadeMenu(m Menu, cw, buttonWidth int, compact bool, label func(MenuItem) string) string {
	rows := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		state := ButtonNormal
		switch {
		case item.Disabled:
			state = ButtonDisabled
		case i == m.Selected:
			state = ButtonSelected
		}
		if compact {
			rows = append(rows, ArcadeLine(label(item), state))
		} else {
			rows = append(rows, ArcadeButton(label(item), state, buttonWidth))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
