// Package layout renders the frame around every screen: a header with
// the crown ledgers, the content area and a footer with key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Screens switch to their compact rendering below these sizes of
	// the content area.
	CompactWidth  = 100
	CompactHeight = 42
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompact reports whether a content area of width x height needs the
// compact rendering.
func IsCompact(width, height int) bool {
	return width < CompactWidth || height < CompactHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Fenster zu klein!\n\nBitte auf mindestens\n%d x %d vergrößern\n\nAktuell: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the header bar: app name, screen title centered,
// and the german and shared crown totals on the right.
func RenderHeader(title string, german, shared int, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Smarty")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	ledgers := crownTag(german, "Deutsch") + "   " + crownTag(shared, "Mathe")

	// 4 columns go to the border and its padding.
	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(name), 1)
	rightGap := max(inner-lipgloss.Width(name)-leftGap-lipgloss.Width(center)-lipgloss.Width(ledgers), 1)

	return bar(name+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+ledgers, width)
}

func crownTag(n int, label string) string {
	return lipgloss.NewStyle().Foreground(theme.Crown).Render(fmt.Sprintf("♛ %d %s", n, label))
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
