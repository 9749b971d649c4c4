package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/ui/components"
	"github.com/abhisek/smarty/internal/ui/theme"
)

const arcadeTitleFull = `███████╗███╗   ███╗ █████╗ ██████╗ ████████╗██╗   ██╗
██╔════╝████╗ ████║██╔══██╗██╔══██╗╚══██╔══╝╚██╗ ██╔╝
███████╗██╔████╔██║███████║██████╔╝   ██║    ╚████╔╝
╚════██║██║╚██╔╝██║██╔══██║██╔══██╗   ██║     ╚██╔╝
███████║██║ ╚═╝ ██║██║  ██║██║  ██║   ██║      ██║
╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝      ╚═╝`

const arcadeTitleCompact = "S · M · A · R · T · Y"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the crown ledgers in a bordered box.
func renderStatsBar(totals map[crowns.Ledger]int, cw int, compact bool) string {
	crownStyle := lipgloss.NewStyle().Foreground(theme.Crown).Bold(true)

	var parts []string
	for _, l := range crowns.AllLedgers() {
		if compact {
			parts = append(parts, crownStyle.Render(fmt.Sprintf("♛%d %s", totals[l], l.DisplayName())))
		} else {
			parts = append(parts, crownStyle.Render(fmt.Sprintf("%s %d %s", crowns.Icon, totals[l], strings.ToUpper(l.DisplayName()))))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, "   "))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 34

func itemText(item components.MenuItem) string {
	if item.Detail == "" {
		return item.Label
	}
	return item.Label + "  " + item.Detail
}

// renderArcadeMenu renders the menu as fixed-width buttons, or as text
// lines when compact.
func renderArcadeMenu(menu components.Menu, cw int, compact bool) string {
	return components.ArcadeMenu(menu, cw, buttonWidth, compact, itemText)
}

// renderNoWordsBanner warns that the word games need a word database.
func renderNoWordsBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Keine Wörter geladen (siehe smarty words check)")
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render(msg)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
