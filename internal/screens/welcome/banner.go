package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarty/internal/ui/theme"
)

const bannerArt = `
 ███████╗███╗   ███╗ █████╗ ██████╗ ████████╗██╗   ██╗
 ██╔════╝████╗ ████║██╔══██╗██╔══██╗╚══██╔══╝╚██╗ ██╔╝
 ███████╗██╔████╔██║███████║██████╔╝   ██║    ╚████╔╝
 ╚════██║██║╚██╔╝██║██╔══██║██╔══██╗   ██║     ╚██╔╝
 ███████║██║ ╚═╝ ██║██║  ██║██║  ██║   ██║      ██║
 ╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝      ╚═╝`

const bannerCompact = "S M A R T Y"

// RenderBanner returns the SMARTY banner, or a single-line fallback for
// terminals narrower than 58 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 58 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
