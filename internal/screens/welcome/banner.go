package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizform/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗██╗███████╗███████╗ ██████╗ ██████╗ ███╗   ███╗
██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝██╔═══██╗██╔══██╗████╗ ████║
██║   ██║██║   ██║██║  ███╔╝ █████╗  ██║   ██║██████╔╝██╔████╔██║
██║▄▄ ██║██║   ██║██║ ███╔╝  ██╔══╝  ██║   ██║██╔══██╗██║╚██╔╝██║
╚██████╔╝╚██████╔╝██║███████╗██║     ╚██████╔╝██║  ██║██║ ╚═╝ ██║
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═╝      ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝`

const bannerCompact = "Q U I Z F O R M"

// RenderBanner returns the banner in the primary color, falling back to
// a single line below 68 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
