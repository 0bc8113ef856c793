package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/ui/theme"
)

// BannerArt is the block-letter product name shared with the home screen.
const BannerArt = ` █████╗ ███████╗████████╗██╗  ██╗███████╗██████╗
██╔══██╗██╔════╝╚══██╔══╝██║  ██║██╔════╝██╔══██╗
███████║█████╗     ██║   ███████║█████╗  ██████╔╝
██╔══██║██╔══╝     ██║   ██╔══██║██╔══╝  ██╔══██╗
██║  ██║███████╗   ██║   ██║  ██║███████╗██║  ██║
╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`

// BannerCompact replaces BannerArt on narrow terminals.
const BannerCompact = "A · E · T · H · E · R"

// bannerWidth is the column count of BannerArt.
const bannerWidth = 50

// RenderBanner returns the banner styled in the primary color, falling back
// to BannerCompact when width cannot fit the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt)
}
