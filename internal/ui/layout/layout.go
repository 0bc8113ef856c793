package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// ChromeHeight is the rows the app frame keeps around a screen's
	// content, with room to spare for wrapped hints.
	ChromeHeight = 8
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func (h KeyHint) render() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
		" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Aether needs a bigger window.\n\nResize to at least %d x %d\n(now %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the brand on the left, the screen title centered and
// status (the applied career path) on the right. A status that does not fit
// is cut with an ellipsis.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)

	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Aether")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	used := lipgloss.Width(brand) + lipgloss.Width(center)
	right := ""
	if status != "" {
		room := (inner-lipgloss.Width(center))/2 - 3
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render("◆ " + ellipsize(status, room))
	}

	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(brand), 1)
	rightGap := max(inner-used-leftGap-lipgloss.Width(right), 1)

	return bar(brand+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

func ellipsize(s string, n int) string {
	r := []rune(s)
	if n < 1 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// RenderFooter draws the key hints. Hints that would overflow are dropped
// from the middle so the last one (Quit) stays visible.
func RenderFooter(hints []KeyHint, width int) string {
	const sep = "   "
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.render())
	}

	inner := width - 4
	for len(parts) > 1 && lipgloss.Width("  "+strings.Join(parts, sep)) > inner {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}
	return bar("  "+strings.Join(parts, sep), width)
}

// RenderFrame stacks header, content and footer. content is padded to the
// rows left between them.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return header + "\n" + body + "\n" + footer
}
