package components

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/ui/theme"
)

// eighths are the left-aligned partial blocks, one to seven eighths wide.
var eighths = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// ProgressBar is a horizontal bar for a fraction in [0, 1], drawn with
// eighth-cell precision. LabelWidth pads the label so stacked bars, like the
// leadership mix, line up.
type ProgressBar struct {
	Label       string
	LabelWidth  int
	Percent     float64
	ShowPercent bool
	Width       int
	Color       color.Color
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Color:       theme.Secondary,
	}
}

// cells splits a bar of width cells at fraction p into full cells and the
// index of the trailing partial block (-1 for none).
func cells(p float64, width int) (full, partial int) {
	p = math.Max(0, math.Min(1, p))
	units := int(math.Round(p * float64(width*8)))
	full, rem := units/8, units%8
	if rem == 0 {
		return full, -1
	}
	return full, rem - 1
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.LabelWidth > 0 {
			style = style.Width(p.LabelWidth)
		}
		b.WriteString(style.Render(p.Label) + "  ")
	}

	suffix := ""
	if p.ShowPercent {
		pct := int(math.Round(math.Max(0, math.Min(1, p.Percent)) * 100))
		suffix = fmt.Sprintf(" %3d%%", pct)
	}
	width := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(suffix), 4)

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}
	full, partial := cells(p.Percent, width)

	bar := strings.Repeat("█", full)
	used := full
	if partial >= 0 {
		bar += eighths[partial]
		used++
	}
	b.WriteString(lipgloss.NewStyle().Foreground(fill).Background(theme.Border).Render(bar))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", width-used)))

	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
