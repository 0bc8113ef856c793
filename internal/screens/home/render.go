package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/screens/welcome"
	"github.com/abhisek/aether/internal/store"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/theme"
)

const tagline = "Your career, finances and experience in one place"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	art := welcome.BannerArt
	if compact {
		art = welcome.BannerCompact
	}
	block := style.Render(art)
	if !compact {
		block += "\n" + theme.Hint.Render(tagline)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(block)
}

// renderStatus renders the profile summary box: the applied career path and
// the headline of the last coaching brief.
func renderStatus(data store.SnapshotData, cw int) string {
	pathStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	if data.Insights == nil {
		lines = append(lines, dim.Render("No career path yet. Take the quiz to find yours."))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s",
			dim.Render("Career path"), pathStyle.Render(data.Insights.CareerPath)))
		if tp := data.Insights.Result.RecommendedTopics; len(tp) > 0 {
			lines = append(lines, dim.Render("Focus: "+strings.Join(tp, ", ")))
		}
	}
	if data.Coaching != nil && data.Coaching.Headline != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Info).Render("◆ "+data.Coaching.Headline))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderMenu renders each menu item as a bordered button.
func renderMenu(m components.Menu, cw int) string {
	var buttons []string
	for i, item := range m.Items {
		if item.Disabled {
			buttons = append(buttons, lipgloss.NewStyle().
				Width(buttonWidth).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Border).
				Padding(0, 1).
				Render(item.Label))
			continue
		}
		buttons = append(buttons, components.MenuButton(item.Label, i == m.Selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders the menu as plain lines for terminals too short
// for bordered buttons.
func renderMenuCompact(m components.Menu, cw int) string {
	var lines []string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "+item.Label))
		case i == m.Selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ "+item.Label+" "))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+item.Label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable coaching briefs (see aether --help)")
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available, run aether update", latestVersion))
}
