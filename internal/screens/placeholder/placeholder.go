package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/ui/theme"
)

// PlaceholderScreen stands in for sections that are not built yet.
type PlaceholderScreen struct {
	title string
	about string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a placeholder titled title. about, when set, says what the
// section will hold.
func New(title, about string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, about: about}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	text := theme.Heading.Render("╌╌ Coming Soon ╌╌") + "\n\n"
	if p.about != "" {
		text += theme.Body.Render(p.about) + "\n"
	}
	text += theme.Hint.Render("This section is still being built.")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
