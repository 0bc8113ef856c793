package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/router"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond

	// The needle spins until settleAt, then points north. The banner and
	// tagline appear at revealAt; ticking stops at totalDur.
	settleAt = 1200 * time.Millisecond
	revealAt = 1500 * time.Millisecond
	totalDur = 2000 * time.Millisecond
)

const tagline = "Chart your next career move"

// needleFrames sweep clockwise from north.
var needleFrames = []string{"▲", "◥", "▶", "◢", "▼", "◣", "◀", "◤"}

func compass(needle string) string {
	return strings.Join([]string{
		"      N",
		"   ╭──┴──╮",
		"   │  " + needle + "  │",
		" W ┤  ◉  ├ E",
		"   │  ┊  │",
		"   ╰──┬──╯",
		"      S",
	}, "\n")
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen is the splash shown at startup. Any key replaces it with
// the screen built by next, whether or not the animation has finished.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frame   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) settled() bool  { return w.elapsed >= settleAt }
func (w *WelcomeScreen) revealed() bool { return w.elapsed >= revealAt }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		if !w.settled() {
			w.frame = (w.frame + 1) % len(needleFrames)
		} else {
			w.frame = 0
		}
		return w, tick()

	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		home := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	color := theme.Secondary
	if w.settled() {
		color = theme.Accent
	}
	sections := []string{
		lipgloss.NewStyle().Foreground(color).Render(compass(needleFrames[w.frame])),
	}

	if w.revealed() {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
