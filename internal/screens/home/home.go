package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/aether/internal/experience"
	"github.com/abhisek/aether/internal/finance"
	"github.com/abhisek/aether/internal/locations"
	"github.com/abhisek/aether/internal/router"
	"github.com/abhisek/aether/internal/screen"
	experiencescreen "github.com/abhisek/aether/internal/screens/experience"
	financescreen "github.com/abhisek/aether/internal/screens/finance"
	"github.com/abhisek/aether/internal/screens/history"
	insightsscreen "github.com/abhisek/aether/internal/screens/insights"
	locationsscreen "github.com/abhisek/aether/internal/screens/locations"
	"github.com/abhisek/aether/internal/screens/placeholder"
	"github.com/abhisek/aether/internal/screens/quiz"
	"github.com/abhisek/aether/internal/store"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/layout"
)

// NoPathStatus is the header status before any insights are applied.
const NoPathStatus = "No career path yet"

// Deps are the services reachable from the home menu. Nil services open a
// placeholder instead of their screen.
type Deps struct {
	Quiz    quiz.Deps
	Ledger  *finance.Ledger
	Profile *experience.Profile
	Atlas   *locations.Atlas

	// LatestVersion is set when a newer release is available.
	LatestVersion string
}

type profileLoadedMsg struct {
	Data store.SnapshotData
	Err  error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
	data store.SnapshotData
}

var _ screen.Screen = (*HomeScreen)(nil)

func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}
	soon := func(title, about string) func() tea.Cmd {
		return push(func() screen.Screen { return placeholder.New(title, about) })
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "CAREER QUIZ", Action: push(func() screen.Screen { return quiz.New(deps.Quiz) })},
		{Label: "CAREER INSIGHTS", Action: push(func() screen.Screen {
			if deps.Quiz.Insights == nil {
				return placeholder.New("Career Insights", "Applied quiz results and coaching briefs.")
			}
			return insightsscreen.New(deps.Quiz.Insights)
		})},
		{Label: "QUIZ HISTORY", Action: push(func() screen.Screen {
			if deps.Quiz.Attempts == nil {
				return placeholder.New("Quiz History", "Every quiz you have taken.")
			}
			return history.New(deps.Quiz.Attempts)
		})},
		{Label: "FINANCIALS", Action: push(func() screen.Screen {
			ledger := deps.Ledger
			if ledger == nil {
				ledger = finance.Sample()
			}
			return financescreen.New(ledger)
		})},
		{Label: "EXPERIENCE", Action: push(func() screen.Screen {
			profile := deps.Profile
			if profile == nil {
				profile = experience.Sample()
			}
			return experiencescreen.New(profile)
		})},
		{Label: "LOCATIONS", Action: push(func() screen.Screen {
			atlas := deps.Atlas
			if atlas == nil {
				atlas = locations.Sample()
			}
			return locationsscreen.New(atlas)
		})},
		{Label: "MESSAGES", Action: soon("Messages", "Conversations with mentors and recruiters.")},
		{Label: "NOTIFICATIONS", Action: soon("Notifications", "Reminders and updates about your goals.")},
		{Label: "PREMIUM", Action: soon("Premium", "Plans with unlimited coaching briefs.")},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// load reads the profile in the background. Without an insights service
// it only resets the header status.
func (h *HomeScreen) load() tea.Cmd {
	svc := h.deps.Quiz.Insights
	if svc == nil {
		return status(NoPathStatus)
	}
	return func() tea.Msg {
		data, err := svc.Current(context.Background())
		return profileLoadedMsg{Data: data, Err: err}
	}
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return screen.StatusMsg{Text: text} }
}

// Status is the header text for the loaded profile.
func (h *HomeScreen) Status() string {
	if h.data.Insights == nil {
		return NoPathStatus
	}
	return h.data.Insights.CareerPath
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			if log := h.deps.Quiz.Log; log != nil {
				log.Warn("load profile", zap.Error(msg.Err))
			}
			return h, status(NoPathStatus)
		}
		h.data = msg.Data
		return h, status(h.Status())
	case router.ResumedMsg:
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + layout.ChromeHeight
	compact := termHeight < 36 || width < 90
	tall := termHeight >= 60

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if tall && !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.data), cw))
	}
	sections = append(sections, renderStatus(h.data, cw))
	if tall {
		sections = append(sections, renderMenu(h.menu, cw))
	} else {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	}
	if h.deps.Quiz.Coach == nil {
		sections = append(sections, renderLLMBanner(cw))
	}
	if h.deps.LatestVersion != "" {
		sections = append(sections, renderUpdateNote(h.deps.LatestVersion, cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
