package insights

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	profile "github.com/abhisek/aether/internal/insights"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/screens/quiz"
	"github.com/abhisek/aether/internal/store"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/layout"
	"github.com/abhisek/aether/internal/ui/theme"
)

type insightsLoadedMsg struct {
	Data store.SnapshotData
	Err  error
}

// InsightsScreen shows the insights applied to the profile and the last
// coaching brief.
type InsightsScreen struct {
	svc    *profile.Service
	data   store.SnapshotData
	loaded bool
	errMsg string
	offset int
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

func New(svc *profile.Service) *InsightsScreen {
	return &InsightsScreen{svc: svc}
}

func (s *InsightsScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		data, err := svc.Current(context.Background())
		return insightsLoadedMsg{Data: data, Err: err}
	}
}

func (s *InsightsScreen) Title() string {
	return "Career Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.data = msg.Data
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.offset--
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *InsightsScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim)
	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return dim.Render("\n\n  Loading insights...")
	}
	ins := s.data.Insights
	if ins == nil {
		return dim.Italic(true).Render("\n\n  No insights yet. Take the career quiz and apply your results.")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(components.Center(theme.Title.Render(ins.CareerPath), width))
	b.WriteString("\n")
	b.WriteString(components.Center(theme.Hint.Render("Applied "+ins.AppliedAt.Local().Format("Jan 02, 2006 15:04")), width))
	b.WriteString("\n\n")
	b.WriteString(components.Center(quiz.RenderLeadership(ins.Result.LeadershipStyle, cw), width))
	b.WriteString("\n")
	b.WriteString(components.Center(quiz.RenderPriorities(ins.Result.CareerPriorities, cw), width))
	b.WriteString("\n")
	b.WriteString(components.Center(quiz.RenderLists(ins.Result, cw), width))
	b.WriteString("\n")

	if c := s.data.Coaching; c != nil {
		b.WriteString(components.Center(quiz.RenderBrief(c.Headline, c.Summary, c.NextSteps, c.FocusTopics, cw), width))
		b.WriteString("\n")
		b.WriteString(components.Center(theme.Hint.Render("Brief by "+c.Model), width))
	}

	out, off := components.Scroll(b.String(), s.offset, height)
	s.offset = off
	return out
}
