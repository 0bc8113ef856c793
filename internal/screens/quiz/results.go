package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/coach"
	"github.com/abhisek/aether/internal/router"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/store"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/layout"
	"github.com/abhisek/aether/internal/ui/theme"
)

const coachPollInterval = 200 * time.Millisecond

var leadershipLabels = [4]string{"Transformational", "Servant", "Situational", "Directive"}
var priorityLabels = [4]string{"Intellectual", "Cultural", "Financial", "Authority"}

// ResultsScreen shows a scored attempt and offers the follow-up actions.
type ResultsScreen struct {
	deps    Deps
	attempt *store.Attempt

	applied   bool
	coaching  bool
	brief     *coach.Brief
	notice    string
	noticeBad bool
	offset    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults creates the results screen. saveErr is shown when the attempt
// could not be persisted.
func NewResults(deps Deps, attempt *store.Attempt, saveErr error) *ResultsScreen {
	r := &ResultsScreen{deps: deps, attempt: attempt}
	if saveErr != nil {
		r.setNotice("Could not save this attempt: "+saveErr.Error(), true)
	}
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Your Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Apply insights"},
		{Key: "c", Description: "Coach"},
		{Key: "r", Description: "Retake"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) result() careerquiz.Result {
	if r.attempt == nil {
		return careerquiz.Score(careerquiz.Answers{})
	}
	return r.attempt.Result
}

func (r *ResultsScreen) hasPath() bool {
	return r.result().CareerPath != careerquiz.PathNone
}

func (r *ResultsScreen) buttons() (apply, coachBtn, retake components.Button) {
	apply = components.NewButton("a", "Apply insights to profile", r.hasPath() && !r.applied)
	coachBtn = components.NewButton("c", "Coaching brief", r.hasPath() && !r.coaching)
	retake = components.NewButton("r", "Retake quiz", true)
	return
}

func (r *ResultsScreen) setNotice(text string, bad bool) {
	r.notice = text
	r.noticeBad = bad
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsAppliedMsg:
		if msg.Err != nil {
			r.setNotice("Could not apply insights: "+msg.Err.Error(), true)
			return r, nil
		}
		r.applied = true
		r.setNotice("Insights applied to your profile.", false)
		path := msg.Applied.CareerPath
		return r, func() tea.Msg { return screen.StatusMsg{Text: path} }

	case coachPollMsg:
		return r, r.pollCoach()

	case briefSavedMsg:
		if msg.Err != nil {
			r.deps.log().Warn("save brief failed", zap.Error(msg.Err))
			r.setNotice("Brief ready, but it could not be saved: "+msg.Err.Error(), true)
		}
		return r, nil

	case tea.KeyMsg:
		apply, coachBtn, retake := r.buttons()
		switch {
		case apply.Pressed(msg):
			return r, r.applyInsights()
		case coachBtn.Pressed(msg):
			return r, r.requestBrief()
		case retake.Pressed(msg):
			next := New(r.deps)
			return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		switch msg.String() {
		case "up", "k":
			r.offset--
		case "down", "j":
			r.offset++
		}
	}
	return r, nil
}

func (r *ResultsScreen) applyInsights() tea.Cmd {
	svc := r.deps.Insights
	if svc == nil {
		r.setNotice("Profile storage is not available.", true)
		return nil
	}
	attempt := r.attempt
	return func() tea.Msg {
		applied, err := svc.Apply(context.Background(), attempt)
		return insightsAppliedMsg{Applied: applied, Err: err}
	}
}

func (r *ResultsScreen) requestBrief() tea.Cmd {
	if r.deps.Coach == nil {
		r.setNotice("Set an LLM API key to get a coaching brief (see aether --help).", true)
		return nil
	}
	r.coaching = true
	r.brief = nil
	r.setNotice("Asking your coach...", false)
	r.deps.Coach.Request(context.Background(), coach.Input{
		AttemptID: r.attempt.AttemptID,
		Result:    r.attempt.Result,
	})
	return pollTick()
}

func pollTick() tea.Cmd {
	return tea.Tick(coachPollInterval, func(t time.Time) tea.Msg { return coachPollMsg(t) })
}

func (r *ResultsScreen) pollCoach() tea.Cmd {
	if !r.coaching || r.deps.Coach == nil {
		return nil
	}
	brief, err, ok := r.deps.Coach.Consume()
	if !ok {
		return pollTick()
	}
	r.coaching = false
	if err != nil {
		r.setNotice(coachError(err), true)
		return nil
	}
	r.brief = brief
	r.setNotice("", false)

	svc := r.deps.Insights
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		return briefSavedMsg{Brief: brief, Err: svc.SaveBrief(context.Background(), brief)}
	}
}

func coachError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "The coach took too long to answer. Try again."
	}
	return "Coaching brief failed: " + err.Error()
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	res := r.result()

	var b strings.Builder
	if !r.hasPath() {
		b.WriteString(components.Center(theme.Hint.Render("No questions were answered."), width))
		b.WriteString("\n")
	} else {
		b.WriteString(components.Center(theme.Title.Render("Recommended path: "+string(res.CareerPath)), width))
		b.WriteString("\n\n")

		b.WriteString(components.Center(RenderLeadership(res.LeadershipStyle, cw), width))
		b.WriteString("\n")
		b.WriteString(components.Center(RenderPriorities(res.CareerPriorities, cw), width))
		b.WriteString("\n")
		b.WriteString(components.Center(RenderLists(res, cw), width))
		b.WriteString("\n")
	}

	if r.brief != nil {
		b.WriteString(components.Center(RenderBrief(r.brief.Headline, r.brief.Summary, r.brief.NextSteps, r.brief.FocusTopics, cw), width))
		b.WriteString("\n")
	}

	apply, coachBtn, retake := r.buttons()
	b.WriteString("\n")
	b.WriteString(components.Center(apply.View()+" "+coachBtn.View()+" "+retake.View(), width))
	b.WriteString("\n")

	if r.notice != "" {
		style := theme.Hint
		if r.noticeBad {
			style = theme.Failure
		}
		b.WriteString("\n")
		b.WriteString(components.Center(style.Render(r.notice), width))
	}

	out, off := components.Scroll(b.String(), r.offset, height)
	r.offset = off
	return out
}

// RenderLeadership renders the leadership mix as percentage bars.
func RenderLeadership(m careerquiz.LeadershipMix, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Leadership Style"))
	b.WriteString("\n")
	for i, v := range m.Values() {
		bar := components.NewProgressBar(leadershipLabels[i], float64(v)/100, true, cw-4)
		bar.LabelWidth = 16
		bar.Color = theme.Series[i]
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}

// RenderPriorities renders the raw career priority counts.
func RenderPriorities(p careerquiz.PriorityCounts, cw int) string {
	parts := make([]string, 0, 4)
	for i, v := range p.Values() {
		parts = append(parts, fmt.Sprintf("%s %d", priorityLabels[i], v))
	}
	content := theme.Heading.Render("Career Priorities") + "\n" + theme.Body.Render(strings.Join(parts, "  ·  "))
	return components.Card(content, cw)
}

// RenderLists renders strengths, development areas and topics.
func RenderLists(res careerquiz.Result, cw int) string {
	var b strings.Builder
	writeList(&b, "Strengths", res.Strengths)
	writeList(&b, "Development Areas", res.DevelopmentAreas)
	writeList(&b, "Recommended Topics", res.RecommendedTopics)
	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}

// RenderBrief renders a coaching brief.
func RenderBrief(headline, summary string, steps, topics []string, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(headline))
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(cw - 6).Render(summary))
	b.WriteString("\n\n")
	writeList(&b, "Next Steps", steps)
	writeList(&b, "Focus Topics", topics)
	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}

func writeList(b *strings.Builder, title string, items []string) {
	b.WriteString(theme.Heading.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("  none"))
		b.WriteString("\n")
	}
	for _, it := range items {
		b.WriteString(theme.Body.Render("  • " + it))
		b.WriteString("\n")
	}
}
