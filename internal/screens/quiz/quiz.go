package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/quizflow"
	"github.com/abhisek/aether/internal/router"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/store"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/layout"
	"github.com/abhisek/aether/internal/ui/theme"
)

// QuizScreen walks the user through the ten questions.
type QuizScreen struct {
	deps    Deps
	state   quizflow.State
	options components.OptionList
	saving  bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen at the first question.
func New(deps Deps) *QuizScreen {
	s := &QuizScreen{deps: deps, state: quizflow.Initial()}
	s.syncOptions()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Career Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "→/n", Description: "Next"},
		{Key: "←/p", Description: "Previous"},
		{Key: "Esc", Description: "Back"},
	}
}

// State returns the underlying quiz state.
func (s *QuizScreen) State() quizflow.State {
	return s.state
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		if msg.Err != nil {
			s.deps.log().Warn("save attempt failed", zap.Error(msg.Err))
		}
		results := NewResults(s.deps, msg.Attempt, msg.Err)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		key := msg.String()
		switch key {
		case "enter", "space":
			return s, s.dispatch(quizflow.Select{Choice: careerquiz.OptionAt(s.options.Cursor)})
		case "a", "b", "c", "d", "1", "2", "3", "4":
			choice, _ := careerquiz.ParseChoice(key)
			return s, s.dispatch(quizflow.Select{Choice: choice})
		case "n", "right":
			return s, s.dispatch(quizflow.Next{})
		case "p", "left":
			return s, s.dispatch(quizflow.Previous{})
		default:
			s.options = s.options.Update(msg)
		}
	}
	return s, nil
}

// dispatch reduces the state and reacts to the transition.
func (s *QuizScreen) dispatch(a quizflow.Action) tea.Cmd {
	s.state = quizflow.Reduce(s.state, a)
	if s.state.Phase == quizflow.ShowingResults {
		s.saving = true
		return s.saveAttempt()
	}
	s.syncOptions()
	return nil
}

func (s *QuizScreen) syncOptions() {
	q := s.state.Current()
	chosen := -1
	if i, ok := s.state.CurrentChoice().Index(); ok {
		chosen = i
	}
	s.options = components.NewOptionList(q.Text, q.OptionTexts(), chosen)
}

func (s *QuizScreen) saveAttempt() tea.Cmd {
	engine := s.deps.engine()
	attempt := &store.Attempt{
		Answers: s.state.Answers,
		Config:  engine.Config(),
		Result:  s.state.Result(engine),
	}
	repo := s.deps.Attempts
	return func() tea.Msg {
		if repo == nil {
			return attemptSavedMsg{Attempt: attempt}
		}
		err := repo.Save(context.Background(), attempt)
		return attemptSavedMsg{Attempt: attempt, Err: err}
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	n, frac := s.state.Progress()

	var b strings.Builder
	b.WriteString(components.Center(theme.Heading.Render(
		fmt.Sprintf("Question %d of %d", n, careerquiz.NumQuestions)), width))
	b.WriteString("\n")

	bar := components.NewProgressBar("", frac, true, cw)
	b.WriteString(components.Center(bar.View(), width))
	b.WriteString("\n\n")

	opts := s.options
	opts.Width = cw
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.View()))
	b.WriteString("\n")

	prev := components.NewButton("p", "Previous", s.state.CanGoBack())
	nextLabel := "Next"
	if s.state.IsLast() {
		nextLabel = "See results"
	}
	next := components.NewButton("n", nextLabel, s.state.CanAdvance())
	b.WriteString(components.Center(prev.View()+"  "+next.View(), width))
	b.WriteString("\n")

	if s.saving {
		b.WriteString("\n")
		b.WriteString(components.Center(theme.Hint.Render("Scoring your answers..."), width))
	}

	out, _ := components.Scroll(b.String(), 0, height)
	return out
}
