package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/coach"
	"github.com/abhisek/aether/internal/insights"
	"github.com/abhisek/aether/internal/llm"
	"github.com/abhisek/aether/internal/quizflow"
	"github.com/abhisek/aether/internal/router"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/store"
)

// fakeAttempts implements store.AttemptRepo in memory.
type fakeAttempts struct {
	saved []*store.Attempt
	err   error
}

func (f *fakeAttempts) Save(_ context.Context, a *store.Attempt) error {
	if f.err != nil {
		return f.err
	}
	a.AttemptID = "attempt-1"
	f.saved = append(f.saved, a)
	return nil
}
func (f *fakeAttempts) Latest(context.Context) (*store.Attempt, error)      { return nil, nil }
func (f *fakeAttempts) Get(context.Context, string) (*store.Attempt, error) { return nil, nil }
func (f *fakeAttempts) List(context.Context, store.QueryOpts) ([]store.Attempt, error) {
	return nil, nil
}
func (f *fakeAttempts) Count(context.Context) (int, error) { return len(f.saved), nil }
func (f *fakeAttempts) DeleteAll(context.Context) error    { return nil }

// fakeSnapshots implements store.SnapshotRepo in memory.
type fakeSnapshots struct {
	snaps []store.Snapshot
}

func (f *fakeSnapshots) Save(_ context.Context, s *store.Snapshot) error {
	f.snaps = append(f.snaps, *s)
	return nil
}
func (f *fakeSnapshots) Latest(context.Context) (*store.Snapshot, error) {
	if len(f.snaps) == 0 {
		return nil, nil
	}
	s := f.snaps[len(f.snaps)-1]
	return &s, nil
}
func (f *fakeSnapshots) Prune(context.Context, int) error { return nil }

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runCmd executes cmd and returns its message, or nil.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestQuiz_NextRequiresAnswer(t *testing.T) {
	s := New(Deps{})

	s.Update(key('n'))
	if s.State().Index != 0 {
		t.Fatal("next should be blocked until the question is answered")
	}

	s.Update(key('b'))
	if s.State().CurrentChoice() != careerquiz.OptionB {
		t.Errorf("expected B recorded, got %v", s.State().CurrentChoice())
	}
	s.Update(special(tea.KeyRight))
	if s.State().Index != 1 {
		t.Errorf("expected index 1, got %d", s.State().Index)
	}

	s.Update(key('p'))
	if s.State().Index != 0 {
		t.Errorf("expected back at index 0, got %d", s.State().Index)
	}
	if s.options.Chosen != 1 {
		t.Errorf("previous answer should be shown as chosen, got %d", s.options.Chosen)
	}
}

func TestQuiz_CursorAndEnter(t *testing.T) {
	s := New(Deps{})
	s.Update(special(tea.KeyDown))
	s.Update(special(tea.KeyDown))
	s.Update(special(tea.KeyEnter))

	if got := s.State().CurrentChoice(); got != careerquiz.OptionC {
		t.Errorf("expected C, got %v", got)
	}
}

func TestQuiz_CompletionSavesAndShowsResults(t *testing.T) {
	repo := &fakeAttempts{}
	s := New(Deps{Attempts: repo})

	var cmd tea.Cmd
	for i := 0; i < careerquiz.NumQuestions; i++ {
		s.Update(key('a'))
		_, cmd = s.Update(key('n'))
	}
	if s.State().Phase != quizflow.ShowingResults {
		t.Fatalf("expected results phase, got %v", s.State().Phase)
	}

	saved, ok := runCmd(cmd).(attemptSavedMsg)
	if !ok {
		t.Fatal("expected attemptSavedMsg")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one saved attempt, got %d", len(repo.saved))
	}
	if saved.Attempt.Result.CareerPath == careerquiz.PathNone {
		t.Error("expected a career path")
	}

	// Keys are ignored while the attempt is saved.
	s.Update(key('p'))
	if s.State().Phase != quizflow.ShowingResults {
		t.Error("input should be ignored after completion")
	}

	_, cmd = s.Update(saved)
	replace, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := replace.Screen.(*ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", replace.Screen)
	}
}

func TestQuiz_SaveErrorStillShowsResults(t *testing.T) {
	s := New(Deps{Attempts: &fakeAttempts{err: errors.New("disk full")}})
	var cmd tea.Cmd
	for i := 0; i < careerquiz.NumQuestions; i++ {
		s.Update(key('d'))
		_, cmd = s.Update(key('n'))
	}
	_, cmd = s.Update(runCmd(cmd))
	replace := runCmd(cmd).(router.ReplaceScreenMsg)
	view := replace.Screen.View(100, 60)
	if !strings.Contains(view, "disk full") {
		t.Error("expected save error in results view")
	}
}

func scoredAttempt(t *testing.T) *store.Attempt {
	t.Helper()
	answers, err := careerquiz.ParseChoiceList("A,A,A,A,A,A,A,A,A,A")
	if err != nil {
		t.Fatal(err)
	}
	return &store.Attempt{AttemptID: "attempt-1", Answers: answers, Result: careerquiz.Score(answers)}
}

func TestResults_ApplyInsights(t *testing.T) {
	snaps := &fakeSnapshots{}
	r := NewResults(Deps{Insights: insights.NewService(snaps)}, scoredAttempt(t), nil)

	_, cmd := r.Update(key('a'))
	msg := runCmd(cmd)
	if _, ok := msg.(insightsAppliedMsg); !ok {
		t.Fatalf("expected insightsAppliedMsg, got %T", msg)
	}
	_, cmd = r.Update(msg)
	status, ok := runCmd(cmd).(screen.StatusMsg)
	if !ok || status.Text == "" {
		t.Fatal("expected a header status update")
	}
	if len(snaps.snaps) != 1 || snaps.snaps[0].Data.Insights == nil {
		t.Fatal("expected insights snapshot")
	}

	// Already applied.
	_, cmd = r.Update(key('a'))
	if cmd != nil {
		t.Error("apply should be disabled once applied")
	}
}

func TestResults_CoachWithoutProvider(t *testing.T) {
	r := NewResults(Deps{}, scoredAttempt(t), nil)
	_, cmd := r.Update(key('c'))
	if cmd != nil {
		t.Error("expected no command without a coach")
	}
	if !strings.Contains(r.View(100, 60), "LLM API key") {
		t.Error("expected hint about configuring a provider")
	}
}

func TestResults_CoachBrief(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"headline": "Lead the next wave",
		"summary": "You inspire change.",
		"next_steps": ["Pitch one idea"],
		"focus_topics": ["Design Thinking"]
	}`)})
	snaps := &fakeSnapshots{}
	deps := Deps{
		Coach:    coach.NewService(mock, coach.DefaultConfig(), nil),
		Insights: insights.NewService(snaps),
	}
	r := NewResults(deps, scoredAttempt(t), nil)

	_, cmd := r.Update(key('c'))
	if cmd == nil {
		t.Fatal("expected poll command")
	}
	if !r.coaching {
		t.Fatal("expected coaching in flight")
	}

	var saveCmd tea.Cmd
	deadline := time.Now().Add(5 * time.Second)
	for r.coaching && time.Now().Before(deadline) {
		_, saveCmd = r.Update(coachPollMsg(time.Now()))
		time.Sleep(10 * time.Millisecond)
	}
	if r.brief == nil {
		t.Fatal("expected brief")
	}
	if _, ok := runCmd(saveCmd).(briefSavedMsg); !ok {
		t.Fatal("expected briefSavedMsg")
	}
	if snaps.snaps[0].Data.Coaching == nil {
		t.Error("expected brief stored in profile")
	}
	if !strings.Contains(r.View(100, 80), "Lead the next wave") {
		t.Error("expected brief in view")
	}
}

func TestResults_Retake(t *testing.T) {
	r := NewResults(Deps{}, scoredAttempt(t), nil)
	_, cmd := r.Update(key('r'))
	replace, ok := runCmd(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	q, ok := replace.Screen.(*QuizScreen)
	if !ok {
		t.Fatalf("expected quiz screen, got %T", replace.Screen)
	}
	if q.State() != quizflow.Initial() {
		t.Error("retake should start from the first question")
	}
}

func TestResults_EmptyAttempt(t *testing.T) {
	empty := &store.Attempt{Result: careerquiz.Score(careerquiz.Answers{})}
	r := NewResults(Deps{Insights: insights.NewService(&fakeSnapshots{})}, empty, nil)

	_, cmd := r.Update(key('a'))
	if cmd != nil {
		t.Error("nothing to apply for an empty attempt")
	}
	if !strings.Contains(r.View(100, 40), "No questions were answered") {
		t.Error("expected empty message")
	}
}
