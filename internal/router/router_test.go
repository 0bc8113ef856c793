package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aether/internal/screen"
)

type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return "view:" + s.title }
func (s *stubScreen) Title() string        { return s.title }

func named(title string) *stubScreen { return &stubScreen{title: title} }

func TestNavigation(t *testing.T) {
	tests := []struct {
		name       string
		msgs       []tea.Msg
		wantDepth  int
		wantActive string
	}{
		{"push", []tea.Msg{PushScreenMsg{named("Career Quiz")}}, 2, "Career Quiz"},
		{"push then pop", []tea.Msg{PushScreenMsg{named("Career Quiz")}, PopScreenMsg{}}, 1, "Home"},
		{"pop at root", []tea.Msg{PopScreenMsg{}, PopScreenMsg{}}, 1, "Home"},
		{"replace root", []tea.Msg{ReplaceScreenMsg{named("Welcome")}}, 1, "Welcome"},
		{"replace keeps depth", []tea.Msg{
			PushScreenMsg{named("Career Quiz")},
			ReplaceScreenMsg{named("Quiz Results")},
		}, 2, "Quiz Results"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(named("Home"))
			for _, msg := range tt.msgs {
				r.Update(msg)
			}
			if r.Depth() != tt.wantDepth {
				t.Errorf("depth = %d, want %d", r.Depth(), tt.wantDepth)
			}
			if got := r.Active().Title(); got != tt.wantActive {
				t.Errorf("active = %q, want %q", got, tt.wantActive)
			}
		})
	}
}

func TestPushAndReplaceRunInit(t *testing.T) {
	r := New(named("Home"))
	quiz := named("Career Quiz")
	results := named("Quiz Results")

	r.Update(PushScreenMsg{quiz})
	r.Update(ReplaceScreenMsg{results})

	if quiz.inits != 1 || results.inits != 1 {
		t.Errorf("inits: quiz %d, results %d", quiz.inits, results.inits)
	}
}

func TestPopResumesScreenBelow(t *testing.T) {
	r := New(named("Home"))
	r.Push(named("Career Insights"))

	cmd := r.Pop()
	if cmd == nil {
		t.Fatal("expected a resume command")
	}
	if _, ok := cmd().(ResumedMsg); !ok {
		t.Error("expected ResumedMsg")
	}
	if r.Pop() != nil {
		t.Error("popping the root should not resume anything")
	}
}

func TestUpdateGoesToActiveOnly(t *testing.T) {
	home := named("Home")
	top := named("Financials")
	r := New(home)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if top.updates != 1 || home.updates != 0 {
		t.Errorf("updates: top %d, home %d", top.updates, home.updates)
	}
	if got := r.View(80, 24); got != "view:Financials" {
		t.Errorf("view = %q", got)
	}
}

func TestBreadcrumb(t *testing.T) {
	r := New(named("Home"))
	if got := r.Breadcrumb(); got != "Home" {
		t.Errorf("root breadcrumb = %q", got)
	}

	r.Push(named("Quiz History"))
	r.Push(named(""))
	r.Push(named("Attempt"))
	if got := r.Breadcrumb(); got != "Quiz History › Attempt" {
		t.Errorf("breadcrumb = %q", got)
	}
}
