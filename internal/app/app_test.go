package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aether/internal/router"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/ui/layout"
)

type stubScreen struct {
	title    string
	captures bool
	got      []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "body of " + s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) CapturesEscape() bool { return s.captures }

func esc() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStatusMsgSetsHeader(t *testing.T) {
	m := newAppModel(&stubScreen{title: "Home"})
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(m, screen.StatusMsg{Text: "Strategic Finance"})

	if m.status != "Strategic Finance" {
		t.Fatalf("status = %q", m.status)
	}
	header := layout.RenderHeader("Home", m.status, m.width)
	if !strings.Contains(header, "Strategic Finance") {
		t.Error("expected the status in the header")
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := newAppModel(&stubScreen{title: "Home"})
	m, _ = update(m, router.PushScreenMsg{Screen: &stubScreen{title: "Child"}})

	_, cmd := update(m, esc())
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscOnRootIsIgnored(t *testing.T) {
	root := &stubScreen{title: "Home"}
	m := newAppModel(root)
	if _, cmd := update(m, esc()); cmd != nil {
		t.Error("Esc on the root screen should do nothing")
	}
	if len(root.got) != 0 {
		t.Error("Esc should not reach the root screen")
	}
}

func TestEscForwardedToCapturingScreen(t *testing.T) {
	child := &stubScreen{title: "Form", captures: true}
	m := newAppModel(&stubScreen{title: "Home"})
	m, _ = update(m, router.PushScreenMsg{Screen: child})

	if _, cmd := update(m, esc()); cmd != nil {
		t.Error("capturing screen should not be popped")
	}
	if len(child.got) != 1 {
		t.Fatalf("expected Esc delivered to the screen, got %d messages", len(child.got))
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(&stubScreen{title: "Home"})
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
