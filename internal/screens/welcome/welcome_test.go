package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aether/internal/router"
	"github.com/abhisek/aether/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

// ticks delivers n ticks and returns the command from the last one.
func ticks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestReveal(t *testing.T) {
	w, _ := newTestWelcome()
	if strings.Contains(w.View(80, 24), tagline) {
		t.Error("tagline should be hidden at start")
	}

	ticks(w, int(revealAt/tickInterval)-1)
	if strings.Contains(w.View(80, 24), tagline) {
		t.Error("tagline should still be hidden just before the reveal")
	}

	ticks(w, 1)
	view := w.View(80, 24)
	if !strings.Contains(view, tagline) {
		t.Error("tagline should be visible after the reveal")
	}
	if !strings.Contains(view, "press any key") {
		t.Error("expected the continue hint")
	}
}

func TestNeedleSpinsThenSettles(t *testing.T) {
	w, _ := newTestWelcome()
	ticks(w, 2)
	if w.frame == 0 {
		t.Error("needle should be moving during the spin")
	}

	ticks(w, int(settleAt/tickInterval))
	if w.frame != 0 {
		t.Errorf("needle should point north once settled, frame %d", w.frame)
	}
	if !strings.Contains(w.View(80, 24), needleFrames[0]) {
		t.Error("expected the north needle in the view")
	}
}

func TestTickingStops(t *testing.T) {
	w, calls := newTestWelcome()

	if cmd := ticks(w, int(totalDur/tickInterval)); cmd == nil {
		t.Fatal("the last tick of the animation should still schedule one more")
	}
	if cmd := ticks(w, 1); cmd != nil {
		t.Error("ticking should stop after the animation")
	}
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want %v", w.elapsed, totalDur)
	}
	if *calls != 0 {
		t.Error("the splash never leaves on its own")
	}
}

func TestKeypressDuringAnimationLeaves(t *testing.T) {
	w, calls := newTestWelcome()
	ticks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d", *calls)
	}
}

func TestLeavesOnce(t *testing.T) {
	w, calls := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a'})

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second keypress should do nothing")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	if !strings.Contains(RenderBanner(40), BannerCompact) {
		t.Error("expected compact banner at 40 columns")
	}
	if strings.Contains(RenderBanner(80), BannerCompact) {
		t.Error("expected full banner at 80 columns")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("title = %q", w.Title())
	}
}
