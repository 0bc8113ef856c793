package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v", tt.w, tt.h, got)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Career Quiz", "Strategic Finance", 100)
	for _, want := range []string{"Aether", "Career Quiz", "Strategic Finance"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderHeader_LongStatusCut(t *testing.T) {
	status := strings.Repeat("Transformational Leadership ", 4)
	h := RenderHeader("Home", status, 80)
	if strings.Contains(h, status) {
		t.Error("long status should be cut")
	}
	if !strings.Contains(h, "…") {
		t.Error("expected an ellipsis")
	}
}

func TestEllipsize(t *testing.T) {
	if got := ellipsize("Data & AI Strategy", 7); got != "Data &…" {
		t.Errorf("got %q", got)
	}
	if got := ellipsize("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := ellipsize("x", 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestRenderFooter_KeepsQuit(t *testing.T) {
	hints := []KeyHint{
		{"↑↓", "Navigate"}, {"Enter", "Select"}, {"Tab", "Next tab"},
		{"a", "Add"}, {"d", "Delete"}, {"Esc", "Back"}, {"Ctrl+C", "Quit"},
	}
	f := RenderFooter(hints, 40)
	if !strings.Contains(f, "Quit") {
		t.Error("Quit hint must survive")
	}
	if strings.Contains(f, "Delete") {
		t.Error("expected overflowing hints dropped")
	}
	if !strings.Contains(RenderFooter(hints, 200), "Delete") {
		t.Error("wide footer should keep every hint")
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter([]KeyHint{{"Ctrl+C", "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
