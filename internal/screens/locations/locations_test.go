package locations

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aether/internal/locations"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *LocationsScreen, text string) {
	for _, r := range text {
		s.Update(key(r))
	}
}

func enter(s *LocationsScreen, n int) {
	for range n {
		s.Update(special(tea.KeyEnter))
	}
}

func TestLocations_SavedListedFirst(t *testing.T) {
	s := New(locations.Sample())
	view := s.View(100, 60)
	if !strings.Contains(view, "San Francisco Bay Area") {
		t.Error("expected saved locations on the first tab")
	}
	if !strings.Contains(view, "$135,000") {
		t.Error("expected details of the selected location")
	}
}

func TestLocations_TabsCycle(t *testing.T) {
	s := New(locations.Sample())
	s.Update(special(tea.KeyRight))
	if view := s.View(100, 60); !strings.Contains(view, "Graduated from MIT") {
		t.Error("expected history on the second tab")
	}
	s.Update(special(tea.KeyRight))
	if view := s.View(100, 60); !strings.Contains(view, "94% Match") {
		t.Error("expected suggestions on the third tab")
	}
	s.Update(special(tea.KeyRight))
	if s.tab != tabSaved {
		t.Errorf("expected to wrap to the saved tab, got %d", s.tab)
	}
}

func TestLocations_AddSaved(t *testing.T) {
	atlas := locations.Sample()
	s := New(atlas)

	s.Update(key('a'))
	if !s.CapturesEscape() {
		t.Fatal("an open form should capture Esc")
	}
	typeText(s, "Lisbon, Portugal")
	s.Update(special(tea.KeyTab))
	typeText(s, "vacation")
	s.Update(special(tea.KeyTab))
	typeText(s, "4.2")
	enter(s, 3)

	if s.form != nil {
		t.Fatalf("form should close on success, error: %q", s.form.Err)
	}
	saved := atlas.Snapshot().Saved
	got := saved[len(saved)-1]
	if got.Name != "Lisbon, Portugal" || got.Type != "Vacation" || got.Rating != 4.2 {
		t.Errorf("unexpected saved location %+v", got)
	}
	if s.notice != "Added Lisbon, Portugal" {
		t.Errorf("unexpected notice %q", s.notice)
	}
}

func TestLocations_AddRejectsUnknownType(t *testing.T) {
	atlas := locations.Sample()
	s := New(atlas)

	s.Update(key('a'))
	typeText(s, "Mars")
	s.Update(special(tea.KeyTab))
	typeText(s, "Colony")
	enter(s, 4)

	if s.form == nil {
		t.Fatal("form should stay open on a validation error")
	}
	if !strings.HasPrefix(s.form.Err, "type must be one of") {
		t.Errorf("unexpected error %q", s.form.Err)
	}
	s.Update(special(tea.KeyEscape))
	if s.form != nil || len(atlas.Snapshot().Saved) != 4 {
		t.Error("cancel should close the form without adding")
	}
}

func TestLocations_EditSavedKeepsDetails(t *testing.T) {
	atlas := locations.Sample()
	s := New(atlas)

	s.Update(key('e'))
	typeText(s, " Area")
	enter(s, 5)

	got := atlas.Snapshot().Saved[0]
	if got.Name != "San Francisco Bay Area Area" {
		t.Errorf("unexpected name %q", got.Name)
	}
	if got.Rating != 4.8 || got.Type != "Home" {
		t.Errorf("prefilled fields should be kept, got %+v", got)
	}
	if len(got.Details) != 6 {
		t.Errorf("details should survive an edit, got %d", len(got.Details))
	}
}

func TestLocations_EditHistoryHighlights(t *testing.T) {
	atlas := locations.Sample()
	s := New(atlas)

	s.Update(special(tea.KeyRight))
	s.Update(special(tea.KeyDown))
	s.Update(key('e'))
	for range 4 {
		s.Update(special(tea.KeyTab))
	}
	typeText(s, "; Learned to ship")
	s.Update(special(tea.KeyEnter))

	got := atlas.Snapshot().History[1]
	want := []string{"Entry-level position at Tribune Media", "Built network in digital media", "Learned to ship"}
	if strings.Join(got.Highlights, "|") != strings.Join(want, "|") {
		t.Errorf("unexpected highlights %q", got.Highlights)
	}
	if got.Period != "2014-2016" {
		t.Errorf("period should be kept, got %q", got.Period)
	}
}

func TestLocations_DeleteHistory(t *testing.T) {
	atlas := locations.Sample()
	s := New(atlas)

	s.Update(special(tea.KeyRight))
	for range 2 {
		s.Update(special(tea.KeyDown))
	}
	s.Update(key('d'))

	history := atlas.Snapshot().History
	if len(history) != 2 {
		t.Fatalf("expected 2 past locations, got %d", len(history))
	}
	if s.selected != 1 {
		t.Errorf("selection should clamp to the last row, got %d", s.selected)
	}
	if s.notice != "Deleted Los Angeles, CA" {
		t.Errorf("unexpected notice %q", s.notice)
	}
}

func TestLocations_SaveSuggestion(t *testing.T) {
	atlas := locations.Sample()
	s := New(atlas)

	s.Update(special(tea.KeyLeft))
	if s.tab != tabExplore {
		t.Fatalf("expected the explore tab, got %d", s.tab)
	}
	s.Update(key('a'))
	if s.form != nil {
		t.Fatal("suggestions cannot be added by hand")
	}
	s.Update(special(tea.KeyDown))
	s.Update(key('s'))

	saved := atlas.Snapshot().Saved
	if len(saved) != 5 || saved[4].Name != "Singapore" {
		t.Fatalf("expected Singapore saved last, got %+v", saved)
	}
	if s.notice != "Singapore added to your saved locations" {
		t.Errorf("unexpected notice %q", s.notice)
	}
}

func TestLocations_SearchNarrowsAndEscClears(t *testing.T) {
	s := New(locations.Sample())

	s.Update(key('/'))
	typeText(s, "work")
	s.Update(special(tea.KeyEnter))

	if s.query != "work" {
		t.Fatalf("expected the query to be set, got %q", s.query)
	}
	view := s.View(100, 60)
	if strings.Contains(view, "San Francisco") || !strings.Contains(view, "Seattle, WA") {
		t.Error("search should keep only matching saved locations")
	}
	if !s.CapturesEscape() {
		t.Fatal("an active search should capture Esc")
	}

	s.Update(special(tea.KeyDown))
	s.Update(key('d'))
	if s.notice != "Deleted Seattle, WA" {
		t.Errorf("delete should act on the filtered row, got %q", s.notice)
	}

	s.Update(special(tea.KeyEscape))
	if s.query != "" || s.CapturesEscape() {
		t.Error("Esc should clear the search")
	}
}

func TestLocations_KeyHints(t *testing.T) {
	s := New(locations.Sample())
	if n := len(s.KeyHints()); n != 7 {
		t.Errorf("expected 7 hints on the saved tab, got %d", n)
	}
	s.Update(key('/'))
	if n := len(s.KeyHints()); n != 2 {
		t.Errorf("expected 2 hints while searching, got %d", n)
	}
}
