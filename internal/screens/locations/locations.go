package locations

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/locations"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/layout"
	"github.com/abhisek/aether/internal/ui/theme"
)

type tab int

const (
	tabSaved tab = iota
	tabHistory
	tabExplore
	numTabs
)

var tabLabels = []string{"Saved", "History", "Explore"}

type formKind int

const (
	formNone formKind = iota
	formAdd
	formEdit
	formSearch
)

// LocationsScreen browses saved places, past places and suggestions. The
// search query narrows the saved and explore tabs.
type LocationsScreen struct {
	atlas    *locations.Atlas
	tab      tab
	selected int
	query    string

	form    *components.Form
	kind    formKind
	editing int

	notice string
	bad    bool
}

var _ screen.Screen = (*LocationsScreen)(nil)
var _ screen.KeyHintProvider = (*LocationsScreen)(nil)
var _ screen.EscapeCapturer = (*LocationsScreen)(nil)

func New(atlas *locations.Atlas) *LocationsScreen {
	return &LocationsScreen{atlas: atlas}
}

func (s *LocationsScreen) Init() tea.Cmd { return nil }
func (s *LocationsScreen) Title() string { return "Locations" }

// CapturesEscape keeps Esc while a form is open or a search is active, so
// the first Esc clears the search instead of leaving.
func (s *LocationsScreen) CapturesEscape() bool { return s.form != nil || s.query != "" }

func (s *LocationsScreen) KeyHints() []layout.KeyHint {
	if s.form != nil {
		if s.kind == formSearch {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Search"},
				{Key: "Esc", Description: "Cancel"},
			}
		}
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Tabs"},
		{Key: "↑↓", Description: "Select"},
	}
	if s.tab == tabExplore {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Save"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "a", Description: "Add"},
			layout.KeyHint{Key: "e", Description: "Edit"},
			layout.KeyHint{Key: "d", Description: "Delete"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "/", Description: "Search"})
	if s.query != "" {
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Clear search"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// visible returns the saved places and suggestions matching the query.
func (s *LocationsScreen) visible() (locations.Snapshot, []locations.Saved, []locations.Explore) {
	snap := s.atlas.Snapshot()
	saved, explore := snap.Search(s.query)
	return snap, saved, explore
}

func (s *LocationsScreen) rows() int {
	snap, saved, explore := s.visible()
	switch s.tab {
	case tabSaved:
		return len(saved)
	case tabHistory:
		return len(snap.History)
	case tabExplore:
		return len(explore)
	}
	return 0
}

func (s *LocationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.form != nil {
		return s.updateForm(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "tab", "right", "l":
		s.switchTab(1)
	case "shift+tab", "left", "h":
		s.switchTab(-1)
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.rows()-1 {
			s.selected++
		}
	case "a":
		s.openAdd()
	case "e":
		s.openEdit()
	case "d", "delete":
		s.deleteSelected()
	case "s", "enter":
		if s.tab == tabExplore {
			s.saveSuggestion()
		}
	case "/":
		f := components.NewForm("Search", components.FormField{Label: "Name or type"}).Prefill(s.query)
		s.form, s.kind = &f, formSearch
	case "esc":
		s.query = ""
		s.selected = 0
		s.setNotice("", false)
	}
	return s, nil
}

func (s *LocationsScreen) switchTab(delta int) {
	s.tab = tab(components.Cycle(int(s.tab), delta, int(numTabs)))
	s.selected = 0
	s.notice = ""
}

func (s *LocationsScreen) setNotice(text string, bad bool) {
	s.notice = text
	s.bad = bad
}

func (s *LocationsScreen) clampSelection() {
	if n := s.rows(); s.selected >= n {
		s.selected = max(n-1, 0)
	}
}

func savedForm(title string) components.Form {
	return components.NewForm(title,
		components.FormField{Label: "Name", Placeholder: "e.g. Lisbon, Portugal"},
		components.FormField{Label: "Type", Placeholder: strings.Join(locations.Types, ", ")},
		components.FormField{Label: "Rating", Placeholder: "1-5", Numeric: true},
		components.FormField{Label: "Image", Placeholder: locations.DefaultImage},
		components.FormField{Label: "Notes"},
	)
}

func historyForm(title string) components.Form {
	return components.NewForm(title,
		components.FormField{Label: "Name", Placeholder: "e.g. Boston, MA"},
		components.FormField{Label: "Period", Placeholder: "e.g. 2016-2019"},
		components.FormField{Label: "Role", Placeholder: "e.g. First Job"},
		components.FormField{Label: "Image", Placeholder: locations.DefaultImage},
		components.FormField{Label: "Highlights", Placeholder: "separate with ;"},
	)
}

func (s *LocationsScreen) openAdd() {
	var f components.Form
	switch s.tab {
	case tabSaved:
		f = savedForm("Add saved location")
	case tabHistory:
		f = historyForm("Add past location")
	default:
		return
	}
	s.form, s.kind, s.editing = &f, formAdd, 0
	s.notice = ""
}

func (s *LocationsScreen) openEdit() {
	snap, saved, _ := s.visible()
	var f components.Form
	switch s.tab {
	case tabSaved:
		if s.selected >= len(saved) {
			return
		}
		l := saved[s.selected]
		f = savedForm("Edit saved location").Prefill(
			l.Name, l.Type, strconv.FormatFloat(l.Rating, 'f', -1, 64), l.Image, l.Notes)
		s.editing = l.ID
	case tabHistory:
		if s.selected >= len(snap.History) {
			return
		}
		l := snap.History[s.selected]
		f = historyForm("Edit past location").Prefill(
			l.Name, l.Period, l.Role, l.Image, strings.Join(l.Highlights, "; "))
		s.editing = l.ID
	default:
		return
	}
	s.form, s.kind = &f, formEdit
	s.notice = ""
}

func (s *LocationsScreen) deleteSelected() {
	snap, saved, _ := s.visible()
	var err error
	var what string
	switch s.tab {
	case tabSaved:
		if s.selected >= len(saved) {
			return
		}
		what = saved[s.selected].Name
		err = s.atlas.DeleteSaved(saved[s.selected].ID)
	case tabHistory:
		if s.selected >= len(snap.History) {
			return
		}
		what = snap.History[s.selected].Name
		err = s.atlas.DeleteHistory(snap.History[s.selected].ID)
	default:
		return
	}
	if err != nil {
		s.setNotice(err.Error(), true)
		return
	}
	s.setNotice("Deleted "+what, false)
	s.clampSelection()
}

func (s *LocationsScreen) saveSuggestion() {
	_, _, explore := s.visible()
	if s.selected >= len(explore) {
		return
	}
	e := explore[s.selected]
	if _, err := s.atlas.SaveExplore(e.ID); err != nil {
		s.setNotice(err.Error(), true)
		return
	}
	s.setNotice(e.Name+" added to your saved locations", false)
}

func (s *LocationsScreen) closeForm() {
	s.form, s.kind, s.editing = nil, formNone, 0
}

func (s *LocationsScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f, cmd := s.form.Update(msg)
	switch f.State() {
	case components.FormCancelled:
		s.closeForm()
		return s, nil
	case components.FormSubmitted:
		if err := s.submit(f.Values()); err != nil {
			f = f.Reopen(err.Error())
			s.form = &f
			return s, nil
		}
		s.closeForm()
		return s, nil
	}
	s.form = &f
	return s, cmd
}

// canonicalType matches v to a known type, ignoring case. Unknown values
// are returned as given and rejected by the atlas.
func canonicalType(v string) string {
	for _, t := range locations.Types {
		if strings.EqualFold(t, v) {
			return t
		}
	}
	return v
}

func splitHighlights(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ";")
}

// friendly strips the package prefix from validation errors shown on a form.
func friendly(err error) error {
	for _, known := range []error{locations.ErrEmpty, locations.ErrRating, locations.ErrType} {
		if errors.Is(err, known) {
			msg := strings.TrimPrefix(known.Error(), "locations: ")
			if known == locations.ErrType {
				msg = "type must be one of " + strings.Join(locations.Types, ", ")
			}
			return errors.New(msg)
		}
	}
	return err
}

func (s *LocationsScreen) submit(v []string) error {
	if s.kind == formSearch {
		s.query = v[0]
		s.selected = 0
		return nil
	}

	snap := s.atlas.Snapshot()
	var err error
	switch s.tab {
	case tabSaved:
		var rating float64
		if v[2] != "" {
			if rating, err = strconv.ParseFloat(v[2], 64); err != nil {
				return errors.New("rating must be a number")
			}
		}
		l := locations.Saved{Name: v[0], Type: canonicalType(v[1]), Rating: rating, Image: v[3], Notes: v[4]}
		if s.kind == formEdit {
			for _, old := range snap.Saved {
				if old.ID == s.editing {
					l.Details = old.Details
				}
			}
			l.ID = s.editing
			err = s.atlas.UpdateSaved(l)
		} else {
			_, err = s.atlas.AddSaved(l)
		}
	case tabHistory:
		l := locations.History{Name: v[0], Period: v[1], Role: v[2], Image: v[3], Highlights: splitHighlights(v[4])}
		if s.kind == formEdit {
			l.ID = s.editing
			err = s.atlas.UpdateHistory(l)
		} else {
			_, err = s.atlas.AddHistory(l)
		}
	}
	if err != nil {
		return friendly(err)
	}

	verb := "Added "
	if s.kind == formEdit {
		verb = "Updated "
	}
	s.setNotice(verb+v[0], false)
	return nil
}

func (s *LocationsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.Center(components.Tabs(tabLabels, int(s.tab)), width))
	b.WriteString("\n")
	if s.query != "" {
		b.WriteString(components.Center(theme.Hint.Render(fmt.Sprintf("Search: %q", s.query)), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var body string
	if s.form != nil {
		body = components.Card(s.form.View(), cw)
	} else {
		body = s.renderTab(cw)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n")

	if s.notice != "" {
		style := theme.Hint
		if s.bad {
			style = theme.Failure
		}
		b.WriteString("\n")
		b.WriteString(components.Center(style.Render(s.notice), width))
	}

	out, _ := components.Scroll(b.String(), 0, height)
	return out
}

func marker(selected bool) (string, lipgloss.Style) {
	if selected {
		return "▸ ", theme.Selected
	}
	return "  ", theme.Unselected
}

func writeDetails(b *strings.Builder, details []locations.Detail) {
	label := lipgloss.NewStyle().Width(18).Foreground(theme.TextDim)
	for _, d := range details {
		b.WriteString("    " + label.Render(d.Key) + theme.Body.Render(d.Value) + "\n")
	}
}

func writeBullets(b *strings.Builder, items []string, cw int) {
	body := lipgloss.NewStyle().Width(cw - 8).PaddingLeft(4)
	for _, it := range items {
		b.WriteString(body.Render(theme.Hint.Render("• "+it)) + "\n")
	}
}

func (s *LocationsScreen) renderTab(cw int) string {
	snap, saved, explore := s.visible()
	var b strings.Builder
	empty := "Nothing here yet. Press a to add."
	if s.query != "" {
		empty = "No matches. Press Esc to clear the search."
	}

	switch s.tab {
	case tabSaved:
		if len(saved) == 0 {
			return components.Card(theme.Hint.Render(empty), cw)
		}
		for i, l := range saved {
			prefix, style := marker(i == s.selected)
			b.WriteString(style.Render(prefix + l.Image + " " + l.Name))
			b.WriteString("\n")
			b.WriteString(theme.Muted.Render(fmt.Sprintf("    %s · ★ %.1f", l.Type, l.Rating)))
			b.WriteString("\n")
			if i == s.selected {
				writeDetails(&b, l.Details)
				if l.Notes != "" {
					b.WriteString(lipgloss.NewStyle().Width(cw - 8).PaddingLeft(4).Render(theme.Body.Render(l.Notes)))
					b.WriteString("\n")
				}
			}
		}
	case tabHistory:
		if len(snap.History) == 0 {
			return components.Card(theme.Hint.Render("Nothing here yet. Press a to add."), cw)
		}
		for i, l := range snap.History {
			prefix, style := marker(i == s.selected)
			b.WriteString(style.Render(prefix + l.Image + " " + l.Name))
			b.WriteString("\n")
			b.WriteString(theme.Muted.Render(fmt.Sprintf("    %s · %s", l.Period, l.Role)))
			b.WriteString("\n")
			if i == s.selected {
				writeBullets(&b, l.Highlights, cw)
			}
		}
	case tabExplore:
		if len(explore) == 0 {
			return components.Card(theme.Hint.Render("No suggestions match."), cw)
		}
		for i, l := range explore {
			prefix, style := marker(i == s.selected)
			b.WriteString(style.Render(prefix + l.Image + " " + l.Name))
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render(l.Match))
			b.WriteString("\n")
			if i == s.selected {
				writeDetails(&b, l.Details)
				writeBullets(&b, l.Reasons, cw)
			}
		}
	}
	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}
