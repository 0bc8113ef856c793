package experience

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/experience"
	"github.com/abhisek/aether/internal/screen"
	"github.com/abhisek/aether/internal/ui/components"
	"github.com/abhisek/aether/internal/ui/layout"
	"github.com/abhisek/aether/internal/ui/theme"
)

type tab int

const (
	tabWork tab = iota
	tabEducation
	tabSkills
	tabCertifications
	numTabs
)

var tabLabels = []string{"Work", "Education", "Skills", "Certifications"}

// skillRow is one skill in the flattened skills list.
type skillRow struct {
	category string
	skill    string
}

// ExperienceScreen browses and edits the professional profile.
type ExperienceScreen struct {
	profile  *experience.Profile
	tab      tab
	selected int
	form     *components.Form
	editing  int // id of the entry the form edits, 0 when adding
	notice   string
	bad      bool
}

var _ screen.Screen = (*ExperienceScreen)(nil)
var _ screen.KeyHintProvider = (*ExperienceScreen)(nil)
var _ screen.EscapeCapturer = (*ExperienceScreen)(nil)

func New(profile *experience.Profile) *ExperienceScreen {
	return &ExperienceScreen{profile: profile}
}

func (s *ExperienceScreen) Init() tea.Cmd        { return nil }
func (s *ExperienceScreen) Title() string        { return "Experience" }
func (s *ExperienceScreen) CapturesEscape() bool { return s.form != nil }

func (s *ExperienceScreen) KeyHints() []layout.KeyHint {
	if s.form != nil {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Tabs"},
		{Key: "↑↓", Description: "Select"},
		{Key: "a", Description: "Add"},
		{Key: "e", Description: "Edit"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExperienceScreen) skills() []skillRow {
	var rows []skillRow
	for _, g := range s.profile.Snapshot().Skills {
		for _, item := range g.Items {
			rows = append(rows, skillRow{category: g.Category, skill: item})
		}
	}
	return rows
}

func (s *ExperienceScreen) rows() int {
	snap := s.profile.Snapshot()
	switch s.tab {
	case tabWork:
		return len(snap.Work)
	case tabEducation:
		return len(snap.Education)
	case tabSkills:
		return len(s.skills())
	case tabCertifications:
		return len(snap.Certifications)
	}
	return 0
}

func (s *ExperienceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
	case "d", "delete":
		s.deleteSelected()
	case "a":
		s.openForm()
	case "e":
		s.openEdit()
	}
	return s, nil
}

func (s *ExperienceScreen) switchTab(delta int) {
	s.tab = tab(components.Cycle(int(s.tab), delta, int(numTabs)))
	s.selected = 0
	s.notice = ""
}

func (s *ExperienceScreen) setNotice(text string, bad bool) {
	s.notice = text
	s.bad = bad
}

func (s *ExperienceScreen) deleteSelected() {
	snap := s.profile.Snapshot()
	var err error
	var what string
	switch s.tab {
	case tabWork:
		if s.selected >= len(snap.Work) {
			return
		}
		w := snap.Work[s.selected]
		what = w.Role
		err = s.profile.DeleteWork(w.ID)
	case tabEducation:
		if s.selected >= len(snap.Education) {
			return
		}
		e := snap.Education[s.selected]
		what = e.Degree
		err = s.profile.DeleteEducation(e.ID)
	case tabSkills:
		rows := s.skills()
		if s.selected >= len(rows) {
			return
		}
		r := rows[s.selected]
		what = r.skill
		err = s.profile.DeleteSkill(r.category, r.skill)
	case tabCertifications:
		if s.selected >= len(snap.Certifications) {
			return
		}
		c := snap.Certifications[s.selected]
		what = c.Name
		err = s.profile.DeleteCertification(c.ID)
	}

	if err != nil {
		s.setNotice(err.Error(), true)
		return
	}
	s.setNotice("Deleted "+what, false)
	if n := s.rows(); s.selected >= n && n > 0 {
		s.selected = n - 1
	}
}

func formFor(t tab, verb string) (components.Form, bool) {
	switch t {
	case tabWork:
		return components.NewForm(verb+" work experience",
			components.FormField{Label: "Role", Placeholder: "e.g. Product Manager"},
			components.FormField{Label: "Company"},
			components.FormField{Label: "Location"},
			components.FormField{Label: "Period", Placeholder: "e.g. 2021 - Present"},
			components.FormField{Label: "Description"},
		), true
	case tabEducation:
		return components.NewForm(verb+" education",
			components.FormField{Label: "Degree", Placeholder: "e.g. BS, Computer Science"},
			components.FormField{Label: "Institution"},
			components.FormField{Label: "Location"},
			components.FormField{Label: "Period", Placeholder: "e.g. 2009 - 2013"},
		), true
	case tabSkills:
		return components.NewForm(verb+" skill",
			components.FormField{Label: "Category", Placeholder: "e.g. Technical"},
			components.FormField{Label: "Skill", Placeholder: "e.g. SQL"},
		), true
	case tabCertifications:
		return components.NewForm(verb+" certification",
			components.FormField{Label: "Name"},
			components.FormField{Label: "Issuer"},
			components.FormField{Label: "Date", Placeholder: "e.g. May 2022"},
		), true
	}
	return components.Form{}, false
}

func (s *ExperienceScreen) openForm() {
	f, ok := formFor(s.tab, "Add")
	if !ok {
		return
	}
	s.form = &f
	s.editing = 0
	s.notice = ""
}

// openEdit opens the form on the selected entry. Skills have no fields
// beyond their name and are edited by delete and add.
func (s *ExperienceScreen) openEdit() {
	snap := s.profile.Snapshot()
	var id int
	var values []string
	switch s.tab {
	case tabWork:
		if s.selected >= len(snap.Work) {
			return
		}
		w := snap.Work[s.selected]
		id, values = w.ID, []string{w.Role, w.Company, w.Location, w.Period, w.Description}
	case tabEducation:
		if s.selected >= len(snap.Education) {
			return
		}
		e := snap.Education[s.selected]
		id, values = e.ID, []string{e.Degree, e.Institution, e.Location, e.Period}
	case tabCertifications:
		if s.selected >= len(snap.Certifications) {
			return
		}
		c := snap.Certifications[s.selected]
		id, values = c.ID, []string{c.Name, c.Issuer, c.Date}
	default:
		return
	}

	f, _ := formFor(s.tab, "Edit")
	f = f.Prefill(values...)
	s.form = &f
	s.editing = id
	s.notice = ""
}

func (s *ExperienceScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f, cmd := s.form.Update(msg)
	switch f.State() {
	case components.FormCancelled:
		s.form = nil
		s.editing = 0
		return s, nil
	case components.FormSubmitted:
		submit := s.submit
		if s.editing != 0 {
			submit = s.submitEdit
		}
		if err := submit(f.Values()); err != nil {
			f = f.Reopen(err.Error())
			s.form = &f
			return s, nil
		}
		s.form = nil
		s.editing = 0
		return s, nil
	}
	s.form = &f
	return s, cmd
}

func required(values []string, labels ...string) error {
	for i, l := range labels {
		if values[i] == "" {
			return errors.New(strings.ToLower(l) + " is required")
		}
	}
	return nil
}

func (s *ExperienceScreen) submit(v []string) error {
	switch s.tab {
	case tabWork:
		if err := required(v, "Role", "Company"); err != nil {
			return err
		}
		s.profile.AddWork(experience.Work{Role: v[0], Company: v[1], Location: v[2], Period: v[3], Description: v[4]})
	case tabEducation:
		if err := required(v, "Degree", "Institution"); err != nil {
			return err
		}
		s.profile.AddEducation(experience.Education{Degree: v[0], Institution: v[1], Location: v[2], Period: v[3]})
	case tabSkills:
		if err := s.profile.AddSkill(v[0], v[1]); err != nil {
			if errors.Is(err, experience.ErrEmpty) {
				return errors.New("category and skill are required")
			}
			return err
		}
		s.setNotice("Added "+v[1], false)
		return nil
	case tabCertifications:
		if err := required(v, "Name", "Issuer"); err != nil {
			return err
		}
		s.profile.AddCertification(experience.Certification{Name: v[0], Issuer: v[1], Date: v[2]})
	}
	s.selected = 0
	s.setNotice("Added "+v[0], false)
	return nil
}

// submitEdit writes the form back over the entry being edited. Fields the
// form does not show, like achievements, are kept.
func (s *ExperienceScreen) submitEdit(v []string) error {
	snap := s.profile.Snapshot()
	var err error
	switch s.tab {
	case tabWork:
		if err := required(v, "Role", "Company"); err != nil {
			return err
		}
		w, ok := find(snap.Work, s.editing, func(w experience.Work) int { return w.ID })
		if !ok {
			return experience.ErrNotFound
		}
		w.Role, w.Company, w.Location, w.Period, w.Description = v[0], v[1], v[2], v[3], v[4]
		err = s.profile.UpdateWork(w)
	case tabEducation:
		if err := required(v, "Degree", "Institution"); err != nil {
			return err
		}
		e, ok := find(snap.Education, s.editing, func(e experience.Education) int { return e.ID })
		if !ok {
			return experience.ErrNotFound
		}
		e.Degree, e.Institution, e.Location, e.Period = v[0], v[1], v[2], v[3]
		err = s.profile.UpdateEducation(e)
	case tabCertifications:
		if err := required(v, "Name", "Issuer"); err != nil {
			return err
		}
		c, ok := find(snap.Certifications, s.editing, func(c experience.Certification) int { return c.ID })
		if !ok {
			return experience.ErrNotFound
		}
		c.Name, c.Issuer, c.Date = v[0], v[1], v[2]
		err = s.profile.UpdateCertification(c)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	s.setNotice("Updated "+v[0], false)
	return nil
}

func find[T any](items []T, id int, idOf func(T) int) (T, bool) {
	for _, it := range items {
		if idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (s *ExperienceScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.Center(components.Tabs(tabLabels, int(s.tab)), width))
	b.WriteString("\n\n")

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

func (s *ExperienceScreen) renderTab(cw int) string {
	snap := s.profile.Snapshot()
	var b strings.Builder
	empty := theme.Hint.Render("Nothing here yet. Press a to add.")

	switch s.tab {
	case tabWork:
		if len(snap.Work) == 0 {
			return components.Card(empty, cw)
		}
		for i, w := range snap.Work {
			prefix, style := marker(i == s.selected)
			b.WriteString(style.Render(prefix + w.Role))
			b.WriteString("\n")
			b.WriteString(theme.Muted.Render(fmt.Sprintf("  %s · %s · %s", w.Company, w.Location, w.Period)))
			b.WriteString("\n")
			if i == s.selected {
				writeDetail(&b, w.Description, w.Achievements, cw)
			}
		}
	case tabEducation:
		if len(snap.Education) == 0 {
			return components.Card(empty, cw)
		}
		for i, e := range snap.Education {
			prefix, style := marker(i == s.selected)
			b.WriteString(style.Render(prefix + e.Degree))
			b.WriteString("\n")
			b.WriteString(theme.Muted.Render(fmt.Sprintf("  %s · %s · %s", e.Institution, e.Location, e.Period)))
			b.WriteString("\n")
			if i == s.selected {
				writeDetail(&b, e.Description, e.Achievements, cw)
			}
		}
	case tabSkills:
		rows := s.skills()
		if len(rows) == 0 {
			return components.Card(empty, cw)
		}
		last := ""
		for i, r := range rows {
			if r.category != last {
				if last != "" {
					b.WriteString("\n")
				}
				b.WriteString(theme.Heading.Render(r.category))
				b.WriteString("\n")
				last = r.category
			}
			prefix, style := marker(i == s.selected)
			b.WriteString(style.Render(prefix + r.skill))
			b.WriteString("\n")
		}
	case tabCertifications:
		if len(snap.Certifications) == 0 {
			return components.Card(empty, cw)
		}
		for i, c := range snap.Certifications {
			prefix, style := marker(i == s.selected)
			b.WriteString(style.Render(prefix + c.Name))
			b.WriteString("\n")
			b.WriteString(theme.Muted.Render(fmt.Sprintf("  %s · %s", c.Issuer, c.Date)))
			b.WriteString("\n")
		}
	}
	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}

func writeDetail(b *strings.Builder, description string, achievements []string, cw int) {
	body := lipgloss.NewStyle().Width(cw - 8).PaddingLeft(2)
	if description != "" {
		b.WriteString(body.Render(theme.Body.Render(description)))
		b.WriteString("\n")
	}
	for _, a := range achievements {
		b.WriteString(body.Render(theme.Hint.Render("• " + a)))
		b.WriteString("\n")
	}
}
