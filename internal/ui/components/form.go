package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/ui/theme"
)

// FormField describes one input of a Form.
type FormField struct {
	Label       string
	Placeholder string
	Numeric     bool
}

// FormState tells the owner whether the form is still being edited.
type FormState int

const (
	FormEditing FormState = iota
	FormSubmitted
	FormCancelled
)

// Form is a small stack of labelled text inputs. Tab and the arrow keys move
// between fields, Enter on the last field submits and Esc cancels.
type Form struct {
	Title  string
	Fields []FormField
	Err    string

	inputs []TextInput
	focus  int
	state  FormState
}

// NewForm creates a form focused on its first field.
func NewForm(title string, fields ...FormField) Form {
	inputs := make([]TextInput, len(fields))
	for i, f := range fields {
		inputs[i] = NewTextInput(f.Placeholder, f.Numeric, 48)
		if i > 0 {
			inputs[i].Blur()
		}
	}
	return Form{Title: title, Fields: fields, inputs: inputs}
}

// State returns the form state.
func (f Form) State() FormState {
	return f.state
}

// Values returns the trimmed field values in order.
func (f Form) Values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// Prefill sets the fields to values, in order. Extra values are ignored.
func (f Form) Prefill(values ...string) Form {
	f.inputs = append([]TextInput(nil), f.inputs...)
	for i, v := range values {
		if i < len(f.inputs) {
			f.inputs[i].SetValue(v)
		}
	}
	return f
}

// Reopen puts a submitted form back into editing, showing err.
func (f Form) Reopen(err string) Form {
	f.state = FormEditing
	f.Err = err
	return f
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if f.state != FormEditing {
		return f, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			f.state = FormCancelled
			return f, nil
		case "tab", "down":
			return f.move(1)
		case "shift+tab", "up":
			return f.move(-1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f.move(1)
			}
			f.state = FormSubmitted
			f.Err = ""
			return f, nil
		}
	}

	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f Form) move(delta int) (Form, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f, f.inputs[f.focus].Focus()
}

func (f Form) View() string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(f.Title))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Width(14).Foreground(theme.TextDim)
	for i, field := range f.Fields {
		l := label
		if i == f.focus {
			l = l.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(l.Render(field.Label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.Err != "" {
		b.WriteString("\n")
		b.WriteString(theme.Failure.Render(f.Err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Tab next field · Enter save · Esc cancel"))
	return b.String()
}
