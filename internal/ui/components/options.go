package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/ui/theme"
)

// OptionList is a single-choice selector. Cursor is the highlighted row and
// Chosen the committed one, -1 when nothing is chosen yet.
type OptionList struct {
	Prompt  string
	Options []string
	Cursor  int
	Chosen  int
	Width   int
}

// NewOptionList creates a list with the cursor on chosen, or on the first
// option when chosen is -1.
func NewOptionList(prompt string, options []string, chosen int) OptionList {
	cursor := chosen
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	return OptionList{
		Prompt:  prompt,
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update moves the cursor. Choosing is left to the caller so that it can
// record the choice elsewhere first; see Choose.
func (o OptionList) Update(msg tea.Msg) OptionList {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o
	}
	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o
}

// Choose commits option i and moves the cursor to it.
func (o OptionList) Choose(i int) OptionList {
	if i < 0 || i >= len(o.Options) {
		return o
	}
	o.Cursor = i
	o.Chosen = i
	return o
}

func (o OptionList) View() string {
	var b strings.Builder
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if o.Width > 0 {
		prompt = prompt.Width(o.Width)
	}
	b.WriteString(prompt.Render(o.Prompt))
	b.WriteString("\n\n")

	for i, opt := range o.Options {
		cursor := "  "
		if i == o.Cursor {
			cursor = "▸ "
		}
		mark := "○"
		if i == o.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %c)  %s", cursor, mark, 'A'+i, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == o.Chosen:
			style = theme.Chosen
		case i == o.Cursor:
			style = theme.Selected
		}
		if o.Width > 0 {
			style = style.Width(o.Width)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
