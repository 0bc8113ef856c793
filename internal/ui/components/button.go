package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aether/internal/ui/theme"
)

// Button is a keyboard shortcut rendered as a button.
type Button struct {
	Key    string
	Label  string
	Active bool
}

// NewButton creates a new button bound to key.
func NewButton(key, label string, active bool) Button {
	return Button{Key: key, Label: label, Active: active}
}

// Pressed reports whether msg triggers the button. Inactive buttons never
// fire.
func (b Button) Pressed(msg tea.Msg) bool {
	if !b.Active {
		return false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	return ok && kmsg.String() == b.Key
}

// View renders the button.
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
