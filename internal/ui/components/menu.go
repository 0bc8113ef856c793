package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Disabled items are shown but cannot be
// selected.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks the selected entry of a vertical menu. Rendering is left to
// the screen that owns it.
//
// Up/down (or k/j) move and wrap around, home/end jump to the first and
// last enabled entry, and the digits 1-9 activate an entry directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.step(len(items)-1, 1)
	return m
}

// step returns the next enabled index from i in direction delta, or i when
// every item is disabled.
func (m Menu) step(i, delta int) int {
	n := len(m.Items)
	for j := i; n > 0; {
		j = Cycle(j, delta, n)
		if !m.Items[j].Disabled {
			return j
		}
		if j == i {
			break
		}
	}
	return max(i, 0)
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	if it := m.Items[i]; !it.Disabled && it.Action != nil {
		return it.Action()
	}
	return nil
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		m.Selected = m.step(m.Selected, -1)
	case "down", "j":
		m.Selected = m.step(m.Selected, 1)
	case "home", "g":
		m.Selected = m.step(len(m.Items)-1, 1)
	case "end", "G":
		m.Selected = m.step(0, -1)
	case "enter", "space":
		return m, m.activate(m.Selected)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(s[0] - '1')
		if i < len(m.Items) && !m.Items[i].Disabled {
			m.Selected = i
			return m, m.activate(i)
		}
	}
	return m, nil
}
