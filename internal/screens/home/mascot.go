package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aether/internal/store"
	"github.com/abhisek/aether/internal/ui/theme"
)

// MascotVariant selects which compass art to display.
type MascotVariant int

const (
	MascotIdle     MascotVariant = iota // no career path yet
	MascotGuiding                       // path applied
	MascotInspired                      // coaching brief ready
)

const mascotIdle = `┌─────┐
│ ◦ ◦ │
│  ─  │
│  ?  │
└─────┘`

const mascotGuiding = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ─▸─ │
└─────┘`

const mascotInspired = `  ✦
┌─────┐
│ ★ ★ │
│  ▿  │
│ ─▸─ │
└─────┘`

// mascotFor picks the variant matching the profile state.
func mascotFor(data store.SnapshotData) MascotVariant {
	switch {
	case data.Coaching != nil:
		return MascotInspired
	case data.Insights != nil:
		return MascotGuiding
	}
	return MascotIdle
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.TextDim
	switch v {
	case MascotGuiding:
		art, fg = mascotGuiding, theme.Primary
	case MascotInspired:
		art, fg = mascotInspired, theme.Highlight
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
