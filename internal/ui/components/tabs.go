package components

import (
	"strings"

	"github.com/abhisek/aether/internal/ui/theme"
)

// Tabs renders a one line tab strip with active highlighted.
func Tabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = theme.TabActive.Render(l)
		} else {
			parts[i] = theme.TabInactive.Render(l)
		}
	}
	return strings.Join(parts, " ")
}

// Cycle moves i by delta within n slots, wrapping around.
func Cycle(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}
