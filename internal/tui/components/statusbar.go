package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerlight/runway/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a context note (theme name, history state) on the right.
func RenderStatusBar(width int, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [t]heme  [q]uit"
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
