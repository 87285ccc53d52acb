// Package components provides reusable TUI widgets for the runway dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerlight/runway/internal/model"
	"github.com/ledgerlight/runway/internal/tui/theme"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// LevelColor maps a severity level onto the active theme's status colors.
// The level domain is closed over three values, so the switch is total.
func LevelColor(l model.Level) lipgloss.Color {
	t := theme.Active
	switch l {
	case model.LevelWarn:
		return t.Orange
	case model.LevelBad:
		return t.Red
	default:
		return t.Green
	}
}

// LevelBadge returns the status glyph and accessible text for a level.
func LevelBadge(l model.Level) (glyph, text string) {
	switch l {
	case model.LevelWarn:
		return "◐", "attention"
	case model.LevelBad:
		return "○", "critical"
	default:
		return "●", "good"
	}
}

// StatusCard renders a metric card whose border and status line are colored
// by the given level. outerWidth is the total rendered width including border.
func StatusCard(label, value string, status model.Status, outerWidth int) string {
	t := theme.Active
	color := LevelColor(status.Level)

	contentWidth := outerWidth - 2 // subtract border
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	statusStyle := lipgloss.NewStyle().
		Foreground(color)

	badgeTextStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	glyph, text := LevelBadge(status.Level)
	statusLine := statusStyle.Render(glyph+" "+status.Label) + " " + badgeTextStyle.Render(text)

	content := labelStyle.Render(label) + "\n" +
		valueStyle.Render(value) + "\n" +
		statusLine

	return cardStyle.Render(content)
}

// MetricCard renders a neutral metric card with label, value, and an
// optional sub line. outerWidth is the total rendered width including border.
func MetricCard(label, value, sub string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	subStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	content := labelStyle.Render(label) + "\n" +
		valueStyle.Render(value)
	if sub != "" {
		content += "\n" + subStyle.Render(sub)
	}

	return cardStyle.Render(content)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
