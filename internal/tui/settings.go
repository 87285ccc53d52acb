package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerlight/runway/internal/config"
	"github.com/ledgerlight/runway/internal/tui/components"
	"github.com/ledgerlight/runway/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var themes strings.Builder
	for i, th := range theme.All {
		marker := "( )"
		style := labelStyle
		if th.Name == theme.Active.Name {
			marker = "(o)"
		}
		if i == a.settingsCursor {
			style = accentStyle
		}
		themes.WriteString(style.Render(fmt.Sprintf("%s %s", marker, th.Name)))
		themes.WriteString("\n")
	}
	themes.WriteString("\n")
	themes.WriteString(dimStyle.Render("j/k to select, Enter to apply"))

	historyState := "off"
	if a.historyPath != "" {
		historyState = fmt.Sprintf("on (%d entries max)", a.cfg.History.MaxEntries)
	}

	var prefs strings.Builder
	prefs.WriteString(labelStyle.Render("Currency   "))
	prefs.WriteString(valueStyle.Render(a.cfg.General.Currency))
	prefs.WriteString("\n")
	prefs.WriteString(labelStyle.Render("History    "))
	prefs.WriteString(valueStyle.Render(historyState))
	prefs.WriteString("\n")
	prefs.WriteString(labelStyle.Render("Config     "))
	prefs.WriteString(valueStyle.Render(config.ConfigPath()))
	prefs.WriteString("\n\n")
	prefs.WriteString(dimStyle.Render("Edit with `runway setup` or the config file directly"))

	halves := components.LayoutRow(cw, 2)
	return components.CardRow([]string{
		components.ContentCard("Color Theme", themes.String(), halves[0]),
		components.ContentCard("Preferences", prefs.String(), halves[1]),
	})
}
