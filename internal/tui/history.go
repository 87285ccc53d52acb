package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerlight/runway/internal/cli"
	"github.com/ledgerlight/runway/internal/model"
	"github.com/ledgerlight/runway/internal/tui/components"
	"github.com/ledgerlight/runway/internal/tui/theme"
)

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	if a.historyPath == "" {
		return components.ContentCard("History",
			mutedStyle.Render("History logging is disabled."), cw)
	}
	if a.histErr != nil {
		return components.ContentCard("History",
			errStyle.Render(fmt.Sprintf("Could not read history: %s", a.histErr)), cw)
	}
	if len(a.history) == 0 {
		return components.ContentCard("History",
			mutedStyle.Render("No checks recorded yet. Run one from the Dashboard tab."), cw)
	}

	symbol := a.cfg.General.Currency

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-17s %12s %12s %10s  %s",
		"When", "Cash", "Burn", "Runway", "Status")))
	b.WriteString("\n")

	for _, h := range a.history {
		glyphs := ""
		for _, lvl := range []model.Level{h.CashLevel, h.BurnLevel, h.RiskLevel} {
			g, _ := components.LevelBadge(lvl)
			glyphs += lipgloss.NewStyle().
				Foreground(components.LevelColor(lvl)).
				Render(g)
			glyphs += " "
		}

		b.WriteString(textStyle.Render(fmt.Sprintf("%-17s", h.TakenAt.Local().Format("Jan 02 3:04 PM"))))
		b.WriteString(textStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(symbol, h.Snapshot.Cash))))
		b.WriteString(textStyle.Render(fmt.Sprintf(" %12s", cli.FormatSignedMoney(symbol, h.BurnAmount))))
		b.WriteString(textStyle.Render(fmt.Sprintf(" %10s", cli.FormatRunway(h.Runway))))
		b.WriteString("  ")
		b.WriteString(glyphs)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Status glyphs: cash · burn · invoices    [r] reload"))

	return components.ContentCard(fmt.Sprintf("History (%d)", len(a.history)), b.String(), cw)
}
