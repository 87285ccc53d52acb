package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerlight/runway/internal/cli"
	"github.com/ledgerlight/runway/internal/model"
	"github.com/ledgerlight/runway/internal/tui/components"
	"github.com/ledgerlight/runway/internal/tui/theme"
	"github.com/ledgerlight/runway/internal/validate"
)

func (a App) validateForm() (model.Snapshot, error) {
	return validate.Snapshot(a.form.raw())
}

func (a App) renderDashboardTab(cw int) string {
	var b strings.Builder

	b.WriteString(a.renderForm(cw))
	b.WriteString("\n")

	switch a.phase {
	case phaseAnalyzing:
		b.WriteString(a.renderAnalyzing())
	case phaseResult:
		if a.result != nil {
			b.WriteString(a.renderResult(*a.result, cw))
		}
	}

	return b.String()
}

func (a App) renderForm(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(18)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Width(18)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, in := range a.form.inputs {
		style := labelStyle
		if i == a.form.focus {
			style = focusLabelStyle
		}
		b.WriteString(style.Render(fieldLabels[i]))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.form.errMsg != "" {
		b.WriteString(errStyle.Render(capitalize(a.form.errMsg)))
	} else if a.form.focus >= 0 {
		b.WriteString(hintStyle.Render("Enter to run the check · Esc to leave the form"))
	} else {
		b.WriteString(hintStyle.Render("Press Enter to edit inputs"))
	}

	return components.ContentCard("Financial Check", b.String(), cw)
}

func (a App) renderAnalyzing() string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextMuted)
	return "  " + a.spinner.View() + style.Render(" Analyzing your numbers...")
}

func (a App) renderResult(res model.Result, cw int) string {
	symbol := a.cfg.General.Currency
	widths := components.LayoutRow(cw, 4)

	// Burn card shows the absolute amount; the sign is carried by the
	// Surplus/Deficit label.
	burnAmount := res.Burn.Amount
	if burnAmount < 0 {
		burnAmount = -burnAmount
	}

	cards := []string{
		components.StatusCard("Cash Runway", cli.FormatRunway(res.Runway), res.CashHealth, widths[0]),
		components.StatusCard("Monthly Burn", cli.FormatMoney(symbol, burnAmount), res.Burn.Status, widths[1]),
		components.StatusCard("Invoice Risk", cli.FormatMoney(symbol, a.snapshot.Overdue), res.InvoiceRisk, widths[2]),
		components.MetricCard("Cash on Hand", cli.FormatMoney(symbol, a.snapshot.Cash), "", widths[3]),
	}

	var b strings.Builder
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	t := theme.Active
	bulletStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var insights strings.Builder
	for i, msg := range res.Insights {
		if i >= 4 {
			break
		}
		insights.WriteString(bulletStyle.Render("· "))
		insights.WriteString(textStyle.Render(msg))
		if i < len(res.Insights)-1 {
			insights.WriteString("\n")
		}
	}

	b.WriteString(components.ContentCard("Insights", insights.String(), cw))
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
