package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgerlight/runway/internal/config"
	"github.com/ledgerlight/runway/internal/engine"
	"github.com/ledgerlight/runway/internal/model"
)

// newTestApp builds an App with config present on disk so the first-run
// wizard stays out of the way, and history disabled so no database opens.
func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := config.Save(config.DefaultConfig()); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	a := NewApp(config.DefaultConfig(), "")
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func (a App) press(t *testing.T, key string) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(keyMsg(key))
	return m.(App), cmd
}

func setFormValues(a *App, cash, income, expenses, overdue string) {
	a.form.inputs[fieldCash].SetValue(cash)
	a.form.inputs[fieldIncome].SetValue(income)
	a.form.inputs[fieldExpenses].SetValue(expenses)
	a.form.inputs[fieldOverdue].SetValue(overdue)
}

func TestSubmitInvalidInputShowsError(t *testing.T) {
	a := newTestApp(t)
	setFormValues(&a, "abc", "1", "1", "1")

	a, cmd := a.press(t, "enter")
	if cmd != nil {
		t.Fatal("invalid submit started an analysis command")
	}
	if a.phase != phaseInput {
		t.Fatalf("phase = %v after invalid submit, want phaseInput", a.phase)
	}
	if a.form.errMsg == "" {
		t.Fatal("no inline error after invalid submit")
	}
}

func TestSubmitValidInputStartsAnalysis(t *testing.T) {
	a := newTestApp(t)
	setFormValues(&a, "6000", "4000", "6000", "0")

	a, cmd := a.press(t, "enter")
	if a.phase != phaseAnalyzing {
		t.Fatalf("phase = %v after valid submit, want phaseAnalyzing", a.phase)
	}
	if cmd == nil {
		t.Fatal("valid submit produced no command")
	}
	if a.form.errMsg != "" {
		t.Fatalf("unexpected error message: %q", a.form.errMsg)
	}
}

func TestAnalysisDoneShowsResult(t *testing.T) {
	a := newTestApp(t)

	snap := model.Snapshot{Cash: 6000, Income: 4000, Expenses: 6000}
	res := engine.Compute(snap)

	m, _ := a.Update(AnalysisDoneMsg{Snapshot: snap, Result: res})
	a = m.(App)

	if a.phase != phaseResult {
		t.Fatalf("phase = %v, want phaseResult", a.phase)
	}
	if a.result == nil {
		t.Fatal("result not stored")
	}

	view := a.View()
	if !strings.Contains(view, "Cash Runway") {
		t.Fatal("result view missing runway card")
	}
	if !strings.Contains(view, "Insights") {
		t.Fatal("result view missing insights card")
	}
}

func TestTypingIntoFocusedField(t *testing.T) {
	a := newTestApp(t)

	a, _ = a.press(t, "5")
	a, _ = a.press(t, "0")
	if got := a.form.inputs[fieldCash].Value(); got != "50" {
		t.Fatalf("cash field = %q after typing, want 50", got)
	}

	// tab moves to the next field
	a, _ = a.press(t, "tab")
	if a.form.focus != fieldIncome {
		t.Fatalf("focus = %d after tab, want income field", a.form.focus)
	}
}

func TestEscBlursFormThenTabKeysWork(t *testing.T) {
	a := newTestApp(t)

	a, _ = a.press(t, "esc")
	if a.form.focus != -1 {
		t.Fatalf("focus = %d after esc, want -1", a.form.focus)
	}

	a, _ = a.press(t, "h")
	if a.activeTab != 1 {
		t.Fatalf("active tab = %d after 'h', want 1 (History)", a.activeTab)
	}

	a, _ = a.press(t, "x")
	if a.activeTab != 2 {
		t.Fatalf("active tab = %d after 'x', want 2 (Settings)", a.activeTab)
	}
}

func TestNarrowTerminalGuard(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	a = m.(App)

	view := a.View()
	if !strings.Contains(view, "Terminal too narrow") {
		t.Fatal("narrow terminal view missing guard message")
	}
}
