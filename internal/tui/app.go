// Package tui provides the interactive Bubble Tea dashboard for runway.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerlight/runway/internal/config"
	"github.com/ledgerlight/runway/internal/engine"
	"github.com/ledgerlight/runway/internal/model"
	"github.com/ledgerlight/runway/internal/store"
	"github.com/ledgerlight/runway/internal/tui/components"
	"github.com/ledgerlight/runway/internal/tui/theme"
)

// Dashboard phases: entering numbers, the cosmetic analysis pause, and
// showing the computed result.
type phase int

const (
	phaseInput phase = iota
	phaseAnalyzing
	phaseResult
)

// AnalysisDoneMsg is sent when the analysis pause elapses and the metrics
// have been computed (and optionally logged to history).
type AnalysisDoneMsg struct {
	Snapshot model.Snapshot
	Result   model.Result
	SaveErr  error
}

// HistoryMsg carries the reloaded assessment log.
type HistoryMsg struct {
	Items []model.Assessment
	Err   error
}

// App is the root Bubble Tea model.
type App struct {
	cfg        config.Config
	thresholds engine.Thresholds

	// History log; empty path disables logging entirely.
	historyPath string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Dashboard state
	phase      phase
	form       formState
	snapshot   model.Snapshot
	result     *model.Result
	analyzedAt time.Time
	spinner    spinner.Model
	delay      time.Duration

	// History tab
	history []model.Assessment
	histErr error

	// Settings tab
	settingsCursor int

	// First-run setup (huh form)
	needSetup bool
	setupForm *huh.Form
	setupVals *setupValues
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the dashboard model. historyPath may be empty to disable
// the assessment log (--no-history or config).
func NewApp(cfg config.Config, historyPath string) App {
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	delay := time.Duration(cfg.TUI.AnalysisDelayMs) * time.Millisecond
	if delay < 0 {
		delay = 0
	}

	a := App{
		cfg:         cfg,
		thresholds:  config.EffectiveThresholds(cfg),
		historyPath: historyPath,
		form:        newFormState(),
		spinner:     sp,
		delay:       delay,
		needSetup:   !config.Exists(),
	}

	// The form holds pointers into setupVals, so every copy of the model
	// must share the same allocation.
	if a.needSetup {
		a.setupVals = &setupValues{}
		a.setupForm = newSetupForm(a.setupVals, cfg)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}

	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	if a.historyPath != "" {
		cmds = append(cmds, loadHistoryCmd(a.historyPath))
	}

	return tea.Batch(cmds...)
}

// analyzeCmd waits out the cosmetic delay, then computes metrics and logs
// the assessment. The engine call itself is instant; the pause exists so
// the dashboard reads as "doing work" rather than flickering.
func analyzeCmd(snap model.Snapshot, th engine.Thresholds, delay time.Duration, historyPath string, maxEntries int) tea.Cmd {
	run := func(time.Time) tea.Msg {
		res := engine.ComputeWith(snap, th)

		var saveErr error
		if historyPath != "" {
			saveErr = recordAssessment(historyPath, snap, res, maxEntries)
		}

		return AnalysisDoneMsg{Snapshot: snap, Result: res, SaveErr: saveErr}
	}

	if delay <= 0 {
		return func() tea.Msg { return run(time.Time{}) }
	}
	return tea.Tick(delay, run)
}

// recordAssessment appends one evaluation to the history log, pruning it
// to the configured size.
func recordAssessment(path string, snap model.Snapshot, res model.Result, maxEntries int) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	_, err = st.SaveAssessment(model.Assessment{
		TakenAt:    time.Now(),
		Snapshot:   snap,
		Runway:     res.Runway,
		CashLevel:  res.CashHealth.Level,
		BurnLevel:  res.Burn.Level,
		RiskLevel:  res.InvoiceRisk.Level,
		BurnAmount: res.Burn.Amount,
		Insights:   res.Insights,
	})
	if err != nil {
		return err
	}
	return st.Prune(maxEntries)
}

func loadHistoryCmd(path string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(path)
		if err != nil {
			return HistoryMsg{Err: err}
		}
		defer func() { _ = st.Close() }()

		items, err := st.Recent(50)
		return HistoryMsg{Items: items, Err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case AnalysisDoneMsg:
		a.phase = phaseResult
		a.snapshot = msg.Snapshot
		res := msg.Result
		a.result = &res
		a.analyzedAt = time.Now()
		if msg.SaveErr == nil && a.historyPath != "" {
			return a, loadHistoryCmd(a.historyPath)
		}
		return a, nil

	case HistoryMsg:
		a.history = msg.Items
		a.histErr = msg.Err
		return a, nil

	case spinner.TickMsg:
		if a.phase == phaseAnalyzing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Dismiss help on any key
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// While a form field is focused on the dashboard, only navigation and
	// submit keys are intercepted; everything else types into the field.
	if a.activeTab == 0 && a.phase == phaseInput && a.form.focus >= 0 {
		switch key {
		case "tab", "down":
			return a, a.form.focusNext()
		case "shift+tab", "up":
			return a, a.form.focusPrev()
		case "enter":
			return a.submitForm()
		case "esc":
			a.form.setFocus(-1)
			return a, nil
		default:
			a.form.errMsg = ""
			return a, a.form.updateFocused(msg)
		}
	}

	// Keys are ignored during the analysis pause
	if a.phase == phaseAnalyzing {
		return a, nil
	}

	switch key {
	case "?":
		a.showHelp = true
		return a, nil
	case "q":
		return a, tea.Quit
	case "t":
		return a.cycleTheme()
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIndexForKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	// Dashboard: re-enter the form
	if a.activeTab == 0 {
		switch key {
		case "enter", "i", "e", "n":
			a.phase = phaseInput
			return a, a.form.setFocus(fieldCash)
		}
		return a, nil
	}

	// History: refresh
	if a.activeTab == 1 && key == "r" && a.historyPath != "" {
		return a, loadHistoryCmd(a.historyPath)
	}

	// Settings: theme picker
	if a.activeTab == 2 {
		switch key {
		case "j", "down":
			if a.settingsCursor < len(theme.All)-1 {
				a.settingsCursor++
			}
		case "k", "up":
			if a.settingsCursor > 0 {
				a.settingsCursor--
			}
		case "enter":
			return a.applyTheme(theme.All[a.settingsCursor].Name)
		}
		return a, nil
	}

	return a, nil
}

// submitForm validates the current input and either surfaces the error
// inline or kicks off the analysis pause.
func (a App) submitForm() (tea.Model, tea.Cmd) {
	snap, err := a.validateForm()
	if err != nil {
		a.form.errMsg = err.Error()
		return a, nil
	}

	a.form.errMsg = ""
	a.form.setFocus(-1)
	a.phase = phaseAnalyzing
	return a, tea.Batch(
		a.spinner.Tick,
		analyzeCmd(snap, a.thresholds, a.delay, a.historyPath, a.cfg.History.MaxEntries),
	)
}

func (a App) cycleTheme() (tea.Model, tea.Cmd) {
	return a.applyTheme(theme.Next(theme.Active.Name))
}

// applyTheme switches the live palette and persists the preference.
// Save failures are ignored; the theme still applies for this session.
func (a App) applyTheme(name string) (tea.Model, tea.Cmd) {
	theme.SetActive(name)
	a.cfg.Appearance.Theme = name
	_ = config.Save(a.cfg)

	for i, t := range theme.All {
		if t.Name == name {
			a.settingsCursor = i
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.cfg = a.saveSetupConfig()
		a.thresholds = config.EffectiveThresholds(a.cfg)
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  runway needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	right := theme.Active.Name
	if a.historyPath == "" {
		right = "history off · " + right
	}
	statusBar := components.RenderStatusBar(w, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderDashboardTab(cw)
	case 1:
		content = a.renderHistoryTab(cw)
	case 2:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"d h x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"tab ↑ ↓", "Move between form fields"},
		{"Enter", "Run the check / Confirm"},
		{"Esc", "Leave the form"},
		{"t", "Cycle color theme"},
		{"r", "Reload history"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// truncateHeight cuts s down to at most h lines.
func truncateHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

// padHeight pads s with blank lines up to exactly h lines.
func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}
