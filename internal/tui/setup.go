package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/ledgerlight/runway/internal/config"
	"github.com/ledgerlight/runway/internal/tui/theme"
)

// setupValues collects the first-run form answers.
type setupValues struct {
	currency string
	theme    string
	history  bool
}

// newSetupForm builds the first-run wizard shown when no config exists.
func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.currency = cfg.General.Currency
	vals.theme = cfg.Appearance.Theme
	vals.history = cfg.History.Enabled

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency symbol").
				Description("Used when formatting amounts.").
				Options(
					huh.NewOption("$ — dollar", "$"),
					huh.NewOption("€ — euro", "€"),
					huh.NewOption("£ — pound", "£"),
					huh.NewOption("¥ — yen", "¥"),
				).
				Value(&vals.currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
			huh.NewConfirm().
				Title("Keep a local history of checks?").
				Description("Stored in a private SQLite file, never sent anywhere.").
				Value(&vals.history),
		).Title("Welcome to runway!"),
	)
}

// saveSetupConfig persists the wizard answers and returns the new config.
// Save failures are tolerated; the settings still apply for this session.
func (a *App) saveSetupConfig() config.Config {
	cfg := a.cfg
	if a.setupVals == nil {
		return cfg
	}
	if a.setupVals.currency != "" {
		cfg.General.Currency = a.setupVals.currency
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(cfg.Appearance.Theme)
	}
	cfg.History.Enabled = a.setupVals.history
	if !cfg.History.Enabled {
		a.historyPath = ""
	}

	_ = config.Save(cfg)
	return cfg
}
