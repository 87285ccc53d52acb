// Package cmd implements the runway CLI commands.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ledgerlight/runway/internal/config"
	"github.com/ledgerlight/runway/internal/tui"
)

var (
	flagNoHistory bool
	flagTheme     string
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Cash runway dashboard",
	Long:  "Check your cash runway, monthly burn, and invoice risk from the terminal.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Don't record checks to the local history log")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme for this run (overrides config)")
}

// loadConfig applies the --theme override on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	return cfg, nil
}

// historyPath resolves the assessment log location, or "" when logging
// is turned off by flag or config.
func historyPath(cfg config.Config) string {
	if flagNoHistory || !cfg.History.Enabled {
		return ""
	}
	return config.HistoryPath()
}

func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app := tui.NewApp(cfg, historyPath(cfg))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
