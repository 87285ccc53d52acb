package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlight/runway/internal/config"
	"github.com/ledgerlight/runway/internal/engine"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [History]")
	fmt.Printf("    Enabled:     %v\n", cfg.History.Enabled)
	fmt.Printf("    Max entries: %d\n", cfg.History.MaxEntries)
	if cfg.History.Enabled {
		fmt.Printf("    Database:    %s\n", config.HistoryPath())
	}
	fmt.Println()

	th := config.EffectiveThresholds(cfg)
	defaults := th == engine.DefaultThresholds

	fmt.Println("  [Thresholds]")
	fmt.Printf("    Healthy runway:   >= %.1f months\n", th.HealthyMonths)
	fmt.Printf("    Watch runway:     >= %.1f months\n", th.WatchMonths)
	fmt.Printf("    Medium overdue:   <= %.2f\n", th.MediumOverdue)
	if defaults {
		fmt.Println("    (engine defaults)")
	} else {
		fmt.Println("    (overridden in config)")
	}

	return nil
}
