package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlight/runway/internal/cli"
	"github.com/ledgerlight/runway/internal/store"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent financial checks",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := historyPath(cfg)
	if path == "" {
		fmt.Println("\n  History logging is disabled.")
		fmt.Println("  Enable it in the config file or run `runway setup`.")
		return nil
	}

	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = st.Close() }()

	items, err := st.Recent(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("\n  No checks recorded yet.")
		fmt.Println("  Run `runway check` or use the dashboard first.")
		return nil
	}

	symbol := cfg.General.Currency

	rows := make([][]string, 0, len(items))
	for _, h := range items {
		rows = append(rows, []string{
			h.TakenAt.Local().Format("Jan 02 2006 3:04 PM"),
			cli.FormatMoney(symbol, h.Snapshot.Cash),
			cli.FormatSignedMoney(symbol, h.BurnAmount),
			cli.FormatRunway(h.Runway),
			cli.BadgeText(h.CashLevel),
			cli.BadgeText(h.RiskLevel),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Recent Checks (%d)", len(items)),
		Headers: []string{"When", "Cash", "Burn", "Runway", "Cash Status", "Invoices"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
