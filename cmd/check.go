package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerlight/runway/internal/cli"
	"github.com/ledgerlight/runway/internal/config"
	"github.com/ledgerlight/runway/internal/engine"
	"github.com/ledgerlight/runway/internal/model"
	"github.com/ledgerlight/runway/internal/store"
	"github.com/ledgerlight/runway/internal/validate"
)

var (
	flagCash     string
	flagIncome   string
	flagExpenses string
	flagOverdue  string
	flagJSON     bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a one-shot financial check",
	Long: `Run a financial check without the interactive dashboard.

Example:
  runway check --cash 10000 --income 5000 --expenses 7000 --overdue 1500`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagCash, "cash", "0", "Cash on hand")
	checkCmd.Flags().StringVar(&flagIncome, "income", "0", "Monthly income")
	checkCmd.Flags().StringVar(&flagExpenses, "expenses", "0", "Monthly expenses")
	checkCmd.Flags().StringVar(&flagOverdue, "overdue", "0", "Total overdue invoice amount")
	checkCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit machine-readable JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snap, err := validate.Snapshot(validate.Raw{
		Cash:     flagCash,
		Income:   flagIncome,
		Expenses: flagExpenses,
		Overdue:  flagOverdue,
	})
	if err != nil {
		return err
	}

	res := engine.ComputeWith(snap, config.EffectiveThresholds(cfg))

	// Record to history (best-effort; the check result still prints)
	if path := historyPath(cfg); path != "" {
		if err := record(path, snap, res, cfg.History.MaxEntries); err != nil {
			fmt.Fprintf(os.Stderr, "  warning: could not record to history: %s\n", err)
		}
	}

	if flagJSON {
		return printJSON(snap, res)
	}

	printCheck(cfg, snap, res)
	return nil
}

func record(path string, snap model.Snapshot, res model.Result, maxEntries int) error {
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

func printCheck(cfg config.Config, snap model.Snapshot, res model.Result) {
	symbol := cfg.General.Currency

	burnAmount := res.Burn.Amount
	if burnAmount < 0 {
		burnAmount = -burnAmount
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL CHECK"))
	fmt.Println()

	rows := [][]string{
		{"Cash on Hand", cli.FormatMoney(symbol, snap.Cash), ""},
		{"---"},
		{"Cash Runway", cli.FormatRunway(res.Runway), cli.BadgeText(res.CashHealth.Level)},
		{"Monthly Burn", fmt.Sprintf("%s (%s)", res.Burn.Label, cli.FormatMoney(symbol, burnAmount)), cli.BadgeText(res.Burn.Level)},
		{"Invoice Risk", fmt.Sprintf("%s (%s)", res.InvoiceRisk.Label, cli.FormatMoney(symbol, snap.Overdue)), cli.BadgeText(res.InvoiceRisk.Level)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value", "Status"},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Print(cli.RenderList("Insights", res.Insights))
	fmt.Println()
}

// checkJSON is the machine-readable shape of one check.
type checkJSON struct {
	Cash     float64 `json:"cash"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Overdue  float64 `json:"overdue"`

	RunwayMonths    *float64 `json:"runway_months"` // null when unbounded
	RunwayUnbounded bool     `json:"runway_unbounded"`

	CashHealth  statusJSON `json:"cash_health"`
	Burn        burnJSON   `json:"burn"`
	InvoiceRisk statusJSON `json:"invoice_risk"`

	Insights []string `json:"insights"`
}

type statusJSON struct {
	Label string `json:"label"`
	Level string `json:"level"`
}

type burnJSON struct {
	statusJSON
	Amount float64 `json:"amount"`
}

func printJSON(snap model.Snapshot, res model.Result) error {
	out := checkJSON{
		Cash:     snap.Cash,
		Income:   snap.Income,
		Expenses: snap.Expenses,
		Overdue:  snap.Overdue,
		CashHealth: statusJSON{
			Label: res.CashHealth.Label,
			Level: string(res.CashHealth.Level),
		},
		Burn: burnJSON{
			statusJSON: statusJSON{Label: res.Burn.Label, Level: string(res.Burn.Level)},
			Amount:     res.Burn.Amount,
		},
		InvoiceRisk: statusJSON{
			Label: res.InvoiceRisk.Label,
			Level: string(res.InvoiceRisk.Level),
		},
		Insights: res.Insights,
	}

	if months, finite := res.Runway.Months(); finite {
		out.RunwayMonths = &months
	} else {
		out.RunwayUnbounded = true
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
