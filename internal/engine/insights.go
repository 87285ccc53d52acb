package engine

import "github.com/ledgerlight/runway/internal/model"

// maxInsights caps the insights list. The current rules can fire at most
// three at once (runway rules are mutually exclusive, so are the invoice
// rules), but the cap stands on its own so the list stays bounded as
// rules are added.
const maxInsights = 4

// Insight messages. One string per rule plus the stable fallback.
const (
	msgRunwayCritical = "Runway under 3 months. Cut spend or raise cash urgently."
	msgRunwayWatch    = "Runway between 3 and 6 months. Start corrective planning now."
	msgNoBurn         = "No monthly cash burn. Income currently covers expenses."
	msgDeficit        = "Monthly deficit detected. Review recurring costs for savings."
	msgChaseOverdue   = "High overdue invoice exposure. Chase collections immediately."
	msgFollowUp       = "Some invoices are overdue. Send follow-up payment reminders."
	msgStable         = "Financial position looks stable. Keep monitoring monthly."
)

// insightRule pairs a predicate with the message it contributes. Rules are
// evaluated top to bottom against the already-classified result; every
// matching rule appends its message in order.
type insightRule struct {
	applies func(model.Result, Thresholds) bool
	message string
}

var insightRules = []insightRule{
	{
		applies: func(r model.Result, th Thresholds) bool {
			m, finite := r.Runway.Months()
			return finite && m < th.WatchMonths
		},
		message: msgRunwayCritical,
	},
	{
		applies: func(r model.Result, th Thresholds) bool {
			m, finite := r.Runway.Months()
			return finite && m >= th.WatchMonths && m < th.HealthyMonths
		},
		message: msgRunwayWatch,
	},
	{
		applies: func(r model.Result, _ Thresholds) bool {
			return r.Runway.Unbounded()
		},
		message: msgNoBurn,
	},
	{
		applies: func(r model.Result, _ Thresholds) bool {
			return r.Burn.Label == model.BurnDeficit
		},
		message: msgDeficit,
	},
	{
		applies: func(r model.Result, _ Thresholds) bool {
			return r.InvoiceRisk.Label == model.RiskHigh
		},
		message: msgChaseOverdue,
	},
	{
		applies: func(r model.Result, _ Thresholds) bool {
			return r.InvoiceRisk.Label == model.RiskMedium
		},
		message: msgFollowUp,
	},
}

// buildInsights runs the rule list and returns the collected messages,
// falling back to the single stable message when nothing fired.
func buildInsights(r model.Result, th Thresholds) []string {
	var out []string
	for _, rule := range insightRules {
		if rule.applies(r, th) {
			out = append(out, rule.message)
		}
		if len(out) == maxInsights {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, msgStable)
	}
	return out
}
