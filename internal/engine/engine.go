// Package engine derives financial health metrics from a validated
// snapshot. Every function here is pure: no I/O, no state, no failure path.
package engine

import "github.com/ledgerlight/runway/internal/model"

// Thresholds are the classification boundaries. All boundaries are
// inclusive on the safe side: a runway of exactly HealthyMonths is still
// Healthy, an overdue total of exactly MediumOverdue is still Medium.
type Thresholds struct {
	HealthyMonths float64 // runway at or above this is Healthy
	WatchMonths   float64 // runway at or above this (but below Healthy) is Watch
	MediumOverdue float64 // overdue above zero up to this is Medium; beyond is High
}

// DefaultThresholds are the stock boundaries: 6 and 3 months of runway,
// 2000 in overdue invoices.
var DefaultThresholds = Thresholds{
	HealthyMonths: 6,
	WatchMonths:   3,
	MediumOverdue: 2000,
}

// Compute derives all metrics from snap using the default thresholds.
func Compute(snap model.Snapshot) model.Result {
	return ComputeWith(snap, DefaultThresholds)
}

// ComputeWith derives all metrics from snap using explicit thresholds.
// The caller guarantees snap holds finite, non-negative values.
func ComputeWith(snap model.Snapshot, th Thresholds) model.Result {
	runway := runwayFor(snap)

	res := model.Result{
		Runway:      runway,
		CashHealth:  classifyCash(runway, th),
		Burn:        classifyBurn(snap),
		InvoiceRisk: classifyRisk(snap.Overdue, th),
	}
	res.Insights = buildInsights(res, th)
	return res
}

// runwayFor computes months of cash remaining. A burn rate of zero or
// below means income covers expenses and the runway is unbounded; the
// division is never attempted in that case.
func runwayFor(snap model.Snapshot) model.Runway {
	burnRate := snap.Expenses - snap.Income
	if burnRate <= 0 {
		return model.UnboundedRunway()
	}
	return model.FiniteRunway(snap.Cash / burnRate)
}

func classifyCash(r model.Runway, th Thresholds) model.Status {
	months, finite := r.Months()
	switch {
	case !finite, months >= th.HealthyMonths:
		return model.Status{Label: model.CashHealthy, Level: model.LevelOK}
	case months >= th.WatchMonths:
		return model.Status{Label: model.CashWatch, Level: model.LevelWarn}
	default:
		return model.Status{Label: model.CashCritical, Level: model.LevelBad}
	}
}

func classifyBurn(snap model.Snapshot) model.Burn {
	diff := snap.Income - snap.Expenses
	b := model.Burn{Amount: diff}
	if diff >= 0 {
		b.Status = model.Status{Label: model.BurnSurplus, Level: model.LevelOK}
	} else {
		b.Status = model.Status{Label: model.BurnDeficit, Level: model.LevelBad}
	}
	return b
}

func classifyRisk(overdue float64, th Thresholds) model.Status {
	switch {
	case overdue <= 0:
		return model.Status{Label: model.RiskLow, Level: model.LevelOK}
	case overdue <= th.MediumOverdue:
		return model.Status{Label: model.RiskMedium, Level: model.LevelWarn}
	default:
		return model.Status{Label: model.RiskHigh, Level: model.LevelBad}
	}
}
