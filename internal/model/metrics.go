package model

// Level is the visual severity of a status. Exactly three values exist, so
// presentation layers can map them totally with no default case.
type Level string

const (
	LevelOK   Level = "ok"
	LevelWarn Level = "warn"
	LevelBad  Level = "bad"
)

// Cash health labels.
const (
	CashHealthy  = "Healthy"
	CashWatch    = "Watch"
	CashCritical = "Critical"
)

// Burn labels.
const (
	BurnSurplus = "Surplus"
	BurnDeficit = "Deficit"
)

// Invoice risk labels.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Runway is months of cash remaining at the current burn rate. It is a
// tagged value rather than a float with an infinity sentinel: when income
// covers expenses there is no depletion and the runway is unbounded.
type Runway struct {
	months    float64
	unbounded bool
}

// FiniteRunway returns a bounded runway of the given months.
func FiniteRunway(months float64) Runway {
	return Runway{months: months}
}

// UnboundedRunway returns the no-depletion runway.
func UnboundedRunway() Runway {
	return Runway{unbounded: true}
}

// Unbounded reports whether the runway never depletes.
func (r Runway) Unbounded() bool { return r.unbounded }

// Months returns the finite month count and true, or 0 and false when the
// runway is unbounded.
func (r Runway) Months() (float64, bool) {
	if r.unbounded {
		return 0, false
	}
	return r.months, true
}

// Status pairs a human-readable label with its severity level.
type Status struct {
	Label string
	Level Level
}

// Burn is the monthly surplus/deficit classification. Amount is the signed
// income − expenses figure; the sign carries meaning downstream, display
// formatting negates it for presentation.
type Burn struct {
	Status
	Amount float64
}

// Result is everything derived from one snapshot. Freshly computed per
// call; it has no identity and no mutable state.
type Result struct {
	Runway      Runway
	CashHealth  Status
	Burn        Burn
	InvoiceRisk Status
	Insights    []string // ordered, 1 to 4 entries, never empty
}
