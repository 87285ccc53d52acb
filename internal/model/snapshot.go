// Package model defines the financial data types shared across runway.
package model

import "time"

// Snapshot is one validated financial picture: the four numbers the user
// submits. All fields are finite and non-negative by the time a Snapshot
// exists; the validate package is the only constructor path for user input.
type Snapshot struct {
	Cash     float64 // cash on hand
	Income   float64 // monthly income
	Expenses float64 // monthly expenses
	Overdue  float64 // total overdue invoice amount
}

// Assessment is a stored evaluation: the snapshot, when it was taken, and
// the headline numbers derived from it. This is what the history log keeps.
type Assessment struct {
	ID         int64
	TakenAt    time.Time
	Snapshot   Snapshot
	Runway     Runway
	CashLevel  Level
	BurnLevel  Level
	RiskLevel  Level
	BurnAmount float64
	Insights   []string
}
