// Package store provides the SQLite-backed assessment history log.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledgerlight/runway/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a SQLite-backed log of past assessments.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAssessment appends one evaluation to the log and returns its id.
// An unbounded runway is stored as NULL months.
func (s *Store) SaveAssessment(a model.Assessment) (int64, error) {
	var months sql.NullFloat64
	if m, finite := a.Runway.Months(); finite {
		months = sql.NullFloat64{Float64: m, Valid: true}
	}

	takenAt := a.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now()
	}

	res, err := s.db.Exec(`INSERT INTO assessments
		(taken_at, cash, income, expenses, overdue, runway_months,
		 cash_level, burn_level, risk_level, burn_amount, insights)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		takenAt.UTC().Format(time.RFC3339),
		a.Snapshot.Cash,
		a.Snapshot.Income,
		a.Snapshot.Expenses,
		a.Snapshot.Overdue,
		months,
		string(a.CashLevel),
		string(a.BurnLevel),
		string(a.RiskLevel),
		a.BurnAmount,
		strings.Join(a.Insights, "\n"),
	)
	if err != nil {
		return 0, fmt.Errorf("saving assessment: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the most recent assessments, newest first.
func (s *Store) Recent(limit int) ([]model.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`SELECT id, taken_at, cash, income, expenses, overdue,
		runway_months, cash_level, burn_level, risk_level, burn_amount, insights
		FROM assessments ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Assessment
	for rows.Next() {
		var (
			a        model.Assessment
			takenAt  string
			months   sql.NullFloat64
			cash     string
			burn     string
			risk     string
			insights string
		)
		if err := rows.Scan(&a.ID, &takenAt,
			&a.Snapshot.Cash, &a.Snapshot.Income, &a.Snapshot.Expenses, &a.Snapshot.Overdue,
			&months, &cash, &burn, &risk, &a.BurnAmount, &insights); err != nil {
			return nil, err
		}

		if ts, err := time.Parse(time.RFC3339, takenAt); err == nil {
			a.TakenAt = ts
		}
		if months.Valid {
			a.Runway = model.FiniteRunway(months.Float64)
		} else {
			a.Runway = model.UnboundedRunway()
		}
		a.CashLevel = model.Level(cash)
		a.BurnLevel = model.Level(burn)
		a.RiskLevel = model.Level(risk)
		if insights != "" {
			a.Insights = strings.Split(insights, "\n")
		}

		out = append(out, a)
	}
	return out, rows.Err()
}

// Prune deletes everything beyond the newest max entries.
func (s *Store) Prune(max int) error {
	if max <= 0 {
		return nil
	}
	_, err := s.db.Exec(`DELETE FROM assessments WHERE id NOT IN
		(SELECT id FROM assessments ORDER BY id DESC LIMIT ?)`, max)
	return err
}

// Count returns the number of stored assessments.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM assessments").Scan(&n)
	return n, err
}
