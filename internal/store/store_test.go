package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ledgerlight/runway/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndRecentRoundTrip(t *testing.T) {
	s := openTestStore(t)

	a := model.Assessment{
		TakenAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Snapshot:   model.Snapshot{Cash: 6000, Income: 4000, Expenses: 6000, Overdue: 1500},
		Runway:     model.FiniteRunway(3),
		CashLevel:  model.LevelWarn,
		BurnLevel:  model.LevelBad,
		RiskLevel:  model.LevelWarn,
		BurnAmount: -2000,
		Insights:   []string{"first insight", "second insight"},
	}

	id, err := s.SaveAssessment(a)
	if err != nil {
		t.Fatalf("SaveAssessment: %v", err)
	}
	if id == 0 {
		t.Fatal("SaveAssessment returned id 0")
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Recent returned %d rows, want 1", len(got))
	}

	r := got[0]
	if r.Snapshot != a.Snapshot {
		t.Fatalf("snapshot = %+v, want %+v", r.Snapshot, a.Snapshot)
	}
	months, finite := r.Runway.Months()
	if !finite || months != 3 {
		t.Fatalf("runway = (%v, %v), want (3, true)", months, finite)
	}
	if r.CashLevel != model.LevelWarn || r.BurnLevel != model.LevelBad || r.RiskLevel != model.LevelWarn {
		t.Fatalf("levels = %s/%s/%s", r.CashLevel, r.BurnLevel, r.RiskLevel)
	}
	if r.BurnAmount != -2000 {
		t.Fatalf("burn amount = %v, want -2000", r.BurnAmount)
	}
	if len(r.Insights) != 2 || r.Insights[0] != "first insight" {
		t.Fatalf("insights = %q", r.Insights)
	}
	if !r.TakenAt.Equal(a.TakenAt) {
		t.Fatalf("taken at = %v, want %v", r.TakenAt, a.TakenAt)
	}
}

func TestUnboundedRunwayStoredAsNull(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SaveAssessment(model.Assessment{
		Snapshot:  model.Snapshot{Cash: 1000, Income: 500, Expenses: 500},
		Runway:    model.UnboundedRunway(),
		CashLevel: model.LevelOK,
		BurnLevel: model.LevelOK,
		RiskLevel: model.LevelOK,
		Insights:  []string{"x"},
	})
	if err != nil {
		t.Fatalf("SaveAssessment: %v", err)
	}

	got, err := s.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Recent returned %d rows, want 1", len(got))
	}
	if !got[0].Runway.Unbounded() {
		t.Fatal("runway came back bounded, want unbounded")
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.SaveAssessment(model.Assessment{
			Snapshot:  model.Snapshot{Cash: float64(i)},
			Runway:    model.UnboundedRunway(),
			CashLevel: model.LevelOK,
			BurnLevel: model.LevelOK,
			RiskLevel: model.LevelOK,
			Insights:  []string{"x"},
		})
		if err != nil {
			t.Fatalf("SaveAssessment #%d: %v", i, err)
		}
	}

	got, err := s.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d rows, want 3", len(got))
	}
	// Newest first: cash values 4, 3, 2
	for i, want := range []float64{4, 3, 2} {
		if got[i].Snapshot.Cash != want {
			t.Fatalf("row %d cash = %v, want %v", i, got[i].Snapshot.Cash, want)
		}
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 10; i++ {
		_, err := s.SaveAssessment(model.Assessment{
			Runway:    model.UnboundedRunway(),
			CashLevel: model.LevelOK,
			BurnLevel: model.LevelOK,
			RiskLevel: model.LevelOK,
			Insights:  []string{"x"},
		})
		if err != nil {
			t.Fatalf("SaveAssessment #%d: %v", i, err)
		}
	}

	if err := s.Prune(4); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 4 {
		t.Fatalf("count after prune = %d, want 4", n)
	}
}
