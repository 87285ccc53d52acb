package validate

import (
	"errors"
	"testing"

	"github.com/ledgerlight/runway/internal/model"
)

func TestSnapshotValid(t *testing.T) {
	cases := []struct {
		name string
		raw  Raw
		want model.Snapshot
	}{
		{
			name: "plain numbers",
			raw:  Raw{Cash: "10000", Income: "5000", Expenses: "4200", Overdue: "0"},
			want: model.Snapshot{Cash: 10000, Income: 5000, Expenses: 4200, Overdue: 0},
		},
		{
			name: "decimals and whitespace",
			raw:  Raw{Cash: " 1234.56 ", Income: "0.01", Expenses: "99.9", Overdue: "2000.01"},
			want: model.Snapshot{Cash: 1234.56, Income: 0.01, Expenses: 99.9, Overdue: 2000.01},
		},
		{
			name: "thousands separators",
			raw:  Raw{Cash: "1,000,000", Income: "12,500", Expenses: "9,000", Overdue: "1,500"},
			want: model.Snapshot{Cash: 1000000, Income: 12500, Expenses: 9000, Overdue: 1500},
		},
		{
			name: "all zeros",
			raw:  Raw{Cash: "0", Income: "0", Expenses: "0", Overdue: "0"},
			want: model.Snapshot{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Snapshot(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("snapshot = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSnapshotNonNumeric(t *testing.T) {
	cases := []struct {
		name string
		raw  Raw
	}{
		{"letters", Raw{Cash: "abc", Income: "1", Expenses: "1", Overdue: "1"}},
		{"empty field", Raw{Cash: "100", Income: "", Expenses: "1", Overdue: "1"}},
		{"trailing junk", Raw{Cash: "100", Income: "50x", Expenses: "1", Overdue: "1"}},
		{"NaN", Raw{Cash: "NaN", Income: "1", Expenses: "1", Overdue: "1"}},
		{"infinity", Raw{Cash: "1", Income: "1", Expenses: "Inf", Overdue: "1"}},
		{"lone separator", Raw{Cash: ",", Income: "1", Expenses: "1", Overdue: "1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Snapshot(tc.raw)
			if !errors.Is(err, ErrNonNumeric) {
				t.Fatalf("error = %v, want ErrNonNumeric", err)
			}
		})
	}
}

func TestSnapshotNegative(t *testing.T) {
	_, err := Snapshot(Raw{Cash: "100", Income: "-5", Expenses: "1", Overdue: "0"})
	if !errors.Is(err, ErrNegative) {
		t.Fatalf("error = %v, want ErrNegative", err)
	}
}

func TestNonNumericWinsOverNegative(t *testing.T) {
	// One field unparsable, another negative: non-numeric takes priority
	// even though the negative field appears first.
	_, err := Snapshot(Raw{Cash: "-100", Income: "1", Expenses: "1", Overdue: "oops"})
	if !errors.Is(err, ErrNonNumeric) {
		t.Fatalf("error = %v, want ErrNonNumeric to win over ErrNegative", err)
	}
}
