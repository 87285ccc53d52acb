// Package validate turns raw form input into a model.Snapshot, enforcing
// the engine's precondition: every field finite and non-negative. The
// engine itself has no failure path; all fallibility lives here.
package validate

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ledgerlight/runway/internal/model"
)

// Exactly two user-facing failures exist. When a submission has both a
// non-numeric field and a negative field, the non-numeric error wins.
var (
	ErrNonNumeric = errors.New("please enter valid numeric values in all fields")
	ErrNegative   = errors.New("values cannot be negative")
)

// Raw is an unvalidated four-field submission as the user typed it.
type Raw struct {
	Cash     string
	Income   string
	Expenses string
	Overdue  string
}

// Snapshot parses and validates raw input. The non-numeric check runs
// across all four fields before the negativity check so message priority
// holds regardless of field order.
func Snapshot(raw Raw) (model.Snapshot, error) {
	fields := [4]string{raw.Cash, raw.Income, raw.Expenses, raw.Overdue}
	var vals [4]float64

	for i, f := range fields {
		v, ok := parseAmount(f)
		if !ok {
			return model.Snapshot{}, ErrNonNumeric
		}
		vals[i] = v
	}

	for _, v := range vals {
		if v < 0 {
			return model.Snapshot{}, ErrNegative
		}
	}

	return model.Snapshot{
		Cash:     vals[0],
		Income:   vals[1],
		Expenses: vals[2],
		Overdue:  vals[3],
	}, nil
}

// parseAmount accepts plain decimal numbers, tolerating surrounding
// whitespace and thousands separators. NaN and infinities fail the
// finiteness requirement and count as non-numeric.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
