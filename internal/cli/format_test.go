package cli

import (
	"testing"

	"github.com/ledgerlight/runway/internal/model"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "$0.00"},
		{42.5, "$42.50"},
		{99.999, "$100.00"},
		{100, "$100"},
		{999.4, "$999"},
		{1000, "$1,000"},
		{1234567.89, "$1,234,568"},
		{-2000, "-$2,000"},
		{-5.25, "-$5.25"},
	}

	for _, tc := range cases {
		if got := FormatMoney("$", tc.v); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("$", 2000); got != "+$2,000" {
		t.Errorf("FormatSignedMoney(2000) = %q, want +$2,000", got)
	}
	if got := FormatSignedMoney("$", -2000); got != "-$2,000" {
		t.Errorf("FormatSignedMoney(-2000) = %q, want -$2,000", got)
	}
	if got := FormatSignedMoney("€", 0); got != "+€0.00" {
		t.Errorf("FormatSignedMoney(0) = %q, want +€0.00", got)
	}
}

func TestFormatRunway(t *testing.T) {
	if got := FormatRunway(model.UnboundedRunway()); got != "∞" {
		t.Errorf("unbounded runway = %q, want ∞", got)
	}
	if got := FormatRunway(model.FiniteRunway(3)); got != "3.0 mo" {
		t.Errorf("runway(3) = %q, want 3.0 mo", got)
	}
	if got := FormatRunway(model.FiniteRunway(1.25)); got != "1.2 mo" {
		t.Errorf("runway(1.25) = %q, want 1.2 mo", got)
	}
	if got := FormatRunway(model.FiniteRunway(250)); got != "250 mo" {
		t.Errorf("runway(250) = %q, want 250 mo", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestBadgeMappingTotal(t *testing.T) {
	// Every level must have a badge and a color; no default case exists
	// downstream, so a missing entry would render empty.
	for _, l := range []model.Level{model.LevelOK, model.LevelWarn, model.LevelBad} {
		if BadgeText(l) == "" {
			t.Errorf("level %q has no badge text", l)
		}
		if LevelColor(l) == "" {
			t.Errorf("level %q has no color", l)
		}
	}
}
