// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ledgerlight/runway/internal/model"
)

// FormatMoney formats an amount with the given currency symbol, scaling
// precision down as the value grows.
// e.g., 1234567.89 -> "$1,234,568", 42.5 -> "$42.50"
func FormatMoney(symbol string, v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	var s string
	switch {
	case v >= 1000:
		s = symbol + FormatNumber(int64(math.Round(v)))
	case v >= 100:
		s = fmt.Sprintf("%s%.0f", symbol, v)
	default:
		s = fmt.Sprintf("%s%.2f", symbol, v)
	}

	if neg {
		return "-" + s
	}
	return s
}

// FormatSignedMoney is FormatMoney with an explicit leading sign on
// non-negative values, for deltas and burn amounts.
func FormatSignedMoney(symbol string, v float64) string {
	if v < 0 {
		return FormatMoney(symbol, v)
	}
	return "+" + FormatMoney(symbol, v)
}

// FormatRunway renders a runway as a month count, or the infinity glyph
// when the runway never depletes.
// e.g., 4.5 months -> "4.5 mo", unbounded -> "∞"
func FormatRunway(r model.Runway) string {
	months, finite := r.Months()
	if !finite {
		return "∞"
	}
	if months >= 100 {
		return fmt.Sprintf("%.0f mo", months)
	}
	return fmt.Sprintf("%.1f mo", months)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
