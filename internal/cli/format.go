// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fitlog/internal/model"
)

// FormatAmount formats a quantity without trailing zeros.
// e.g., 256.0 -> "256", 12.5 -> "12.5"
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatQuantity formats a quantity with its type's unit.
// e.g., (water, 256) -> "256 ml"
func FormatQuantity(t model.EntryType, v float64) string {
	unit := t.Unit()
	if unit == "" {
		return FormatAmount(v)
	}
	return FormatAmount(v) + " " + unit
}

// FormatEntryValue renders the value column for an entry listing.
func FormatEntryValue(e model.Entry) string {
	if e.Type == model.TypeMood {
		return string(e.Mood)
	}
	return FormatQuantity(e.Type, e.Quantity)
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime formats a timestamp as YYYY-MM-DD HH:MM.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
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
