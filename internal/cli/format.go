// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// currencySymbol is the prefix applied by FormatMoney. The config command
// swaps it at startup; everything else treats it as read-only.
var currencySymbol = "$"

// SetCurrencySymbol overrides the symbol used for money formatting.
func SetCurrencySymbol(sym string) {
	if sym != "" {
		currencySymbol = sym
	}
}

// FormatMoney formats a monetary amount, dropping precision as the
// value grows. e.g., 1234.5 -> "$1,235", 42.5 -> "$42.50"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	if amount >= 1000 {
		return currencySymbol + FormatNumber(int64(math.Round(amount)))
	}
	if amount >= 100 {
		return fmt.Sprintf("%s%.0f", currencySymbol, amount)
	}
	return fmt.Sprintf("%s%.2f", currencySymbol, amount)
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

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate formats a date for display, or "-" for the zero value.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// FormatMonth expands a "2006-01" month key to a readable label.
// Unparseable keys pass through untouched.
func FormatMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

// FormatDays renders a day count, flagging past-due values.
func FormatDays(days int) string {
	if days < 0 {
		return "overdue"
	}
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
