// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

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

// FormatMoney formats a whole-unit amount with separators and a currency
// suffix. e.g., 15000, "₽" -> "15,000₽"
func FormatMoney(amount int64, currency string) string {
	return FormatNumber(amount) + currency
}

// FormatProgress formats a progress/cost pair. e.g., "3,000/15,000"
func FormatProgress(progress, cost int64) string {
	return FormatNumber(progress) + "/" + FormatNumber(cost)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatWeight formats a category weight (0-100) without trailing zeros.
// e.g., 40 -> "40%", 12.5 -> "12.5%"
func FormatWeight(percent float64) string {
	s := strconv.FormatFloat(percent, 'f', -1, 64)
	return s + "%"
}
