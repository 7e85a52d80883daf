// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxChips is how many quantity chips are drawn before collapsing to "+N".
const MaxChips = 10

// FormatPoints formats a point amount with its unit.
// e.g., 1 -> "1 pt", 54 -> "54 pts", -20 -> "-20 pts"
func FormatPoints(n int) string {
	if n == 1 || n == -1 {
		return strconv.Itoa(n) + " pt"
	}
	return FormatNumber(int64(n)) + " pts"
}

// FormatBalance formats a remaining balance, spelling out overspend.
func FormatBalance(remaining int) string {
	if remaining < 0 {
		return fmt.Sprintf("over budget by %s", FormatPoints(-remaining))
	}
	return FormatPoints(remaining) + " left"
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

// FormatDiscount formats a discount tier, "-" for none.
func FormatDiscount(pct int) string {
	if pct == 0 {
		return "-"
	}
	return fmt.Sprintf("−%d%%", pct)
}

// FormatChips draws one chip per copy up to MaxChips, then "+N".
// e.g., 3 -> "■■■", 12 -> "■■■■■■■■■■ +2"
func FormatChips(quantity int) string {
	if quantity <= 0 {
		return ""
	}
	shown := min(quantity, MaxChips)
	s := strings.Repeat("■", shown)
	if quantity > MaxChips {
		s += fmt.Sprintf(" +%d", quantity-MaxChips)
	}
	return s
}

// Truncate shortens s to n runes, ending with "…" when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
