package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrencyBRL formats an amount as Brazilian Real, rounded half-up to cents.
// Example: 1234.5 -> "R$ 1.234,50"
func FormatCurrencyBRL(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	formatted := amount.Abs().StringFixed(2)

	parts := strings.SplitN(formatted, ".", 2)
	integerPart, decimalPart := parts[0], parts[1]

	// thousands separator
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	out := "R$ " + strings.Join(groups, ".") + "," + decimalPart
	if neg && formatted != "0.00" {
		return "-" + out
	}
	return out
}
