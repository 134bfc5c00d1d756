// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatValue formats a whole-dollar amount as "$1,234.00".
// Non-integers (fractions, NaN, infinities) are rejected with ok == false and
// callers are expected to render nothing.
func FormatValue(n float64) (string, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return "", false
	}

	// Like toFixed, magnitudes from 1e21 up keep their exponent form and get no
	// grouping.
	if math.Abs(n) >= 1e21 {
		return "$" + strconv.FormatFloat(n, 'g', -1, 64), true
	}

	// n is integral, so the big.Int conversion is exact.
	exact, _ := new(big.Float).SetFloat64(n).Int(nil)
	fixed := decimal.NewFromBigInt(exact, 0).StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}

	return "$" + sign + groupDigits(whole) + "." + frac, true
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

// groupDigits inserts a comma every three digits from the right of s.
func groupDigits(s string) string {
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
	return strconv.FormatFloat(f*100, 'f', 1, 64) + "%"
}
