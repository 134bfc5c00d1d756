package budget

import "math"

// GoodMessage is the break-even text when available cash never runs out.
const GoodMessage = "You're good"

// BreakEven describes how many months of savings it takes to climb out of a
// negative available balance.
//
// A zero savings rate with negative cash gives -Inf months, which is not treated
// as a special case and renders as "about Infinity months".
func BreakEven(available, monthlySavings float64) string {
	months := available / monthlySavings
	if months >= 0 || math.IsNaN(months) || math.IsInf(months, 1) {
		return GoodMessage
	}
	return "about " + FormatNumber(math.Round(math.Abs(months))) + " months"
}
