package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/spendit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns the money tone for the share of the starting budget
// spent. Anything past the whole budget is a deficit.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct > 1:
		return string(t.Deficit)
	case pct >= 0.75:
		return string(t.Spent)
	case pct >= 0.5:
		return string(t.Caution)
	default:
		return string(t.Surplus)
	}
}

// SpendBar renders a labeled bar for the share of the budget spent.
// Shares above 100% are drawn full and reported as-is.
func SpendBar(label string, pct float64, barWidth int) string {
	t := theme.Active

	if math.IsNaN(pct) || pct < 0 {
		pct = 0
	}
	fill := math.Min(pct, 1)

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// Sparkline renders a unicode sparkline from values. Non-positive and NaN
// values render as the lowest block.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 || math.IsInf(peak, 1) {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := 0
		if v > 0 {
			idx = int(math.Min(v/peak, 1) * float64(len(blocks)-1))
		}
		buf.WriteRune(blocks[idx])
	}
	return style.Render(buf.String())
}
