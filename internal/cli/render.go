package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors for non-interactive output (Flexoki Dark).
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	costStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Column is one table column. Right-aligned columns suit money and shares.
type Column struct {
	Header string
	Right  bool
}

// Table is a bordered table for CLI output. A nil row renders as a divider.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// RenderTitle renders a title box, with an optional muted note under the title.
func RenderTitle(title, note string) string {
	body := titleStyle.Render(title)
	if note != "" {
		body += "\n" + mutedStyle.Render(note)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}

// RenderTable renders t. Cells are measured in terminal columns, so item names
// with emoji or other wide runes keep the borders aligned.
func RenderTable(t Table) string {
	if len(t.Columns) == 0 {
		return ""
	}
	widths := t.widths()

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}

	b.WriteString(rule("╭", "┬", "╮", widths))
	b.WriteString(t.line(headers, widths, headerStyle))
	b.WriteString(rule("├", "┼", "┤", widths))
	for _, row := range t.Rows {
		if row == nil {
			b.WriteString(rule("├", "┼", "┤", widths))
			continue
		}
		b.WriteString(t.line(row, widths, valueStyle))
	}
	b.WriteString(rule("╰", "┴", "╯", widths))
	return b.String()
}

func (t Table) widths() []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c.Header)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

// line renders one row of cells; missing trailing cells are left blank.
func (t Table) line(cells []string, widths []int, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		gap := strings.Repeat(" ", w-lipgloss.Width(cell))
		if t.Columns[i].Right {
			cell = gap + cell
		} else {
			cell += gap
		}
		b.WriteString(style.Render(" " + cell + " "))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")
	return b.String()
}

// rule renders a horizontal border with the given corner and junction runes.
func rule(left, mid, right string, widths []int) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	return dimStyle.Render(left+strings.Join(segs, mid)+right) + "\n"
}

// RenderHorizontalBar renders a labelled horizontal bar scaled against maxValue.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || value <= 0 {
		return fmt.Sprintf("  %s", label)
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := strings.Repeat("█", barLen)
	return fmt.Sprintf("  %s %s", costStyle.Render(bar), mutedStyle.Render(label))
}

// RenderHeadline renders a muted caption above an emphasized value.
func RenderHeadline(caption, value string) string {
	return "  " + mutedStyle.Render(caption) + "\n  " + titleStyle.Render(value) + "\n"
}

// RenderWarning renders a single warning line.
func RenderWarning(msg string) string {
	return "  " + warnStyle.Render(msg) + "\n"
}
