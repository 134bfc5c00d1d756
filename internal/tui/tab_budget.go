package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/theirongolddev/spendit/internal/budget"
	"github.com/theirongolddev/spendit/internal/cli"
	"github.com/theirongolddev/spendit/internal/tui/components"
	"github.com/theirongolddev/spendit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Fixed form fields. Expense fields follow, one per expense, at
// fieldFirstExpense+i.
const (
	fieldCash = iota
	fieldSavings
	fieldDraftItem
	fieldDraftInvested
	fieldFirstExpense
)

// formState tracks the budget tab: which field the cursor is on and, while
// editing, the text input bound to it.
type formState struct {
	cursor  int
	editing bool
	input   textinput.Model

	// draftInvestedText is what was typed into the draft's invested field; the
	// tracker only keeps its parsed integer.
	draftInvestedText string
}

func newFormState(tr *budget.Tracker) formState {
	return formState{draftInvestedText: budget.FormatNumber(tr.Draft().Invested)}
}

func (f formState) onDraft() bool {
	return f.cursor == fieldDraftItem || f.cursor == fieldDraftInvested
}

func (a App) fieldCount() int {
	return fieldFirstExpense + len(a.tracker.Expenses())
}

func isNumericField(field int) bool {
	return field != fieldDraftItem
}

// fieldText returns the current display text of a field.
func (a App) fieldText(field int) string {
	switch field {
	case fieldCash:
		return a.tracker.Cash().String()
	case fieldSavings:
		return a.tracker.MonthlySavings().String()
	case fieldDraftItem:
		return a.tracker.Draft().Item
	case fieldDraftInvested:
		return a.form.draftInvestedText
	}
	expenses := a.tracker.Expenses()
	if i := field - fieldFirstExpense; i >= 0 && i < len(expenses) {
		return expenses[i].Invested.String()
	}
	return ""
}

// applyField routes an edited value to the tracker handler for field.
func (a *App) applyField(field int, value string) {
	switch field {
	case fieldCash:
		a.tracker.SetStartingCash(value)
	case fieldSavings:
		a.tracker.SetMonthlySavings(value)
	case fieldDraftItem:
		a.tracker.SetDraftItem(value)
	case fieldDraftInvested:
		a.form.draftInvestedText = value
		a.tracker.SetDraftInvested(value)
	default:
		expenses := a.tracker.Expenses()
		i := field - fieldFirstExpense
		if i < 0 || i >= len(expenses) {
			return
		}
		if err := a.tracker.UpdateExpense(expenses[i].Item, budget.FieldInvested, value); err != nil {
			log.Printf("tui: updating expense %q: %v", expenses[i].Item, err)
		}
	}
}

func (a App) formStartEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 30
	switch {
	case a.form.cursor == fieldDraftItem:
		ti.Placeholder = "Item"
	case a.form.cursor == fieldDraftInvested:
		ti.Placeholder = "Invested"
	}
	ti.SetValue(a.fieldText(a.form.cursor))
	ti.CursorEnd()
	ti.Focus()

	a.form.input = ti
	a.form.editing = true
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if a.form.onDraft() {
			a.tracker.SpendIt()
			return a, nil
		}
		a.form.editing = false
		return a, nil
	case "esc":
		a.form.editing = false
		return a, nil
	case "tab", "down":
		a.form.cursor = (a.form.cursor + 1) % a.fieldCount()
		return a.formStartEdit()
	case "shift+tab", "up":
		a.form.cursor = (a.form.cursor - 1 + a.fieldCount()) % a.fieldCount()
		return a.formStartEdit()
	}

	if isNumericField(a.form.cursor) && msg.Type == tea.KeyRunes && !numericRunes(msg.Runes) {
		return a, nil
	}

	before := a.form.input.Value()
	var cmd tea.Cmd
	a.form.input, cmd = a.form.input.Update(msg)
	if after := a.form.input.Value(); after != before {
		a.applyField(a.form.cursor, after)
	}
	return a, cmd
}

// numericRunes reports whether every rune could appear in a number field.
func numericRunes(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune("0123456789.-+eE", r) {
			return false
		}
	}
	return true
}

func (a App) updateFormNav(key string) (tea.Model, tea.Cmd, bool) {
	n := a.fieldCount()
	switch key {
	case "j", "down", "tab":
		if a.form.cursor < n-1 {
			a.form.cursor++
		}
		return a, nil, true
	case "k", "up", "shift+tab":
		if a.form.cursor > 0 {
			a.form.cursor--
		}
		return a, nil, true
	case "g":
		a.form.cursor = 0
		return a, nil, true
	case "G":
		a.form.cursor = n - 1
		return a, nil, true
	case "enter", "i":
		m, cmd := a.formStartEdit()
		return m, cmd, true
	case "s":
		a.tracker.SpendIt()
		return a, nil, true
	}
	return a, nil, false
}

// ─── Rendering ──────────────────────────────────────────────────

// fieldLine renders one labelled field, showing the live text input when the
// field is being edited.
func (a App) fieldLine(field int, label string, labelW int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	marker := spaceStyle.Render("  ")
	if field == a.form.cursor {
		marker = markerStyle.Render("▸ ")
	}

	padded := label
	if labelW > 0 {
		padded = fitWidth(label, labelW) + " "
	}

	var value string
	switch {
	case a.form.editing && field == a.form.cursor:
		value = a.form.input.View()
	case field == a.form.cursor:
		value = selectedStyle.Render(" " + a.fieldText(field) + " ")
	default:
		value = valueStyle.Render(a.fieldText(field))
	}

	return marker + labelStyle.Render(padded) + value
}

func (a App) renderBudgetTab(cw, contentH int) string {
	t := theme.Active
	tr := a.tracker

	buttonStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var sections []string

	breakEven := tr.BreakEven()
	breakEvenTone := t.Deficit
	if breakEven == budget.GoodMessage {
		breakEvenTone = t.Surplus
	}
	sections = append(sections, components.HeadlineCard("Break even in:", breakEven, breakEvenTone, "", cw))

	halves := components.LayoutRow(cw, 2)
	sections = append(sections, components.CardRow([]string{
		components.ContentCard("Starting Budget", a.fieldLine(fieldCash, "", 0), halves[0], a.form.cursor == fieldCash),
		components.ContentCard("Monthly Savings", a.fieldLine(fieldSavings, "", 0), halves[1], a.form.cursor == fieldSavings),
	}))

	var draft strings.Builder
	draft.WriteString(a.fieldLine(fieldDraftItem, "Item", 9))
	draft.WriteString("\n")
	draft.WriteString(a.fieldLine(fieldDraftInvested, "Invested", 9))
	draft.WriteString("\n")
	draft.WriteString(buttonStyle.Render("  💸 SPEND IT 💸"))
	draft.WriteString(dimStyle.Render("  [enter] while editing, [s] anywhere"))
	sections = append(sections, components.ContentCard("Ways to Spend that money", draft.String(), cw, a.form.onDraft()))

	balance, _ := tr.Balance()
	note := ""
	if cash := tr.Cash().Float(); cash > 0 {
		spent := (cash - tr.AvailableCash()) / cash
		note = components.SpendBar("spent", spent, components.CardInnerWidth(cw)/2) +
			dimStyle.Render("  "+cli.FormatPercent(spent)+" of starting budget")
	}
	sections = append(sections, components.HeadlineCard("Balance:", balance, t.ForBalance(tr.AvailableCash()), note, cw))

	top := strings.Join(sections, "\n")

	expenses := tr.Expenses()
	if len(expenses) == 0 {
		return top
	}

	// The expense list gets whatever height is left, windowed around the cursor.
	visible := contentH - lipgloss.Height(top) - 3
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if i := a.form.cursor - fieldFirstExpense; i >= visible {
		offset = i - visible + 1
	}
	end := offset + visible
	if end > len(expenses) {
		end = len(expenses)
	}

	nameW := 8
	for _, e := range expenses {
		if n := lipgloss.Width(e.Item); n > nameW {
			nameW = n
		}
	}
	if nameW > cw/3 {
		nameW = cw / 3
	}

	var list strings.Builder
	for i := offset; i < end; i++ {
		if i > offset {
			list.WriteString("\n")
		}
		list.WriteString(a.fieldLine(fieldFirstExpense+i, expenses[i].Item, nameW))
	}

	invested := make([]float64, len(expenses))
	for i, e := range expenses {
		invested[i] = e.Invested.Float()
	}
	title := fmt.Sprintf("Expenses (%d)  ", len(expenses)) + components.Sparkline(invested, t.Accent)
	if end-offset < len(expenses) {
		title += dimStyle.Render(fmt.Sprintf("  %d-%d", offset+1, end))
	}

	onExpense := a.form.cursor >= fieldFirstExpense
	return top + "\n" + components.ContentCard(title, list.String(), cw, onExpense)
}
