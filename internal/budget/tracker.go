// Package budget implements the budget tracker: starting cash, a monthly savings
// rate and a list of expenses, with the derived available cash and break-even
// estimate recomputed after every change.
package budget

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/spendit/internal/cli"
)

// ErrUnknownField is returned by UpdateExpense for a field it cannot set.
var ErrUnknownField = errors.New("unknown expense field")

// Tracker holds the session's budget state. The in-memory copy is authoritative;
// every mutation is mirrored to the Repository immediately.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	repo Repository

	cash      Amount
	savings   Amount
	expenses  []Expense
	draft     Draft
	available float64

	// With no expenses the available cash is the starting cash as stored, and
	// only a stored number has a balance to show.
	balanceShown bool
}

// New loads persisted state from repo and computes the derived values.
func New(repo Repository) *Tracker {
	t := &Tracker{
		repo:     repo,
		cash:     repo.Cash(),
		savings:  repo.MonthlySavings(),
		expenses: repo.Expenses(),
	}
	t.Recompute()
	return t
}

// Recompute refreshes AvailableCash from the starting cash and expense list.
func (t *Tracker) Recompute() {
	available := t.cash.Float()
	for _, e := range t.expenses {
		available -= e.Invested.Float()
	}
	t.available = available
	t.balanceShown = len(t.expenses) > 0 || t.cash.IsNumber()
}

// SetStartingCash replaces the starting cash with the raw input text.
func (t *Tracker) SetStartingCash(input string) {
	t.cash = Text(input)
	t.repo.SaveCash(t.cash)
	t.Recompute()
}

// SetMonthlySavings replaces the monthly savings rate with the raw input text.
func (t *Tracker) SetMonthlySavings(input string) {
	t.savings = Text(input)
	t.repo.SaveMonthlySavings(t.savings)
}

// SetDraftItem updates the draft's item name.
func (t *Tracker) SetDraftItem(item string) {
	t.draft.Item = item
}

// SetDraftInvested updates the draft's invested amount from input text.
func (t *Tracker) SetDraftInvested(input string) {
	t.draft.Invested = ParseInt(input)
}

// SpendIt appends a snapshot of the draft to the expense list. The draft keeps
// its values afterwards.
func (t *Tracker) SpendIt() {
	expenses := make([]Expense, len(t.expenses), len(t.expenses)+1)
	copy(expenses, t.expenses)
	expenses = append(expenses, Expense{
		Item:     t.draft.Item,
		Invested: Number(t.draft.Invested),
	})
	t.setExpenses(expenses)
}

// UpdateExpense sets field to value on every expense whose Item equals item.
// Entries that share an item name are all updated.
func (t *Tracker) UpdateExpense(item, field, value string) error {
	if field != FieldItem && field != FieldInvested {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	expenses := make([]Expense, len(t.expenses))
	for i, e := range t.expenses {
		if e.Item == item {
			switch field {
			case FieldItem:
				e.Item = value
			case FieldInvested:
				e.Invested = Text(value)
			}
		}
		expenses[i] = e
	}
	t.setExpenses(expenses)
	return nil
}

func (t *Tracker) setExpenses(expenses []Expense) {
	t.expenses = expenses
	t.repo.SaveExpenses(t.expenses)
	t.Recompute()
}

// Cash returns the starting cash.
func (t *Tracker) Cash() Amount { return t.cash }

// MonthlySavings returns the monthly savings rate.
func (t *Tracker) MonthlySavings() Amount { return t.savings }

// Draft returns the in-progress expense.
func (t *Tracker) Draft() Draft { return t.draft }

// Expenses returns a copy of the expense list in insertion order.
func (t *Tracker) Expenses() []Expense {
	out := make([]Expense, len(t.expenses))
	copy(out, t.expenses)
	return out
}

// AvailableCash returns starting cash minus everything invested.
func (t *Tracker) AvailableCash() float64 { return t.available }

// BreakEven returns the break-even estimate for the current state.
func (t *Tracker) BreakEven() string {
	return BreakEven(t.available, t.savings.Float())
}

// Balance returns the formatted available cash, or ok == false when nothing should
// be shown: the value is not a whole number, or there are no expenses and the
// starting cash is still the raw input text.
func (t *Tracker) Balance() (string, bool) {
	if !t.balanceShown {
		return "", false
	}
	return cli.FormatValue(t.available)
}
