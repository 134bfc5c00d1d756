package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendit/internal/budget"
	"github.com/theirongolddev/spendit/internal/cli"

	"github.com/spf13/cobra"
)

const barWidth = 24

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	t := s.tracker

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDIT  Budget", s.storePath))
	fmt.Println()
	printOutcome(t)
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Columns: []cli.Column{{Header: "Field"}, {Header: "Value", Right: true}},
		Rows: [][]string{
			{"Starting Budget", amountText(t.Cash())},
			{"Monthly Savings", amountText(t.MonthlySavings())},
			nil,
			{"Expenses", cli.FormatNumber(int64(len(t.Expenses())))},
		},
	}))

	expenses := t.Expenses()
	if len(expenses) == 0 {
		fmt.Println()
		fmt.Println("  No expenses yet. Add one with `spendit spend <item> <amount>`.")
		return nil
	}

	var total, largest float64
	for _, e := range expenses {
		v := e.Invested.Float()
		if v > 0 {
			total += v
		}
		if v > largest {
			largest = v
		}
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		share := "-"
		if v := e.Invested.Float(); total > 0 && v > 0 {
			share = cli.FormatPercent(v / total)
		}
		rows = append(rows, []string{e.Item, amountText(e.Invested), share})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Ways to Spend that money",
		Columns: []cli.Column{
			{Header: "Item"},
			{Header: "Invested", Right: true},
			{Header: "Share", Right: true},
		},
		Rows: rows,
	}))
	fmt.Println()
	for _, e := range expenses {
		fmt.Println(cli.RenderHorizontalBar(e.Item, e.Invested.Float(), largest, barWidth))
	}

	return nil
}

// printOutcome prints the two derived values every mutating command reports.
func printOutcome(t *budget.Tracker) {
	fmt.Print(cli.RenderHeadline("Break even in:", t.BreakEven()))
	balance, _ := t.Balance()
	fmt.Print(cli.RenderHeadline("Balance:", balance))
}

// amountText renders an amount as currency when it is a whole number and as
// the raw input otherwise.
func amountText(a budget.Amount) string {
	if s, ok := cli.FormatValue(a.Float()); ok {
		return s
	}
	return a.String()
}
