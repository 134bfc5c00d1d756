package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/spendit/internal/budget"
	"github.com/theirongolddev/spendit/internal/cli"

	"github.com/spf13/cobra"
)

var flagField string

var spendCmd = &cobra.Command{
	Use:   "spend <item> <invested>",
	Short: "Add an expense",
	Long:  "Fill in the draft with an item and amount, then spend it. The amount is read as a whole number.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSpend,
}

var investCmd = &cobra.Command{
	Use:   "invest <item> <value>",
	Short: "Change every expense with the given item",
	Args:  cobra.ExactArgs(2),
	RunE:  runInvest,
}

func init() {
	investCmd.Flags().StringVar(&flagField, "field", budget.FieldInvested, "Field to change (invested or item)")
	rootCmd.AddCommand(spendCmd)
	rootCmd.AddCommand(investCmd)
}

func runSpend(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	t := s.tracker
	t.SetDraftItem(args[0])
	t.SetDraftInvested(args[1])
	t.SpendIt()

	d := t.Draft()
	invested, ok := cli.FormatValue(d.Invested)
	if !ok {
		invested = "nothing"
	}
	fmt.Println()
	fmt.Printf("  Spent %s on %q\n\n", invested, d.Item)
	printOutcome(t)
	return nil
}

func runInvest(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	t := s.tracker
	item, value := args[0], args[1]

	matches := 0
	for _, e := range t.Expenses() {
		if e.Item == item {
			matches++
		}
	}

	if err := t.UpdateExpense(item, flagField, value); err != nil {
		if errors.Is(err, budget.ErrUnknownField) {
			return fmt.Errorf("--field must be %q or %q: %w", budget.FieldInvested, budget.FieldItem, err)
		}
		return err
	}

	fmt.Println()
	if matches == 0 {
		fmt.Print(cli.RenderWarning(fmt.Sprintf("No expense named %q", item)))
		return nil
	}
	fmt.Printf("  Updated %d expense(s) named %q\n\n", matches, item)
	printOutcome(t)
	return nil
}
