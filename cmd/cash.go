package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cashCmd = &cobra.Command{
	Use:   "cash <value>",
	Short: "Set the starting budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runCash,
}

var savingsCmd = &cobra.Command{
	Use:   "savings <value>",
	Short: "Set how much you save each month",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavings,
}

func init() {
	rootCmd.AddCommand(cashCmd)
	rootCmd.AddCommand(savingsCmd)
}

func runCash(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.tracker.SetStartingCash(args[0])

	fmt.Println()
	fmt.Printf("  Starting budget: %s\n\n", amountText(s.tracker.Cash()))
	printOutcome(s.tracker)
	return nil
}

func runSavings(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.tracker.SetMonthlySavings(args[0])

	fmt.Println()
	fmt.Printf("  Monthly savings: %s\n\n", amountText(s.tracker.MonthlySavings()))
	printOutcome(s.tracker)
	return nil
}
