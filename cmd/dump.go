package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendit/internal/budget"
	"github.com/theirongolddev/spendit/internal/cli"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the raw persisted value of every key",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// keyLister is implemented by stores that can enumerate their keys.
type keyLister interface {
	Keys() ([]string, error)
}

func runDump(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	keys := []string{budget.KeyCash, budget.KeyMonthlySavings, budget.KeyExpenses}
	if kl, ok := s.store.(keyLister); ok {
		stored, err := kl.Keys()
		if err != nil {
			return fmt.Errorf("listing keys: %w", err)
		}
		keys = stored
	}

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		v, found, err := s.store.Get(k)
		switch {
		case err != nil:
			v = "error: " + err.Error()
		case !found:
			v = "(unset)"
		}
		rows = append(rows, []string{k, v})
	}

	fmt.Println()
	fmt.Printf("  Store: %s\n\n", s.storePath)
	if len(rows) == 0 {
		fmt.Println("  Nothing persisted yet.")
		return nil
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Columns: []cli.Column{{Header: "Key"}, {Header: "Value"}},
		Rows:    rows,
	}))
	return nil
}
