package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/spendit/internal/config"
	"github.com/theirongolddev/spendit/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to spendit!")
	fmt.Println()

	// 1. Store location
	fmt.Println("  1. Where should your budget be kept?")
	fmt.Printf("     Current: %s\n", config.GetDBPath(cfg))
	fmt.Println("     Leave blank to keep it.")
	fmt.Print("     > ")
	dbPath, _ := reader.ReadString('\n')
	if dbPath = strings.TrimSpace(dbPath); dbPath != "" {
		cfg.General.DBPath = dbPath
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	for i, th := range theme.All {
		marker := ""
		if th.Name == cfg.Appearance.Theme {
			marker = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, th.Name, marker)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(choice)); err == nil && n >= 1 && n <= len(theme.All) {
		cfg.Appearance.Theme = theme.All[n-1].Name
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `spendit setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
