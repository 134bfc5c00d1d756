// Package cmd implements the spendit CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/spendit/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Store:    %s (%s)\n", resolvedDBPath(cfg), dbPathSource(cfg))
	fmt.Printf("    Log file: %s\n", config.GetLogPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `spendit setup` to reconfigure.")
	return nil
}

func resolvedDBPath(cfg config.Config) string {
	switch {
	case flagNoPersist:
		return "(in memory)"
	case flagDB != "":
		return flagDB
	}
	return config.GetDBPath(cfg)
}

func dbPathSource(cfg config.Config) string {
	switch {
	case flagNoPersist:
		return "--no-persist"
	case flagDB != "":
		return "--db"
	case os.Getenv(config.EnvDBPath) != "":
		return config.EnvDBPath
	case cfg.General.DBPath != "":
		return "config"
	}
	return "default"
}
