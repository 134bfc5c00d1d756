package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/spendit/internal/config"
	"github.com/theirongolddev/spendit/internal/tui"
	"github.com/theirongolddev/spendit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget form",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	// The alternate screen owns stdout and stderr while the program runs
	if !flagQuiet {
		logPath := config.GetLogPath(s.cfg)
		if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
		f, err := tea.LogToFile(logPath, "spendit")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(tui.NewApp(s.tracker, s.storePath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
