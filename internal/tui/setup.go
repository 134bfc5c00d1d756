package tui

import (
	"fmt"

	"github.com/theirongolddev/spendit/internal/config"
	"github.com/theirongolddev/spendit/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run form's answers.
type setupValues struct {
	theme string
}

func newSetupForm(storePath string, vals *setupValues) *huh.Form {
	opts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		opts = append(opts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spendit").
				Description(fmt.Sprintf("Your budget is kept in\n%s", storePath)),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(opts...).
				Value(&vals.theme),
		),
	).WithShowHelp(true)
}

// saveSetupConfig applies and persists the first-run choices.
func saveSetupConfig(vals *setupValues) error {
	cfg := loadConfigOrDefault()
	if theme.Valid(vals.theme) {
		cfg.Appearance.Theme = vals.theme
		theme.SetActive(vals.theme)
	}
	return config.Save(cfg)
}
