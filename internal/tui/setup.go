package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/pointplan/internal/config"
	"github.com/theirongolddev/pointplan/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the first-run wizard.
type SetupValues struct {
	Name         string
	Budget       string
	Theme        string
	ConfirmReset bool
}

// DefaultSetupValues seeds the wizard from the current config.
func DefaultSetupValues() SetupValues {
	cfg, _ := config.Load()
	return SetupValues{
		Name:         cfg.Student.Name,
		Budget:       strconv.Itoa(cfg.General.Budget),
		Theme:        cfg.Appearance.Theme,
		ConfirmReset: cfg.TUI.ConfirmReset,
	}
}

// NewSetupForm builds the setup wizard. The CLI runs it standalone; the
// dashboard embeds it on first launch.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pointplan!").
				Description("Plan a design project on a fixed point budget.\nA few settings first."),
			huh.NewInput().
				Title("Your name").
				Description("Used as the author of exported reports.").
				Value(&vals.Name),
			huh.NewInput().
				Title("Point budget").
				Value(&vals.Budget).
				Validate(validateBudget),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&vals.Theme),
			huh.NewConfirm().
				Title("Ask before resetting the project?").
				Value(&vals.ConfirmReset),
		),
	).WithTheme(huh.ThemeCharm())
}

func validateBudget(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}

// SaveSetup writes the wizard answers to the config file and applies the theme.
func SaveSetup(vals SetupValues) error {
	cfg, _ := config.Load()

	cfg.Student.Name = strings.TrimSpace(vals.Name)
	if n, err := strconv.Atoi(strings.TrimSpace(vals.Budget)); err == nil && n > 0 {
		cfg.General.Budget = n
	}
	if vals.Theme != "" {
		cfg.Appearance.Theme = vals.Theme
		theme.SetActive(vals.Theme)
	}
	cfg.TUI.ConfirmReset = vals.ConfirmReset

	return config.Save(cfg)
}
