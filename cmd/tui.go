package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/config"
	"github.com/theirongolddev/pointplan/internal/logging"
	"github.com/theirongolddev/pointplan/internal/store"
	"github.com/theirongolddev/pointplan/internal/tui"
	"github.com/theirongolddev/pointplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	logger, closeLog, err := logging.ForTUI(flagVerbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %v\n", err)
	}
	defer func() { _ = closeLog() }()

	cat, err := catalog.Load(cfg.General.CatalogPath)
	if err != nil {
		return err
	}
	db, err := store.Open(config.DBPath(cfg), logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Notices go to the status line; stderr belongs to the alt screen.
	w := &workspace{cfg: cfg, cat: cat, db: db, logger: logger}
	n, err := w.restore()
	if err != nil {
		return err
	}
	var notice string
	if n != nil {
		notice = n.String()
	}

	dir, _ := os.Getwd()
	app := tui.NewApp(tui.Options{
		Session:      w.sess,
		Store:        db,
		Slot:         flagSlot,
		StudentName:  cfg.Student.Name,
		ExportDir:    dir,
		ConfirmReset: cfg.TUI.ConfirmReset,
		NeedSetup:    !config.Exists(),
		Notice:       notice,
		Logger:       logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
