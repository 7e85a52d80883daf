// Package cmd implements the pointplan CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/config"
	"github.com/theirongolddev/pointplan/internal/logging"
	"github.com/theirongolddev/pointplan/internal/session"
	"github.com/theirongolddev/pointplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagBudget  int
	flagDataDir string
	flagCatalog string
	flagSlot    string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pointplan",
	Short: "Point-budget project planner",
	Long: "Plan a design project on a fixed point budget: pick components from a catalog,\n" +
		"justify them, and export a printable report.",
	SilenceUsage: true,
	RunE:         runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagBudget, "budget", "b", 0, "Point budget (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the project database")
	rootCmd.PersistentFlags().StringVarP(&flagCatalog, "catalog", "c", "", "TOML catalog file (default built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", store.DefaultSlot, "Name the project is stored under")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

// workspace is everything a command needs: config, catalog, the open
// store and the restored session.
type workspace struct {
	cfg    config.Config
	cat    *catalog.Catalog
	db     *store.DB
	sess   *session.Session
	logger *slog.Logger
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagBudget > 0 {
		cfg.General.Budget = flagBudget
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagCatalog != "" {
		cfg.General.CatalogPath = flagCatalog
	}
	return cfg, nil
}

// openWorkspace is the shared loading path used by all project commands.
// The working session is restored from the store; without one, the saved
// project seeds a fresh history.
func openWorkspace() (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, flagVerbose)
	if flagQuiet && !flagVerbose {
		logger = logging.Discard()
	}

	cat, err := catalog.Load(cfg.General.CatalogPath)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(config.DBPath(cfg), logger)
	if err != nil {
		return nil, err
	}

	w := &workspace{cfg: cfg, cat: cat, db: db, logger: logger}
	notice, err := w.restore()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if notice != nil {
		notify("%s", notice)
	}
	return w, nil
}

// restore builds the session from the store. A notice reports persisted
// data that could not be read and was replaced with an empty project.
func (w *workspace) restore() (*store.Notice, error) {
	opts := []session.Option{session.WithLogger(w.logger)}

	st, found, notice, err := w.db.LoadSession(flagSlot)
	if err != nil {
		return nil, err
	}
	if found && len(st.Snapshots) > 0 {
		if flagBudget > 0 {
			st.Budget = flagBudget
		}
		w.sess = session.Restore(w.cat, st, opts...)
		return notice, nil
	}

	rec, notice, err := w.db.LoadProject(flagSlot, w.cfg.General.Budget)
	if err != nil && !errors.Is(err, store.ErrNoSavedProject) {
		return nil, err
	}
	if flagBudget > 0 {
		rec.Budget = flagBudget
	}
	w.sess = session.New(w.cat, rec.Budget, rec.Items, opts...)
	return notice, nil
}

// apply reports an action's notice and persists the session if it changed.
func (w *workspace) apply(res session.Result) error {
	if res.Notice != "" {
		notify("%s", res.Notice)
	}
	if !res.Changed {
		return nil
	}
	if err := w.db.SaveSession(flagSlot, w.sess.State()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (w *workspace) Close() error {
	return w.db.Close()
}

// notify prints a progress line or notice to stderr unless --quiet.
func notify(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}

// withWorkspace opens the workspace, runs fn, and closes it.
func withWorkspace(fn func(w *workspace) error) error {
	w, err := openWorkspace()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	return fn(w)
}
