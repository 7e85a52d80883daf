package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/pointplan/internal/store"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current project",
	RunE:  runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace the working project with the saved one",
	Long:  "Replace the working project with the saved one. Undo history restarts.",
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
}

func runSave(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		rec := w.sess.Record()
		if err := w.db.SaveProject(flagSlot, rec); err != nil {
			return err
		}
		notify("Saved %d items to slot %q", len(rec.Items), flagSlot)
		return nil
	})
}

func runLoad(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		rec, notice, err := w.db.LoadProject(flagSlot, w.sess.Budget())
		if errors.Is(err, store.ErrNoSavedProject) {
			return fmt.Errorf("%w in slot %q", err, flagSlot)
		}
		if err != nil {
			return err
		}
		if notice != nil {
			// Keep the working project rather than replacing it with nothing.
			return errors.New(notice.String())
		}
		if at, ok := w.db.SavedAt(flagSlot); ok {
			notify("Saved %s", at.Local().Format("2006-01-02 15:04"))
		}
		return w.apply(w.sess.Load(rec))
	})
}
