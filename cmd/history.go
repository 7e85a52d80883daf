package cmd

import (
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last change",
	RunE:  runUndo,
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the last undone change",
	RunE:  runRedo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(redoCmd)
}

func runUndo(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		if !w.sess.CanUndo() {
			notify("Nothing to undo")
			return nil
		}
		return w.apply(w.sess.Undo())
	})
}

func runRedo(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		if !w.sess.CanRedo() {
			notify("Nothing to redo")
			return nil
		}
		return w.apply(w.sess.Redo())
	})
}
