package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/theirongolddev/pointplan/internal/cli"
	"github.com/theirongolddev/pointplan/internal/project"
	"github.com/theirongolddev/pointplan/internal/tui"

	"github.com/spf13/cobra"
)

var (
	flagQty int
	flagWhy string
	flagYes bool
)

var addCmd = &cobra.Command{
	Use:   "add <component-id>...",
	Short: "Add components to the project (again to raise the quantity)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var previewCmd = &cobra.Command{
	Use:   "preview <component-id>",
	Short: "Show the balance after adding a component, without adding it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var setCmd = &cobra.Command{
	Use:   "set <item>",
	Short: "Change an item's quantity or justification",
	Long: "Change an item's quantity or justification. <item> is an item id, a unique\n" +
		"id prefix, or the component id the item holds.",
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

var removeCmd = &cobra.Command{
	Use:     "remove <item>",
	Aliases: []string{"rm"},
	Short:   "Remove an item from the project",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every item (undo brings them back)",
	RunE:  runReset,
}

func init() {
	setCmd.Flags().IntVar(&flagQty, "qty", 0, "New quantity (clamped to at least 1)")
	setCmd.Flags().StringVar(&flagWhy, "why", "", "New justification")
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(resetCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	return withWorkspace(func(w *workspace) error {
		for _, id := range args {
			if _, ok := w.cat.Component(id); !ok {
				return fmt.Errorf("unknown component %q (see `pointplan catalog`)", id)
			}
		}
		for _, id := range args {
			if err := w.apply(w.sess.Drop(id)); err != nil {
				return err
			}
		}
		fmt.Printf("  %s\n", cli.Balance(w.sess.Remaining()))
		return nil
	})
}

func runPreview(_ *cobra.Command, args []string) error {
	return withWorkspace(func(w *workspace) error {
		if !w.sess.BeginDrag(args[0]) {
			return fmt.Errorf("unknown component %q (see `pointplan catalog`)", args[0])
		}
		defer w.sess.EndDrag()

		comp, _ := w.sess.Dragging()
		after, _ := w.sess.Preview()
		fmt.Printf("  %s: %s now, %s after adding %s\n",
			comp.Name,
			cli.FormatBalance(w.sess.Remaining()),
			cli.Balance(after),
			cli.FormatPoints(comp.BasePoints))
		return nil
	})
}

func runSet(cmd *cobra.Command, args []string) error {
	qtySet := cmd.Flags().Changed("qty")
	whySet := cmd.Flags().Changed("why")
	if !qtySet && !whySet {
		return errors.New("nothing to change: pass --qty and/or --why")
	}
	if utf8.RuneCountInString(flagWhy) > tui.JustificationLimit {
		return fmt.Errorf("justification is limited to %d characters", tui.JustificationLimit)
	}

	return withWorkspace(func(w *workspace) error {
		it, err := w.sess.Resolve(args[0])
		if err != nil {
			return err
		}
		var patch project.Patch
		if qtySet {
			patch.Quantity = &flagQty
		}
		if whySet {
			why := strings.TrimSpace(flagWhy)
			patch.Justification = &why
		}
		res := w.sess.Update(it.ID, patch)
		if !res.Changed {
			notify("%s is unchanged", it.ID)
		}
		return w.apply(res)
	})
}

func runRemove(_ *cobra.Command, args []string) error {
	return withWorkspace(func(w *workspace) error {
		it, err := w.sess.Resolve(args[0])
		if err != nil {
			return err
		}
		return w.apply(w.sess.Remove(it.ID))
	})
}

func runReset(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		if len(w.sess.Items()) == 0 {
			notify("Project is already empty")
			return nil
		}
		if !flagYes && w.cfg.TUI.ConfirmReset {
			ok, err := confirm("Reset the project?", "All items are removed. `pointplan undo` brings them back.")
			if err != nil {
				return err
			}
			if !ok {
				notify("Reset cancelled")
				return nil
			}
		}
		return w.apply(w.sess.Reset())
	})
}
