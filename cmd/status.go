package cmd

import (
	"fmt"

	"github.com/theirongolddev/pointplan/internal/cli"
	"github.com/theirongolddev/pointplan/internal/pricing"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Budget balance and project items",
	RunE:  runStatus,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Project items with a per-copy price breakdown",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(showCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		sum := w.sess.Summary()

		fmt.Println()
		fmt.Println(cli.RenderTitle("PROJECT BUDGET"))
		fmt.Println()
		fmt.Printf("  %s\n", cli.RenderBudgetBar(sum.Spent, sum.Initial, 40))
		fmt.Printf("  %-14s %s\n", "Budget", cli.FormatPoints(sum.Initial))
		fmt.Printf("  %-14s %s (%s)\n", "Spent", cli.FormatPoints(sum.Spent), cli.FormatPercent(sum.UsedPercent))
		fmt.Printf("  %-14s %s\n", "Balance", cli.Balance(sum.Remaining))
		fmt.Printf("  %-14s %d\n", "Copies", sum.Copies)
		if sum.Over {
			fmt.Printf("\n  %s\n", cli.Bad(fmt.Sprintf("Over budget by %d points", -sum.Remaining)))
		}
		fmt.Println()

		if len(sum.Lines) == 0 {
			fmt.Println("  No components yet. Try `pointplan catalog` and `pointplan add <id>`.")
			fmt.Println()
			return nil
		}

		rows := make([][]string, 0, len(sum.Lines))
		for _, l := range sum.Lines {
			rows = append(rows, []string{
				l.Item.ID,
				l.Component.Name,
				fmt.Sprintf("%d", l.Item.Quantity),
				cli.FormatPoints(l.Breakdown.Total),
				cli.Truncate(l.Item.Justification, 40),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers:    []string{"Item", "Component", "Qty", "Points", "Justification"},
			Rows:       rows,
			RightAlign: []int{2, 3},
		}))
		if len(sum.Orphans) > 0 {
			fmt.Printf("\n  %s\n", cli.Warn(fmt.Sprintf("%d items reference components missing from the catalog", len(sum.Orphans))))
		}

		fmt.Println()
		fmt.Printf("  %s\n", cli.Muted(historyLine(w)))
		fmt.Println()
		return nil
	})
}

func historyLine(w *workspace) string {
	undo, redo := "no", "no"
	if w.sess.CanUndo() {
		undo = "yes"
	}
	if w.sess.CanRedo() {
		redo = "yes"
	}
	return fmt.Sprintf("undo: %s · redo: %s", undo, redo)
}

func runShow(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		sum := w.sess.Summary()
		if len(sum.Lines) == 0 {
			fmt.Println("\n  Project is empty.")
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("PROJECT BREAKDOWN"))
		fmt.Println()

		for _, l := range sum.Lines {
			fmt.Printf("  %s %s  %s\n",
				l.Component.Icon.Glyph(),
				cli.Header(l.Component.Name),
				cli.Muted(l.Item.ID))

			rows := make([][]string, 0, len(l.Breakdown.Copies))
			for _, c := range l.Breakdown.Copies {
				rows = append(rows, []string{
					fmt.Sprintf("#%d", c.Copy),
					cli.FormatDiscount(c.Discount),
					cli.FormatPoints(c.Price),
				})
			}
			fmt.Print(cli.RenderTable(cli.Table{
				Headers:    []string{"Copy", "Discount", "Price"},
				Rows:       rows,
				RightAlign: []int{1, 2},
			}))
			fmt.Printf("  %s %s", cli.FormatChips(l.Item.Quantity), cli.FormatPoints(l.Breakdown.Total))
			if saved := pricing.Savings(l.Component.BasePoints, l.Item.Quantity); saved > 0 {
				fmt.Printf("  %s", cli.Good(fmt.Sprintf("saved %s", cli.FormatPoints(saved))))
			}
			fmt.Println()
			if l.Item.Justification != "" {
				fmt.Printf("  %s\n", cli.Muted(l.Item.Justification))
			}
			fmt.Println()
		}

		fmt.Printf("  %-10s %s\n", "Spent", cli.FormatPoints(sum.Spent))
		fmt.Printf("  %-10s %s\n", "Balance", cli.Balance(sum.Remaining))
		fmt.Println()
		return nil
	})
}
