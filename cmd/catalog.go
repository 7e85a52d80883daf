package cmd

import (
	"fmt"

	"github.com/theirongolddev/pointplan/internal/budget"
	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/cli"
	"github.com/theirongolddev/pointplan/internal/pricing"

	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagDump     string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalog components with their discount ladder",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagCategory, "category", "", "Only list one category (id)")
	catalogCmd.Flags().StringVar(&flagDump, "dump", "", "Write the catalog as TOML to this file")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		if flagDump != "" {
			if err := catalog.Write(w.cat, flagDump); err != nil {
				return err
			}
			notify("Wrote %d components to %s", w.cat.Len(), flagDump)
			return nil
		}

		cats := w.cat.Categories()
		if flagCategory != "" {
			c, ok := w.cat.Category(flagCategory)
			if !ok {
				return fmt.Errorf("unknown category %q", flagCategory)
			}
			cats = []catalog.Category{c}
		}

		remaining := w.sess.Remaining()
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("CATALOG  %s", cli.FormatBalance(remaining))))

		for _, cat := range cats {
			fmt.Println()
			fmt.Printf("  %s %s\n", cat.Icon.Glyph(), cli.Header(cat.Name))

			comps := w.cat.ComponentsIn(cat.ID)
			rows := make([][]string, 0, len(comps))
			for _, c := range comps {
				mark := ""
				if budget.WouldOverspend(remaining, c) {
					mark = cli.Warn("over")
				}
				rows = append(rows, []string{
					c.ID,
					c.Name,
					pricing.DiscountExamples(c.BasePoints),
					mark,
				})
			}
			fmt.Print(cli.RenderTable(cli.Table{
				Headers: []string{"ID", "Component", "Points", ""},
				Rows:    rows,
			}))
		}
		fmt.Println()
		return nil
	})
}
