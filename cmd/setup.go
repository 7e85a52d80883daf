package cmd

import (
	"fmt"

	"github.com/theirongolddev/pointplan/internal/config"
	"github.com/theirongolddev/pointplan/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	vals := tui.DefaultSetupValues()
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		return err
	}

	if err := tui.SaveSetup(vals); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `pointplan setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
