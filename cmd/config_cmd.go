package cmd

import (
	"fmt"

	"github.com/theirongolddev/pointplan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Budget:    %d points\n", cfg.General.Budget)
	fmt.Printf("    Database:  %s\n", config.DBPath(cfg))
	if cfg.General.CatalogPath != "" {
		fmt.Printf("    Catalog:   %s\n", cfg.General.CatalogPath)
	} else {
		fmt.Println("    Catalog:   built-in")
	}
	fmt.Println()

	fmt.Println("  [Student]")
	if cfg.Student.Name != "" {
		fmt.Printf("    Name: %s\n", cfg.Student.Name)
	} else {
		fmt.Println("    Name: not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Confirm reset: %v\n", cfg.TUI.ConfirmReset)
	fmt.Println()

	fmt.Println("  Run `pointplan setup` to reconfigure.")
	return nil
}
