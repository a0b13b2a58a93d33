package cmd

import (
	"fmt"

	"github.com/theirongolddev/wishsplit/internal/cli"
	"github.com/theirongolddev/wishsplit/internal/config"

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
	cfg := currentConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Budget]")
	if cfg.Budget.DefaultAmount != nil {
		fmt.Printf("    Default amount: %s\n", cli.FormatMoney(*cfg.Budget.DefaultAmount, cfg.General.Currency))
	} else {
		fmt.Println("    Default amount: not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `wishsplit setup` to reconfigure.")
	return nil
}
