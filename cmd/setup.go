package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/wishsplit/internal/config"

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
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to wishsplit!")
	fmt.Println()

	// 1. Data directory
	fmt.Println("  1. Data directory")
	fmt.Printf("     Where the wishlist file lives. Current: %s\n", cfg.DataDir())
	fmt.Print("     > ")
	dir, _ := reader.ReadString('\n')
	dir = strings.TrimSpace(dir)
	if dir != "" {
		cfg.General.DataDir = dir
	}
	fmt.Println()

	// 2. Currency symbol
	fmt.Println("  2. Currency symbol")
	fmt.Printf("     Shown after amounts. Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	cur, _ := reader.ReadString('\n')
	cur = strings.TrimSpace(cur)
	if cur != "" {
		cfg.General.Currency = cur
	}
	fmt.Println()

	// 3. Default budget
	fmt.Println("  3. Default budget for `distribute` (blank to skip)")
	fmt.Print("     > ")
	budgetStr, _ := reader.ReadString('\n')
	budgetStr = strings.TrimSpace(budgetStr)
	if budgetStr != "" {
		if amount, err := parseAmount(budgetStr); err == nil && amount > 0 {
			cfg.Budget.DefaultAmount = &amount
		} else {
			fmt.Println("     Not a valid amount, skipping.")
		}
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `wishsplit setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
