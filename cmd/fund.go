package cmd

import (
	"fmt"

	"github.com/theirongolddev/wishsplit/internal/cli"

	"github.com/spf13/cobra"
)

var fundCmd = &cobra.Command{
	Use:   "fund <wish> <amount>",
	Short: "Add money directly to a wish (bypasses distribution)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdjust(args, true)
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <wish> <amount>",
	Short: "Take money back out of a wish",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdjust(args, false)
	},
}

func init() {
	rootCmd.AddCommand(fundCmd)
	rootCmd.AddCommand(withdrawCmd)
}

// runAdjust applies the +/- progress adjustment: both committed and preview
// progress move to the same clamped value, and the change persists at once.
func runAdjust(args []string, add bool) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	st, wl := openStore()
	w, c, err := findWish(wl, args[0])
	if err != nil {
		return err
	}

	w.AdjustProgress(float64(amount), add)
	saveModel(st, wl)

	cur := currency()
	fmt.Printf("  %q (%s): %s", w.Name, c.Name, cli.FormatProgress(w.Progress, w.Cost))
	if w.Completed() && w.Cost > 0 {
		fmt.Print("  — fully funded!")
	}
	fmt.Println()
	if rem := w.Remaining(); rem > 0 {
		fmt.Printf("  Still needs %s\n", cli.FormatMoney(rem, cur))
	}
	return nil
}
