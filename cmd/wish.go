package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/wishsplit/internal/cli"
	"github.com/theirongolddev/wishsplit/internal/model"

	"github.com/spf13/cobra"
)

var wishCmd = &cobra.Command{
	Use:   "wish",
	Short: "Manage wishes",
}

var wishAddCmd = &cobra.Command{
	Use:   "add <category> <name> <cost>",
	Short: "Add a wish to a category",
	Args:  cobra.ExactArgs(3),
	RunE:  runWishAdd,
}

var wishRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a wish",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishRm,
}

var wishSetCostCmd = &cobra.Command{
	Use:   "set-cost <name> <cost>",
	Short: "Change a wish's cost (progress is clamped to it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runWishSetCost,
}

var wishRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a wish",
	Args:  cobra.ExactArgs(2),
	RunE:  runWishRename,
}

var wishMoveCmd = &cobra.Command{
	Use:   "move <name> <index>",
	Short: "Move a wish to a new priority slot within its category (0 = first)",
	Args:  cobra.ExactArgs(2),
	RunE:  runWishMove,
}

func init() {
	wishCmd.AddCommand(wishAddCmd)
	wishCmd.AddCommand(wishRmCmd)
	wishCmd.AddCommand(wishSetCostCmd)
	wishCmd.AddCommand(wishRenameCmd)
	wishCmd.AddCommand(wishMoveCmd)
	rootCmd.AddCommand(wishCmd)
}

func runWishAdd(_ *cobra.Command, args []string) error {
	cost, err := parseAmount(args[2])
	if err != nil {
		return err
	}

	st, wl := openStore()
	c, err := findCategory(wl, args[0])
	if err != nil {
		return err
	}

	w := model.NewWish(args[1], float64(cost), 0)
	c.AddWish(w)
	saveModel(st, wl)

	fmt.Printf("  Added %q (%s) to %q\n", w.Name, cli.FormatMoney(w.Cost, currency()), c.Name)
	return nil
}

func runWishRm(_ *cobra.Command, args []string) error {
	st, wl := openStore()
	w, c, err := findWish(wl, args[0])
	if err != nil {
		return err
	}

	c.RemoveWish(w.ID)
	saveModel(st, wl)

	fmt.Printf("  Removed %q from %q\n", w.Name, c.Name)
	return nil
}

func runWishSetCost(_ *cobra.Command, args []string) error {
	cost, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	st, wl := openStore()
	w, _, err := findWish(wl, args[0])
	if err != nil {
		return err
	}

	w.SetCost(float64(cost))
	saveModel(st, wl)

	fmt.Printf("  %q now costs %s (funded %s)\n",
		w.Name, cli.FormatMoney(w.Cost, currency()), cli.FormatMoney(w.Progress, currency()))
	return nil
}

func runWishRename(_ *cobra.Command, args []string) error {
	st, wl := openStore()
	w, _, err := findWish(wl, args[0])
	if err != nil {
		return err
	}

	old := w.Name
	w.Name = args[1]
	saveModel(st, wl)

	fmt.Printf("  Renamed %q to %q\n", old, w.Name)
	return nil
}

func runWishMove(_ *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[1])
	}

	st, wl := openStore()
	w, c, err := findWish(wl, args[0])
	if err != nil {
		return err
	}

	wl.MoveWish(w.ID, idx)
	saveModel(st, wl)

	fmt.Printf("  %q is now priority %d in %q\n", w.Name, w.Position, c.Name)
	return nil
}
