package cmd

import (
	"fmt"

	"github.com/theirongolddev/wishsplit/internal/cli"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage wish categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name> <percent>",
	Short: "Add a category with a percentage weight",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryAdd,
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a category and all of its wishes",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryRm,
}

var categorySetCmd = &cobra.Command{
	Use:   "set <name> <percent>",
	Short: "Change a category's percentage weight",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategorySet,
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryRename,
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	categoryCmd.AddCommand(categorySetCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryAdd(_ *cobra.Command, args []string) error {
	percent, err := parsePercent(args[1])
	if err != nil {
		return err
	}

	st, wl := openStore()
	c := wl.AddCategory(args[0], percent)
	saveModel(st, wl)

	fmt.Printf("  Added category %q at %s\n", c.Name, cli.FormatWeight(c.Percent))
	return nil
}

func runCategoryRm(_ *cobra.Command, args []string) error {
	st, wl := openStore()
	c, err := findCategory(wl, args[0])
	if err != nil {
		return err
	}

	wl.RemoveCategory(c.ID)
	saveModel(st, wl)

	fmt.Printf("  Removed category %q (%d wishes)\n", c.Name, len(c.Wishes))
	return nil
}

func runCategorySet(_ *cobra.Command, args []string) error {
	percent, err := parsePercent(args[1])
	if err != nil {
		return err
	}

	st, wl := openStore()
	c, err := findCategory(wl, args[0])
	if err != nil {
		return err
	}

	c.Percent = percent
	saveModel(st, wl)

	fmt.Printf("  %q now weighs %s\n", c.Name, cli.FormatWeight(c.Percent))
	return nil
}

func runCategoryRename(_ *cobra.Command, args []string) error {
	st, wl := openStore()
	c, err := findCategory(wl, args[0])
	if err != nil {
		return err
	}

	old := c.Name
	c.Name = args[1]
	saveModel(st, wl)

	fmt.Printf("  Renamed %q to %q\n", old, c.Name)
	return nil
}
