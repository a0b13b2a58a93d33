package cmd

import (
	"fmt"

	"github.com/theirongolddev/wishsplit/internal/cli"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show all categories and wishes",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	_, wl := openStore()
	cur := currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle("WISHLIST"))
	fmt.Println()

	if len(wl.Categories) == 0 {
		fmt.Println("  No categories yet. Add one with `wishsplit category add <name> <percent>`.")
		return nil
	}

	for _, c := range wl.Categories {
		rows := make([][]string, 0, len(c.Wishes))
		for _, w := range c.SortedWishes() {
			pct := 0.0
			if w.Cost > 0 {
				pct = float64(w.Progress) / float64(w.Cost)
			}
			rows = append(rows, []string{
				w.Name,
				cli.RenderProgressBar(w.Progress, w.Cost, 20),
				cli.FormatProgress(w.Progress, w.Cost),
				cli.FormatPercent(pct),
			})
		}
		if len(rows) == 0 {
			rows = append(rows, []string{"(no wishes)", "", "", ""})
		}

		title := fmt.Sprintf("%s  %s  %s of %s",
			c.Name,
			cli.FormatWeight(c.Percent),
			cli.FormatMoney(c.TotalProgress(), cur),
			cli.FormatMoney(c.TotalCost(), cur),
		)
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   title,
			Headers: []string{"Wish", "Progress", "Funded", ""},
			Rows:    rows,
		}))
		fmt.Println()
	}

	if rem := wl.TotalRemaining(); rem > 0 {
		fmt.Printf("  Still needed across all wishes: %s\n\n", cli.FormatMoney(rem, cur))
	} else {
		fmt.Println("  All wishes are fully funded.")
		fmt.Println()
	}
	return nil
}
