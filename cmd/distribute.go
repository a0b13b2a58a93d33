package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/wishsplit/internal/cli"
	"github.com/theirongolddev/wishsplit/internal/engine"
	"github.com/theirongolddev/wishsplit/internal/history"

	"github.com/spf13/cobra"
)

var flagDistCommit bool

var distributeCmd = &cobra.Command{
	Use:   "distribute <budget>",
	Short: "Split a budget across unfinished wishes by category weight",
	Long: "Compute a tentative allocation of the given budget across all unfinished wishes,\n" +
		"proportionally to category weight and in wish priority order. The preview is\n" +
		"applied only after confirmation (or immediately with --commit).",
	Args: cobra.MaximumNArgs(1),
	RunE: runDistribute,
}

func init() {
	distributeCmd.Flags().BoolVar(&flagDistCommit, "commit", false, "Apply the distribution without asking")
	rootCmd.AddCommand(distributeCmd)
}

func runDistribute(_ *cobra.Command, args []string) error {
	var budget int64
	if len(args) > 0 {
		parsed, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		budget = parsed
	} else if def := currentConfig().Budget.DefaultAmount; def != nil {
		budget = *def
	} else {
		return fmt.Errorf("no budget given and no default configured")
	}

	st, wl := openStore()
	cur := currency()

	res, err := engine.Distribute(wl, budget)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DISTRIBUTING %s", cli.FormatMoney(budget, cur))))
	fmt.Println()

	// Category envelopes
	rows := make([][]string, 0, len(res.Allocations))
	for _, a := range res.Allocations {
		rows = append(rows, []string{
			a.Name,
			cli.FormatMoney(a.Allocated, cur),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Category envelopes",
		Headers: []string{"Category", "Allocated"},
		Rows:    rows,
	}))
	fmt.Println()

	// Per-wish preview deltas
	var wishRows [][]string
	for _, c := range wl.Categories {
		for _, w := range c.SortedWishes() {
			delta := w.PreviewProgress - w.Progress
			if delta <= 0 {
				continue
			}
			wishRows = append(wishRows, []string{
				fmt.Sprintf("%s / %s", c.Name, w.Name),
				"+" + cli.FormatMoney(delta, cur),
				cli.FormatProgress(w.PreviewProgress, w.Cost),
			})
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Wish funding",
		Headers: []string{"Wish", "Added", "After"},
		Rows:    wishRows,
	}))
	fmt.Println()

	if res.Unallocated > 0 {
		fmt.Printf("  Unallocated remainder: %s\n\n", cli.FormatMoney(res.Unallocated, cur))
	}

	if !flagDistCommit {
		fmt.Print("  Apply this distribution? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("  Discarded. Nothing was changed.")
			return nil
		}
	}

	engine.Commit(wl)
	saveModel(st, wl)
	recordCommit(res)

	fmt.Printf("  Applied. %s placed, %s left over.\n\n",
		cli.FormatMoney(budget-res.Unallocated, cur),
		cli.FormatMoney(res.Unallocated, cur))
	return nil
}

// recordCommit appends the committed distribution to the history ledger.
// Ledger problems are reported but never block the commit itself.
func recordCommit(res engine.Result) {
	ledger, err := history.Open(filepath.Join(dataDir(), history.LedgerFileName))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Warning: history ledger unavailable: %v\n", err)
		}
		return
	}
	defer func() { _ = ledger.Close() }()

	if err := ledger.RecordCommit(res, time.Now()); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Warning: could not record history: %v\n", err)
	}
}
