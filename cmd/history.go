package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/wishsplit/internal/cli"
	"github.com/theirongolddev/wishsplit/internal/history"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past committed distributions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	ledger, err := history.Open(filepath.Join(dataDir(), history.LedgerFileName))
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = ledger.Close() }()

	entries, err := ledger.Recent(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DISTRIBUTION HISTORY"))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No distributions committed yet.")
		return nil
	}

	cur := currency()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		parts := make([]string, 0, len(e.Allocations))
		for _, a := range e.Allocations {
			parts = append(parts, fmt.Sprintf("%s %s", a.Category, cli.FormatMoney(a.Allocated, cur)))
		}
		rows = append(rows, []string{
			e.CommittedAt.Local().Format("2006-01-02 15:04"),
			cli.FormatMoney(e.Budget, cur),
			cli.FormatMoney(e.Unallocated, cur),
			strings.Join(parts, " | "),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"When", "Budget", "Left over", "Envelopes"},
		Rows:    rows,
	}))
	return nil
}
