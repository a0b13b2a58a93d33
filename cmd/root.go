// Package cmd implements the wishsplit CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/wishsplit/internal/config"
	"github.com/theirongolddev/wishsplit/internal/model"
	"github.com/theirongolddev/wishsplit/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "wishsplit",
	Short: "Wishlist budget splitter",
	Long:  "Maintain weighted wish categories and split incoming money across unfinished wishes.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Wishlist data directory (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadedCfg caches the config for the duration of one command.
var loadedCfg *config.Config

func currentConfig() config.Config {
	if loadedCfg == nil {
		cfg, err := config.Load()
		if err != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config problem (%v), using defaults\n", err)
		}
		loadedCfg = &cfg
	}
	return *loadedCfg
}

func dataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return currentConfig().DataDir()
}

func currency() string {
	return currentConfig().General.Currency
}

// openStore returns the store and the wishlist loaded from it, falling back
// to the built-in defaults when no data file exists yet.
func openStore() (*store.Store, *model.Wishlist) {
	st := store.New(dataDir())
	return st, st.LoadOrDefault()
}

// saveModel persists the wishlist, reporting (but not propagating) failure.
func saveModel(st *store.Store, wl *model.Wishlist) {
	if err := st.Save(wl); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: could not save wishlist: %v\n", err)
	}
}

// parseAmount parses a money amount from user text. Accepts a decimal comma
// and rounds to whole units.
func parseAmount(s string) (model.Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return model.RoundMoney(v), nil
}

// parsePercent parses a category weight in the 0-100 range.
func parsePercent(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.ReplaceAll(s, ",", "."), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent %q", s)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percent must be between 0 and 100")
	}
	return v, nil
}

// findCategory resolves a category by exact or unique case-insensitive
// prefix match on its name.
func findCategory(wl *model.Wishlist, name string) (*model.Category, error) {
	lower := strings.ToLower(name)
	var prefix []*model.Category
	for _, c := range wl.Categories {
		cn := strings.ToLower(c.Name)
		if cn == lower {
			return c, nil
		}
		if strings.HasPrefix(cn, lower) {
			prefix = append(prefix, c)
		}
	}
	switch len(prefix) {
	case 1:
		return prefix[0], nil
	case 0:
		return nil, fmt.Errorf("no category matches %q", name)
	default:
		return nil, fmt.Errorf("category %q is ambiguous (%d matches)", name, len(prefix))
	}
}

// findWish resolves a wish by exact or unique case-insensitive prefix match
// across all categories.
func findWish(wl *model.Wishlist, name string) (*model.Wish, *model.Category, error) {
	lower := strings.ToLower(name)
	type match struct {
		w *model.Wish
		c *model.Category
	}
	var prefix []match
	for _, c := range wl.Categories {
		for _, w := range c.Wishes {
			wn := strings.ToLower(w.Name)
			if wn == lower {
				return w, c, nil
			}
			if strings.HasPrefix(wn, lower) {
				prefix = append(prefix, match{w, c})
			}
		}
	}
	switch len(prefix) {
	case 1:
		return prefix[0].w, prefix[0].c, nil
	case 0:
		return nil, nil, fmt.Errorf("no wish matches %q", name)
	default:
		return nil, nil, fmt.Errorf("wish %q is ambiguous (%d matches)", name, len(prefix))
	}
}
