// Package engine implements the two-phase budget distribution: a
// distribution run writes preview progress only, and a later commit or
// reset collapses the preview back into a single committed state.
package engine

import (
	"errors"
	"math"
	"sort"

	"github.com/theirongolddev/wishsplit/internal/model"
)

var (
	// ErrBudgetNotPositive is returned for a zero or negative budget.
	// The model is left untouched.
	ErrBudgetNotPositive = errors.New("budget must be a positive amount")

	// ErrNothingToFund is returned when every wish is already fully funded.
	ErrNothingToFund = errors.New("all wishes are already funded")

	// ErrNoEligibleCategory is returned when every category that still has
	// unfunded wishes carries zero weight.
	ErrNoEligibleCategory = errors.New("no unfinished category has a positive percent")
)

// CategoryAllocation is one category's envelope from a distribution run.
type CategoryAllocation struct {
	CategoryID string
	Name       string
	Allocated  model.Money
}

// Result describes a completed distribution run. Per-wish preview amounts
// live on the wishes themselves; the result carries the category envelopes
// and the budget remainder that found no home.
type Result struct {
	Budget      model.Money
	Allocations []CategoryAllocation // eligible categories, in display order
	Unallocated model.Money
}

// Distribute computes a tentative allocation of budget across all
// unfinished wishes, proportionally to category weight. It is the only
// writer of Wish.PreviewProgress and Category.Allocated.
//
// Category envelopes are computed independently from the original budget
// and total percent: when a category's envelope is capped by its own
// remaining need, the excess is NOT redistributed to other categories in
// the same pass. It surfaces as Unallocated instead.
//
// Distribute is idempotent: with unchanged committed state and the same
// budget, repeated calls produce identical previews and envelopes.
func Distribute(wl *model.Wishlist, budget model.Money) (Result, error) {
	if budget <= 0 {
		return Result{}, ErrBudgetNotPositive
	}

	// Discard any earlier pending preview before computing a new one.
	resetPreview(wl)

	if wl.TotalRemaining() == 0 {
		return Result{}, ErrNothingToFund
	}

	var totalPercent float64
	for _, c := range wl.Categories {
		if len(c.UncompletedPreviewWishes()) > 0 {
			totalPercent += c.Percent
		}
	}
	if totalPercent <= 0 {
		return Result{}, ErrNoEligibleCategory
	}

	wl.CurrentBudget = budget

	// Category envelopes, capped by each category's own remaining need.
	res := Result{Budget: budget}
	for _, c := range wl.Categories {
		if len(c.UncompletedPreviewWishes()) == 0 {
			continue
		}
		allocation := model.RoundMoney(float64(budget) * c.Percent / totalPercent)
		if rem := c.TotalRemaining(); allocation > rem {
			allocation = rem
		}
		c.Allocated = allocation
		res.Allocations = append(res.Allocations, CategoryAllocation{
			CategoryID: c.ID,
			Name:       c.Name,
			Allocated:  allocation,
		})
	}

	// Fill wishes by position priority, draining both the category
	// envelope and the shared budget.
	remainingBudget := budget
	for _, c := range wl.Categories {
		categoryRemaining := c.Allocated
		if categoryRemaining <= 0 {
			continue
		}
		for _, w := range sortByPosition(c.UncompletedPreviewWishes()) {
			if remainingBudget <= 0 || categoryRemaining <= 0 {
				break
			}
			toAllocate := minMoney(w.PreviewRemaining(), categoryRemaining, remainingBudget)
			if toAllocate > 0 {
				w.PreviewProgress += toAllocate
				categoryRemaining -= toAllocate
				remainingBudget -= toAllocate
			}
		}
	}

	res.Unallocated = remainingBudget
	return res, nil
}

// Commit promotes every wish's preview progress to committed progress,
// ending the pending distribution.
func Commit(wl *model.Wishlist) {
	for _, c := range wl.Categories {
		for _, w := range c.Wishes {
			w.Progress = w.PreviewProgress
		}
	}
}

// Reset discards the pending preview, restoring every wish's preview
// progress to its committed value. Safe to call when nothing is pending.
func Reset(wl *model.Wishlist) {
	resetPreview(wl)
}

func resetPreview(wl *model.Wishlist) {
	for _, c := range wl.Categories {
		c.Allocated = 0
		for _, w := range c.Wishes {
			w.PreviewProgress = w.Progress
		}
	}
}

func sortByPosition(wishes []*model.Wish) []*model.Wish {
	out := make([]*model.Wish, len(wishes))
	copy(out, wishes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

func minMoney(vals ...model.Money) model.Money {
	m := model.Money(math.MaxInt64)
	for _, v := range vals {
		if v < m {
			m = v
		}
	}
	return m
}
