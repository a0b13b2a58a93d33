package engine

import (
	"errors"
	"testing"

	"github.com/theirongolddev/wishsplit/internal/model"
)

// sampleWishlist builds the standard two-category dataset used across the
// distribution tests: Electronics 40% (Laptop 15000/3000, Phone 10000/0)
// and Clothes 60% (Jacket 8000/0, Sneakers 5000/0).
func sampleWishlist() *model.Wishlist {
	wl := &model.Wishlist{}

	electronics := wl.AddCategory("Electronics", 40)
	electronics.AddWish(model.NewWish("Laptop", 15000, 3000))
	electronics.AddWish(model.NewWish("Phone", 10000, 0))

	clothes := wl.AddCategory("Clothes", 60)
	clothes.AddWish(model.NewWish("Jacket", 8000, 0))
	clothes.AddWish(model.NewWish("Sneakers", 5000, 0))

	return wl
}

func wishByName(t *testing.T, wl *model.Wishlist, name string) *model.Wish {
	t.Helper()
	for _, c := range wl.Categories {
		for _, w := range c.Wishes {
			if w.Name == name {
				return w
			}
		}
	}
	t.Fatalf("no wish named %q", name)
	return nil
}

func allocationFor(t *testing.T, res Result, name string) model.Money {
	t.Helper()
	for _, a := range res.Allocations {
		if a.Name == name {
			return a.Allocated
		}
	}
	t.Fatalf("no allocation for category %q", name)
	return 0
}

func TestDistribute_WeightedSplit(t *testing.T) {
	wl := sampleWishlist()

	res, err := Distribute(wl, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := allocationFor(t, res, "Electronics"); got != 4000 {
		t.Errorf("Electronics allocation = %d, want 4000", got)
	}
	if got := allocationFor(t, res, "Clothes"); got != 6000 {
		t.Errorf("Clothes allocation = %d, want 6000", got)
	}

	// Lowest position in each category is funded first.
	if got := wishByName(t, wl, "Laptop").PreviewProgress; got != 7000 {
		t.Errorf("Laptop preview = %d, want 7000", got)
	}
	if got := wishByName(t, wl, "Phone").PreviewProgress; got != 0 {
		t.Errorf("Phone preview = %d, want 0", got)
	}
	if got := wishByName(t, wl, "Jacket").PreviewProgress; got != 6000 {
		t.Errorf("Jacket preview = %d, want 6000", got)
	}
	if got := wishByName(t, wl, "Sneakers").PreviewProgress; got != 0 {
		t.Errorf("Sneakers preview = %d, want 0", got)
	}

	if res.Unallocated != 0 {
		t.Errorf("Unallocated = %d, want 0", res.Unallocated)
	}

	// Committed state is untouched until a commit.
	if got := wishByName(t, wl, "Laptop").Progress; got != 3000 {
		t.Errorf("Laptop progress = %d, want 3000 (unchanged)", got)
	}
	if !wl.HasPendingPreview() {
		t.Error("expected a pending preview after a successful distribution")
	}
}

func TestDistribute_RejectsNonPositiveBudget(t *testing.T) {
	for _, budget := range []model.Money{0, -500} {
		wl := sampleWishlist()

		_, err := Distribute(wl, budget)
		if !errors.Is(err, ErrBudgetNotPositive) {
			t.Fatalf("Distribute(%d) error = %v, want ErrBudgetNotPositive", budget, err)
		}
		if wl.CurrentBudget != 0 {
			t.Errorf("CurrentBudget = %d, want 0 (model untouched)", wl.CurrentBudget)
		}
		if wl.HasPendingPreview() {
			t.Error("rejected budget must not leave a pending preview")
		}
	}
}

func TestDistribute_NothingToFund(t *testing.T) {
	wl := &model.Wishlist{}
	c := wl.AddCategory("Done", 100)
	c.AddWish(model.NewWish("Paid off", 500, 500))

	_, err := Distribute(wl, 1000)
	if !errors.Is(err, ErrNothingToFund) {
		t.Fatalf("error = %v, want ErrNothingToFund", err)
	}
	if wl.HasPendingPreview() {
		t.Error("fully funded wishlist must stay idle")
	}
	if wl.CurrentBudget != 0 {
		t.Errorf("CurrentBudget = %d, want 0 (failed run leaves the model untouched)", wl.CurrentBudget)
	}
}

func TestDistribute_NoEligibleCategory(t *testing.T) {
	wl := &model.Wishlist{}
	c := wl.AddCategory("Weightless", 0)
	c.AddWish(model.NewWish("Thing", 100, 0))

	_, err := Distribute(wl, 1000)
	if !errors.Is(err, ErrNoEligibleCategory) {
		t.Fatalf("error = %v, want ErrNoEligibleCategory", err)
	}
}

func TestDistribute_FundedCategoryExcludedFromWeightBasis(t *testing.T) {
	wl := sampleWishlist()
	// Fully fund Electronics; its 40% must not dilute Clothes' share.
	wishByName(t, wl, "Laptop").AdjustProgress(12000, true)
	wishByName(t, wl, "Phone").AdjustProgress(10000, true)

	res, err := Distribute(wl, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Allocations) != 1 {
		t.Fatalf("allocations = %d, want 1 (only Clothes eligible)", len(res.Allocations))
	}
	if got := allocationFor(t, res, "Clothes"); got != 5000 {
		t.Errorf("Clothes allocation = %d, want 5000 (full budget)", got)
	}
	if got := wishByName(t, wl, "Jacket").PreviewProgress; got != 5000 {
		t.Errorf("Jacket preview = %d, want 5000", got)
	}
}

func TestDistribute_CappedEnvelopeIsNotRedistributed(t *testing.T) {
	wl := &model.Wishlist{}
	small := wl.AddCategory("Small", 50)
	small.AddWish(model.NewWish("Trinket", 100, 0))
	big := wl.AddCategory("Big", 50)
	big.AddWish(model.NewWish("House", 100000, 0))

	res, err := Distribute(wl, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Small's envelope is capped at its remaining need; the excess surfaces
	// as unallocated remainder instead of flowing to Big.
	if got := allocationFor(t, res, "Small"); got != 100 {
		t.Errorf("Small allocation = %d, want 100 (capped)", got)
	}
	if got := allocationFor(t, res, "Big"); got != 500 {
		t.Errorf("Big allocation = %d, want 500 (no rebalance)", got)
	}
	if res.Unallocated != 400 {
		t.Errorf("Unallocated = %d, want 400", res.Unallocated)
	}
}

func TestDistribute_PositionOrderWithinCategory(t *testing.T) {
	wl := &model.Wishlist{}
	c := wl.AddCategory("Queue", 100)
	first := model.NewWish("First", 100, 0)
	second := model.NewWish("Second", 100, 0)
	c.AddWish(second)
	c.AddWish(first)
	// Positions need not be contiguous; only their order matters.
	second.Position = 7
	first.Position = 2

	if _, err := Distribute(wl, 150); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.PreviewProgress != 100 {
		t.Errorf("First preview = %d, want 100 (funded first)", first.PreviewProgress)
	}
	if second.PreviewProgress != 50 {
		t.Errorf("Second preview = %d, want 50 (leftover)", second.PreviewProgress)
	}
}

func TestDistribute_Idempotent(t *testing.T) {
	wl := sampleWishlist()

	res1, err := Distribute(wl, 10000)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := snapshotPreviews(wl)

	res2, err := Distribute(wl, 10000)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := snapshotPreviews(wl)

	for name, v := range first {
		if second[name] != v {
			t.Errorf("preview for %s changed between runs: %d vs %d", name, v, second[name])
		}
	}
	if res1.Unallocated != res2.Unallocated {
		t.Errorf("unallocated changed between runs: %d vs %d", res1.Unallocated, res2.Unallocated)
	}
}

func TestDistribute_Conservation(t *testing.T) {
	wl := sampleWishlist()
	budget := model.Money(9137)

	res, err := Distribute(wl, budget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var placed model.Money
	for _, c := range wl.Categories {
		for _, w := range c.Wishes {
			if w.PreviewProgress < w.Progress {
				t.Errorf("%s: preview %d below committed %d", w.Name, w.PreviewProgress, w.Progress)
			}
			if w.PreviewProgress > w.Cost {
				t.Errorf("%s: preview %d above cost %d", w.Name, w.PreviewProgress, w.Cost)
			}
			placed += w.PreviewProgress - w.Progress
		}
	}

	if placed != budget-res.Unallocated {
		t.Errorf("placed = %d, want budget-unallocated = %d", placed, budget-res.Unallocated)
	}
}

func TestDistribute_DiscardsEarlierPreview(t *testing.T) {
	wl := sampleWishlist()

	if _, err := Distribute(wl, 10000); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// A second run with a different budget starts from committed state, not
	// from the abandoned preview.
	if _, err := Distribute(wl, 2000); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if got := wishByName(t, wl, "Laptop").PreviewProgress; got != 3800 {
		t.Errorf("Laptop preview = %d, want 3800 (3000 + 800)", got)
	}
	if got := wishByName(t, wl, "Jacket").PreviewProgress; got != 1200 {
		t.Errorf("Jacket preview = %d, want 1200", got)
	}
}

func TestCommit_PromotesPreview(t *testing.T) {
	wl := sampleWishlist()

	if _, err := Distribute(wl, 10000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Commit(wl)

	if got := wishByName(t, wl, "Laptop").Progress; got != 7000 {
		t.Errorf("Laptop progress = %d, want 7000", got)
	}
	if got := wishByName(t, wl, "Jacket").Progress; got != 6000 {
		t.Errorf("Jacket progress = %d, want 6000", got)
	}
	if wl.HasPendingPreview() {
		t.Error("commit must end the pending preview")
	}

	// The next distribution starts from the new committed values.
	if _, err := Distribute(wl, 10000); err != nil {
		t.Fatalf("post-commit run: %v", err)
	}
	if got := wishByName(t, wl, "Laptop").PreviewProgress; got != 11000 {
		t.Errorf("Laptop preview after second round = %d, want 11000", got)
	}
}

func TestReset_RestoresCommitted(t *testing.T) {
	wl := sampleWishlist()

	if _, err := Distribute(wl, 10000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Reset(wl)

	for _, c := range wl.Categories {
		if c.Allocated != 0 {
			t.Errorf("%s: allocated = %d, want 0 after reset", c.Name, c.Allocated)
		}
		for _, w := range c.Wishes {
			if w.PreviewProgress != w.Progress {
				t.Errorf("%s: preview %d != progress %d after reset", w.Name, w.PreviewProgress, w.Progress)
			}
		}
	}
	if wl.HasPendingPreview() {
		t.Error("reset must end the pending preview")
	}
}

func snapshotPreviews(wl *model.Wishlist) map[string]model.Money {
	out := make(map[string]model.Money)
	for _, c := range wl.Categories {
		for _, w := range c.Wishes {
			out[w.Name] = w.PreviewProgress
		}
	}
	return out
}
