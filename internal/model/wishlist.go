package model

// Wishlist is the application root state: an ordered list of categories
// (list order is display order) plus the last budget submitted for
// distribution. A single instance is loaded at startup, mutated by every
// editing operation, and flushed back to storage after each mutation.
type Wishlist struct {
	Categories    []*Category
	CurrentBudget Money
}

// AddCategory appends a new category and returns it.
func (wl *Wishlist) AddCategory(name string, percent float64) *Category {
	c := NewCategory(name, percent)
	wl.Categories = append(wl.Categories, c)
	return c
}

// RemoveCategory deletes the category with the given ID, and with it all
// of its wishes.
func (wl *Wishlist) RemoveCategory(id string) bool {
	for i, c := range wl.Categories {
		if c.ID == id {
			wl.Categories = append(wl.Categories[:i], wl.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// CategoryByID returns the category with the given ID, or nil.
func (wl *Wishlist) CategoryByID(id string) *Category {
	for _, c := range wl.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// WishByID returns the wish with the given ID and its owning category.
func (wl *Wishlist) WishByID(id string) (*Wish, *Category) {
	for _, c := range wl.Categories {
		for _, w := range c.Wishes {
			if w.ID == id {
				return w, c
			}
		}
	}
	return nil, nil
}

// MoveWish reorders a wish within its category to the given index in the
// sorted order, renumbering positions 0..n-1. Mirrors a drag-reorder.
func (wl *Wishlist) MoveWish(wishID string, toIndex int) bool {
	w, c := wl.WishByID(wishID)
	if w == nil {
		return false
	}

	sorted := c.SortedWishes()
	from := -1
	for i, sw := range sorted {
		if sw.ID == wishID {
			from = i
			break
		}
	}
	if from < 0 {
		return false
	}
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex >= len(sorted) {
		toIndex = len(sorted) - 1
	}

	sorted = append(sorted[:from], sorted[from+1:]...)
	sorted = append(sorted[:toIndex], append([]*Wish{w}, sorted[toIndex:]...)...)
	for i, sw := range sorted {
		sw.Position = i
	}
	return true
}

// TotalRemaining sums the committed shortfall across all categories.
func (wl *Wishlist) TotalRemaining() Money {
	var sum Money
	for _, c := range wl.Categories {
		sum += c.TotalRemaining()
	}
	return sum
}

// HasPendingPreview reports whether any wish's preview diverges from its
// committed progress, i.e. a distribution is awaiting commit or reset.
func (wl *Wishlist) HasPendingPreview() bool {
	for _, c := range wl.Categories {
		for _, w := range c.Wishes {
			if w.PreviewProgress != w.Progress {
				return true
			}
		}
	}
	return false
}
