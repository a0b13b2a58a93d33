package model

import (
	"sort"

	"github.com/google/uuid"
)

// Category groups wishes under a percentage weight. Categories exclusively
// own their wishes; a wish never outlives its category.
type Category struct {
	ID      string
	Name    string
	Percent float64 // 0-100 weight; categories are not required to sum to 100
	Wishes  []*Wish

	// Allocated is the envelope computed for this category by the last
	// distribution run. Transient — never persisted.
	Allocated Money
}

// NewCategory creates an empty category.
func NewCategory(name string, percent float64) *Category {
	return &Category{
		ID:      uuid.NewString(),
		Name:    name,
		Percent: percent,
	}
}

// AddWish appends a wish, assigning it the next position (tail of the list).
func (c *Category) AddWish(w *Wish) {
	w.Position = len(c.Wishes)
	c.Wishes = append(c.Wishes, w)
}

// RemoveWish deletes the wish with the given ID. Positions of the remaining
// wishes are left untouched; ordering only ever compares positions.
func (c *Category) RemoveWish(id string) bool {
	for i, w := range c.Wishes {
		if w.ID == id {
			c.Wishes = append(c.Wishes[:i], c.Wishes[i+1:]...)
			return true
		}
	}
	return false
}

// SortedWishes returns the wishes ordered by position ascending.
func (c *Category) SortedWishes() []*Wish {
	out := make([]*Wish, len(c.Wishes))
	copy(out, c.Wishes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// TotalCost sums the cost of all wishes.
func (c *Category) TotalCost() Money {
	var sum Money
	for _, w := range c.Wishes {
		sum += w.Cost
	}
	return sum
}

// TotalProgress sums committed progress across all wishes.
func (c *Category) TotalProgress() Money {
	var sum Money
	for _, w := range c.Wishes {
		sum += w.Progress
	}
	return sum
}

// TotalPreviewProgress sums preview progress across all wishes.
func (c *Category) TotalPreviewProgress() Money {
	var sum Money
	for _, w := range c.Wishes {
		sum += w.PreviewProgress
	}
	return sum
}

// TotalRemaining sums the committed shortfall across all wishes.
func (c *Category) TotalRemaining() Money {
	var sum Money
	for _, w := range c.Wishes {
		sum += w.Remaining()
	}
	return sum
}

// TotalPreviewRemaining sums the preview shortfall across all wishes.
func (c *Category) TotalPreviewRemaining() Money {
	var sum Money
	for _, w := range c.Wishes {
		sum += w.PreviewRemaining()
	}
	return sum
}

// UncompletedWishes returns wishes whose committed progress is below cost.
func (c *Category) UncompletedWishes() []*Wish {
	var out []*Wish
	for _, w := range c.Wishes {
		if w.Progress < w.Cost {
			out = append(out, w)
		}
	}
	return out
}

// UncompletedPreviewWishes returns wishes whose preview progress is below cost.
func (c *Category) UncompletedPreviewWishes() []*Wish {
	var out []*Wish
	for _, w := range c.Wishes {
		if w.PreviewProgress < w.Cost {
			out = append(out, w)
		}
	}
	return out
}
