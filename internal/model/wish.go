// Package model defines the wishsplit domain types: wishes, categories,
// and the wishlist root they hang off.
package model

import (
	"math"

	"github.com/google/uuid"
)

// Money is a whole currency unit amount. Fractional input is rounded at
// every ingress point, so Money values are always exact integers.
type Money = int64

// RoundMoney converts a possibly-fractional amount to whole currency units,
// rounding half away from zero.
func RoundMoney(v float64) Money {
	return int64(math.Round(v))
}

// Wish is a single item the user is saving toward.
//
// Progress is the committed funded amount. PreviewProgress is the tentative
// amount shown while a distribution is pending; outside a pending
// distribution the two are always equal.
type Wish struct {
	ID              string
	Name            string
	Cost            Money
	Progress        Money
	PreviewProgress Money
	Position        int // ordering within the category; unique, not necessarily contiguous
}

// NewWish creates a wish with rounded, clamped amounts and no pending preview.
func NewWish(name string, cost, progress float64) *Wish {
	c := RoundMoney(cost)
	if c < 0 {
		c = 0
	}
	p := clampMoney(RoundMoney(progress), 0, c)
	return &Wish{
		ID:              uuid.NewString(),
		Name:            name,
		Cost:            c,
		Progress:        p,
		PreviewProgress: p,
	}
}

// Remaining is the amount still needed against committed progress.
func (w *Wish) Remaining() Money {
	return maxMoney(0, w.Cost-w.Progress)
}

// PreviewRemaining is the amount still needed against preview progress.
func (w *Wish) PreviewRemaining() Money {
	return maxMoney(0, w.Cost-w.PreviewProgress)
}

// Completed reports whether committed progress covers the full cost.
func (w *Wish) Completed() bool {
	return w.Progress >= w.Cost
}

// SetCost updates the cost, clamps committed progress to it, and resyncs
// the preview. A pending distribution for this wish is effectively
// discarded: after a cost edit the wish is back in the idle state.
func (w *Wish) SetCost(cost float64) {
	c := RoundMoney(cost)
	if c < 0 {
		c = 0
	}
	w.Cost = c
	if w.Progress > c {
		w.Progress = c
	}
	w.PreviewProgress = w.Progress
}

// AdjustProgress adds (or subtracts) amount from committed progress,
// clamped to [0, Cost]. Both progress fields move together; this operation
// bypasses the preview mechanism entirely.
func (w *Wish) AdjustProgress(amount float64, add bool) {
	delta := RoundMoney(amount)
	next := w.Progress + delta
	if !add {
		next = w.Progress - delta
	}
	w.Progress = clampMoney(next, 0, w.Cost)
	w.PreviewProgress = w.Progress
}

func clampMoney(v, lo, hi Money) Money {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxMoney(a, b Money) Money {
	if a > b {
		return a
	}
	return b
}
