// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Counter: a weighted event counter backed by a one-bin hbook.H1D.
//   - CountIf: select events from a slice and count them in one pass.
//
// Notes:
//   - Every fill lands in the single bin at x = 0; the histogram's total
//     distribution (under- and overflow included) is what Count reads, so the
//     result is the integral over all bins with its error.

package stats

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

const opFill = "Fill"

// Counter accumulates weighted entries. It is not safe for concurrent Fill.
type Counter struct {
	h *hbook.H1D
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{h: hbook.NewH1D(1, -1, 1)}
}

// Fill adds one entry with weight w.
//
// Errors:
//   - ErrInvalidWeight when w is NaN or ±Inf; the counter is unchanged.
func (c *Counter) Fill(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return statsErrorf(opFill, ErrInvalidWeight)
	}
	c.h.Fill(0, w)

	return nil
}

// Count returns Σw ± sqrt(Σw²).
func (c *Counter) Count() Count {
	return Count{Value: c.h.SumW(), Uncertainty: math.Sqrt(c.h.SumW2())}
}

// Entries returns the number of Fill calls that were accepted.
func (c *Counter) Entries() int64 {
	return c.h.Entries()
}

// CountIf counts the events passing cut, each weighted by weight(e).
// A nil cut selects every event; a nil weight counts each event as 1.
//
// Errors:
//   - ErrInvalidWeight when a selected event has a non-finite weight.
func CountIf[T any](events []T, weight func(T) float64, cut func(T) bool) (Count, error) {
	c := NewCounter()
	for _, e := range events {
		if cut != nil && !cut(e) {
			continue
		}
		w := 1.0
		if weight != nil {
			w = weight(e)
		}
		if err := c.Fill(w); err != nil {
			return Count{}, err
		}
	}

	return c.Count(), nil
}
