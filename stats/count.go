// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Count: a value with an uncorrelated one-sigma uncertainty.
//   - Arithmetic that propagates the uncertainty in quadrature.

package stats

import (
	"math"

	"github.com/katalvlaran/hepkin/format"
	"github.com/katalvlaran/hepkin/kinematics"
)

const opRatio = "Ratio"

// DefaultDecimals is the number of decimals Count.String prints.
const DefaultDecimals = 2

// Count is a value with its one-sigma uncertainty. The zero value is an
// empty count.
type Count struct {
	Value       float64
	Uncertainty float64
}

// Add returns the sum of two independent counts.
func (c Count) Add(o Count) Count {
	return Count{
		Value:       c.Value + o.Value,
		Uncertainty: kinematics.AddInQuadrature(c.Uncertainty, o.Uncertainty),
	}
}

// Scale multiplies value and uncertainty by f (a luminosity or cross-section
// factor). The uncertainty stays non-negative.
func (c Count) Scale(f float64) Count {
	return Count{Value: c.Value * f, Uncertainty: math.Abs(c.Uncertainty * f)}
}

// Ratio returns c/o for independent counts, with
//
//	σ = sqrt((σc/o)² + (c·σo/o²)²)
//
// Errors:
//   - ErrZeroDenominator when o.Value == 0.
func (c Count) Ratio(o Count) (Count, error) {
	if o.Value == 0 {
		return Count{}, statsErrorf(opRatio, ErrZeroDenominator)
	}
	b := o.Value

	return Count{
		Value:       c.Value / b,
		Uncertainty: kinematics.AddInQuadrature(c.Uncertainty/b, c.Value*o.Uncertainty/(b*b)),
	}, nil
}

// RelativeUncertainty returns σ/|value|, or +Inf for a zero value with a
// non-zero uncertainty, or 0 for the empty count.
func (c Count) RelativeUncertainty() float64 {
	if c.Value == 0 {
		if c.Uncertainty == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return c.Uncertainty / math.Abs(c.Value)
}

// String renders "value ± uncertainty" with DefaultDecimals decimals.
func (c Count) String() string {
	return c.Text(DefaultDecimals)
}

// Text renders "value ± uncertainty" with the given number of decimals.
func (c Count) Text(decimals int) string {
	return format.RoundNumber(c.Value, decimals, 1) + " ± " + format.RoundNumber(c.Uncertainty, decimals, 1)
}
