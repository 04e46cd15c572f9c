// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeight indicates a NaN or infinite event weight.
	ErrInvalidWeight = errors.New("stats: weight must be finite")

	// ErrZeroDenominator indicates a ratio with a zero-valued denominator.
	ErrZeroDenominator = errors.New("stats: zero denominator")
)

// statsErrorf wraps err with the operation name.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
