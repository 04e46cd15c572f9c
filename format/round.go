// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strconv"
	"strings"
)

// NoValue is what RoundNumber renders for a zero denominator.
const NoValue = " - "

// RoundNumber formats num/denom with exactly decimals digits after the dot,
// rounding half away from zero. The result carries a leading "-" when
// num·denom < 0, even if the rounded magnitude is zero.
//
// Behavior highlights:
//   - denom == 0 returns NoValue.
//   - decimals < 0 behaves as 0.
//   - A non-finite quotient is rendered as "NaN", "+Inf" or "-Inf".
func RoundNumber(num float64, decimals int, denom float64) string {
	if denom == 0 {
		return NoValue
	}
	if decimals < 0 {
		decimals = 0
	}

	q := num / denom
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return strconv.FormatFloat(q, 'g', -1, 64)
	}
	neg := num != 0 && (num < 0) != (denom < 0)

	scaled := math.Floor(math.Abs(q)*math.Pow10(decimals) + 0.5)
	digits := strconv.FormatFloat(scaled, 'f', 0, 64)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	if decimals == 0 {
		sb.WriteString(digits)

		return sb.String()
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	cut := len(digits) - decimals
	sb.WriteString(digits[:cut])
	sb.WriteByte('.')
	sb.WriteString(digits[cut:])

	return sb.String()
}
