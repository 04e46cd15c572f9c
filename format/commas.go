// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// grouping prints integers with English thousands separators.
var grouping = message.NewPrinter(language.English)

// AddCommas renders num in its shortest exact decimal form with the integer
// part grouped in thousands: 1234567.5 -> "1,234,567.5".
//
// Integer parts beyond the int64 range are left ungrouped; NaN and ±Inf are
// rendered as strconv does.
func AddCommas(num float64) string {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}

	s := strconv.FormatFloat(math.Abs(num), 'f', -1, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")

	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = grouping.Sprintf("%d", n)
	}

	var sb strings.Builder
	if math.Signbit(num) && num != 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart)
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	return sb.String()
}
