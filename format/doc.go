// Package format renders the numbers that end up in analysis tables and
// progress logs: fixed-decimal ratios, thousands separators, wall-clock
// durations, and delimiter-based tokenisation of option strings.
//
// What is inside?
//
//	RoundNumber(num, decimals, denom)  "12.35", "-0.3", " - " for denom == 0
//	AddCommas(num)                     "1,234,567.5"
//	HoursMinSec(seconds)               "01:02:03", "123:00:00"
//	Tokenize(input, delims)            strtok-style split, empty tokens dropped
//
// All functions are pure and safe for concurrent use.
package format
