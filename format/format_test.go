package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hepkin/format"
)

func TestRoundNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		num      float64
		decimals int
		denom    float64
		want     string
	}{
		{"two thirds", 2, 2, 3, "0.67"},
		{"half up", 1, 0, 2, "1"},
		{"half up decimals", 0.125, 2, 1, "0.13"},
		{"negative numerator", -1, 1, 4, "-0.3"},
		{"negative denominator", 1, 1, -4, "-0.3"},
		{"both negative", -1, 1, -4, "0.3"},
		{"zero padding", 5, 3, 1, "5.000"},
		{"leading zeros", 3, 4, 1000, "0.0030"},
		{"large", 1234.5678, 2, 1, "1234.57"},
		{"negative decimals", 2.6, -1, 1, "3"},
		{"zero", 0, 2, 7, "0.00"},
		{"negative rounds to zero", -0.001, 2, 1, "-0.00"},
		{"zero denominator", 1, 2, 0, format.NoValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, format.RoundNumber(tc.num, tc.decimals, tc.denom))
		})
	}
}

func TestRoundNumber_NonFinite(t *testing.T) {
	assert.Equal(t, "NaN", format.RoundNumber(math.NaN(), 2, 1))
	assert.Equal(t, "+Inf", format.RoundNumber(math.Inf(1), 2, 1))
	assert.Equal(t, "-Inf", format.RoundNumber(math.Inf(1), 2, -1))
}

func TestAddCommas(t *testing.T) {
	t.Parallel()
	tests := []struct {
		num  float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1234567.5, "1,234,567.5"},
		{-98765.25, "-98,765.25"},
		{0.001, "0.001"},
		{-1000000, "-1,000,000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, format.AddCommas(tc.num), "AddCommas(%v)", tc.num)
	}
	assert.Equal(t, "NaN", format.AddCommas(math.NaN()))
}

func TestHoursMinSec(t *testing.T) {
	t.Parallel()
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{61, "00:01:01"},
		{3723, "01:02:03"},
		{86399, "23:59:59"},
		{360000, "100:00:00"},
		{-3723, "-01:02:03"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, format.HoursMinSec(tc.seconds), "HoursMinSec(%d)", tc.seconds)
	}
	assert.Equal(t, "-2562047788015215:30:08", format.HoursMinSec(math.MinInt64))
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		delims string
		want   []string
	}{
		{"single delimiter", "a,b,c", ",", []string{"a", "b", "c"}},
		{"runs dropped", ",,a,,b,", ",", []string{"a", "b"}},
		{"any of set", "pt>30&&eta<2 njet", "&> ", []string{"pt", "30", "eta<2", "njet"}},
		{"no delimiter present", "abc", ";", []string{"abc"}},
		{"empty delims", "a b", "", []string{"a b"}},
		{"only delimiters", ";;;", ";", []string{}},
		{"empty input", "", ",", []string{}},
	}
	for _, tc := range tests {
		got := format.Tokenize(tc.input, tc.delims)
		assert.NotNil(t, got, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}
