package chart

import (
	"math"
	"strconv"
)

// FormatValue prints v the way bar labels show it: whole numbers without a
// decimal point, fractions rounded to two places with trailing zeros removed.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	r := math.Round(v*100) / 100
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// FormatInt prints v truncated to an integer.
func FormatInt(v float64) string {
	return strconv.Itoa(int(v))
}

// FormatFixed2 prints v with exactly two decimals.
func FormatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
