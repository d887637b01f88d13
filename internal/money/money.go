// Package money rounds currency amounts the way NUMERIC(…,2) columns store them.
package money

import "math"

// Round rounds v to cents, halves away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Sum adds the amounts and rounds the result.
func Sum(vs ...float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}
	return Round(total)
}

// Fits reports whether v fits a NUMERIC(precision,2) column once rounded.
func Fits(v float64, precision int) bool {
	return math.Abs(Round(v)) < math.Pow10(precision-2)
}
