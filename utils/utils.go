package utils

import "math"

// FormatFloat rounds f to the given number of decimal places for log output.
func FormatFloat(f float64, round int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow10(round)
	return math.Round(f*scale) / scale
}
