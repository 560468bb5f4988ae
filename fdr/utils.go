package fdr

import (
	"math"

	"github.com/Old-Green-Man/qvalue/common"
)

// validatePValues rejects NaN explicitly: NaN compares false against any
// bound, so a plain range check would let it through.
func validatePValues(values []float64) error {
	if len(values) == 0 {
		return common.ErrorEmptyInput
	}
	for _, v := range values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return common.ErrorInvalidValue
		}
	}
	return nil
}

func validPi0(pi0 float64) bool {
	return !math.IsNaN(pi0) && pi0 >= 0 && pi0 <= 1
}

func arange(start, stop, step float64) []float64 {
	if step <= 0 {
		return []float64{start}
	}
	res := []float64{}
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		res = append(res, v)
	}
	return res
}

func countGreater(values []float64, threshold float64) int {
	cnt := 0
	for _, v := range values {
		if v > threshold {
			cnt++
		}
	}
	return cnt
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
