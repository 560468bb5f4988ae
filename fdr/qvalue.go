package fdr

import (
	"math"
	"sort"

	"github.com/Old-Green-Man/qvalue/common"
)

// ComputeQValues turns p-values into Storey-Tibshirani q-values given a pi0
// estimate. In pi0 * numTests * p / rank the numerator is the expected number
// of false positives at threshold p and the denominator the number of tests
// called significant, so each q-value is the minimum FDR attainable when
// calling that test significant. The backward cumulative min keeps q-values
// non-decreasing in p-value rank.
//
// numTests is the size of the full test family, 0 means len(pvalues).
// The returned q-values are in the same order as the input p-values,
// which are left untouched.
func ComputeQValues(pvalues []float64, pi0 float64, numTests float64) ([]float64, error) {
	n := len(pvalues)
	if err := validatePValues(pvalues); err != nil {
		return nil, err
	}
	if !validPi0(pi0) {
		return nil, common.ErrorInvalidPi0
	}
	if numTests <= 0 {
		numTests = float64(n)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return pvalues[order[i]] < pvalues[order[j]]
	})

	qSorted := make([]float64, n)
	qSorted[n-1] = pi0 * numTests * pvalues[order[n-1]] / float64(n)
	for i := n - 2; i >= 0; i-- {
		raw := pi0 * numTests * pvalues[order[i]] / float64(i+1)
		qSorted[i] = math.Min(raw, qSorted[i+1])
	}

	res := make([]float64, n)
	for rank, idx := range order {
		res[idx] = clip01(qSorted[rank])
	}
	return res, nil
}
