package fdr

import (
	"github.com/Old-Green-Man/qvalue/common"
	"github.com/Old-Green-Man/qvalue/model"
	"gonum.org/v1/gonum/stat"
)

// Pi0Estimator estimates the proportion of true null hypotheses from a set
// of p-values, following Storey and Tibshirani, 2003. Instead of the usual
// spline fit over the candidate curve it takes the mean of the flattest
// (minimum standard deviation) window of candidates: the candidates converge
// to pi0 as lambda approaches 1, so the most stable region of the curve is
// the most trustworthy estimate.
type Pi0Estimator struct {
	pvalues []float64
	opts    *Options

	result *model.Pi0Result
	fitted bool
}

func NewPi0Estimator(pvalues []float64, opts *Options) (*Pi0Estimator, error) {
	if err := validatePValues(pvalues); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	if opts.Pi0Override != nil && !validPi0(*opts.Pi0Override) {
		return nil, common.ErrorInvalidPi0
	}

	return &Pi0Estimator{
		pvalues: pvalues,
		opts:    opts,
	}, nil
}

// Estimate returns a copy of the result, the cached one stays untouched if
// the caller mutates the curve or window.
func (e *Pi0Estimator) Estimate() *model.Pi0Result {
	if e.fitted {
		return e.result.Clone()
	}

	res := &model.Pi0Result{}

	switch {
	case e.opts.Pi0Override != nil:
		res.Pi0 = *e.opts.Pi0Override
		res.Overridden = true
	case len(e.pvalues) < e.opts.MinSampleSize:
		res.Pi0 = 1.0
		res.Degenerate = true
		res.DegenerateReason = model.DegenerateTooFewPValues
	default:
		curve := e.candidateCurve()
		if len(curve) == 0 {
			// every p-value is 0, nothing to scan
			res.Pi0 = 1.0
			res.Degenerate = true
			res.DegenerateReason = model.DegenerateEmptyCurve
			break
		}
		window := selectStabilityWindow(curve, e.opts.WindowWidth)
		res.Pi0 = clip01(window.Mean)
		res.Window = window
		res.Curve = curve
	}

	e.result = res
	e.fitted = true
	return res.Clone()
}

// candidateCurve computes pi0_hat(lambda) = count(p > lambda) / (m * (1 - lambda))
// for each grid point, stopping once no p-value exceeds lambda.
func (e *Pi0Estimator) candidateCurve() []model.CandidatePoint {
	m := e.opts.numTests(len(e.pvalues))

	curve := make([]model.CandidatePoint, 0, len(e.opts.LambdaGrid))
	for _, lambda := range e.opts.LambdaGrid {
		cnt := countGreater(e.pvalues, lambda)
		if cnt == 0 {
			break
		}
		curve = append(curve, model.CandidatePoint{
			Lambda: lambda,
			Pi0Hat: float64(cnt) / (m * (1 - lambda)),
		})
	}
	return curve
}

// selectStabilityWindow slides a fixed-width window over the curve and picks
// the one with the minimum sample standard deviation. Ties go to the window
// starting at the larger lambda, where the candidates are least biased by
// alternative-hypothesis p-values clustering near 0.
func selectStabilityWindow(curve []model.CandidatePoint, width int) *model.StabilityWindow {
	hats := make([]float64, len(curve))
	for i, point := range curve {
		hats[i] = point.Pi0Hat
	}

	if len(hats) <= width {
		return &model.StabilityWindow{
			Start:  0,
			Width:  len(hats),
			Mean:   stat.Mean(hats, nil),
			StdDev: sampleStdDev(hats),
		}
	}

	best := &model.StabilityWindow{}
	for start := 0; start+width <= len(hats); start++ {
		window := hats[start : start+width]
		sd := sampleStdDev(window)
		if start == 0 || sd <= best.StdDev {
			best = &model.StabilityWindow{
				Start:  start,
				Width:  width,
				Mean:   stat.Mean(window, nil),
				StdDev: sd,
			}
		}
	}
	return best
}

func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}
