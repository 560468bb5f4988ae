package fdr

// Options configures the pi0 estimation scan. A nil Options means all
// defaults. The zero value of each field also means "use the default".
type Options struct {
	// LambdaGrid is the ordered sequence of thresholds in [0, 1) swept to
	// build the candidate curve.
	LambdaGrid []float64

	// WindowWidth is the number of consecutive grid points per stability
	// window.
	WindowWidth int

	// MinSampleSize is the p-value count below which pi0 is forced to 1.0.
	MinSampleSize int

	// Pi0Override skips estimation entirely and uses the supplied value.
	Pi0Override *float64

	// NumTests is the size of the full test family when the supplied
	// p-values are only a subset of it. Defaults to len(pvalues).
	NumTests float64
}

func DefaultLambdaGrid() []float64 {
	return arange(DefaultLambdaStart, DefaultLambdaStop, DefaultLambdaStep)
}

func (o *Options) withDefaults() *Options {
	res := &Options{}
	if o != nil {
		*res = *o
	}
	if len(res.LambdaGrid) == 0 {
		res.LambdaGrid = DefaultLambdaGrid()
	}
	if res.WindowWidth <= 0 {
		res.WindowWidth = DefaultWindowWidth
	}
	if res.MinSampleSize <= 0 {
		res.MinSampleSize = DefaultMinSampleSize
	}
	return res
}

func (o *Options) numTests(pvalueCnt int) float64 {
	if o != nil && o.NumTests > 0 {
		return o.NumTests
	}
	return float64(pvalueCnt)
}
