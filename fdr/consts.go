package fdr

const (
	// DefaultWindowWidth covers roughly the same share of the default grid
	// as the suffix windows the reference estimator settles on for
	// well-behaved datasets, and is wide enough for a stable sample stddev.
	DefaultWindowWidth = 7

	// DefaultMinSampleSize: below this many p-values the candidate curve is
	// too noisy to trust, pi0 falls back to the conservative 1.0.
	DefaultMinSampleSize = 100

	// the stop bound is exclusive, the default grid ends at 0.95
	DefaultLambdaStart = 0.0
	DefaultLambdaStop  = 0.96
	DefaultLambdaStep  = 0.05
)
