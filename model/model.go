package model

// CandidatePoint is one point of the pi0 candidate curve:
// Pi0Hat = count(p > Lambda) / (m * (1 - Lambda))
type CandidatePoint struct {
	Lambda float64 `json:"lambda"`
	Pi0Hat float64 `json:"pi0_hat"`
}

// StabilityWindow is a contiguous run of candidate curve points.
// The estimator picks the window with the smallest StdDev.
type StabilityWindow struct {
	Start  int     `json:"start"`
	Width  int     `json:"width"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

type DegenerateReason int

const (
	DegenerateTooFewPValues DegenerateReason = 1
	DegenerateEmptyCurve    DegenerateReason = 2
)

type Pi0Result struct {
	Pi0 float64 `json:"pi0"`

	// Degenerate means the conservative 1.0 fallback was used instead of
	// an estimate, DegenerateReason tells why.
	Degenerate       bool             `json:"degenerate,omitempty"`
	DegenerateReason DegenerateReason `json:"degenerate_reason,omitempty"`

	// Overridden means a caller-supplied pi0 was used, no scan was run.
	Overridden bool `json:"overridden,omitempty"`

	Window *StabilityWindow `json:"window,omitempty"`
	Curve  []CandidatePoint `json:"curve,omitempty"`
}

func (r *Pi0Result) Clone() *Pi0Result {
	if r == nil {
		return nil
	}
	res := *r
	if r.Window != nil {
		window := *r.Window
		res.Window = &window
	}
	if r.Curve != nil {
		res.Curve = append([]CandidatePoint{}, r.Curve...)
	}
	return &res
}

func (r *Pi0Result) Estimated() bool {
	if r == nil {
		return false
	}
	return !r.Degenerate && !r.Overridden
}

type QValueResult struct {
	// QValues is aligned index for index with the input p-values.
	QValues []float64  `json:"qvalues"`
	Pi0     *Pi0Result `json:"pi0,omitempty"`
}

func (r *QValueResult) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.QValues) == 0
}
