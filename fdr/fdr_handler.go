package fdr

import (
	"context"

	"github.com/Old-Green-Man/qvalue/common"
	"github.com/Old-Green-Man/qvalue/model"
	"github.com/Old-Green-Man/qvalue/utils"
	"go.uber.org/zap"
)

// CalculateQValues runs the full pipeline: estimate pi0 from the p-values
// (or take the configured override), then transform the p-values into
// q-values. The q-values come back aligned index for index with the input.
func CalculateQValues(ctx context.Context, pvalues []float64, opts *Options) (result *model.QValueResult, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateQValues recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("pvalueCnt", len(pvalues)))
			result, err = nil, common.ErrorCalculateFailed
		}
	}()

	pi0Result, err := CalculatePi0(ctx, pvalues, opts)
	if err != nil {
		return nil, err
	}

	qvalues, err := ComputeQValues(pvalues, pi0Result.Pi0, opts.numTests(len(pvalues)))
	if err != nil {
		logger.Error("ComputeQValues failed", zap.Error(err),
			zap.Float64("pi0", pi0Result.Pi0))
		return nil, err
	}

	return &model.QValueResult{
		QValues: qvalues,
		Pi0:     pi0Result,
	}, nil
}

// CalculatePi0 wraps the estimator with input validation logging and the
// degenerate-fallback warning.
func CalculatePi0(ctx context.Context, pvalues []float64, opts *Options) (*model.Pi0Result, error) {
	logger := utils.GetLogger(ctx)

	estimator, err := NewPi0Estimator(pvalues, opts)
	if err != nil {
		logger.Error("NewPi0Estimator failed", zap.Error(err),
			zap.Int("pvalueCnt", len(pvalues)))
		return nil, err
	}

	res := estimator.Estimate()
	if res.Degenerate {
		switch res.DegenerateReason {
		case model.DegenerateEmptyCurve:
			logger.Warn("no p-value exceeds the smallest lambda, using conservative fallback 1.0",
				zap.Int("pvalueCnt", len(pvalues)))
		default:
			logger.Warn("too few p-values to estimate pi0, using conservative fallback 1.0",
				zap.Int("pvalueCnt", len(pvalues)))
		}
	} else {
		logger.Info("pi0 estimate done",
			zap.Float64("pi0", utils.FormatFloat(res.Pi0, 3)),
			zap.Bool("overridden", res.Overridden))
	}

	return res, nil
}
