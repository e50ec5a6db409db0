package kde

import (
	"context"

	"github.com/statkit/diffusion-kde/model"
	"github.com/statkit/diffusion-kde/utils"
	"go.uber.org/zap"
)

// Estimate builds a DiffusionKDE for the samples and runs it, the one call
// most callers need.
func Estimate(ctx context.Context, samples []float64, opts *Options) (*model.DensityEstimate, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("Estimate recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("sampleCnt", len(samples)))
		}
	}()

	kde, err := NewDiffusionKDE(samples, opts)
	if err != nil {
		logger.Error("NewDiffusionKDE failed", zap.Error(err))
		return nil, err
	}

	estimate, err := kde.Estimate(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("kde estimate done",
		zap.Int("sampleCnt", len(samples)),
		zap.Int("gridSize", len(estimate.Mesh)),
		zap.Float64("meshMin", estimate.Mesh[0]),
		zap.Float64("meshMax", estimate.Mesh[len(estimate.Mesh)-1]),
		zap.Float64("bandwidth", estimate.Bandwidth),
		zap.Float64("diffusionTime", estimate.DiffusionTime))

	return estimate, nil
}
