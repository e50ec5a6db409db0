package kde

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/statkit/diffusion-kde/common"
	"github.com/statkit/diffusion-kde/model"
	"github.com/statkit/diffusion-kde/utils"
	"go.uber.org/zap"
)

// DiffusionKDE estimates a univariate density with the Botev-Grotowski-Kroese
// diffusion method: histogram of the sample, orthonormal cosine transform,
// fixed point solve for the diffusion time, heat kernel smoothing, inverse
// transform. The estimator never mutates its input and caches the fitted
// curve, so one value can serve Estimate, CDF and Quantile repeatedly.
type DiffusionKDE struct {
	// sorted copy of the input sample
	samples []float64

	// number of bins and mesh points, a power of two
	gridSize int

	// requested working interval; nil derives both sides from the data
	bounds *model.Bounds

	estimate *model.DensityEstimate
	cdf      []model.Cdf
	fited    bool
}

type Options struct {
	// GridSize is the number of histogram bins and mesh points. Zero selects
	// the default; any other positive value is rounded up to the next power
	// of two.
	GridSize int

	// Bounds fixes the working interval [Min, Max]. Nil derives both sides
	// from the data range; a NaN side derives that side only. Samples
	// outside the interval are discarded.
	Bounds *model.Bounds
}

func NewDiffusionKDE(samples []float64, opts *Options) (*DiffusionKDE, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("kde: empty sample: %w", common.ErrorInvalidValue)
	}

	if opts == nil {
		opts = &Options{}
	}

	gridSize := opts.GridSize
	switch {
	case gridSize < 0:
		return nil, fmt.Errorf("kde: negative grid size %v: %w", gridSize, common.ErrorInvalidValue)
	case gridSize == 0:
		gridSize = DefaultGridSize
	default:
		gridSize = nextPowerOfTwo(gridSize)
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var bounds *model.Bounds
	if opts.Bounds != nil {
		b := *opts.Bounds
		bounds = &b
	}

	return &DiffusionKDE{
		samples:  sorted,
		gridSize: gridSize,
		bounds:   bounds,
	}, nil
}

// Estimate runs the full pipeline and caches the result; repeated calls
// return the same record without recomputation.
func (kde *DiffusionKDE) Estimate(ctx context.Context) (*model.DensityEstimate, error) {
	if kde.fited {
		return kde.estimate, nil
	}

	logger := utils.GetLogger(ctx)

	bounds, err := kde.resolveBounds()
	if err != nil {
		logger.Error("kde resolve bounds failed", zap.Error(err))
		return nil, err
	}

	masses := binMasses(kde.samples, kde.gridSize, bounds)

	transform := newCosineTransform(kde.gridSize)
	coeff := transform.Forward(nil, masses)

	diffusionTime, err := solveDiffusionTime(coeff, len(kde.samples))
	if err != nil {
		logger.Error("kde diffusion time solve failed", zap.Error(err),
			zap.Int("sampleCnt", len(kde.samples)), zap.Int("gridSize", kde.gridSize),
			zap.Float64("min", bounds.Min), zap.Float64("max", bounds.Max))
		return nil, err
	}

	density := reconstruct(transform, coeff, diffusionTime, bounds)

	kde.estimate = &model.DensityEstimate{
		Bandwidth:     math.Sqrt(diffusionTime) * bounds.Range(),
		DiffusionTime: diffusionTime,
		Mesh:          binCenters(kde.gridSize, bounds),
		Density:       density,
	}
	kde.fited = true

	return kde.estimate, nil
}

// resolveBounds fills in the working interval, padding each derived side by
// a tenth of the sample range. A collapsed interval is an input error when
// the caller supplied a side and a numerical failure when the data itself
// has no spread.
func (kde *DiffusionKDE) resolveBounds() (model.Bounds, error) {
	minVal, maxVal := math.NaN(), math.NaN()
	if kde.bounds != nil {
		minVal, maxVal = kde.bounds.Min, kde.bounds.Max
	}
	supplied := !math.IsNaN(minVal) || !math.IsNaN(maxVal)

	lo, hi := kde.samples[0], kde.samples[len(kde.samples)-1]
	pad := (hi - lo) * boundsPadFraction
	if math.IsNaN(minVal) {
		minVal = lo - pad
	}
	if math.IsNaN(maxVal) {
		maxVal = hi + pad
	}

	bounds := model.Bounds{Min: minVal, Max: maxVal}
	if !bounds.Valid() {
		if supplied {
			return bounds, fmt.Errorf("kde: bounds [%v, %v] do not form an interval: %w",
				bounds.Min, bounds.Max, common.ErrorInvalidValue)
		}
		return bounds, fmt.Errorf("kde: sample range is empty, cannot bracket a diffusion time: %w",
			common.ErrorNoRoot)
	}
	return bounds, nil
}

// CDF integrates the estimated curve over the mesh with the trapezoid rule
// and caches the accumulated values.
func (kde *DiffusionKDE) CDF(ctx context.Context) ([]model.Cdf, error) {
	if len(kde.cdf) > 0 {
		return kde.cdf, nil
	}

	estimate, err := kde.Estimate(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]model.Cdf, 0, len(estimate.Mesh))

	var cumSum float64
	for i, x := range estimate.Mesh {
		if i > 0 {
			step := x - estimate.Mesh[i-1]
			cumSum += step * (estimate.Density[i-1] + estimate.Density[i]) / 2
		}
		res = append(res, model.Cdf{
			X:     x,
			Value: cumSum,
		})
	}

	kde.cdf = res
	return res, nil
}

// Quantile inverts the CDF by linear interpolation between mesh points.
func (kde *DiffusionKDE) Quantile(ctx context.Context, q float64) (*model.QuantileValue, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return nil, fmt.Errorf("kde: quantile %v outside [0, 1]: %w", q, common.ErrorInvalidValue)
	}

	cdf, err := kde.CDF(ctx)
	if err != nil {
		return nil, err
	}

	if q <= cdf[0].Value {
		return &model.QuantileValue{
			Quantile: q,
			Value:    cdf[0].X,
		}, nil
	}

	if q >= cdf[len(cdf)-1].Value {
		return &model.QuantileValue{
			Quantile: q,
			Value:    cdf[len(cdf)-1].X,
		}, nil
	}

	for i := 1; i < len(cdf); i++ {
		if cdf[i].Value > q {
			lowerX, lowerP := cdf[i-1].X, cdf[i-1].Value
			upperX, upperP := cdf[i].X, cdf[i].Value
			value := lowerX + (upperX-lowerX)*(q-lowerP)/(upperP-lowerP)
			return &model.QuantileValue{
				Quantile: q,
				Value:    value,
			}, nil
		}
	}

	return &model.QuantileValue{
		Quantile: q,
		Value:    cdf[len(cdf)-1].X,
	}, nil
}
