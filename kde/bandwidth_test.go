package kde

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/statkit/diffusion-kde/common"
	"github.com/statkit/diffusion-kde/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// normalSpectrum bins n standard normal draws on gridSize bins over the
// derived working interval and returns the orthonormal DCT coefficients.
func normalSpectrum(n, gridSize int, seed uint64) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = dist.Rand()
	}
	sort.Float64s(samples)

	pad := (samples[n-1] - samples[0]) * boundsPadFraction
	bounds := model.Bounds{Min: samples[0] - pad, Max: samples[n-1] + pad}
	masses := binMasses(samples, gridSize, bounds)
	return newCosineTransform(gridSize).Forward(nil, masses)
}

// TestSolveDiffusionTimeNormal solves the bandwidth equation for a gaussian
// histogram; the root must sit inside the search bracket.
func TestSolveDiffusionTimeNormal(t *testing.T) {
	coeff := normalSpectrum(10000, 1024, 42)

	tStar, err := solveDiffusionTime(coeff, 10000)
	assert.NoError(t, err, "gaussian data should have a diffusion time")
	assert.Greater(t, tStar, 0.0)
	assert.Less(t, tStar, diffusionTimeMax)
}

// gaussianMasses evaluates the standard normal density at the centers of
// gridSize bins over [-5, 5] and normalizes to unit mass, a noiseless stand
// in for a binned gaussian sample.
func gaussianMasses(gridSize int) []float64 {
	masses := make([]float64, gridSize)
	width := 10.0 / float64(gridSize)
	for i := range masses {
		x := -5 + width*(float64(i)+0.5)
		masses[i] = math.Exp(-x * x / 2)
	}
	floats.Scale(1/floats.Sum(masses), masses)
	return masses
}

// TestSolveDiffusionTimeNearReferenceRule checks the bandwidth solved for a
// noiseless gaussian histogram lands near the 1.06*sigma*M^(-1/5) reference
// rule, 0.168 at M = 10^4.
func TestSolveDiffusionTimeNearReferenceRule(t *testing.T) {
	coeff := newCosineTransform(1024).Forward(nil, gaussianMasses(1024))

	tStar, err := solveDiffusionTime(coeff, 10000)
	require.NoError(t, err, "gaussian spectrum must bracket a root")

	// masses live on [-5, 5], so the data scale bandwidth is 10*sqrt(t*).
	h := 10 * math.Sqrt(tStar)
	assert.InDelta(t, 0.168, h, 0.03, "diffusion bandwidth vs gaussian reference")
}

// TestSolveDiffusionTimeGridInvariant checks refining the histogram grid
// leaves the diffusion time unchanged.
func TestSolveDiffusionTimeGridInvariant(t *testing.T) {
	coarse, err := solveDiffusionTime(newCosineTransform(1024).Forward(nil, gaussianMasses(1024)), 10000)
	require.NoError(t, err)

	fine, err := solveDiffusionTime(newCosineTransform(4096).Forward(nil, gaussianMasses(4096)), 10000)
	require.NoError(t, err)

	assert.InDelta(t, coarse, fine, 1e-6, "diffusion time must not depend on the grid")
}

// TestSolveDiffusionTimeDeterministic checks the solve is a pure function of
// its inputs.
func TestSolveDiffusionTimeDeterministic(t *testing.T) {
	coeff := normalSpectrum(5000, 512, 43)

	first, err := solveDiffusionTime(coeff, 5000)
	assert.NoError(t, err)
	second, err := solveDiffusionTime(coeff, 5000)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "same inputs must give the same root")
}

// TestSolveDiffusionTimeFlatSpectrum checks a spectrum with no energy beyond
// the DC term cannot bracket a root.
func TestSolveDiffusionTimeFlatSpectrum(t *testing.T) {
	coeff := make([]float64, 64)
	coeff[0] = 1

	_, err := solveDiffusionTime(coeff, 1000)
	assert.ErrorIs(t, err, common.ErrorNoRoot, "flat histogram has no admissible bandwidth")
}

// TestSolveDiffusionTimeInvalidArgs rejects impossible sample counts and too
// short coefficient vectors.
func TestSolveDiffusionTimeInvalidArgs(t *testing.T) {
	_, err := solveDiffusionTime([]float64{1, 0.5}, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidValue, "zero samples")

	_, err = solveDiffusionTime([]float64{1}, 100)
	assert.ErrorIs(t, err, common.ErrorInvalidValue, "single coefficient")
}

// TestNormalReferenceConstant pins the gaussian AMISE constant.
func TestNormalReferenceConstant(t *testing.T) {
	assert.InDelta(t, 1.0592, normalReferenceConstant(), 1e-3)
}

// TestNormalReferenceBandWidth checks the rule of thumb lands near
// 1.06 * sigma * n^(-1/5) for a gaussian sample.
func TestNormalReferenceBandWidth(t *testing.T) {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(7, 7)}
	samples := make([]float64, 10000)
	for i := range samples {
		samples[i] = dist.Rand()
	}

	h := NewNormalReferenceBandWidth().BandWidth(samples)
	assert.Greater(t, h, 0.1, "bandwidth for 10^4 standard normals")
	assert.Less(t, h, 0.25, "bandwidth for 10^4 standard normals")
}

// TestNormalReferenceBandWidthKeepsInput checks the selector sorts a copy.
func TestNormalReferenceBandWidthKeepsInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	NewNormalReferenceBandWidth().BandWidth(samples)
	assert.Equal(t, []float64{3, 1, 2}, samples, "input order must survive")
}
