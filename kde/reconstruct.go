package kde

import (
	"math"

	"github.com/statkit/diffusion-kde/model"
	"gonum.org/v1/gonum/floats"
)

// reconstruct applies the heat kernel exp(-k^2*pi^2*t/2) to the spectral
// coefficients, inverts the transform and rescales the result from mass per
// bin to density on the original data scale.
func reconstruct(ct *cosineTransform, coeff []float64, diffusionTime float64, bounds model.Bounds) []float64 {
	smoothed := make([]float64, len(coeff))
	for k, c := range coeff {
		fk := float64(k)
		smoothed[k] = c * math.Exp(-fk*fk*math.Pi*math.Pi*diffusionTime/2)
	}

	density := ct.Inverse(nil, smoothed)
	floats.Scale(float64(len(coeff))/bounds.Range(), density)
	return density
}
