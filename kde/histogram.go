package kde

import (
	"math"
	"sort"

	"github.com/statkit/diffusion-kde/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// binMasses reduces the sorted samples to the empirical mass vector: n equal
// width bins over the bounds, each entry the fraction of the TOTAL sample
// count landing in that bin. Samples outside the bounds are discarded, so
// the vector sums to the in range fraction, not necessarily to 1. A sample
// exactly at Max counts into the last bin.
func binMasses(sorted []float64, n int, bounds model.Bounds) []float64 {
	dividers := floats.Span(make([]float64, n+1), bounds.Min, bounds.Max)
	// stat.Histogram bins half open intervals, bump the last divider so a
	// sample equal to Max is kept
	dividers[n] = math.Nextafter(bounds.Max, math.Inf(1))

	lo := sort.SearchFloat64s(sorted, bounds.Min)
	hi := sort.SearchFloat64s(sorted, dividers[n])

	masses := stat.Histogram(make([]float64, n), dividers, sorted[lo:hi], nil)
	floats.Scale(1/float64(len(sorted)), masses)
	return masses
}

// binCenters is the mesh the density is evaluated on: the center coordinate
// of each histogram bin.
func binCenters(n int, bounds model.Bounds) []float64 {
	step := bounds.Range() / float64(n)
	mesh := make([]float64, n)
	for i := range mesh {
		mesh[i] = bounds.Min + step*(float64(i)+0.5)
	}
	return mesh
}
