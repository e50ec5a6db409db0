// Package dgp holds the classic benchmark densities used to exercise the
// estimator: normal mixtures in the Marron-Wand style plus a lognormal.
package dgp

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// mesh size used when the caller asks for fewer than two points
const defaultMeshPoints = 1 << 14

// Distribution is a data generating process with a known closed form pdf.
type Distribution interface {
	Name() string

	// Sample draws n values from the distribution using src.
	Sample(n int, src rand.Source) []float64

	// PDF evaluates the density at x; x outside the support is an error.
	PDF(x float64) (float64, error)

	// Mesh proposes n equally spaced evaluation points covering the
	// effective support.
	Mesh(n int) []float64
}

// Component is one normal component of a mixture.
type Component struct {
	Mean   float64
	StdDev float64
}

// Mixture is a finite normal mixture. Values are immutable once built, so
// the constructors in this package can be shared freely.
type Mixture struct {
	name       string
	components []Component
	weights    []float64
}

func newMixture(name string, components []Component, weights []float64) *Mixture {
	return &Mixture{
		name:       name,
		components: components,
		weights:    weights,
	}
}

func (m *Mixture) Name() string {
	return m.name
}

// Sample allocates n draws across the components with categorical draws,
// samples each component's share, then shuffles so the output is not grouped
// by component.
func (m *Mixture) Sample(n int, src rand.Source) []float64 {
	counts := make([]int, len(m.components))
	categorical := distuv.NewCategorical(m.weights, src)
	for i := 0; i < n; i++ {
		counts[int(categorical.Rand())]++
	}

	res := make([]float64, 0, n)
	for k, c := range m.components {
		normal := distuv.Normal{Mu: c.Mean, Sigma: c.StdDev, Src: src}
		for j := 0; j < counts[k]; j++ {
			res = append(res, normal.Rand())
		}
	}

	rand.New(src).Shuffle(len(res), func(i, j int) {
		res[i], res[j] = res[j], res[i]
	})

	return res
}

func (m *Mixture) PDF(x float64) (float64, error) {
	var density float64
	for k, c := range m.components {
		normal := distuv.Normal{Mu: c.Mean, Sigma: c.StdDev}
		density += m.weights[k] * normal.Prob(x)
	}
	return density, nil
}

// Mesh spans [min(mean-4*stddev), max(mean+4*stddev)] over the components.
func (m *Mixture) Mesh(n int) []float64 {
	if n < 2 {
		n = defaultMeshPoints
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range m.components {
		lo = math.Min(lo, c.Mean-4*c.StdDev)
		hi = math.Max(hi, c.Mean+4*c.StdDev)
	}

	return floats.Span(make([]float64, n), lo, hi)
}
