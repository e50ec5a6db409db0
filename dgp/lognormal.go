package dgp

import (
	"fmt"
	"math/rand/v2"

	"github.com/statkit/diffusion-kde/common"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormal is the standard lognormal, exp(N(0,1)). Unlike the mixtures its
// support is (0, inf), so the pdf rejects non positive points and the mesh
// stays strictly positive.
type LogNormal struct{}

func NewLogNormal() *LogNormal {
	return &LogNormal{}
}

func (l *LogNormal) Name() string {
	return "LogNormal"
}

func (l *LogNormal) Sample(n int, src rand.Source) []float64 {
	dist := distuv.LogNormal{Mu: 0, Sigma: 1, Src: src}
	res := make([]float64, n)
	for i := range res {
		res[i] = dist.Rand()
	}
	return res
}

func (l *LogNormal) PDF(x float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("dgp: lognormal pdf undefined at %v: %w", x, common.ErrorInvalidMesh)
	}
	dist := distuv.LogNormal{Mu: 0, Sigma: 1}
	return dist.Prob(x), nil
}

// Mesh spans (0, 10] shifted one step off zero, where the pdf is undefined.
func (l *LogNormal) Mesh(n int) []float64 {
	if n < 2 {
		n = defaultMeshPoints
	}
	mesh := floats.Span(make([]float64, n), 0, 10)
	floats.AddConst(10/float64(n-1), mesh)
	return mesh
}
