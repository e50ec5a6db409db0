package kde

import (
	"math"
	"testing"

	"github.com/statkit/diffusion-kde/common"
	"github.com/stretchr/testify/assert"
)

// TestBrentRootQuadratic solves x^2 - 2 = 0 on [0, 2].
func TestBrentRootQuadratic(t *testing.T) {
	root, err := brentRoot(func(x float64) float64 { return x*x - 2 }, 0, 2)
	assert.NoError(t, err, "bracketed quadratic should solve")
	assert.InDelta(t, math.Sqrt2, root, 1e-10, "root of x^2-2")
}

// TestBrentRootTranscendental solves cos(x) = 0 on [0, 3].
func TestBrentRootTranscendental(t *testing.T) {
	root, err := brentRoot(math.Cos, 0, 3)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi/2, root, 1e-10, "root of cos")
}

// TestBrentRootEndpoint returns an endpoint when it is already a root.
func TestBrentRootEndpoint(t *testing.T) {
	root, err := brentRoot(func(x float64) float64 { return x }, 0, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, root, "left endpoint is the root")
}

// TestBrentRootNoSignChange rejects a bracket that does not straddle a root.
func TestBrentRootNoSignChange(t *testing.T) {
	_, err := brentRoot(func(x float64) float64 { return x*x + 1 }, 0, 2)
	assert.ErrorIs(t, err, common.ErrorNoRoot, "positive function has no root")
}

// TestBrentRootNaN rejects a function undefined on the bracket.
func TestBrentRootNaN(t *testing.T) {
	_, err := brentRoot(math.Log, -2, -1)
	assert.ErrorIs(t, err, common.ErrorNoRoot, "NaN values cannot bracket")
}
