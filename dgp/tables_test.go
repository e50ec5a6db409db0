package dgp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestMixtureTablesAreNormalized checks every mixture table carries one
// weight per component, positive spreads, and weights summing to one.
func TestMixtureTablesAreNormalized(t *testing.T) {
	for _, d := range All() {
		m, ok := d.(*Mixture)
		if !ok {
			continue
		}
		assert.Len(t, m.weights, len(m.components), "%s weight per component", m.Name())
		assert.InDelta(t, 1.0, floats.Sum(m.weights), 1e-12, "%s weights sum", m.Name())
		for k, c := range m.components {
			assert.Greater(t, c.StdDev, 0.0, "%s component %d spread", m.Name(), k)
		}
	}
}

// TestAllCanonical checks the benchmark list is complete and free of
// duplicate names.
func TestAllCanonical(t *testing.T) {
	all := All()
	require.Len(t, all, 16)

	seen := make(map[string]bool, len(all))
	for _, d := range all {
		assert.False(t, seen[d.Name()], "duplicate name %s", d.Name())
		seen[d.Name()] = true
	}
	assert.True(t, seen["Claw"])
	assert.True(t, seen["LogNormal"])
	assert.True(t, seen["SmoothComb"])
}

// TestClawComponents pins the claw table against its published definition.
func TestClawComponents(t *testing.T) {
	claw := NewClaw()

	want := []Component{
		{Mean: 0, StdDev: 1},
		{Mean: -1, StdDev: 0.1},
		{Mean: -0.5, StdDev: 0.1},
		{Mean: 0, StdDev: 0.1},
		{Mean: 0.5, StdDev: 0.1},
		{Mean: 1, StdDev: 0.1},
	}
	assert.Equal(t, want, claw.components)
	assert.Equal(t, []float64{0.5, 0.1, 0.1, 0.1, 0.1, 0.1}, claw.weights)
}
