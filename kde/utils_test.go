package kde

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNextPowerOfTwo covers exact powers and rounding up.
func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 1000: 1024, 1024: 1024, 16384: 16384}
	for in, want := range cases {
		assert.Equal(t, want, nextPowerOfTwo(in), "nextPowerOfTwo(%d)", in)
	}
}

// TestFactorial checks the small factorials in the reference constant.
func TestFactorial(t *testing.T) {
	assert.Equal(t, 1.0, factorial(0))
	assert.Equal(t, 1.0, factorial(1))
	assert.Equal(t, 24.0, factorial(4))
	assert.Equal(t, 720.0, factorial(6))
}

// TestOddFactorial checks the odd products used by the plug-in constants.
func TestOddFactorial(t *testing.T) {
	assert.Equal(t, 1.0, oddFactorial(1))
	assert.Equal(t, 3.0, oddFactorial(2))
	assert.Equal(t, 15.0, oddFactorial(3))
	assert.Equal(t, 135135.0, oddFactorial(7))
}
