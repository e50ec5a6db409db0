package kde

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// oddFactorial is the product of the odd integers 1*3*5*...*(2n-1).
func oddFactorial(n int) float64 {
	result := 1.0
	for i := 3; i < 2*n; i += 2 {
		result *= float64(i)
	}
	return result
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
