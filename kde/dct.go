package kde

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// cosineTransform is an orthonormal DCT-II / DCT-III pair on top of the
// quarter wave FFT. The fftpack quarter wave transforms are unnormalized
// (a round trip gains 4n); the rescaling here pins both directions to the
// energy preserving convention the bandwidth equation is calibrated to:
//
//	forward:  c_0 = sqrt(1/n)*sum x_i,  c_k = sqrt(2/n)*sum x_i*cos(pi*k*(2i+1)/(2n))
//	inverse:  x_i = c_0/sqrt(n) + sqrt(2/n)*sum_{k>=1} c_k*cos(pi*k*(2i+1)/(2n))
//
// so Inverse(Forward(x)) == x and sum(x^2) == sum(c^2).
type cosineTransform struct {
	n   int
	fft *fourier.QuarterWaveFFT
}

func newCosineTransform(n int) *cosineTransform {
	return &cosineTransform{
		n:   n,
		fft: fourier.NewQuarterWaveFFT(n),
	}
}

// Forward computes the orthonormal DCT-II of seq, placing the result in dst
// and returning it. A nil dst is allocated.
func (t *cosineTransform) Forward(dst, seq []float64) []float64 {
	dst = t.fft.CosSequence(dst, seq)
	nf := float64(t.n)
	dst[0] /= 4 * math.Sqrt(nf)
	scale := 1 / (2 * math.Sqrt(2*nf))
	for i := 1; i < t.n; i++ {
		dst[i] *= scale
	}
	return dst
}

// Inverse computes the orthonormal DCT-III of coeff, placing the result in
// dst and returning it. A nil dst is allocated.
func (t *cosineTransform) Inverse(dst, coeff []float64) []float64 {
	if dst == nil {
		dst = make([]float64, t.n)
	}
	nf := float64(t.n)
	scale := 1 / math.Sqrt(2*nf)
	for i := 1; i < t.n; i++ {
		dst[i] = coeff[i] * scale
	}
	dst[0] = coeff[0] / math.Sqrt(nf)
	return t.fft.CosCoefficients(dst, dst)
}
