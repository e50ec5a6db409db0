package kde

import (
	"fmt"
	"math"
	"sort"

	"github.com/statkit/diffusion-kde/common"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// solveDiffusionTime finds t*, the diffusion time of the Botev-Grotowski-
// Kroese bandwidth equation, from the orthonormal DCT-II coefficients of the
// empirical mass vector and the total sample count. The root is searched on
// the fixed bracket; degenerate histograms produce no sign change there and
// surface as ErrorNoRoot.
func solveDiffusionTime(coeff []float64, sampleCnt int) (float64, error) {
	if sampleCnt <= 0 || len(coeff) < 2 {
		return 0, fmt.Errorf("kde: diffusion solve needs samples and at least two spectral terms: %w",
			common.ErrorInvalidValue)
	}
	fp := newFixedPoint(coeff, sampleCnt)
	low, high := getDiffusionBracket()
	return brentRoot(fp.residual, low, high)
}

// fixedPoint evaluates the residual of the bandwidth equation,
//
//	g(t) = t - (2*M*sqrt(pi)*f)^(-2/5)
//
// where f comes from a descent over the derivative orders s = 7..2: each
// step converts the current moment value into an order s plug-in time and
// recomputes the moment sum at that time,
//
//	phi(s, time) = 2*pi^(2s) * sum_i i^(2s) * a2_i * exp(-i^2*pi^2*time)
//	a2_i = (n/2) * coeff_i^2,  i = 1..n-1  (DC term excluded).
//
// The moment constants are written for the halved unnormalized spectrum
// (a_i/2)^2 with a_i = 2*sum_j m_j*cos(pi*i*(2j+1)/(2n)); orthonormal
// coefficients are sqrt(2n) smaller, hence the n/2 factor in a2.
//
// The i^14 factors at s=7 overflow float64 for large grids, so every moment
// sum is assembled in log space and the descent carries ln f throughout;
// only the plug-in times themselves are exponentiated back, and those stay
// small by construction.
type fixedPoint struct {
	lnM   float64   // ln of the sample count
	i2    []float64 // i^2
	lnI2  []float64 // ln(i^2)
	lnA2  []float64 // ln(a2_i), -Inf where the coefficient is zero
	terms []float64 // log space scratch
}

func newFixedPoint(coeff []float64, sampleCnt int) *fixedPoint {
	n := len(coeff) - 1
	fp := &fixedPoint{
		lnM:   math.Log(float64(sampleCnt)),
		i2:    make([]float64, n),
		lnI2:  make([]float64, n),
		lnA2:  make([]float64, n),
		terms: make([]float64, n),
	}
	lnScale := math.Log(float64(len(coeff)) / 2)
	for i := 1; i <= n; i++ {
		fi := float64(i)
		fp.i2[i-1] = fi * fi
		fp.lnI2[i-1] = 2 * math.Log(fi)
		fp.lnA2[i-1] = 2*math.Log(math.Abs(coeff[i])) + lnScale
	}
	return fp
}

// moment computes ln phi(s, time).
func (fp *fixedPoint) moment(s int, time float64) float64 {
	pi2t := math.Pi * math.Pi * time
	sf := float64(s)
	for i := range fp.terms {
		fp.terms[i] = sf*fp.lnI2[i] + fp.lnA2[i] - fp.i2[i]*pi2t
	}
	return math.Ln2 + 2*sf*math.Log(math.Pi) + floats.LogSumExp(fp.terms)
}

// residual is g(t); its root on the search bracket is t*.
func (fp *fixedPoint) residual(t float64) float64 {
	lnF := fp.moment(7, t)
	for s := 7; s >= 2; s-- {
		sf := float64(s)
		k0 := oddFactorial(s) / math.Sqrt(2*math.Pi)
		cs := (1 + math.Pow(0.5, sf+0.5)) / 3
		lnTime := (math.Log(2*cs*k0) - fp.lnM - lnF) * 2 / (3 + 2*sf)
		lnF = fp.moment(s, math.Exp(lnTime))
	}
	return t - math.Exp(-0.4*(math.Ln2+fp.lnM+0.5*math.Log(math.Pi)+lnF))
}

type BandWidth interface {
	BandWidth([]float64) float64
}

// NormalReferenceBandWidth is the gaussian rule of thumb selector, kept as a
// cheap cross check against the diffusion bandwidth.
type NormalReferenceBandWidth struct{}

func NewNormalReferenceBandWidth() *NormalReferenceBandWidth {
	return &NormalReferenceBandWidth{}
}

func (bw *NormalReferenceBandWidth) BandWidth(x []float64) float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	C := normalReferenceConstant()
	A := selectSigma(sorted)
	n := len(x)
	return C * A * math.Pow(float64(n), -0.2)
}

// normalReferenceConstant is the AMISE constant of the gaussian kernel
// (order 2, L2 norm 1/(2*sqrt(pi)), unit variance); evaluates to ~1.0592.
func normalReferenceConstant() float64 {
	nu := 2
	l2Norm := 1.0 / (2.0 * math.Sqrt(math.Pi))
	numerator := math.Pow(math.Pi, 0.5) * math.Pow(factorial(nu), 3) * l2Norm
	denom := 2.0 * float64(nu) * factorial(2*nu)
	return 2 * math.Pow(numerator/denom, 1.0/float64(2*nu+1))
}

func selectSigma(x []float64) float64 {
	normalize := 1.349

	q75 := stat.Quantile(0.75, stat.Empirical, x, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, x, nil)
	iqr := (q75 - q25) / normalize

	stdDev := stat.StdDev(x, nil)

	if iqr > 0 {
		if stdDev < iqr {
			return stdDev
		}
		return iqr
	}
	return stdDev
}
