package dgp

import "math"

// The mixtures below reproduce Table 1 of Botev, Grotowski and Kroese (2010),
// the standard benchmark set for univariate density estimators.

// NewClaw builds 1/2 N(0,1) + sum_{k=0}^{4} 1/10 N(k/2-1, (1/10)^2).
func NewClaw() *Mixture {
	components := []Component{{Mean: 0, StdDev: 1}}
	weights := []float64{1.0 / 2}
	for k := 0; k < 5; k++ {
		components = append(components, Component{Mean: float64(k)/2 - 1, StdDev: 1.0 / 10})
		weights = append(weights, 1.0/10)
	}
	return newMixture("Claw", components, weights)
}

// NewStronglySkewed builds sum_{k=0}^{7} 1/8 N(3((2/3)^k-1), (2/3)^(2k)).
func NewStronglySkewed() *Mixture {
	components := make([]Component, 0, 8)
	weights := make([]float64, 0, 8)
	for k := 0; k < 8; k++ {
		scale := math.Pow(2.0/3, float64(k))
		components = append(components, Component{Mean: 3 * (scale - 1), StdDev: scale})
		weights = append(weights, 1.0/8)
	}
	return newMixture("StronglySkewed", components, weights)
}

// NewKurtoticUnimodal builds 2/3 N(0,1) + 1/3 N(0, (1/10)^2).
func NewKurtoticUnimodal() *Mixture {
	return newMixture("KurtoticUnimodal",
		[]Component{{Mean: 0, StdDev: 1}, {Mean: 0, StdDev: 1.0 / 10}},
		[]float64{2.0 / 3, 1.0 / 3})
}

// NewDoubleClaw builds 49/100 N(-1, (2/3)^2) + 49/100 N(1, (2/3)^2) +
// sum_{k=0}^{6} 1/350 N((k-3)/2, (1/100)^2).
func NewDoubleClaw() *Mixture {
	components := []Component{{Mean: -1, StdDev: 2.0 / 3}, {Mean: 1, StdDev: 2.0 / 3}}
	weights := []float64{49.0 / 100, 49.0 / 100}
	for k := 0; k < 7; k++ {
		components = append(components, Component{Mean: (float64(k) - 3) / 2, StdDev: 1.0 / 100})
		weights = append(weights, 1.0/350)
	}
	return newMixture("DoubleClaw", components, weights)
}

// NewDiscreteComb builds 2/7 sum_{k=0}^{2} N((12k-15)/7, (2/7)^2) +
// 1/21 sum_{k=8}^{10} N(2k/7, (1/21)^2).
func NewDiscreteComb() *Mixture {
	components := make([]Component, 0, 6)
	weights := make([]float64, 0, 6)
	for k := 0; k < 3; k++ {
		components = append(components, Component{Mean: (12*float64(k) - 15) / 7, StdDev: 2.0 / 7})
		weights = append(weights, 2.0/7)
	}
	for k := 8; k < 11; k++ {
		components = append(components, Component{Mean: 2 * float64(k) / 7, StdDev: 1.0 / 21})
		weights = append(weights, 1.0/21)
	}
	return newMixture("DiscreteComb", components, weights)
}

// NewAsymmetricDoubleClaw builds 46/100 sum_{k=0}^{1} N(2k-1, (2/3)^2) +
// 1/300 sum_{k=1}^{3} N(-k/2, (1/100)^2) + 7/300 sum_{k=1}^{3} N(k/2, (7/100)^2).
func NewAsymmetricDoubleClaw() *Mixture {
	components := make([]Component, 0, 8)
	weights := make([]float64, 0, 8)
	for k := 0; k < 2; k++ {
		components = append(components, Component{Mean: 2*float64(k) - 1, StdDev: 2.0 / 3})
		weights = append(weights, 46.0/100)
	}
	for k := 1; k < 4; k++ {
		components = append(components, Component{Mean: -float64(k) / 2, StdDev: 1.0 / 100})
		weights = append(weights, 1.0/300)
	}
	for k := 1; k < 4; k++ {
		components = append(components, Component{Mean: float64(k) / 2, StdDev: 7.0 / 100})
		weights = append(weights, 7.0/300)
	}
	return newMixture("AsymmetricDoubleClaw", components, weights)
}

// NewOutlier builds 1/10 N(0,1) + 9/10 N(0, (1/10)^2).
func NewOutlier() *Mixture {
	return newMixture("Outlier",
		[]Component{{Mean: 0, StdDev: 1}, {Mean: 0, StdDev: 1.0 / 10}},
		[]float64{1.0 / 10, 9.0 / 10})
}

// NewSeparatedBimodal builds 1/2 N(-12, (1/2)^2) + 1/2 N(12, (1/2)^2).
func NewSeparatedBimodal() *Mixture {
	return newMixture("SeparatedBimodal",
		[]Component{{Mean: -12, StdDev: 1.0 / 2}, {Mean: 12, StdDev: 1.0 / 2}},
		[]float64{1.0 / 2, 1.0 / 2})
}

// NewSkewedBimodal builds 3/4 N(0,1) + 1/4 N(3/2, (1/3)^2).
func NewSkewedBimodal() *Mixture {
	return newMixture("SkewedBimodal",
		[]Component{{Mean: 0, StdDev: 1}, {Mean: 3.0 / 2, StdDev: 1.0 / 3}},
		[]float64{3.0 / 4, 1.0 / 4})
}

// NewBimodal builds 1/2 N(0, (1/10)^2) + 1/2 N(5, 1).
func NewBimodal() *Mixture {
	return newMixture("Bimodal",
		[]Component{{Mean: 0, StdDev: 1.0 / 10}, {Mean: 5, StdDev: 1}},
		[]float64{1.0 / 2, 1.0 / 2})
}

// NewAsymmetricClaw builds 1/2 N(0,1) +
// sum_{k=-2}^{2} 2^(1-k)/31 N(k+1/2, (2^(-k)/10)^2).
func NewAsymmetricClaw() *Mixture {
	components := []Component{{Mean: 0, StdDev: 1}}
	weights := []float64{1.0 / 2}
	for k := -2; k < 3; k++ {
		components = append(components, Component{
			Mean:   float64(k) + 1.0/2,
			StdDev: math.Pow(2, -float64(k)) / 10,
		})
		weights = append(weights, math.Pow(2, 1-float64(k))/31)
	}
	return newMixture("AsymmetricClaw", components, weights)
}

// NewTrimodal builds 1/3 sum_{k=0}^{2} N(80k, (k+1)^4).
func NewTrimodal() *Mixture {
	components := make([]Component, 0, 3)
	weights := make([]float64, 0, 3)
	for k := 0; k < 3; k++ {
		components = append(components, Component{Mean: 80 * float64(k), StdDev: float64((k + 1) * (k + 1))})
		weights = append(weights, 1.0/3)
	}
	return newMixture("Trimodal", components, weights)
}

// NewFiveModes builds 1/5 sum_{k=0}^{4} N(80k, (k+1)^2).
func NewFiveModes() *Mixture {
	components := make([]Component, 0, 5)
	weights := make([]float64, 0, 5)
	for k := 0; k < 5; k++ {
		components = append(components, Component{Mean: 80 * float64(k), StdDev: float64(k + 1)})
		weights = append(weights, 1.0/5)
	}
	return newMixture("FiveModes", components, weights)
}

// NewTenModes builds 1/10 sum_{k=0}^{9} N(100k, (k+1)^2).
func NewTenModes() *Mixture {
	components := make([]Component, 0, 10)
	weights := make([]float64, 0, 10)
	for k := 0; k < 10; k++ {
		components = append(components, Component{Mean: 100 * float64(k), StdDev: float64(k + 1)})
		weights = append(weights, 1.0/10)
	}
	return newMixture("TenModes", components, weights)
}

// NewSmoothComb builds sum_{k=0}^{5} 2^(5-k)/63 N((65-96*2^(-k))/21, ((32/63)*2^(-k))^2).
func NewSmoothComb() *Mixture {
	components := make([]Component, 0, 6)
	weights := make([]float64, 0, 6)
	for k := 0; k < 6; k++ {
		scale := math.Pow(2, -float64(k))
		components = append(components, Component{
			Mean:   (65 - 96*scale) / 21,
			StdDev: 32.0 / 63 * scale,
		})
		weights = append(weights, math.Pow(2, 5-float64(k))/63)
	}
	return newMixture("SmoothComb", components, weights)
}

// All returns the benchmark distributions in their canonical order.
func All() []Distribution {
	return []Distribution{
		NewClaw(),
		NewStronglySkewed(),
		NewKurtoticUnimodal(),
		NewDoubleClaw(),
		NewDiscreteComb(),
		NewAsymmetricDoubleClaw(),
		NewOutlier(),
		NewSeparatedBimodal(),
		NewSkewedBimodal(),
		NewBimodal(),
		NewLogNormal(),
		NewAsymmetricClaw(),
		NewTrimodal(),
		NewFiveModes(),
		NewTenModes(),
		NewSmoothComb(),
	}
}
