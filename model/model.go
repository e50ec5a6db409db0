package model

import "math"

// Bounds is the working interval of an estimate. A NaN side means the side
// should be derived from the data range.
type Bounds struct {
	Min float64
	Max float64
}

func (b Bounds) Range() float64 {
	return b.Max - b.Min
}

func (b Bounds) Contains(x float64) bool {
	return x >= b.Min && x <= b.Max
}

func (b Bounds) Valid() bool {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) {
		return false
	}
	if math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
		return false
	}
	return b.Min < b.Max
}

// DensityEstimate is the result of one estimation call. Mesh holds the bin
// center coordinates and Density the estimated curve, index for index.
type DensityEstimate struct {
	Bandwidth     float64   `json:"bandwidth,omitempty"`
	DiffusionTime float64   `json:"diffusion_time,omitempty"`
	Mesh          []float64 `json:"mesh,omitempty"`
	Density       []float64 `json:"density,omitempty"`
}

// Points pairs the mesh with the density values.
func (d *DensityEstimate) Points() []Density {
	res := make([]Density, 0, len(d.Mesh))
	for i := range d.Mesh {
		res = append(res, Density{
			X:     d.Mesh[i],
			Value: d.Density[i],
		})
	}
	return res
}

type Density struct {
	X     float64
	Value float64
}

type Cdf struct {
	X     float64
	Value float64
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}
