package timeseries

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateT returns n evenly spaced time coordinates starting at t0
func GenerateT(n int, spacing, t0 float64) []float64 {
	t := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, t0+spacing*float64(i))
	}
	return t
}

// Values is a slice of observations that can be composed before building a series
type Values []float64

func (v Values) Add(src Values) Values {
	floats.Add(v, src)
	return v
}

func (v Values) Scale(c float64) Values {
	floats.Scale(c, v)
	return v
}

// Series builds a series from the values with the first observation at t0
func (v Values) Series(spacing, t0 float64) (*Series, error) {
	return FromValues(spacing, t0, v)
}

func GenerateConstX(n int, val float64) Values {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, val)
	}
	return Values(x)
}

// GenerateLinear returns intercept + slope*t for every coordinate
func GenerateLinear(t []float64, intercept, slope float64) Values {
	x := make([]float64, 0, len(t))
	for _, tPnt := range t {
		x = append(x, intercept+slope*tPnt)
	}
	return Values(x)
}

// GenerateExponential returns scale * growth^i for the i-th coordinate
func GenerateExponential(t []float64, scale, growth float64) Values {
	x := make([]float64, 0, len(t))
	for i := range t {
		x = append(x, scale*math.Pow(growth, float64(i)))
	}
	return Values(x)
}

func GenerateWave(t []float64, amp, period, order, offset float64) Values {
	x := make([]float64, 0, len(t))
	for _, tPnt := range t {
		x = append(x, amp*math.Sin(2.0*math.Pi*order/period*(tPnt+offset)))
	}
	return Values(x)
}

func GenerateNoise(t []float64, noiseScale float64) Values {
	x := make([]float64, 0, len(t))
	for range t {
		x = append(x, rand.NormFloat64()*noiseScale)
	}
	return Values(x)
}
