package timeseries

import "math"

// DataPoint is a single observation where T is the independent (time) coordinate and X
// the observed value.
type DataPoint struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
}

// EuclideanDistance returns the distance between two points in the (t, x) plane
func (p DataPoint) EuclideanDistance(other DataPoint) float64 {
	return math.Hypot(p.T-other.T, p.X-other.X)
}

// Gradient computes the finite difference of x with respect to t at self. A forward
// difference is used whenever next exists, regardless of prev. The last point of a series
// falls back to a backward difference and a point without neighbors has no gradient.
func Gradient(prev, self, next *DataPoint) float64 {
	switch {
	case next != nil:
		return (next.X - self.X) / (next.T - self.T)
	case prev != nil:
		return (self.X - prev.X) / (self.T - prev.T)
	default:
		return 0.0
	}
}
