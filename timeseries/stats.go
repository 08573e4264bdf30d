package timeseries

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func (s *Series) nonEmptyValues(op string) ([]float64, error) {
	if len(s.points) == 0 {
		return nil, fmt.Errorf("unable to compute %s, %w", op, ErrEmptySeries)
	}
	return s.Values(), nil
}

// Min returns the smallest observed value
func (s *Series) Min() (float64, error) {
	x, err := s.nonEmptyValues("min")
	if err != nil {
		return 0, err
	}
	return floats.Min(x), nil
}

// Max returns the largest observed value
func (s *Series) Max() (float64, error) {
	x, err := s.nonEmptyValues("max")
	if err != nil {
		return 0, err
	}
	return floats.Max(x), nil
}

// Mean returns the arithmetic mean of the observed values
func (s *Series) Mean() (float64, error) {
	x, err := s.nonEmptyValues("mean")
	if err != nil {
		return 0, err
	}
	return stat.Mean(x, nil), nil
}

// Variance returns the population variance of the observed values, normalized by the
// number of observations.
func (s *Series) Variance() (float64, error) {
	x, err := s.nonEmptyValues("variance")
	if err != nil {
		return 0, err
	}
	return stat.PopVariance(x, nil), nil
}

// StdDev returns the population standard deviation of the observed values
func (s *Series) StdDev() (float64, error) {
	variance, err := s.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Median returns the middle observed value, averaging the two middle values for an even
// number of observations.
func (s *Series) Median() (float64, error) {
	x, err := s.nonEmptyValues("median")
	if err != nil {
		return 0, err
	}
	sort.Float64s(x)
	n := len(x)
	if n%2 == 0 {
		return (x[n/2-1] + x[n/2]) / 2.0, nil
	}
	return x[n/2], nil
}

// Span returns the distance on the t axis between the first and last observation
func (s *Series) Span() (float64, error) {
	if len(s.points) == 0 {
		return 0, fmt.Errorf("unable to compute span, %w", ErrEmptySeries)
	}
	return s.points[len(s.points)-1].T - s.points[0].T, nil
}
