package timeseries

import "fmt"

// SubSeries returns an independent series holding the observations from index from to
// index to, both inclusive.
func (s *Series) SubSeries(from, to int) (*Series, error) {
	if len(s.points) == 0 {
		return nil, fmt.Errorf("sub series [%d, %d], %w", from, to, ErrEmptySeries)
	}
	if from < 0 || to >= len(s.points) || from > to {
		return nil, fmt.Errorf("sub series [%d, %d] of series with size %d, %w", from, to, len(s.points), ErrOutOfRange)
	}
	points := make([]DataPoint, to-from+1)
	copy(points, s.points[from:to+1])
	return &Series{
		spacing: s.spacing,
		points:  points,
	}, nil
}

// SubSeriesT returns an independent series holding the observations whose time coordinate
// lies within [from, to]. A range that covers no observation yields an empty series.
func (s *Series) SubSeriesT(from, to float64) (*Series, error) {
	if from > to {
		return nil, fmt.Errorf("sub series t=[%g, %g], %w", from, to, ErrOutOfRange)
	}
	sub := &Series{spacing: s.spacing}
	for _, p := range s.points {
		if p.T > to {
			break
		}
		if p.T >= from {
			sub.points = append(sub.points, p)
		}
	}
	return sub, nil
}

// Divert returns a series of the same time coordinates whose values are the gradients of
// this series. Applying it n times removes a polynomial trend of degree n.
func (s *Series) Divert() (*Series, error) {
	if len(s.points) == 0 {
		return nil, fmt.Errorf("unable to divert, %w", ErrEmptySeries)
	}
	points := make([]DataPoint, len(s.points))
	for i, p := range s.points {
		points[i] = DataPoint{T: p.T, X: s.gradient(i)}
	}
	return &Series{
		spacing: s.spacing,
		points:  points,
	}, nil
}
