package timeseries

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptySeries      = errors.New("empty series")
	ErrOutOfRange       = errors.New("index out of range")
	ErrNotFound         = errors.New("no observation at time coordinate")
	ErrInvalidSpacing   = errors.New("spacing must be positive and finite")
	ErrIrregularSpacing = errors.New("observations are not evenly spaced")
	ErrNotEmpty         = errors.New("series already has observations")
	ErrFrozenSeries     = errors.New("series is frozen and cannot be modified")
)

// DefaultSpacing is the distance between consecutive observations when none is specified
const DefaultSpacing = 1.0

// Series is a regularly spaced, ordered sequence of observations. Consecutive observations
// are exactly Spacing apart on the t axis. A Series is built by appending and can be frozen
// before it is handed to consumers, after which every mutating call fails.
type Series struct {
	spacing float64
	points  []DataPoint
	frozen  bool
}

// New returns an empty series with the given spacing between observations
func New(spacing float64) (*Series, error) {
	if err := validateSpacing(spacing); err != nil {
		return nil, err
	}
	return &Series{spacing: spacing}, nil
}

// NewWithPoint returns a series seeded with the observation (t, x)
func NewWithPoint(spacing, t, x float64) (*Series, error) {
	s, err := New(spacing)
	if err != nil {
		return nil, err
	}
	if err := s.AppendFirst(t, x); err != nil {
		return nil, err
	}
	return s, nil
}

// FromValues builds a series whose first observation sits at t0 followed by the remaining
// values at every spacing step.
func FromValues(spacing, t0 float64, x []float64) (*Series, error) {
	s, err := New(spacing)
	if err != nil {
		return nil, err
	}
	s.points = make([]DataPoint, 0, len(x))
	for i, val := range x {
		if i == 0 {
			s.points = append(s.points, DataPoint{T: t0, X: val})
			continue
		}
		if err := s.Append(val); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FromPoints builds a series from explicit observations. The points must be strictly
// increasing in t and exactly spacing apart.
func FromPoints(spacing float64, points []DataPoint) (*Series, error) {
	s, err := New(spacing)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(points); i++ {
		dt := points[i].T - points[i-1].T
		if math.Abs(dt-spacing) > tolerance(spacing, points[i].T) {
			return nil, fmt.Errorf("expected spacing %g between index %d and %d, but got %g, %w",
				spacing, i-1, i, dt, ErrIrregularSpacing)
		}
	}
	s.points = make([]DataPoint, len(points))
	copy(s.points, points)
	return s, nil
}

func validateSpacing(spacing float64) error {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return fmt.Errorf("spacing of %g, %w", spacing, ErrInvalidSpacing)
	}
	return nil
}

func tolerance(spacing, t float64) float64 {
	return 1e-9 * math.Max(spacing, math.Abs(t))
}

// Spacing returns the constant distance between consecutive observations
func (s *Series) Spacing() float64 {
	return s.spacing
}

// Len returns the number of observations in the series
func (s *Series) Len() int {
	return len(s.points)
}

// Append adds the next observation with value x one spacing step after the last
// observation, or at t=0 if the series is empty.
func (s *Series) Append(x float64) error {
	if s.frozen {
		return fmt.Errorf("unable to append, %w", ErrFrozenSeries)
	}
	if len(s.points) == 0 {
		s.points = append(s.points, DataPoint{T: 0, X: x})
		return nil
	}
	last := s.points[len(s.points)-1]
	s.points = append(s.points, DataPoint{T: last.T + s.spacing, X: x})
	return nil
}

// AppendFirst seeds an empty series with the observation (t, x)
func (s *Series) AppendFirst(t, x float64) error {
	if s.frozen {
		return fmt.Errorf("unable to append first point, %w", ErrFrozenSeries)
	}
	if len(s.points) != 0 {
		return fmt.Errorf("unable to append first point to series of size %d, %w", len(s.points), ErrNotEmpty)
	}
	s.points = append(s.points, DataPoint{T: t, X: x})
	return nil
}

// SetX replaces the value of the observation at index i
func (s *Series) SetX(i int, x float64) error {
	if s.frozen {
		return fmt.Errorf("unable to set x, %w", ErrFrozenSeries)
	}
	if err := s.checkIndex("set x", i); err != nil {
		return err
	}
	s.points[i].X = x
	return nil
}

// Freeze marks the series as read-only and returns it
func (s *Series) Freeze() *Series {
	s.frozen = true
	return s
}

// Frozen reports whether the series rejects modifications
func (s *Series) Frozen() bool {
	return s.frozen
}

// Copy returns an independent, modifiable copy of the series
func (s *Series) Copy() *Series {
	points := make([]DataPoint, len(s.points))
	copy(points, s.points)
	return &Series{
		spacing: s.spacing,
		points:  points,
	}
}

func (s *Series) checkIndex(op string, i int) error {
	if len(s.points) == 0 {
		return fmt.Errorf("%s at index %d, %w", op, i, ErrEmptySeries)
	}
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%s at index %d of series with size %d, %w", op, i, len(s.points), ErrOutOfRange)
	}
	return nil
}

// Get returns the observation at position i
func (s *Series) Get(i int) (DataPoint, error) {
	if err := s.checkIndex("get", i); err != nil {
		return DataPoint{}, err
	}
	return s.points[i], nil
}

// T returns the time coordinate of the observation at position i
func (s *Series) T(i int) (float64, error) {
	if err := s.checkIndex("get t", i); err != nil {
		return 0, err
	}
	return s.points[i].T, nil
}

// X returns the value of the observation at position i
func (s *Series) X(i int) (float64, error) {
	if err := s.checkIndex("get x", i); err != nil {
		return 0, err
	}
	return s.points[i].X, nil
}

// Gradient returns the local derivative of x with respect to t at position i
func (s *Series) Gradient(i int) (float64, error) {
	if err := s.checkIndex("get gradient", i); err != nil {
		return 0, err
	}
	return s.gradient(i), nil
}

func (s *Series) gradient(i int) float64 {
	var prev, next *DataPoint
	if i > 0 {
		prev = &s.points[i-1]
	}
	if i < len(s.points)-1 {
		next = &s.points[i+1]
	}
	return Gradient(prev, &s.points[i], next)
}

// XAt returns the value observed at time coordinate t. The coordinate must fall on one of
// the series' spacing steps counted from the first observation.
func (s *Series) XAt(t float64) (float64, error) {
	if len(s.points) == 0 {
		return 0, fmt.Errorf("get x at t=%g, %w", t, ErrEmptySeries)
	}
	step := math.Round((t - s.points[0].T) / s.spacing)
	if math.IsNaN(step) || step < 0 || step >= float64(len(s.points)) {
		return 0, fmt.Errorf("t=%g outside of [%g, %g], %w", t, s.points[0].T, s.points[len(s.points)-1].T, ErrNotFound)
	}
	p := s.points[int(step)]
	if math.Abs(p.T-t) > tolerance(s.spacing, t) {
		return 0, fmt.Errorf("t=%g is between spacing steps, %w", t, ErrNotFound)
	}
	return p.X, nil
}

// GradientDistance returns the absolute difference between the gradient at index i of
// this series and the gradient at index j of other.
func (s *Series) GradientDistance(i int, other *Series, j int) (float64, error) {
	g, err := s.Gradient(i)
	if err != nil {
		return 0, err
	}
	og, err := other.Gradient(j)
	if err != nil {
		return 0, err
	}
	return math.Abs(g - og), nil
}

// First returns the root observation
func (s *Series) First() (DataPoint, error) {
	if len(s.points) == 0 {
		return DataPoint{}, fmt.Errorf("get first point, %w", ErrEmptySeries)
	}
	return s.points[0], nil
}

// Last returns the final observation
func (s *Series) Last() (DataPoint, error) {
	if len(s.points) == 0 {
		return DataPoint{}, fmt.Errorf("get last point, %w", ErrEmptySeries)
	}
	return s.points[len(s.points)-1], nil
}

// Points returns a copy of every observation in order
func (s *Series) Points() []DataPoint {
	points := make([]DataPoint, len(s.points))
	copy(points, s.points)
	return points
}

// Values returns a copy of the observed values in order
func (s *Series) Values() []float64 {
	x := make([]float64, len(s.points))
	for i, p := range s.points {
		x[i] = p.X
	}
	return x
}

// Times returns a copy of the time coordinates in order
func (s *Series) Times() []float64 {
	t := make([]float64, len(s.points))
	for i, p := range s.points {
		t[i] = p.T
	}
	return t
}
