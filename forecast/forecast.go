package forecast

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-expsmooth/timeseries"
)

var (
	ErrInsufficientData  = errors.New("insufficient data to seed the trend")
	ErrZeroLevel         = errors.New("multiplicative trend requires a non-zero level")
	ErrNonPositiveGrowth = errors.New("multiplicative trend requires a positive growth")
	ErrUninitialized     = errors.New("uninitialized smoothing state")
)

// State is the level and trend of a smoothing method after consuming a series. It can keep
// consuming observations with Update and forecast any number of steps past the last one.
type State struct {
	Method  Method  `json:"method"`
	Alpha   float64 `json:"alpha"`
	Beta    float64 `json:"beta"`
	Damping float64 `json:"damping"` // 1 for undamped methods

	Level float64 `json:"level"`
	Trend float64 `json:"trend"` // per step change for additive trends, per step growth for multiplicative

	LastT        float64 `json:"last_t"`
	Spacing      float64 `json:"spacing"`
	Observations int     `json:"observations"`
}

// Fit runs the smoothing recurrence of method m over the series. The returned series holds the
// first observation followed by the one step ahead prediction for every later observation and
// opt.Horizon forecasts past the end of the series. The returned series is frozen and the input
// is left untouched.
func Fit(ts *timeseries.Series, m Method, opt *Options) (*timeseries.Series, *State, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if err := opt.Validate(m); err != nil {
		return nil, nil, err
	}
	if ts == nil || ts.Len() == 0 {
		return nil, nil, fmt.Errorf("%s fit, %w", m.Name, timeseries.ErrEmptySeries)
	}
	if m.HasTrend() && ts.Len() < 2 {
		return nil, nil, fmt.Errorf("%s fit expected at least 2 observations, but got %d, %w",
			m.Name, ts.Len(), ErrInsufficientData)
	}

	state, err := newState(ts, m, opt)
	if err != nil {
		return nil, nil, err
	}

	points := ts.Points()
	out, err := timeseries.New(ts.Spacing())
	if err != nil {
		return nil, nil, err
	}
	if err := out.AppendFirst(points[0].T, points[0].X); err != nil {
		return nil, nil, err
	}
	for _, p := range points[1:] {
		if err := out.Append(state.Forecast(1)); err != nil {
			return nil, nil, err
		}
		if err := state.update(p.X); err != nil {
			return nil, nil, fmt.Errorf("%s fit at t=%g, %w", m.Name, p.T, err)
		}
	}
	state.LastT = points[len(points)-1].T
	state.Observations = len(points)

	for k := 1; k <= opt.Horizon; k++ {
		if err := out.Append(state.Forecast(k)); err != nil {
			return nil, nil, err
		}
	}
	return out.Freeze(), state, nil
}

// newState seeds the level with the first observation. Additive trends start from the gradient
// at the first point scaled to one step and multiplicative trends from the ratio of the first
// two observations.
func newState(ts *timeseries.Series, m Method, opt *Options) (*State, error) {
	first, err := ts.First()
	if err != nil {
		return nil, err
	}

	s := &State{
		Method:       m,
		Alpha:        opt.Alpha,
		Beta:         opt.Beta,
		Damping:      1,
		Level:        first.X,
		LastT:        first.T,
		Spacing:      ts.Spacing(),
		Observations: 1,
	}
	if m.Damped {
		s.Damping = opt.Damping
	}

	switch m.Trend {
	case TrendNone:
	case TrendAdditive:
		g, err := ts.Gradient(0)
		if err != nil {
			return nil, err
		}
		s.Trend = g * ts.Spacing()
	case TrendMultiplicative:
		if first.X == 0 {
			return nil, fmt.Errorf("%s seed at t=%g, %w", m.Name, first.T, ErrZeroLevel)
		}
		x1, err := ts.X(1)
		if err != nil {
			return nil, err
		}
		growth := x1 / first.X
		if !(growth > 0) {
			return nil, fmt.Errorf("%s seed growth %g at t=%g, %w", m.Name, growth, first.T, ErrNonPositiveGrowth)
		}
		s.Trend = growth
	default:
		return nil, fmt.Errorf("%s, %w", m.Name, ErrUnknownTrend)
	}
	return s, nil
}

// update applies one recurrence step. The state is only modified when the step succeeds.
func (s *State) update(x float64) error {
	prevLevel := s.Level
	level, trend := s.Level, s.Trend
	switch s.Method.Trend {
	case TrendNone:
		level = s.Alpha*x + (1-s.Alpha)*prevLevel
	case TrendAdditive:
		dampedTrend := s.Damping * s.Trend
		level = s.Alpha*x + (1-s.Alpha)*(prevLevel+dampedTrend)
		trend = s.Beta*(level-prevLevel) + (1-s.Beta)*dampedTrend
	case TrendMultiplicative:
		if prevLevel == 0 {
			return ErrZeroLevel
		}
		if !(s.Trend > 0) {
			return fmt.Errorf("growth %g, %w", s.Trend, ErrNonPositiveGrowth)
		}
		dampedTrend := math.Pow(s.Trend, s.Damping)
		level = s.Alpha*x + (1-s.Alpha)*prevLevel*dampedTrend
		if level == 0 {
			return ErrZeroLevel
		}
		trend = s.Beta*(level/prevLevel) + (1-s.Beta)*dampedTrend
		if !(trend > 0) {
			return fmt.Errorf("growth %g, %w", trend, ErrNonPositiveGrowth)
		}
	default:
		return ErrUnknownTrend
	}
	s.Level, s.Trend = level, trend
	return nil
}

// Update consumes the next observation, one step after LastT
func (s *State) Update(x float64) error {
	if s == nil {
		return ErrUninitialized
	}
	if err := s.update(x); err != nil {
		return fmt.Errorf("%s update at t=%g, %w", s.Method.Name, s.LastT+s.Spacing, err)
	}
	s.LastT += s.Spacing
	s.Observations++
	return nil
}

// Forecast returns the prediction k steps past the last consumed observation. A non-positive k
// returns the current level.
func (s *State) Forecast(k int) float64 {
	if s == nil {
		return math.NaN()
	}
	if k <= 0 {
		return s.Level
	}
	switch s.Method.Trend {
	case TrendAdditive:
		return s.Level + s.dampedSteps(k)*s.Trend
	case TrendMultiplicative:
		return s.Level * math.Pow(s.Trend, s.dampedSteps(k))
	default:
		return s.Level
	}
}

// dampedSteps is the sum of damping^d for d in 1..k, or k when undamped
func (s *State) dampedSteps(k int) float64 {
	if !s.Method.Damped || s.Damping == 1 {
		return float64(k)
	}
	sum, pow := 0.0, 1.0
	for d := 1; d <= k; d++ {
		pow *= s.Damping
		sum += pow
	}
	return sum
}

// Predict returns a frozen series of the next h forecasts starting one step after LastT
func (s *State) Predict(h int) (*timeseries.Series, error) {
	if s == nil {
		return nil, ErrUninitialized
	}
	if h < 0 {
		return nil, fmt.Errorf("horizon of %d is negative, %w", h, ErrInvalidParameter)
	}
	out, err := timeseries.New(s.Spacing)
	if err != nil {
		return nil, err
	}
	if h == 0 {
		return out.Freeze(), nil
	}
	if err := out.AppendFirst(s.LastT+s.Spacing, s.Forecast(1)); err != nil {
		return nil, err
	}
	for k := 2; k <= h; k++ {
		if err := out.Append(s.Forecast(k)); err != nil {
			return nil, err
		}
	}
	return out.Freeze(), nil
}
