package forecast

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidParameter = errors.New("invalid smoothing parameter")

// Options holds the smoothing parameters shared by all methods. Beta is only read by methods
// with a trend and Damping only by damped methods.
type Options struct {
	Alpha   float64 `json:"alpha"`
	Beta    float64 `json:"beta"`
	Damping float64 `json:"damping"`
	Horizon int     `json:"horizon"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Alpha:   0.8,
		Beta:    0.2,
		Damping: 0.98,
		Horizon: 0,
	}
}

// Validate checks the parameters used by the method are within their domain
func (o *Options) Validate(m Method) error {
	if o == nil {
		return fmt.Errorf("%s has no options, %w", m.Name, ErrInvalidParameter)
	}
	if !inUnitInterval(o.Alpha) {
		return fmt.Errorf("%s alpha of %g not in [0, 1], %w", m.Name, o.Alpha, ErrInvalidParameter)
	}
	if m.HasTrend() && !inUnitInterval(o.Beta) {
		return fmt.Errorf("%s beta of %g not in [0, 1], %w", m.Name, o.Beta, ErrInvalidParameter)
	}
	if m.Damped && (math.IsNaN(o.Damping) || o.Damping <= 0 || o.Damping > 1) {
		return fmt.Errorf("%s damping of %g not in (0, 1], %w", m.Name, o.Damping, ErrInvalidParameter)
	}
	if o.Horizon < 0 {
		return fmt.Errorf("%s horizon of %d is negative, %w", m.Name, o.Horizon, ErrInvalidParameter)
	}
	return nil
}

func inUnitInterval(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
