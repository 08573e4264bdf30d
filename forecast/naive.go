package forecast

import (
	"fmt"

	"github.com/aouyang1/go-expsmooth/timeseries"
)

// Average forecasts every future step as the mean of the observations
func Average(ts *timeseries.Series) (float64, error) {
	if ts == nil {
		return 0, fmt.Errorf("average forecast, %w", timeseries.ErrEmptySeries)
	}
	mean, err := ts.Mean()
	if err != nil {
		return 0, fmt.Errorf("average forecast, %w", err)
	}
	return mean, nil
}

// Naive forecasts every future step as the last observation
func Naive(ts *timeseries.Series) (float64, error) {
	if ts == nil {
		return 0, fmt.Errorf("naive forecast, %w", timeseries.ErrEmptySeries)
	}
	last, err := ts.Last()
	if err != nil {
		return 0, fmt.Errorf("naive forecast, %w", err)
	}
	return last.X, nil
}
