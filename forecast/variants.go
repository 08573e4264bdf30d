package forecast

import "github.com/aouyang1/go-expsmooth/timeseries"

func fitValues(ts *timeseries.Series, m Method, opt *Options) (*timeseries.Series, error) {
	out, _, err := Fit(ts, m, opt)
	return out, err
}

// SimpleExponentialSmoothingFit smooths the level only, forecasting a flat line
func SimpleExponentialSmoothingFit(ts *timeseries.Series, alpha float64, h int) (*timeseries.Series, error) {
	return fitValues(ts, SimpleExponentialSmoothing, &Options{Alpha: alpha, Horizon: h})
}

// HoltLinearTrendFit adds an additive trend, forecasting l + k*b
func HoltLinearTrendFit(ts *timeseries.Series, alpha, beta float64, h int) (*timeseries.Series, error) {
	return fitValues(ts, HoltLinearTrend, &Options{Alpha: alpha, Beta: beta, Horizon: h})
}

// ExponentialTrendFit uses a multiplicative growth trend, forecasting l * b^k
func ExponentialTrendFit(ts *timeseries.Series, alpha, beta float64, h int) (*timeseries.Series, error) {
	return fitValues(ts, ExponentialTrend, &Options{Alpha: alpha, Beta: beta, Horizon: h})
}

func DampedTrendFit(ts *timeseries.Series, alpha, beta, damping float64, h int) (*timeseries.Series, error) {
	return fitValues(ts, DampedTrend, &Options{Alpha: alpha, Beta: beta, Damping: damping, Horizon: h})
}

func MultiplicativeDampedTrendFit(ts *timeseries.Series, alpha, beta, damping float64, h int) (*timeseries.Series, error) {
	return fitValues(ts, MultiplicativeDampedTrend, &Options{Alpha: alpha, Beta: beta, Damping: damping, Horizon: h})
}
