package expsmooth

import "github.com/aouyang1/go-expsmooth/forecast"

// OutlierOptions configures the refits used to dampen outliers. On each pass observations whose
// residual falls outside the widened percentile band are replaced by their one step prediction.
type OutlierOptions struct {
	NumPasses       int     `json:"num_passes"`
	UpperPercentile float64 `json:"upper_percentile"`
	LowerPercentile float64 `json:"lower_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		NumPasses:       3,
		UpperPercentile: 0.9,
		LowerPercentile: 0.1,
		TukeyFactor:     1.0,
	}
}

// Options configures the smoothing method of a Forecaster along with the optional outlier passes
// and the width of the prediction bands in residual standard deviations
type Options struct {
	Method           string            `json:"method"`
	SmoothingOptions *forecast.Options `json:"smoothing_options"`
	OutlierOptions   *OutlierOptions   `json:"outlier_options"`
	ResidualZscore   float64           `json:"residual_zscore"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Method:           forecast.HoltLinearTrend.Name,
		SmoothingOptions: forecast.NewDefaultOptions(),
		ResidualZscore:   2.0,
	}
}
