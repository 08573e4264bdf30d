package expsmooth

import "github.com/aouyang1/go-expsmooth/timeseries"

// Results holds the forecast along with the upper and lower prediction bands for each time
type Results struct {
	T        []float64 `json:"t"`
	Forecast []float64 `json:"forecast"`
	Upper    []float64 `json:"upper"`
	Lower    []float64 `json:"lower"`
}

func newResults(s *timeseries.Series, band float64) *Results {
	forecast := s.Values()
	upper := make([]float64, len(forecast))
	lower := make([]float64, len(forecast))
	for i, v := range forecast {
		upper[i] = v + band
		lower[i] = v - band
	}
	return &Results{
		T:        s.Times(),
		Forecast: forecast,
		Upper:    upper,
		Lower:    lower,
	}
}
