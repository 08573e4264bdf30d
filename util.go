package expsmooth

import (
	"math"

	"github.com/aouyang1/go-expsmooth/timeseries"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// missing is how echarts marks a gap in a line
const missing = "-"

func lineValue(v float64) opts.LineData {
	if math.IsNaN(v) {
		return opts.LineData{Value: missing}
	}
	return opts.LineData{Value: v}
}

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. The input
// y is a slice of series that must have the same length as the input time slice. NaN values are
// drawn as gaps.
func LineTSeries(title string, seriesName []string, t []float64, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	line = line.SetXAxis(t)
	for i, series := range seriesName {
		if i >= len(y) {
			break
		}
		lineData := make([]opts.LineData, 0, len(y[i]))
		for _, v := range y[i] {
			lineData = append(lineData, lineValue(v))
		}
		line = line.AddSeries(series, lineData)
	}
	return line
}

// LineForecaster generates an echart line chart for a fit result plotting the observed values
// along with the fitted and forecasted values and their upper and lower bands.
func LineForecaster(trainingData *timeseries.Series, fit, forecast *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Forecast Fit",
			},
		),
	)

	n := len(fit.T) + len(forecast.T)
	t := make([]float64, 0, n)
	t = append(t, fit.T...)
	t = append(t, forecast.T...)

	observed := trainingData.Values()
	lineDataActual := make([]opts.LineData, 0, n)
	lineDataForecast := make([]opts.LineData, 0, n)
	lineDataUpper := make([]opts.LineData, 0, n)
	lineDataLower := make([]opts.LineData, 0, n)

	for _, res := range []*Results{fit, forecast} {
		for i := 0; i < len(res.T); i++ {
			lineDataForecast = append(lineDataForecast, lineValue(res.Forecast[i]))
			lineDataUpper = append(lineDataUpper, lineValue(res.Upper[i]))
			lineDataLower = append(lineDataLower, lineValue(res.Lower[i]))
		}
	}
	for i := 0; i < n; i++ {
		if i < len(observed) {
			lineDataActual = append(lineDataActual, lineValue(observed[i]))
			continue
		}
		lineDataActual = append(lineDataActual, lineValue(math.NaN()))
	}

	line.SetXAxis(t).
		AddSeries("Actual", lineDataActual).
		AddSeries("Forecast", lineDataForecast).
		AddSeries("Upper", lineDataUpper).
		AddSeries("Lower", lineDataLower)
	return line
}
