package expsmooth

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aouyang1/go-expsmooth/forecast"
	"github.com/aouyang1/go-expsmooth/timeseries"
	"github.com/stretchr/testify/require"
)

func generateExampleSeries() *timeseries.Series {
	n := 200
	t := timeseries.GenerateT(n, 1, 0)
	x := make(timeseries.Values, n)
	x.Add(timeseries.GenerateConstX(n, 98.3)).
		Add(timeseries.GenerateLinear(t, 0, 0.4)).
		Add(timeseries.GenerateWave(t, 3.5, 50, 1.0, 0)).
		Add(timeseries.GenerateNoise(t, 1.2))
	x[n/3] += 40
	x[n*2/3] -= 35

	ts, err := x.Series(1, 0)
	if err != nil {
		panic(err)
	}
	return ts
}

func runForecastExample(opt *Options, ts *timeseries.Series, filename string) error {
	f, err := New(opt)
	if err != nil {
		return err
	}
	if err := f.Fit(ts); err != nil {
		return err
	}

	m, err := f.Model()
	if err != nil {
		return err
	}
	if err := m.TablePrint(os.Stderr); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return f.PlotFit(file, nil)
}

func TestForecastExamples(t *testing.T) {
	ts := generateExampleSeries()
	dir := t.TempDir()

	for _, m := range forecast.Methods() {
		t.Run(m.Name, func(t *testing.T) {
			opt := NewDefaultOptions()
			opt.Method = m.Name
			opt.OutlierOptions = NewOutlierOptions()
			require.Nil(t, runForecastExample(opt, ts, filepath.Join(dir, m.Name+".html")))
		})
	}
}

func ExampleForecaster() {
	ts, err := timeseries.FromValues(1, 0, []float64{10, 15})
	if err != nil {
		panic(err)
	}

	opt := &Options{
		Method:           forecast.HoltLinearTrend.Name,
		SmoothingOptions: &forecast.Options{Alpha: 1, Beta: 1},
	}
	f, err := New(opt)
	if err != nil {
		panic(err)
	}
	if err := f.Fit(ts); err != nil {
		panic(err)
	}

	res, err := f.Predict(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(f.Fitted().Values())
	fmt.Println(res.T, res.Forecast)
	// Output:
	// [10 15]
	// [2 3] [20 25]
}

func Example_simpleExponentialSmoothing() {
	ts, err := timeseries.FromValues(1, 1996, []float64{446.7, 454.5, 455.7, 423.6})
	if err != nil {
		panic(err)
	}

	out, err := forecast.SimpleExponentialSmoothingFit(ts, 1.0, 1)
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	// 1996 : 446.7
	// 1997 : 446.7
	// 1998 : 454.5
	// 1999 : 455.7
	// 2000 : 423.6
}
