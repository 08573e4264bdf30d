package expsmooth

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-expsmooth/forecast"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRoundTrip(t *testing.T) {
	ts := linearSeries(t, 25, 100, -2)
	opt := &Options{
		Method:           "damped",
		SmoothingOptions: &forecast.Options{Alpha: 0.4, Beta: 0.3, Damping: 0.9},
		OutlierOptions:   NewOutlierOptions(),
		ResidualZscore:   3.0,
	}
	f, err := New(opt)
	require.Nil(t, err)
	require.Nil(t, f.Fit(ts))

	m, err := f.Model()
	require.Nil(t, err)
	out, err := json.Marshal(m)
	require.Nil(t, err)

	var decoded Model
	require.Nil(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, m, decoded)

	loaded, err := NewFromModel(decoded)
	require.Nil(t, err)
	assert.Equal(t, forecast.DampedTrend, loaded.Method())

	expected, err := f.Predict(10)
	require.Nil(t, err)
	res, err := loaded.Predict(10)
	require.Nil(t, err)
	assert.Equal(t, expected, res)
}

func TestNewFromModelErrors(t *testing.T) {
	_, err := NewFromModel(Model{})
	assert.ErrorIs(t, err, ErrNoOptionsInModel)

	_, err = NewFromModel(Model{Options: NewDefaultOptions()})
	assert.ErrorIs(t, err, ErrNoStateInModel)

	holtState := &forecast.State{
		Method:  forecast.HoltLinearTrend,
		Alpha:   0.5,
		Beta:    0.5,
		Damping: 1,
		Level:   10,
		Trend:   1,
		LastT:   9,
		Spacing: 1,
	}

	testData := map[string]struct {
		opt *Options
		err error
	}{
		"unknown method": {
			opt: &Options{Method: "arima"},
			err: ErrUnknownMethod,
		},
		"method differs from state": {
			opt: &Options{Method: "ses"},
			err: ErrMethodMismatch,
		},
		"invalid smoothing options": {
			opt: &Options{Method: "holt", SmoothingOptions: &forecast.Options{Alpha: 2}},
			err: forecast.ErrInvalidParameter,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := NewFromModel(Model{Options: td.opt, State: holtState})
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestNewFromModelDefaultsSmoothingOptions(t *testing.T) {
	state := &forecast.State{
		Method:  forecast.HoltLinearTrend,
		Damping: 1,
		Level:   10,
		Trend:   1,
		LastT:   9,
		Spacing: 1,
	}
	f, err := NewFromModel(Model{Options: &Options{}, State: state})
	require.Nil(t, err)
	assert.Equal(t, forecast.HoltLinearTrend, f.Method())

	res, err := f.Predict(1)
	require.Nil(t, err)
	assert.Equal(t, []float64{11}, res.Forecast)

	assert.NotPanics(t, func() {
		require.Nil(t, f.Fit(linearSeries(t, 10, 1, 1)))
	})
}

func TestModelTablePrint(t *testing.T) {
	ts := linearSeries(t, 10, 1, 1)
	f, err := New(nil)
	require.Nil(t, err)
	require.Nil(t, f.Fit(ts))

	m, err := f.Model()
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, m.TablePrint(&buf))
	out := buf.String()
	assert.Contains(t, out, "Forecaster:\n")
	assert.Contains(t, out, "  Outliers: None\n")
	assert.Contains(t, out, "    Method: holt (additive trend)\n")
	assert.Contains(t, out, "  Scores:\n")
	assert.Contains(t, out, "RMSE: 0.000")
}
