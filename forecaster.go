package expsmooth

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aouyang1/go-expsmooth/evaluate"
	"github.com/aouyang1/go-expsmooth/forecast"
	"github.com/aouyang1/go-expsmooth/stats"
	"github.com/aouyang1/go-expsmooth/timeseries"
	"github.com/go-echarts/go-echarts/v2/components"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrUnknownMethod       = forecast.ErrUnknownMethod
	ErrUntrainedForecaster = errors.New("forecaster has not been trained yet")
	ErrNoOptionsInModel    = errors.New("no options set in model")
	ErrNoStateInModel      = errors.New("no smoothing state set in model")
	ErrMethodMismatch      = errors.New("model options and smoothing state name different methods")
)

// Forecaster fits an exponential smoothing method to a series and can be used to generate
// forecasts with prediction bands
type Forecaster struct {
	opt    *Options
	method forecast.Method

	state *forecast.State

	fitTrainingData *timeseries.Series
	fitted          *timeseries.Series
	fitResults      *Results
	residual        []float64
	residualStdDev  float64
	outliers        []int
	scores          *evaluate.Scores
}

// New creates a new instance of a Forecaster using the provided options. If no options are provided
// a default is used.
func New(opt *Options) (*Forecaster, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.SmoothingOptions == nil {
		opt.SmoothingOptions = forecast.NewDefaultOptions()
	}

	m, err := forecast.Lookup(opt.Method)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize forecaster, %w", err)
	}
	if err := opt.SmoothingOptions.Validate(m); err != nil {
		return nil, fmt.Errorf("unable to initialize forecaster, %w", err)
	}

	f := &Forecaster{
		opt:    opt,
		method: m,
	}
	return f, nil
}

// NewFromModel creates a new instance of Forecaster from a pre-existing model. This should be generated from
// from a previous forecaster call to Model().
func NewFromModel(model Model) (*Forecaster, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	if model.State == nil {
		return nil, ErrNoStateInModel
	}

	opt := *model.Options
	if opt.SmoothingOptions == nil {
		opt.SmoothingOptions = forecast.NewDefaultOptions()
	}
	if opt.Method == "" {
		opt.Method = model.State.Method.Name
	}

	m, err := forecast.Lookup(opt.Method)
	if err != nil {
		return nil, fmt.Errorf("unable to load model, %w", err)
	}
	if m != model.State.Method {
		return nil, fmt.Errorf("options use %s but state uses %s, %w", m, model.State.Method, ErrMethodMismatch)
	}
	if err := opt.SmoothingOptions.Validate(m); err != nil {
		return nil, fmt.Errorf("unable to load model, %w", err)
	}

	state := *model.State
	f := &Forecaster{
		opt:            &opt,
		method:         m,
		state:          &state,
		scores:         model.Scores,
		residualStdDev: model.ResidualStdDev,
	}
	return f, nil
}

// Fit smooths the series. The input is copied and never modified.
func (f *Forecaster) Fit(ts *timeseries.Series) error {
	if ts == nil || ts.Len() == 0 {
		return fmt.Errorf("unable to fit forecaster, %w", timeseries.ErrEmptySeries)
	}
	trainingData := ts.Copy().Freeze()

	fitted, state, outliers, err := f.fitWithOutliers(ts.Copy())
	if err != nil {
		return err
	}

	observed := ts.Values()
	predicted := fitted.Values()
	residual := make([]float64, len(observed))
	for i := range observed {
		residual[i] = observed[i] - predicted[i]
	}

	// the first residual is always zero since the fit is anchored on the first observation
	residualStdDev := 0.0
	if len(residual) > 1 {
		residualStdDev = math.Sqrt(stat.PopVariance(residual[1:], nil))
	}

	scores, err := evaluate.NewScores(predicted, observed)
	if err != nil {
		return fmt.Errorf("unable to score fit, %w", err)
	}

	// nothing is replaced until the whole fit has succeeded
	f.fitTrainingData = trainingData
	f.state = state
	f.fitted = fitted
	f.residual = residual
	f.residualStdDev = residualStdDev
	f.outliers = outliers
	f.scores = scores
	f.fitResults = newResults(fitted, f.band())
	return nil
}

func (f *Forecaster) fitWithOutliers(work *timeseries.Series) (*timeseries.Series, *forecast.State, []int, error) {
	smoothing := *f.opt.SmoothingOptions
	smoothing.Horizon = 0

	numPasses := 0
	if f.opt.OutlierOptions != nil {
		numPasses = f.opt.OutlierOptions.NumPasses
	}

	var fitted *timeseries.Series
	var state *forecast.State
	var err error
	outlierSet := make(map[int]struct{})
	for i := 0; i <= numPasses; i++ {
		fitted, state, err = forecast.Fit(work, f.method, &smoothing)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("unable to fit %s, %w", f.method.Name, err)
		}

		// break out if no outlier options provided or on the last pass
		if f.opt.OutlierOptions == nil || i == numPasses {
			break
		}

		observed := work.Values()
		predicted := fitted.Values()
		residual := make([]float64, len(observed))
		for j := range observed {
			residual[j] = observed[j] - predicted[j]
		}
		outlierIdxs := stats.DetectOutliers(
			residual,
			f.opt.OutlierOptions.LowerPercentile,
			f.opt.OutlierOptions.UpperPercentile,
			f.opt.OutlierOptions.TukeyFactor,
		)

		// residuals following an outlier are distorted by it so only the earliest new outlier is
		// replaced before refitting
		replaced := false
		for _, idx := range outlierIdxs {
			if _, exists := outlierSet[idx]; exists || idx == 0 {
				continue
			}
			outlierSet[idx] = struct{}{}
			if err := work.SetX(idx, predicted[idx]); err != nil {
				return nil, nil, nil, err
			}
			replaced = true
			break
		}

		// no new outliers so the last fit stands
		if !replaced {
			break
		}
	}

	outliers := make([]int, 0, len(outlierSet))
	for idx := range outlierSet {
		outliers = append(outliers, idx)
	}
	sort.Ints(outliers)
	return fitted, state, outliers, nil
}

func (f *Forecaster) band() float64 {
	return f.opt.ResidualZscore * f.residualStdDev
}

// Predict forecasts the next h steps after the training data
func (f *Forecaster) Predict(h int) (*Results, error) {
	if f.state == nil {
		return nil, ErrUntrainedForecaster
	}
	s, err := f.state.Predict(h)
	if err != nil {
		return nil, fmt.Errorf("unable to predict %d steps, %w", h, err)
	}
	return newResults(s, f.band()), nil
}

// PredictSeries forecasts the next h steps as a frozen series
func (f *Forecaster) PredictSeries(h int) (*timeseries.Series, error) {
	if f.state == nil {
		return nil, ErrUntrainedForecaster
	}
	return f.state.Predict(h)
}

// Update consumes observations arriving after the training data without refitting. Either every
// observation is consumed or the state is left as it was.
func (f *Forecaster) Update(x ...float64) error {
	if f.state == nil {
		return ErrUntrainedForecaster
	}
	state := *f.state
	for i, v := range x {
		if err := state.Update(v); err != nil {
			return fmt.Errorf("unable to consume observation %d of %d, %w", i+1, len(x), err)
		}
	}
	f.state = &state
	return nil
}

// Residuals returns the difference between the training data and the in-sample fit
func (f *Forecaster) Residuals() []float64 {
	return f.residual
}

// Outliers returns the sorted indices of training observations replaced during the outlier passes
func (f *Forecaster) Outliers() []int {
	return f.outliers
}

func (f *Forecaster) Scores() *evaluate.Scores {
	return f.scores
}

// State returns a copy of the current smoothing state
func (f *Forecaster) State() (forecast.State, error) {
	if f.state == nil {
		return forecast.State{}, ErrUntrainedForecaster
	}
	return *f.state, nil
}

// Method returns the smoothing method used by the forecaster
func (f *Forecaster) Method() forecast.Method {
	return f.method
}

// Model generates a serializeable representation of the fit options, smoothing state and scores. This
// can be used to initialize a new Forecaster for immediate predictions skipping the training step.
func (f *Forecaster) Model() (Model, error) {
	if f.state == nil {
		return Model{}, ErrUntrainedForecaster
	}
	state := *f.state
	m := Model{
		Options:        f.opt,
		State:          &state,
		Scores:         f.scores,
		ResidualStdDev: f.residualStdDev,
	}
	return m, nil
}

// TrainingData returns the training data used to fit the current forecaster model
func (f *Forecaster) TrainingData() *timeseries.Series {
	return f.fitTrainingData
}

// Fitted returns the in-sample fit aligned with the training data
func (f *Forecaster) Fitted() *timeseries.Series {
	return f.fitted
}

// FitResults returns the results of the fit which includes the forecast, upper, and lower values
func (f *Forecaster) FitResults() *Results {
	return f.fitResults
}

// PlotOpts sets the horizon to forecast out. By default will use 10% of the training size.
type PlotOpts struct {
	HorizonCnt int
}

// PlotFit uses the Apache Echarts library to generate an html page showing the resulting fit,
// forecast and fit residual
func (f *Forecaster) PlotFit(w io.Writer, opt *PlotOpts) error {
	td := f.TrainingData()
	if td == nil || f.fitResults == nil {
		return ErrUntrainedForecaster
	}

	horizonCnt := td.Len() / 10
	if opt != nil {
		horizonCnt = opt.HorizonCnt
	}
	if horizonCnt < 1 {
		horizonCnt = 1
	}

	forecastRes, err := f.Predict(horizonCnt)
	if err != nil {
		return fmt.Errorf("unable to predict with horizon, %w", err)
	}

	t := append(td.Times(), forecastRes.T...)
	residuals := make([]float64, 0, len(t))
	residuals = append(residuals, f.Residuals()...)
	for range forecastRes.T {
		residuals = append(residuals, math.NaN())
	}

	page := components.NewPage()
	page.AddCharts(
		LineForecaster(td, f.fitResults, forecastRes),
		LineTSeries(
			"Forecast Residual",
			[]string{"Residual"},
			t,
			[][]float64{residuals},
		),
	)
	return page.Render(w)
}
