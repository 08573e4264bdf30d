package evaluate

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-expsmooth/timeseries"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrLengthMismatch = errors.New("observed and model series have different lengths")

// Scores tracks the fit scores
type Scores struct {
	MAE  float64 `json:"mean_absolute_error"`
	MSE  float64 `json:"mean_squared_error"`
	RMSE float64 `json:"root_mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates the fit scores given the predicted and actual input slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}

	return &Scores{
		MAE:  mae,
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAPE: mape,
		R2:   rs,
	}, nil
}

// MeanAbsoluteError compares the observed series to a fitted or forecast series of the same length
func MeanAbsoluteError(observations, model *timeseries.Series) (float64, error) {
	actual, predicted, err := values(observations, model)
	if err != nil {
		return 0, fmt.Errorf("mean absolute error, %w", err)
	}
	return MAE(predicted, actual)
}

func MeanSquaredError(observations, model *timeseries.Series) (float64, error) {
	actual, predicted, err := values(observations, model)
	if err != nil {
		return 0, fmt.Errorf("mean squared error, %w", err)
	}
	return MSE(predicted, actual)
}

func RootMeanSquaredError(observations, model *timeseries.Series) (float64, error) {
	actual, predicted, err := values(observations, model)
	if err != nil {
		return 0, fmt.Errorf("root mean squared error, %w", err)
	}
	return RMSE(predicted, actual)
}

func values(observations, model *timeseries.Series) ([]float64, []float64, error) {
	if observations == nil || model == nil {
		return nil, nil, timeseries.ErrEmptySeries
	}
	if observations.Len() != model.Len() {
		return nil, nil, fmt.Errorf("expected %d, but got %d, %w", observations.Len(), model.Len(), ErrLengthMismatch)
	}
	if observations.Len() == 0 {
		return nil, nil, timeseries.ErrEmptySeries
	}
	return observations.Values(), model.Values(), nil
}

func checkLengths(predicted, actual []float64) error {
	if len(predicted) != len(actual) {
		return fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrLengthMismatch)
	}
	if len(actual) == 0 {
		return timeseries.ErrEmptySeries
	}
	return nil
}

// MAE computes the mean absolute error, sum(abs(y-yhat))/n.
// A score of 0 means a perfect match with no errors.
func MAE(predicted, actual []float64) (float64, error) {
	if err := checkLengths(predicted, actual); err != nil {
		return 0, err
	}
	return floats.Distance(predicted, actual, 1) / float64(len(actual)), nil
}

// MSE computes the mean squared error. This is the same as sum((y-yhat)^2)/n.
// A score of 0 means a perfect match with no errors.
func MSE(predicted, actual []float64) (float64, error) {
	if err := checkLengths(predicted, actual); err != nil {
		return 0, err
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		mse += math.Pow(actual[i]-predicted[i], 2.0)
	}
	mse /= float64(len(actual))
	return mse, nil
}

// RMSE is the square root of the mean squared error in the units of the series
func RMSE(predicted, actual []float64) (float64, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAPE calculates the mean average percent error. This is the same as sum(abs((y-yhat)/y))/n.
// Observations of zero are skipped.
func MAPE(predicted, actual []float64) (float64, error) {
	if err := checkLengths(predicted, actual); err != nil {
		return 0, err
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape /= float64(len(actual))
	return mape, nil
}

// RSquared computes the r squared value between the predicted and actual where 1.0 means perfect
// fit and 0 represents no relationship
func RSquared(predicted, actual []float64) (float64, error) {
	if err := checkLengths(predicted, actual); err != nil {
		return 0, err
	}
	r2 := stat.RSquaredFrom(predicted, actual, nil)
	if math.IsNaN(r2) {
		return 1.0, nil
	}
	return r2, nil
}
