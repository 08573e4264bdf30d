package expsmooth

import (
	"fmt"
	"io"

	"github.com/aouyang1/go-expsmooth/evaluate"
	"github.com/aouyang1/go-expsmooth/forecast"
)

// Model is a serializeable form of a fit Forecaster. It stores the options, the final smoothing
// state and the fit scores.
type Model struct {
	Options        *Options         `json:"options"`
	State          *forecast.State  `json:"state"`
	Scores         *evaluate.Scores `json:"scores"`
	ResidualStdDev float64          `json:"residual_stddev"`
}

func (m Model) TablePrint(w io.Writer) error {
	prefix := ""
	indent := "  "

	if _, err := fmt.Fprintf(w, "%sForecaster:\n", prefix); err != nil {
		return err
	}
	if m.Options != nil && m.Options.OutlierOptions != nil {
		oo := m.Options.OutlierOptions
		if _, err := fmt.Fprintf(w, "%s%sOutliers: passes %d, percentiles [%.2f, %.2f], tukey %.2f\n",
			prefix, indent, oo.NumPasses, oo.LowerPercentile, oo.UpperPercentile, oo.TukeyFactor); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s%sOutliers: None\n", prefix, indent); err != nil {
			return err
		}
	}

	if m.State != nil {
		if err := m.State.TablePrint(w, prefix, indent, 1); err != nil {
			return err
		}
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indent); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s%sMAE: %.3f    RMSE: %.3f    MAPE: %.3f    R2: %.3f\n",
			prefix, indent, indent,
			m.Scores.MAE,
			m.Scores.RMSE,
			m.Scores.MAPE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}
	return nil
}
