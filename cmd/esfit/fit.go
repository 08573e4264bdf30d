package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aouyang1/go-expsmooth"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type fitOutput struct {
	Model    expsmooth.Model    `json:"model"`
	Outliers []int              `json:"outliers,omitempty"`
	Fit      *expsmooth.Results `json:"fit"`
	Forecast *expsmooth.Results `json:"forecast"`
}

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fit",
		Short:   "Fit a smoothing method to a csv series and forecast past its end",
		Example: "  esfit fit --input sales.csv --method damped --horizon 12 --plot sales.html",
		Args:    cobra.NoArgs,
		RunE:    RunFitCmdF,
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "path to the csv series")
	flags.Bool("outliers", false, "replace outliers found in the fit residuals before the final fit")
	flags.Int("outlier-passes", 0, "maximum number of outlier passes")
	flags.String("plot", "", "write an html plot of the fit and forecast to this path")
	flags.String("model-out", "", "write the fitted model as json to this path")
	flags.StringP("format", "f", "table", "output format (table or json)")
	addInputFlags(flags)
	addSmoothingFlags(flags)

	return cmd
}

func RunFitCmdF(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}

	ts, err := loadSeries(cmd, "input", cfg)
	if err != nil {
		return err
	}
	logger.Debug("loaded series", "observations", ts.Len(), "spacing", ts.Spacing())

	f, err := expsmooth.New(cfg.ForecasterOptions())
	if err != nil {
		return err
	}
	if err := f.Fit(ts); err != nil {
		logger.Error("fit failed", "method", cfg.Smoothing.Method, "error", err)
		return err
	}

	model, err := f.Model()
	if err != nil {
		return err
	}
	logger.Info("fit complete",
		"method", f.Method().Name,
		"observations", ts.Len(),
		"outliers", len(f.Outliers()),
		"rmse", model.Scores.RMSE,
	)

	res, err := f.Predict(cfg.Smoothing.Horizon)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("model-out"); path != "" {
		if err := writeJSONFile(path, model); err != nil {
			return err
		}
		logger.Info("wrote model", "path", path)
	}

	if path, _ := cmd.Flags().GetString("plot"); path != "" {
		if err := writePlot(path, f, cfg.Smoothing.Horizon); err != nil {
			return err
		}
		logger.Info("wrote plot", "path", path)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return json.NewEncoder(out).Encode(fitOutput{
			Model:    model,
			Outliers: f.Outliers(),
			Fit:      f.FitResults(),
			Forecast: res,
		})
	}

	if err := model.TablePrint(out); err != nil {
		return err
	}
	return printResults(out, "Forecast", res)
}

func writePlot(path string, f *expsmooth.Forecaster, horizon int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var opt *expsmooth.PlotOpts
	if horizon > 0 {
		opt = &expsmooth.PlotOpts{HorizonCnt: horizon}
	}
	return f.PlotFit(file, opt)
}

func writeJSONFile(path string, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func printResults(w io.Writer, title string, res *expsmooth.Results) error {
	if len(res.T) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	for i := range res.T {
		if _, err := fmt.Fprintf(w, "  %g : %.3f [%.3f, %.3f]\n", res.T[i], res.Forecast[i], res.Lower[i], res.Upper[i]); err != nil {
			return err
		}
	}
	return nil
}
