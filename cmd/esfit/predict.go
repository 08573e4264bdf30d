package main

import (
	"fmt"
	"os"

	"github.com/aouyang1/go-expsmooth"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Forecast from a model written by fit --model-out",
		Long: "Forecast from a model written by fit --model-out. Observations arriving after the " +
			"training data can be folded into the model with --update before forecasting.",
		Args: cobra.NoArgs,
		RunE: RunPredictCmdF,
	}

	flags := cmd.Flags()
	flags.String("model", "", "path to the model json")
	flags.StringP("update", "u", "", "path to a csv of new observations to consume before forecasting")
	flags.Int("horizon", 0, "number of steps to forecast, defaults to the model horizon")
	flags.StringP("format", "f", "table", "output format (table or json)")
	addInputFlags(flags)

	return cmd
}

func RunPredictCmdF(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	path, _ := cmd.Flags().GetString("model")
	if path == "" {
		return fmt.Errorf("--model is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var model expsmooth.Model
	if err := json.Unmarshal(data, &model); err != nil {
		return fmt.Errorf("unable to decode model %s, %w", path, err)
	}

	f, err := expsmooth.NewFromModel(model)
	if err != nil {
		return err
	}

	if updatePath, _ := cmd.Flags().GetString("update"); updatePath != "" {
		ts, err := loadSeries(cmd, "update", cfg)
		if err != nil {
			return err
		}
		if err := f.Update(ts.Values()...); err != nil {
			return err
		}
		logger.Info("updated model", "observations", ts.Len())
	}

	horizon := 0
	if model.Options.SmoothingOptions != nil {
		horizon = model.Options.SmoothingOptions.Horizon
	}
	if cmd.Flags().Changed("horizon") {
		horizon, _ = cmd.Flags().GetInt("horizon")
	}

	res, err := f.Predict(horizon)
	if err != nil {
		return err
	}
	logger.Debug("predicted", "method", f.Method().Name, "horizon", horizon)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
	case "table":
		return printResults(cmd.OutOrStdout(), "Forecast", res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
