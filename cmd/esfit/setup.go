package main

import (
	"fmt"

	"github.com/aouyang1/go-expsmooth/internal/config"
	"github.com/aouyang1/go-expsmooth/internal/logging"
	"github.com/aouyang1/go-expsmooth/timeseries"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps configuration keys to the command line flags that override them
var flagKeys = map[string]string{
	"logging.level":             "log-level",
	"logging.format":            "log-format",
	"input.has_header":          "header",
	"input.delimiter":           "delimiter",
	"input.t_column":            "t-column",
	"input.x_column":            "x-column",
	"input.spacing":             "spacing",
	"input.start":               "start",
	"smoothing.method":          "method",
	"smoothing.alpha":           "alpha",
	"smoothing.beta":            "beta",
	"smoothing.damping":         "damping",
	"smoothing.horizon":         "horizon",
	"smoothing.residual_zscore": "zscore",
	"outliers.enabled":          "outliers",
	"outliers.num_passes":       "outlier-passes",
}

func addInputFlags(flags *pflag.FlagSet) {
	flags.Bool("header", false, "skip the first row of the csv input")
	flags.String("delimiter", ",", "csv field delimiter")
	flags.Int("t-column", -1, "column holding the time coordinate, negative when there is none")
	flags.Int("x-column", 0, "column holding the observed value")
	flags.Float64("spacing", timeseries.DefaultSpacing, "spacing between observations")
	flags.Float64("start", 0, "time coordinate of the first value when there is no time column")
}

func addSmoothingFlags(flags *pflag.FlagSet) {
	flags.StringP("method", "m", "", "smoothing method, see the methods command")
	flags.Float64("alpha", 0, "level smoothing parameter")
	flags.Float64("beta", 0, "trend smoothing parameter")
	flags.Float64("damping", 0, "trend damping parameter")
	flags.Int("horizon", 0, "number of steps to forecast")
	flags.Float64("zscore", 0, "width of the prediction bands in residual standard deviations")
}

// setup loads the configuration with the flags of cmd taking precedence and builds the logger
func setup(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath, func(v *viper.Viper) error {
		for key, name := range flagKeys {
			flag := cmd.Flags().Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger.With("command", cmd.Name()), nil
}

func loadSeries(cmd *cobra.Command, flagName string, cfg *config.Config) (*timeseries.Series, error) {
	path, err := cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("--%s is required", flagName)
	}
	return timeseries.LoadCSV(path, cfg.Input.CSVOptions())
}
