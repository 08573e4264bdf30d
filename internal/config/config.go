package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/aouyang1/go-expsmooth"
	"github.com/aouyang1/go-expsmooth/forecast"
	"github.com/aouyang1/go-expsmooth/timeseries"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete esfit configuration
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Input     InputConfig     `mapstructure:"input"`
	Smoothing SmoothingConfig `mapstructure:"smoothing"`
	Outliers  OutlierConfig   `mapstructure:"outliers"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or console
	OutputPath string `mapstructure:"output_path"`
}

// InputConfig describes the layout of the csv files read by esfit
type InputConfig struct {
	HasHeader bool    `mapstructure:"has_header"`
	Delimiter string  `mapstructure:"delimiter"`
	TColumn   int     `mapstructure:"t_column"` // negative when the file only holds values
	XColumn   int     `mapstructure:"x_column"`
	Spacing   float64 `mapstructure:"spacing"`
	Start     float64 `mapstructure:"start"`
}

type SmoothingConfig struct {
	Method         string  `mapstructure:"method"`
	Alpha          float64 `mapstructure:"alpha"`
	Beta           float64 `mapstructure:"beta"`
	Damping        float64 `mapstructure:"damping"`
	Horizon        int     `mapstructure:"horizon"`
	ResidualZscore float64 `mapstructure:"residual_zscore"`
}

type OutlierConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	NumPasses       int     `mapstructure:"num_passes"`
	LowerPercentile float64 `mapstructure:"lower_percentile"`
	UpperPercentile float64 `mapstructure:"upper_percentile"`
	TukeyFactor     float64 `mapstructure:"tukey_factor"`
}

// DefaultConfig returns the configuration used when no file or environment overrides are given
func DefaultConfig() *Config {
	smoothing := forecast.NewDefaultOptions()
	outliers := expsmooth.NewOutlierOptions()
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
		Input: InputConfig{
			Delimiter: ",",
			TColumn:   -1,
			XColumn:   0,
			Spacing:   timeseries.DefaultSpacing,
		},
		Smoothing: SmoothingConfig{
			Method:         forecast.HoltLinearTrend.Name,
			Alpha:          smoothing.Alpha,
			Beta:           smoothing.Beta,
			Damping:        smoothing.Damping,
			Horizon:        smoothing.Horizon,
			ResidualZscore: expsmooth.NewDefaultOptions().ResidualZscore,
		},
		Outliers: OutlierConfig{
			Enabled:         false,
			NumPasses:       outliers.NumPasses,
			LowerPercentile: outliers.LowerPercentile,
			UpperPercentile: outliers.UpperPercentile,
			TukeyFactor:     outliers.TukeyFactor,
		},
	}
}

// Validate validates the complete configuration
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("input config: %w", err)
	}
	if err := c.Smoothing.Validate(); err != nil {
		return fmt.Errorf("smoothing config: %w", err)
	}
	if err := c.Outliers.Validate(); err != nil {
		return fmt.Errorf("outliers config: %w", err)
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("format %q must be json or console, %w", c.Format, ErrInvalidConfig)
	}
	return nil
}

func (c *InputConfig) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter %q must be a single character, %w", c.Delimiter, ErrInvalidConfig)
	}
	if c.XColumn < 0 {
		return fmt.Errorf("x_column %d is negative, %w", c.XColumn, ErrInvalidConfig)
	}
	if c.TColumn == c.XColumn {
		return fmt.Errorf("t_column and x_column are both %d, %w", c.XColumn, ErrInvalidConfig)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("spacing %g is negative, %w", c.Spacing, ErrInvalidConfig)
	}
	return nil
}

func (c *SmoothingConfig) Validate() error {
	m, err := forecast.Lookup(c.Method)
	if err != nil {
		return err
	}
	return c.ForecastOptions().Validate(m)
}

func (c *OutlierConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.NumPasses < 0 {
		return fmt.Errorf("num_passes %d is negative, %w", c.NumPasses, ErrInvalidConfig)
	}
	if c.LowerPercentile > c.UpperPercentile {
		return fmt.Errorf("lower_percentile %g above upper_percentile %g, %w",
			c.LowerPercentile, c.UpperPercentile, ErrInvalidConfig)
	}
	return nil
}

// CSVOptions converts the input configuration to csv reader options
func (c *InputConfig) CSVOptions() *timeseries.CSVOptions {
	delim, _ := utf8.DecodeRuneInString(c.Delimiter)
	return &timeseries.CSVOptions{
		HasHeader: c.HasHeader,
		Delimiter: delim,
		TColumn:   c.TColumn,
		XColumn:   c.XColumn,
		Spacing:   c.Spacing,
		Start:     c.Start,
	}
}

func (c *SmoothingConfig) ForecastOptions() *forecast.Options {
	return &forecast.Options{
		Alpha:   c.Alpha,
		Beta:    c.Beta,
		Damping: c.Damping,
		Horizon: c.Horizon,
	}
}

// ForecasterOptions builds the options of a Forecaster from the smoothing and outlier configuration
func (c *Config) ForecasterOptions() *expsmooth.Options {
	opt := &expsmooth.Options{
		Method:           c.Smoothing.Method,
		SmoothingOptions: c.Smoothing.ForecastOptions(),
		ResidualZscore:   c.Smoothing.ResidualZscore,
	}
	if c.Outliers.Enabled {
		opt.OutlierOptions = &expsmooth.OutlierOptions{
			NumPasses:       c.Outliers.NumPasses,
			LowerPercentile: c.Outliers.LowerPercentile,
			UpperPercentile: c.Outliers.UpperPercentile,
			TukeyFactor:     c.Outliers.TukeyFactor,
		}
	}
	return opt
}
