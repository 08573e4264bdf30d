package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "ESFIT"

// Load reads the configuration from the file at configPath, or from esfit.yaml in the working
// directory when configPath is empty, with ESFIT_ prefixed environment variables taking precedence.
// bind can attach command line flags to keys before the configuration is parsed.
func Load(configPath string, bind func(v *viper.Viper) error) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("esfit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if bind != nil {
		if err := bind(v); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return parseConfig(v)
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output_path", def.Logging.OutputPath)

	v.SetDefault("input.has_header", def.Input.HasHeader)
	v.SetDefault("input.delimiter", def.Input.Delimiter)
	v.SetDefault("input.t_column", def.Input.TColumn)
	v.SetDefault("input.x_column", def.Input.XColumn)
	v.SetDefault("input.spacing", def.Input.Spacing)
	v.SetDefault("input.start", def.Input.Start)

	v.SetDefault("smoothing.method", def.Smoothing.Method)
	v.SetDefault("smoothing.alpha", def.Smoothing.Alpha)
	v.SetDefault("smoothing.beta", def.Smoothing.Beta)
	v.SetDefault("smoothing.damping", def.Smoothing.Damping)
	v.SetDefault("smoothing.horizon", def.Smoothing.Horizon)
	v.SetDefault("smoothing.residual_zscore", def.Smoothing.ResidualZscore)

	v.SetDefault("outliers.enabled", def.Outliers.Enabled)
	v.SetDefault("outliers.num_passes", def.Outliers.NumPasses)
	v.SetDefault("outliers.lower_percentile", def.Outliers.LowerPercentile)
	v.SetDefault("outliers.upper_percentile", def.Outliers.UpperPercentile)
	v.SetDefault("outliers.tukey_factor", def.Outliers.TukeyFactor)
}

func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
