package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "esfit",
		Short:        "Fit exponential smoothing models to evenly spaced series",
		SilenceUsage: true,
	}

	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.StringP("config", "c", "", "path to the configuration file to use")
	persistentFlags.String("log-level", "", "log level (debug, info, warn, error)")
	persistentFlags.String("log-format", "", "log format (json or console)")

	rootCmd.AddCommand(
		newFitCmd(),
		newPredictCmd(),
		newEvaluateCmd(),
		newDescribeCmd(),
		newMethodsCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
