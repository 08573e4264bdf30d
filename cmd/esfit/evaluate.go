package main

import (
	"fmt"

	"github.com/aouyang1/go-expsmooth/evaluate"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a model series against observations",
		Args:  cobra.NoArgs,
		RunE:  RunEvaluateCmdF,
	}

	flags := cmd.Flags()
	flags.String("observed", "", "path to the csv of observations")
	flags.String("model", "", "path to the csv of model values aligned with the observations")
	addInputFlags(flags)

	return cmd
}

func RunEvaluateCmdF(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	observed, err := loadSeries(cmd, "observed", cfg)
	if err != nil {
		return err
	}
	model, err := loadSeries(cmd, "model", cfg)
	if err != nil {
		return err
	}
	if observed.Len() != model.Len() {
		return fmt.Errorf("expected %d, but got %d, %w", observed.Len(), model.Len(), evaluate.ErrLengthMismatch)
	}

	scores, err := evaluate.NewScores(model.Values(), observed.Values())
	if err != nil {
		return err
	}
	logger.Debug("scored", "observations", observed.Len())
	return json.NewEncoder(cmd.OutOrStdout()).Encode(scores)
}
