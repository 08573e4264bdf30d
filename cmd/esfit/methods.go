package main

import (
	"fmt"

	"github.com/aouyang1/go-expsmooth/forecast"
	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the registered smoothing methods",
		Args:  cobra.NoArgs,
		RunE:  RunMethodsCmdF,
	}
}

func RunMethodsCmdF(cmd *cobra.Command, args []string) error {
	for _, m := range forecast.Methods() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), m.String()); err != nil {
			return err
		}
	}
	return nil
}
