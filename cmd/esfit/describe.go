package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print summary statistics of a csv series",
		Args:  cobra.NoArgs,
		RunE:  RunDescribeCmdF,
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "path to the csv series")
	flags.Bool("table", false, "also print every observation")
	addInputFlags(flags)

	return cmd
}

func RunDescribeCmdF(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	ts, err := loadSeries(cmd, "input", cfg)
	if err != nil {
		return err
	}

	stats := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"min", ts.Min},
		{"max", ts.Max},
		{"mean", ts.Mean},
		{"median", ts.Median},
		{"variance", ts.Variance},
		{"stddev", ts.StdDev},
		{"span", ts.Span},
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
	if _, err := fmt.Fprintf(w, "observations\t%d\n", ts.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "spacing\t%g\n", ts.Spacing()); err != nil {
		return err
	}
	for _, s := range stats {
		v, err := s.fn()
		if err != nil {
			logger.Error("unable to describe series", "stat", s.name, "error", err)
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%.3f\n", s.name, v); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showTable, _ := cmd.Flags().GetBool("table"); showTable {
		return ts.TablePrint(out)
	}
	return nil
}
