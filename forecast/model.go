package forecast

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-expsmooth/forecast/util"
)

// TablePrint writes the method, parameters and final smoothing state
func (s *State) TablePrint(w io.Writer, prefix, indent string, indentGrowth int) error {
	if s == nil {
		return ErrUninitialized
	}
	if _, err := fmt.Fprintf(w, "%s%sSmoothing:\n", prefix, util.IndentExpand(indent, indentGrowth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sMethod: %s\n", prefix, util.IndentExpand(indent, indentGrowth+1), s.Method); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sObservations: %d, Last T: %g, Spacing: %g\n",
		prefix, util.IndentExpand(indent, indentGrowth+1),
		s.Observations, s.LastT, s.Spacing); err != nil {
		return err
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sParameter\tValue\t\n", prefix, util.IndentExpand(indent, indentGrowth+1)); err != nil {
		return err
	}
	rows := []struct {
		name  string
		value float64
		used  bool
	}{
		{"alpha", s.Alpha, true},
		{"beta", s.Beta, s.Method.HasTrend()},
		{"damping", s.Damping, s.Method.Damped},
		{"level", s.Level, true},
		{"trend", s.Trend, s.Method.HasTrend()},
	}
	for _, row := range rows {
		val := fmt.Sprintf("%.3f", row.value)
		if !row.used {
			val = "..."
		}
		if _, err := fmt.Fprintf(tbl, "%s%s%s\t%s\t\n",
			prefix, util.IndentExpand(indent, indentGrowth+1),
			row.name, val); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
