package timeseries

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// String renders one "t : x" line per observation
func (s *Series) String() string {
	var sb strings.Builder
	for _, p := range s.points {
		fmt.Fprintf(&sb, "%g : %g\n", p.T, p.X)
	}
	return sb.String()
}

// TablePrint writes the series as a right aligned table of index, time and value
func (s *Series) TablePrint(w io.Writer) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "Index\tT\tX\t\n"); err != nil {
		return err
	}
	for i, p := range s.points {
		if _, err := fmt.Fprintf(tbl, "%d\t%g\t%.3f\t\n", i, p.T, p.X); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
