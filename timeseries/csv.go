package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrMissingColumn = errors.New("row is missing a configured column")

// CSVOptions describes how observations are laid out in a delimited file
type CSVOptions struct {
	HasHeader bool // skip the first row
	Delimiter rune
	TColumn   int // column of the time coordinate, negative when the file only holds values
	XColumn   int // column of the observed value

	// Spacing between observations. With a time column a zero spacing is inferred from the
	// first two rows.
	Spacing float64
	Start   float64 // time coordinate of the first value when there is no time column
}

// DefaultCSVOptions reads a single headerless column of values at unit spacing from t=0
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
		TColumn:   -1,
		XColumn:   0,
		Spacing:   DefaultSpacing,
	}
}

// LoadCSV reads a series from the file at path
func LoadCSV(path string, opt *CSVOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadCSV(f, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s, %w", path, err)
	}
	return s, nil
}

// ReadCSV reads a series from delimited rows
func ReadCSV(r io.Reader, opt *CSVOptions) (*Series, error) {
	if opt == nil {
		opt = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opt.Delimiter != 0 {
		reader.Comma = opt.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if opt.HasHeader && len(records) > 0 {
		records = records[1:]
	}

	var t, x []float64
	for i, rec := range records {
		val, err := parseColumn(rec, opt.XColumn)
		if err != nil {
			return nil, fmt.Errorf("value on row %d, %w", i, err)
		}
		x = append(x, val)

		if opt.TColumn < 0 {
			continue
		}
		tVal, err := parseColumn(rec, opt.TColumn)
		if err != nil {
			return nil, fmt.Errorf("time on row %d, %w", i, err)
		}
		t = append(t, tVal)
	}

	if opt.TColumn < 0 {
		return FromValues(opt.Spacing, opt.Start, x)
	}

	spacing := opt.Spacing
	if spacing == 0 && len(t) > 1 {
		spacing = t[1] - t[0]
	}
	if spacing == 0 {
		spacing = DefaultSpacing
	}
	points := make([]DataPoint, len(x))
	for i := range x {
		points[i] = DataPoint{T: t[i], X: x[i]}
	}
	return FromPoints(spacing, points)
}

func parseColumn(rec []string, col int) (float64, error) {
	if col < 0 || col >= len(rec) {
		return 0, fmt.Errorf("column %d with %d fields, %w", col, len(rec), ErrMissingColumn)
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
}
