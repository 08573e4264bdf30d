package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	testData := map[string]struct {
		input    string
		opt      *CSVOptions
		expected []DataPoint
		spacing  float64
		err      error
	}{
		"default single column": {
			input:    "1\n2.5\n4\n",
			expected: []DataPoint{{T: 0, X: 1}, {T: 1, X: 2.5}, {T: 2, X: 4}},
			spacing:  1,
		},
		"header with time column": {
			input: "year,sales\n1996,446.7\n1997,454.5\n1998,455.7\n",
			opt: &CSVOptions{
				HasHeader: true,
				Delimiter: ',',
				TColumn:   0,
				XColumn:   1,
			},
			expected: []DataPoint{{T: 1996, X: 446.7}, {T: 1997, X: 454.5}, {T: 1998, X: 455.7}},
			spacing:  1,
		},
		"semicolon with start and spacing": {
			input: "a;3\nb;4\n",
			opt: &CSVOptions{
				Delimiter: ';',
				TColumn:   -1,
				XColumn:   1,
				Spacing:   0.5,
				Start:     10,
			},
			expected: []DataPoint{{T: 10, X: 3}, {T: 10.5, X: 4}},
			spacing:  0.5,
		},
		"irregular time column": {
			input: "0,1\n1,2\n3,3\n",
			opt:   &CSVOptions{Delimiter: ',', TColumn: 0, XColumn: 1},
			err:   ErrIrregularSpacing,
		},
		"missing column": {
			input: "1\n2\n",
			opt:   &CSVOptions{Delimiter: ',', TColumn: -1, XColumn: 1, Spacing: 1},
			err:   ErrMissingColumn,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := ReadCSV(strings.NewReader(td.input), td.opt)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.spacing, s.Spacing())
			assert.Equal(t, td.expected, s.Points())
		})
	}
}

func TestReadCSVNotANumber(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1\nabc\n"), nil)
	assert.NotNil(t, err)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	require.Nil(t, os.WriteFile(path, []byte("10\n15\n"), 0o644))

	s, err := LoadCSV(path, nil)
	require.Nil(t, err)
	assert.Equal(t, []float64{10, 15}, s.Values())

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.NotNil(t, err)
}
