package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptiveStats(t *testing.T) {
	testData := map[string]struct {
		x        []float64
		min      float64
		max      float64
		mean     float64
		variance float64
		stddev   float64
		median   float64
	}{
		"population": {
			x:        []float64{2, 4, 4, 4, 5, 5, 7, 9},
			min:      2,
			max:      9,
			mean:     5,
			variance: 4,
			stddev:   2,
			median:   4.5,
		},
		"all negative": {
			x:        []float64{-3, -1, -2},
			min:      -3,
			max:      -1,
			mean:     -2,
			variance: 2.0 / 3.0,
			stddev:   0.816496580927726,
			median:   -2,
		},
		"single": {
			x:      []float64{5},
			min:    5,
			max:    5,
			mean:   5,
			median: 5,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := FromValues(1, 0, td.x)
			require.Nil(t, err)

			minVal, err := s.Min()
			require.Nil(t, err)
			assert.Equal(t, td.min, minVal)

			maxVal, err := s.Max()
			require.Nil(t, err)
			assert.Equal(t, td.max, maxVal)

			mean, err := s.Mean()
			require.Nil(t, err)
			assert.InDelta(t, td.mean, mean, 1e-12)

			variance, err := s.Variance()
			require.Nil(t, err)
			assert.InDelta(t, td.variance, variance, 1e-12)

			stddev, err := s.StdDev()
			require.Nil(t, err)
			assert.InDelta(t, td.stddev, stddev, 1e-12)

			median, err := s.Median()
			require.Nil(t, err)
			assert.InDelta(t, td.median, median, 1e-12)
		})
	}
}

func TestStatsEmptySeries(t *testing.T) {
	s, err := New(1)
	require.Nil(t, err)

	statFns := map[string]func() (float64, error){
		"min":      s.Min,
		"max":      s.Max,
		"mean":     s.Mean,
		"variance": s.Variance,
		"stddev":   s.StdDev,
		"median":   s.Median,
		"span":     s.Span,
	}
	for name, fn := range statFns {
		t.Run(name, func(t *testing.T) {
			_, err := fn()
			assert.ErrorIs(t, err, ErrEmptySeries)
		})
	}
}

func TestMedianDoesNotReorder(t *testing.T) {
	s, err := FromValues(1, 0, []float64{5, 1, 3})
	require.Nil(t, err)

	median, err := s.Median()
	require.Nil(t, err)
	assert.Equal(t, 3.0, median)
	assert.Equal(t, []float64{5, 1, 3}, s.Values())
}

func TestSpan(t *testing.T) {
	s, err := FromValues(0.5, 1996, []float64{1, 2, 3, 4, 5})
	require.Nil(t, err)

	span, err := s.Span()
	require.Nil(t, err)
	assert.Equal(t, 2.0, span)
}
