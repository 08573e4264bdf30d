package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubSeriesSizeAndValues(t *testing.T) {
	x := []float64{446.7, 454.5, 455.7, 423.6, 456.3, 440.6}
	s, err := FromValues(1, 1996, x)
	require.Nil(t, err)

	for i := 0; i < len(x); i++ {
		for j := i; j < len(x); j++ {
			sub, err := s.SubSeries(i, j)
			require.Nil(t, err)
			assert.Equal(t, j-i+1, sub.Len())
			assert.Equal(t, x[i:j+1], sub.Values())
			assert.Equal(t, s.Spacing(), sub.Spacing())

			first, err := sub.First()
			require.Nil(t, err)
			assert.Equal(t, 1996.0+float64(i), first.T)
		}
	}
}

func TestSubSeriesInvalidRange(t *testing.T) {
	empty, err := New(1)
	require.Nil(t, err)
	s, err := FromValues(1, 0, []float64{1, 2, 3})
	require.Nil(t, err)

	testData := map[string]struct {
		s    *Series
		from int
		to   int
		err  error
	}{
		"empty":         {s: empty, from: 0, to: 0, err: ErrEmptySeries},
		"negative from": {s: s, from: -1, to: 1, err: ErrOutOfRange},
		"to past end":   {s: s, from: 0, to: 3, err: ErrOutOfRange},
		"reversed":      {s: s, from: 2, to: 1, err: ErrOutOfRange},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := td.s.SubSeries(td.from, td.to)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestSubSeriesIsIndependent(t *testing.T) {
	s, err := FromValues(1, 0, []float64{1, 2, 3})
	require.Nil(t, err)
	s.Freeze()

	sub, err := s.SubSeries(0, 1)
	require.Nil(t, err)
	assert.False(t, sub.Frozen())
	require.Nil(t, sub.SetX(0, 100))
	require.Nil(t, sub.Append(200))

	assert.Equal(t, []float64{1, 2, 3}, s.Values())
	assert.Equal(t, []float64{100, 2, 200}, sub.Values())
}

func TestSubSeriesT(t *testing.T) {
	s, err := FromValues(1, 1996, []float64{446.7, 454.5, 455.7, 423.6, 456.3})
	require.Nil(t, err)

	testData := map[string]struct {
		from     float64
		to       float64
		expected []DataPoint
		err      error
	}{
		"selects on true time coordinates": {
			from: 1997,
			to:   1999,
			expected: []DataPoint{
				{T: 1997, X: 454.5},
				{T: 1998, X: 455.7},
				{T: 1999, X: 423.6},
			},
		},
		"bounds between steps": {
			from: 1996.5,
			to:   1998.5,
			expected: []DataPoint{
				{T: 1997, X: 454.5},
				{T: 1998, X: 455.7},
			},
		},
		"range covering whole series": {
			from: 0,
			to:   3000,
			expected: []DataPoint{
				{T: 1996, X: 446.7},
				{T: 1997, X: 454.5},
				{T: 1998, X: 455.7},
				{T: 1999, X: 423.6},
				{T: 2000, X: 456.3},
			},
		},
		"synthetic zero based range selects nothing": {
			from:     0,
			to:       2,
			expected: []DataPoint{},
		},
		"reversed": {
			from: 1999,
			to:   1997,
			err:  ErrOutOfRange,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			sub, err := s.SubSeriesT(td.from, td.to)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, sub.Points())
			assert.Equal(t, s.Spacing(), sub.Spacing())
		})
	}
}

func TestDivert(t *testing.T) {
	t.Run("linear series has constant gradient", func(t *testing.T) {
		for _, spacing := range []float64{1, 0.5, 3} {
			tSeries := GenerateT(20, spacing, 0)
			s, err := GenerateLinear(tSeries, 3.5, 2.0).Series(spacing, 0)
			require.Nil(t, err)

			d, err := s.Divert()
			require.Nil(t, err)
			require.Equal(t, s.Len(), d.Len())
			assert.Equal(t, s.Times(), d.Times())
			for _, g := range d.Values() {
				assert.InDelta(t, 2.0, g, 1e-9)
			}
		}
	})

	t.Run("quadratic trend removed by second divert", func(t *testing.T) {
		tSeries := GenerateT(8, 1, 0)
		x := make([]float64, len(tSeries))
		for i, tPnt := range tSeries {
			x[i] = tPnt * tPnt
		}
		s, err := FromValues(1, 0, x)
		require.Nil(t, err)

		d1, err := s.Divert()
		require.Nil(t, err)
		assert.Equal(t, []float64{1, 3, 5, 7, 9, 11, 13, 13}, d1.Values())

		d2, err := d1.Divert()
		require.Nil(t, err)
		// last two points reflect the backward difference at the boundary
		assert.Equal(t, []float64{2, 2, 2, 2, 2, 2, 0, 0}, d2.Values())
	})

	t.Run("singleton", func(t *testing.T) {
		s, err := NewWithPoint(1, 4, 10)
		require.Nil(t, err)
		d, err := s.Divert()
		require.Nil(t, err)
		assert.Equal(t, []DataPoint{{T: 4, X: 0}}, d.Points())
	})

	t.Run("empty", func(t *testing.T) {
		s, err := New(1)
		require.Nil(t, err)
		_, err = s.Divert()
		assert.ErrorIs(t, err, ErrEmptySeries)
	})
}
