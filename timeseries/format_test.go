package timeseries

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	s, err := FromValues(1, 0, []float64{1, 2.5})
	require.Nil(t, err)
	assert.Equal(t, "0 : 1\n1 : 2.5\n", s.String())
}

func TestTablePrint(t *testing.T) {
	s, err := FromValues(1, 0, []float64{1, 2.5})
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, s.TablePrint(&buf))

	expected := " Index T     X\n" +
		"     0 0 1.000\n" +
		"     1 1 2.500\n"
	assert.Equal(t, expected, buf.String())
}
