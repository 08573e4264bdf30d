package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt    *Options
		method Method
		err    error
	}{
		"defaults with every method": {
			opt:    NewDefaultOptions(),
			method: MultiplicativeDampedTrend,
		},
		"boundaries": {
			opt:    &Options{Alpha: 0, Beta: 1, Damping: 1},
			method: DampedTrend,
		},
		"nil": {
			method: SimpleExponentialSmoothing,
			err:    ErrInvalidParameter,
		},
		"alpha below zero": {
			opt:    &Options{Alpha: -0.01},
			method: SimpleExponentialSmoothing,
			err:    ErrInvalidParameter,
		},
		"beta above one": {
			opt:    &Options{Alpha: 0.5, Beta: 1.01},
			method: ExponentialTrend,
			err:    ErrInvalidParameter,
		},
		"beta nan": {
			opt:    &Options{Alpha: 0.5, Beta: math.NaN()},
			method: HoltLinearTrend,
			err:    ErrInvalidParameter,
		},
		"damping above one": {
			opt:    &Options{Alpha: 0.5, Beta: 0.5, Damping: 1.2},
			method: MultiplicativeDampedTrend,
			err:    ErrInvalidParameter,
		},
		"damping nan": {
			opt:    &Options{Alpha: 0.5, Beta: 0.5, Damping: math.NaN()},
			method: DampedTrend,
			err:    ErrInvalidParameter,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.opt.Validate(td.method)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				assert.Contains(t, err.Error(), td.method.Name)
				return
			}
			assert.Nil(t, err)
		})
	}
}
