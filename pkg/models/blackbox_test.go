package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/signals"
)

func TestNewBlackboxRejectsBadConfig(t *testing.T) {
	fn := func(static, times []float64, signalValues [][]float64) (core.ModelResult, error) {
		return core.ModelResult{}, nil
	}

	_, err := NewBlackbox(nil, 0.1)
	assert.Error(t, err)

	_, err = NewBlackbox(fn, 0)
	assert.Error(t, err)

	_, err = NewBlackbox(fn, -1)
	assert.Error(t, err)
}

func TestBlackboxSamplesSignalsOntoGrid(t *testing.T) {
	var gotStatic, gotTimes []float64
	var gotSignals [][]float64

	fn := func(static, times []float64, signalValues [][]float64) (core.ModelResult, error) {
		gotStatic = static
		gotTimes = times
		gotSignals = signalValues

		states := make([][]float64, len(times))
		for i := range states {
			states[i] = []float64{signalValues[0][i]}
		}

		trace, err := core.NewTrace(times, states)
		if err != nil {
			return core.ModelResult{}, err
		}
		return core.NewModelResult(trace, nil), nil
	}

	model, err := NewBlackbox(fn, 0.25)
	require.NoError(t, err)

	signal, err := signals.PiecewiseConstant([]float64{0}, []float64{7})
	require.NoError(t, err)

	inputs := core.ModelInputs{Static: []float64{1, 2}, Signals: []core.Signal{signal}}
	result, err := model.Simulate(inputs, core.MustInterval(0, 2))
	require.NoError(t, err)
	require.False(t, result.IsFailure())

	assert.Equal(t, []float64{1, 2}, gotStatic)
	require.Len(t, gotTimes, 8)
	assert.Equal(t, 0.0, gotTimes[0])
	assert.Equal(t, 2.0, gotTimes[len(gotTimes)-1])

	require.Len(t, gotSignals, 1)
	for _, value := range gotSignals[0] {
		assert.Equal(t, 7.0, value)
	}

	assert.Equal(t, 8, result.Trace().Len())
}

func TestBlackboxPropagatesFailure(t *testing.T) {
	fn := func(static, times []float64, signalValues [][]float64) (core.ModelResult, error) {
		return core.NewFailure(nil), nil
	}

	model, err := NewBlackbox(fn, 0.5)
	require.NoError(t, err)

	result, err := model.Simulate(core.ModelInputs{}, core.MustInterval(0, 2))
	require.NoError(t, err)
	assert.True(t, result.IsFailure())
}
