package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/signals"
)

func TestNewODERejectsBadConfig(t *testing.T) {
	fn := func(t float64, state, signalValues []float64) []float64 { return state }

	_, err := NewODE(nil, 0.1)
	assert.Error(t, err)

	_, err = NewODE(fn, 0)
	assert.Error(t, err)
}

func TestODEExponentialDecay(t *testing.T) {
	// dx/dt = -x with x(0) = 1 has the closed form x(t) = exp(-t).
	decay := func(t float64, state, signalValues []float64) []float64 {
		return []float64{-state[0]}
	}

	model, err := NewODE(decay, 0.01)
	require.NoError(t, err)

	inputs := core.ModelInputs{Static: []float64{1}}
	result, err := model.Simulate(inputs, core.MustInterval(0, 2))
	require.NoError(t, err)

	trace := result.Trace()
	require.Greater(t, trace.Len(), 1)

	assert.Equal(t, 0.0, trace.TimeAt(0))
	assert.Equal(t, 1.0, trace.StateAt(0)[0])

	last := trace.Len() - 1
	assert.InDelta(t, 2.0, trace.TimeAt(last), 1e-9)
	assert.InDelta(t, math.Exp(-2), trace.StateAt(last)[0], 1e-6)
}

func TestODEConsumesSignals(t *testing.T) {
	// dx/dt = u(t) with a constant input integrates to a line.
	driven := func(t float64, state, signalValues []float64) []float64 {
		return []float64{signalValues[0]}
	}

	model, err := NewODE(driven, 0.1)
	require.NoError(t, err)

	signal, err := signals.PiecewiseConstant([]float64{0}, []float64{3})
	require.NoError(t, err)

	inputs := core.ModelInputs{Static: []float64{0}, Signals: []core.Signal{signal}}
	result, err := model.Simulate(inputs, core.MustInterval(0, 1))
	require.NoError(t, err)

	trace := result.Trace()
	last := trace.Len() - 1
	assert.InDelta(t, 3.0, trace.StateAt(last)[0], 1e-9)
}

func TestODEPartialFinalStep(t *testing.T) {
	fn := func(t float64, state, signalValues []float64) []float64 {
		return []float64{1}
	}

	model, err := NewODE(fn, 0.3)
	require.NoError(t, err)

	result, err := model.Simulate(core.ModelInputs{Static: []float64{0}}, core.MustInterval(0, 1))
	require.NoError(t, err)

	trace := result.Trace()
	last := trace.Len() - 1
	assert.InDelta(t, 1.0, trace.TimeAt(last), 1e-12)
	assert.InDelta(t, 1.0, trace.StateAt(last)[0], 1e-12)
}
