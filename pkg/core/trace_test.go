package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

func TestNewTraceLengthMismatch(t *testing.T) {
	_, err := NewTrace([]float64{0, 1}, [][]float64{{1}})
	require.Error(t, err)
	assert.Equal(t, errors.InvalidInput, errors.Code(err))
}

func TestTraceIsImmutable(t *testing.T) {
	times := []float64{0, 1}
	states := [][]float64{{1, 2}, {3, 4}}

	trace, err := NewTrace(times, states)
	require.NoError(t, err)

	times[0] = 99
	states[0][0] = 99

	assert.Equal(t, 0.0, trace.TimeAt(0))
	assert.Equal(t, 1.0, trace.StateAt(0)[0])
}

func TestTraceEqual(t *testing.T) {
	a, err := NewTrace([]float64{0, 1}, [][]float64{{1}, {2}})
	require.NoError(t, err)
	b, err := NewTrace([]float64{0, 1}, [][]float64{{1}, {2}})
	require.NoError(t, err)
	c, err := NewTrace([]float64{0, 1}, [][]float64{{1}, {3}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestModelResultFailure(t *testing.T) {
	failure := NewFailure("diagnostics")
	assert.True(t, failure.IsFailure())
	assert.Equal(t, "diagnostics", failure.Extra())

	trace, err := NewTrace([]float64{0}, [][]float64{{1}})
	require.NoError(t, err)

	success := NewModelResult(trace, nil)
	assert.False(t, success.IsFailure())
	assert.True(t, success.Trace().Equal(trace))
}
