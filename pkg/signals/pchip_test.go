package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPchipInterpolatesControlPoints(t *testing.T) {
	times := []float64{0, 1, 2.5, 4}
	values := []float64{1, 3, 2, 5}

	signal, err := Pchip(times, values)
	require.NoError(t, err)

	for i, time := range times {
		assert.InDelta(t, values[i], signal.At(time), 1e-12)
	}
}

func TestPchipPreservesMonotonicity(t *testing.T) {
	// Monotone data must produce a monotone interpolant. A cubic spline
	// would overshoot near the flat section.
	times := []float64{0, 1, 2, 3, 4}
	values := []float64{0, 0.1, 0.1, 5, 10}

	signal, err := Pchip(times, values)
	require.NoError(t, err)

	previous := signal.At(0)
	for i := 1; i <= 400; i++ {
		t64 := float64(i) / 100
		current := signal.At(t64)
		assert.GreaterOrEqual(t, current+1e-12, previous)
		previous = current
	}
}

func TestPchipTwoPointsIsLinear(t *testing.T) {
	signal, err := Pchip([]float64{0, 2}, []float64{1, 5})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, signal.At(1), 1e-12)
}

func TestPchipAtTimes(t *testing.T) {
	signal, err := Pchip([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)

	sampled := signal.AtTimes([]float64{0, 1, 2})
	assert.InDeltaSlice(t, []float64{0, 1, 4}, sampled, 1e-12)
}

func TestPchipRejectsInvalidControlPoints(t *testing.T) {
	tests := []struct {
		name   string
		times  []float64
		values []float64
	}{
		{name: "too few points", times: []float64{1}, values: []float64{1}},
		{name: "length mismatch", times: []float64{0, 1}, values: []float64{1}},
		{name: "non increasing times", times: []float64{0, 0}, values: []float64{1, 2}},
		{name: "decreasing times", times: []float64{1, 0}, values: []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pchip(tt.times, tt.values)
			assert.Error(t, err)
		})
	}
}
