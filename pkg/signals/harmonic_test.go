package signals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarmonic(t *testing.T) {
	// bias 2, single component: 3*cos(0.5*t - pi)
	signal, err := Harmonic(nil, []float64{2, 3, 0.5, math.Pi})
	require.NoError(t, err)

	for _, time := range []float64{0, 1, 2.5, 10} {
		want := 2 + 3*math.Cos(0.5*time-math.Pi)
		assert.InDelta(t, want, signal.At(time), 1e-12)
	}
}

func TestHarmonicMultipleComponents(t *testing.T) {
	signal, err := Harmonic(nil, []float64{1, 2, 1, 0, 0.5, 3, math.Pi / 2})
	require.NoError(t, err)

	want := 1 + 2*math.Cos(1.5) + 0.5*math.Cos(3*1.5-math.Pi/2)
	assert.InDelta(t, want, signal.At(1.5), 1e-12)
}

func TestHarmonicBiasOnly(t *testing.T) {
	signal, err := Harmonic(nil, []float64{4})
	require.NoError(t, err)

	assert.Equal(t, 4.0, signal.At(0))
	assert.Equal(t, 4.0, signal.At(17))
}

func TestHarmonicRejectsPartialComponents(t *testing.T) {
	for _, values := range [][]float64{{}, {1, 2}, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := Harmonic(nil, values)
		assert.Error(t, err, "values %v", values)
	}
}
