package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpslab-asu/staliro-go/pkg/core"
)

func TestEvaluationKeyIsDeterministic(t *testing.T) {
	interval := core.MustInterval(0, 10)

	a := evaluationKey("scope", core.NewSample([]float64{1, 2, 3}), interval)
	b := evaluationKey("scope", core.NewSample([]float64{1, 2, 3}), interval)
	c := evaluationKey("scope", core.NewSample([]float64{1, 2, 4}), interval)
	d := evaluationKey("scope", core.NewSample([]float64{1, 2, 3}), core.MustInterval(0, 5))
	e := evaluationKey("other", core.NewSample([]float64{1, 2, 3}), interval)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.NotEqual(t, a, e, "the configuration scope must separate keys")
}

func TestCostEncoding(t *testing.T) {
	for _, cost := range []float64{0, -1.5, 3.25e10} {
		decoded, err := decodeCost(encodeCost(cost))
		require.NoError(t, err)
		assert.Equal(t, cost, decoded)
	}

	_, err := decodeCost([]byte{1, 2, 3})
	assert.Error(t, err)
}
