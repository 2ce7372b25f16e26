package signals

import (
	"math"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

type harmonicComponent struct {
	amplitude float64
	frequency float64
	phase     float64
}

func (c harmonicComponent) at(t float64) float64 {
	return c.amplitude * math.Cos(c.frequency*t-c.phase)
}

type harmonicSignal struct {
	bias       float64
	components []harmonicComponent
}

// Harmonic creates a signal that is the sum of sinusoidal components.
//
// The first control point is the bias term; the remaining control points
// must come in groups of three giving the amplitude, frequency, and phase
// of each component. The control-point times are ignored.
func Harmonic(_, values []float64) (core.Signal, error) {
	if len(values) < 1 || len(values[1:])%3 != 0 {
		return nil, errors.New(errors.InvalidInput,
			"harmonic signal requires a bias followed by amplitude, frequency, phase triples")
	}

	components := make([]harmonicComponent, 0, len(values[1:])/3)
	for i := 1; i < len(values); i += 3 {
		components = append(components, harmonicComponent{
			amplitude: values[i],
			frequency: values[i+1],
			phase:     values[i+2],
		})
	}

	return &harmonicSignal{bias: values[0], components: components}, nil
}

func (s *harmonicSignal) At(t float64) float64 {
	value := s.bias
	for _, component := range s.components {
		value += component.at(t)
	}

	return value
}

func (s *harmonicSignal) AtTimes(times []float64) []float64 {
	return core.SampleTimes(s, times)
}
