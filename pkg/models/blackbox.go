// Package models provides ready to use Model implementations wrapping
// user-supplied system functions.
package models

import (
	"math"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
	"github.com/cpslab-asu/staliro-go/pkg/utils"
)

// BlackboxFunc is a user-defined system function. It receives the static
// parameters, a vector of time values covering the simulation interval, and
// one row of interpolated signal values per declared signal (each row
// parallel to the time vector), and returns the simulation outcome.
type BlackboxFunc func(static []float64, times []float64, signals [][]float64) (core.ModelResult, error)

// Blackbox is a general system model which makes no assumptions about the
// underlying system. Signals are sampled onto a uniform time grid before
// the user function is invoked.
type Blackbox struct {
	fn       BlackboxFunc
	stepSize float64
}

// NewBlackbox wraps a user function as a model. The step size controls the
// granularity of the signal sampling grid.
func NewBlackbox(fn BlackboxFunc, stepSize float64) (*Blackbox, error) {
	if fn == nil {
		return nil, errors.New(errors.InvalidInput, "blackbox function must not be nil")
	}
	if stepSize <= 0 {
		return nil, errors.Newf(errors.InvalidInput, "step size must be positive, got %v", stepSize)
	}

	return &Blackbox{fn: fn, stepSize: stepSize}, nil
}

func (b *Blackbox) Simulate(inputs core.ModelInputs, interval core.Interval) (core.ModelResult, error) {
	steps := int(math.Floor(interval.Length() / b.stepSize))
	times := utils.Linspace(interval.Lower(), interval.Upper(), steps)

	signalValues := make([][]float64, len(inputs.Signals))
	for i, signal := range inputs.Signals {
		signalValues[i] = signal.AtTimes(times)
	}

	return b.fn(inputs.Static, times, signalValues)
}

var _ core.Model = (*Blackbox)(nil)
