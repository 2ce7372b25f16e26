package models

import (
	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// ODEFunc is a user-defined vector field. Given a time, the current state,
// and the value of each declared signal at that time, it returns the state
// derivative.
type ODEFunc func(t float64, state []float64, signalValues []float64) []float64

// ODE models a system governed by an ordinary differential equation. The
// sample's static parameters are the initial conditions; the trajectory is
// produced by fixed-step fourth-order Runge-Kutta integration over the
// simulation interval.
type ODE struct {
	fn       ODEFunc
	stepSize float64
}

// NewODE wraps a vector field as a model integrated with the given step.
func NewODE(fn ODEFunc, stepSize float64) (*ODE, error) {
	if fn == nil {
		return nil, errors.New(errors.InvalidInput, "ode function must not be nil")
	}
	if stepSize <= 0 {
		return nil, errors.Newf(errors.InvalidInput, "step size must be positive, got %v", stepSize)
	}

	return &ODE{fn: fn, stepSize: stepSize}, nil
}

func (o *ODE) Simulate(inputs core.ModelInputs, interval core.Interval) (core.ModelResult, error) {
	sampleSignals := func(t float64) []float64 {
		values := make([]float64, len(inputs.Signals))
		for i, signal := range inputs.Signals {
			values[i] = signal.At(t)
		}
		return values
	}

	state := make([]float64, len(inputs.Static))
	copy(state, inputs.Static)

	t := interval.Lower()
	times := []float64{t}
	states := [][]float64{append([]float64(nil), state...)}

	for t < interval.Upper() {
		step := o.stepSize
		if t+step > interval.Upper() {
			step = interval.Upper() - t
		}

		state = rk4Step(o.fn, t, state, step, sampleSignals)
		t += step

		times = append(times, t)
		states = append(states, append([]float64(nil), state...))
	}

	trace, err := core.NewTrace(times, states)
	if err != nil {
		return core.ModelResult{}, err
	}

	return core.NewModelResult(trace, nil), nil
}

func rk4Step(fn ODEFunc, t float64, state []float64, h float64, signals func(float64) []float64) []float64 {
	k1 := fn(t, state, signals(t))
	k2 := fn(t+h/2, axpy(state, k1, h/2), signals(t+h/2))
	k3 := fn(t+h/2, axpy(state, k2, h/2), signals(t+h/2))
	k4 := fn(t+h, axpy(state, k3, h), signals(t+h))

	next := make([]float64, len(state))
	for i := range next {
		next[i] = state[i] + h/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}

	return next
}

// axpy returns state + scale*delta without mutating either input.
func axpy(state, delta []float64, scale float64) []float64 {
	result := make([]float64, len(state))
	for i := range result {
		result[i] = state[i] + scale*delta[i]
	}

	return result
}

var _ core.Model = (*ODE)(nil)
