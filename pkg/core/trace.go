package core

import (
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// Trace is the timestamped trajectory of a system produced by simulation.
//
// Each state is the vector of system variables at the corresponding time.
// Traces are immutable once constructed.
type Trace struct {
	times  []float64
	states [][]float64
}

// NewTrace creates a trace from parallel time and state sequences.
func NewTrace(times []float64, states [][]float64) (Trace, error) {
	if len(times) != len(states) {
		return Trace{}, errors.Newf(errors.InvalidInput,
			"trace must have as many times as states, got %d times and %d states",
			len(times), len(states))
	}

	copiedTimes := make([]float64, len(times))
	copy(copiedTimes, times)

	copiedStates := make([][]float64, len(states))
	for i, state := range states {
		copiedStates[i] = make([]float64, len(state))
		copy(copiedStates[i], state)
	}

	return Trace{times: copiedTimes, states: copiedStates}, nil
}

// Len returns the number of observations in the trace.
func (t Trace) Len() int {
	return len(t.times)
}

// TimeAt returns the timestamp of observation i.
func (t Trace) TimeAt(i int) float64 {
	return t.times[i]
}

// StateAt returns the state vector of observation i.
// The returned slice must not be modified.
func (t Trace) StateAt(i int) []float64 {
	return t.states[i]
}

// Times returns a copy of the trace timestamps.
func (t Trace) Times() []float64 {
	copied := make([]float64, len(t.times))
	copy(copied, t.times)

	return copied
}

// States returns a copy of the trace states.
func (t Trace) States() [][]float64 {
	copied := make([][]float64, len(t.states))
	for i, state := range t.states {
		copied[i] = make([]float64, len(state))
		copy(copied[i], state)
	}

	return copied
}

// Equal reports whether two traces are structurally equal, comparing times
// and states element-wise.
func (t Trace) Equal(other Trace) bool {
	if len(t.times) != len(other.times) {
		return false
	}

	for i, time := range t.times {
		if time != other.times[i] {
			return false
		}

		if len(t.states[i]) != len(other.states[i]) {
			return false
		}

		for j, value := range t.states[i] {
			if value != other.states[i][j] {
				return false
			}
		}
	}

	return true
}
