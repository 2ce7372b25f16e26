package core

// Signal is a time-varying input to a system.
//
// Signals are constructed from a small number of optimizer-controlled
// control points by a SignalFactory, and live for the evaluation of a
// single sample.
type Signal interface {
	// At returns the value of the signal at the specified time.
	At(time float64) float64

	// AtTimes returns the value of the signal at each specified time.
	AtTimes(times []float64) []float64
}

// SignalFactory constructs a Signal from ordered control-point times and the
// signal values at those times. The number of times and values is equal.
type SignalFactory func(times []float64, values []float64) (Signal, error)

// SampleTimes evaluates a signal pointwise over a set of times.
// Implementations can embed nothing and delegate AtTimes to this helper.
func SampleTimes(s Signal, times []float64) []float64 {
	values := make([]float64, len(times))
	for i, t := range times {
		values[i] = s.At(t)
	}

	return values
}
