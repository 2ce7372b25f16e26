// Package signals provides ready to use signal interpolation strategies and
// combinators for composing them.
//
// A signal is a continuous, time-varying input to a system constructed from
// a set of control points generated by the optimizer. Each factory in this
// package satisfies the core.SignalFactory contract; combinators accept a
// factory and return a modified one.
package signals

import (
	"sort"

	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// validateControlPoints checks the invariants shared by the interpolating
// factories: matching lengths, a minimum count, and strictly increasing
// times.
func validateControlPoints(times, values []float64, minimum int) error {
	if len(times) != len(values) {
		return errors.Newf(errors.InvalidInput,
			"signal requires as many times as values, got %d times and %d values",
			len(times), len(values))
	}

	if len(times) < minimum {
		return errors.Newf(errors.InvalidInput,
			"signal requires at least %d control points, got %d", minimum, len(times))
	}

	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return errors.New(errors.InvalidInput, "signal control point times must be strictly increasing")
		}
	}

	return nil
}

// segment returns the index i of the control-point interval
// [times[i], times[i+1]] containing t, clamped to the edge intervals so
// that evaluation outside the declared times extrapolates with the edge
// behavior.
func segment(times []float64, t float64) int {
	i := sort.SearchFloat64s(times, t) - 1
	if i < 0 {
		return 0
	}
	if i > len(times)-2 {
		return len(times) - 2
	}
	return i
}
