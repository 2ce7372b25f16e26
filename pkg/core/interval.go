package core

import (
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// Interval represents a closed range of values [lower, upper].
//
// Intervals are validated at construction and immutable afterwards.
// Zero-length and inverted intervals are rejected.
type Interval struct {
	lower float64
	upper float64
}

// NewInterval creates a validated interval from its bounds.
func NewInterval(lower, upper float64) (Interval, error) {
	if upper == lower {
		return Interval{}, errors.New(errors.InvalidInterval, "interval cannot have zero length")
	}
	if upper < lower {
		return Interval{}, errors.Newf(errors.InvalidInterval,
			"interval upper bound %v must be greater than lower bound %v", upper, lower)
	}

	return Interval{lower: lower, upper: upper}, nil
}

// MustInterval creates an interval and panics if the bounds are invalid.
// Intended for statically known bounds in tests and examples.
func MustInterval(lower, upper float64) Interval {
	interval, err := NewInterval(lower, upper)
	if err != nil {
		panic(err)
	}
	return interval
}

// Lower returns the lower bound of the interval.
func (i Interval) Lower() float64 {
	return i.lower
}

// Upper returns the upper bound of the interval.
func (i Interval) Upper() float64 {
	return i.upper
}

// Length returns the distance between the bounds.
func (i Interval) Length() float64 {
	return i.upper - i.lower
}

// AsTuple returns the bounds as an ordered pair.
func (i Interval) AsTuple() (float64, float64) {
	return i.lower, i.upper
}
