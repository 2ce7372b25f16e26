package signals

import (
	"sort"

	"github.com/cpslab-asu/staliro-go/pkg/core"
)

type piecewiseLinear struct {
	times  []float64
	values []float64
}

// PiecewiseLinear creates a signal interpolated linearly between control
// points. Values between control points come from the line through the
// control point before and after the evaluation time; times outside the
// control-point span extrapolate along the nearest edge segment rather
// than erroring, so combinators can probe past the declared grid.
func PiecewiseLinear(times, values []float64) (core.Signal, error) {
	if err := validateControlPoints(times, values, 2); err != nil {
		return nil, err
	}

	return &piecewiseLinear{times: times, values: values}, nil
}

func (s *piecewiseLinear) At(t float64) float64 {
	i := segment(s.times, t)

	slope := (s.values[i+1] - s.values[i]) / (s.times[i+1] - s.times[i])

	return s.values[i] + slope*(t-s.times[i])
}

func (s *piecewiseLinear) AtTimes(times []float64) []float64 {
	return core.SampleTimes(s, times)
}

type piecewiseConstant struct {
	times  []float64
	values []float64
}

// PiecewiseConstant creates a signal that holds each control point's value
// until the next control point.
func PiecewiseConstant(times, values []float64) (core.Signal, error) {
	if err := validateControlPoints(times, values, 1); err != nil {
		return nil, err
	}

	return &piecewiseConstant{times: times, values: values}, nil
}

func (s *piecewiseConstant) At(t float64) float64 {
	// The value at a control time is that control point's value, so the
	// search uses strict inequality.
	i := sort.Search(len(s.times), func(i int) bool { return s.times[i] > t }) - 1
	if i < 0 {
		i = 0
	}

	return s.values[i]
}

func (s *piecewiseConstant) AtTimes(times []float64) []float64 {
	return core.SampleTimes(s, times)
}
