package signals

import (
	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/utils"
)

type delayedSignal struct {
	inner  core.Signal
	cutoff float64
}

func (s *delayedSignal) At(t float64) float64 {
	if t < s.cutoff {
		return 0.0
	}
	return s.inner.At(t)
}

func (s *delayedSignal) AtTimes(times []float64) []float64 {
	return core.SampleTimes(s, times)
}

// Delayed shifts the control points of the inner signal to start at the
// given delay and outputs zero before it.
func Delayed(inner core.SignalFactory, delay float64) core.SignalFactory {
	return func(times, values []float64) (core.Signal, error) {
		stop := times[len(times)-1]
		shifted := utils.Linspace(delay, stop, len(values))

		signal, err := inner(shifted, values)
		if err != nil {
			return nil, err
		}

		return &delayedSignal{inner: signal, cutoff: delay}, nil
	}
}

type sequencedSignal struct {
	first   core.Signal
	second  core.Signal
	tSwitch float64
}

func (s *sequencedSignal) At(t float64) float64 {
	if t < s.tSwitch {
		return s.first.At(t)
	}
	return s.second.At(t)
}

func (s *sequencedSignal) AtTimes(times []float64) []float64 {
	return core.SampleTimes(s, times)
}

// Sequenced creates a signal that switches from the first factory's signal
// to the second's at the given time. Control points are assigned to a
// factory according to which side of the switch time they fall on.
func Sequenced(first, second core.SignalFactory, tSwitch float64) core.SignalFactory {
	return func(times, values []float64) (core.Signal, error) {
		var firstTimes, firstValues, secondTimes, secondValues []float64

		for i, t := range times {
			if t < tSwitch {
				firstTimes = append(firstTimes, t)
				firstValues = append(firstValues, values[i])
			} else {
				secondTimes = append(secondTimes, t)
				secondValues = append(secondValues, values[i])
			}
		}

		s1, err := first(firstTimes, firstValues)
		if err != nil {
			return nil, err
		}

		s2, err := second(secondTimes, secondValues)
		if err != nil {
			return nil, err
		}

		return &sequencedSignal{first: s1, second: s2, tSwitch: tSwitch}, nil
	}
}

type clampedSignal struct {
	inner core.Signal
	lo    float64
	hi    float64
}

func (s *clampedSignal) At(t float64) float64 {
	return utils.Clamp(s.inner.At(t), s.lo, s.hi)
}

func (s *clampedSignal) AtTimes(times []float64) []float64 {
	return core.SampleTimes(s, times)
}

// Clamped restricts the inner signal's output to [lo, hi]. Pass -Inf or
// +Inf to leave a side unbounded.
func Clamped(inner core.SignalFactory, lo, hi float64) core.SignalFactory {
	return func(times, values []float64) (core.Signal, error) {
		signal, err := inner(times, values)
		if err != nil {
			return nil, err
		}

		return &clampedSignal{inner: signal, lo: lo, hi: hi}, nil
	}
}
