package core

import (
	"sort"

	"github.com/cpslab-asu/staliro-go/pkg/errors"
	"github.com/cpslab-asu/staliro-go/pkg/utils"
)

// Range is a half-open index range [Start, End) into a sample's index space.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// SignalDeclaration describes one time-varying input consumed from a sample.
//
// Times optionally fixes the control-point time grid. When nil, the grid is
// derived at layout construction as Range.Len() evenly spaced points over
// the scenario time span.
type SignalDeclaration struct {
	Range   Range
	Factory SignalFactory
	Times   []float64
}

type signalSlot struct {
	rng     Range
	factory SignalFactory
	times   []float64
}

// SampleLayout is a static mapping describing how to slice a flat sample
// into static parameters and signal control points.
//
// A layout is built once per scenario and shared read-only by every
// evaluation, including across parallel workers. Signal slots keep the
// declaration order of the inputs they were built from.
type SampleLayout struct {
	static Range
	slots  []signalSlot
}

// NewSampleLayout validates and creates a layout.
//
// The static range and every signal range must be disjoint sub-ranges of
// the sample index space, each signal must consume at least one control
// point, and the total number of consumed indices must not exceed the
// number of search bounds. Violations are configuration errors reported
// before any search begins.
func NewSampleLayout(static Range, signals []SignalDeclaration, span Interval, boundsLen int) (SampleLayout, error) {
	if static.Start < 0 || static.End < static.Start {
		return SampleLayout{}, errors.Newf(errors.ValidationFailed,
			"invalid static parameter range [%d, %d)", static.Start, static.End)
	}

	consumed := static.Len()
	slots := make([]signalSlot, 0, len(signals))

	for i, decl := range signals {
		if decl.Range.Len() < 1 {
			return SampleLayout{}, errors.Newf(errors.ValidationFailed,
				"signal %d must contain at least one control point", i)
		}
		if decl.Range.Start < 0 {
			return SampleLayout{}, errors.Newf(errors.ValidationFailed,
				"signal %d range starts at negative index %d", i, decl.Range.Start)
		}
		if decl.Factory == nil {
			return SampleLayout{}, errors.Newf(errors.ValidationFailed, "signal %d has no factory", i)
		}

		times := decl.Times
		if times == nil {
			times = utils.Linspace(span.Lower(), span.Upper(), decl.Range.Len())
		} else if len(times) != decl.Range.Len() {
			return SampleLayout{}, errors.Newf(errors.ValidationFailed,
				"signal %d declares %d times for %d control points", i, len(times), decl.Range.Len())
		}

		consumed += decl.Range.Len()
		slots = append(slots, signalSlot{rng: decl.Range, factory: decl.Factory, times: times})
	}

	if err := checkDisjoint(static, slots); err != nil {
		return SampleLayout{}, err
	}

	// The load-bearing invariant: a layout consuming more indices than there
	// are search bounds would silently truncate every sample vector.
	if consumed > boundsLen {
		return SampleLayout{}, errors.WithFields(
			errors.New(errors.LayoutOverflow, "layout consumes more indices than search bounds supplied"),
			errors.Fields{"consumed": consumed, "bounds": boundsLen})
	}

	return SampleLayout{static: static, slots: slots}, nil
}

func checkDisjoint(static Range, slots []signalSlot) error {
	ranges := make([]Range, 0, len(slots)+1)
	if static.Len() > 0 {
		ranges = append(ranges, static)
	}
	for _, slot := range slots {
		ranges = append(ranges, slot.rng)
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	for i := 1; i < len(ranges); i++ {
		if ranges[i-1].overlaps(ranges[i]) {
			return errors.WithFields(
				errors.New(errors.ValidationFailed, "layout ranges overlap"),
				errors.Fields{"first": ranges[i-1], "second": ranges[i]})
		}
	}

	return nil
}

// StaticRange returns the sub-range holding the static parameters.
func (l SampleLayout) StaticRange() Range {
	return l.static
}

// SignalCount returns the number of declared signals.
func (l SampleLayout) SignalCount() int {
	return len(l.slots)
}

// Decompose slices a sample into static parameters and constructed signals.
//
// Signals are built in declaration order. A slice whose extracted length
// does not match the declared range length indicates a bug in layout
// construction, never a user-input problem, and is reported as a distinct
// internal error kind.
func (l SampleLayout) Decompose(sample Sample) (ModelInputs, error) {
	static := sample.Slice(l.static.Start, l.static.End)
	if len(static) != l.static.Len() {
		return ModelInputs{}, errors.WithFields(
			errors.New(errors.LayoutInvariant, "static slice length does not match declared range"),
			errors.Fields{"expected": l.static.Len(), "actual": len(static)})
	}

	signals := make([]Signal, 0, len(l.slots))
	for i, slot := range l.slots {
		values := sample.Slice(slot.rng.Start, slot.rng.End)
		if len(values) != slot.rng.Len() {
			return ModelInputs{}, errors.WithFields(
				errors.New(errors.LayoutInvariant, "signal slice length does not match declared range"),
				errors.Fields{"signal": i, "expected": slot.rng.Len(), "actual": len(values)})
		}

		signal, err := slot.factory(slot.times, values)
		if err != nil {
			return ModelInputs{}, errors.Wrap(err, errors.InvalidInput, "signal construction failed")
		}

		signals = append(signals, signal)
	}

	return ModelInputs{Static: static, Signals: signals}, nil
}
