package scenario

import (
	"github.com/go-playground/validator/v10"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
	"github.com/cpslab-asu/staliro-go/pkg/signals"
)

// ProcessesCores requests one worker per CPU core for run parallelization.
const ProcessesCores = -1

// StaticInput declares one time-invariant system input and the interval the
// optimizer may search for it.
type StaticInput struct {
	Name  string `validate:"required"`
	Bound core.Interval
}

// SignalInput declares one time-varying system input.
//
// The optimizer generates one value per control point inside the matching
// bound; the factory interpolates those values into a continuous signal.
// Times optionally fixes the control-point time grid; when nil the control
// points are spaced evenly over the scenario time span.
type SignalInput struct {
	Name          string          `validate:"required"`
	ControlPoints []core.Interval `validate:"min=1"`
	Times         []float64
	Factory       core.SignalFactory
}

// TestOptions is the full configuration for repeating a falsification
// search. Options are validated once, before any search begins; validation
// failures never silently clamp or coerce.
type TestOptions struct {
	StaticInputs []StaticInput `validate:"dive"`
	Signals      []SignalInput `validate:"dive"`

	Runs       int   `validate:"gt=0"`
	Iterations int   `validate:"gt=0"`
	Seed       int64 `validate:"gte=0,lte=4294967295"`

	// Processes selects run parallelization: 0 runs sequentially, a
	// positive count bounds the worker pool, ProcessesCores uses one
	// worker per CPU core.
	Processes int `validate:"gte=-1"`

	TimeSpan core.Interval
	Behavior core.Behavior
}

// DefaultOptions returns options with the conventional defaults for a
// single falsification run.
func DefaultOptions() TestOptions {
	return TestOptions{
		Runs:       1,
		Iterations: 400,
		TimeSpan:   core.MustInterval(0, 1),
		Behavior:   core.Falsification,
	}
}

var validate = validator.New()

// Validate checks the whole configuration surface.
func (o *TestOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(err, errors.ValidationFailed, "invalid test options")
	}

	names := make(map[string]struct{}, len(o.StaticInputs)+len(o.Signals))
	for _, input := range o.StaticInputs {
		if _, exists := names[input.Name]; exists {
			return errors.Newf(errors.ValidationFailed, "duplicate input name %q", input.Name)
		}
		names[input.Name] = struct{}{}
	}

	for _, signal := range o.Signals {
		if _, exists := names[signal.Name]; exists {
			return errors.Newf(errors.ValidationFailed, "duplicate input name %q", signal.Name)
		}
		names[signal.Name] = struct{}{}

		if signal.Times != nil && len(signal.Times) != len(signal.ControlPoints) {
			return errors.Newf(errors.ValidationFailed,
				"signal %q declares %d times for %d control points",
				signal.Name, len(signal.Times), len(signal.ControlPoints))
		}
	}

	if o.TimeSpan.Length() <= 0 {
		return errors.New(errors.ValidationFailed, "time span must be a valid interval")
	}

	if len(o.Bounds()) == 0 {
		return errors.New(errors.ValidationFailed,
			"must provide at least one static input or one signal control point")
	}

	return nil
}

// Bounds assembles the combined search bounds: static inputs first in
// declaration order, then each signal's control-point bounds in declaration
// order. This ordering is what SampleLayout decomposition relies on.
func (o *TestOptions) Bounds() []core.Interval {
	bounds := make([]core.Interval, 0, len(o.StaticInputs))
	for _, input := range o.StaticInputs {
		bounds = append(bounds, input.Bound)
	}

	for _, signal := range o.Signals {
		bounds = append(bounds, signal.ControlPoints...)
	}

	return bounds
}

// Layout builds the sample layout matching Bounds. Signals without an
// explicit factory default to Pchip interpolation.
func (o *TestOptions) Layout() (core.SampleLayout, error) {
	static := core.Range{Start: 0, End: len(o.StaticInputs)}

	declarations := make([]core.SignalDeclaration, 0, len(o.Signals))
	offset := static.End

	for _, signal := range o.Signals {
		factory := signal.Factory
		if factory == nil {
			factory = signals.Pchip
		}

		declarations = append(declarations, core.SignalDeclaration{
			Range:   core.Range{Start: offset, End: offset + len(signal.ControlPoints)},
			Factory: factory,
			Times:   signal.Times,
		})
		offset += len(signal.ControlPoints)
	}

	return core.NewSampleLayout(static, declarations, o.TimeSpan, len(o.Bounds()))
}
