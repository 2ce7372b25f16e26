package cost

import (
	"context"
	"time"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// TimingData stores the execution durations of the components of a single
// evaluation.
type TimingData struct {
	Model         time.Duration
	Specification time.Duration
}

// Total returns the combined duration of all components.
func (t TimingData) Total() time.Duration {
	return t.Model + t.Specification
}

// Annotations holds the user-defined data attached to one evaluation by the
// model and the specification.
type Annotations struct {
	Model         interface{}
	Specification interface{}
}

// Evaluation is the result of applying the cost function to a sample.
// Exactly one evaluation is produced per cost-function invocation and
// appended to the owning history.
type Evaluation struct {
	Sample core.Sample
	Cost   float64
	Extra  Annotations
	Timing TimingData
}

// Thunk represents the deferred evaluation of the cost function for one
// sample. A thunk carries only immutable configuration, never a reference
// to the caller's history, so it is safe to evaluate on any worker.
type Thunk struct {
	sample   core.Sample
	model    core.Model
	spec     core.SpecificationProvider
	layout   core.SampleLayout
	interval core.Interval
}

// NewThunk creates a deferred evaluation for a sample.
func NewThunk(sample core.Sample, model core.Model, spec core.SpecificationProvider, layout core.SampleLayout, interval core.Interval) Thunk {
	return Thunk{sample: sample, model: model, spec: spec, layout: layout, interval: interval}
}

// Evaluate runs the pipeline for one sample:
//
//	decompose -> simulate -> evaluate specification (or short-circuit)
//
// The specification is resolved before simulation so that a misbehaving
// factory fails without spending any simulation time. A model failure
// result short-circuits specification evaluation and is assigned the
// specification's failure cost with zero specification duration. Errors
// from the model or the specification are not caught here; they abort the
// evaluation and propagate to the caller.
func (t Thunk) Evaluate(ctx context.Context) (Evaluation, error) {
	if err := errors.CheckContext(ctx, "evaluation"); err != nil {
		return Evaluation{}, err
	}

	spec, err := t.spec.For(t.sample)
	if err != nil {
		return Evaluation{}, err
	}

	inputs, err := t.layout.Decompose(t.sample)
	if err != nil {
		return Evaluation{}, err
	}

	modelStart := time.Now()
	result, err := t.model.Simulate(inputs, t.interval)
	modelDuration := time.Since(modelStart)

	if err != nil {
		return Evaluation{}, errors.Wrap(err, errors.SimulationFailed, "model simulation failed")
	}

	if result.IsFailure() {
		return Evaluation{
			Sample: t.sample,
			Cost:   spec.FailureCost(),
			Extra:  Annotations{Model: result.Extra()},
			Timing: TimingData{Model: modelDuration},
		}, nil
	}

	specStart := time.Now()
	costValue, specExtra, err := spec.Evaluate(result.Trace())
	specDuration := time.Since(specStart)

	if err != nil {
		return Evaluation{}, errors.Wrap(err, errors.SpecificationInvalid, "specification evaluation failed")
	}

	return Evaluation{
		Sample: t.sample,
		Cost:   costValue,
		Extra:  Annotations{Model: result.Extra(), Specification: specExtra},
		Timing: TimingData{Model: modelDuration, Specification: specDuration},
	}, nil
}
