package core

import (
	"context"
)

// Behavior selects what the search should do once a falsifying sample is
// found.
type Behavior int

const (
	// Falsification advises the optimizer to stop proposing new samples
	// once a negative-cost sample is found. The hint is advisory: whether
	// an optimizer honors it is implementation-defined.
	Falsification Behavior = iota

	// Minimization exhausts the full iteration budget regardless of
	// intermediate findings, quantifying how falsifying a requirement is.
	Minimization
)

func (b Behavior) String() string {
	switch b {
	case Falsification:
		return "falsification"
	case Minimization:
		return "minimization"
	default:
		return "unknown"
	}
}

// OptimizationParams carries the search parameters for one optimization
// attempt. The behavior mode is threaded through to the optimizer
// unmodified.
type OptimizationParams struct {
	Bounds     []Interval
	Iterations int
	Behavior   Behavior
	Seed       int64
}

// ObjectiveFunc is the objective-function contract consumed by optimizers.
//
// All three entry points append to the same evaluation history in
// submission order. An error from any entry point is fatal to the
// optimization attempt that requested the evaluation.
type ObjectiveFunc interface {
	// EvalSample computes the cost of a single sample.
	EvalSample(ctx context.Context, sample Sample) (float64, error)

	// EvalSamples computes the cost of multiple samples sequentially,
	// preserving order.
	EvalSamples(ctx context.Context, samples []Sample) ([]float64, error)

	// EvalSamplesParallel computes the cost of multiple samples using the
	// given number of workers. Costs are returned in sample order.
	EvalSamplesParallel(ctx context.Context, samples []Sample, workers int) ([]float64, error)
}

// Optimizer proposes samples and drives the search loop by repeatedly
// invoking the objective function. The returned result is optimizer-specific
// and opaque to the orchestration layer, which passes it through to the Run.
type Optimizer interface {
	Optimize(ctx context.Context, objective ObjectiveFunc, params OptimizationParams) (interface{}, error)
}
