package core

// ModelInputs is the decomposed form of a sample: the time-invariant static
// parameters and the interpolated time-varying signals. Inputs are consumed
// by exactly one Simulate call and not retained.
type ModelInputs struct {
	Static  []float64
	Signals []Signal
}

// ModelResult is the outcome of one simulation: either a trajectory with
// optional annotation data, or a failure indicator.
//
// A failure carries no trace and signals that the requirement should be
// treated as already falsified for this sample, bypassing specification
// evaluation.
type ModelResult struct {
	trace   Trace
	extra   interface{}
	failure bool
}

// NewModelResult creates a successful simulation result.
func NewModelResult(trace Trace, extra interface{}) ModelResult {
	return ModelResult{trace: trace, extra: extra}
}

// NewFailure creates a result representing a system failure that should be
// interpreted as a falsification.
func NewFailure(extra interface{}) ModelResult {
	return ModelResult{extra: extra, failure: true}
}

// IsFailure reports whether the result represents a system failure.
func (r ModelResult) IsFailure() bool {
	return r.failure
}

// Trace returns the trajectory of a successful simulation.
// The trace of a failure result is empty.
func (r ModelResult) Trace() Trace {
	return r.trace
}

// Extra returns the user-defined annotation data attached to the result.
func (r ModelResult) Extra() interface{} {
	return r.extra
}

// Model is a representation of a system under test.
//
// Simulate must be a pure function of its inputs: given the same inputs and
// interval it must produce the same result, with no hidden state affecting
// the output. Run reproducibility under parallel execution depends on this.
// A returned error is fatal to the evaluation that requested the simulation
// and is never converted into a cost value.
type Model interface {
	Simulate(inputs ModelInputs, interval Interval) (ModelResult, error)
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc func(inputs ModelInputs, interval Interval) (ModelResult, error)

func (f ModelFunc) Simulate(inputs ModelInputs, interval Interval) (ModelResult, error) {
	return f(inputs, interval)
}
