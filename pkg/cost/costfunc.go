package cost

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/cpslab-asu/staliro-go/pkg/cache"
	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/logging"
)

// CostFunction composes a model and a specification into an objective
// function consumable by optimizers.
//
// The model produces a trajectory for a sample and the specification
// produces a cost for the trajectory. Every evaluation is recorded in an
// append-only history owned by this instance; optimizers only ever see the
// scalar costs. A cost function belongs to exactly one optimization attempt
// and is never shared between runs.
type CostFunction struct {
	model      core.Model
	spec       core.SpecificationProvider
	layout     core.SampleLayout
	interval   core.Interval
	cache      cache.Cache
	cacheScope string
	history    []Evaluation
}

// Option configures optional cost function behavior.
type Option func(*CostFunction)

// WithCache memoizes evaluation costs keyed by the scope, the sample
// vector, and the simulation interval. The scope must uniquely name the
// model+specification configuration; entries written under one scope are
// never served under another, which keeps a persistent cache safe to reuse
// across processes after the system under test changes. Sound only because
// models and specifications are required to be pure. Cached hits still
// append an Evaluation to the history, with zero component durations.
func WithCache(c cache.Cache, scope string) Option {
	return func(f *CostFunction) {
		f.cache = c
		f.cacheScope = scope
	}
}

// NewCostFunction creates a cost function with an empty history.
func NewCostFunction(model core.Model, spec core.SpecificationProvider, layout core.SampleLayout, interval core.Interval, opts ...Option) *CostFunction {
	f := &CostFunction{
		model:    model,
		spec:     spec,
		layout:   layout,
		interval: interval,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// History returns the evaluations recorded so far, in submission order.
func (f *CostFunction) History() []Evaluation {
	history := make([]Evaluation, len(f.history))
	copy(history, f.history)

	return history
}

// evaluate runs one sample through the pipeline, consulting the cache when
// configured. It does not touch the history; callers append.
func (f *CostFunction) evaluate(ctx context.Context, sample core.Sample) (Evaluation, error) {
	logger := logging.GetLogger()

	if f.cache != nil {
		key := evaluationKey(f.cacheScope, sample, f.interval)
		if value, ok, err := f.cache.Get(ctx, key); err == nil && ok {
			if costValue, decodeErr := decodeCost(value); decodeErr == nil {
				logger.Debug(ctx, "cache hit for sample %s", sample)
				return Evaluation{Sample: sample, Cost: costValue}, nil
			}
		}
	}

	logger.Debug(ctx, "evaluating sample %s", sample)

	thunk := NewThunk(sample, f.model, f.spec, f.layout, f.interval)
	evaluation, err := thunk.Evaluate(ctx)
	if err != nil {
		return Evaluation{}, err
	}

	if f.cache != nil {
		key := evaluationKey(f.cacheScope, sample, f.interval)
		if err := f.cache.Set(ctx, key, encodeCost(evaluation.Cost), 0); err != nil {
			logger.Warn(ctx, "failed to cache evaluation: %v", err)
		}
	}

	return evaluation, nil
}

// EvalSample computes the cost of a single sample.
func (f *CostFunction) EvalSample(ctx context.Context, sample core.Sample) (float64, error) {
	evaluation, err := f.evaluate(ctx, sample)
	if err != nil {
		return 0, err
	}

	f.history = append(f.history, evaluation)

	return evaluation.Cost, nil
}

// EvalSamples computes the cost of multiple samples sequentially, extending
// the history in sample order.
func (f *CostFunction) EvalSamples(ctx context.Context, samples []core.Sample) ([]float64, error) {
	costs := make([]float64, 0, len(samples))
	evaluations := make([]Evaluation, 0, len(samples))

	for _, sample := range samples {
		evaluation, err := f.evaluate(ctx, sample)
		if err != nil {
			return nil, err
		}

		evaluations = append(evaluations, evaluation)
		costs = append(costs, evaluation.Cost)
	}

	f.history = append(f.history, evaluations...)

	return costs, nil
}

// EvalSamplesParallel computes the cost of multiple samples using a bounded
// worker pool.
//
// Each worker evaluates an independent thunk holding only immutable
// configuration. Completions are stored by submission index, so the batch
// is appended to the history in the exact order the samples were submitted
// regardless of completion order. A failing worker fails the whole batch;
// in-flight work is allowed to finish but nothing is appended to the
// history.
func (f *CostFunction) EvalSamplesParallel(ctx context.Context, samples []core.Sample, workers int) ([]float64, error) {
	if workers < 1 {
		workers = 1
	}

	evaluations := make([]Evaluation, len(samples))
	evalErrs := make([]error, len(samples))

	p := pool.New().WithMaxGoroutines(workers)
	for i, sample := range samples {
		i, sample := i, sample
		p.Go(func() {
			evaluations[i], evalErrs[i] = f.evaluate(ctx, sample)
		})
	}
	p.Wait()

	for _, err := range evalErrs {
		if err != nil {
			return nil, err
		}
	}

	costs := make([]float64, len(evaluations))
	for i, evaluation := range evaluations {
		costs[i] = evaluation.Cost
	}

	f.history = append(f.history, evaluations...)

	return costs, nil
}

var _ core.ObjectiveFunc = (*CostFunction)(nil)

// Durations returns the total wall-clock time of each evaluation in the
// history. Used for timing statistics.
func (f *CostFunction) Durations() []time.Duration {
	durations := make([]time.Duration, len(f.history))
	for i, evaluation := range f.history {
		durations[i] = evaluation.Timing.Total()
	}

	return durations
}
