// Package scenario orchestrates falsification searches: it repeats
// independently seeded optimization attempts over a shared model,
// specification, and input space, sequentially or across a bounded worker
// pool, and aggregates the outcomes.
package scenario

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/cost"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
	"github.com/cpslab-asu/staliro-go/pkg/logging"
)

// Scenario owns the fixed configuration of a falsification search. All of
// it is immutable once constructed and safe to share across workers: per
// run, only the cost function (and its history) is fresh.
type Scenario struct {
	model     core.Model
	spec      core.SpecificationProvider
	optimizer core.Optimizer
	options   TestOptions
	bounds    []core.Interval
	layout    core.SampleLayout
	costOpts  []cost.Option
}

// New validates the configuration and builds a scenario. All configuration
// errors surface here, before any search begins.
func New(model core.Model, spec core.SpecificationProvider, optimizer core.Optimizer, options TestOptions, costOpts ...cost.Option) (*Scenario, error) {
	if model == nil {
		return nil, errors.New(errors.InvalidInput, "model must not be nil")
	}
	if optimizer == nil {
		return nil, errors.New(errors.InvalidInput, "optimizer must not be nil")
	}
	if !spec.IsValid() {
		return nil, errors.New(errors.InvalidInput, "specification provider must hold an instance or a factory")
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	layout, err := options.Layout()
	if err != nil {
		return nil, err
	}

	return &Scenario{
		model:     model,
		spec:      spec,
		optimizer: optimizer,
		options:   options,
		bounds:    options.Bounds(),
		layout:    layout,
		costOpts:  costOpts,
	}, nil
}

// Bounds returns the combined search bounds of the scenario.
func (s *Scenario) Bounds() []core.Interval {
	bounds := make([]core.Interval, len(s.bounds))
	copy(bounds, s.bounds)

	return bounds
}

// Run executes every optimization attempt and aggregates the outcomes.
//
// One child seed per run is drawn from a generator seeded with the master
// seed, in run-index order, before any attempt starts. The seed sequence
// is therefore identical whether the attempts then execute sequentially or
// in parallel, which makes the whole scenario reproducible for
// deterministic collaborators.
func (s *Scenario) Run(ctx context.Context) (*Result, error) {
	logger := logging.GetLogger()
	logger.Debug(ctx, "beginning scenario: %d runs of %d iterations", s.options.Runs, s.options.Iterations)
	logger.Debug(ctx, "master seed: %d", s.options.Seed)

	rng := rand.New(rand.NewSource(s.options.Seed))

	experiments := make([]*Experiment, s.options.Runs)
	for i := range experiments {
		costFn := cost.NewCostFunction(s.model, s.spec, s.layout, s.options.TimeSpan, s.costOpts...)
		params := core.OptimizationParams{
			Bounds:     s.bounds,
			Iterations: s.options.Iterations,
			Behavior:   s.options.Behavior,
			Seed:       int64(rng.Uint32()),
		}

		experiments[i] = newExperiment(costFn, s.optimizer, params)
	}

	workers := s.options.Processes
	if workers == ProcessesCores {
		workers = runtime.NumCPU()
	}

	logger.Debug(ctx, "run parallelization: %d workers", workers)

	runs := make([]Run, len(experiments))
	runErrs := make([]error, len(experiments))

	if workers == 0 {
		for i, experiment := range experiments {
			runs[i], runErrs[i] = experiment.Run(ctx)
		}
	} else {
		p := pool.New().WithMaxGoroutines(workers)
		for i, experiment := range experiments {
			i, experiment := i, experiment
			p.Go(func() {
				runs[i], runErrs[i] = experiment.Run(ctx)
			})
		}
		p.Wait()
	}

	// A failed run poisons the whole scenario; partial results would hide
	// the failure from the user.
	for _, err := range runErrs {
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Runs:      runs,
		Bounds:    s.Bounds(),
		Seed:      s.options.Seed,
		Processes: workers,
	}, nil
}
