package scenario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/cost"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
	"github.com/cpslab-asu/staliro-go/pkg/logging"
)

// Experiment is a single optimization attempt: one seeded cost function,
// one optimizer invocation, one Run. The cost function belongs exclusively
// to this experiment, so its history is never shared with another attempt.
type Experiment struct {
	id        uuid.UUID
	costFn    *cost.CostFunction
	optimizer core.Optimizer
	params    core.OptimizationParams
}

func newExperiment(costFn *cost.CostFunction, optimizer core.Optimizer, params core.OptimizationParams) *Experiment {
	return &Experiment{
		id:        uuid.New(),
		costFn:    costFn,
		optimizer: optimizer,
		params:    params,
	}
}

// Run executes the attempt and packages the optimizer result together with
// the full evaluation history and the wall-clock duration of the search.
func (e *Experiment) Run(ctx context.Context) (Run, error) {
	ctx = logging.WithRunID(ctx, e.id.String())
	logger := logging.GetLogger()

	logger.Debug(ctx, "beginning run with seed %d", e.params.Seed)

	start := time.Now()
	result, err := e.optimizer.Optimize(ctx, e.costFn, e.params)
	duration := time.Since(start)

	if err != nil {
		return Run{}, errors.Wrap(err, errors.OptimizationFailed, "optimization attempt failed")
	}

	logger.Debug(ctx, "finished run in %s", duration)

	return Run{
		ID:       e.id,
		Result:   result,
		History:  e.costFn.History(),
		Duration: duration,
		Seed:     e.params.Seed,
	}, nil
}
