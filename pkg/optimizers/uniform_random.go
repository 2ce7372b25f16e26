// Package optimizers provides sample-generation strategies satisfying the
// core.Optimizer contract.
package optimizers

import (
	"context"
	"math/rand"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/logging"
)

// UniformRandomResult summarizes a uniform random search.
type UniformRandomResult struct {
	// BestCost is the lowest cost observed.
	BestCost float64

	// BestSample is the sample that produced BestCost.
	BestSample core.Sample

	// Evaluations is the number of samples actually evaluated, which can
	// be below the iteration budget when falsification behavior stops the
	// search early.
	Evaluations int
}

// UniformRandom samples the search space uniformly at random. It serves as
// the baseline optimizer: every sample is independent, so the observed
// falsification rate estimates the volume of the falsifying region.
type UniformRandom struct {
	// Workers, when positive, evaluates samples through the objective's
	// parallel batch interface with that many workers per batch.
	Workers int
}

// NewUniformRandom creates a sequential uniform random optimizer.
func NewUniformRandom() *UniformRandom {
	return &UniformRandom{}
}

// Optimize draws the full budget of samples up front from the seeded
// generator, then evaluates them lazily. Under falsification behavior the
// search stops at the first negative cost.
func (u *UniformRandom) Optimize(ctx context.Context, objective core.ObjectiveFunc, params core.OptimizationParams) (interface{}, error) {
	logger := logging.GetLogger()

	rng := rand.New(rand.NewSource(params.Seed))
	samples := make([]core.Sample, params.Iterations)
	for i := range samples {
		samples[i] = uniformSample(params.Bounds, rng)
	}

	result := UniformRandomResult{}
	best := func(sample core.Sample, cost float64) {
		if result.Evaluations == 0 || cost < result.BestCost {
			result.BestCost = cost
			result.BestSample = sample
		}
		result.Evaluations++
	}

	if u.Workers > 1 {
		for start := 0; start < len(samples); start += u.Workers {
			end := start + u.Workers
			if end > len(samples) {
				end = len(samples)
			}

			costs, err := objective.EvalSamplesParallel(ctx, samples[start:end], u.Workers)
			if err != nil {
				return nil, err
			}

			falsified := false
			for i, cost := range costs {
				best(samples[start+i], cost)
				if cost < 0 {
					falsified = true
				}
			}

			if params.Behavior == core.Falsification && falsified {
				logger.Debug(ctx, "falsified after %d evaluations", result.Evaluations)
				break
			}
		}

		return result, nil
	}

	for _, sample := range samples {
		cost, err := objective.EvalSample(ctx, sample)
		if err != nil {
			return nil, err
		}

		best(sample, cost)

		if params.Behavior == core.Falsification && cost < 0 {
			logger.Debug(ctx, "falsified after %d evaluations", result.Evaluations)
			break
		}
	}

	return result, nil
}

func uniformSample(bounds []core.Interval, rng *rand.Rand) core.Sample {
	values := make([]float64, len(bounds))
	for i, bound := range bounds {
		values[i] = bound.Lower() + rng.Float64()*bound.Length()
	}

	return core.NewSample(values)
}

var _ core.Optimizer = (*UniformRandom)(nil)
