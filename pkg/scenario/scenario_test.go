package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpslab-asu/staliro-go/internal/testutil"
	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
	"github.com/cpslab-asu/staliro-go/pkg/optimizers"
)

func staticOnlyOptions() TestOptions {
	options := DefaultOptions()
	options.StaticInputs = []StaticInput{
		{Name: "a", Bound: core.MustInterval(-10, 10)},
		{Name: "b", Bound: core.MustInterval(0, 5)},
	}
	options.Iterations = 20
	options.Behavior = core.Minimization

	return options
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	model := &testutil.ConstantModel{}
	spec := core.FixedSpecification(&testutil.MinStateSpecification{})
	optimizer := optimizers.NewUniformRandom()

	tests := []struct {
		name  string
		build func() (*Scenario, error)
	}{
		{
			name: "nil model",
			build: func() (*Scenario, error) {
				return New(nil, spec, optimizer, staticOnlyOptions())
			},
		},
		{
			name: "nil optimizer",
			build: func() (*Scenario, error) {
				return New(model, spec, nil, staticOnlyOptions())
			},
		},
		{
			name: "empty specification provider",
			build: func() (*Scenario, error) {
				return New(model, core.SpecificationProvider{}, optimizer, staticOnlyOptions())
			},
		},
		{
			name: "invalid options",
			build: func() (*Scenario, error) {
				options := staticOnlyOptions()
				options.Runs = 0
				return New(model, spec, optimizer, options)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.Error(t, err)
		})
	}
}

func TestScenarioRunAggregatesRuns(t *testing.T) {
	scenario, err := New(
		&testutil.ConstantModel{},
		core.FixedSpecification(&testutil.MinStateSpecification{}),
		optimizers.NewUniformRandom(),
		staticOnlyOptions(),
	)
	require.NoError(t, err)

	options := staticOnlyOptions()

	result, err := scenario.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Runs, options.Runs)
	assert.Equal(t, options.Seed, result.Seed)
	assert.Equal(t, 0, result.Processes)
	assert.Len(t, result.Bounds, 2)

	run := result.Runs[0]
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", run.ID.String())
	assert.Len(t, run.History, options.Iterations)
	assert.NotNil(t, run.Result)

	search := run.Result.(optimizers.UniformRandomResult)
	best, err := run.BestEval()
	require.NoError(t, err)
	assert.Equal(t, best.Cost, search.BestCost)
}

// runCosts flattens a result's histories to per-run cost slices keyed by
// child seed, which identifies runs independently of completion order.
func runCosts(result *Result) map[int64][]float64 {
	costsBySeed := make(map[int64][]float64, len(result.Runs))
	for _, run := range result.Runs {
		costs := make([]float64, len(run.History))
		for i, evaluation := range run.History {
			costs[i] = evaluation.Cost
		}
		costsBySeed[run.Seed] = costs
	}

	return costsBySeed
}

func TestScenarioIsReproducibleAcrossParallelism(t *testing.T) {
	build := func(processes int) *Scenario {
		options := staticOnlyOptions()
		options.Runs = 4
		options.Seed = 99
		options.Processes = processes

		scenario, err := New(
			&testutil.ConstantModel{},
			core.FixedSpecification(&testutil.MinStateSpecification{}),
			optimizers.NewUniformRandom(),
			options,
		)
		require.NoError(t, err)

		return scenario
	}

	sequential, err := build(0).Run(context.Background())
	require.NoError(t, err)
	parallel, err := build(2).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, runCosts(sequential), runCosts(parallel))

	// Same master seed: the child seed sequence is identical.
	for i := range sequential.Runs {
		assert.Equal(t, sequential.Runs[i].Seed, parallel.Runs[i].Seed)
	}
}

func TestScenarioDistinctSeedsPerRun(t *testing.T) {
	options := staticOnlyOptions()
	options.Runs = 3
	options.Seed = 7

	scenario, err := New(
		&testutil.ConstantModel{},
		core.FixedSpecification(&testutil.MinStateSpecification{}),
		optimizers.NewUniformRandom(),
		options,
	)
	require.NoError(t, err)

	result, err := scenario.Run(context.Background())
	require.NoError(t, err)

	seeds := make(map[int64]struct{})
	for _, run := range result.Runs {
		seeds[run.Seed] = struct{}{}
	}
	assert.Len(t, seeds, 3, "each run must get its own child seed")
}

func TestScenarioFailedRunPoisonsResult(t *testing.T) {
	scenario, err := New(
		testutil.FailingModel{},
		core.SpecificationFactory(func(core.Sample) (core.Specification, error) {
			return nil, errors.New(errors.Unknown, "cannot build requirement")
		}),
		optimizers.NewUniformRandom(),
		staticOnlyOptions(),
	)
	require.NoError(t, err)

	result, err := scenario.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, errors.OptimizationFailed, errors.Code(err))
}

func TestScenarioBoundsAreCopied(t *testing.T) {
	scenario, err := New(
		&testutil.ConstantModel{},
		core.FixedSpecification(&testutil.MinStateSpecification{}),
		optimizers.NewUniformRandom(),
		staticOnlyOptions(),
	)
	require.NoError(t, err)

	bounds := scenario.Bounds()
	bounds[0] = core.MustInterval(-1000, 1000)

	assert.Equal(t, 10.0, scenario.Bounds()[0].Upper())
}
