package scenario

import (
	"time"

	"github.com/google/uuid"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/cost"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// TimeStats summarizes a collection of durations.
type TimeStats struct {
	durations []time.Duration
}

// NewTimeStats creates statistics over the given durations. An empty
// collection is rejected so the statistics can never silently report zero.
func NewTimeStats(durations []time.Duration) (TimeStats, error) {
	if len(durations) == 0 {
		return TimeStats{}, errors.New(errors.EmptyHistory, "cannot compute statistics of zero durations")
	}

	copied := make([]time.Duration, len(durations))
	copy(copied, durations)

	return TimeStats{durations: copied}, nil
}

// Total returns the sum of all durations.
func (s TimeStats) Total() time.Duration {
	var total time.Duration
	for _, d := range s.durations {
		total += d
	}

	return total
}

// Mean returns the average duration.
func (s TimeStats) Mean() time.Duration {
	return s.Total() / time.Duration(len(s.durations))
}

// Max returns the longest duration.
func (s TimeStats) Max() time.Duration {
	max := s.durations[0]
	for _, d := range s.durations[1:] {
		if d > max {
			max = d
		}
	}

	return max
}

// Min returns the shortest duration.
func (s TimeStats) Min() time.Duration {
	min := s.durations[0]
	for _, d := range s.durations[1:] {
		if d < min {
			min = d
		}
	}

	return min
}

// Run is the outcome of one independently seeded optimization attempt.
type Run struct {
	// ID identifies the attempt in logs.
	ID uuid.UUID

	// Result is the optimizer-specific value returned at exit, passed
	// through opaquely.
	Result interface{}

	// History contains every cost function evaluation of the attempt, in
	// submission order.
	History []cost.Evaluation

	// Duration is the wall-clock time spent inside the optimizer.
	Duration time.Duration

	// Seed is the child seed this attempt was derived from.
	Seed int64
}

func (r Run) extremum(better func(candidate, current cost.Evaluation) bool) (cost.Evaluation, error) {
	if len(r.History) == 0 {
		return cost.Evaluation{}, errors.New(errors.EmptyHistory, "run has no evaluations")
	}

	selected := r.History[0]
	for _, evaluation := range r.History[1:] {
		if better(evaluation, selected) {
			selected = evaluation
		}
	}

	return selected, nil
}

// BestEval returns the most falsifying evaluation: the first one with the
// minimum cost. Lower robustness is closer to falsification.
func (r Run) BestEval() (cost.Evaluation, error) {
	return r.extremum(func(candidate, current cost.Evaluation) bool {
		return candidate.Cost < current.Cost
	})
}

// WorstEval returns the first evaluation with the maximum cost.
func (r Run) WorstEval() (cost.Evaluation, error) {
	return r.extremum(func(candidate, current cost.Evaluation) bool {
		return candidate.Cost > current.Cost
	})
}

// FastestEval returns the evaluation with the lowest total duration.
func (r Run) FastestEval() (cost.Evaluation, error) {
	return r.extremum(func(candidate, current cost.Evaluation) bool {
		return candidate.Timing.Total() < current.Timing.Total()
	})
}

// SlowestEval returns the evaluation with the longest total duration.
func (r Run) SlowestEval() (cost.Evaluation, error) {
	return r.extremum(func(candidate, current cost.Evaluation) bool {
		return candidate.Timing.Total() > current.Timing.Total()
	})
}

// ModelTiming returns duration statistics for the model component.
func (r Run) ModelTiming() (TimeStats, error) {
	durations := make([]time.Duration, len(r.History))
	for i, evaluation := range r.History {
		durations[i] = evaluation.Timing.Model
	}

	return NewTimeStats(durations)
}

// SpecificationTiming returns duration statistics for the specification
// component.
func (r Run) SpecificationTiming() (TimeStats, error) {
	durations := make([]time.Duration, len(r.History))
	for i, evaluation := range r.History {
		durations[i] = evaluation.Timing.Specification
	}

	return NewTimeStats(durations)
}

// Result is the aggregate outcome of a scenario execution.
type Result struct {
	// Runs holds one entry per optimization attempt. Order matches the
	// run index under sequential execution; no ordering is promised under
	// parallel execution.
	Runs []Run

	// Bounds are the search bounds every run shared.
	Bounds []core.Interval

	// Seed is the master seed the child seeds were derived from.
	Seed int64

	// Processes is the worker count used for run parallelization;
	// zero means the runs executed sequentially.
	Processes int
}

func (r Result) extremum(better func(candidate, current float64) bool) (Run, error) {
	if len(r.Runs) == 0 {
		return Run{}, errors.New(errors.EmptyHistory, "result has no runs")
	}

	selected := r.Runs[0]
	selectedBest, err := selected.BestEval()
	if err != nil {
		return Run{}, err
	}

	for _, run := range r.Runs[1:] {
		best, err := run.BestEval()
		if err != nil {
			return Run{}, err
		}

		if better(best.Cost, selectedBest.Cost) {
			selected = run
			selectedBest = best
		}
	}

	return selected, nil
}

// BestRun returns the run containing the single most falsifying sample
// across the whole scenario.
func (r Result) BestRun() (Run, error) {
	return r.extremum(func(candidate, current float64) bool {
		return candidate < current
	})
}

// WorstRun returns the run whose best evaluation is furthest from
// falsification.
func (r Result) WorstRun() (Run, error) {
	return r.extremum(func(candidate, current float64) bool {
		return candidate > current
	})
}
