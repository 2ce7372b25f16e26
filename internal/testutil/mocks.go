package testutil

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/stretchr/testify/mock"
)

// MockModel is a mock implementation of core.Model.
type MockModel struct {
	mock.Mock
}

func (m *MockModel) Simulate(inputs core.ModelInputs, interval core.Interval) (core.ModelResult, error) {
	args := m.Called(inputs, interval)
	return args.Get(0).(core.ModelResult), args.Error(1)
}

// MockSpecification is a mock implementation of core.Specification.
type MockSpecification struct {
	mock.Mock
}

func (m *MockSpecification) Evaluate(trace core.Trace) (float64, interface{}, error) {
	args := m.Called(trace)
	return args.Get(0).(float64), args.Get(1), args.Error(2)
}

func (m *MockSpecification) FailureCost() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

// MockOptimizer is a mock implementation of core.Optimizer.
type MockOptimizer struct {
	mock.Mock
}

func (m *MockOptimizer) Optimize(ctx context.Context, objective core.ObjectiveFunc, params core.OptimizationParams) (interface{}, error) {
	args := m.Called(ctx, objective, params)
	return args.Get(0), args.Error(1)
}

// ConstantModel returns the same single-state trace regardless of input.
// The trace has one row per sample time, each equal to the sum of the
// static inputs, so results are fully deterministic.
type ConstantModel struct {
	// Points is the number of trace rows to produce. Defaults to 2.
	Points int

	// Delay, when positive, sleeps before returning to exercise timing
	// and concurrency paths.
	Delay time.Duration

	mu    sync.Mutex
	calls int
}

func (c *ConstantModel) Simulate(inputs core.ModelInputs, interval core.Interval) (core.ModelResult, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	if c.Delay > 0 {
		time.Sleep(c.Delay)
	}

	points := c.Points
	if points < 2 {
		points = 2
	}

	total := 0.0
	for _, v := range inputs.Static {
		total += v
	}

	times := make([]float64, points)
	states := make([][]float64, points)
	step := interval.Length() / float64(points-1)
	for i := range times {
		times[i] = interval.Lower() + float64(i)*step
		states[i] = []float64{total}
	}

	trace, err := core.NewTrace(times, states)
	if err != nil {
		return core.ModelResult{}, err
	}

	return core.NewModelResult(trace, nil), nil
}

// Calls reports how many times Simulate ran.
func (c *ConstantModel) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// FailingModel reports a simulation failure for every input.
type FailingModel struct{}

func (FailingModel) Simulate(core.ModelInputs, core.Interval) (core.ModelResult, error) {
	return core.NewFailure(nil), nil
}

// MinStateSpecification scores a trace by the minimum value of its first
// state dimension. A trace that dips below zero is falsifying.
type MinStateSpecification struct {
	// Failure is the cost reported for failed simulations.
	Failure float64

	mu    sync.Mutex
	calls int
}

func (s *MinStateSpecification) Evaluate(trace core.Trace) (float64, interface{}, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	lowest := math.Inf(1)
	for i := 0; i < trace.Len(); i++ {
		if v := trace.StateAt(i)[0]; v < lowest {
			lowest = v
		}
	}

	return lowest, nil, nil
}

func (s *MinStateSpecification) FailureCost() float64 {
	if s.Failure != 0 {
		return s.Failure
	}
	return math.Inf(-1)
}

// Calls reports how many times Evaluate ran.
func (s *MinStateSpecification) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
