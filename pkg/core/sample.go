package core

import (
	"fmt"
	"strings"
)

// Sample is an immutable, ordered sequence of real numbers.
//
// Samples are the optimizer's native representation of one candidate point
// in the search space. A sample is produced by an optimizer for each
// candidate and consumed exactly once by a cost function evaluation.
type Sample struct {
	values []float64
}

// NewSample creates a sample from a vector of values.
// The input slice is copied so later mutation cannot leak into the sample.
func NewSample(values []float64) Sample {
	copied := make([]float64, len(values))
	copy(copied, values)

	return Sample{values: copied}
}

// Len returns the number of values in the sample.
func (s Sample) Len() int {
	return len(s.values)
}

// At returns the value at index i.
func (s Sample) At(i int) float64 {
	return s.values[i]
}

// Values returns a copy of the sample's values.
func (s Sample) Values() []float64 {
	copied := make([]float64, len(s.values))
	copy(copied, s.values)

	return copied
}

// Slice returns a copy of the half-open index range [start, end).
// Ranges extending past the sample are truncated rather than panicking so
// that layout decomposition can detect the mismatch and report it.
func (s Sample) Slice(start, end int) []float64 {
	if start < 0 {
		start = 0
	}
	if end > len(s.values) {
		end = len(s.values)
	}
	if start >= end {
		return nil
	}

	copied := make([]float64, end-start)
	copy(copied, s.values[start:end])

	return copied
}

func (s Sample) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
