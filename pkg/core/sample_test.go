package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleIsImmutable(t *testing.T) {
	source := []float64{1, 2, 3}
	sample := NewSample(source)

	source[0] = 99
	assert.Equal(t, 1.0, sample.At(0))

	values := sample.Values()
	values[1] = 99
	assert.Equal(t, 2.0, sample.At(1))
}

func TestSampleSlice(t *testing.T) {
	sample := NewSample([]float64{0, 1, 2, 3, 4})

	tests := []struct {
		name  string
		start int
		end   int
		want  []float64
	}{
		{name: "interior", start: 1, end: 4, want: []float64{1, 2, 3}},
		{name: "full", start: 0, end: 5, want: []float64{0, 1, 2, 3, 4}},
		{name: "empty", start: 2, end: 2, want: nil},
		{name: "end beyond length truncates", start: 3, end: 9, want: []float64{3, 4}},
		{name: "inverted truncates to empty", start: 4, end: 2, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sample.Slice(tt.start, tt.end)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSampleString(t *testing.T) {
	sample := NewSample([]float64{1.5, -2})
	assert.NotEmpty(t, sample.String())
}
