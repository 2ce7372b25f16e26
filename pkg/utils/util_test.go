package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		stop  float64
		num   int
		want  []float64
	}{
		{name: "five points", start: 0, stop: 1, num: 5, want: []float64{0, 0.25, 0.5, 0.75, 1}},
		{name: "two points", start: -1, stop: 1, num: 2, want: []float64{-1, 1}},
		{name: "single point", start: 3, stop: 7, num: 1, want: []float64{3}},
		{name: "zero points", start: 0, stop: 1, num: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.start, tt.stop, tt.num)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestLinspacePinsEndpoint(t *testing.T) {
	values := Linspace(0, 0.3, 7)
	assert.Equal(t, 0.3, values[len(values)-1])
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0.5, 1, 2))
	assert.Equal(t, 2.0, Clamp(3, 1, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 1, 2))
}
