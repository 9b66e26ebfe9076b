package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want string
	}{
		{"positive linear", []float64{1, 2, 3}, []float64{2, 4, 6}, "1.00"},
		{"inverse", []float64{1, 2, 3}, []float64{3, 2, 1}, "-1.00"},
		{"constant both", []float64{5, 5, 5}, []float64{5, 5, 5}, "nan"},
		{"constant x", []float64{0, 0, 0, 0}, []float64{1, 2, 3, 4}, "nan"},
		{"constant y", []float64{1, 2, 3, 4}, []float64{0.5, 0.5, 0.5, 0.5}, "nan"},
		{"empty", nil, nil, "nan"},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, "nan"},
		{"partial", []float64{1, 2, 3, 4}, []float64{1, 3, 2, 4}, "0.80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCorrelation(Pearson(tt.x, tt.y)))
		})
	}
}

func TestPearson_ConstantIsNeverZero(t *testing.T) {
	r := Pearson([]float64{2, 2, 2}, []float64{7, 7, 7})
	assert.True(t, math.IsNaN(r))
	assert.NotEqual(t, 0.0, r)
}

func TestCorrelate(t *testing.T) {
	obs := []Observation{
		{Expression: 1, Accessibility: 2},
		{Expression: 2, Accessibility: 4},
		{Expression: 3, Accessibility: 6},
	}
	assert.InDelta(t, 1.0, Correlate(obs), 1e-12)
}
