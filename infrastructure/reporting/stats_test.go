package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "empty", values: nil, want: 0},
		{name: "single value", values: []float64{0.7}, want: 0},
		{name: "identical values", values: []float64{0.5, 0.5, 0.5}, want: 0},
		{name: "symmetric pair", values: []float64{0.0, 1.0}, want: 0.5},
		{name: "known spread", values: []float64{0.2, 0.4, 0.6}, want: 0.16329931618554522},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StdDev(tt.values), 1e-12)
		})
	}
}

func TestHistogram(t *testing.T) {
	values := []float64{0.05, 0.15, 0.15, 0.95, 1.0}

	bins := Histogram(values, 10)
	assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 0, 0, 0, 2}, bins,
		"1.0 belongs to the last bin, not an overflow bin")

	assert.Nil(t, Histogram(values, 0))
	assert.Equal(t, []int{0, 0}, Histogram(nil, 2))
}

func TestGini(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "empty", values: nil, want: 0},
		{name: "all zero", values: []float64{0, 0, 0}, want: 0},
		{name: "perfect equality", values: []float64{1, 1, 1, 1}, want: 0},
		// One member holds everything: G = (n-1)/n.
		{name: "total concentration", values: []float64{0, 0, 0, 1}, want: 0.75},
		// {1, 3}: (2*(1*1 + 2*3))/(2*4) - 3/2 = 0.25.
		{name: "two values", values: []float64{1, 3}, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Gini(tt.values), 1e-12)
		})
	}
}

func TestGini_OrderInsensitive(t *testing.T) {
	a := Gini([]float64{5, 1, 3, 9})
	b := Gini([]float64{9, 3, 1, 5})
	assert.Equal(t, a, b)
}
