// Package reporting renders assignment results for humans and machines and
// derives the auxiliary descriptive statistics shown alongside them. Nothing
// here feeds back into the assignment algorithm.
package reporting

import (
	"math"
	"slices"
)

// StdDev returns the population standard deviation of values, 0 for an
// empty slice.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// Histogram buckets values from [0,1] into count equal-width bins and
// returns the per-bin tallies. Values at exactly 1.0 land in the last bin.
func Histogram(values []float64, count int) []int {
	if count <= 0 {
		return nil
	}
	bins := make([]int, count)
	for _, v := range values {
		idx := int(v * float64(count))
		if idx >= count {
			idx = count - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx]++
	}
	return bins
}

// Gini returns the Gini coefficient of values: 0 for perfect equality,
// approaching 1 as a single member holds everything. Values are expected
// non-negative; empty or all-zero input yields 0.
func Gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var total, weighted float64
	for i, v := range sorted {
		total += v
		weighted += float64(i+1) * v
	}
	if total == 0 {
		return 0
	}
	// Standard rank formula: (2*Σ i*x_i)/(n*Σ x_i) - (n+1)/n.
	return (2*weighted)/(float64(n)*total) - float64(n+1)/float64(n)
}
