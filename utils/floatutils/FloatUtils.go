// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64. MaxSlice panics if values is empty.
func MaxSlice(values []float64) (max float64, indices []int) {
	return extremes(values, func(a, b float64) bool { return a > b })
}

// MinSlice gets the minimum value and indices of the minimum values in
// a slice of float64. MinSlice panics if values is empty.
func MinSlice(values []float64) (min float64, indices []int) {
	return extremes(values, func(a, b float64) bool { return a < b })
}

func extremes(values []float64,
	better func(a, b float64) bool) (float64, []int) {
	best, indices := values[0], []int{0}

	for i := 1; i < len(values); i++ {
		if better(values[i], best) {
			best = values[i]
			indices = []int{i}
		} else if values[i] == best {
			indices = append(indices, i)
		}
	}
	return best, indices
}

// ArgMax returns the index of the first maximum value in values. A NaN
// is larger than any other value, so the index of the first NaN is
// returned if values contains one. ArgMax panics if values is empty.
func ArgMax(values []float64) int {
	return arg(values, func(a, b float64) bool { return a > b })
}

// ArgMin returns the index of the first minimum value in values. A NaN
// is smaller than any other value, so the index of the first NaN is
// returned if values contains one. ArgMin panics if values is empty.
func ArgMin(values []float64) int {
	return arg(values, func(a, b float64) bool { return a < b })
}

func arg(values []float64, better func(a, b float64) bool) int {
	if len(values) == 0 {
		panic("arg: empty slice")
	}

	best := 0
	for i, value := range values {
		if math.IsNaN(value) {
			return i
		}
		if better(value, values[best]) {
			best = i
		}
	}
	return best
}

// Interval returns the smallest interval containing all values. NaN
// values are ignored, so if every value is NaN then Min > Max. Interval
// panics if values is empty.
func Interval(values []float64) r1.Interval {
	if len(values) == 0 {
		panic("interval: empty slice")
	}

	i := r1.Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, value := range values {
		if math.IsNaN(value) {
			continue
		}
		i.Min = math.Min(i.Min, value)
		i.Max = math.Max(i.Max, value)
	}
	return i
}
