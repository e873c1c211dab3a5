// Package intutils provides utilities for working with ints
package intutils

// Min calculates and returns the minimum integer in a list
func Min(ints ...int) int {
	min := ints[0]
	for _, val := range ints {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum int in a list
func Max(ints ...int) int {
	max := ints[0]
	for _, val := range ints {
		if val > max {
			max = val
		}
	}
	return max
}

// Clamp clamps value to within [min, max]
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FloorDiv returns the largest integer q such that q <= a/b.
//
// Unlike the / operator, which truncates toward zero, the result is
// rounded toward negative infinity for any combination of signs. FloorDiv
// panics if b is 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CeilDiv returns the smallest integer q such that q >= a/b, for any
// combination of signs. CeilDiv panics if b is 0.
func CeilDiv(a, b int) int {
	return -FloorDiv(-a, b)
}
