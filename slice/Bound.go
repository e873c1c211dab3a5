package slice

import "strconv"

// Bound is one end of a Slice: either a concrete index or unbounded.
// Negative concrete indices count back from the end of a dimension. An
// unbounded end extends to the natural end of a dimension in the direction
// of the step of the Slice.
type Bound struct {
	value   int
	bounded bool
}

// Unbounded is the absent Bound
var Unbounded = Bound{}

// At returns a concrete Bound at index i
func At(i int) Bound {
	return Bound{value: i, bounded: true}
}

// Value returns the index of the Bound and whether the Bound is concrete.
// The index is 0 for an unbounded Bound.
func (b Bound) Value() (int, bool) {
	return b.value, b.bounded
}

// Or returns the index of the Bound, or def if the Bound is unbounded
func (b Bound) Or(def int) int {
	if !b.bounded {
		return def
	}
	return b.value
}

// within returns whether b is unbounded or in [min, max]
func (b Bound) within(min, max int) bool {
	return !b.bounded || (b.value >= min && b.value <= max)
}

// String returns the index as written in slice notation, the empty string
// for an unbounded Bound
func (b Bound) String() string {
	if !b.bounded {
		return ""
	}
	return strconv.Itoa(b.value)
}
