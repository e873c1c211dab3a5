package slice

import "fmt"

// Contiguous is a unit-step slice descriptor with a concrete lower bound
// and an optional upper bound, e.g. a[2:8] or a[-3:]. It describes the
// common contiguous window without the stride arithmetic of a Slice. The
// zero value is the full slice [:].
type Contiguous struct {
	lower int
	upper Bound
}

// NewContiguous returns a new Contiguous. An unbounded lower bound is 0.
func NewContiguous(lower, upper Bound) Contiguous {
	return Contiguous{lower: lower.Or(0), upper: upper}
}

// Lower returns the lower bound of the Contiguous
func (c Contiguous) Lower() int {
	return c.lower
}

// Upper returns the upper bound of the Contiguous
func (c Contiguous) Upper() Bound {
	return c.upper
}

// Step returns the step of the Contiguous, which is always 1
func (c Contiguous) Step() int {
	return 1
}

// Slice returns the Contiguous as a general Slice
func (c Contiguous) Slice() Slice {
	return Slice{lower: At(c.lower), upper: c.upper, step: 1}
}

// Normalize resolves the Contiguous against a dimension of length n.
// Normalize panics if n < 0.
func (c Contiguous) Normalize(n int) ContiguousNormalized {
	checkLength(n)
	lower := resolve(At(c.lower), n, 1, 0)
	upper := resolve(c.upper, n, 1, n)
	if upper < lower {
		upper = lower
	}
	return ContiguousNormalized{lower: lower, upper: upper}
}

// InBounds returns whether both bounds of the Contiguous lie in [-n, n]
func (c Contiguous) InBounds(n int) bool {
	return c.lower >= -n && c.lower <= n && c.upper.within(-n, n)
}

// Size returns the number of indices the Contiguous visits when both of
// its bounds are counted from the same end of the dimension. Otherwise,
// Size returns false.
func (c Contiguous) Size() (int, bool) {
	return c.extent().length()
}

// Compose returns the Contiguous equivalent to applying inner to the view
// described by c. Contiguous descriptors always compose.
func (c Contiguous) Compose(inner Contiguous) Contiguous {
	// Unit-step extents always resolve their tail
	r, _ := compose(c.extent(), At(inner.lower), inner.upper, 1)
	lower, _ := r.lower.Value()
	return Contiguous{lower: lower, upper: r.upper}
}

// ComposeSlice returns the Slice equivalent to applying inner to the view
// described by c. Since c has a unit step, the composition always
// succeeds.
func (c Contiguous) ComposeSlice(inner Slice) Slice {
	r, _ := compose(c.extent(), inner.lower, inner.upper, inner.Step())
	return r
}

// String returns the Contiguous in slice notation, e.g. 2:8 or -3:
func (c Contiguous) String() string {
	if c.lower == 0 {
		return fmt.Sprintf(":%v", c.upper)
	}
	return fmt.Sprintf("%d:%v", c.lower, c.upper)
}

func (c Contiguous) normalize(n int) Indexer {
	return c.Normalize(n)
}

func (c Contiguous) extent() extent {
	return extentOf(At(c.lower), c.upper, 1)
}
