package slice

import (
	"fmt"

	"github.com/samuelfneumann/goslice/utils/intutils"
)

// Indexer is a slice descriptor resolved against a dimension of known
// length. It translates the logical indices of a view, in [0, Size()),
// into physical offsets in the storage of the dimension.
//
// Start, End and Step make every Indexer a gorgonia tensor.Slice.
type Indexer interface {
	// Start returns the first offset visited
	Start() int

	// End returns the exclusive offset the descriptor stops at
	End() int

	// Step returns the step between offsets
	Step() int

	// Size returns the number of offsets visited
	Size() int

	// Get returns the offset of logical index i. The result is only
	// meaningful for i in [0, Size()).
	Get(i int) int
}

// Normalize resolves d against a dimension of length n, returning a
// Normalized for a Slice and a ContiguousNormalized for a Contiguous.
// Normalize panics if n < 0.
func Normalize(d Descriptor, n int) Indexer {
	return d.normalize(n)
}

// Normalized is a Slice resolved against a dimension of known length. The
// zero value is the empty range.
type Normalized struct {
	lower, upper, step int
}

// NewNormalized returns a new Normalized visiting lower, lower+step, ...
// up to but excluding upper. NewNormalized panics if step is 0.
func NewNormalized(lower, upper, step int) Normalized {
	if step == 0 {
		panic("newNormalized: step cannot be 0")
	}
	return Normalized{lower: lower, upper: upper, step: step}
}

// Start returns the lower bound
func (n Normalized) Start() int {
	return n.lower
}

// End returns the upper bound
func (n Normalized) End() int {
	return n.upper
}

// Step returns the step
func (n Normalized) Step() int {
	if n.step == 0 {
		return 1
	}
	return n.step
}

// Size returns the number of offsets visited
func (n Normalized) Size() int {
	return length(n.lower, n.upper, n.Step())
}

// Get returns the offset of logical index i
func (n Normalized) Get(i int) int {
	return n.lower + i*n.Step()
}

// Compose returns the Normalized equivalent to applying inner, normalized
// against n.Size(), to the view described by n
func (n Normalized) Compose(inner Normalized) Normalized {
	step := n.Step()
	return Normalized{
		lower: n.lower + step*inner.lower,
		upper: n.lower + step*inner.upper,
		step:  step * inner.Step(),
	}
}

// Slice returns a Slice which, normalized against the dimension n was
// normalized against, visits the same offsets. If n was returned by
// Slice.Normalize, the Slice normalizes back to n exactly.
func (n Normalized) Slice() Slice {
	step := n.Step()
	if n.Size() == 0 {
		lower := intutils.Max(n.lower, 0)
		return Slice{lower: At(lower), upper: At(lower), step: step}
	}

	// For a negative step, every stop below 0 means "through index 0"
	upper := At(n.upper)
	if step < 0 && n.upper < 0 {
		upper = Unbounded
	}
	return Slice{lower: At(n.lower), upper: upper, step: step}
}

// String returns the Normalized as a Python range
func (n Normalized) String() string {
	return fmt.Sprintf("range(%d, %d, %d)", n.lower, n.upper, n.Step())
}

// ContiguousNormalized is a Contiguous resolved against a dimension of
// known length. The zero value is the empty range.
type ContiguousNormalized struct {
	lower, upper int
}

// NewContiguousNormalized returns a new ContiguousNormalized visiting
// lower, lower+1, ... up to but excluding upper
func NewContiguousNormalized(lower, upper int) ContiguousNormalized {
	return ContiguousNormalized{lower: lower, upper: upper}
}

// Start returns the lower bound
func (c ContiguousNormalized) Start() int {
	return c.lower
}

// End returns the upper bound
func (c ContiguousNormalized) End() int {
	return c.upper
}

// Step returns the step, which is always 1
func (c ContiguousNormalized) Step() int {
	return 1
}

// Size returns the number of offsets visited
func (c ContiguousNormalized) Size() int {
	return intutils.Max(0, c.upper-c.lower)
}

// Get returns the offset of logical index i
func (c ContiguousNormalized) Get(i int) int {
	return c.lower + i
}

// Compose returns the ContiguousNormalized equivalent to applying inner,
// normalized against c.Size(), to the view described by c
func (c ContiguousNormalized) Compose(
	inner ContiguousNormalized) ContiguousNormalized {
	return ContiguousNormalized{
		lower: c.lower + inner.lower,
		upper: c.lower + inner.upper,
	}
}

// Contiguous returns a Contiguous which, normalized against the dimension
// c was normalized against, visits the same offsets. If c was returned by
// Contiguous.Normalize, the Contiguous normalizes back to c exactly.
func (c ContiguousNormalized) Contiguous() Contiguous {
	if c.Size() == 0 {
		lower := intutils.Max(c.lower, 0)
		return Contiguous{lower: lower, upper: At(lower)}
	}
	return Contiguous{lower: c.lower, upper: At(c.upper)}
}

// String returns the ContiguousNormalized as a Python range
func (c ContiguousNormalized) String() string {
	return fmt.Sprintf("range(%d, %d)", c.lower, c.upper)
}

// ComposeIndexers returns the Indexer equivalent to applying inner to the
// view described by outer, where inner has been normalized against
// outer.Size(). Unlike Compose, ComposeIndexers never fails. The result
// is a ContiguousNormalized if both outer and inner are.
func ComposeIndexers(outer, inner Indexer) Indexer {
	if o, ok := outer.(ContiguousNormalized); ok {
		if i, ok := inner.(ContiguousNormalized); ok {
			return o.Compose(i)
		}
	}

	step := outer.Step()
	return Normalized{
		lower: outer.Start() + step*inner.Start(),
		upper: outer.Start() + step*inner.End(),
		step:  step * inner.Step(),
	}
}

// Denormalize returns a Descriptor which visits the same offsets as idx
// on the dimension idx was normalized against
func Denormalize(idx Indexer) Descriptor {
	switch i := idx.(type) {
	case ContiguousNormalized:
		return i.Contiguous()
	case Normalized:
		return i.Slice()
	}
	return Normalized{lower: idx.Start(), upper: idx.End(),
		step: idx.Step()}.Slice()
}

// length returns the number of indices in range(lower, upper, step)
func length(lower, upper, step int) int {
	return intutils.Max(0, intutils.CeilDiv(upper-lower, step))
}
