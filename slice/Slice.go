// Package slice implements a lazy algebra of slice descriptors over
// linear, indexable storage.
//
// A descriptor describes the indices a slicing expression such as a[2:8]
// or a[::-1] visits. Slicing an already sliced view composes the two
// descriptors into a single descriptor on the original storage, so that a
// chain of slicing operations never materializes intermediate elements and
// never needs the length of the storage:
//
//	d, err := slice.Compose(outer, inner)
//
// Once the length of the storage is known, the descriptor is normalized
// against it, resolving absent and negative bounds into concrete indices.
// The normalized descriptor then translates logical indices of the view
// into physical offsets in the storage:
//
//	idx := slice.Normalize(d, len(data))
//	for i := 0; i < idx.Size(); i++ {
//		fmt.Println(data[idx.Get(i)])
//	}
//
// Two kinds of descriptors exist: Slice, with optional bounds and any
// non-zero step, and Contiguous, a unit-step specialization with a
// concrete lower bound. Their normalized counterparts are Normalized and
// ContiguousNormalized. Normalization follows the semantics of Python
// slicing exactly.
//
// Composition is exact for every length of the dimension for which the
// outer descriptor and the inner descriptor are in bounds (see InBounds).
// Some compositions of strided slices cannot be resolved without the length
// of the dimension, in which case ErrUnsupportedComposition is returned.
package slice

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/utils/intutils"
)

// Descriptor is an unnormalized slice descriptor, either a Slice or a
// Contiguous.
type Descriptor interface {
	// Step returns the step of the descriptor
	Step() int

	// InBounds returns whether the descriptor can be applied to a
	// dimension of length n without any of its bounds being clamped
	InBounds(n int) bool

	// Size returns the number of indices the descriptor visits, if this
	// can be determined without the length of the dimension
	Size() (int, bool)

	// String returns the descriptor in slice notation
	String() string

	normalize(n int) Indexer
	extent() extent
}

// Slice is a general slice descriptor with optional lower and upper bounds
// and a non-zero step. The zero value is the full slice [::].
type Slice struct {
	lower, upper Bound
	step         int
}

// New returns a new Slice. If step is unbounded, the step defaults to 1.
// A step of 0 is invalid and results in an error.
func New(lower, upper, step Bound) (Slice, error) {
	s := step.Or(1)
	if s == 0 {
		return Slice{}, errors.Wrapf(ErrZeroStep, "new: %v:%v:0", lower,
			upper)
	}
	return Slice{lower: lower, upper: upper, step: s}, nil
}

// Must panics if err is not nil, otherwise it returns s
func Must(s Slice, err error) Slice {
	if err != nil {
		panic(err)
	}
	return s
}

// Lower returns the lower bound of the Slice
func (s Slice) Lower() Bound {
	return s.lower
}

// Upper returns the upper bound of the Slice
func (s Slice) Upper() Bound {
	return s.upper
}

// Step returns the step of the Slice
func (s Slice) Step() int {
	if s.step == 0 {
		return 1
	}
	return s.step
}

// Normalize resolves the Slice against a dimension of length n. Normalize
// panics if n < 0.
func (s Slice) Normalize(n int) Normalized {
	checkLength(n)
	step := s.Step()

	var lower, upper int
	if step > 0 {
		lower = resolve(s.lower, n, step, 0)
		upper = resolve(s.upper, n, step, n)
	} else {
		lower = resolve(s.lower, n, step, n-1)
		upper = resolve(s.upper, n, step, -1)
	}

	lower, upper = canonical(lower, upper, step, n)
	return Normalized{lower: lower, upper: upper, step: step}
}

// InBounds returns whether the Slice can be applied to a dimension of
// length n without any of its bounds being clamped. For a positive step,
// bounds must lie in [-n, n]. For a negative step, the lower bound must
// lie in [-n, n-1] and the upper bound in [-n-1, n-1].
func (s Slice) InBounds(n int) bool {
	if s.Step() > 0 {
		return s.lower.within(-n, n) && s.upper.within(-n, n)
	}
	return s.lower.within(-n, n-1) && s.upper.within(-n-1, n-1)
}

// Size returns the number of indices the Slice visits when both of its
// ends are counted from the same end of the dimension, e.g. [2:8],
// [-3:] or [:-4:-1]. Otherwise, the size depends on the length of the
// dimension and Size returns false. The size is exact for any dimension
// the Slice is in bounds for.
func (s Slice) Size() (int, bool) {
	return s.extent().length()
}

// Compose returns the Slice equivalent to applying inner to the view
// described by s. An error wrapping ErrUnsupportedComposition is returned
// if inner counts from the end of the view while the last index of s
// cannot be determined without the length of the dimension. This happens
// only when the step of s is not ±1.
func (s Slice) Compose(inner Slice) (Slice, error) {
	c, ok := compose(s.extent(), inner.lower, inner.upper, inner.Step())
	if !ok {
		return Slice{}, unsupported(s, inner)
	}
	return c, nil
}

// ComposeContiguous returns the Slice equivalent to applying inner to the
// view described by s. Errors are returned as for Compose.
func (s Slice) ComposeContiguous(inner Contiguous) (Slice, error) {
	c, ok := compose(s.extent(), At(inner.lower), inner.upper, 1)
	if !ok {
		return Slice{}, unsupported(s, inner)
	}
	return c, nil
}

// String returns the Slice in slice notation, e.g. 2:8:1 or ::-1
func (s Slice) String() string {
	return fmt.Sprintf("%v:%v:%d", s.lower, s.upper, s.Step())
}

func (s Slice) normalize(n int) Indexer {
	return s.Normalize(n)
}

func (s Slice) extent() extent {
	return extentOf(s.lower, s.upper, s.Step())
}

// resolve resolves a bound against a dimension of length n for a slice
// with the given step, returning absent if b is unbounded
func resolve(b Bound, n, step, absent int) int {
	v, ok := b.Value()
	if !ok {
		return absent
	}

	if v < 0 {
		v += n
	}
	if step > 0 {
		return intutils.Clamp(v, 0, n)
	}
	return intutils.Clamp(v, -1, n-1)
}

// canonical returns the bounds of an empty range as lower == upper, with
// lower in [0, n] for a positive step and in [-1, n-1] for a negative step.
// Non-empty ranges are returned unchanged.
func canonical(lower, upper, step, n int) (int, int) {
	if length(lower, upper, step) > 0 {
		return lower, upper
	}
	if step < 0 && lower < 0 {
		lower = n - 1
	}
	return lower, lower
}

// checkLength panics if n is not a valid dimension length
func checkLength(n int) {
	if n < 0 {
		panic(fmt.Sprintf("normalize: invalid dimension length %d", n))
	}
}
