package slice

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/utils/intutils"
)

// Compose returns the descriptor equivalent to applying inner to the view
// described by outer:
//
//	Slice      ∘ Slice      -> Slice
//	Slice      ∘ Contiguous -> Slice
//	Contiguous ∘ Slice      -> Slice
//	Contiguous ∘ Contiguous -> Contiguous
//
// For any dimension of length n such that outer.InBounds(n) and
// inner.InBounds(m), where m is the size of outer normalized against n,
// normalizing the result against n visits exactly the offsets that
// normalizing outer against n and inner against m visits.
//
// An error wrapping ErrUnsupportedComposition is returned if the result
// depends on the length of the dimension.
func Compose(outer, inner Descriptor) (Descriptor, error) {
	switch o := outer.(type) {
	case Slice:
		switch i := inner.(type) {
		case Slice:
			return o.Compose(i)
		case Contiguous:
			return o.ComposeContiguous(i)
		}

	case Contiguous:
		switch i := inner.(type) {
		case Slice:
			return o.ComposeSlice(i), nil
		case Contiguous:
			return o.Compose(i), nil
		}
	}
	panic(fmt.Sprintf("compose: cannot compose %T with %T", outer, inner))
}

// ComposeLength returns a descriptor equivalent to applying inner to the
// view described by outer on a dimension of length n. Unlike Compose,
// ComposeLength never fails: the descriptors are composed symbolically
// when the composition is exact for n, otherwise their normalized
// counterparts are composed and the result denormalized. ComposeLength
// panics if n < 0.
func ComposeLength(outer, inner Descriptor, n int) Descriptor {
	o := Normalize(outer, n)
	if outer.InBounds(n) && inner.InBounds(o.Size()) {
		if c, err := Compose(outer, inner); err == nil {
			return c
		}
	}
	return Denormalize(ComposeIndexers(o, Normalize(inner, o.Size())))
}

// Fold composes a chain of descriptors from left to right, each
// descriptor slicing the view described by the previous ones. Folding an
// empty chain returns the full Contiguous.
func Fold(ds ...Descriptor) (Descriptor, error) {
	if len(ds) == 0 {
		return Contiguous{}, nil
	}

	acc := ds[0]
	for i := 1; i < len(ds); i++ {
		var err error
		if acc, err = Compose(acc, ds[i]); err != nil {
			return nil, errors.Wrapf(err, "fold: descriptor %d", i)
		}
	}
	return acc, nil
}

// position is an index on a dimension of unknown length n, counted from
// the start of the dimension or from its end. A position counted from the
// end has a value of n + offset.
type position struct {
	fromEnd bool
	offset  int
}

// shift moves the position by k indices
func (p position) shift(k int) position {
	return position{fromEnd: p.fromEnd, offset: p.offset + k}
}

// bound returns the position as a concrete Bound. It returns false if
// the position lies before the start of every dimension or at or past
// the end of every dimension, in which case no Bound can express it.
func (p position) bound() (Bound, bool) {
	if p.fromEnd != (p.offset >= 0) {
		return At(p.offset), true
	}
	return Unbounded, false
}

// anchor returns the position of b, or absent if b is unbounded
func anchor(b Bound, absent position) position {
	v, ok := b.Value()
	switch {
	case !ok:
		return absent
	case v < 0:
		return position{fromEnd: true, offset: v}
	}
	return position{offset: v}
}

// extent is a descriptor resolved to the first index it visits and the
// index it stops at. Both are exact for any dimension the descriptor is in
// bounds for.
type extent struct {
	first, stop position
	step        int
}

// extentOf returns the extent of a slice with the given bounds and step
func extentOf(lower, upper Bound, step int) extent {
	if step > 0 {
		return extent{
			first: anchor(lower, position{}),
			stop:  anchor(upper, position{fromEnd: true}),
			step:  step,
		}
	}
	return extent{
		first: anchor(lower, position{fromEnd: true, offset: -1}),
		stop:  anchor(upper, position{offset: -1}),
		step:  step,
	}
}

// length returns the number of indices visited. It is known only if
// both ends are counted from the same end of the dimension.
func (e extent) length() (int, bool) {
	if e.first.fromEnd != e.stop.fromEnd {
		return 0, false
	}
	d := e.stop.offset - e.first.offset
	return intutils.Max(0, intutils.CeilDiv(d, e.step)), true
}

// tail returns the position one step past the last index visited. With a
// unit step this is the stop itself whenever any index is visited.
func (e extent) tail() (position, bool) {
	if m, ok := e.length(); ok {
		return e.first.shift(m * e.step), true
	}
	if e.step == 1 || e.step == -1 {
		return e.stop, true
	}
	return position{}, false
}

// index returns the position on the dimension of index j of the view
// described by e. If fromTail is set, j counts from the tail of the view.
func (e extent) index(j int, fromTail bool) (position, bool) {
	if !fromTail {
		return e.first.shift(j * e.step), true
	}
	t, ok := e.tail()
	if !ok {
		return position{}, false
	}
	return t.shift(j * e.step), true
}

// resolve returns the position on the dimension of a bound of a slice of
// the view described by e, where the slice has the given step
func (e extent) resolve(b Bound, lower bool, step int) (position, bool) {
	v, ok := b.Value()
	switch {
	case ok && v >= 0:
		return e.index(v, false)
	case ok:
		return e.index(v, true)
	case lower && step > 0:
		return e.first, true
	case lower:
		return e.index(-1, true)
	case step > 0:
		// Any stop past the last index and no further than one step
		// beyond it is equivalent
		return e.stop, true
	}
	return e.first.shift(-e.step), true
}

// compose returns the Slice equivalent to applying the slice
// lower:upper:step to the view described by e. It returns false if the
// bounds cannot be resolved without the length of the dimension.
func compose(e extent, lower, upper Bound, step int) (Slice, bool) {
	first, ok := e.resolve(lower, true, step)
	if !ok {
		return Slice{}, false
	}
	stop, ok := e.resolve(upper, false, step)
	if !ok {
		return Slice{}, false
	}
	return encode(first, stop, e.step*step), true
}

// encode returns the Slice visiting first, first+step, ... up to stop
func encode(first, stop position, step int) Slice {
	empty := Slice{lower: At(0), upper: At(0), step: step}

	// A first index outside of every dimension is never visited
	lower, ok := first.bound()
	if !ok {
		return empty
	}

	upper, ok := stop.bound()
	if !ok {
		// A stop past the end in the direction of the step is the natural
		// end of the dimension, any other stop visits nothing
		if stop.fromEnd != (step > 0) {
			return empty
		}
		upper = Unbounded
	}
	return Slice{lower: lower, upper: upper, step: step}
}
