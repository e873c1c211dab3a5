// Package tensorutils adapts slice descriptors to gorgonia tensors
package tensorutils

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/slice"
	"gorgonia.org/tensor"
)

// Slice implements a struct that can be used for slicing tensors.
//
// Given a tensor T and a Slice S, T.Slice(..., S, ...) is equivalent to
// T[..., S.start:S.end:S.step, ...]
type Slice struct {
	start, end, step int
}

// Start returns the start index for the tensor slice
func (s Slice) Start() int {
	return s.start
}

// End returns the ending index for the tensor slice
func (s Slice) End() int {
	return s.end
}

// Step returns the step for the tensor slice
func (s Slice) Step() int {
	return s.step
}

// NewSlice returns a new Slice that can be used to slice tensors
func NewSlice(start, stop, step int) Slice {
	return Slice{start, stop, step}
}

// FromIndexer returns the Slice visiting the same offsets as idx. Tensors
// cannot be strided backwards or have an axis of length 0, so an error is
// returned if idx has a negative step or is empty.
func FromIndexer(idx slice.Indexer) (Slice, error) {
	if idx.Step() < 0 {
		return Slice{}, errors.Errorf("fromIndexer: cannot slice a tensor "+
			"with negative step %d", idx.Step())
	}
	if idx.Size() == 0 {
		return Slice{}, errors.Errorf("fromIndexer: cannot slice a tensor "+
			"with empty %v", idx)
	}
	return NewSlice(idx.Start(), idx.End(), idx.Step()), nil
}

// Slices returns the tensor slices which apply d to axis of a tensor with
// the given shape, leaving every other axis whole
func Slices(shape tensor.Shape, axis int, d slice.Descriptor) ([]tensor.Slice,
	error) {
	if axis < 0 || axis >= len(shape) {
		return nil, errors.Errorf("slices: axis %d out of range for shape %v",
			axis, shape)
	}

	s, err := FromIndexer(slice.Normalize(d, shape[axis]))
	if err != nil {
		return nil, errors.Wrapf(err, "slices: [%v] on axis %d", d, axis)
	}

	slices := make([]tensor.Slice, len(shape))
	slices[axis] = s
	return slices, nil
}

// Axis returns the view of t with d applied to axis
func Axis(t tensor.Tensor, axis int, d slice.Descriptor) (tensor.View,
	error) {
	slices, err := Slices(t.Shape(), axis, d)
	if err != nil {
		return nil, err
	}
	return t.Slice(slices...)
}
