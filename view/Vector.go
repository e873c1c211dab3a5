// Package view implements lazily sliced views of float64 vectors.
//
// Slicing a Vector never copies its elements. Instead, the descriptors of
// consecutive slicing operations are composed into a single descriptor on
// the underlying data, so that a view of a view of a view costs a single
// offset computation per element access:
//
//	v := view.New(data)
//	w := v.Slice(window).Slice(reverse)
//	w.SetVec(0, 1) // writes to data
//
// A Vector implements gonum's mat.Vector.
package view

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/slice"
	"github.com/samuelfneumann/goslice/utils/floatutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat"
)

// ErrEmpty is returned by reductions which are undefined on an empty view
var ErrEmpty = errors.New("empty view")

var _ mat.Vector = (*Vector)(nil)

// Vector is a view of a float64 slice through a single slice descriptor.
// Vectors sliced from the same data share it.
type Vector struct {
	base []float64

	// desc describes the view on base, idx is desc normalized against
	// len(base)
	desc slice.Descriptor
	idx  slice.Indexer
}

// New returns a new Vector viewing all of data
func New(data []float64) *Vector {
	return newVector(data, slice.Contiguous{})
}

func newVector(base []float64, d slice.Descriptor) *Vector {
	return &Vector{
		base: base,
		desc: d,
		idx:  slice.Normalize(d, len(base)),
	}
}

// Slice returns the view of v described by d. Slice never fails: if the
// descriptors cannot be composed symbolically, they are composed against
// the known length of the data instead.
func (v *Vector) Slice(d slice.Descriptor) *Vector {
	return newVector(v.base, slice.ComposeLength(v.desc, d, len(v.base)))
}

// Descriptor returns the descriptor of the view on the underlying data
func (v *Vector) Descriptor() slice.Descriptor {
	return v.desc
}

// Indexer returns the descriptor of the view normalized against the
// length of the underlying data
func (v *Vector) Indexer() slice.Indexer {
	return v.idx
}

// Len returns the number of elements in the view
func (v *Vector) Len() int {
	return v.idx.Size()
}

// AtVec returns element i of the view
func (v *Vector) AtVec(i int) float64 {
	if i < 0 || i >= v.Len() {
		panic(mat.ErrVectorAccess)
	}
	return v.base[v.idx.Get(i)]
}

// SetVec sets element i of the view, and so of the underlying data, to x
func (v *Vector) SetVec(i int, x float64) {
	if i < 0 || i >= v.Len() {
		panic(mat.ErrVectorAccess)
	}
	v.base[v.idx.Get(i)] = x
}

// Dims returns the dimensions of the view as a column vector
func (v *Vector) Dims() (r, c int) {
	return v.Len(), 1
}

// At returns the element at row i of the view as a column vector
func (v *Vector) At(i, j int) float64 {
	if j != 0 {
		panic(mat.ErrColAccess)
	}
	return v.AtVec(i)
}

// T returns the transpose of the view
func (v *Vector) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// Values returns a copy of the elements of the view
func (v *Vector) Values() []float64 {
	values := make([]float64, v.Len())
	for i := range values {
		values[i] = v.base[v.idx.Get(i)]
	}
	return values
}

// VecDense returns a copy of the view as a *mat.VecDense. An empty view
// results in an empty VecDense.
func (v *Vector) VecDense() *mat.VecDense {
	if v.Len() == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(v.Len(), v.Values())
}

// Sum returns the sum of the elements of the view
func (v *Vector) Sum() float64 {
	return floats.Sum(v.Values())
}

// Mean returns the mean of the elements of the view, NaN if empty
func (v *Vector) Mean() float64 {
	return stat.Mean(v.Values(), nil)
}

// ArgMax returns the index in the view of the first maximum element. Any
// NaN is the maximum.
func (v *Vector) ArgMax() (int, error) {
	if v.Len() == 0 {
		return 0, errors.Wrap(ErrEmpty, "argMax")
	}
	return floatutils.ArgMax(v.Values()), nil
}

// ArgMin returns the index in the view of the first minimum element. Any
// NaN is the minimum.
func (v *Vector) ArgMin() (int, error) {
	if v.Len() == 0 {
		return 0, errors.Wrap(ErrEmpty, "argMin")
	}
	return floatutils.ArgMin(v.Values()), nil
}

// Max returns the maximum element of the view and the indices in the
// view of every element equal to it
func (v *Vector) Max() (float64, []int, error) {
	if v.Len() == 0 {
		return 0, nil, errors.Wrap(ErrEmpty, "max")
	}
	max, indices := floatutils.MaxSlice(v.Values())
	return max, indices, nil
}

// Min returns the minimum element of the view and the indices in the
// view of every element equal to it
func (v *Vector) Min() (float64, []int, error) {
	if v.Len() == 0 {
		return 0, nil, errors.Wrap(ErrEmpty, "min")
	}
	min, indices := floatutils.MinSlice(v.Values())
	return min, indices, nil
}

// Interval returns the smallest interval containing the elements of the
// view, ignoring NaNs
func (v *Vector) Interval() (r1.Interval, error) {
	if v.Len() == 0 {
		return r1.Interval{}, errors.Wrap(ErrEmpty, "interval")
	}
	return floatutils.Interval(v.Values()), nil
}

// Clip clips each element of the view, in place, to within interval
func (v *Vector) Clip(interval r1.Interval) {
	for i := 0; i < v.Len(); i++ {
		offset := v.idx.Get(i)
		v.base[offset] = floatutils.ClipInterval(v.base[offset], interval)
	}
}
