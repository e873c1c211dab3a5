// Package op provides Gorgonia graph operations driven by slice
// descriptors.
package op

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/slice"
	"github.com/samuelfneumann/goslice/utils/tensorutils"
	G "gorgonia.org/gorgonia"
)

// Slice slices a node along axis by d. Gorgonia cannot stride backwards,
// so d must normalize to a non-negative step. An axis sliced down to a
// single index is removed from the shape of the result.
func Slice(n *G.Node, axis int, d slice.Descriptor) (*G.Node, error) {
	slices, err := tensorutils.Slices(n.Shape(), axis, d)
	if err != nil {
		return nil, errors.Wrapf(err, "slice: node %v", n.Name())
	}
	return G.Slice(n, slices...)
}

// Chain slices a node along axis by each descriptor in ds in turn. Since
// the length of the axis is known, the chain never fails to compose.
// Intermediate descriptors may have negative steps, as long as the
// composed descriptor does not.
func Chain(n *G.Node, axis int, ds ...slice.Descriptor) (*G.Node, error) {
	shape := n.Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, errors.Errorf("chain: axis %d out of range for shape %v",
			axis, shape)
	}

	var d slice.Descriptor = slice.Contiguous{}
	for _, next := range ds {
		d = slice.ComposeLength(d, next, shape[axis])
	}
	return Slice(n, axis, d)
}

// Prod calculates the product of a Node along an axis
func Prod(input *G.Node, along int) *G.Node {
	column := func(i int) *G.Node {
		c := slice.NewContiguous(slice.At(i), slice.At(i+1))
		return G.Must(Slice(input, along, c))
	}

	prod := column(0)
	for i := 1; i < input.Shape()[along]; i++ {
		prod = G.Must(G.HadamardProd(prod, column(i)))
	}
	return prod
}
