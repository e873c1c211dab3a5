package slice

import "github.com/pkg/errors"

var (
	// ErrUnsupportedComposition is returned when two descriptors cannot be
	// composed without knowing the length of the dimension they slice.
	// Normalize the outer descriptor against the length and compose the
	// normalized descriptors with ComposeIndexers instead.
	ErrUnsupportedComposition = errors.New("composition requires the " +
		"length of the dimension")

	// ErrZeroStep is returned when constructing a Slice with a step of 0
	ErrZeroStep = errors.New("step cannot be 0")
)

// unsupported returns the error for composing inner onto outer
func unsupported(outer, inner Descriptor) error {
	return errors.Wrapf(ErrUnsupportedComposition, "compose: [%v][%v]",
		outer, inner)
}
