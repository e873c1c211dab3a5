package slice

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses a descriptor written in slice notation, such as "2:8",
// "::-1", "-3::2" or ":". Without a step, the result is a Contiguous.
// With a step, the result is a Slice, e.g. "2:8:1" is a Slice.
func Parse(expr string) (Descriptor, error) {
	parts := strings.Split(strings.TrimSpace(expr), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, errors.Errorf("parse: invalid slice %q", expr)
	}

	bounds := make([]Bound, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			bounds[i] = Unbounded
			continue
		}

		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "parse: invalid bound %q in %q",
				part, expr)
		}
		bounds[i] = At(v)
	}

	if len(bounds) == 2 {
		return NewContiguous(bounds[0], bounds[1]), nil
	}
	if _, ok := bounds[2].Value(); !ok {
		return NewContiguous(bounds[0], bounds[1]), nil
	}

	s, err := New(bounds[0], bounds[1], bounds[2])
	if err != nil {
		return nil, errors.Wrapf(err, "parse: %q", expr)
	}
	return s, nil
}

// ParseAll parses each expression in exprs with Parse
func ParseAll(exprs ...string) ([]Descriptor, error) {
	ds := make([]Descriptor, len(exprs))
	for i, expr := range exprs {
		d, err := Parse(expr)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
