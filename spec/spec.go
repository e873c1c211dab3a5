// Package spec implements JSON serializable specifications of chains of
// slicing operations
package spec

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/slice"
)

// Chain specifies a chain of slicing operations applied, in order, to a
// dimension of length Length. For example:
//
//	{
//		"Length": 10,
//		"Slices": [
//			"2:8",
//			{"Type": "Slice", "Config": {"Step": -1}}
//		]
//	}
type Chain struct {
	Length int
	Slices []Descriptor
}

// NewChain returns a new Chain of the given descriptors
func NewChain(length int, configs ...Config) Chain {
	if length < 0 {
		panic("newChain: length must be non-negative")
	}

	slices := make([]Descriptor, len(configs))
	for i := range configs {
		slices[i] = NewDescriptor(configs[i])
	}
	return Chain{Length: length, Slices: slices}
}

// Load decodes a Chain from r
func Load(r io.Reader) (Chain, error) {
	var c Chain
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Chain{}, errors.Wrap(err, "load")
	}
	if c.Length < 0 {
		return Chain{}, errors.Errorf("load: invalid length %d", c.Length)
	}
	return c, nil
}

// Save encodes the Chain to w
func (c Chain) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return errors.Wrap(enc.Encode(c), "save")
}

// Descriptors returns the descriptors of the chain
func (c Chain) Descriptors() ([]slice.Descriptor, error) {
	ds := make([]slice.Descriptor, len(c.Slices))
	for i, s := range c.Slices {
		if s.Config == nil {
			return nil, errors.Errorf("descriptors: descriptor %d has no "+
				"configuration", i)
		}

		d, err := s.Create()
		if err != nil {
			return nil, errors.Wrapf(err, "descriptors: descriptor %d", i)
		}
		ds[i] = d
	}
	return ds, nil
}

// Fold composes the chain into a single descriptor which does not depend
// on Length
func (c Chain) Fold() (slice.Descriptor, error) {
	ds, err := c.Descriptors()
	if err != nil {
		return nil, err
	}
	return slice.Fold(ds...)
}

// Create returns the chain composed into a single descriptor normalized
// against Length. Descriptors are composed symbolically where the
// composition is exact for Length, otherwise against Length.
func (c Chain) Create() (slice.Indexer, error) {
	if c.Length < 0 {
		return nil, errors.Errorf("create: invalid length %d", c.Length)
	}
	ds, err := c.Descriptors()
	if err != nil {
		return nil, err
	}

	var d slice.Descriptor = slice.Contiguous{}
	for _, next := range ds {
		d = slice.ComposeLength(d, next, c.Length)
	}
	return slice.Normalize(d, c.Length), nil
}
