package spec

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/slice"
)

// Type describes the different types of descriptors which can be
// configured. Type is used to implement a basic type system of
// descriptor configurations.
type Type string

// Available descriptor types
const (
	Expr       Type = "Expr"
	Slice      Type = "Slice"
	Contiguous Type = "Contiguous"
)

// Config implements a slice descriptor configuration and can be used to
// create the described descriptor
type Config interface {
	// Create returns the descriptor that the Config describes
	Create() (slice.Descriptor, error)

	// Type returns the type of descriptor that is returned
	Type() Type
}

// ExprConfig configures a descriptor written in slice notation, e.g. "2:8"
// or "::-1"
type ExprConfig struct {
	Expr string
}

// Create returns the descriptor parsed from the expression
func (e ExprConfig) Create() (slice.Descriptor, error) {
	return slice.Parse(e.Expr)
}

// Type returns the type of the configuration
func (e ExprConfig) Type() Type {
	return Expr
}

// SliceConfig configures a slice.Slice. Nil fields are unbounded.
type SliceConfig struct {
	Lower, Upper, Step *int
}

// Create returns the configured Slice
func (s SliceConfig) Create() (slice.Descriptor, error) {
	return slice.New(bound(s.Lower), bound(s.Upper), bound(s.Step))
}

// Type returns the type of the configuration
func (s SliceConfig) Type() Type {
	return Slice
}

// ContiguousConfig configures a slice.Contiguous. Nil fields are
// unbounded.
type ContiguousConfig struct {
	Lower, Upper *int
}

// Create returns the configured Contiguous
func (c ContiguousConfig) Create() (slice.Descriptor, error) {
	return slice.NewContiguous(bound(c.Lower), bound(c.Upper)), nil
}

// Type returns the type of the configuration
func (c ContiguousConfig) Type() Type {
	return Contiguous
}

func bound(v *int) slice.Bound {
	if v == nil {
		return slice.Unbounded
	}
	return slice.At(*v)
}

// Descriptor wraps a descriptor Config so that it can be JSON marshalled
// and unmarshalled. A Descriptor unmarshals either from an object holding
// its Type and Config or from a string in slice notation.
type Descriptor struct {
	Type
	Config
}

// NewDescriptor returns a new Descriptor wrapping c
func NewDescriptor(c Config) Descriptor {
	return Descriptor{Type: c.Type(), Config: c}
}

// String implements the fmt.Stringer interface
func (d Descriptor) String() string {
	return fmt.Sprintf("{%v Descriptor: %v}", d.Type, d.Config)
}

// UnmarshalJSON implements the json.Unmarshaller interface
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var expr string
	if err := json.Unmarshal(data, &expr); err == nil {
		*d = NewDescriptor(ExprConfig{Expr: expr})
		return nil
	}

	config, typeName, err := unmarshalConfig(
		data,
		"Type",
		"Config",
		map[string]reflect.Type{
			string(Expr):       reflect.TypeOf(ExprConfig{}),
			string(Slice):      reflect.TypeOf(SliceConfig{}),
			string(Contiguous): reflect.TypeOf(ContiguousConfig{}),
		})
	if err != nil {
		return err
	}

	d.Type = typeName
	d.Config = config
	return nil
}

// unmarshalConfig uses reflection to unmarshall a Config into its
// concrete type. Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJsonField, valueJsonField string,
	customTypes map[string]reflect.Type) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", errors.Wrap(err, "unmarshalConfig")
	}

	var typeName string
	if err := json.Unmarshal(m[typeJsonField], &typeName); err != nil {
		return nil, "", errors.Wrapf(err, "unmarshalConfig: field %v",
			typeJsonField)
	}

	ty, found := customTypes[typeName]
	if !found {
		return nil, "", errors.Errorf("unmarshalConfig: no such type %q",
			typeName)
	}
	value := reflect.New(ty).Interface()

	if raw, ok := m[valueJsonField]; ok {
		if err := json.Unmarshal(raw, value); err != nil {
			return nil, "", errors.Wrapf(err, "unmarshalConfig: %v",
				typeName)
		}
	}
	concreteValue := reflect.ValueOf(value).Elem().Interface().(Config)

	return concreteValue, Type(typeName), nil
}
