package mapper

import (
	"github.com/hamba/avro/v2"

	"rel2avro/reltype"
)

// MapType returns the Avro schema equivalent to t.
//
// It panics with ErrNilType when t, or any type nested in it, is nil.
// Unsupported types yield an error of kind ErrUnsupportedRelType or
// ErrUnsupportedSQLType and no schema.
func MapType(t reltype.Type) (avro.Schema, error) {
	switch Dispatch(t) {
	case DispatcherBasic:
		return mapBasic(t.(*reltype.Basic))

	case DispatcherArray:
		items, err := MapType(t.Component())
		if err != nil {
			return nil, err
		}

		return avro.NewArraySchema(items), nil

	default:
		if reltype.HasNil(t) {
			panic(ErrNilType.New())
		}

		// TODO: map Record, Map and Multiset once the record naming rules for nested rows are settled.
		return nil, ErrUnsupportedRelType.New(t.String())
	}
}

// IsSupported reports whether MapType would succeed for t. Like MapType, it
// panics on nil input.
func IsSupported(t reltype.Type) bool {
	for {
		switch Dispatch(t) {
		case DispatcherBasic:
			return basicToAvro(t.(*reltype.Basic).Name()) != ""
		case DispatcherArray:
			t = t.Component()
		default:
			if reltype.HasNil(t) {
				panic(ErrNilType.New())
			}

			return false
		}
	}
}
