package mapper

import (
	"rel2avro/reltype"
)

// DispatcherEnum is the descriptor shape MapType branches on.
type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherBasic
	DispatcherArray
)

// Dispatch classifies t by shape. It panics with ErrNilType when t is nil or
// a typed nil pointer.
func Dispatch(t reltype.Type) DispatcherEnum {
	if reltype.IsNil(t) {
		panic(ErrNilType.New())
	}

	switch t.(type) {
	case *reltype.Basic:
		return DispatcherBasic
	case *reltype.Array:
		return DispatcherArray
	default:
		return DispatcherUnknown
	}
}
