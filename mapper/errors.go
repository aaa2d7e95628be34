package mapper

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrNilType is the panic value for a nil descriptor.
	ErrNilType = errors.NewKind("relational type descriptor cannot be nil")
	// ErrUnsupportedRelType is returned for descriptor shapes other than scalars and arrays.
	ErrUnsupportedRelType = errors.NewKind("Unsupported RelDataType: %s")
	// ErrUnsupportedSQLType is returned for scalar names without an Avro mapping.
	ErrUnsupportedSQLType = errors.NewKind("%s is not supported.")
)

// IsUnsupported reports whether err was produced for a type MapType rejects.
func IsUnsupported(err error) bool {
	return ErrUnsupportedRelType.Is(err) || ErrUnsupportedSQLType.Is(err)
}
