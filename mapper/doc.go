// Package mapper converts relational type descriptors into Avro schemas.
//
// MapType is the entry point. It returns github.com/hamba/avro/v2 schema
// nodes, ready for hamba encoders and decoders. Scalar types go through a
// fixed lookup table, arrays are mapped recursively, and every other shape
// (records, maps, multisets, dynamic records) is rejected:
//
//	BOOLEAN        -> boolean
//	TINYINT        -> int
//	INTEGER        -> int
//	BIGINT         -> long
//	FLOAT          -> float
//	DOUBLE         -> double
//	VARCHAR, CHAR  -> string
//	BINARY         -> bytes
//	NULL           -> null
//	ANY            -> bytes
//	T ARRAY        -> {"type":"array","items":T}
//
// There is no fallback mapping. Unknown shapes fail with ErrUnsupportedRelType,
// scalar names outside the table fail with ErrUnsupportedSQLType. A nil
// descriptor is a programming error and panics with ErrNilType.
//
// All functions are pure and safe for concurrent use.
package mapper
