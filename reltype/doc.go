// Package reltype models the relational type descriptors produced by a SQL
// query planner.
//
// A descriptor is a small immutable tree:
//   - Basic: scalar types named by SQLTypeName, optionally with precision/scale
//   - Array and Multiset: collections of a component type
//   - Map: key and value types
//   - Record and DynamicRecord: row types
//
// String renders the planner digest of a type, e.g. "DECIMAL(10, 2)",
// "VARCHAR ARRAY" or "RecordType(INTEGER id, VARCHAR name)".
package reltype
