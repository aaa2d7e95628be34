// Package columns loads YAML column files and maps every column type to an
// Avro schema.
//
// A column file looks like:
//
//	version: "1"
//	name: orders
//	columns:
//	  - name: id
//	    type: BIGINT
//	  - name: tags
//	    type: VARCHAR(32) ARRAY
//
// Column types use the SQL type text accepted by typeparse. A column whose
// type cannot be parsed or mapped is reported as a diagnostic; the remaining
// columns are still mapped.
package columns
