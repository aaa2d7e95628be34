package columns

import (
	"github.com/hamba/avro/v2"

	"rel2avro/reltype"
)

// File is the root of a column file.
type File struct {
	Version string   `yaml:"version"`
	Name    string   `yaml:"name,omitempty"`
	Columns []Column `yaml:"columns"`
}

// Column is one named column with its SQL type text.
type Column struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Result is a successfully mapped column.
type Result struct {
	Column Column
	Type   reltype.Type
	Schema avro.Schema
}
