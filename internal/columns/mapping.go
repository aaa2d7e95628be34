package columns

import (
	"fmt"

	"rel2avro/internal/diagnostic"
	"rel2avro/internal/typeparse"
	"rel2avro/mapper"
	"rel2avro/reltype"
)

// Diagnostic codes reported by MapColumns.
const (
	CodeParse       = "parse"
	CodeUnsupported = "unsupported"
	CodePrecision   = "precision"
	CodeMapped      = "mapped"
)

// MapColumns maps every column of f in declaration order. Failed columns are
// left out of the results and reported as error diagnostics; mapped columns
// get an info diagnostic.
func MapColumns(f *File) ([]Result, diagnostic.Diagnostics) {
	var (
		results []Result
		diags   diagnostic.Diagnostics
	)

	for _, c := range f.Columns {
		t, err := typeparse.Parse(c.Type)
		if err != nil {
			diags.AddError(CodeParse, err.Error(), c.Name)
			continue
		}

		s, err := mapper.MapType(t)
		if err != nil {
			d := diags.AddError(CodeUnsupported, err.Error(), c.Name)
			if mapper.ErrUnsupportedSQLType.Is(err) {
				d.Suggestions = supportedNames()
			}
			continue
		}

		if _, leaf := reltype.Depth(t); hasPrecision(leaf) {
			diags.AddWarning(CodePrecision,
				fmt.Sprintf("precision of %s is not kept in the avro schema", leaf), c.Name)
		}

		diags.AddInfo(CodeMapped, fmt.Sprintf("%s -> %s", t, s), c.Name)
		results = append(results, Result{Column: c, Type: t, Schema: s})
	}

	return results, diags
}

func hasPrecision(t reltype.Type) bool {
	b, ok := t.(*reltype.Basic)
	return ok && b.Precision() != reltype.NoPrecision
}

func supportedNames() []string {
	names := mapper.SupportedSQLTypeNames()
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n.String())
	}

	return out
}
