package mapper

import (
	"github.com/hamba/avro/v2"

	"rel2avro/reltype"
)

// basicToAvro returns the Avro type of a scalar name, "" when there is none.
func basicToAvro(name reltype.SQLTypeName) avro.Type {
	switch name {
	case reltype.Boolean:
		return avro.Boolean
	case reltype.TinyInt, reltype.Integer:
		return avro.Int
	case reltype.BigInt:
		return avro.Long
	case reltype.Float:
		return avro.Float
	case reltype.Double:
		return avro.Double
	case reltype.Varchar, reltype.Char:
		return avro.String
	case reltype.Binary:
		return avro.Bytes
	case reltype.Null:
		return avro.Null
	case reltype.Any:
		return avro.Bytes
	default:
		return ""
	}
}

func mapBasic(b *reltype.Basic) (avro.Schema, error) {
	t := basicToAvro(b.Name())
	if t == "" {
		return nil, ErrUnsupportedSQLType.New(b.Name())
	}

	return avro.NewPrimitiveSchema(t, nil), nil
}

// SupportedSQLTypeNames lists the scalar names MapType accepts, in declaration order.
func SupportedSQLTypeNames() []reltype.SQLTypeName {
	var names []reltype.SQLTypeName
	for n := reltype.SQLTypeName(1); int(n) < reltype.SQLTypeNameTotal; n++ {
		if basicToAvro(n) != "" {
			names = append(names, n)
		}
	}

	return names
}
