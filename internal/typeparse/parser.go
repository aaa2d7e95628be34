package typeparse

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"gopkg.in/src-d/go-errors.v1"

	"rel2avro/reltype"
)

var (
	ErrSyntax           = errors.NewKind("cannot parse type %q: %s")
	ErrUnknownTypeName  = errors.NewKind("%s: unknown type name %q")
	ErrInvalidPrecision = errors.NewKind("%s: %s does not accept %d parameter(s)")
	ErrDuplicateField   = errors.NewKind("%s: duplicate row field %q")
)

var aliases = map[string]reltype.SQLTypeName{
	"INT":  reltype.Integer,
	"BOOL": reltype.Boolean,
}

var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[<>(),]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var typeParser = participle.MustBuild[typeExpr](
	participle.Lexer(typeLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

// Parse returns the descriptor described by text.
func Parse(text string) (reltype.Type, error) {
	ast, err := typeParser.ParseString("", text)
	if err != nil {
		return nil, ErrSyntax.New(text, err)
	}

	return ast.build()
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(text string) reltype.Type {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return t
}

func (e *typeExpr) build() (reltype.Type, error) {
	t, err := e.Base.build()
	if err != nil {
		return nil, err
	}

	for _, s := range e.Suffixes {
		if strings.EqualFold(s, "ARRAY") {
			t = reltype.NewArray(t)
		} else {
			t = reltype.NewMultiset(t)
		}
	}

	return t, nil
}

func (b *baseExpr) build() (reltype.Type, error) {
	switch {
	case b.Array != nil:
		c, err := b.Array.build()
		if err != nil {
			return nil, err
		}

		return reltype.NewArray(c), nil

	case b.Multiset != nil:
		c, err := b.Multiset.build()
		if err != nil {
			return nil, err
		}

		return reltype.NewMultiset(c), nil

	case b.Map != nil:
		k, err := b.Map.Key.build()
		if err != nil {
			return nil, err
		}

		v, err := b.Map.Value.build()
		if err != nil {
			return nil, err
		}

		return reltype.NewMap(k, v), nil

	case b.Row != nil:
		return b.Row.build()

	default:
		return b.Scalar.build()
	}
}

func (r *rowExpr) build() (reltype.Type, error) {
	seen := make(map[string]struct{}, len(r.Fields))
	fields := make([]reltype.Field, 0, len(r.Fields))

	for _, f := range r.Fields {
		if _, ok := seen[f.Name]; ok {
			return nil, ErrDuplicateField.New(f.Type.Pos, f.Name)
		}
		seen[f.Name] = struct{}{}

		t, err := f.Type.build()
		if err != nil {
			return nil, err
		}

		fields = append(fields, reltype.Field{Name: f.Name, Type: t})
	}

	return reltype.NewRecord(fields...), nil
}

func (s *scalarExpr) build() (reltype.Type, error) {
	name, ok := lookupName(s.Name)
	if !ok {
		return nil, ErrUnknownTypeName.New(s.Pos, s.Name)
	}

	switch len(s.Params) {
	case 0:
		return reltype.NewBasic(name), nil
	case 1:
		if name.AllowsPrecision() {
			return reltype.NewBasicWithPrecision(name, s.Params[0]), nil
		}
	case 2:
		if name.AllowsScale() {
			return reltype.NewBasicWithPrecisionScale(name, s.Params[0], s.Params[1]), nil
		}
	}

	return nil, ErrInvalidPrecision.New(s.Pos, name, len(s.Params))
}

func lookupName(s string) (reltype.SQLTypeName, bool) {
	if n, ok := aliases[strings.ToUpper(s)]; ok {
		return n, true
	}

	return reltype.ParseSQLTypeName(s)
}
