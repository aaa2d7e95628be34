package typeparse

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type typeExpr struct {
	Pos      lexer.Position
	Base     *baseExpr `parser:"@@"`
	Suffixes []string  `parser:"@( 'ARRAY' | 'MULTISET' )*"`
}

type baseExpr struct {
	Array    *typeExpr   `parser:"  'ARRAY' '<' @@ '>'"`
	Multiset *typeExpr   `parser:"| 'MULTISET' '<' @@ '>'"`
	Map      *mapExpr    `parser:"| 'MAP' '<' @@ '>'"`
	Row      *rowExpr    `parser:"| 'ROW' '(' @@ ')'"`
	Scalar   *scalarExpr `parser:"| @@"`
}

type mapExpr struct {
	Key   *typeExpr `parser:"@@ ','"`
	Value *typeExpr `parser:"@@"`
}

type rowExpr struct {
	Fields []*rowField `parser:"@@ ( ',' @@ )*"`
}

type rowField struct {
	Name string    `parser:"@Ident"`
	Type *typeExpr `parser:"@@"`
}

type scalarExpr struct {
	Pos    lexer.Position
	Name   string `parser:"@Ident"`
	Params []int  `parser:"( '(' @Int ( ',' @Int )* ')' )?"`
}
