package reltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typ      *Basic
		expected string
	}{
		{"plain", NewBasic(Integer), "INTEGER"},
		{"precision", NewBasicWithPrecision(Varchar, 10), "VARCHAR(10)"},
		{"precision and scale", NewBasicWithPrecisionScale(Decimal, 10, 2), "DECIMAL(10, 2)"},
		{"underscored name", NewBasic(IntervalYearMonth), "INTERVAL_YEAR_MONTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
			assert.Nil(t, tt.typ.Component())
		})
	}
}

func TestBasicPreconditions(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewBasic(0) })
	assert.Panics(t, func() { NewBasic(SQLTypeName(SQLTypeNameTotal)) })
	assert.Panics(t, func() { NewBasicWithPrecision(Integer, 4) })
	assert.Panics(t, func() { NewBasicWithPrecisionScale(Varchar, 10, 2) })
	assert.Panics(t, func() { NewBasicWithPrecisionScale(Decimal, NoPrecision, 2) })
}

func TestCollectionDigests(t *testing.T) {
	t.Parallel()

	varchar := NewBasicWithPrecision(Varchar, 5)
	integer := NewBasic(Integer)

	assert.Equal(t, "VARCHAR(5) ARRAY", NewArray(varchar).String())
	assert.Equal(t, "DOUBLE ARRAY ARRAY", NewArray(NewArray(NewBasic(Double))).String())
	assert.Equal(t, "INTEGER MULTISET", NewMultiset(integer).String())
	assert.Equal(t, "(VARCHAR(5), INTEGER) MAP", NewMap(varchar, integer).String())
	assert.Equal(t, "RecordType(INTEGER id, VARCHAR(5) name)",
		NewRecord(Field{Name: "id", Type: integer}, Field{Name: "name", Type: varchar}).String())
	assert.Equal(t, "DynamicRecordRow", NewDynamicRecord().String())

	assert.Panics(t, func() { NewArray(nil) })
	assert.Panics(t, func() { NewMultiset(nil) })
	assert.Panics(t, func() { NewMap(integer, nil) })
	assert.Panics(t, func() { NewRecord(Field{Name: "broken"}) })
}

func TestRecordFieldsAreCopied(t *testing.T) {
	t.Parallel()

	fields := []Field{{Name: "id", Type: NewBasic(BigInt)}}
	rec := NewRecord(fields...)
	fields[0].Name = "changed"

	got := rec.Fields()
	require.Len(t, got, 1)
	assert.Equal(t, "id", got[0].Name)

	got[0].Name = "changed again"
	assert.Equal(t, "id", rec.Fields()[0].Name)
}

func TestDepth(t *testing.T) {
	t.Parallel()

	leaf := NewBasic(Double)

	depth, got := Depth(leaf)
	assert.Equal(t, 0, depth)
	assert.Same(t, leaf, got)

	depth, got = Depth(NewArray(NewMultiset(NewArray(leaf))))
	assert.Equal(t, 3, depth)
	assert.Same(t, leaf, got)

	depth, got = Depth(nil)
	assert.Equal(t, 0, depth)
	assert.Nil(t, got)
}

func TestConstructorsRejectTypedNil(t *testing.T) {
	t.Parallel()

	var nilBasic *Basic
	integer := NewBasic(Integer)

	assert.Panics(t, func() { NewArray(nilBasic) })
	assert.Panics(t, func() { NewMultiset(nilBasic) })
	assert.Panics(t, func() { NewMap(integer, (*Array)(nil)) })
	assert.Panics(t, func() { NewRecord(Field{Name: "a", Type: nilBasic}) })
}

func TestHasNil(t *testing.T) {
	t.Parallel()

	integer := NewBasic(Integer)

	assert.True(t, HasNil(nil))
	assert.True(t, HasNil((*Record)(nil)))
	assert.True(t, HasNil(&Multiset{}))
	assert.True(t, HasNil(&Map{key: integer}))
	assert.True(t, HasNil(NewArray(NewArray(&Array{}))))
	assert.True(t, HasNil(NewRecord(Field{Name: "a", Type: &Multiset{}})))

	assert.False(t, HasNil(integer))
	assert.False(t, HasNil(&Record{}))
	assert.False(t, HasNil(NewDynamicRecord()))
	assert.False(t, HasNil(NewMap(integer, NewMultiset(integer))))
	assert.False(t, HasNil(NewRecord(Field{Name: "a", Type: NewArray(integer)})))
}
