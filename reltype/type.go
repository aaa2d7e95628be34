package reltype

import (
	"fmt"
	"reflect"
	"strings"
)

// NoPrecision marks a Basic type declared without precision or scale.
const NoPrecision = -1

// Type is a node of a relational type tree.
//
// The set of implementations is closed: Basic, Array, Multiset, Map, Record
// and DynamicRecord. Trees are immutable once built.
type Type interface {
	// String returns the type digest, e.g. "VARCHAR(10) ARRAY".
	String() string
	// Component returns the element type of a collection, or nil.
	Component() Type

	relType()
}

// Basic is a scalar type such as INTEGER or DECIMAL(10, 2).
type Basic struct {
	name      SQLTypeName
	precision int
	scale     int
}

// NewBasic returns a scalar type without precision.
func NewBasic(name SQLTypeName) *Basic {
	return NewBasicWithPrecisionScale(name, NoPrecision, NoPrecision)
}

// NewBasicWithPrecision returns a scalar type like VARCHAR(10).
func NewBasicWithPrecision(name SQLTypeName, precision int) *Basic {
	return NewBasicWithPrecisionScale(name, precision, NoPrecision)
}

// NewBasicWithPrecisionScale returns a scalar type like DECIMAL(10, 2).
// It panics when name is invalid or does not accept the given precision or scale.
func NewBasicWithPrecisionScale(name SQLTypeName, precision, scale int) *Basic {
	if !name.IsValid() {
		panic("invalid sql type name: " + name.String())
	}

	if precision != NoPrecision && !name.AllowsPrecision() {
		panic(fmt.Sprintf("%s does not accept a precision", name))
	}

	if scale != NoPrecision && (!name.AllowsScale() || precision == NoPrecision) {
		panic(fmt.Sprintf("%s does not accept a scale", name))
	}

	return &Basic{name: name, precision: precision, scale: scale}
}

// Name returns the scalar type name.
func (b *Basic) Name() SQLTypeName { return b.name }

// Precision returns the declared precision or NoPrecision.
func (b *Basic) Precision() int { return b.precision }

// Scale returns the declared scale or NoPrecision.
func (b *Basic) Scale() int { return b.scale }

func (b *Basic) Component() Type { return nil }

func (b *Basic) String() string {
	switch {
	case b.precision == NoPrecision:
		return b.name.String()
	case b.scale == NoPrecision:
		return fmt.Sprintf("%s(%d)", b.name, b.precision)
	default:
		return fmt.Sprintf("%s(%d, %d)", b.name, b.precision, b.scale)
	}
}

func (*Basic) relType() {}

// Array is an ordered collection of a component type.
type Array struct {
	component Type
}

// NewArray panics if component is nil.
func NewArray(component Type) *Array {
	if IsNil(component) {
		panic("array component type cannot be nil")
	}

	return &Array{component: component}
}

func (a *Array) Component() Type { return a.component }

func (a *Array) String() string { return a.component.String() + " ARRAY" }

func (*Array) relType() {}

// Multiset is an unordered collection of a component type.
type Multiset struct {
	component Type
}

// NewMultiset panics if component is nil.
func NewMultiset(component Type) *Multiset {
	if IsNil(component) {
		panic("multiset component type cannot be nil")
	}

	return &Multiset{component: component}
}

func (m *Multiset) Component() Type { return m.component }

func (m *Multiset) String() string { return m.component.String() + " MULTISET" }

func (*Multiset) relType() {}

// Map associates keys of one type with values of another.
type Map struct {
	key   Type
	value Type
}

// NewMap panics if either side is nil.
func NewMap(key, value Type) *Map {
	if IsNil(key) || IsNil(value) {
		panic("map key and value types cannot be nil")
	}

	return &Map{key: key, value: value}
}

func (m *Map) Key() Type   { return m.key }
func (m *Map) Value() Type { return m.value }

func (m *Map) Component() Type { return nil }

func (m *Map) String() string {
	return fmt.Sprintf("(%s, %s) MAP", m.key, m.value)
}

func (*Map) relType() {}

// Field is a named member of a Record.
type Field struct {
	Name string
	Type Type
}

// Record is a row type with named fields.
type Record struct {
	fields []Field
}

// NewRecord copies fields. It panics on a field without a type.
func NewRecord(fields ...Field) *Record {
	for _, f := range fields {
		if IsNil(f.Type) {
			panic("record field " + f.Name + " has no type")
		}
	}

	return &Record{fields: append([]Field(nil), fields...)}
}

// Fields returns a copy of the record fields.
func (r *Record) Fields() []Field { return append([]Field(nil), r.fields...) }

func (r *Record) Component() Type { return nil }

func (r *Record) String() string {
	parts := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		parts = append(parts, f.Type.String()+" "+f.Name)
	}

	return "RecordType(" + strings.Join(parts, ", ") + ")"
}

func (*Record) relType() {}

// DynamicRecord is a row whose fields are discovered while planning.
type DynamicRecord struct{}

func NewDynamicRecord() *DynamicRecord { return &DynamicRecord{} }

func (*DynamicRecord) Component() Type { return nil }

func (*DynamicRecord) String() string { return "DynamicRecordRow" }

func (*DynamicRecord) relType() {}

// Depth returns how many collection levels wrap the leaf type of t.
func Depth(t Type) (depth int, leaf Type) {
	depth, leaf = 0, t
	for leaf != nil && leaf.Component() != nil {
		depth++
		leaf = leaf.Component()
	}

	return
}

// IsNil reports whether t is nil or a typed nil pointer.
func IsNil(t Type) bool {
	if t == nil {
		return true
	}

	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// HasNil reports whether t or any type nested in it is nil. Zero-value
// collections built without their constructors have nil members.
func HasNil(t Type) bool {
	if IsNil(t) {
		return true
	}

	switch v := t.(type) {
	case *Array, *Multiset:
		return HasNil(v.Component())
	case *Map:
		return HasNil(v.key) || HasNil(v.value)
	case *Record:
		for _, f := range v.fields {
			if HasNil(f.Type) {
				return true
			}
		}
	}

	return false
}
