package reltype

import "strings"

//go:generate go tool stringer -type=SQLTypeName -linecomment -output=sqltypename_string.go

// SQLTypeName identifies a scalar SQL type of the planner's type system.
type SQLTypeName int

const (
	_ SQLTypeName = iota // skip zero value, use it as a default (invalid) value for SQLTypeName

	Boolean           // BOOLEAN
	TinyInt           // TINYINT
	SmallInt          // SMALLINT
	Integer           // INTEGER
	BigInt            // BIGINT
	Decimal           // DECIMAL
	Float             // FLOAT
	Real              // REAL
	Double            // DOUBLE
	Date              // DATE
	Time              // TIME
	Timestamp         // TIMESTAMP
	IntervalYearMonth // INTERVAL_YEAR_MONTH
	IntervalDaySecond // INTERVAL_DAY_SECOND
	Char              // CHAR
	Varchar           // VARCHAR
	Binary            // BINARY
	Varbinary         // VARBINARY
	Null              // NULL
	Any               // ANY
	Symbol            // SYMBOL
	Geometry          // GEOMETRY

	// SQLTypeNameTotal is a constant that represents the total number of names defined
	SQLTypeNameTotal = int(iota)
)

// IsValid reports whether n is one of the declared names.
func (n SQLTypeName) IsValid() bool {
	return n > 0 && int(n) < SQLTypeNameTotal
}

// AllowsPrecision reports whether a precision may follow the name, e.g. VARCHAR(10).
func (n SQLTypeName) AllowsPrecision() bool {
	switch n {
	default:
		return false
	case Decimal, Char, Varchar, Binary, Varbinary, Time, Timestamp:
		return true
	}
}

// AllowsScale reports whether a scale may follow the precision, e.g. DECIMAL(10, 2).
func (n SQLTypeName) AllowsScale() bool {
	return n == Decimal
}

// ParseSQLTypeName looks a name up ignoring case.
func ParseSQLTypeName(s string) (SQLTypeName, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for n := SQLTypeName(1); int(n) < SQLTypeNameTotal; n++ {
		if n.String() == s {
			return n, true
		}
	}

	return 0, false
}
