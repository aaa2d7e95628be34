// Package typeparse builds relational type descriptors from SQL type text.
//
// Accepted forms (keywords are case-insensitive):
//
//	INTEGER
//	VARCHAR(10)
//	DECIMAL(10, 2)
//	VARCHAR ARRAY              postfix collection, may repeat
//	ARRAY<ARRAY<DOUBLE>>       generic collection
//	MULTISET<INTEGER>
//	MAP<VARCHAR, BIGINT>
//	ROW(id BIGINT, name VARCHAR)
//
// INT and BOOL are accepted as aliases of INTEGER and BOOLEAN.
package typeparse
