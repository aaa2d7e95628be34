// Package diagnostic collects errors, warnings and infos reported while
// mapping column files, keyed by column name.
package diagnostic
