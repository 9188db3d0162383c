// Package parser recognizes the textual date forms found in catalog cells.
//
// Dates are described by a small participle grammar instead of a list of
// time.Parse layouts, so separators, field order and an optional time of day
// are handled in one place:
//
//	t, err := parser.ParseDate("15.01.2024")
//	// t == 2024-01-15 00:00:00 UTC
//
// Numeric fields are day first unless the first field has four digits.
package parser
