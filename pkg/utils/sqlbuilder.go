package utils

import (
	"strings"
)

// SQLBuilder provides a fluent interface for building the DDL and DML
// statements issued by the importer. Identifiers are quoted with the builder's
// Quote so the same calls render valid SQL for every supported dialect.
//
// Example usage:
//
//	sql := NewSQLBuilder(DoubleQuote).
//		Create("TABLE").
//		Name("products").
//		Columns("id SERIAL PRIMARY KEY", "name TEXT").
//		String()
//	// Output: CREATE TABLE "products" (id SERIAL PRIMARY KEY, name TEXT);
type SQLBuilder struct {
	quote Quote
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder quoting identifiers with q.
func NewSQLBuilder(q Quote) *SQLBuilder {
	return &SQLBuilder{
		quote: q,
		parts: make([]string, 0, 10),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("TABLE") // CREATE TABLE
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// Drop adds a DROP clause with the specified object type.
//
// Example:
//
//	builder.Drop("TABLE") // DROP TABLE
func (b *SQLBuilder) Drop(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "DROP", objectType)
	return b
}

// IfExists adds an IF EXISTS clause. This should be called after DROP operations.
func (b *SQLBuilder) IfExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "EXISTS")
	return b
}

// Name adds a quoted object name.
//
// Example:
//
//	builder.Name("products") // "products"
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, QuoteIdentifier(name, b.quote))
	}
	return b
}

// Columns adds a parenthesized, comma separated list of column definitions.
// Definitions are added verbatim.
func (b *SQLBuilder) Columns(defs ...string) *SQLBuilder {
	if len(defs) > 0 {
		b.parts = append(b.parts, "("+strings.Join(defs, ", ")+")")
	}
	return b
}

// InsertInto adds an INSERT INTO clause for table with the quoted column list.
//
// Example:
//
//	builder.InsertInto("products", "name", "okpd2") // INSERT INTO "products" ("name", "okpd2")
func (b *SQLBuilder) InsertInto(table string, columns ...string) *SQLBuilder {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = QuoteIdentifier(c, b.quote)
	}

	b.parts = append(b.parts, "INSERT", "INTO", QuoteIdentifier(table, b.quote))
	if len(quoted) > 0 {
		b.parts = append(b.parts, "("+strings.Join(quoted, ", ")+")")
	}
	return b
}

// Values adds a VALUES clause built from n placeholders rendered by the
// placeholder func (1-based).
//
// Example:
//
//	builder.Values(2, func(i int) string { return "?" }) // VALUES (?, ?)
func (b *SQLBuilder) Values(n int, placeholder func(int) string) *SQLBuilder {
	if n > 0 {
		ph := make([]string, n)
		for i := range ph {
			ph[i] = placeholder(i + 1)
		}
		b.parts = append(b.parts, "VALUES", "("+strings.Join(ph, ", ")+")")
	}
	return b
}

// Returning adds a RETURNING clause for the quoted column.
func (b *SQLBuilder) Returning(column string) *SQLBuilder {
	if column != "" {
		b.parts = append(b.parts, "RETURNING", QuoteIdentifier(column, b.quote))
	}
	return b
}

// Engine adds an ENGINE clause with the specified engine name.
//
// Example:
//
//	builder.Engine("MergeTree") // ENGINE = MergeTree
func (b *SQLBuilder) Engine(engine string) *SQLBuilder {
	if engine != "" {
		b.parts = append(b.parts, "ENGINE", "=", engine)
	}
	return b
}

// OrderBy adds an ORDER BY clause over the quoted columns.
func (b *SQLBuilder) OrderBy(columns ...string) *SQLBuilder {
	switch len(columns) {
	case 0:
		return b
	case 1:
		b.parts = append(b.parts, "ORDER", "BY", QuoteIdentifier(columns[0], b.quote))
	default:
		quoted := make([]string, len(columns))
		for i, c := range columns {
			quoted[i] = QuoteIdentifier(c, b.quote)
		}
		b.parts = append(b.parts, "ORDER", "BY", "("+strings.Join(quoted, ", ")+")")
	}
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for complex constructs
// that don't fit the fluent pattern.
//
// Example:
//
//	builder.Raw("CASCADE") // CASCADE
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the final SQL statement with a semicolon.
func (b *SQLBuilder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	return strings.Join(b.parts, " ") + ";"
}

// StringWithoutSemicolon builds and returns the final SQL statement without a
// semicolon. Drivers that reject trailing semicolons (ClickHouse batches) use
// this form.
func (b *SQLBuilder) StringWithoutSemicolon() string {
	return strings.Join(b.parts, " ")
}
