// Package utils provides small helpers shared by the schema, store and
// clickhouse packages.
//
// # Identifier Utilities (identifier.go)
//
// QuoteIdentifier quotes table and column names for the target dialect.
// PostgreSQL and SQLite use double quotes, ClickHouse uses backticks:
//
//	utils.QuoteIdentifier("products", utils.DoubleQuote) // "products"
//	utils.QuoteIdentifier("products", utils.Backtick)    // `products`
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles DDL and INSERT statements with a fluent interface so
// that every dialect renders the same logical schema:
//
//	sql := utils.NewSQLBuilder(utils.DoubleQuote).
//		Drop("TABLE").
//		IfExists().
//		Name("products").
//		Raw("CASCADE").
//		String()
//	// DROP TABLE IF EXISTS "products" CASCADE;
//
// # Value Utilities (validation.go, ptr.go)
//
// IsNumericValue is used when typing raw spreadsheet cells, Ptr builds
// pointers to literals for nullable fields.
package utils
