package utils

import "strings"

// Quote is the character used to delimit identifiers in generated SQL.
type Quote byte

const (
	// DoubleQuote delimits identifiers in PostgreSQL and SQLite.
	DoubleQuote Quote = '"'

	// Backtick delimits identifiers in ClickHouse.
	Backtick Quote = '`'
)

// QuoteIdentifier wraps an identifier in the given quote, handling qualified
// names by quoting each part.
//
// Examples:
//   - ("products", DoubleQuote) -> "\"products\""
//   - ("public.products", DoubleQuote) -> "\"public\".\"products\""
//   - ("`products`", Backtick) -> "`products`" (already quoted, not double-quoted)
//   - ("", Backtick) -> ""
func QuoteIdentifier(name string, q Quote) string {
	if name == "" {
		return ""
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		if IsQuoted(part, q) {
			continue
		}

		// Embedded quotes are escaped by doubling them.
		escaped := strings.ReplaceAll(part, string(q), string(q)+string(q))
		parts[i] = string(q) + escaped + string(q)
	}

	return strings.Join(parts, ".")
}

// IsQuoted reports whether name is already wrapped in the given quote.
func IsQuoted(name string, q Quote) bool {
	return len(name) >= 2 && name[0] == byte(q) && name[len(name)-1] == byte(q)
}
