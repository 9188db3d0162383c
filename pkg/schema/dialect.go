package schema

import (
	"strconv"

	"github.com/San4eeez/Cruzak/pkg/utils"
	"github.com/pkg/errors"
)

// Dialect identifies the SQL flavour of a storage backend.
type Dialect string

const (
	// Postgres renders PostgreSQL DDL (the reference schema).
	Postgres Dialect = "postgres"

	// SQLite renders SQLite DDL.
	SQLite Dialect = "sqlite"

	// ClickHouse renders ClickHouse DDL. ClickHouse has neither generated keys
	// nor foreign keys, ids are assigned by the client.
	ClickHouse Dialect = "clickhouse"
)

// ParseDialect validates a dialect name.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case Postgres, SQLite, ClickHouse:
		return d, nil
	default:
		return "", errors.Errorf("unsupported dialect: %s", s)
	}
}

// Quote returns the identifier quote used by the dialect.
func (d Dialect) Quote() utils.Quote {
	if d == ClickHouse {
		return utils.Backtick
	}
	return utils.DoubleQuote
}

// Placeholder returns the bind parameter for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// columnType renders a logical column type.
func (d Dialect) columnType(c Column) string {
	switch d {
	case ClickHouse:
		switch c.Type {
		case Serial, ForeignKey:
			return "Int64"
		case Numeric:
			return "Nullable(Decimal(38, 10))"
		case Date:
			return "Nullable(Date32)"
		case Bool:
			return "Bool"
		default:
			return "Nullable(String)"
		}
	case SQLite:
		switch c.Type {
		case Serial:
			return "INTEGER PRIMARY KEY AUTOINCREMENT"
		case ForeignKey:
			return "INTEGER REFERENCES " + c.References
		case Numeric:
			return "NUMERIC"
		case Date:
			return "DATE"
		case Bool:
			return "BOOLEAN"
		default:
			return "TEXT"
		}
	default:
		switch c.Type {
		case Serial:
			return "SERIAL PRIMARY KEY"
		case ForeignKey:
			return "INTEGER REFERENCES " + c.References
		case Numeric:
			return "NUMERIC"
		case Date:
			return "DATE"
		case Bool:
			return "BOOLEAN"
		default:
			return "TEXT"
		}
	}
}
