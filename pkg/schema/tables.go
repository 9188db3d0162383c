package schema

import (
	"github.com/San4eeez/Cruzak/pkg/consts"
	"github.com/San4eeez/Cruzak/pkg/utils"
)

type (
	// ColumnType is a dialect independent column type.
	ColumnType int

	// Column is a single column of a target table.
	Column struct {
		Name       string
		Type       ColumnType
		References string
	}

	// Table is a target table definition.
	Table struct {
		Name    string
		Columns []Column

		// OrderBy is the sorting key for dialects that need one.
		OrderBy []string
	}
)

const (
	Serial ColumnType = iota
	ForeignKey
	Text
	Numeric
	Date
	Bool
)

// Products is the products table.
var Products = Table{
	Name: consts.ProductsTable,
	Columns: []Column{
		{Name: "id", Type: Serial},
		{Name: "name", Type: Text},
		{Name: "okpd2", Type: Text},
		{Name: "detail", Type: Text},
		{Name: "unit", Type: Text},
		{Name: "category", Type: Text},
		{Name: "ktru_code", Type: Text},
		{Name: "kkn_code", Type: Text},
		{Name: "product_part", Type: Text},
		{Name: "update_date", Type: Date},
		{Name: "is_russian", Type: Bool},
	},
	OrderBy: []string{"id"},
}

// Attributes is the product_attributes table.
var Attributes = Table{
	Name: consts.AttributesTable,
	Columns: []Column{
		{Name: "id", Type: Serial},
		{Name: "product_id", Type: ForeignKey, References: consts.ProductsTable + "(id)"},
		{Name: "attribute_name", Type: Text},
		{Name: "numeric_value", Type: Numeric},
		{Name: "text_value", Type: Text},
		{Name: "additional_text_value", Type: Text},
		{Name: "unit", Type: Text},
	},
	OrderBy: []string{"product_id", "id"},
}

// ColumnNames returns the column names, optionally without the generated key.
func (t Table) ColumnNames(withID bool) []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Type == Serial && !withID {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}

// CreateStatement renders the CREATE TABLE statement for the dialect.
func (t Table) CreateStatement(d Dialect) string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = utils.QuoteIdentifier(c.Name, d.Quote()) + " " + d.columnType(c)
	}

	b := utils.NewSQLBuilder(d.Quote()).Create("TABLE").Name(t.Name).Columns(defs...)
	if d == ClickHouse {
		b.Engine("MergeTree").OrderBy(t.OrderBy...)
	}

	return b.String()
}

// DropStatement renders DROP TABLE IF EXISTS for the dialect. PostgreSQL drops
// cascade to dependent objects.
func (t Table) DropStatement(d Dialect) string {
	b := utils.NewSQLBuilder(d.Quote()).Drop("TABLE").IfExists().Name(t.Name)
	if d == Postgres {
		b.Raw("CASCADE")
	}
	return b.String()
}

// InsertStatement renders an INSERT for every column except the generated key,
// optionally returning the key. ClickHouse assigns keys on the client: its
// statement includes the key column and has no VALUES clause, values are
// appended to a batch instead.
func (t Table) InsertStatement(d Dialect, returning bool) string {
	cols := t.ColumnNames(d == ClickHouse)
	b := utils.NewSQLBuilder(d.Quote()).InsertInto(t.Name, cols...)

	if d == ClickHouse {
		return b.StringWithoutSemicolon()
	}

	b.Values(len(cols), d.Placeholder)
	if returning {
		b.Returning("id")
	}

	return b.String()
}

// Statements returns the DDL that drops and recreates both tables.
func Statements(d Dialect) []string {
	if d == Postgres {
		return []string{
			Products.DropStatement(d),
			Attributes.DropStatement(d),
			Products.CreateStatement(d),
			Attributes.CreateStatement(d),
		}
	}

	// Without CASCADE the referencing table has to go first.
	return []string{
		Attributes.DropStatement(d),
		Products.DropStatement(d),
		Products.CreateStatement(d),
		Attributes.CreateStatement(d),
	}
}
