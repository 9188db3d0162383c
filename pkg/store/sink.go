package store

import (
	"context"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/schema"
)

// Sink is the write side of an import target.
type Sink interface {
	schema.DDLExecutor

	// InsertProduct stores the product and returns its generated id.
	InsertProduct(ctx context.Context, p *catalog.Product) (int64, error)

	// InsertAttribute stores one attribute row of the product with productID.
	InsertAttribute(ctx context.Context, productID int64, row catalog.AttributeRow) error

	// Dialect reports the SQL dialect the sink expects DDL in.
	Dialect() schema.Dialect

	// Close releases the sink. Uncommitted writes are discarded.
	Close() error
}
