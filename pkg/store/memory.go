package store

import (
	"context"
	"sync"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/schema"
)

type (
	// StoredProduct is a product as the MemorySink keeps it.
	StoredProduct struct {
		ID      int64
		Product catalog.Product
	}

	// StoredAttribute is an attribute row as the MemorySink keeps it.
	StoredAttribute struct {
		ID        int64
		ProductID int64
		Row       catalog.AttributeRow
	}

	// MemorySink keeps everything in memory. Writes become visible through
	// Products and Attributes once committed; committing DDL empties the tables
	// the same way recreating them would.
	MemorySink struct {
		mu      sync.Mutex
		dialect schema.Dialect

		productSeq   int64
		attributeSeq int64
		commits      int

		ddl        []string
		products   []StoredProduct
		attributes []StoredAttribute

		pendingDDL        []string
		pendingProducts   []StoredProduct
		pendingAttributes []StoredAttribute
	}
)

// NewMemorySink returns an empty sink rendering DDL in the PostgreSQL dialect.
func NewMemorySink() *MemorySink {
	return &MemorySink{dialect: schema.Postgres}
}

func (m *MemorySink) Dialect() schema.Dialect { return m.dialect }

func (m *MemorySink) ExecDDL(_ context.Context, stmt string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Recreated tables start their keys over.
	m.pendingDDL = append(m.pendingDDL, stmt)
	m.productSeq = 0
	m.attributeSeq = 0
	return nil
}

func (m *MemorySink) InsertProduct(_ context.Context, p *catalog.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.productSeq++
	m.pendingProducts = append(m.pendingProducts, StoredProduct{ID: m.productSeq, Product: *p})
	return m.productSeq, nil
}

func (m *MemorySink) InsertAttribute(_ context.Context, productID int64, row catalog.AttributeRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attributeSeq++
	m.pendingAttributes = append(m.pendingAttributes, StoredAttribute{
		ID:        m.attributeSeq,
		ProductID: productID,
		Row:       row,
	})
	return nil
}

func (m *MemorySink) Commit(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pendingDDL) > 0 {
		m.ddl = append(m.ddl, m.pendingDDL...)
		m.products = nil
		m.attributes = nil
	}

	m.products = append(m.products, m.pendingProducts...)
	m.attributes = append(m.attributes, m.pendingAttributes...)
	m.commits++
	m.discard()
	return nil
}

// Close discards uncommitted writes.
func (m *MemorySink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.discard()
	return nil
}

// Products returns the committed products in insertion order.
func (m *MemorySink) Products() []StoredProduct {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StoredProduct(nil), m.products...)
}

// Attributes returns the committed attribute rows in insertion order.
func (m *MemorySink) Attributes() []StoredAttribute {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StoredAttribute(nil), m.attributes...)
}

// AttributesOf returns the committed attribute rows of one product.
func (m *MemorySink) AttributesOf(productID int64) []catalog.AttributeRow {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rows []catalog.AttributeRow
	for _, a := range m.attributes {
		if a.ProductID == productID {
			rows = append(rows, a.Row)
		}
	}
	return rows
}

// Statements returns every committed DDL statement.
func (m *MemorySink) Statements() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ddl...)
}

// Commits returns the number of Commit calls.
func (m *MemorySink) Commits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commits
}

func (m *MemorySink) discard() {
	m.pendingDDL = nil
	m.pendingProducts = nil
	m.pendingAttributes = nil
}
