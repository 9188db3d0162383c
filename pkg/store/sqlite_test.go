package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/schema"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/San4eeez/Cruzak/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T, path string) *store.SQLSink {
	t.Helper()

	db, err := sql.Open(store.DriverSQLite, path)
	require.NoError(t, err)

	return store.NewSQLSink(db, schema.SQLite)
}

func countRows(t *testing.T, path, table string) int {
	t.Helper()

	db, err := sql.Open(store.DriverSQLite, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestSQLSink_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	sink := openSQLite(t, path)
	require.NoError(t, schema.Initialize(ctx, sink, schema.SQLite))

	id, err := sink.InsertProduct(ctx, boltProduct())
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	rows := []catalog.AttributeRow{
		{Name: utils.Ptr("Материал"), TextValue: utils.Ptr("сталь")},
		{Name: utils.Ptr("Материал"), TextValue: utils.Ptr("латунь")},
		{Name: utils.Ptr("Диаметр"), NumericValue: decimal.NewNullDecimal(decimal.RequireFromString("6.5")), TextValue: utils.Ptr("M6")},
	}
	for _, row := range rows {
		require.NoError(t, sink.InsertAttribute(ctx, id, row))
	}
	require.NoError(t, sink.Commit(ctx))

	// Uncommitted writes are rolled back on close.
	_, err = sink.InsertProduct(ctx, &catalog.Product{Name: "uncommitted"})
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	require.Equal(t, 1, countRows(t, path, "products"))
	require.Equal(t, 3, countRows(t, path, "product_attributes"))

	db, err := sql.Open(store.DriverSQLite, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var (
		name      string
		okpd2     sql.NullString
		detail    sql.NullString
		isRussian bool
	)
	require.NoError(t, db.QueryRow(`SELECT name, okpd2, detail, is_russian FROM products WHERE id = ?`, id).
		Scan(&name, &okpd2, &detail, &isRussian))
	require.Equal(t, "Bolt M6", name)
	require.Equal(t, sql.NullString{String: "25.94.11", Valid: true}, okpd2)
	require.False(t, detail.Valid)
	require.True(t, isRussian)

	var numeric decimal.NullDecimal
	require.NoError(t, db.QueryRow(`SELECT numeric_value FROM product_attributes WHERE text_value = ?`, "M6").Scan(&numeric))
	require.True(t, numeric.Valid)
	require.True(t, decimal.RequireFromString("6.5").Equal(numeric.Decimal))
}

func TestSQLSink_SQLiteRerun(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	for run := 0; run < 2; run++ {
		sink := openSQLite(t, path)
		require.NoError(t, schema.Initialize(ctx, sink, schema.SQLite))

		id, err := sink.InsertProduct(ctx, &catalog.Product{Name: "Washer"})
		require.NoError(t, err)
		require.Equal(t, int64(1), id)
		require.NoError(t, sink.Commit(ctx))
		require.NoError(t, sink.Close())
	}

	require.Equal(t, 1, countRows(t, path, "products"))
}
