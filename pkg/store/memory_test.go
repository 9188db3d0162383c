package store_test

import (
	"context"
	"testing"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/schema"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/San4eeez/Cruzak/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestMemorySink(t *testing.T) {
	ctx := context.Background()

	t.Run("writes are visible after commit", func(t *testing.T) {
		sink := store.NewMemorySink()
		require.Equal(t, schema.Postgres, sink.Dialect())

		id, err := sink.InsertProduct(ctx, &catalog.Product{Name: "Bolt M6"})
		require.NoError(t, err)
		require.Equal(t, int64(1), id)
		require.NoError(t, sink.InsertAttribute(ctx, id, catalog.AttributeRow{TextValue: utils.Ptr("steel")}))
		require.Empty(t, sink.Products())

		require.NoError(t, sink.Commit(ctx))
		require.Len(t, sink.Products(), 1)
		require.Equal(t, []catalog.AttributeRow{{TextValue: utils.Ptr("steel")}}, sink.AttributesOf(id))
		require.Equal(t, 1, sink.Commits())
	})

	t.Run("close discards uncommitted writes", func(t *testing.T) {
		sink := store.NewMemorySink()

		_, err := sink.InsertProduct(ctx, &catalog.Product{Name: "kept"})
		require.NoError(t, err)
		require.NoError(t, sink.Commit(ctx))

		_, err = sink.InsertProduct(ctx, &catalog.Product{Name: "lost"})
		require.NoError(t, err)
		require.NoError(t, sink.Close())

		products := sink.Products()
		require.Len(t, products, 1)
		require.Equal(t, "kept", products[0].Product.Name)
	})

	t.Run("initializing recreates the tables", func(t *testing.T) {
		sink := store.NewMemorySink()

		require.NoError(t, schema.Initialize(ctx, sink, sink.Dialect()))
		_, err := sink.InsertProduct(ctx, &catalog.Product{Name: "first run"})
		require.NoError(t, err)
		require.NoError(t, sink.Commit(ctx))

		require.NoError(t, schema.Initialize(ctx, sink, sink.Dialect()))
		require.Empty(t, sink.Products())

		id, err := sink.InsertProduct(ctx, &catalog.Product{Name: "second run"})
		require.NoError(t, err)
		require.Equal(t, int64(1), id)
		require.NoError(t, sink.Commit(ctx))

		require.Len(t, sink.Statements(), 2*len(schema.Statements(schema.Postgres)))
		require.Equal(t, "second run", sink.Products()[0].Product.Name)
	})
}
