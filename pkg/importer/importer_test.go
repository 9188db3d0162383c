package importer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/importer"
	"github.com/San4eeez/Cruzak/pkg/sheet"
	"github.com/San4eeez/Cruzak/pkg/sheet/sheettest"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// failingSink fails the product insert of the product named failOn.
type failingSink struct {
	*store.MemorySink
	failOn string
}

func (f *failingSink) InsertProduct(ctx context.Context, p *catalog.Product) (int64, error) {
	if p.Name == f.failOn {
		return 0, errors.Errorf("insert of %s rejected", p.Name)
	}
	return f.MemorySink.InsertProduct(ctx, p)
}

func readRows(t *testing.T, rows ...[]any) []sheet.Row {
	t.Helper()

	data, err := sheet.ReadFile(sheettest.Workbook(t, rows...))
	require.NoError(t, err)
	return data
}

func boltCatalog(t *testing.T) []sheet.Row {
	t.Helper()

	return readRows(t,
		sheettest.AttributeRow("orphan", nil, "before any product", nil, nil),
		sheettest.ProductRow("Bolt M6", "25.94.11", "hex", "шт", "Fasteners", "", "", "", "15.03.2024", "Да"),
		sheettest.AttributeRow("Color", nil, "red;blue", nil, nil),
		sheettest.AttributeRow("Length", "12,5", nil, nil, "mm"),
		sheettest.AttributeRow("Diameter", 6, "M6", "metric", "mm"),
		sheettest.ProductRow("Nut M6", "25.94.12", "", "шт", "", "", "", "", nil, "Нет"),
		sheettest.ProductRow("Washer", "", "", "", "", "", "", "", "bogus", ""),
		sheettest.AttributeRow("Material", nil, "steel; ;zinc", nil, nil),
	)
}

func TestImporter_Run(t *testing.T) {
	ctx := context.Background()
	sink := store.NewMemorySink()

	stats, err := importer.New(sink, importer.DefaultOptions()).Run(ctx, boltCatalog(t))
	require.NoError(t, err)

	require.Equal(t, 8, stats.Rows)
	require.Equal(t, 3, stats.Products)
	require.Equal(t, 3, stats.Saved)
	require.Equal(t, 4, stats.Attributes)
	require.Equal(t, 6, stats.AttributeRows)
	require.Equal(t, 1, stats.NumericOnly)
	require.Equal(t, 1, stats.Dropped)
	require.Equal(t, 1, stats.InvalidDates)

	products := sink.Products()
	require.Len(t, products, 3)

	bolt := products[0]
	require.Equal(t, "Bolt M6", bolt.Product.Name)
	require.Equal(t, "25.94.11", *bolt.Product.OKPD2)
	require.True(t, bolt.Product.IsRussian)
	require.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *bolt.Product.UpdateDate)

	rows := sink.AttributesOf(bolt.ID)
	require.Len(t, rows, 3)
	require.Equal(t, "red", *rows[0].TextValue)
	require.Equal(t, "blue", *rows[1].TextValue)
	require.Equal(t, "Diameter", *rows[2].Name)
	require.Equal(t, "6", rows[2].NumericValue.Decimal.String())
	require.Equal(t, "metric", *rows[2].AdditionalText)

	nut := products[1]
	require.False(t, nut.Product.IsRussian)
	require.Nil(t, nut.Product.UpdateDate)
	require.Empty(t, sink.AttributesOf(nut.ID))

	washer := products[2]
	require.Nil(t, washer.Product.UpdateDate)
	require.Nil(t, washer.Product.OKPD2)
	washerRows := sink.AttributesOf(washer.ID)
	require.Len(t, washerRows, 3)
	require.Equal(t, "steel", *washerRows[0].TextValue)
	require.Equal(t, "", *washerRows[1].TextValue)
	require.Equal(t, "zinc", *washerRows[2].TextValue)

	// DDL commit plus two commits per product.
	require.Equal(t, 1+2*3, sink.Commits())
}

func TestImporter_RerunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	sink := store.NewMemorySink()
	rows := boltCatalog(t)

	first, err := importer.New(sink, importer.DefaultOptions()).Run(ctx, rows)
	require.NoError(t, err)
	firstProducts := sink.Products()
	firstAttributes := sink.Attributes()

	second, err := importer.New(sink, importer.DefaultOptions()).Run(ctx, rows)
	require.NoError(t, err)

	require.Equal(t, first.AttributeRows, second.AttributeRows)
	require.Equal(t, firstProducts, sink.Products())
	require.Equal(t, firstAttributes, sink.Attributes())
}

func TestImporter_NumericOnlyEmit(t *testing.T) {
	ctx := context.Background()
	sink := store.NewMemorySink()

	opts := importer.DefaultOptions()
	opts.NumericOnly = catalog.NumericOnlyEmit

	stats, err := importer.New(sink, opts).Run(ctx, boltCatalog(t))
	require.NoError(t, err)
	require.Equal(t, 7, stats.AttributeRows)
	require.Zero(t, stats.NumericOnly)

	rows := sink.AttributesOf(sink.Products()[0].ID)
	require.Len(t, rows, 4)
	require.Equal(t, "Length", *rows[2].Name)
	require.Nil(t, rows[2].TextValue)
	require.Equal(t, "12.5", rows[2].NumericValue.Decimal.String())
}

func TestImporter_EmptyTextPieces(t *testing.T) {
	ctx := context.Background()
	sink := store.NewMemorySink()

	rows := readRows(t,
		sheettest.ProductRow("Screw", "", "", "", "", "", "", "", nil, ""),
		sheettest.AttributeRow("Color", nil, "red;", nil, nil),
		sheettest.AttributeRow("Finish", nil, ";", nil, nil),
		sheettest.AttributeRow("Grade", 0, 0, nil, nil),
	)

	stats, err := importer.New(sink, importer.DefaultOptions()).Run(ctx, rows)
	require.NoError(t, err)
	require.Equal(t, 4, stats.AttributeRows)
	require.Equal(t, 1, stats.NumericOnly)

	attrs := sink.AttributesOf(sink.Products()[0].ID)
	require.Len(t, attrs, 4)
	require.Equal(t, "red", *attrs[0].TextValue)
	require.Equal(t, "", *attrs[1].TextValue)
	require.Equal(t, "Finish", *attrs[2].Name)
	require.Equal(t, "", *attrs[2].TextValue)
	require.Equal(t, "", *attrs[3].TextValue)
}

func TestImporter_InsertFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("per product keeps earlier products", func(t *testing.T) {
		sink := &failingSink{MemorySink: store.NewMemorySink(), failOn: "Washer"}

		stats, err := importer.New(sink, importer.DefaultOptions()).Run(ctx, boltCatalog(t))
		require.Error(t, err)
		require.Contains(t, err.Error(), `failed to handle product "Washer"`)
		require.Contains(t, err.Error(), "insert of Washer rejected")
		require.Equal(t, 2, stats.Saved)

		require.NoError(t, sink.Close())
		require.Len(t, sink.Products(), 2)
	})

	t.Run("single mode keeps nothing", func(t *testing.T) {
		sink := &failingSink{MemorySink: store.NewMemorySink(), failOn: "Washer"}
		opts := importer.DefaultOptions()
		opts.CommitMode = importer.CommitSingle

		_, err := importer.New(sink, opts).Run(ctx, boltCatalog(t))
		require.Error(t, err)

		require.NoError(t, sink.Close())
		require.Empty(t, sink.Products())
	})
}

func TestImporter_SingleCommit(t *testing.T) {
	ctx := context.Background()
	sink := store.NewMemorySink()

	opts := importer.DefaultOptions()
	opts.CommitMode = importer.CommitSingle

	stats, err := importer.New(sink, opts).Run(ctx, boltCatalog(t))
	require.NoError(t, err)
	require.Equal(t, 3, stats.Saved)
	require.Len(t, sink.Products(), 3)

	// Schema commit plus the final one.
	require.Equal(t, 2, sink.Commits())
}

func TestImporter_InvalidDateFail(t *testing.T) {
	ctx := context.Background()
	sink := store.NewMemorySink()

	opts := importer.DefaultOptions()
	opts.Catalog.InvalidDate = catalog.InvalidDateFail

	stats, err := importer.New(sink, opts).Run(ctx, boltCatalog(t))
	require.Error(t, err)
	require.ErrorIs(t, err, catalog.ErrInvalidDate)
	require.Contains(t, err.Error(), `product "Washer"`)

	// Everything before the offending product is already saved.
	require.Equal(t, 2, stats.Saved)
	require.Len(t, sink.Products(), 2)
}

func TestImporter_EmptySheet(t *testing.T) {
	sink := store.NewMemorySink()

	stats, err := importer.New(sink, importer.Options{}).Run(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, stats.Products)
	require.Empty(t, sink.Products())
	require.NotEmpty(t, sink.Statements())
}

func TestImporter_SchemaFailure(t *testing.T) {
	sink := &ddlFailingSink{MemorySink: store.NewMemorySink()}

	_, err := importer.New(sink, importer.DefaultOptions()).Run(context.Background(), boltCatalog(t))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "failed to initialize schema"))
	require.Empty(t, sink.Products())
}

type ddlFailingSink struct {
	*store.MemorySink
}

func (d *ddlFailingSink) ExecDDL(context.Context, string) error {
	return errors.New("permission denied for schema public")
}

func TestParseCommitMode(t *testing.T) {
	tests := []struct {
		input    string
		expected importer.CommitMode
		wantErr  bool
	}{
		{input: "", expected: importer.CommitPerProduct},
		{input: "per_product", expected: importer.CommitPerProduct},
		{input: "single", expected: importer.CommitSingle},
		{input: "batch", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := importer.ParseCommitMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unsupported commit mode")
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, mode)
		})
	}
}
