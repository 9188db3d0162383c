package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/schema"
	"github.com/San4eeez/Cruzak/pkg/sheet"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/pkg/errors"
)

// Importer loads sheet rows into a sink.
type Importer struct {
	sink store.Sink
	opts Options
}

// New creates an Importer writing to sink. Zero option fields take their
// defaults.
func New(sink store.Sink, opts Options) *Importer {
	if opts.NumericOnly == "" {
		opts.NumericOnly = catalog.NumericOnlyDrop
	}
	if opts.CommitMode == "" {
		opts.CommitMode = CommitPerProduct
	}

	return &Importer{sink: sink, opts: opts}
}

// Run recreates the schema and imports rows in order. The returned Stats are
// filled in as far as the run got, also when an error is returned.
func (i *Importer) Run(ctx context.Context, rows []sheet.Row) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	if err := schema.Initialize(ctx, i.sink, i.sink.Dialect()); err != nil {
		return stats, errors.Wrap(err, "failed to initialize schema")
	}

	w := NewWriter(i.sink, i.opts.CommitMode, i.opts.NumericOnly)
	gs, err := catalog.GroupRows(ctx, rows, i.opts.Catalog, w)

	stats.Rows = gs.Rows
	stats.Products = gs.Products
	stats.Attributes = gs.Attributes
	stats.Dropped = gs.Dropped
	stats.Blank = gs.Blank
	stats.InvalidDates = gs.InvalidDates
	stats.Saved = w.products
	stats.AttributeRows = w.attributeRows
	stats.NumericOnly = w.numericOnly
	stats.Elapsed = time.Since(start)

	if err != nil {
		return stats, err
	}

	if i.opts.CommitMode == CommitSingle {
		if err := i.sink.Commit(ctx); err != nil {
			return stats, errors.Wrap(err, "failed to commit import")
		}
	}

	stats.Elapsed = time.Since(start)
	slog.Info("Import finished",
		"products", stats.Products,
		"attribute_rows", stats.AttributeRows,
		"dropped", stats.Dropped,
		"invalid_dates", stats.InvalidDates,
		"elapsed", stats.Elapsed,
	)

	return stats, nil
}
