package importer

import (
	"context"
	"log/slog"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/pkg/errors"
)

// Writer persists completed groups. It is a catalog.GroupHandler.
type Writer struct {
	sink   store.Sink
	mode   CommitMode
	policy catalog.NumericOnlyPolicy

	products      int
	attributeRows int
	numericOnly   int
}

// NewWriter creates a Writer for sink.
func NewWriter(sink store.Sink, mode CommitMode, policy catalog.NumericOnlyPolicy) *Writer {
	return &Writer{sink: sink, mode: mode, policy: policy}
}

// HandleGroup implements catalog.GroupHandler.
func (w *Writer) HandleGroup(ctx context.Context, g catalog.Group) error {
	return w.Write(ctx, g)
}

// Write inserts the product, then every attribute row of the group referencing
// the product's id. Every error is fatal to the run.
func (w *Writer) Write(ctx context.Context, g catalog.Group) error {
	id, err := w.sink.InsertProduct(ctx, g.Product)
	if err != nil {
		return err
	}

	if err := w.commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit product")
	}

	rows := g.Rows(w.policy)
	for _, row := range rows {
		if err := w.sink.InsertAttribute(ctx, id, row); err != nil {
			return err
		}
	}

	if err := w.commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit attributes")
	}

	if w.policy != catalog.NumericOnlyEmit {
		for _, a := range g.Attributes {
			if len(a.TextValues) == 0 {
				w.numericOnly++
			}
		}
	}

	w.products++
	w.attributeRows += len(rows)

	slog.Info("Saved product", "id", id, "name", g.Product.Name, "attributes", len(rows))
	return nil
}

func (w *Writer) commit(ctx context.Context) error {
	if w.mode == CommitSingle {
		return nil
	}
	return w.sink.Commit(ctx)
}
