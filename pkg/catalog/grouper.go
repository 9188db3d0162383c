package catalog

import (
	"context"
	"log/slog"

	"github.com/San4eeez/Cruzak/pkg/sheet"
	"github.com/pkg/errors"
)

type (
	// GroupHandler receives completed groups.
	GroupHandler interface {
		HandleGroup(context.Context, Group) error
	}

	// GroupHandlerFunc adapts a function to the GroupHandler interface.
	GroupHandlerFunc func(context.Context, Group) error

	// Grouper walks rows in order and assembles product groups.
	//
	// Example usage:
	//
	//	g := catalog.NewGrouper(catalog.DefaultOptions(), catalog.GroupHandlerFunc(
	//		func(ctx context.Context, grp catalog.Group) error {
	//			fmt.Println(grp.Product.Name, len(grp.Attributes))
	//			return nil
	//		},
	//	))
	//
	//	for _, row := range rows {
	//		if err := g.Feed(ctx, row); err != nil {
	//			return err
	//		}
	//	}
	//	return g.Flush(ctx)
	Grouper struct {
		opts    Options
		handler GroupHandler
		state   groupState
		current *Product
		attrs   []Attribute
		stats   GroupStats
	}

	// GroupStats counts what the Grouper has seen so far.
	GroupStats struct {
		Rows         int
		Products     int
		Attributes   int
		Dropped      int
		Blank        int
		InvalidDates int
	}

	groupState int
)

const (
	stateNoCurrentProduct groupState = iota
	stateAccumulating
)

// HandleGroup calls f(ctx, g).
func (f GroupHandlerFunc) HandleGroup(ctx context.Context, g Group) error {
	return f(ctx, g)
}

// NewGrouper creates a Grouper that hands completed groups to h.
func NewGrouper(opts Options, h GroupHandler) *Grouper {
	return &Grouper{
		opts:    opts.withDefaults(),
		handler: h,
		state:   stateNoCurrentProduct,
	}
}

// Stats returns the counters collected so far.
func (g *Grouper) Stats() GroupStats {
	return g.stats
}

// Accumulating reports whether a product is currently collecting attributes.
func (g *Grouper) Accumulating() bool {
	return g.state == stateAccumulating
}

// Feed classifies a single row.
//
// A header row first emits the pending group, if any, and then starts a new
// product. Any other row becomes an attribute of the current product. Rows
// seen before the first header are dropped. Fully blank rows are skipped.
func (g *Grouper) Feed(ctx context.Context, row sheet.Row) error {
	g.stats.Rows++

	if IsHeader(row) {
		return g.startProduct(ctx, row)
	}

	if row.Blank() {
		g.stats.Blank++
		return nil
	}

	switch g.state {
	case stateAccumulating:
		g.attrs = append(g.attrs, ParseAttribute(row))
		g.stats.Attributes++
	default:
		g.stats.Dropped++
		slog.Debug("Dropping attribute row without a product", "row", g.stats.Rows)
	}

	return nil
}

// Flush emits the pending group, if any. The Grouper can be reused afterwards.
func (g *Grouper) Flush(ctx context.Context) error {
	if g.state != stateAccumulating {
		return nil
	}
	return g.emit(ctx)
}

func (g *Grouper) startProduct(ctx context.Context, row sheet.Row) error {
	if g.state == stateAccumulating {
		if err := g.emit(ctx); err != nil {
			return err
		}
	}

	p, err := ParseProduct(row, g.opts)
	if err != nil {
		return err
	}

	if p.InvalidDate != "" {
		g.stats.InvalidDates++
	}

	g.current = p
	g.attrs = []Attribute{}
	g.state = stateAccumulating
	g.stats.Products++

	return nil
}

func (g *Grouper) emit(ctx context.Context) error {
	grp := Group{Product: g.current, Attributes: g.attrs}

	g.current = nil
	g.attrs = nil
	g.state = stateNoCurrentProduct

	if err := g.handler.HandleGroup(ctx, grp); err != nil {
		return errors.Wrapf(err, "failed to handle product %q", grp.Product.Name)
	}

	return nil
}

// GroupRows feeds every row to a new Grouper and flushes it at the end.
// Context cancellation is checked between rows.
func GroupRows(ctx context.Context, rows []sheet.Row, opts Options, h GroupHandler) (GroupStats, error) {
	g := NewGrouper(opts, h)

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return g.Stats(), err
		}

		if err := g.Feed(ctx, row); err != nil {
			return g.Stats(), err
		}
	}

	if err := g.Flush(ctx); err != nil {
		return g.Stats(), err
	}

	return g.Stats(), nil
}
