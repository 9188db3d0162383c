package importer

import "time"

// Stats summarizes an import run.
type Stats struct {
	// Rows is the number of data rows read after the skipped metadata rows.
	Rows int

	// Products is the number of product header rows, all of them saved on
	// success.
	Products int

	// Saved is the number of products written to the sink. It differs from
	// Products only when the run failed.
	Saved int

	// Attributes is the number of attribute rows attached to a product.
	Attributes int

	// AttributeRows is the number of product_attributes rows written.
	AttributeRows int

	// NumericOnly counts attributes without text values that wrote no row.
	NumericOnly int

	// Dropped counts attribute rows that appeared before the first product.
	Dropped int

	// Blank counts fully empty rows.
	Blank int

	// InvalidDates counts products whose date was recorded as NULL.
	InvalidDates int

	Elapsed time.Duration
}
