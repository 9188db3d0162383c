// Package catalog reconstructs products and their attributes from the flat
// rows of a catalog workbook.
//
// A row whose name column (column 1) is populated starts a new product; every
// following row without a name contributes one attribute to that product. The
// Grouper implements this as an explicit two-state machine:
//
//	NoCurrentProduct --header--> Accumulating(product, attributes)
//	Accumulating     --header--> emit previous group, Accumulating(new product, [])
//	Accumulating     --attr----> Accumulating(product, attributes + attr)
//	NoCurrentProduct --attr----> NoCurrentProduct (row dropped)
//	Accumulating     --flush---> emit group, NoCurrentProduct
//
// A group is handed to the GroupHandler only once it is complete, that is when
// the next header row arrives or the input is flushed.
//
// Attribute values are normalized while rows are read:
//   - numeric values accept a decimal comma ("3,5" is 3.5) and degrade to NULL
//     when they don't parse
//   - text values holding a semicolon separated list are split and trimmed
//   - additional text and unit pass through unchanged
//
// Each attribute is later exploded into one AttributeRow per text value. An
// attribute without text values produces no rows unless NumericOnlyEmit is
// selected, in which case a single row with a NULL text value is produced.
package catalog
