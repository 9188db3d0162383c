// Package importer runs a catalog import: it recreates the target tables,
// groups the sheet rows into products and writes every product with its
// attribute rows to a store.Sink.
//
// Example usage:
//
//	rows, err := sheet.ReadFile("part.xlsx")
//	if err != nil {
//		return err
//	}
//
//	stats, err := importer.New(sink, importer.DefaultOptions()).Run(ctx, rows)
//	if err != nil {
//		return err
//	}
//
//	fmt.Printf("Imported %d products\n", stats.Products)
//
// In the default per-product commit mode a failure leaves every product saved
// before it in place. The single mode commits once at the end instead.
package importer
