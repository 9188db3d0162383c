// Package sheet turns a workbook into an ordered sequence of positional rows.
//
// The catalog workbooks imported by cruzak have no usable header row: the
// first few rows hold free-form metadata and every following row is addressed
// purely by column position. This package hides the spreadsheet decoding
// (github.com/xuri/excelize/v2) behind two small types:
//
//   - Cell: one typed cell value that is either absent, text or a number
//   - Row: the cells of one record, addressed by 0-based column index
//
// Example usage:
//
//	rows, err := sheet.ReadFile("part.xlsx", sheet.WithSkipRows(4))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, row := range rows {
//		if name := row.At(1); name.Present() {
//			fmt.Println("product:", name.String())
//		}
//	}
//
// Empty cells are reported as absent. Cells stored as numbers (including date
// serials) are reported as numbers, everything else is text.
package sheet
