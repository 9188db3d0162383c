// Package sheettest builds workbook fixtures for tests.
package sheettest

import (
	"path/filepath"
	"testing"

	"github.com/San4eeez/Cruzak/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet fixtures are written to.
const SheetName = "Sheet1"

// Workbook writes rows to a new workbook in a temp dir and returns its path.
// Nil cells are left empty. The rows are written after consts.DefaultSkipRows
// metadata rows so they line up with the default reader configuration.
func Workbook(t *testing.T, rows ...[]any) string {
	t.Helper()

	meta := make([][]any, consts.DefaultSkipRows)
	for i := range meta {
		meta[i] = []any{"metadata"}
	}

	return RawWorkbook(t, append(meta, rows...)...)
}

// RawWorkbook writes rows starting at A1 without any metadata rows.
func RawWorkbook(t *testing.T, rows ...[]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}

			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(SheetName, axis, value))
		}
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

// ProductRow builds a header row with the product columns populated.
func ProductRow(name, okpd2, detail, unit, category, ktru, kkn, part string, date any, flag string) []any {
	row := make([]any, 17)
	row[1] = name
	row[2] = okpd2
	row[3] = detail
	row[4] = unit
	row[11] = category
	row[12] = ktru
	row[13] = kkn
	row[14] = part
	row[15] = date
	row[16] = flag

	return compact(row)
}

// AttributeRow builds an attribute row. Nil arguments leave the cell empty.
func AttributeRow(name, numeric, text, additional, unit any) []any {
	row := make([]any, 11)
	row[5] = name
	row[6] = numeric
	row[8] = text
	row[9] = additional
	row[10] = unit

	return row
}

// compact turns empty strings into nil so they are written as empty cells.
func compact(row []any) []any {
	for i, v := range row {
		if s, ok := v.(string); ok && s == "" {
			row[i] = nil
		}
	}
	return row
}
