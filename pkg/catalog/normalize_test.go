package catalog_test

import (
	"testing"
	"time"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/sheet"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNumeric(t *testing.T) {
	tests := []struct {
		name     string
		cell     sheet.Cell
		valid    bool
		expected string
	}{
		{name: "absent", cell: sheet.Cell{}, valid: false},
		{name: "number cell", cell: sheet.NumberCell(12.5), valid: true, expected: "12.5"},
		{name: "integer number cell", cell: sheet.NumberCell(0), valid: true, expected: "0"},
		{name: "decimal comma", cell: sheet.TextCell("3,5"), valid: true, expected: "3.5"},
		{name: "decimal point", cell: sheet.TextCell("3.5"), valid: true, expected: "3.5"},
		{name: "surrounding spaces", cell: sheet.TextCell(" 12,5 "), valid: true, expected: "12.5"},
		{name: "negative", cell: sheet.TextCell("-0,25"), valid: true, expected: "-0.25"},
		{name: "non numeric", cell: sheet.TextCell("около 5"), valid: false},
		{name: "several commas", cell: sheet.TextCell("1,234,5"), valid: false},
		{name: "whitespace only", cell: sheet.TextCell(" "), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.NormalizeNumeric(tt.cell)
			require.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				require.Equal(t, tt.expected, got.Decimal.String())
			}
		})
	}
}

func TestSplitTextValues(t *testing.T) {
	tests := []struct {
		name     string
		cell     sheet.Cell
		expected []string
	}{
		{name: "absent", cell: sheet.Cell{}, expected: nil},
		{name: "single value", cell: sheet.TextCell("red"), expected: []string{"red"}},
		{name: "single value keeps spaces", cell: sheet.TextCell(" red "), expected: []string{" red "}},
		{name: "list", cell: sheet.TextCell("red;blue"), expected: []string{"red", "blue"}},
		{name: "list is trimmed", cell: sheet.TextCell(" red ; blue ;green"), expected: []string{"red", "blue", "green"}},
		{name: "empty pieces are kept", cell: sheet.TextCell("red;;blue;"), expected: []string{"red", "", "blue", ""}},
		{name: "trailing separator", cell: sheet.TextCell("red;"), expected: []string{"red", ""}},
		{name: "blank piece", cell: sheet.TextCell("a; ;b"), expected: []string{"a", "", "b"}},
		{name: "only separator", cell: sheet.TextCell(";"), expected: []string{"", ""}},
		{name: "only separators with spaces", cell: sheet.TextCell(" ; "), expected: []string{"", ""}},
		{name: "number", cell: sheet.NumberCell(42), expected: []string{"42"}},
		{name: "zero", cell: sheet.NumberCell(0), expected: nil},
		{name: "zero as text", cell: sheet.TextCell("0"), expected: []string{"0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, catalog.SplitTextValues(tt.cell))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("absent", func(t *testing.T) {
		d, err := catalog.NormalizeDate(sheet.Cell{})
		require.NoError(t, err)
		require.Nil(t, d)
	})

	t.Run("text", func(t *testing.T) {
		d, err := catalog.NormalizeDate(sheet.TextCell("15.01.2024"))
		require.NoError(t, err)
		require.Equal(t, jan15, *d)
	})

	t.Run("excel serial", func(t *testing.T) {
		d, err := catalog.NormalizeDate(sheet.NumberCell(45306))
		require.NoError(t, err)
		require.Equal(t, jan15, *d)
	})

	t.Run("excel serial with time fraction", func(t *testing.T) {
		d, err := catalog.NormalizeDate(sheet.NumberCell(45306.75))
		require.NoError(t, err)
		require.Equal(t, jan15, *d)
	})

	t.Run("garbage", func(t *testing.T) {
		d, err := catalog.NormalizeDate(sheet.TextCell("не указано"))
		require.Error(t, err)
		require.Nil(t, d)
	})
}

func headerRow(cells map[int]sheet.Cell) sheet.Row {
	row := make(sheet.Row, 17)
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func TestParseProduct(t *testing.T) {
	row := headerRow(map[int]sheet.Cell{
		catalog.ColName:        sheet.TextCell("Bolt M6"),
		catalog.ColOKPD2:       sheet.TextCell("25.94"),
		catalog.ColDetail:      sheet.TextCell("Hex bolt"),
		catalog.ColUnit:        sheet.TextCell("шт"),
		catalog.ColCategory:    sheet.TextCell("Fasteners"),
		catalog.ColKTRUCode:    sheet.TextCell("25.94.11.110"),
		catalog.ColKKNCode:     sheet.NumberCell(123),
		catalog.ColUpdateDate:  sheet.TextCell("2024-01-15"),
		catalog.ColIsRussian:   sheet.TextCell("Да"),
		catalog.ColProductPart: sheet.Cell{},
	})

	p, err := catalog.ParseProduct(row, catalog.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "Bolt M6", p.Name)
	require.Equal(t, "25.94", *p.OKPD2)
	require.Equal(t, "Hex bolt", *p.Detail)
	require.Equal(t, "шт", *p.Unit)
	require.Equal(t, "Fasteners", *p.Category)
	require.Equal(t, "25.94.11.110", *p.KTRUCode)
	require.Equal(t, "123", *p.KKNCode)
	require.Nil(t, p.ProductPart)
	require.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *p.UpdateDate)
	require.True(t, p.IsRussian)
	require.Empty(t, p.InvalidDate)
}

func TestParseProduct_Flag(t *testing.T) {
	tests := []struct {
		name     string
		cell     sheet.Cell
		token    string
		expected bool
	}{
		{name: "affirmative", cell: sheet.TextCell("Да"), expected: true},
		{name: "negative", cell: sheet.TextCell("Нет"), expected: false},
		{name: "absent", cell: sheet.Cell{}, expected: false},
		{name: "different case", cell: sheet.TextCell("да"), expected: false},
		{name: "padded", cell: sheet.TextCell("Да "), expected: false},
		{name: "number", cell: sheet.NumberCell(1), expected: false},
		{name: "custom token", cell: sheet.TextCell("Yes"), token: "Yes", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := headerRow(map[int]sheet.Cell{
				catalog.ColName:      sheet.TextCell("Bolt"),
				catalog.ColIsRussian: tt.cell,
			})

			p, err := catalog.ParseProduct(row, catalog.Options{AffirmativeToken: tt.token})
			require.NoError(t, err)
			require.Equal(t, tt.expected, p.IsRussian)
		})
	}
}

func TestParseProduct_InvalidDate(t *testing.T) {
	row := headerRow(map[int]sheet.Cell{
		catalog.ColName:       sheet.TextCell("Bolt"),
		catalog.ColUpdateDate: sheet.TextCell("когда-то"),
	})

	t.Run("null policy", func(t *testing.T) {
		p, err := catalog.ParseProduct(row, catalog.Options{InvalidDate: catalog.InvalidDateNull})
		require.NoError(t, err)
		require.Nil(t, p.UpdateDate)
		require.Equal(t, "когда-то", p.InvalidDate)
	})

	t.Run("fail policy", func(t *testing.T) {
		p, err := catalog.ParseProduct(row, catalog.Options{InvalidDate: catalog.InvalidDateFail})
		require.Error(t, err)
		require.Nil(t, p)
		require.Equal(t, catalog.ErrInvalidDate, errors.Cause(err))
		require.Contains(t, err.Error(), `product "Bolt"`)
	})
}

func TestParseAttribute(t *testing.T) {
	row := make(sheet.Row, 11)
	row[catalog.ColAttributeName] = sheet.TextCell("Length")
	row[catalog.ColNumericValue] = sheet.TextCell("12,5")
	row[catalog.ColTextValue] = sheet.TextCell("short; long")
	row[catalog.ColAdditionalText] = sheet.TextCell("approx")
	row[catalog.ColAttributeUnit] = sheet.TextCell("mm")

	a := catalog.ParseAttribute(row)
	require.Equal(t, "Length", *a.Name)
	require.True(t, a.NumericValue.Valid)
	require.Equal(t, "12.5", a.NumericValue.Decimal.String())
	require.Equal(t, []string{"short", "long"}, a.TextValues)
	require.Equal(t, "approx", *a.AdditionalText)
	require.Equal(t, "mm", *a.Unit)

	empty := catalog.ParseAttribute(sheet.Row{})
	require.Nil(t, empty.Name)
	require.False(t, empty.NumericValue.Valid)
	require.Empty(t, empty.TextValues)
	require.Nil(t, empty.AdditionalText)
	require.Nil(t, empty.Unit)
}

func TestPolicies(t *testing.T) {
	p, err := catalog.ParseInvalidDatePolicy("")
	require.NoError(t, err)
	require.Equal(t, catalog.InvalidDateNull, p)

	p, err = catalog.ParseInvalidDatePolicy("fail")
	require.NoError(t, err)
	require.Equal(t, catalog.InvalidDateFail, p)

	_, err = catalog.ParseInvalidDatePolicy("ignore")
	require.Error(t, err)

	n, err := catalog.ParseNumericOnlyPolicy("")
	require.NoError(t, err)
	require.Equal(t, catalog.NumericOnlyDrop, n)

	n, err = catalog.ParseNumericOnlyPolicy("emit")
	require.NoError(t, err)
	require.Equal(t, catalog.NumericOnlyEmit, n)

	_, err = catalog.ParseNumericOnlyPolicy("keep")
	require.Error(t, err)
}
