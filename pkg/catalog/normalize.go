package catalog

import (
	"log/slog"
	"strings"
	"time"

	"github.com/San4eeez/Cruzak/pkg/parser"
	"github.com/San4eeez/Cruzak/pkg/sheet"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// NormalizeNumeric converts a numeric cell to a decimal. Text values may use a
// decimal comma. Anything that doesn't parse yields an invalid (NULL) decimal.
func NormalizeNumeric(c sheet.Cell) decimal.NullDecimal {
	switch c.Kind {
	case sheet.Number:
		return decimal.NewNullDecimal(decimal.NewFromFloat(c.Number))
	case sheet.Text:
		s := strings.TrimSpace(strings.ReplaceAll(c.Text, ",", "."))
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	default:
		return decimal.NullDecimal{}
	}
}

// SplitTextValues expands a text cell into its values. A semicolon separated
// list is split and each piece trimmed, empty pieces included, so "red;"
// yields two values. An absent cell and a numeric zero have no values.
func SplitTextValues(c sheet.Cell) []string {
	if !c.Present() || (c.Kind == sheet.Number && c.Number == 0) {
		return nil
	}

	if c.Kind != sheet.Text || !strings.Contains(c.Text, ";") {
		return []string{c.String()}
	}

	pieces := strings.Split(c.Text, ";")
	values := make([]string, 0, len(pieces))
	for _, p := range pieces {
		values = append(values, strings.TrimSpace(p))
	}

	return values
}

// NormalizeDate converts a date cell to a calendar date. Numbers are Excel
// date serials, text is parsed with parser.ParseDate. An absent cell yields
// nil without error.
func NormalizeDate(c sheet.Cell) (*time.Time, error) {
	switch c.Kind {
	case sheet.Number:
		t, err := excelize.ExcelDateToTime(c.Number, false)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid date serial %v", c.Number)
		}
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d, nil
	case sheet.Text:
		d, err := parser.ParseDate(c.Text)
		if err != nil {
			return nil, err
		}
		return &d, nil
	default:
		return nil, nil
	}
}

// IsHeader reports whether the row starts a new product.
func IsHeader(row sheet.Row) bool {
	return row.At(ColName).Present()
}

// ParseProduct builds a Product from a header row.
//
// An unparseable date cell is recorded as NULL (with Product.InvalidDate set)
// under InvalidDateNull, and returns an error wrapping ErrInvalidDate under
// InvalidDateFail.
func ParseProduct(row sheet.Row, opts Options) (*Product, error) {
	opts = opts.withDefaults()

	p := &Product{
		Name:        row.At(ColName).String(),
		OKPD2:       row.At(ColOKPD2).StringPtr(),
		Detail:      row.At(ColDetail).StringPtr(),
		Unit:        row.At(ColUnit).StringPtr(),
		Category:    row.At(ColCategory).StringPtr(),
		KTRUCode:    row.At(ColKTRUCode).StringPtr(),
		KKNCode:     row.At(ColKKNCode).StringPtr(),
		ProductPart: row.At(ColProductPart).StringPtr(),
		IsRussian:   isAffirmative(row.At(ColIsRussian), opts.AffirmativeToken),
	}

	dateCell := row.At(ColUpdateDate)
	date, err := NormalizeDate(dateCell)
	if err != nil {
		if opts.InvalidDate == InvalidDateFail {
			return nil, errors.Wrapf(ErrInvalidDate, "product %q: %v", p.Name, err)
		}

		slog.Warn("Unparseable update date recorded as NULL",
			"product", p.Name,
			"value", dateCell.String(),
			"error", err,
		)
		p.InvalidDate = dateCell.String()
	}
	p.UpdateDate = date

	return p, nil
}

func isAffirmative(c sheet.Cell, token string) bool {
	return c.Kind == sheet.Text && c.Text == token
}

// ParseAttribute builds a normalized Attribute from an attribute row.
func ParseAttribute(row sheet.Row) Attribute {
	return Attribute{
		Name:           row.At(ColAttributeName).StringPtr(),
		NumericValue:   NormalizeNumeric(row.At(ColNumericValue)),
		TextValues:     SplitTextValues(row.At(ColTextValue)),
		AdditionalText: row.At(ColAdditionalText).StringPtr(),
		Unit:           row.At(ColAttributeUnit).StringPtr(),
	}
}
