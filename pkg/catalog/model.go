package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column positions (0-based) of the catalog workbook.
const (
	ColName           = 1
	ColOKPD2          = 2
	ColDetail         = 3
	ColUnit           = 4
	ColAttributeName  = 5
	ColNumericValue   = 6
	ColTextValue      = 8
	ColAdditionalText = 9
	ColAttributeUnit  = 10
	ColCategory       = 11
	ColKTRUCode       = 12
	ColKKNCode        = 13
	ColProductPart    = 14
	ColUpdateDate     = 15
	ColIsRussian      = 16
)

type (
	// Product is built from a header row.
	Product struct {
		Name        string
		OKPD2       *string
		Detail      *string
		Unit        *string
		Category    *string
		KTRUCode    *string
		KKNCode     *string
		ProductPart *string
		UpdateDate  *time.Time
		IsRussian   bool

		// InvalidDate holds the raw date cell when it could not be parsed and
		// was recorded as NULL. It is not persisted.
		InvalidDate string
	}

	// Attribute is one normalized attribute row of a product.
	Attribute struct {
		Name           *string
		NumericValue   decimal.NullDecimal
		TextValues     []string
		AdditionalText *string
		Unit           *string
	}

	// AttributeRow is a single persisted attribute value.
	AttributeRow struct {
		Name           *string
		NumericValue   decimal.NullDecimal
		TextValue      *string
		AdditionalText *string
		Unit           *string
	}

	// Group is a product together with the attributes that followed it.
	Group struct {
		Product    *Product
		Attributes []Attribute
	}
)

// Rows explodes the attribute into one row per text value.
//
// When the attribute has no text values, NumericOnlyDrop yields no rows at all
// and NumericOnlyEmit yields a single row with a nil TextValue.
func (a Attribute) Rows(policy NumericOnlyPolicy) []AttributeRow {
	if len(a.TextValues) == 0 {
		if policy != NumericOnlyEmit {
			return nil
		}
		return []AttributeRow{a.row(nil)}
	}

	rows := make([]AttributeRow, len(a.TextValues))
	for i := range a.TextValues {
		rows[i] = a.row(&a.TextValues[i])
	}

	return rows
}

func (a Attribute) row(text *string) AttributeRow {
	return AttributeRow{
		Name:           a.Name,
		NumericValue:   a.NumericValue,
		TextValue:      text,
		AdditionalText: a.AdditionalText,
		Unit:           a.Unit,
	}
}

// Rows returns every exploded attribute row of the group, in input order.
func (g Group) Rows(policy NumericOnlyPolicy) []AttributeRow {
	var rows []AttributeRow
	for _, a := range g.Attributes {
		rows = append(rows, a.Rows(policy)...)
	}
	return rows
}
