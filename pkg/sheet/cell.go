package sheet

import (
	"strconv"
	"strings"
)

type (
	// Kind describes which value, if any, a Cell carries.
	Kind int

	// Cell is a single typed spreadsheet value.
	Cell struct {
		Kind   Kind
		Text   string
		Number float64
	}

	// Row is one record of the sheet. Columns are addressed by position.
	Row []Cell
)

const (
	// Absent marks an empty cell.
	Absent Kind = iota

	// Text marks a cell holding a string value.
	Text

	// Number marks a cell holding a numeric value.
	Number
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Number:
		return "number"
	default:
		return "absent"
	}
}

// TextCell returns a text cell. An empty string yields an absent cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: Text, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: Number, Number: v}
}

// Present reports whether the cell holds a value.
func (c Cell) Present() bool {
	return c.Kind != Absent
}

// String renders the cell value as text. Numbers use the shortest
// representation that round-trips, absent cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return c.Text
	case Number:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// StringPtr returns the rendered value, or nil for an absent cell.
func (c Cell) StringPtr() *string {
	if !c.Present() {
		return nil
	}

	s := c.String()
	return &s
}

// At returns the cell in column i, or an absent cell when the row is shorter.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// Blank reports whether every cell in the row is absent.
func (r Row) Blank() bool {
	for _, c := range r {
		if c.Present() {
			return false
		}
	}
	return true
}

// String renders the row as a pipe separated list, mostly for logging.
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}
