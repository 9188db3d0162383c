package sheet

import (
	"io"
	"strconv"
	"strings"

	"github.com/San4eeez/Cruzak/pkg/consts"
	"github.com/San4eeez/Cruzak/pkg/utils"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type (
	// Reader reads positional rows from a single worksheet.
	Reader struct {
		file     *excelize.File
		sheet    string
		skipRows int
	}

	// Option configures a Reader.
	Option func(*Reader)
)

// WithSheet selects the worksheet to read. The first sheet is used by default.
func WithSheet(name string) Option {
	return func(r *Reader) {
		r.sheet = name
	}
}

// WithSkipRows sets the number of leading rows that are not part of the data.
func WithSkipRows(n int) Option {
	return func(r *Reader) {
		if n >= 0 {
			r.skipRows = n
		}
	}
}

// Open opens the workbook at path.
//
// Example:
//
//	r, err := sheet.Open("part.xlsx", sheet.WithSheet("Products"))
//	if err != nil {
//		return err
//	}
//	defer r.Close()
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook: %s", path)
	}

	return newReader(f, opts...)
}

// NewReader reads a workbook from r. The whole workbook is buffered in memory.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read workbook")
	}

	return newReader(f, opts...)
}

func newReader(f *excelize.File, opts ...Option) (*Reader, error) {
	r := &Reader{file: f, skipRows: consts.DefaultSkipRows}
	for _, opt := range opts {
		opt(r)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, errors.New("workbook contains no sheets")
	}

	if r.sheet == "" {
		r.sheet = sheets[0]
		return r, nil
	}

	for _, s := range sheets {
		if s == r.sheet {
			return r, nil
		}
	}

	_ = f.Close()
	return nil, errors.Errorf("sheet not found: %s", r.sheet)
}

// Sheet returns the name of the worksheet being read.
func (r *Reader) Sheet() string {
	return r.sheet
}

// ReadRows returns every data row of the sheet, skipping the configured number
// of leading rows.
func (r *Reader) ReadRows() ([]Row, error) {
	raw, err := r.file.GetRows(r.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rows from sheet %s", r.sheet)
	}

	if len(raw) <= r.skipRows {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(raw)-r.skipRows)
	for i := r.skipRows; i < len(raw); i++ {
		row := make(Row, len(raw[i]))
		for j, value := range raw[i] {
			cell, err := r.typeCell(j+1, i+1, value)
			if err != nil {
				return nil, err
			}
			row[j] = cell
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Close releases the workbook.
func (r *Reader) Close() error {
	return r.file.Close()
}

// typeCell decides whether a raw value is a number or text. Only values that
// look numeric need the cell type lookup: strings such as "25.94" entered as
// text stay text.
func (r *Reader) typeCell(col, row int, value string) (Cell, error) {
	if value == "" {
		return Cell{}, nil
	}

	if !utils.IsNumericValue(value) {
		return TextCell(value), nil
	}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, errors.Wrapf(err, "invalid cell coordinates (%d, %d)", col, row)
	}

	typ, err := r.file.GetCellType(r.sheet, axis)
	if err != nil {
		return Cell{}, errors.Wrapf(err, "failed to get type of cell %s", axis)
	}

	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return TextCell(value), nil
		}
		return NumberCell(v), nil
	case excelize.CellTypeBool:
		if value == "1" {
			return TextCell("TRUE"), nil
		}
		return TextCell("FALSE"), nil
	default:
		return TextCell(value), nil
	}
}

// ReadFile opens the workbook at path and returns its data rows.
func ReadFile(path string, opts ...Option) ([]Row, error) {
	r, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadRows()
}
