package model

import (
	"fmt"
	"strings"
)

// RowColumns is the fixed width of an invoice item row
const RowColumns = 6

// Column indices of an invoice item row
const (
	ColumnLine = iota
	ColumnDescription
	ColumnOrdered
	ColumnSupplied
	ColumnPrice
	ColumnAmount
)

var columnNames = [RowColumns]string{"Line", "Description", "Ordered", "Supplied", "Price", "Amount"}

// ColumnName returns the header name of column i
func ColumnName(i int) string {
	if i < 0 || i >= RowColumns {
		return fmt.Sprintf("column %d", i)
	}
	return columnNames[i]
}

// Row is one reconstructed invoice table record. A nil field is a missing
// cell. Rows are values; a flushed row is never modified.
type Row struct {
	Line        *string
	Description *string
	Ordered     *string
	Supplied    *string
	Price       *string
	Amount      *string
}

// Cell returns the cell at column i, or nil if the cell is missing or i is
// out of range
func (r Row) Cell(i int) *string {
	switch i {
	case ColumnLine:
		return r.Line
	case ColumnDescription:
		return r.Description
	case ColumnOrdered:
		return r.Ordered
	case ColumnSupplied:
		return r.Supplied
	case ColumnPrice:
		return r.Price
	case ColumnAmount:
		return r.Amount
	}
	return nil
}

// SetCell sets the cell at column i. An index outside the row is a
// FormatError carrying the cell text.
func (r *Row) SetCell(i int, text string) error {
	v := text
	switch i {
	case ColumnLine:
		r.Line = &v
	case ColumnDescription:
		r.Description = &v
	case ColumnOrdered:
		r.Ordered = &v
	case ColumnSupplied:
		r.Supplied = &v
	case ColumnPrice:
		r.Price = &v
	case ColumnAmount:
		r.Amount = &v
	default:
		return NewFormatError(fmt.Sprintf("column index within the %d invoice columns, got %d", RowColumns, i), text)
	}
	return nil
}

// Cells returns the positional view of the row, always RowColumns long
func (r Row) Cells() []*string {
	cells := make([]*string, RowColumns)
	for i := range cells {
		cells[i] = r.Cell(i)
	}
	return cells
}

// IsEmpty reports whether no cell is filled
func (r Row) IsEmpty() bool {
	for i := 0; i < RowColumns; i++ {
		if r.Cell(i) != nil {
			return false
		}
	}
	return true
}

// Value returns the text of column i and whether it is present
func (r Row) Value(i int) (string, bool) {
	if c := r.Cell(i); c != nil {
		return *c, true
	}
	return "", false
}

// String renders the row as a tuple, with _ for missing cells:
//
//	("1", "Milk 2L", "1", "1", "$3.10", "$3.10")
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i := 0; i < RowColumns; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v, ok := r.Value(i); ok {
			fmt.Fprintf(&sb, "%q", v)
		} else {
			sb.WriteString("_")
		}
	}
	sb.WriteString(")")
	return sb.String()
}
